package models

import (
	"bytes"
	"encoding/json"
)

// Ref is a reference to another server entity. The API returns references
// either as a bare id string or as a populated object; both decode into Ref.
type Ref struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role,omitempty"`
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}
	type plain Ref
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = Ref(p)
	return nil
}

// DisplayName falls back to fallback when the reference was not populated.
func (r Ref) DisplayName(fallback string) string {
	if r.Name == "" {
		return fallback
	}
	return r.Name
}
