package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Ref
	}{
		{name: "bare id", in: `"u1"`, want: Ref{ID: "u1"}},
		{name: "populated", in: `{"_id":"u2","name":"Ann","email":"a@x.io","role":"mentor"}`,
			want: Ref{ID: "u2", Name: "Ann", Email: "a@x.io", Role: RoleMentor}},
		{name: "null", in: `null`, want: Ref{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Ref
			require.NoError(t, json.Unmarshal([]byte(tt.in), &r))
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestRef_InsideEntity(t *testing.T) {
	raw := `{"_id":"a1","content":"use a map","mentorId":"m1","doubtId":{"_id":"d1","title":"ignored"},"upvoteCount":3}`

	var a Answer
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	assert.Equal(t, "m1", a.Mentor.ID)
	assert.Equal(t, "d1", a.DoubtID.ID)
	assert.Equal(t, 3, a.UpvoteCount)
	assert.Equal(t, "Anonymous Mentor", a.Mentor.DisplayName("Anonymous Mentor"))
}

func TestComment_IsReply(t *testing.T) {
	var top, reply Comment
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"c1","content":"hi","answerId":null}`), &top))
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"c2","content":"thanks","answerId":"a1"}`), &reply))

	assert.False(t, top.IsReply())
	assert.True(t, reply.IsReply())
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole(" Mentor ")
	require.NoError(t, err)
	assert.Equal(t, RoleMentor, r)

	_, err = ParseRole("superuser")
	require.Error(t, err)
}

func TestUserSummary_Predicates(t *testing.T) {
	var anon *UserSummary
	assert.False(t, anon.IsJunior())
	assert.False(t, anon.IsMentor())
	assert.False(t, anon.IsAdmin())
	assert.False(t, anon.IsApprovedMentor())

	pending := &UserSummary{Role: RoleMentor}
	assert.True(t, pending.IsMentor())
	assert.False(t, pending.IsApprovedMentor())

	approved := &UserSummary{Role: RoleMentor, IsMentorApproved: true}
	assert.True(t, approved.IsApprovedMentor())

	// the approval flag means nothing outside the mentor role
	odd := &UserSummary{Role: RoleJunior, IsMentorApproved: true}
	assert.False(t, odd.IsApprovedMentor())
}

func TestAuthPayload_Summary(t *testing.T) {
	var p AuthPayload
	require.NoError(t, json.Unmarshal([]byte(`{"userId":"u9","name":"Bo","email":"b@x.io","role":"junior"}`), &p))

	assert.Equal(t, UserSummary{ID: "u9", Name: "Bo", Email: "b@x.io", Role: RoleJunior}, p.Summary())
}

func TestPage_HasNext(t *testing.T) {
	assert.True(t, Page[Doubt]{Pagination: Pagination{Page: 1, Pages: 3}}.HasNext())
	assert.False(t, Page[Doubt]{Pagination: Pagination{Page: 3, Pages: 3}}.HasNext())
	assert.False(t, Page[Doubt]{}.HasNext())
}
