package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/codeshack/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/codeshack/internal/common"
	"github.com/dmitrijs2005/codeshack/internal/dbx"
	"github.com/dmitrijs2005/codeshack/internal/logging"
)

// SQLiteStore keeps the session in the metadata table of the local database.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger
}

func NewSQLiteStore(db *sql.DB, log logging.Logger) *SQLiteStore {
	if log == nil {
		log = logging.Discard()
	}
	return &SQLiteStore{db: db, log: log}
}

func (s *SQLiteStore) Load(ctx context.Context) (*Session, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	rawUser, err := repo.Get(ctx, common.UserStorageKey)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if len(token) == 0 || len(rawUser) == 0 {
		return nil, nil
	}

	user, ok := decodeUser(rawUser)
	if !ok {
		s.log.Warn(ctx, "ignoring stored session", "error", common.ErrCorruptSession)
		return nil, nil
	}
	return &Session{Token: string(token), User: user}, nil
}

// Save writes the token and the user record in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, sess Session) error {
	rawUser, err := encodeUser(sess.User)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.TokenStorageKey, []byte(sess.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserStorageKey, rawUser)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	repo := metadata.NewSQLiteRepository(s.db)
	if err := repo.Delete(ctx, common.TokenStorageKey, common.UserStorageKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
