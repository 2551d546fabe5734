package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/carrylink/carrylink/internal/db"
	"github.com/carrylink/carrylink/internal/repository"
)

type SessionRepo struct {
	db db.DB
}

func NewSessionRepo(database db.DB) *SessionRepo {
	return &SessionRepo{db: database}
}

func (r *SessionRepo) Create(ctx context.Context, session *repository.Session) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO sessions (token, user_id, created_at, expires_at)
        VALUES ($1, $2, $3, $4)
    `, session.Token, session.UserID, session.CreatedAt, session.ExpiresAt)
	return err
}

func (r *SessionRepo) GetByToken(ctx context.Context, token uuid.UUID) (*repository.Session, error) {
	var session repository.Session
	err := r.db.Get(ctx, &session, "SELECT * FROM sessions WHERE token = $1", token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepo) Delete(ctx context.Context, token uuid.UUID) error {
	_, err := r.db.Exec(ctx, "DELETE FROM sessions WHERE token = $1", token)
	return err
}
