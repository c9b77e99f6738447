package sqlstore

import (
	"context"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
)

type sessionTokensRepo struct{ conn }

func (r sessionTokensRepo) get(ctx context.Context, where string, arg string) (domain.SessionToken, error) {
	var t domain.SessionToken
	err := r.queryRow(ctx,
		`SELECT token, user_id, created_at FROM session_tokens WHERE `+where+` = ?`, arg,
	).Scan(&t.Value, &t.UserID, &t.CreatedAt)
	return t, mapNotFound(err)
}

func (r sessionTokensRepo) GetByUserID(ctx context.Context, userID string) (domain.SessionToken, error) {
	return r.get(ctx, "user_id", userID)
}

func (r sessionTokensRepo) GetByValue(ctx context.Context, value string) (domain.SessionToken, error) {
	return r.get(ctx, "token", value)
}

func (r sessionTokensRepo) Create(ctx context.Context, t domain.SessionToken) error {
	_, err := r.exec(ctx,
		`INSERT INTO session_tokens (token, user_id, created_at) VALUES (?, ?, ?)`,
		t.Value, t.UserID, t.CreatedAt.UTC(),
	)
	return r.d.mapWriteErr(err)
}

func (r sessionTokensRepo) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	res, err := r.exec(ctx, `DELETE FROM session_tokens WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
