package sqlstore

import (
	"context"
	"time"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store"
)

const userColumns = `id, email, username, password_hash, is_verified, is_active, is_staff, is_superuser, created_at, updated_at`

type usersRepo struct{ conn }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash,
		&u.IsVerified, &u.IsActive, &u.IsStaff, &u.IsSuperuser,
		&u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	return u, mapNotFound(err)
}

func (r usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	return u, mapNotFound(err)
}

func (r usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Username, u.PasswordHash,
		u.IsVerified, u.IsActive, u.IsStaff, u.IsSuperuser,
		u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	return r.d.mapWriteErr(err)
}

func (r usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	res, err := r.exec(ctx,
		`UPDATE users SET is_verified = CASE WHEN email = ? THEN is_verified ELSE FALSE END,
		        email = ?, username = ?, password_hash = ?, updated_at = ?
		  WHERE id = ?`,
		u.Email,
		u.Email, u.Username, u.PasswordHash, time.Now().UTC(),
		u.ID,
	)
	if err != nil {
		return r.d.mapWriteErr(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r usersRepo) SetActive(ctx context.Context, userID string, active bool) error {
	return r.execOne(ctx,
		`UPDATE users SET is_active = ?, updated_at = ? WHERE id = ?`,
		active, time.Now().UTC(), userID,
	)
}

func (r usersRepo) SetVerified(ctx context.Context, userID string, verified bool) (bool, error) {
	res, err := r.exec(ctx,
		`UPDATE users SET is_verified = ?, updated_at = ? WHERE id = ? AND is_verified <> ?`,
		verified, time.Now().UTC(), userID, verified,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}

	// Nothing changed: either already in that state or no such user.
	var one int
	if err := r.queryRow(ctx, `SELECT 1 FROM users WHERE id = ?`, userID).Scan(&one); err != nil {
		return false, mapNotFound(err)
	}
	return false, nil
}

func (r usersRepo) UpdatePasswordHash(ctx context.Context, userID, hash string) error {
	return r.execOne(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		hash, time.Now().UTC(), userID,
	)
}
