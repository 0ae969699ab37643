package repository

import (
	"context"
	"fmt"
	"strings"

	"hireboard/internal/database"
	"hireboard/internal/domain/user"
)

const userColumns = `id, open_id, COALESCE(name, ''), COALESCE(email, ''), COALESCE(login_method, ''),
	COALESCE(password_hash, ''), role, last_signed_in, created_at, updated_at`

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (open_id, name, email, login_method, password_hash, role)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6)
		 RETURNING `+userColumns,
		u.OpenID, u.Name, u.Email, u.LoginMethod, u.PasswordHash, string(u.Role),
	)
	return scanUser(row)
}

// UpsertByOpenID inserts or refreshes the record behind an external identity
// exchange. Nil fields keep the stored value; last_signed_in is always
// stamped.
func (r *UserRepository) UpsertByOpenID(ctx context.Context, up user.Upsert) (user.User, error) {
	if strings.TrimSpace(up.OpenID) == "" {
		return user.User{}, fmt.Errorf("empty open_id")
	}

	var role *string
	if up.Role != nil {
		s := string(*up.Role)
		role = &s
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO users (open_id, name, email, login_method, role)
		 VALUES ($1, $2, $3, $4, COALESCE($5, 'job_seeker'))
		 ON CONFLICT (open_id) DO UPDATE SET
			name           = COALESCE(EXCLUDED.name, users.name),
			email          = COALESCE(EXCLUDED.email, users.email),
			login_method   = COALESCE(EXCLUDED.login_method, users.login_method),
			role           = COALESCE($5, users.role),
			last_signed_in = now(),
			updated_at     = now()
		 RETURNING `+userColumns,
		up.OpenID, up.Name, up.Email, up.LoginMethod, role,
	)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id int64, role user.Role) error {
	n, err := r.db.Exec(ctx,
		`UPDATE users SET role = $1, updated_at = now() WHERE id = $2`,
		string(role), id,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	var role string
	err := row.Scan(
		&u.ID, &u.OpenID, &u.Name, &u.Email, &u.LoginMethod,
		&u.PasswordHash, &role, &u.LastSignedIn, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}
