package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/bartosz-starzec/Hotel-app-backend/internal/model"
)

// UserRepo provides persistence for the users table, including the token
// column that mirrors the most recently issued auth token per user.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrUsernameExists = errors.New("username already exists")

const userCols = "id, username, password, role, token, name, surname, street, city, postal_code"

// Create inserts a user with the default role and returns its id. The
// password must already be hashed by the caller.
func (r *UserRepo) Create(ctx context.Context, username, passwordHash string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, role, password) VALUES (?,?,?)",
		username, model.RoleUser, passwordHash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// List returns every user ordered by ascending id.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userCols+" FROM users ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// GetByUsername fetches a user by exact username. Returns sql.ErrNoRows
// when no such user exists.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE username=? LIMIT 1", username)
	return scanUserRow(row)
}

// GetByToken fetches the user whose stored token matches exactly. Returns
// sql.ErrNoRows when no row carries the token.
func (r *UserRepo) GetByToken(ctx context.Context, token string) (model.User, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE token=? LIMIT 1", token)
	return scanUserRow(row)
}

// UpdateToken overwrites the stored token for a user. Called after a
// successful login; the previous token stops working as a lookup key.
func (r *UserRepo) UpdateToken(ctx context.Context, id uint64, token string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET token=? WHERE id=?", token, id)
	return err
}

// UpdateProfile overwrites the address/profile columns of a user.
func (r *UserRepo) UpdateProfile(ctx context.Context, id uint64, name, surname, street, city, postalCode string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET name=?, surname=?, street=?, city=?, postal_code=? WHERE id=?",
		name, surname, street, city, postalCode, id)
	return err
}

// UpdateRole sets a user's role. Role values are validated upstream.
func (r *UserRepo) UpdateRole(ctx context.Context, id uint64, role string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET role=? WHERE id=?", role, id)
	return err
}

// Delete removes a user by id. Reservations referencing the user remain.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
	return err
}

type rowScanner interface{ Scan(dest ...any) error }

func scanUser(s rowScanner) (model.User, error) {
	var (
		u     model.User
		token sql.NullString
	)
	err := s.Scan(&u.ID, &u.Username, &u.Password, &u.Role, &token,
		&u.Name, &u.Surname, &u.Street, &u.City, &u.PostalCode)
	if err != nil {
		return model.User{}, err
	}
	if token.Valid {
		u.Token = &token.String
	}
	return u, nil
}

func scanUserRow(row *sql.Row) (model.User, error) { return scanUser(row) }
