package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"eventra/internal/models"
	"eventra/internal/storage"

	"github.com/lib/pq"
)

func (s *Storage) CreateUser(user models.User) (int, error) {
	query := `
		INSERT INTO users (username, email, first_name, last_name, phone_number, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.PhoneNumber,
		user.PasswordHash,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, storage.ErrUserExists
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return id, nil
}

const userColumns = `id, username, email, first_name, last_name, COALESCE(phone_number, ''), password_hash, token_version`

func (s *Storage) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.PhoneNumber,
		&user.PasswordHash,
		&user.TokenVersion,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *Storage) GetUser(id int) (*models.User, error) {
	return s.scanUser(s.DB.QueryRow(
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (s *Storage) GetUserByUsername(username string) (*models.User, error) {
	return s.scanUser(s.DB.QueryRow(
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	return s.scanUser(s.DB.QueryRow(
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// BumpTokenVersion increments the user's session counter, invalidating every
// previously issued token in one write.
func (s *Storage) BumpTokenVersion(userID int) (int, error) {
	query := `
		UPDATE users
		SET token_version = token_version + 1
		WHERE id = $1
		RETURNING token_version`

	var version int
	err := s.DB.QueryRow(query, userID).Scan(&version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to bump token version: %w", err)
	}

	return version, nil
}
