// Package repository provides the SQL credential stores backing authentication.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/quiz/internal/database"
	"github.com/allisson/quiz/internal/user/domain"

	apperrors "github.com/allisson/quiz/internal/errors"
)

const postgresSelectUser = `SELECT id, username, email, password_hash, role, created_at, updated_at FROM users`

// PostgreSQLUserRepository handles user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{
		db: db,
	}
}

// Save inserts a new user.
func (r *PostgreSQLUserRepository) Save(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, username, email, password_hash, role, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to save user")
	}
	return nil
}

// GetByID retrieves a user by ID.
func (r *PostgreSQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, postgresSelectUser+` WHERE id = $1`, id, "failed to get user by id")
}

// FindByUsername retrieves a user by exact username.
func (r *PostgreSQLUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, postgresSelectUser+` WHERE username = $1`, username, "failed to get user by username")
}

// FindByEmail retrieves a user by exact email.
func (r *PostgreSQLUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, postgresSelectUser+` WHERE email = $1`, email, "failed to get user by email")
}

// ExistsByUsername reports whether the username is taken.
func (r *PostgreSQLUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username)
}

// ExistsByEmail reports whether the email is taken.
func (r *PostgreSQLUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email)
}

// UpdateRole changes the role of the user with the given ID.
func (r *PostgreSQLUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, string(role), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user role")
	}
	return requireAffected(result)
}

func (r *PostgreSQLUserRepository) findOne(
	ctx context.Context,
	query string,
	arg any,
	errMessage string,
) (*domain.User, error) {
	var user domain.User
	var role string
	querier := database.GetTx(ctx, r.db)

	err := querier.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, errMessage)
	}

	user.Role = domain.Role(role)
	return &user, nil
}

func (r *PostgreSQLUserRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var exists bool
	querier := database.GetTx(ctx, r.db)

	if err := querier.QueryRowContext(ctx, query, arg).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check user existence")
	}
	return exists, nil
}

// requireAffected maps an update that touched no rows to ErrUserNotFound.
func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
