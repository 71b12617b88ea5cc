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

const mysqlSelectUser = `SELECT id, username, email, password_hash, role, created_at, updated_at FROM users`

// MySQLUserRepository handles user persistence for MySQL. IDs are stored as BINARY(16).
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{
		db: db,
	}
}

// Save inserts a new user.
func (r *MySQLUserRepository) Save(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, username, email, password_hash, role, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query,
		id, user.Username, user.Email, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
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
func (r *MySQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}
	return r.findOne(ctx, mysqlSelectUser+` WHERE id = ?`, idBytes, "failed to get user by id")
}

// FindByUsername retrieves a user by exact username.
func (r *MySQLUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, mysqlSelectUser+` WHERE username = ?`, username, "failed to get user by username")
}

// FindByEmail retrieves a user by exact email.
func (r *MySQLUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, mysqlSelectUser+` WHERE email = ?`, email, "failed to get user by email")
}

// ExistsByUsername reports whether the username is taken.
func (r *MySQLUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = ?)`, username)
}

// ExistsByEmail reports whether the email is taken.
func (r *MySQLUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = ?)`, email)
}

// UpdateRole changes the role of the user with the given ID.
func (r *MySQLUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `UPDATE users SET role = ?, updated_at = NOW(6) WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, string(role), idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user role")
	}
	return requireAffected(result)
}

func (r *MySQLUserRepository) findOne(
	ctx context.Context,
	query string,
	arg any,
	errMessage string,
) (*domain.User, error) {
	var user domain.User
	var idBytes []byte
	var role string
	querier := database.GetTx(ctx, r.db)

	err := querier.QueryRowContext(ctx, query, arg).Scan(
		&idBytes, &user.Username, &user.Email, &user.PasswordHash, &role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, errMessage)
	}

	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	user.Role = domain.Role(role)
	return &user, nil
}

func (r *MySQLUserRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var exists bool
	querier := database.GetTx(ctx, r.db)

	if err := querier.QueryRowContext(ctx, query, arg).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check user existence")
	}
	return exists, nil
}
