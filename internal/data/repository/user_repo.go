package repository

import (
	"context"
	"errors"
	"fmt"

	"delivery-backend/internal/data/entity"
	"delivery-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error)
	SetResetOTP(ctx context.Context, id int64, otp *string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string, oldPasswords []string) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user and fills in the generated id and timestamps.
// A taken identifier yields ErrDuplicate.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (identifier, password, old_passwords, reset_otp)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	if user.OldPasswords == nil {
		user.OldPasswords = []string{}
	}

	err := ur.db.QueryRow(ctx, query,
		user.Identifier,
		user.PasswordHash,
		user.OldPasswords,
		user.ResetOTP,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if isUniqueViolation(err) {
		return fmt.Errorf("create user %s: %w", user.Identifier, ErrDuplicate)
	}
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("identifier", user.Identifier),
		)
		return fmt.Errorf("create user %s: %w", user.Identifier, err)
	}

	return nil
}

func (ur *userRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	query := `
		SELECT id, identifier, password, old_passwords, reset_otp, created_at, updated_at
		FROM users
		WHERE identifier = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, identifier).Scan(
		&user.ID,
		&user.Identifier,
		&user.PasswordHash,
		&user.OldPasswords,
		&user.ResetOTP,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by identifier",
			zap.Error(err),
			zap.String("identifier", identifier),
		)
		return nil, fmt.Errorf("find user by identifier %s: %w", identifier, err)
	}

	return &user, nil
}

// SetResetOTP stores otp on the account; nil clears it.
func (ur *userRepository) SetResetOTP(ctx context.Context, id int64, otp *string) error {
	query := `UPDATE users SET reset_otp = $2, updated_at = NOW() WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id, otp)
	if err != nil {
		ur.log.Error("Failed to update reset OTP", zap.Error(err), zap.Int64("user_id", id))
		return fmt.Errorf("update reset otp for user %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found", id)
	}

	return nil
}

func (ur *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string, oldPasswords []string) error {
	query := `
		UPDATE users
		SET password = $2, old_passwords = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query, id, passwordHash, oldPasswords)
	if err != nil {
		ur.log.Error("Failed to update password", zap.Error(err), zap.Int64("user_id", id))
		return fmt.Errorf("update password for user %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found", id)
	}

	return nil
}
