package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/domain"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/repository"
	apperrors "github.com/prekshaaaaaaaa/coliving-backend/pkg/errors"
)

type userRepository struct {
	db   *sqlx.DB
	caps repository.Capabilities
}

func NewUserRepository(db *sqlx.DB, caps repository.Capabilities) repository.UserRepository {
	return &userRepository{db: db, caps: caps}
}

// selectCols builds the users column list around the optional identity
// columns so queries stay valid on schemas that lack them.
func (r *userRepository) selectCols() string {
	cols := []string{"user_id", "name", "password", "aadhar_no", "user_type", "created_at"}
	if r.caps.Email {
		cols = append(cols, "email")
	} else {
		cols = append(cols, "NULL::text AS email")
	}
	if r.caps.ExternalUID {
		cols = append(cols, "firebase_uid")
	} else {
		cols = append(cols, "NULL::text AS firebase_uid")
	}
	return strings.Join(cols, ", ")
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	query := fmt.Sprintf(`SELECT %s FROM users WHERE user_id = $1`, r.selectCols())
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if !r.caps.Email {
		return nil, apperrors.ErrUserNotFound
	}
	var user domain.User
	query := fmt.Sprintf(`SELECT %s FROM users WHERE LOWER(email) = LOWER($1) LIMIT 1`, r.selectCols())
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByFirebaseUID(ctx context.Context, uid string) (*domain.User, error) {
	if !r.caps.ExternalUID {
		return nil, apperrors.ErrUserNotFound
	}
	var user domain.User
	query := fmt.Sprintf(`SELECT %s FROM users WHERE firebase_uid = $1 LIMIT 1`, r.selectCols())
	err := r.db.GetContext(ctx, &user, query, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreatePlaceholder inserts only the columns the caller filled in, so the
// statement never references a column the schema lacks. ON CONFLICT DO
// NOTHING drops the row when a concurrent resolve won the race; that
// surfaces as ErrUserExists and the caller re-queries.
func (r *userRepository) CreatePlaceholder(ctx context.Context, user *domain.User) error {
	cols := []string{"name"}
	args := []interface{}{user.Name}

	if user.Email != nil {
		cols = append(cols, "email")
		args = append(args, *user.Email)
	}
	if user.FirebaseUID != nil {
		cols = append(cols, "firebase_uid")
		args = append(args, *user.FirebaseUID)
	}
	if user.Password != nil {
		cols = append(cols, "password")
		args = append(args, *user.Password)
	}
	if user.AadharNo != nil {
		cols = append(cols, "aadhar_no")
		args = append(args, *user.AadharNo)
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`
		INSERT INTO users (%s) VALUES (%s)
		ON CONFLICT DO NOTHING
		RETURNING user_id, created_at
	`, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrUserExists
		}
		return err
	}
	return nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (name, email, password, aadhar_no, user_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.Password, user.AadharNo, user.UserType,
	).Scan(&user.ID, &user.CreatedAt)
}

func (r *userRepository) List(ctx context.Context, limit int) ([]*domain.User, error) {
	var users []*domain.User
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY user_id DESC LIMIT $1`, r.selectCols())
	err := r.db.SelectContext(ctx, &users, query, limit)
	return users, err
}
