package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/domain"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/repository"
	apperrors "github.com/prekshaaaaaaaa/coliving-backend/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// Resolver maps heterogeneous identifiers (numeric id, email, external auth
// UID) to canonical user ids. Resolve is read-only; GetOrCreate may
// fabricate a placeholder user. Callers choose explicitly.
type Resolver interface {
	Resolve(ctx context.Context, identifier string) (int, error)
	GetOrCreate(ctx context.Context, identifier string) (int, error)
}

type IdentityUseCase struct {
	userRepo repository.UserRepository
	caps     repository.Capabilities
}

func NewIdentityUseCase(userRepo repository.UserRepository, caps repository.Capabilities) *IdentityUseCase {
	return &IdentityUseCase{
		userRepo: userRepo,
		caps:     caps,
	}
}

// normalize URL-decodes and trims an identifier; a failed decode falls back
// to the raw input.
func normalize(identifier string) string {
	if decoded, err := url.QueryUnescape(identifier); err == nil {
		identifier = decoded
	}
	return strings.TrimSpace(identifier)
}

// Resolve tries, in order: numeric user id, case-insensitive email,
// external auth UID. First hit wins; a miss on every strategy is
// ErrUserNotFound.
func (uc *IdentityUseCase) Resolve(ctx context.Context, identifier string) (int, error) {
	id := normalize(identifier)
	if id == "" {
		return 0, apperrors.ErrUserNotFound
	}

	if n, convErr := strconv.Atoi(id); convErr == nil {
		user, err := uc.userRepo.GetByID(ctx, n)
		if err == nil {
			return user.ID, nil
		}
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			return 0, err
		}
	}

	if strings.Contains(id, "@") {
		user, err := uc.userRepo.GetByEmail(ctx, id)
		if err == nil {
			return user.ID, nil
		}
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			return 0, err
		}
	}

	if uc.caps.ExternalUID {
		user, err := uc.userRepo.GetByFirebaseUID(ctx, id)
		if err == nil {
			return user.ID, nil
		}
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			return 0, err
		}
	}

	return 0, apperrors.ErrUserNotFound
}

// GetOrCreate resolves, and on a miss creates a placeholder user with
// synthesized required fields. Losing the insert race to a concurrent
// GetOrCreate for the same identifier recovers the winner's row, so the
// same identifier always lands on the same id.
func (uc *IdentityUseCase) GetOrCreate(ctx context.Context, identifier string) (int, error) {
	userID, err := uc.Resolve(ctx, identifier)
	if err == nil {
		return userID, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return 0, err
	}

	id := normalize(identifier)
	if id == "" {
		return 0, apperrors.ErrUserNotFound
	}

	user, err := uc.placeholderUser(id)
	if err != nil {
		return 0, apperrors.ErrPlaceholderCreateFailed(err)
	}

	createErr := uc.userRepo.CreatePlaceholder(ctx, user)
	if createErr == nil {
		slog.Warn("auto-created placeholder user", "user_id", user.ID, "identifier", id)
		return user.ID, nil
	}

	// Conflict or constraint failure: another resolution likely won the
	// race. Re-query before treating this as final.
	if strings.Contains(id, "@") {
		if u, lookupErr := uc.userRepo.GetByEmail(ctx, id); lookupErr == nil {
			return u.ID, nil
		}
	}
	if uc.caps.ExternalUID {
		if u, lookupErr := uc.userRepo.GetByFirebaseUID(ctx, id); lookupErr == nil {
			return u.ID, nil
		}
	}

	return 0, apperrors.ErrPlaceholderCreateFailed(createErr)
}

// placeholderUser synthesizes the NOT NULL columns a minimal users row
// needs: a 12-char national-id stand-in and a bcrypt-hashed throwaway
// password. Which identity column carries the identifier follows the
// deployment capability set.
func (uc *IdentityUseCase) placeholderUser(identifier string) (*domain.User, error) {
	aadhar := fmt.Sprintf("P%d", time.Now().UnixMilli())
	if len(aadhar) > 12 {
		aadhar = aadhar[len(aadhar)-12:]
	}
	for len(aadhar) < 12 {
		aadhar = "0" + aadhar
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("p_"+uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	password := string(hashed)

	user := &domain.User{
		Password: &password,
		AadharNo: &aadhar,
	}

	switch {
	case strings.Contains(identifier, "@") && uc.caps.Email:
		name := strings.SplitN(identifier, "@", 2)[0]
		if name == "" {
			name = "Pending User"
		}
		user.Name = name
		email := identifier
		user.Email = &email
	case uc.caps.ExternalUID:
		user.Name = truncate(identifier, 20)
		uid := identifier
		user.FirebaseUID = &uid
	default:
		user.Name = truncate(identifier, 20)
	}
	if user.Name == "" {
		user.Name = "Pending User"
	}

	return user, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
