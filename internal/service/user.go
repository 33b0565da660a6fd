package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
	"github.com/Ismail-Lafhiel/-evento/internal/service/ports"
)

type UserService struct {
	repo   ports.UserRepo
	logger logger.Logger
}

func NewUserService(repo ports.UserRepo, logger logger.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Mirror resolves a validated external identity to a local user, creating it
// with the default participant role on first sight and keeping the fullname
// current afterwards. Concurrent first requests for the same identity are
// reconciled through the unique constraint.
func (s *UserService) Mirror(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	identity.Email = strings.TrimSpace(strings.ToLower(identity.Email))
	identity.Username = strings.TrimSpace(identity.Username)
	if identity.Email == "" || identity.Username == "" {
		return nil, fmt.Errorf("%w: identity must carry email and username", domain.ErrValidation)
	}

	user, err := s.repo.GetByEmailOrUsername(ctx, identity.Email, identity.Username)
	switch {
	case err == nil:
		if identity.Fullname != "" && identity.Fullname != user.Fullname {
			if err = s.repo.UpdateFullname(ctx, user.ID, identity.Fullname); err != nil {
				return nil, fmt.Errorf("update mirrored user: %w", err)
			}
			user.Fullname = identity.Fullname
		}
		return user, nil

	case errors.Is(err, domain.ErrUserNotFound):
		user = &domain.User{
			ID:       uuid.New().String(),
			Fullname: identity.Fullname,
			Email:    identity.Email,
			Username: identity.Username,
			Role:     domain.RoleParticipant,
		}
		if createErr := s.repo.Create(ctx, user); createErr != nil {
			if errors.Is(createErr, domain.ErrEmailTaken) {
				// Lost the race against another request mirroring the same
				// identity; the winner's row is authoritative.
				return s.repo.GetByEmailOrUsername(ctx, identity.Email, identity.Username)
			}
			return nil, fmt.Errorf("create mirrored user: %w", createErr)
		}

		s.logger.Info("user mirrored",
			logger.String("user_id", user.ID),
			logger.String("username", user.Username),
		)
		return user, nil

	default:
		return nil, fmt.Errorf("find mirrored user: %w", err)
	}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Participants returns every participant-role user together with the count.
func (s *UserService) Participants(ctx context.Context) ([]*domain.User, int, error) {
	users, err := s.repo.ListByRole(ctx, domain.RoleParticipant)
	if err != nil {
		return nil, 0, fmt.Errorf("list participants: %w", err)
	}
	return users, len(users), nil
}
