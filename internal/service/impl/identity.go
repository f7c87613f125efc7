package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Decentr-net/agora/internal/entities"
	"github.com/Decentr-net/agora/internal/service"
	"github.com/Decentr-net/agora/internal/storage"
)

func (s srv) CreateUser(ctx context.Context, caller string, p service.CreateUserParams) (*entities.User, error) {
	if err := s.validate(p); err != nil {
		return nil, err
	}

	var u *entities.User

	if err := s.apply(ctx, "create_user", func(tx storage.Storage, now time.Time) (*entities.Event, error) {
		if _, err := tx.GetUser(ctx, caller); err == nil {
			return nil, service.ErrAlreadyExists
		} else if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}

		if _, err := tx.GetUserByUsername(ctx, p.Username); err == nil {
			return nil, service.ErrNameTaken
		} else if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to get user by username: %w", err)
		}

		u = &entities.User{
			Address:      caller,
			Username:     p.Username,
			Bio:          p.Bio,
			ProfileImage: p.ProfileImage,
			CreatedAt:    now,
		}

		id, err := tx.CreateUser(ctx, u)
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		u.ID = id

		return entities.NewEvent(entities.UserCreatedEventType, entities.UserCreated{
			UserID:   id,
			Address:  caller,
			Username: p.Username,
		})
	}); err != nil {
		return nil, err
	}

	return u, nil
}

func (s srv) GetUser(ctx context.Context, address string) (*entities.User, error) {
	return mustExist(ctx, s.s, address)
}

func (s srv) SearchByUsername(ctx context.Context, username string) (*entities.User, error) {
	u, err := s.s.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return u, nil
}

func (s srv) GetTotalUsers(ctx context.Context) (uint64, error) {
	c, err := s.s.CountUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return c, nil
}
