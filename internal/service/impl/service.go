// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/agora/internal/entities"
	"github.com/Decentr-net/agora/internal/metrics"
	"github.com/Decentr-net/agora/internal/service"
	"github.com/Decentr-net/agora/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

const (
	maxCommentLength = 280
	maxMessageLength = 1000
)

// service ...
type srv struct {
	s   storage.Storage
	v   *validator.Validate
	now func() time.Time
}

// New creates new instance of service.
func New(s storage.Storage) service.Service {
	return srv{
		s:   s,
		v:   validator.New(),
		now: time.Now,
	}
}

// apply runs f as one ledger transaction. The event returned by f is appended at the next height.
// A nil event means f changed nothing, so the height stays the same.
func (s srv) apply(ctx context.Context, op string, f func(s storage.Storage, now time.Time) (*entities.Event, error)) error {
	var height uint64

	err := s.s.InTx(ctx, func(tx storage.Storage) error {
		h, err := tx.GetHeight(ctx)
		if err != nil {
			return fmt.Errorf("failed to get height: %w", err)
		}

		now := s.now().UTC()

		e, err := f(tx, now)
		if err != nil {
			return err
		}

		if e == nil {
			return nil
		}

		e.Height, e.Timestamp = h+1, now

		if err := tx.AppendEvent(ctx, e); err != nil {
			return fmt.Errorf("failed to append event: %w", err)
		}

		if err := tx.SetHeight(ctx, e.Height); err != nil {
			return fmt.Errorf("failed to set height: %w", err)
		}

		height = e.Height

		return nil
	})

	metrics.Observe(op, err, isDomainError(err))

	if err != nil {
		return err
	}

	if height != 0 {
		metrics.Height.Set(float64(height))
		log.WithField("operation", op).WithField("height", height).Debug("committed")
	}

	return nil
}

func isDomainError(err error) bool {
	return errors.Is(err, service.ErrNotFound) ||
		errors.Is(err, service.ErrConflict) ||
		errors.Is(err, service.ErrUnauthorized) ||
		errors.Is(err, service.ErrInvalidArgument)
}

func (s srv) validate(v interface{}) error {
	if err := s.v.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", service.ErrInvalidArgument, err.Error())
	}

	return nil
}

func (s srv) validateVar(field string, v interface{}, tag string) error {
	if err := s.v.Var(v, tag); err != nil {
		return fmt.Errorf("%w: invalid %s: %s", service.ErrInvalidArgument, field, err.Error())
	}

	return nil
}

// mustExist returns ErrUserNotFound if address has no profile.
func mustExist(ctx context.Context, s storage.Storage, address string) (*entities.User, error) {
	u, err := s.GetUser(ctx, address)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// mustGetPost returns ErrPostNotFound if post is not allocated.
func mustGetPost(ctx context.Context, s storage.Storage, id uint64) (*entities.Post, error) {
	p, err := s.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrPostNotFound
		}

		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return p, nil
}

func (s srv) GetHeight(ctx context.Context) (uint64, error) {
	h, err := s.s.GetHeight(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get height from storage: %w", err)
	}

	return h, nil
}

func (s srv) ListEvents(ctx context.Context, after uint64, limit uint16) ([]*entities.Event, error) {
	ee, err := s.s.ListEvents(ctx, after, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return ee, nil
}
