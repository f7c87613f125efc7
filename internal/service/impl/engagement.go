package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/Decentr-net/agora/internal/entities"
	"github.com/Decentr-net/agora/internal/service"
	"github.com/Decentr-net/agora/internal/storage"
)

// engage loads caller's engagement with the post and lets f change it.
// f returns the counters delta and the event type, or a domain error.
func (s srv) engage(
	ctx context.Context,
	op string,
	caller string,
	postID uint64,
	f func(e *entities.Engagement) (storage.PostCountersDelta, entities.EventType, error),
) error {
	return s.apply(ctx, op, func(tx storage.Storage, _ time.Time) (*entities.Event, error) {
		if _, err := mustGetPost(ctx, tx, postID); err != nil {
			return nil, err
		}

		if _, err := mustExist(ctx, tx, caller); err != nil {
			return nil, err
		}

		e, err := tx.GetEngagement(ctx, caller, postID)
		if err != nil {
			return nil, fmt.Errorf("failed to get engagement: %w", err)
		}

		d, t, err := f(e)
		if err != nil {
			return nil, err
		}

		if err := tx.SetEngagement(ctx, e); err != nil {
			return nil, fmt.Errorf("failed to set engagement: %w", err)
		}

		if err := tx.UpdatePostCounters(ctx, postID, d); err != nil {
			return nil, fmt.Errorf("failed to update post counters: %w", err)
		}

		return entities.NewEvent(t, entities.Engaged{
			PostID:  postID,
			Address: caller,
		})
	})
}

func (s srv) Like(ctx context.Context, caller string, postID uint64) error {
	return s.engage(ctx, "like", caller, postID,
		func(e *entities.Engagement) (storage.PostCountersDelta, entities.EventType, error) {
			if e.Liked {
				return storage.PostCountersDelta{}, "", service.ErrAlreadyLiked
			}
			e.Liked = true

			return storage.PostCountersDelta{Likes: 1}, entities.LikedEventType, nil
		},
	)
}

func (s srv) Unlike(ctx context.Context, caller string, postID uint64) error {
	return s.engage(ctx, "unlike", caller, postID,
		func(e *entities.Engagement) (storage.PostCountersDelta, entities.EventType, error) {
			if !e.Liked {
				return storage.PostCountersDelta{}, "", service.ErrNotLiked
			}
			e.Liked = false

			return storage.PostCountersDelta{Likes: -1}, entities.UnlikedEventType, nil
		},
	)
}

func (s srv) Share(ctx context.Context, caller string, postID uint64) error {
	return s.engage(ctx, "share", caller, postID,
		func(e *entities.Engagement) (storage.PostCountersDelta, entities.EventType, error) {
			if e.Shared {
				return storage.PostCountersDelta{}, "", service.ErrAlreadyShared
			}
			e.Shared = true

			return storage.PostCountersDelta{Shares: 1}, entities.SharedEventType, nil
		},
	)
}

func (s srv) GetEngagement(ctx context.Context, address string, postID uint64) (*entities.Engagement, error) {
	if _, err := mustGetPost(ctx, s.s, postID); err != nil {
		return nil, err
	}

	e, err := s.s.GetEngagement(ctx, address, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get engagement: %w", err)
	}

	return e, nil
}
