package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/Decentr-net/agora/internal/entities"
	"github.com/Decentr-net/agora/internal/service"
	"github.com/Decentr-net/agora/internal/storage"
)

func (s srv) Follow(ctx context.Context, caller, target string) error {
	if caller == target {
		return service.ErrSelfFollow
	}

	return s.apply(ctx, "follow", func(tx storage.Storage, _ time.Time) (*entities.Event, error) {
		if _, err := mustExist(ctx, tx, caller); err != nil {
			return nil, err
		}

		if _, err := mustExist(ctx, tx, target); err != nil {
			return nil, err
		}

		ok, err := tx.IsFollowing(ctx, caller, target)
		if err != nil {
			return nil, fmt.Errorf("failed to check follow: %w", err)
		}

		if ok {
			return nil, service.ErrAlreadyFollowing
		}

		if err := tx.Follow(ctx, caller, target); err != nil {
			return nil, fmt.Errorf("failed to follow: %w", err)
		}

		if err := updateFollowCounters(ctx, tx, caller, target, 1); err != nil {
			return nil, err
		}

		return entities.NewEvent(entities.FollowedEventType, entities.FollowChanged{
			Follower: caller,
			Followee: target,
		})
	})
}

func (s srv) Unfollow(ctx context.Context, caller, target string) error {
	return s.apply(ctx, "unfollow", func(tx storage.Storage, _ time.Time) (*entities.Event, error) {
		ok, err := tx.IsFollowing(ctx, caller, target)
		if err != nil {
			return nil, fmt.Errorf("failed to check follow: %w", err)
		}

		if !ok {
			return nil, service.ErrNotFollowing
		}

		if err := tx.Unfollow(ctx, caller, target); err != nil {
			return nil, fmt.Errorf("failed to unfollow: %w", err)
		}

		if err := updateFollowCounters(ctx, tx, caller, target, -1); err != nil {
			return nil, err
		}

		return entities.NewEvent(entities.UnfollowedEventType, entities.FollowChanged{
			Follower: caller,
			Followee: target,
		})
	})
}

// updateFollowCounters keeps both sides of the edge in lockstep.
func updateFollowCounters(ctx context.Context, tx storage.Storage, follower, followee string, d int32) error {
	if err := tx.UpdateUserCounters(ctx, follower, storage.UserCountersDelta{Following: d}); err != nil {
		return fmt.Errorf("failed to update follower counters: %w", err)
	}

	if err := tx.UpdateUserCounters(ctx, followee, storage.UserCountersDelta{Followers: d}); err != nil {
		return fmt.Errorf("failed to update followee counters: %w", err)
	}

	return nil
}

func (s srv) IsFollowing(ctx context.Context, follower, followee string) (bool, error) {
	ok, err := s.s.IsFollowing(ctx, follower, followee)
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	return ok, nil
}

func (s srv) GetFollowers(ctx context.Context, address string) ([]string, error) {
	out, err := s.s.ListFollowers(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}

	return out, nil
}

func (s srv) GetFollowing(ctx context.Context, address string) ([]string, error) {
	out, err := s.s.ListFollowing(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}

	return out, nil
}
