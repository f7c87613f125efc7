package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/Decentr-net/agora/internal/entities"
	"github.com/Decentr-net/agora/internal/service"
	"github.com/Decentr-net/agora/internal/storage"
)

func (s srv) SendReward(ctx context.Context, caller string, postID uint64, amount int64) error {
	if amount <= 0 {
		return service.ErrZeroAmount
	}

	return s.apply(ctx, "send_reward", func(tx storage.Storage, now time.Time) (*entities.Event, error) {
		p, err := mustGetPost(ctx, tx, postID)
		if err != nil {
			return nil, err
		}

		if err := transfer(ctx, tx, caller, p.Author, amount); err != nil {
			return nil, err
		}

		if err := tx.UpdatePostCounters(ctx, postID, storage.PostCountersDelta{RewardAmount: amount}); err != nil {
			return nil, fmt.Errorf("failed to update post counters: %w", err)
		}

		if err := tx.UpdateUserCounters(ctx, p.Author, storage.UserCountersDelta{RewardsBalance: amount}); err != nil {
			return nil, fmt.Errorf("failed to update author counters: %w", err)
		}

		if err := tx.AddReward(ctx, &entities.Reward{
			PostID:    postID,
			Sender:    caller,
			Recipient: p.Author,
			Amount:    amount,
			CreatedAt: now,
		}); err != nil {
			return nil, fmt.Errorf("failed to add reward: %w", err)
		}

		return entities.NewEvent(entities.RewardSentEventType, entities.RewardSent{
			PostID:    postID,
			Sender:    caller,
			Recipient: p.Author,
			Amount:    amount,
		})
	})
}

// transfer moves native value between accounts.
func transfer(ctx context.Context, tx storage.Storage, from, to string, amount int64) error {
	b, err := tx.GetBalance(ctx, from)
	if err != nil {
		return fmt.Errorf("failed to get balance: %w", err)
	}

	if b < amount {
		return service.ErrInsufficientFunds
	}

	if err := tx.AddBalance(ctx, from, -amount); err != nil {
		return fmt.Errorf("failed to withdraw: %w", err)
	}

	if err := tx.AddBalance(ctx, to, amount); err != nil {
		return fmt.Errorf("failed to deposit: %w", err)
	}

	return nil
}

func (s srv) Deposit(ctx context.Context, address string, amount int64) error {
	if amount <= 0 {
		return service.ErrZeroAmount
	}

	return s.apply(ctx, "deposit", func(tx storage.Storage, _ time.Time) (*entities.Event, error) {
		if err := tx.AddBalance(ctx, address, amount); err != nil {
			return nil, fmt.Errorf("failed to deposit: %w", err)
		}

		return entities.NewEvent(entities.DepositedEventType, entities.Deposited{
			Address: address,
			Amount:  amount,
		})
	})
}

func (s srv) GetBalance(ctx context.Context, address string) (int64, error) {
	b, err := s.s.GetBalance(ctx, address)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}

	return b, nil
}
