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

// canChat is true when either side follows the other.
func canChat(ctx context.Context, s storage.Storage, a, b string) (bool, error) {
	ok, err := s.IsFollowing(ctx, a, b)
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	if ok {
		return true, nil
	}

	ok, err = s.IsFollowing(ctx, b, a)
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	return ok, nil
}

func (s srv) CanChat(ctx context.Context, a, b string) (bool, error) {
	return canChat(ctx, s.s, a, b)
}

func (s srv) SendMessage(ctx context.Context, caller, receiver, content string) (*entities.Message, error) {
	if err := s.validateVar("content", content, fmt.Sprintf("required,max=%d", maxMessageLength)); err != nil {
		return nil, err
	}

	var m *entities.Message

	if err := s.apply(ctx, "send_message", func(tx storage.Storage, now time.Time) (*entities.Event, error) {
		ok, err := canChat(ctx, tx, caller, receiver)
		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, service.ErrCannotChat
		}

		m = &entities.Message{
			Sender:    caller,
			Receiver:  receiver,
			Content:   content,
			CreatedAt: now,
		}

		id, err := tx.CreateMessage(ctx, m)
		if err != nil {
			return nil, fmt.Errorf("failed to create message: %w", err)
		}
		m.ID = id

		// message id is monotonic, so it orders recent chats
		if err := tx.TouchRecentChat(ctx, caller, receiver, id); err != nil {
			return nil, fmt.Errorf("failed to update sender's recent chats: %w", err)
		}

		if err := tx.TouchRecentChat(ctx, receiver, caller, id); err != nil {
			return nil, fmt.Errorf("failed to update receiver's recent chats: %w", err)
		}

		return entities.NewEvent(entities.MessageSentEventType, entities.MessageSent{
			ConversationKey: entities.ConversationKey(caller, receiver),
			Sender:          caller,
			Receiver:        receiver,
			MessageID:       id,
		})
	}); err != nil {
		return nil, err
	}

	return m, nil
}

func getMessage(ctx context.Context, s storage.Storage, id uint64) (*entities.Message, error) {
	m, err := s.GetMessage(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrMessageNotFound
		}

		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	return m, nil
}

func (s srv) GetMessage(ctx context.Context, id uint64) (*entities.Message, error) {
	return getMessage(ctx, s.s, id)
}

func (s srv) GetChatHistory(ctx context.Context, a, b string) ([]*entities.Message, error) {
	mm, err := s.s.ListChatHistory(ctx, a, b)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat history: %w", err)
	}

	return mm, nil
}

func (s srv) GetRecentChats(ctx context.Context, address string) ([]string, error) {
	out, err := s.s.ListRecentChats(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent chats: %w", err)
	}

	return out, nil
}

func (s srv) GetConversations(ctx context.Context, address string) ([]*entities.Conversation, error) {
	out, err := s.s.ListConversations(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	return out, nil
}

func (s srv) MarkMessageAsRead(ctx context.Context, caller string, id uint64) error {
	return s.apply(ctx, "mark_message_as_read", func(tx storage.Storage, _ time.Time) (*entities.Event, error) {
		m, err := getMessage(ctx, tx, id)
		if err != nil {
			return nil, err
		}

		if m.Receiver != caller {
			return nil, service.ErrNotReceiver
		}

		if m.IsRead {
			return nil, nil
		}

		if err := tx.MarkMessageRead(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to mark message as read: %w", err)
		}

		return entities.NewEvent(entities.MessageReadEventType, entities.MessageRead{
			MessageID: id,
			Receiver:  caller,
		})
	})
}

func (s srv) MarkAllMessagesAsRead(ctx context.Context, caller, sender string) error {
	return s.apply(ctx, "mark_all_messages_as_read", func(tx storage.Storage, _ time.Time) (*entities.Event, error) {
		c, err := tx.MarkAllMessagesRead(ctx, caller, sender)
		if err != nil {
			return nil, fmt.Errorf("failed to mark messages as read: %w", err)
		}

		if c == 0 {
			return nil, nil
		}

		return entities.NewEvent(entities.MessagesReadEventType, entities.MessagesRead{
			Receiver: caller,
			Sender:   sender,
			Count:    c,
		})
	})
}

func (s srv) GetUnreadMessageCount(ctx context.Context, receiver, sender string) (uint32, error) {
	c, err := s.s.CountUnread(ctx, receiver, &sender)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}

	return c, nil
}

func (s srv) GetTotalUnreadMessages(ctx context.Context, receiver string) (uint32, error) {
	c, err := s.s.CountUnread(ctx, receiver, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}

	return c, nil
}
