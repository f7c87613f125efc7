package entities

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType ...
type EventType string

// nolint:golint
const (
	UserCreatedEventType  EventType = "user_created"
	PostCreatedEventType  EventType = "post_created"
	CommentAddedEventType EventType = "comment_added"
	LikedEventType        EventType = "liked"
	UnlikedEventType      EventType = "unliked"
	SharedEventType       EventType = "shared"
	FollowedEventType     EventType = "followed"
	UnfollowedEventType   EventType = "unfollowed"
	RewardSentEventType   EventType = "reward_sent"
	DepositedEventType    EventType = "deposited"
	MessageSentEventType  EventType = "message_sent"
	MessageReadEventType  EventType = "message_read"
	MessagesReadEventType EventType = "messages_read"
)

// Event is a committed ledger transaction outcome. Height is the transaction's position in the ledger.
type Event struct {
	Height    uint64
	Type      EventType
	Timestamp time.Time
	Payload   json.RawMessage
}

// NewEvent marshals payload into the event.
func NewEvent(t EventType, payload interface{}) (*Event, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", t, err)
	}

	return &Event{
		Type:    t,
		Payload: b,
	}, nil
}

// UserCreated ...
type UserCreated struct {
	UserID   uint64 `json:"user_id"`
	Address  string `json:"address"`
	Username string `json:"username"`
}

// PostCreated ...
type PostCreated struct {
	PostID  uint64 `json:"post_id"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

// CommentAdded ...
type CommentAdded struct {
	PostID    uint64 `json:"post_id"`
	CommentID uint64 `json:"comment_id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
}

// Engaged is a payload for liked, unliked and shared events.
type Engaged struct {
	PostID  uint64 `json:"post_id"`
	Address string `json:"address"`
}

// FollowChanged is a payload for followed and unfollowed events.
type FollowChanged struct {
	Follower string `json:"follower"`
	Followee string `json:"followee"`
}

// RewardSent ...
type RewardSent struct {
	PostID    uint64 `json:"post_id"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
}

// Deposited ...
type Deposited struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
}

// MessageSent ...
type MessageSent struct {
	ConversationKey string `json:"conversation_key"`
	Sender          string `json:"sender"`
	Receiver        string `json:"receiver"`
	MessageID       uint64 `json:"message_id"`
}

// MessageRead ...
type MessageRead struct {
	MessageID uint64 `json:"message_id"`
	Receiver  string `json:"receiver"`
}

// MessagesRead ...
type MessagesRead struct {
	Receiver string `json:"receiver"`
	Sender   string `json:"sender"`
	Count    uint32 `json:"count"`
}
