// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"

	"github.com/Decentr-net/agora/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// Storage provides methods for interacting with database.
type Storage interface {
	// InTx runs f exclusively: no other InTx runs concurrently and readers never observe f's partial changes.
	// Changes are committed only when f returns nil.
	InTx(ctx context.Context, f func(s Storage) error) error
	SetHeight(ctx context.Context, height uint64) error
	GetHeight(ctx context.Context) (uint64, error)

	CreateUser(ctx context.Context, u *entities.User) (uint64, error)
	GetUser(ctx context.Context, address string) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	CountUsers(ctx context.Context) (uint64, error)
	UpdateUserCounters(ctx context.Context, address string, d UserCountersDelta) error

	CreatePost(ctx context.Context, p *entities.Post) (uint64, error)
	GetPost(ctx context.Context, id uint64) (*entities.Post, error)
	CountPosts(ctx context.Context) (uint64, error)
	ListUserPostIDs(ctx context.Context, author string) ([]uint64, error)
	UpdatePostCounters(ctx context.Context, id uint64, d PostCountersDelta) error
	AddComment(ctx context.Context, c *entities.Comment) (uint64, error)
	ListComments(ctx context.Context, postID uint64) ([]*entities.Comment, error)

	Follow(ctx context.Context, follower, followee string) error
	Unfollow(ctx context.Context, follower, followee string) error
	IsFollowing(ctx context.Context, follower, followee string) (bool, error)
	ListFollowers(ctx context.Context, address string) ([]string, error)
	ListFollowing(ctx context.Context, address string) ([]string, error)

	GetEngagement(ctx context.Context, address string, postID uint64) (*entities.Engagement, error)
	SetEngagement(ctx context.Context, e *entities.Engagement) error

	AddBalance(ctx context.Context, address string, amount int64) error
	GetBalance(ctx context.Context, address string) (int64, error)
	AddReward(ctx context.Context, r *entities.Reward) error

	CreateMessage(ctx context.Context, msg *entities.Message) (uint64, error)
	GetMessage(ctx context.Context, id uint64) (*entities.Message, error)
	ListChatHistory(ctx context.Context, a, b string) ([]*entities.Message, error)
	MarkMessageRead(ctx context.Context, id uint64) error
	MarkAllMessagesRead(ctx context.Context, receiver, sender string) (uint32, error)
	CountUnread(ctx context.Context, receiver string, sender *string) (uint32, error)
	TouchRecentChat(ctx context.Context, owner, counterpart string, messageID uint64) error
	ListRecentChats(ctx context.Context, owner string) ([]string, error)
	ListConversations(ctx context.Context, owner string) ([]*entities.Conversation, error)

	AppendEvent(ctx context.Context, e *entities.Event) error
	ListEvents(ctx context.Context, after uint64, limit uint16) ([]*entities.Event, error)
}

// UserCountersDelta is applied to user's counters.
type UserCountersDelta struct {
	Followers      int32
	Following      int32
	RewardsBalance int64
}

// PostCountersDelta is applied to post's counters.
type PostCountersDelta struct {
	Likes        int32
	Comments     int32
	Shares       int32
	RewardAmount int64
}
