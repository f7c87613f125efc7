// Package service contains interface for ledger business-logic.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Decentr-net/agora/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// Error categories. Every error returned by Service either wraps one of them or is an internal failure.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidArgument = errors.New("invalid argument")
)

// nolint:gochecknoglobals
var (
	ErrUserNotFound      = fmt.Errorf("%w: user does not exist", ErrNotFound)
	ErrPostNotFound      = fmt.Errorf("%w: post does not exist", ErrNotFound)
	ErrMessageNotFound   = fmt.Errorf("%w: message does not exist", ErrNotFound)
	ErrAlreadyExists     = fmt.Errorf("%w: user already exists", ErrConflict)
	ErrNameTaken         = fmt.Errorf("%w: username already taken", ErrConflict)
	ErrAlreadyFollowing  = fmt.Errorf("%w: already following this user", ErrConflict)
	ErrNotFollowing      = fmt.Errorf("%w: not following this user", ErrConflict)
	ErrAlreadyLiked      = fmt.Errorf("%w: post already liked", ErrConflict)
	ErrNotLiked          = fmt.Errorf("%w: post not liked", ErrConflict)
	ErrAlreadyShared     = fmt.Errorf("%w: post already shared", ErrConflict)
	ErrCannotChat        = fmt.Errorf("%w: cannot chat with this user, one of you must follow the other", ErrUnauthorized)
	ErrNotReceiver       = fmt.Errorf("%w: only the receiver can mark messages as read", ErrUnauthorized)
	ErrSelfFollow        = fmt.Errorf("%w: cannot follow yourself", ErrInvalidArgument)
	ErrZeroAmount        = fmt.Errorf("%w: reward amount must be greater than 0", ErrInvalidArgument)
	ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds", ErrInvalidArgument)
)

// Service is the ledger. Every mutating method takes the authenticated caller principal,
// commits exactly one event on success and changes nothing on failure.
type Service interface {
	GetHeight(ctx context.Context) (uint64, error)
	ListEvents(ctx context.Context, after uint64, limit uint16) ([]*entities.Event, error)

	CreateUser(ctx context.Context, caller string, p CreateUserParams) (*entities.User, error)
	GetUser(ctx context.Context, address string) (*entities.User, error)
	SearchByUsername(ctx context.Context, username string) (*entities.User, error)
	GetTotalUsers(ctx context.Context) (uint64, error)

	CreatePost(ctx context.Context, caller string, p CreatePostParams) (*entities.Post, error)
	AddComment(ctx context.Context, caller string, postID uint64, content string) (*entities.Comment, error)
	GetPost(ctx context.Context, id uint64) (*entities.Post, error)
	GetComments(ctx context.Context, postID uint64) ([]*entities.Comment, error)
	GetUserPostIDs(ctx context.Context, author string) ([]uint64, error)
	GetTotalPosts(ctx context.Context) (uint64, error)

	Follow(ctx context.Context, caller, target string) error
	Unfollow(ctx context.Context, caller, target string) error
	IsFollowing(ctx context.Context, follower, followee string) (bool, error)
	GetFollowers(ctx context.Context, address string) ([]string, error)
	GetFollowing(ctx context.Context, address string) ([]string, error)

	Like(ctx context.Context, caller string, postID uint64) error
	Unlike(ctx context.Context, caller string, postID uint64) error
	Share(ctx context.Context, caller string, postID uint64) error
	GetEngagement(ctx context.Context, address string, postID uint64) (*entities.Engagement, error)

	SendReward(ctx context.Context, caller string, postID uint64, amount int64) error
	Deposit(ctx context.Context, address string, amount int64) error
	GetBalance(ctx context.Context, address string) (int64, error)

	CanChat(ctx context.Context, a, b string) (bool, error)
	SendMessage(ctx context.Context, caller, receiver, content string) (*entities.Message, error)
	GetMessage(ctx context.Context, id uint64) (*entities.Message, error)
	GetChatHistory(ctx context.Context, a, b string) ([]*entities.Message, error)
	GetRecentChats(ctx context.Context, address string) ([]string, error)
	GetConversations(ctx context.Context, address string) ([]*entities.Conversation, error)
	MarkMessageAsRead(ctx context.Context, caller string, id uint64) error
	MarkAllMessagesAsRead(ctx context.Context, caller, sender string) error
	GetUnreadMessageCount(ctx context.Context, receiver, sender string) (uint32, error)
	GetTotalUnreadMessages(ctx context.Context, receiver string) (uint32, error)
}

// CreateUserParams ...
type CreateUserParams struct {
	Username     string `validate:"required,max=32"`
	Bio          string `validate:"max=500"`
	ProfileImage string `validate:"max=256"`
}

// CreatePostParams ...
type CreatePostParams struct {
	Content string `validate:"max=280,required_without=Media"`
	Media   string `validate:"max=256"`
}
