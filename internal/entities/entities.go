// Package entities contains main entities of service.
package entities

import (
	"fmt"
	"time"
)

// User ...
type User struct {
	ID             uint64
	Address        string
	Username       string
	Bio            string
	ProfileImage   string
	FollowerCount  uint32
	FollowingCount uint32
	RewardsBalance int64
	CreatedAt      time.Time
}

// Post ...
type Post struct {
	ID           uint64
	Author       string
	Content      string
	Media        string
	LikeCount    uint32
	CommentCount uint32
	ShareCount   uint32
	RewardAmount int64
	CreatedAt    time.Time
}

// Comment belongs to a post, ID is sequential within the post.
type Comment struct {
	PostID    uint64
	ID        uint64
	Author    string
	Content   string
	CreatedAt time.Time
}

// Engagement is a per (address, post) pair of like and share facts.
type Engagement struct {
	Address string
	PostID  uint64
	Liked   bool
	Shared  bool
}

// Reward ...
type Reward struct {
	PostID    uint64
	Sender    string
	Recipient string
	Amount    int64
	CreatedAt time.Time
}

// Message ...
type Message struct {
	ID        uint64
	Sender    string
	Receiver  string
	Content   string
	IsRead    bool
	CreatedAt time.Time
}

// Conversation is a summary of the messages between an owner and a counterpart.
type Conversation struct {
	Counterpart   string
	LastMessageID uint64
	LastMessageAt time.Time
	UnreadCount   uint32
}

// ConversationKey returns the same key for (a, b) and (b, a).
func ConversationKey(a, b string) string {
	if a > b {
		a, b = b, a
	}

	return fmt.Sprintf("%s/%s", a, b)
}
