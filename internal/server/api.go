package server

import (
	"encoding/json"

	"github.com/Decentr-net/agora/internal/entities"
)

const maxLimit = 1000
const defaultLimit = 100

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// Profile ...
// swagger:model
type Profile struct {
	ID             uint64 `json:"id"`
	Address        string `json:"address"`
	Username       string `json:"username"`
	Bio            string `json:"bio"`
	ProfileImage   string `json:"profileImage"`
	FollowerCount  uint32 `json:"followerCount"`
	FollowingCount uint32 `json:"followingCount"`
	RewardsBalance int64  `json:"rewardsBalance"`
	CreatedAt      uint64 `json:"createdAt"`
}

// CreateUserRequest ...
// swagger:model
type CreateUserRequest struct {
	Username     string `json:"username"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`
}

// Post ...
// swagger:model
type Post struct {
	ID            uint64 `json:"id"`
	Author        string `json:"author"`
	Content       string `json:"content"`
	Media         string `json:"media"`
	LikesCount    uint32 `json:"likesCount"`
	CommentsCount uint32 `json:"commentsCount"`
	SharesCount   uint32 `json:"sharesCount"`
	RewardAmount  int64  `json:"rewardAmount"`
	CreatedAt     uint64 `json:"createdAt"`
}

// CreatePostRequest ...
// swagger:model
type CreatePostRequest struct {
	Content string `json:"content"`
	Media   string `json:"media"`
}

// Comment ...
// swagger:model
type Comment struct {
	PostID    uint64 `json:"postId"`
	ID        uint64 `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt uint64 `json:"createdAt"`
}

// AddCommentRequest ...
// swagger:model
type AddCommentRequest struct {
	Content string `json:"content"`
}

// Engagement is caller's hasLiked/hasShared flags of the post.
// swagger:model
type Engagement struct {
	Liked  bool `json:"liked"`
	Shared bool `json:"shared"`
}

// SendRewardRequest ...
// swagger:model
type SendRewardRequest struct {
	Amount int64 `json:"amount"`
}

// Message ...
// swagger:model
type Message struct {
	ID        uint64 `json:"id"`
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	Content   string `json:"content"`
	IsRead    bool   `json:"isRead"`
	CreatedAt uint64 `json:"createdAt"`
}

// SendMessageRequest ...
// swagger:model
type SendMessageRequest struct {
	Receiver string `json:"receiver"`
	Content  string `json:"content"`
}

// Conversation ...
// swagger:model
type Conversation struct {
	Counterpart   string `json:"counterpart"`
	LastMessageID uint64 `json:"lastMessageId"`
	LastMessageAt uint64 `json:"lastMessageAt"`
	UnreadCount   uint32 `json:"unreadCount"`
}

// Event ...
// swagger:model
type Event struct {
	Height    uint64          `json:"height"`
	Type      string          `json:"type"`
	Timestamp uint64          `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// Stats ...
// swagger:model
type Stats struct {
	Height     uint64 `json:"height"`
	TotalUsers uint64 `json:"totalUsers"`
	TotalPosts uint64 `json:"totalPosts"`
}

// Balance ...
// swagger:model
type Balance struct {
	Balance int64 `json:"balance"`
}

// Count ...
// swagger:model
type Count struct {
	Count uint32 `json:"count"`
}

// Flag ...
// swagger:model
type Flag struct {
	Value bool `json:"value"`
}

func toProfile(u *entities.User) Profile {
	return Profile{
		ID:             u.ID,
		Address:        u.Address,
		Username:       u.Username,
		Bio:            u.Bio,
		ProfileImage:   u.ProfileImage,
		FollowerCount:  u.FollowerCount,
		FollowingCount: u.FollowingCount,
		RewardsBalance: u.RewardsBalance,
		CreatedAt:      uint64(u.CreatedAt.Unix()),
	}
}

func toPost(p *entities.Post) Post {
	return Post{
		ID:            p.ID,
		Author:        p.Author,
		Content:       p.Content,
		Media:         p.Media,
		LikesCount:    p.LikeCount,
		CommentsCount: p.CommentCount,
		SharesCount:   p.ShareCount,
		RewardAmount:  p.RewardAmount,
		CreatedAt:     uint64(p.CreatedAt.Unix()),
	}
}

func toComment(c *entities.Comment) Comment {
	return Comment{
		PostID:    c.PostID,
		ID:        c.ID,
		Author:    c.Author,
		Content:   c.Content,
		CreatedAt: uint64(c.CreatedAt.Unix()),
	}
}

func toMessage(m *entities.Message) Message {
	return Message{
		ID:        m.ID,
		Sender:    m.Sender,
		Receiver:  m.Receiver,
		Content:   m.Content,
		IsRead:    m.IsRead,
		CreatedAt: uint64(m.CreatedAt.Unix()),
	}
}

func toConversation(c *entities.Conversation) Conversation {
	return Conversation{
		Counterpart:   c.Counterpart,
		LastMessageID: c.LastMessageID,
		LastMessageAt: uint64(c.LastMessageAt.Unix()),
		UnreadCount:   c.UnreadCount,
	}
}

func toEvent(e *entities.Event) Event {
	return Event{
		Height:    e.Height,
		Type:      string(e.Type),
		Timestamp: uint64(e.Timestamp.Unix()),
		Payload:   e.Payload,
	}
}
