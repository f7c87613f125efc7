// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/agora/internal/entities"
	"github.com/Decentr-net/agora/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")

const foreignKeyViolation = "23503"

type pg struct {
	ext sqlx.ExtContext
}

type userDTO struct {
	ID             uint64    `db:"id"`
	Address        string    `db:"address"`
	Username       string    `db:"username"`
	Bio            string    `db:"bio"`
	ProfileImage   string    `db:"profile_image"`
	FollowerCount  uint32    `db:"follower_count"`
	FollowingCount uint32    `db:"following_count"`
	RewardsBalance int64     `db:"rewards_balance"`
	CreatedAt      time.Time `db:"created_at"`
}

type postDTO struct {
	ID           uint64    `db:"id"`
	Author       string    `db:"author"`
	Content      string    `db:"content"`
	Media        string    `db:"media"`
	LikeCount    uint32    `db:"like_count"`
	CommentCount uint32    `db:"comment_count"`
	ShareCount   uint32    `db:"share_count"`
	RewardAmount int64     `db:"reward_amount"`
	CreatedAt    time.Time `db:"created_at"`
}

type commentDTO struct {
	PostID    uint64    `db:"post_id"`
	ID        uint64    `db:"id"`
	Author    string    `db:"author"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

type messageDTO struct {
	ID        uint64    `db:"id"`
	Sender    string    `db:"sender"`
	Receiver  string    `db:"receiver"`
	Content   string    `db:"content"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

type conversationDTO struct {
	Counterpart   string    `db:"counterpart"`
	LastMessageID uint64    `db:"last_message_id"`
	LastMessageAt time.Time `db:"last_message_at"`
	UnreadCount   uint32    `db:"unread_count"`
}

type eventDTO struct {
	Height    uint64    `db:"height"`
	Type      string    `db:"type"`
	Payload   string    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return f(s)
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := func(s storage.Storage) error {
		// InTx should be blocking method
		if _, err := tx.ExecContext(ctx, `LOCK TABLE height IN ACCESS EXCLUSIVE MODE`); err != nil {
			return fmt.Errorf("failed to lock height table: %w", err)
		}

		return f(s)
	}(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) GetHeight(ctx context.Context) (uint64, error) {
	var h uint64
	if err := sqlx.GetContext(ctx, s.ext, &h, `SELECT height FROM height`); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return h, nil
}

func (s pg) SetHeight(ctx context.Context, h uint64) error {
	if _, err := s.ext.ExecContext(ctx, `UPDATE height SET height=$1`, h); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) CreateUser(ctx context.Context, u *entities.User) (uint64, error) {
	var id uint64

	if err := sqlx.GetContext(ctx, s.ext, &id, `
			INSERT INTO profile(id, address, username, bio, profile_image, created_at)
			SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5 FROM profile
			RETURNING id
		`, u.Address, u.Username, u.Bio, u.ProfileImage, u.CreatedAt.UTC(),
	); err != nil {
		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return id, nil
}

func (s pg) getUser(ctx context.Context, where string, arg interface{}) (*entities.User, error) {
	var u userDTO

	if err := sqlx.GetContext(ctx, s.ext, &u, fmt.Sprintf(`
			SELECT id, address, username, bio, profile_image, follower_count, following_count, rewards_balance, created_at
			FROM profile
			WHERE %s = $1
		`, where), arg,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.User{
		ID:             u.ID,
		Address:        u.Address,
		Username:       u.Username,
		Bio:            u.Bio,
		ProfileImage:   u.ProfileImage,
		FollowerCount:  u.FollowerCount,
		FollowingCount: u.FollowingCount,
		RewardsBalance: u.RewardsBalance,
		CreatedAt:      u.CreatedAt,
	}, nil
}

func (s pg) GetUser(ctx context.Context, address string) (*entities.User, error) {
	return s.getUser(ctx, "address", address)
}

func (s pg) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return s.getUser(ctx, "username", username)
}

func (s pg) CountUsers(ctx context.Context) (uint64, error) {
	var c uint64
	if err := sqlx.GetContext(ctx, s.ext, &c, `SELECT COUNT(*) FROM profile`); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) UpdateUserCounters(ctx context.Context, address string, d storage.UserCountersDelta) error {
	res, err := s.ext.ExecContext(ctx, `
			UPDATE profile SET
				follower_count = follower_count + $2,
				following_count = following_count + $3,
				rewards_balance = rewards_balance + $4
			WHERE address = $1
		`, address, d.Followers, d.Following, d.RewardsBalance,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) CreatePost(ctx context.Context, p *entities.Post) (uint64, error) {
	var id uint64

	if err := sqlx.GetContext(ctx, s.ext, &id, `
			INSERT INTO post(id, author, content, media, created_at)
			SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4 FROM post
			RETURNING id
		`, p.Author, p.Content, p.Media, p.CreatedAt.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return 0, storage.ErrNotFound
		}

		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return id, nil
}

func (s pg) GetPost(ctx context.Context, id uint64) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, author, content, media, like_count, comment_count, share_count, reward_amount, created_at
			FROM post
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Post{
		ID:           p.ID,
		Author:       p.Author,
		Content:      p.Content,
		Media:        p.Media,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		ShareCount:   p.ShareCount,
		RewardAmount: p.RewardAmount,
		CreatedAt:    p.CreatedAt,
	}, nil
}

func (s pg) CountPosts(ctx context.Context) (uint64, error) {
	var c uint64
	if err := sqlx.GetContext(ctx, s.ext, &c, `SELECT COUNT(*) FROM post`); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) ListUserPostIDs(ctx context.Context, author string) ([]uint64, error) {
	ids := []uint64{}
	if err := sqlx.SelectContext(ctx, s.ext, &ids, `SELECT id FROM post WHERE author = $1 ORDER BY id`, author); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return ids, nil
}

func (s pg) UpdatePostCounters(ctx context.Context, id uint64, d storage.PostCountersDelta) error {
	res, err := s.ext.ExecContext(ctx, `
			UPDATE post SET
				like_count = like_count + $2,
				comment_count = comment_count + $3,
				share_count = share_count + $4,
				reward_amount = reward_amount + $5
			WHERE id = $1
		`, id, d.Likes, d.Comments, d.Shares, d.RewardAmount,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) AddComment(ctx context.Context, c *entities.Comment) (uint64, error) {
	var id uint64

	if err := sqlx.GetContext(ctx, s.ext, &id, `
			INSERT INTO comment(post_id, id, author, content, created_at)
			SELECT $1, COALESCE(MAX(id), 0) + 1, $2, $3, $4 FROM comment WHERE post_id = $1
			RETURNING id
		`, c.PostID, c.Author, c.Content, c.CreatedAt.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return 0, storage.ErrNotFound
		}

		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return id, nil
}

func (s pg) ListComments(ctx context.Context, postID uint64) ([]*entities.Comment, error) {
	var cc []*commentDTO

	if err := sqlx.SelectContext(ctx, s.ext, &cc, `
			SELECT post_id, id, author, content, created_at FROM comment WHERE post_id = $1 ORDER BY id
		`, postID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Comment, len(cc))
	for i, v := range cc {
		out[i] = &entities.Comment{
			PostID:    v.PostID,
			ID:        v.ID,
			Author:    v.Author,
			Content:   v.Content,
			CreatedAt: v.CreatedAt,
		}
	}

	return out, nil
}

func (s pg) Follow(ctx context.Context, follower, followee string) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO follow(follower, followee) VALUES($1, $2) ON CONFLICT DO NOTHING
		`, follower, followee,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) Unfollow(ctx context.Context, follower, followee string) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			DELETE FROM follow WHERE follower=$1 AND followee=$2
		`, follower, followee,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) IsFollowing(ctx context.Context, follower, followee string) (bool, error) {
	var ok bool
	if err := sqlx.GetContext(ctx, s.ext, &ok, `
			SELECT EXISTS(SELECT 1 FROM follow WHERE follower=$1 AND followee=$2)
		`, follower, followee,
	); err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}

	return ok, nil
}

func (s pg) ListFollowers(ctx context.Context, address string) ([]string, error) {
	out := []string{}
	if err := sqlx.SelectContext(ctx, s.ext, &out,
		`SELECT follower FROM follow WHERE followee=$1 ORDER BY seq`, address,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return out, nil
}

func (s pg) ListFollowing(ctx context.Context, address string) ([]string, error) {
	out := []string{}
	if err := sqlx.SelectContext(ctx, s.ext, &out,
		`SELECT followee FROM follow WHERE follower=$1 ORDER BY seq`, address,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return out, nil
}

func (s pg) GetEngagement(ctx context.Context, address string, postID uint64) (*entities.Engagement, error) {
	e := entities.Engagement{
		Address: address,
		PostID:  postID,
	}

	row := s.ext.QueryRowxContext(ctx,
		`SELECT liked, shared FROM engagement WHERE post_id=$1 AND address=$2`, postID, address,
	)
	if err := row.Scan(&e.Liked, &e.Shared); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &e, nil
}

func (s pg) SetEngagement(ctx context.Context, e *entities.Engagement) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO engagement(post_id, address, liked, shared) VALUES($1, $2, $3, $4)
			ON CONFLICT(post_id, address) DO UPDATE SET liked=excluded.liked, shared=excluded.shared
		`, e.PostID, e.Address, e.Liked, e.Shared,
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) AddBalance(ctx context.Context, address string, amount int64) error {
	if _, err := s.ext.ExecContext(ctx,
		`INSERT INTO balance(address, amount) VALUES($1, $2)`, address, amount,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetBalance(ctx context.Context, address string) (int64, error) {
	var b int64
	if err := sqlx.GetContext(ctx, s.ext, &b,
		`SELECT COALESCE(SUM(amount), 0) FROM balance WHERE address=$1`, address,
	); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return b, nil
}

func (s pg) AddReward(ctx context.Context, r *entities.Reward) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO reward(post_id, sender, recipient, amount, created_at) VALUES($1, $2, $3, $4, $5)
		`, r.PostID, r.Sender, r.Recipient, r.Amount, r.CreatedAt.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) CreateMessage(ctx context.Context, m *entities.Message) (uint64, error) {
	var id uint64

	if err := sqlx.GetContext(ctx, s.ext, &id, `
			INSERT INTO message(id, sender, receiver, content, created_at)
			SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4 FROM message
			RETURNING id
		`, m.Sender, m.Receiver, m.Content, m.CreatedAt.UTC(),
	); err != nil {
		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return id, nil
}

func toMessage(m *messageDTO) *entities.Message {
	return &entities.Message{
		ID:        m.ID,
		Sender:    m.Sender,
		Receiver:  m.Receiver,
		Content:   m.Content,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func (s pg) GetMessage(ctx context.Context, id uint64) (*entities.Message, error) {
	var m messageDTO

	if err := sqlx.GetContext(ctx, s.ext, &m, `
			SELECT id, sender, receiver, content, is_read, created_at FROM message WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toMessage(&m), nil
}

func (s pg) ListChatHistory(ctx context.Context, a, b string) ([]*entities.Message, error) {
	var mm []*messageDTO

	if err := sqlx.SelectContext(ctx, s.ext, &mm, `
			SELECT id, sender, receiver, content, is_read, created_at FROM message
			WHERE LEAST(sender, receiver) = LEAST($1, $2) AND GREATEST(sender, receiver) = GREATEST($1, $2)
			ORDER BY id
		`, a, b,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Message, len(mm))
	for i, v := range mm {
		out[i] = toMessage(v)
	}

	return out, nil
}

func (s pg) MarkMessageRead(ctx context.Context, id uint64) error {
	res, err := s.ext.ExecContext(ctx, `UPDATE message SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) MarkAllMessagesRead(ctx context.Context, receiver, sender string) (uint32, error) {
	res, err := s.ext.ExecContext(ctx, `
			UPDATE message SET is_read = TRUE WHERE receiver = $1 AND sender = $2 AND NOT is_read
		`, receiver, sender,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	c, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return uint32(c), nil
}

func (s pg) CountUnread(ctx context.Context, receiver string, sender *string) (uint32, error) {
	var c uint32

	if err := sqlx.GetContext(ctx, s.ext, &c, `
			SELECT COUNT(*) FROM message
			WHERE receiver = $1 AND ($2::TEXT IS NULL OR sender = $2) AND NOT is_read
		`, receiver, sender,
	); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) TouchRecentChat(ctx context.Context, owner, counterpart string, messageID uint64) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO recent_chat(owner, counterpart, last_message_id) VALUES($1, $2, $3)
			ON CONFLICT(owner, counterpart) DO UPDATE SET last_message_id=excluded.last_message_id
		`, owner, counterpart, messageID,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListRecentChats(ctx context.Context, owner string) ([]string, error) {
	out := []string{}
	if err := sqlx.SelectContext(ctx, s.ext, &out, `
			SELECT counterpart FROM recent_chat WHERE owner = $1 ORDER BY last_message_id DESC
		`, owner,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return out, nil
}

func (s pg) ListConversations(ctx context.Context, owner string) ([]*entities.Conversation, error) {
	var cc []*conversationDTO

	if err := sqlx.SelectContext(ctx, s.ext, &cc, `
			SELECT
				r.counterpart,
				r.last_message_id,
				m.created_at AS last_message_at,
				(
					SELECT COUNT(*) FROM message u
					WHERE u.receiver = r.owner AND u.sender = r.counterpart AND NOT u.is_read
				) AS unread_count
			FROM recent_chat r
			JOIN message m ON m.id = r.last_message_id
			WHERE r.owner = $1
			ORDER BY r.last_message_id DESC
		`, owner,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Conversation, len(cc))
	for i, v := range cc {
		out[i] = &entities.Conversation{
			Counterpart:   v.Counterpart,
			LastMessageID: v.LastMessageID,
			LastMessageAt: v.LastMessageAt,
			UnreadCount:   v.UnreadCount,
		}
	}

	return out, nil
}

func (s pg) AppendEvent(ctx context.Context, e *entities.Event) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
			INSERT INTO event(height, type, payload, created_at) VALUES(:height, :type, :payload, :created_at)
		`, eventDTO{
		Height:    e.Height,
		Type:      string(e.Type),
		Payload:   string(e.Payload),
		CreatedAt: e.Timestamp.UTC(),
	}); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListEvents(ctx context.Context, after uint64, limit uint16) ([]*entities.Event, error) {
	var ee []*eventDTO

	if err := sqlx.SelectContext(ctx, s.ext, &ee, `
			SELECT height, type, payload, created_at FROM event WHERE height > $1 ORDER BY height LIMIT $2
		`, after, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Event, len(ee))
	for i, v := range ee {
		out[i] = &entities.Event{
			Height:    v.Height,
			Type:      entities.EventType(v.Type),
			Timestamp: v.CreatedAt,
			Payload:   json.RawMessage(v.Payload),
		}
	}

	return out, nil
}
