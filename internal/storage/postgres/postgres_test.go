//+build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Decentr-net/agora/internal/entities"
	"github.com/Decentr-net/agora/internal/storage"
)

var (
	db  *sql.DB
	ctx = context.Background()
	s   storage.Storage

	now     = time.Unix(1600000000, 0).UTC()
	errTest = errors.New("test")
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	_, err := db.ExecContext(ctx, `UPDATE height SET height=0`)
	require.NoError(t, err)

	for _, v := range []string{"event", "recent_chat", "message", "reward", "balance", "engagement", "follow", "comment", "post", "profile"} {
		_, err = db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, v))
		require.NoError(t, err)
	}
}

func createUser(t *testing.T, address string) {
	_, err := s.CreateUser(ctx, &entities.User{Address: address, Username: "name_" + address, CreatedAt: now})
	require.NoError(t, err)
}

func TestPg_GetHeight(t *testing.T) {
	defer cleanup(t)

	h, err := s.GetHeight(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 0, h)

	require.NoError(t, s.SetHeight(ctx, 5))

	h, err = s.GetHeight(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 5, h)
}

func TestPg_InTx_Rollback(t *testing.T) {
	defer cleanup(t)

	require.Equal(t, errTest, s.InTx(ctx, func(tx storage.Storage) error {
		require.NoError(t, tx.SetHeight(ctx, 1))
		createUserIn(t, tx, "addr")
		return errTest
	}))

	h, err := s.GetHeight(ctx)
	require.NoError(t, err)
	require.Zero(t, h)

	_, err = s.GetUser(ctx, "addr")
	require.Equal(t, storage.ErrNotFound, err)

	id, err := s.CreateUser(ctx, &entities.User{Address: "addr", Username: "name", CreatedAt: now})
	require.NoError(t, err)
	require.EqualValues(t, 1, id)
}

func createUserIn(t *testing.T, tx storage.Storage, address string) {
	_, err := tx.CreateUser(ctx, &entities.User{Address: address, Username: "name_" + address, CreatedAt: now})
	require.NoError(t, err)
}

func TestPg_InTx_Serial(t *testing.T) {
	defer cleanup(t)

	mu := sync.Mutex{}

	// Lock mutex to be sure if routine is started
	mu.Lock()

	done := make(chan struct{})
	go func() {
		defer close(done)

		assert.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
			mu.Unlock()                        // allow main routine execution
			time.Sleep(time.Millisecond * 500) // next InTx should wait

			h, err := tx.GetHeight(ctx)
			if err != nil {
				return err
			}

			return tx.SetHeight(ctx, h+1)
		}))
	}()

	mu.Lock() // wait until the first tx holds the lock

	require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
		h, err := tx.GetHeight(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, h)

		return tx.SetHeight(ctx, h+1)
	}))

	<-done

	h, err := s.GetHeight(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, h)
}

func TestPg_Users(t *testing.T) {
	defer cleanup(t)

	id, err := s.CreateUser(ctx, &entities.User{
		Address:      "addr1",
		Username:     "user1",
		Bio:          "bio",
		ProfileImage: "Qm",
		CreatedAt:    now,
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, id)

	id, err = s.CreateUser(ctx, &entities.User{Address: "addr2", Username: "user2", CreatedAt: now})
	require.NoError(t, err)
	require.EqualValues(t, 2, id)

	require.NoError(t, s.UpdateUserCounters(ctx, "addr1", storage.UserCountersDelta{Followers: 2, Following: 1, RewardsBalance: 10}))
	require.NoError(t, s.UpdateUserCounters(ctx, "addr1", storage.UserCountersDelta{Followers: -1}))
	require.Equal(t, storage.ErrNotFound, s.UpdateUserCounters(ctx, "addr3", storage.UserCountersDelta{Followers: 1}))

	u, err := s.GetUser(ctx, "addr1")
	require.NoError(t, err)
	assert.Equal(t, &entities.User{
		ID:             1,
		Address:        "addr1",
		Username:       "user1",
		Bio:            "bio",
		ProfileImage:   "Qm",
		FollowerCount:  1,
		FollowingCount: 1,
		RewardsBalance: 10,
		CreatedAt:      u.CreatedAt,
	}, u)
	assert.Equal(t, now.Unix(), u.CreatedAt.Unix())

	u, err = s.GetUserByUsername(ctx, "user2")
	require.NoError(t, err)
	assert.Equal(t, "addr2", u.Address)

	_, err = s.GetUserByUsername(ctx, "user3")
	require.Equal(t, storage.ErrNotFound, err)

	c, err := s.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, c)
}

func TestPg_Posts(t *testing.T) {
	defer cleanup(t)

	_, err := s.CreatePost(ctx, &entities.Post{Author: "addr", Content: "c", CreatedAt: now})
	require.Equal(t, storage.ErrNotFound, err)

	createUser(t, "a")
	createUser(t, "b")

	for i, author := range []string{"a", "b", "a"} {
		id, err := s.CreatePost(ctx, &entities.Post{Author: author, Content: "content", Media: "Qm", CreatedAt: now})
		require.NoError(t, err)
		require.EqualValues(t, i+1, id)
	}

	ids, err := s.ListUserPostIDs(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 3}, ids)

	require.NoError(t, s.UpdatePostCounters(ctx, 2, storage.PostCountersDelta{Likes: 1, Comments: 2, Shares: 3, RewardAmount: 4}))
	require.Equal(t, storage.ErrNotFound, s.UpdatePostCounters(ctx, 4, storage.PostCountersDelta{Likes: 1}))

	p, err := s.GetPost(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "b", p.Author)
	assert.Equal(t, "content", p.Content)
	assert.Equal(t, "Qm", p.Media)
	assert.EqualValues(t, 1, p.LikeCount)
	assert.EqualValues(t, 2, p.CommentCount)
	assert.EqualValues(t, 3, p.ShareCount)
	assert.EqualValues(t, 4, p.RewardAmount)

	_, err = s.GetPost(ctx, 4)
	require.Equal(t, storage.ErrNotFound, err)

	c, err := s.CountPosts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, c)
}

func TestPg_Comments(t *testing.T) {
	defer cleanup(t)

	createUser(t, "a")

	_, err := s.AddComment(ctx, &entities.Comment{PostID: 1, Author: "a", Content: "c", CreatedAt: now})
	require.Equal(t, storage.ErrNotFound, err)

	_, err = s.CreatePost(ctx, &entities.Post{Author: "a", Content: "c", CreatedAt: now})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		id, err := s.AddComment(ctx, &entities.Comment{PostID: 1, Author: "a", Content: fmt.Sprint(i), CreatedAt: now})
		require.NoError(t, err)
		require.EqualValues(t, i+1, id)
	}

	cc, err := s.ListComments(ctx, 1)
	require.NoError(t, err)
	require.Len(t, cc, 2)
	assert.Equal(t, "0", cc[0].Content)
	assert.Equal(t, "1", cc[1].Content)
}

func TestPg_Follow(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.Follow(ctx, "1", "2"))
	require.NoError(t, s.Follow(ctx, "1", "2"))
	require.NoError(t, s.Follow(ctx, "3", "2"))

	ok, err := s.IsFollowing(ctx, "1", "2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.IsFollowing(ctx, "2", "1")
	require.NoError(t, err)
	assert.False(t, ok)

	ff, err := s.ListFollowers(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, ff)

	ff, err = s.ListFollowing(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ff)
}

func TestPg_Unfollow(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.Follow(ctx, "1", "2"))
	require.NoError(t, s.Unfollow(ctx, "1", "2"))

	ok, err := s.IsFollowing(ctx, "1", "2")
	require.NoError(t, err)
	assert.False(t, ok)

	ff, err := s.ListFollowers(ctx, "2")
	require.NoError(t, err)
	assert.Empty(t, ff)
}

func TestPg_Engagement(t *testing.T) {
	defer cleanup(t)

	require.Equal(t, storage.ErrNotFound, s.SetEngagement(ctx, &entities.Engagement{Address: "a", PostID: 1, Liked: true}))

	createUser(t, "a")
	_, err := s.CreatePost(ctx, &entities.Post{Author: "a", Content: "c", CreatedAt: now})
	require.NoError(t, err)

	e, err := s.GetEngagement(ctx, "a", 1)
	require.NoError(t, err)
	assert.Equal(t, &entities.Engagement{Address: "a", PostID: 1}, e)

	e.Liked = true
	require.NoError(t, s.SetEngagement(ctx, e))
	e.Shared = true
	require.NoError(t, s.SetEngagement(ctx, e))

	e, err = s.GetEngagement(ctx, "a", 1)
	require.NoError(t, err)
	assert.Equal(t, &entities.Engagement{Address: "a", PostID: 1, Liked: true, Shared: true}, e)
}

func TestPg_Balance(t *testing.T) {
	defer cleanup(t)

	b, err := s.GetBalance(ctx, "a")
	require.NoError(t, err)
	assert.Zero(t, b)

	require.NoError(t, s.AddBalance(ctx, "a", 10))
	require.NoError(t, s.AddBalance(ctx, "a", -4))
	require.NoError(t, s.AddBalance(ctx, "b", 4))

	b, err = s.GetBalance(ctx, "a")
	require.NoError(t, err)
	assert.EqualValues(t, 6, b)
}

func TestPg_AddReward(t *testing.T) {
	defer cleanup(t)

	require.Equal(t, storage.ErrNotFound, s.AddReward(ctx, &entities.Reward{PostID: 1, Sender: "b", Recipient: "a", Amount: 1, CreatedAt: now}))

	createUser(t, "a")
	_, err := s.CreatePost(ctx, &entities.Post{Author: "a", Content: "c", CreatedAt: now})
	require.NoError(t, err)

	require.NoError(t, s.AddReward(ctx, &entities.Reward{PostID: 1, Sender: "b", Recipient: "a", Amount: 1, CreatedAt: now}))
}

func TestPg_Messages(t *testing.T) {
	defer cleanup(t)

	send := func(from, to string) uint64 {
		id, err := s.CreateMessage(ctx, &entities.Message{Sender: from, Receiver: to, Content: "hi", CreatedAt: now})
		require.NoError(t, err)
		require.NoError(t, s.TouchRecentChat(ctx, from, to, id))
		require.NoError(t, s.TouchRecentChat(ctx, to, from, id))
		return id
	}

	require.EqualValues(t, 1, send("a", "b"))
	send("b", "a")
	send("c", "a")
	send("b", "a")

	m, err := s.GetMessage(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a", m.Sender)
	assert.Equal(t, "b", m.Receiver)
	assert.False(t, m.IsRead)

	_, err = s.GetMessage(ctx, 5)
	require.Equal(t, storage.ErrNotFound, err)

	mm, err := s.ListChatHistory(ctx, "b", "a")
	require.NoError(t, err)
	require.Len(t, mm, 3)
	assert.EqualValues(t, 1, mm[0].ID)
	assert.EqualValues(t, 4, mm[2].ID)

	rc, err := s.ListRecentChats(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, rc)

	total, err := s.CountUnread(ctx, "a", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	sender := "b"
	c, err := s.CountUnread(ctx, "a", &sender)
	require.NoError(t, err)
	assert.EqualValues(t, 2, c)

	c, err = s.MarkAllMessagesRead(ctx, "a", "b")
	require.NoError(t, err)
	assert.EqualValues(t, 2, c)

	require.NoError(t, s.MarkMessageRead(ctx, 3))
	require.Equal(t, storage.ErrNotFound, s.MarkMessageRead(ctx, 5))

	cc, err := s.ListConversations(ctx, "b")
	require.NoError(t, err)
	require.Len(t, cc, 1)
	assert.Equal(t, "a", cc[0].Counterpart)
	assert.EqualValues(t, 4, cc[0].LastMessageID)
	assert.EqualValues(t, 1, cc[0].UnreadCount)
	assert.Equal(t, now.Unix(), cc[0].LastMessageAt.Unix())
}

func TestPg_Events(t *testing.T) {
	defer cleanup(t)

	for i := uint64(1); i <= 5; i++ {
		require.NoError(t, s.AppendEvent(ctx, &entities.Event{
			Height:    i,
			Type:      entities.DepositedEventType,
			Timestamp: now,
			Payload:   []byte(fmt.Sprintf(`{"address":"a","amount":%d}`, i)),
		}))
	}

	ee, err := s.ListEvents(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, ee, 2)
	assert.EqualValues(t, 3, ee[0].Height)
	assert.Equal(t, entities.DepositedEventType, ee[0].Type)
	assert.JSONEq(t, `{"address":"a","amount":3}`, string(ee[0].Payload))
	assert.Equal(t, now.Unix(), ee[0].Timestamp.Unix())
	assert.EqualValues(t, 4, ee[1].Height)

	ee, err = s.ListEvents(ctx, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, ee)
}
