package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	consumermock "github.com/Decentr-net/agora/internal/consumer/mock"
	"github.com/Decentr-net/agora/internal/entities"
	"github.com/Decentr-net/agora/internal/service"
	"github.com/Decentr-net/agora/internal/service/mock"
)

var (
	secret    = []byte("secret")
	timestamp = time.Unix(100, 0).UTC()
)

func newToken(t *testing.T, subject string) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: subject}).SignedString(secret)
	require.NoError(t, err)
	return token
}

func newRouter(s service.Service) chi.Router {
	r := chi.NewRouter()
	SetupRouter(s, nil, r, time.Second, secret)
	return r
}

func do(t *testing.T, r http.Handler, method, target, body, principal string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	if principal != "" {
		req.Header.Set("Authorization", "Bearer "+newToken(t, principal))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func Test_auth(t *testing.T) {
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Subject: "addr"}).SignedString(secret)
	require.NoError(t, err)
	wrongSecret, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "addr"}).SignedString([]byte("wrong"))
	require.NoError(t, err)

	tt := []struct {
		name   string
		header string
	}{
		{name: "no_header"},
		{name: "not_bearer", header: "Basic " + newToken(t, "addr")},
		{name: "garbage", header: "Bearer garbage"},
		{name: "wrong_alg", header: "Bearer " + hs512},
		{name: "wrong_secret", header: "Bearer " + wrongSecret},
		{name: "no_subject", header: "Bearer " + newToken(t, "")},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			req := httptest.NewRequest(http.MethodPost, "/v1/posts/1/like", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			w := httptest.NewRecorder()
			newRouter(mock.NewMockService(ctrl)).ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func Test_serviceErrors(t *testing.T) {
	tt := []struct {
		err  error
		code int
	}{
		{service.ErrPostNotFound, http.StatusNotFound},
		{service.ErrUserNotFound, http.StatusNotFound},
		{service.ErrAlreadyLiked, http.StatusConflict},
		{service.ErrNotLiked, http.StatusConflict},
		{service.ErrCannotChat, http.StatusForbidden},
		{service.ErrZeroAmount, http.StatusBadRequest},
		{fmt.Errorf("failed to like: %w", context.Canceled), http.StatusInternalServerError},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.err.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			s.EXPECT().Like(gomock.Any(), "addr", uint64(1)).Return(tc.err)

			w := do(t, newRouter(s), http.MethodPost, "/v1/posts/1/like", "", "addr")
			assert.Equal(t, tc.code, w.Code)

			if tc.code == http.StatusInternalServerError {
				assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
			} else {
				assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tc.err.Error()), w.Body.String())
			}
		})
	}
}

func Test_createUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().CreateUser(gomock.Any(), "addr", service.CreateUserParams{
		Username:     "user",
		Bio:          "bio",
		ProfileImage: "Qm",
	}).Return(&entities.User{
		ID:           1,
		Address:      "addr",
		Username:     "user",
		Bio:          "bio",
		ProfileImage: "Qm",
		CreatedAt:    timestamp,
	}, nil)

	w := do(t, newRouter(s), http.MethodPost, "/v1/users", `{"username":"user","bio":"bio","profileImage":"Qm"}`, "addr")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `
{
	"id": 1,
	"address": "addr",
	"username": "user",
	"bio": "bio",
	"profileImage": "Qm",
	"followerCount": 0,
	"followingCount": 0,
	"rewardsBalance": 0,
	"createdAt": 100
}`, w.Body.String())
}

func Test_createUser_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := do(t, newRouter(mock.NewMockService(ctrl)), http.MethodPost, "/v1/users", `{"username":`, "addr")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_getUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().GetUser(gomock.Any(), "addr").Return(&entities.User{
		ID:             2,
		Address:        "addr",
		Username:       "user",
		FollowerCount:  3,
		FollowingCount: 4,
		RewardsBalance: 5,
		CreatedAt:      timestamp,
	}, nil)
	s.EXPECT().GetUser(gomock.Any(), "unknown").Return(nil, service.ErrUserNotFound)

	r := newRouter(s)

	w := do(t, r, http.MethodGet, "/v1/users/addr", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"id": 2,
	"address": "addr",
	"username": "user",
	"bio": "",
	"profileImage": "",
	"followerCount": 3,
	"followingCount": 4,
	"rewardsBalance": 5,
	"createdAt": 100
}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/v1/users/unknown", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_searchByUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().SearchByUsername(gomock.Any(), "findme").Return(&entities.User{ID: 1, Address: "addr", Username: "findme"}, nil)

	w := do(t, newRouter(s), http.MethodGet, "/v1/usernames/findme", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"address":"addr"`)
}

func Test_follow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().Follow(gomock.Any(), "addr", "target").Return(nil)
	s.EXPECT().Unfollow(gomock.Any(), "addr", "target").Return(service.ErrNotFollowing)
	s.EXPECT().IsFollowing(gomock.Any(), "addr", "target").Return(true, nil)
	s.EXPECT().GetFollowers(gomock.Any(), "target").Return([]string{"addr", "other"}, nil)

	r := newRouter(s)

	w := do(t, r, http.MethodPost, "/v1/users/target/follow", "", "addr")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodDelete, "/v1/users/target/follow", "", "addr")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodGet, "/v1/users/addr/following/target", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"value":true}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/v1/users/target/followers", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["addr","other"]`, w.Body.String())
}

func Test_createPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().CreatePost(gomock.Any(), "addr", service.CreatePostParams{Content: "text", Media: "Qm"}).Return(&entities.Post{
		ID:        1,
		Author:    "addr",
		Content:   "text",
		Media:     "Qm",
		CreatedAt: timestamp,
	}, nil)

	w := do(t, newRouter(s), http.MethodPost, "/v1/posts", `{"content":"text","media":"Qm"}`, "addr")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `
{
	"id": 1,
	"author": "addr",
	"content": "text",
	"media": "Qm",
	"likesCount": 0,
	"commentsCount": 0,
	"sharesCount": 0,
	"rewardAmount": 0,
	"createdAt": 100
}`, w.Body.String())
}

func Test_getPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().GetPost(gomock.Any(), uint64(1)).Return(&entities.Post{
		ID:           1,
		Author:       "addr",
		Content:      "text",
		LikeCount:    1,
		CommentCount: 2,
		ShareCount:   3,
		RewardAmount: 4,
		CreatedAt:    timestamp,
	}, nil)

	r := newRouter(s)

	w := do(t, r, http.MethodGet, "/v1/posts/1", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"id": 1,
	"author": "addr",
	"content": "text",
	"media": "",
	"likesCount": 1,
	"commentsCount": 2,
	"sharesCount": 3,
	"rewardAmount": 4,
	"createdAt": 100
}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/v1/posts/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_comments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().AddComment(gomock.Any(), "addr", uint64(1), "nice").Return(&entities.Comment{
		PostID: 1, ID: 1, Author: "addr", Content: "nice", CreatedAt: timestamp,
	}, nil)
	s.EXPECT().GetComments(gomock.Any(), uint64(1)).Return([]*entities.Comment{
		{PostID: 1, ID: 1, Author: "addr", Content: "nice", CreatedAt: timestamp},
	}, nil)

	r := newRouter(s)

	w := do(t, r, http.MethodPost, "/v1/posts/1/comments", `{"content":"nice"}`, "addr")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodGet, "/v1/posts/1/comments", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"postId":1,"id":1,"author":"addr","content":"nice","createdAt":100}]`, w.Body.String())
}

func Test_engagement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().Unlike(gomock.Any(), "addr", uint64(1)).Return(nil)
	s.EXPECT().Share(gomock.Any(), "addr", uint64(1)).Return(nil)
	s.EXPECT().GetEngagement(gomock.Any(), "addr", uint64(1)).Return(&entities.Engagement{
		Address: "addr", PostID: 1, Liked: true,
	}, nil)

	r := newRouter(s)

	w := do(t, r, http.MethodDelete, "/v1/posts/1/like", "", "addr")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodPost, "/v1/posts/1/share", "", "addr")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/v1/posts/1/engagements/addr", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"liked":true,"shared":false}`, w.Body.String())
}

func Test_sendReward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().SendReward(gomock.Any(), "addr", uint64(1), int64(5)).Return(nil)
	s.EXPECT().SendReward(gomock.Any(), "addr", uint64(1), int64(500)).Return(service.ErrInsufficientFunds)
	s.EXPECT().GetBalance(gomock.Any(), "addr").Return(int64(95), nil)

	r := newRouter(s)

	w := do(t, r, http.MethodPost, "/v1/posts/1/rewards", `{"amount":5}`, "addr")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodPost, "/v1/posts/1/rewards", `{"amount":500}`, "addr")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/v1/users/addr/balance", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"balance":95}`, w.Body.String())
}

func Test_messages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().SendMessage(gomock.Any(), "alice", "bob", "Hello Bob!").Return(&entities.Message{
		ID: 1, Sender: "alice", Receiver: "bob", Content: "Hello Bob!", CreatedAt: timestamp,
	}, nil)
	s.EXPECT().GetChatHistory(gomock.Any(), "bob", "alice").Return([]*entities.Message{
		{ID: 1, Sender: "alice", Receiver: "bob", Content: "Hello Bob!", IsRead: true, CreatedAt: timestamp},
	}, nil)
	s.EXPECT().MarkMessageAsRead(gomock.Any(), "bob", uint64(1)).Return(nil)
	s.EXPECT().MarkAllMessagesAsRead(gomock.Any(), "bob", "alice").Return(nil)
	s.EXPECT().GetRecentChats(gomock.Any(), "bob").Return([]string{"alice"}, nil)
	s.EXPECT().GetConversations(gomock.Any(), "bob").Return([]*entities.Conversation{
		{Counterpart: "alice", LastMessageID: 1, LastMessageAt: timestamp, UnreadCount: 2},
	}, nil)
	s.EXPECT().CanChat(gomock.Any(), "bob", "carol").Return(false, nil)

	r := newRouter(s)

	w := do(t, r, http.MethodPost, "/v1/messages", `{"receiver":"bob","content":"Hello Bob!"}`, "alice")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"sender":"alice","receiver":"bob","content":"Hello Bob!","isRead":false,"createdAt":100}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/v1/users/bob/chats/alice", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"sender":"alice","receiver":"bob","content":"Hello Bob!","isRead":true,"createdAt":100}]`, w.Body.String())

	w = do(t, r, http.MethodPost, "/v1/messages/1/read", "", "bob")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodPost, "/v1/chats/alice/read", "", "bob")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/v1/users/bob/chats", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["alice"]`, w.Body.String())

	w = do(t, r, http.MethodGet, "/v1/users/bob/conversations", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"counterpart":"alice","lastMessageId":1,"lastMessageAt":100,"unreadCount":2}]`, w.Body.String())

	w = do(t, r, http.MethodGet, "/v1/users/bob/chats/carol/allowed", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"value":false}`, w.Body.String())
}

func Test_getUnreadCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().GetUnreadMessageCount(gomock.Any(), "bob", "alice").Return(uint32(2), nil)
	s.EXPECT().GetTotalUnreadMessages(gomock.Any(), "bob").Return(uint32(4), nil)

	r := newRouter(s)

	w := do(t, r, http.MethodGet, "/v1/users/bob/unread?sender=alice", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":2}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/v1/users/bob/unread", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":4}`, w.Body.String())
}

func Test_getStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().GetHeight(gomock.Any()).Return(uint64(10), nil)
	s.EXPECT().GetTotalUsers(gomock.Any()).Return(uint64(2), nil)
	s.EXPECT().GetTotalPosts(gomock.Any()).Return(uint64(3), nil)

	r := newRouter(s)

	for i := 0; i < 2; i++ {
		w := do(t, r, http.MethodGet, "/v1/stats", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"height":10,"totalUsers":2,"totalPosts":3}`, w.Body.String())
	}
}

func Test_listEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().ListEvents(gomock.Any(), uint64(5), uint16(2)).Return([]*entities.Event{
		{Height: 6, Type: entities.FollowedEventType, Timestamp: timestamp, Payload: []byte(`{"follower":"a","followee":"b"}`)},
	}, nil)
	s.EXPECT().ListEvents(gomock.Any(), uint64(0), uint16(defaultLimit)).Return([]*entities.Event{}, nil)

	r := newRouter(s)

	w := do(t, r, http.MethodGet, "/v1/events?after=5&limit=2", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"height":6,"type":"followed","timestamp":100,"payload":{"follower":"a","followee":"b"}}]`, w.Body.String())

	w = do(t, r, http.MethodGet, "/v1/events", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(t, r, http.MethodGet, "/v1/events?limit=0", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/v1/events?limit=1001", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_streamEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	f := consumermock.NewMockFeed(ctrl)

	e2 := &entities.Event{Height: 2, Type: entities.LikedEventType, Timestamp: timestamp, Payload: []byte(`{}`)}
	e3 := &entities.Event{Height: 3, Type: entities.SharedEventType, Timestamp: timestamp, Payload: []byte(`{}`)}

	ch := make(chan *entities.Event, 2)
	ch <- e2
	ch <- e3
	close(ch)

	var unsubscribed bool
	f.EXPECT().Subscribe().Return((<-chan *entities.Event)(ch), func() { unsubscribed = true })
	s.EXPECT().ListEvents(gomock.Any(), uint64(1), uint16(maxLimit)).Return([]*entities.Event{e2}, nil)

	router := chi.NewRouter()
	srv := server{s: s, f: f}
	router.Get("/v1/events/stream", srv.streamEvents)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/events/stream?after=1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, 1, strings.Count(w.Body.String(), "id: 2\n"))
	assert.Equal(t, 1, strings.Count(w.Body.String(), "id: 3\n"))
	assert.Contains(t, w.Body.String(), "event: shared\n")
	assert.True(t, unsubscribed)
}

func Test_HealthHandler(t *testing.T) {
	ok := PingerFunc(func(context.Context) error { return nil })
	fail := PingerFunc(func(context.Context) error { return fmt.Errorf("db is down") })

	w := httptest.NewRecorder()
	HealthHandler(time.Second, ok, ok)(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	HealthHandler(time.Second, ok, fail)(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "db is down")
}
