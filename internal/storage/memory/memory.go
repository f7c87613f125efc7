// Package memory is an in-process implementation of storage interface.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Decentr-net/agora/internal/entities"
	"github.com/Decentr-net/agora/internal/storage"
)

type edge struct {
	follower string
	followee string
}

type engagementKey struct {
	address string
	postID  uint64
}

type state struct {
	height uint64

	users      []*entities.User // index is id-1
	byAddress  map[string]uint64
	byUsername map[string]uint64

	posts       []*entities.Post // index is id-1
	userPosts   map[string][]uint64
	comments    map[uint64][]*entities.Comment
	follows     []edge
	following   map[edge]struct{}
	engagements map[engagementKey]entities.Engagement
	balances    map[string]int64
	rewards     []entities.Reward
	messages    []*entities.Message // index is id-1
	chats       map[string][]uint64 // conversation key to message ids
	unread      map[string]map[string]uint32
	recent      map[string]map[string]uint64
	events      []*entities.Event
}

func newState() *state {
	return &state{
		byAddress:   map[string]uint64{},
		byUsername:  map[string]uint64{},
		userPosts:   map[string][]uint64{},
		comments:    map[uint64][]*entities.Comment{},
		following:   map[edge]struct{}{},
		engagements: map[engagementKey]entities.Engagement{},
		balances:    map[string]int64{},
		chats:       map[string][]uint64{},
		unread:      map[string]map[string]uint32{},
		recent:      map[string]map[string]uint64{},
	}
}

// txn collects the reverts of changes made in place by a transaction.
type txn struct {
	undo []func()
}

func (t *txn) onRollback(f func()) {
	t.undo = append(t.undo, f)
}

func (t *txn) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
}

type db struct {
	mu sync.RWMutex
	st *state
}

type memory struct {
	db *db
	tx *txn // not nil within InTx
}

// New creates new instance of memory storage.
func New() storage.Storage {
	return memory{
		db: &db{st: newState()},
	}
}

// InTx changes the state in place under the write lock, so readers never see partial changes.
// The changes are reverted when f fails or panics.
func (m memory) InTx(_ context.Context, f func(s storage.Storage) error) error {
	if m.tx != nil {
		return f(m)
	}

	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	tx := &txn{}
	committed := false
	defer func() {
		if !committed {
			tx.rollback()
		}
	}()

	if err := f(memory{db: m.db, tx: tx}); err != nil {
		return err
	}
	committed = true

	return nil
}

func (m memory) read(f func(st *state)) {
	if m.tx != nil {
		f(m.db.st)
		return
	}

	m.db.mu.RLock()
	defer m.db.mu.RUnlock()

	f(m.db.st)
}

func (m memory) write(ctx context.Context, f func(st *state, tx *txn) error) error {
	if m.tx != nil {
		return f(m.db.st, m.tx)
	}

	return m.InTx(ctx, func(s storage.Storage) error {
		return f(s.(memory).db.st, s.(memory).tx)
	})
}

func (m memory) SetHeight(ctx context.Context, height uint64) error {
	return m.write(ctx, func(st *state, tx *txn) error {
		prev := st.height
		tx.onRollback(func() { st.height = prev })

		st.height = height

		return nil
	})
}

func (m memory) GetHeight(_ context.Context) (h uint64, _ error) {
	m.read(func(st *state) {
		h = st.height
	})

	return h, nil
}

func (m memory) CreateUser(ctx context.Context, u *entities.User) (id uint64, err error) {
	err = m.write(ctx, func(st *state, tx *txn) error {
		id = uint64(len(st.users)) + 1

		v := *u
		v.ID = id
		st.users = append(st.users, &v)
		st.byAddress[v.Address] = id
		st.byUsername[v.Username] = id

		tx.onRollback(func() {
			st.users = st.users[:id-1]
			delete(st.byAddress, v.Address)
			delete(st.byUsername, v.Username)
		})

		return nil
	})

	return id, err
}

func (m memory) GetUser(_ context.Context, address string) (u *entities.User, err error) {
	m.read(func(st *state) {
		id, ok := st.byAddress[address]
		if !ok {
			err = storage.ErrNotFound
			return
		}

		v := *st.users[id-1]
		u = &v
	})

	return u, err
}

func (m memory) GetUserByUsername(_ context.Context, username string) (u *entities.User, err error) {
	m.read(func(st *state) {
		id, ok := st.byUsername[username]
		if !ok {
			err = storage.ErrNotFound
			return
		}

		v := *st.users[id-1]
		u = &v
	})

	return u, err
}

func (m memory) CountUsers(_ context.Context) (c uint64, _ error) {
	m.read(func(st *state) {
		c = uint64(len(st.users))
	})

	return c, nil
}

func (m memory) UpdateUserCounters(ctx context.Context, address string, d storage.UserCountersDelta) error {
	return m.write(ctx, func(st *state, tx *txn) error {
		id, ok := st.byAddress[address]
		if !ok {
			return storage.ErrNotFound
		}

		u := st.users[id-1]
		prev := *u
		tx.onRollback(func() { *u = prev })

		u.FollowerCount = uint32(int32(u.FollowerCount) + d.Followers)
		u.FollowingCount = uint32(int32(u.FollowingCount) + d.Following)
		u.RewardsBalance += d.RewardsBalance

		return nil
	})
}

func (m memory) CreatePost(ctx context.Context, p *entities.Post) (id uint64, err error) {
	err = m.write(ctx, func(st *state, tx *txn) error {
		id = uint64(len(st.posts)) + 1

		v := *p
		v.ID = id
		st.posts = append(st.posts, &v)

		n := len(st.userPosts[v.Author])
		st.userPosts[v.Author] = append(st.userPosts[v.Author], id)

		tx.onRollback(func() {
			st.posts = st.posts[:id-1]
			if n == 0 {
				delete(st.userPosts, v.Author)
			} else {
				st.userPosts[v.Author] = st.userPosts[v.Author][:n]
			}
		})

		return nil
	})

	return id, err
}

func (m memory) GetPost(_ context.Context, id uint64) (p *entities.Post, err error) {
	m.read(func(st *state) {
		if id == 0 || id > uint64(len(st.posts)) {
			err = storage.ErrNotFound
			return
		}

		v := *st.posts[id-1]
		p = &v
	})

	return p, err
}

func (m memory) CountPosts(_ context.Context) (c uint64, _ error) {
	m.read(func(st *state) {
		c = uint64(len(st.posts))
	})

	return c, nil
}

func (m memory) ListUserPostIDs(_ context.Context, author string) (ids []uint64, _ error) {
	m.read(func(st *state) {
		ids = append([]uint64{}, st.userPosts[author]...)
	})

	return ids, nil
}

func (m memory) UpdatePostCounters(ctx context.Context, id uint64, d storage.PostCountersDelta) error {
	return m.write(ctx, func(st *state, tx *txn) error {
		if id == 0 || id > uint64(len(st.posts)) {
			return storage.ErrNotFound
		}

		p := st.posts[id-1]
		prev := *p
		tx.onRollback(func() { *p = prev })

		p.LikeCount = uint32(int32(p.LikeCount) + d.Likes)
		p.CommentCount = uint32(int32(p.CommentCount) + d.Comments)
		p.ShareCount = uint32(int32(p.ShareCount) + d.Shares)
		p.RewardAmount += d.RewardAmount

		return nil
	})
}

func (m memory) AddComment(ctx context.Context, c *entities.Comment) (id uint64, err error) {
	err = m.write(ctx, func(st *state, tx *txn) error {
		if c.PostID == 0 || c.PostID > uint64(len(st.posts)) {
			return storage.ErrNotFound
		}

		n := len(st.comments[c.PostID])
		id = uint64(n) + 1

		v := *c
		v.ID = id
		st.comments[c.PostID] = append(st.comments[c.PostID], &v)

		tx.onRollback(func() {
			if n == 0 {
				delete(st.comments, v.PostID)
			} else {
				st.comments[v.PostID] = st.comments[v.PostID][:n]
			}
		})

		return nil
	})

	return id, err
}

func (m memory) ListComments(_ context.Context, postID uint64) (out []*entities.Comment, _ error) {
	m.read(func(st *state) {
		out = make([]*entities.Comment, len(st.comments[postID]))
		for i, v := range st.comments[postID] {
			c := *v
			out[i] = &c
		}
	})

	return out, nil
}

func (m memory) Follow(ctx context.Context, follower, followee string) error {
	return m.write(ctx, func(st *state, tx *txn) error {
		e := edge{follower: follower, followee: followee}
		if _, ok := st.following[e]; ok {
			return nil
		}

		n := len(st.follows)
		st.follows = append(st.follows, e)
		st.following[e] = struct{}{}

		tx.onRollback(func() {
			st.follows = st.follows[:n]
			delete(st.following, e)
		})

		return nil
	})
}

func (m memory) Unfollow(ctx context.Context, follower, followee string) error {
	return m.write(ctx, func(st *state, tx *txn) error {
		e := edge{follower: follower, followee: followee}
		if _, ok := st.following[e]; !ok {
			return nil
		}

		i := 0
		for st.follows[i] != e {
			i++
		}

		st.follows = append(st.follows[:i], st.follows[i+1:]...)
		delete(st.following, e)

		tx.onRollback(func() {
			st.follows = append(st.follows, edge{})
			copy(st.follows[i+1:], st.follows[i:])
			st.follows[i] = e
			st.following[e] = struct{}{}
		})

		return nil
	})
}

func (m memory) IsFollowing(_ context.Context, follower, followee string) (ok bool, _ error) {
	m.read(func(st *state) {
		_, ok = st.following[edge{follower: follower, followee: followee}]
	})

	return ok, nil
}

func (m memory) ListFollowers(_ context.Context, address string) (out []string, _ error) {
	m.read(func(st *state) {
		out = []string{}
		for _, v := range st.follows {
			if v.followee == address {
				out = append(out, v.follower)
			}
		}
	})

	return out, nil
}

func (m memory) ListFollowing(_ context.Context, address string) (out []string, _ error) {
	m.read(func(st *state) {
		out = []string{}
		for _, v := range st.follows {
			if v.follower == address {
				out = append(out, v.followee)
			}
		}
	})

	return out, nil
}

func (m memory) GetEngagement(_ context.Context, address string, postID uint64) (e *entities.Engagement, _ error) {
	m.read(func(st *state) {
		v, ok := st.engagements[engagementKey{address: address, postID: postID}]
		if !ok {
			v = entities.Engagement{Address: address, PostID: postID}
		}
		e = &v
	})

	return e, nil
}

func (m memory) SetEngagement(ctx context.Context, e *entities.Engagement) error {
	return m.write(ctx, func(st *state, tx *txn) error {
		k := engagementKey{address: e.Address, postID: e.PostID}

		prev, ok := st.engagements[k]
		tx.onRollback(func() {
			if ok {
				st.engagements[k] = prev
			} else {
				delete(st.engagements, k)
			}
		})

		st.engagements[k] = *e

		return nil
	})
}

func (m memory) AddBalance(ctx context.Context, address string, amount int64) error {
	return m.write(ctx, func(st *state, tx *txn) error {
		prev, ok := st.balances[address]
		tx.onRollback(func() {
			if ok {
				st.balances[address] = prev
			} else {
				delete(st.balances, address)
			}
		})

		st.balances[address] += amount

		return nil
	})
}

func (m memory) GetBalance(_ context.Context, address string) (b int64, _ error) {
	m.read(func(st *state) {
		b = st.balances[address]
	})

	return b, nil
}

func (m memory) AddReward(ctx context.Context, r *entities.Reward) error {
	return m.write(ctx, func(st *state, tx *txn) error {
		n := len(st.rewards)
		st.rewards = append(st.rewards, *r)
		tx.onRollback(func() { st.rewards = st.rewards[:n] })

		return nil
	})
}

func (m memory) CreateMessage(ctx context.Context, msg *entities.Message) (id uint64, err error) {
	err = m.write(ctx, func(st *state, tx *txn) error {
		id = uint64(len(st.messages)) + 1

		v := *msg
		v.ID = id
		st.messages = append(st.messages, &v)

		key := entities.ConversationKey(v.Sender, v.Receiver)
		n := len(st.chats[key])
		st.chats[key] = append(st.chats[key], id)

		if !v.IsRead {
			addUnread(st, v.Receiver, v.Sender, 1)
		}

		tx.onRollback(func() {
			st.messages = st.messages[:id-1]
			if n == 0 {
				delete(st.chats, key)
			} else {
				st.chats[key] = st.chats[key][:n]
			}
			if !v.IsRead {
				addUnread(st, v.Receiver, v.Sender, -1)
			}
		})

		return nil
	})

	return id, err
}

// addUnread changes the unread counter of receiver's messages from sender.
func addUnread(st *state, receiver, sender string, d int32) {
	if st.unread[receiver] == nil {
		st.unread[receiver] = map[string]uint32{}
	}

	st.unread[receiver][sender] = uint32(int32(st.unread[receiver][sender]) + d)
}

func (m memory) GetMessage(_ context.Context, id uint64) (msg *entities.Message, err error) {
	m.read(func(st *state) {
		if id == 0 || id > uint64(len(st.messages)) {
			err = storage.ErrNotFound
			return
		}

		v := *st.messages[id-1]
		msg = &v
	})

	return msg, err
}

func (m memory) ListChatHistory(_ context.Context, a, b string) (out []*entities.Message, _ error) {
	m.read(func(st *state) {
		ids := st.chats[entities.ConversationKey(a, b)]

		out = make([]*entities.Message, len(ids))
		for i, id := range ids {
			msg := *st.messages[id-1]
			out[i] = &msg
		}
	})

	return out, nil
}

func (m memory) MarkMessageRead(ctx context.Context, id uint64) error {
	return m.write(ctx, func(st *state, tx *txn) error {
		if id == 0 || id > uint64(len(st.messages)) {
			return storage.ErrNotFound
		}

		msg := st.messages[id-1]
		if msg.IsRead {
			return nil
		}

		msg.IsRead = true
		addUnread(st, msg.Receiver, msg.Sender, -1)

		tx.onRollback(func() {
			msg.IsRead = false
			addUnread(st, msg.Receiver, msg.Sender, 1)
		})

		return nil
	})
}

func (m memory) MarkAllMessagesRead(ctx context.Context, receiver, sender string) (c uint32, err error) {
	err = m.write(ctx, func(st *state, tx *txn) error {
		var flipped []*entities.Message

		for _, id := range st.chats[entities.ConversationKey(receiver, sender)] {
			v := st.messages[id-1]
			if v.Receiver == receiver && v.Sender == sender && !v.IsRead {
				v.IsRead = true
				flipped = append(flipped, v)
			}
		}

		c = uint32(len(flipped))
		if c == 0 {
			return nil
		}

		addUnread(st, receiver, sender, -int32(c))

		tx.onRollback(func() {
			for _, v := range flipped {
				v.IsRead = false
			}
			addUnread(st, receiver, sender, int32(len(flipped)))
		})

		return nil
	})

	return c, err
}

func (m memory) CountUnread(_ context.Context, receiver string, sender *string) (c uint32, _ error) {
	m.read(func(st *state) {
		if sender != nil {
			c = st.unread[receiver][*sender]
			return
		}

		for _, v := range st.unread[receiver] {
			c += v
		}
	})

	return c, nil
}

func (m memory) TouchRecentChat(ctx context.Context, owner, counterpart string, messageID uint64) error {
	return m.write(ctx, func(st *state, tx *txn) error {
		if st.recent[owner] == nil {
			st.recent[owner] = map[string]uint64{}
		}

		prev, ok := st.recent[owner][counterpart]
		tx.onRollback(func() {
			if ok {
				st.recent[owner][counterpart] = prev
			} else {
				delete(st.recent[owner], counterpart)
			}
		})

		st.recent[owner][counterpart] = messageID

		return nil
	})
}

func (m memory) ListRecentChats(_ context.Context, owner string) (out []string, _ error) {
	m.read(func(st *state) {
		out = recentChats(st, owner)
	})

	return out, nil
}

func (m memory) ListConversations(_ context.Context, owner string) (out []*entities.Conversation, _ error) {
	m.read(func(st *state) {
		chats := recentChats(st, owner)

		out = make([]*entities.Conversation, len(chats))
		for i, v := range chats {
			last := st.messages[st.recent[owner][v]-1]

			out[i] = &entities.Conversation{
				Counterpart:   v,
				LastMessageID: last.ID,
				LastMessageAt: last.CreatedAt,
				UnreadCount:   st.unread[owner][v],
			}
		}
	})

	return out, nil
}

// recentChats returns owner's counterparts, the most recent first.
func recentChats(st *state, owner string) []string {
	out := make([]string, 0, len(st.recent[owner]))
	for k := range st.recent[owner] {
		out = append(out, k)
	}

	sort.Slice(out, func(i, j int) bool {
		return st.recent[owner][out[i]] > st.recent[owner][out[j]]
	})

	return out
}

func (m memory) AppendEvent(ctx context.Context, e *entities.Event) error {
	return m.write(ctx, func(st *state, tx *txn) error {
		n := len(st.events)

		v := *e
		st.events = append(st.events, &v)
		tx.onRollback(func() { st.events = st.events[:n] })

		return nil
	})
}

func (m memory) ListEvents(_ context.Context, after uint64, limit uint16) (out []*entities.Event, _ error) {
	m.read(func(st *state) {
		i := sort.Search(len(st.events), func(i int) bool {
			return st.events[i].Height > after
		})

		out = []*entities.Event{}
		for ; i < len(st.events) && len(out) < int(limit); i++ {
			e := *st.events[i]
			out = append(out, &e)
		}
	})

	return out, nil
}
