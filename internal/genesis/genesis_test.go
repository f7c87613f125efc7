package genesis

import (
	"context"
	"errors"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/agora/internal/entities"
	"github.com/Decentr-net/agora/internal/service"
	"github.com/Decentr-net/agora/internal/service/impl"
	"github.com/Decentr-net/agora/internal/storage/memory"
)

var ctx = context.Background()

const testGenesis = `{
	"balances": {"zed": 50, "amy": 100, "kim": 7},
	"users": [
		{"address": "zed", "username": "zed", "bio": "writer", "profileImage": "Qmzed"},
		{"address": "amy", "username": "amy"}
	],
	"follows": [
		{"follower": "amy", "followee": "zed"}
	]
}`

func mustLoad(t *testing.T, data string) *Genesis {
	path := filepath.Join(t.TempDir(), "genesis.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(data), 0600))

	g, err := Load(path)
	require.NoError(t, err)

	return g
}

func TestLoad(t *testing.T) {
	g := mustLoad(t, testGenesis)

	assert.Equal(t, map[string]int64{"zed": 50, "amy": 100, "kim": 7}, g.Balances)
	require.Len(t, g.Users, 2)
	assert.Equal(t, User{Address: "zed", Username: "zed", Bio: "writer", ProfileImage: "Qmzed"}, g.Users[0])
	assert.Equal(t, []Follow{{Follower: "amy", Followee: "zed"}}, g.Follows)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "genesis.json")
	require.NoError(t, ioutil.WriteFile(path, []byte("{"), 0600))

	_, err = Load(path)
	require.Error(t, err)
}

func TestImport(t *testing.T) {
	s := impl.New(memory.New())

	require.NoError(t, Import(ctx, s, mustLoad(t, testGenesis)))

	h, err := s.GetHeight(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, h)

	ee, err := s.ListEvents(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, ee, 6)

	for i, v := range []string{"amy", "kim", "zed"} {
		assert.Equal(t, entities.DepositedEventType, ee[i].Type)
		assert.Contains(t, string(ee[i].Payload), `"`+v+`"`)
	}
	assert.Equal(t, entities.UserCreatedEventType, ee[3].Type)
	assert.Equal(t, entities.UserCreatedEventType, ee[4].Type)
	assert.Equal(t, entities.FollowedEventType, ee[5].Type)

	u, err := s.GetUser(ctx, "zed")
	require.NoError(t, err)
	assert.Equal(t, "writer", u.Bio)
	assert.EqualValues(t, 1, u.FollowerCount)

	// imported funds back rewards
	p, err := s.CreatePost(ctx, "zed", service.CreatePostParams{Content: "hello"})
	require.NoError(t, err)
	require.NoError(t, s.SendReward(ctx, "amy", p.ID, 5))

	b, err := s.GetBalance(ctx, "amy")
	require.NoError(t, err)
	assert.EqualValues(t, 95, b)

	p, err = s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 5, p.RewardAmount)
}

func TestImport_Deterministic(t *testing.T) {
	events := func() []string {
		s := impl.New(memory.New())
		require.NoError(t, Import(ctx, s, mustLoad(t, testGenesis)))

		ee, err := s.ListEvents(ctx, 0, 10)
		require.NoError(t, err)

		out := make([]string, len(ee))
		for i, v := range ee {
			out[i] = string(v.Type) + ":" + string(v.Payload)
		}

		return out
	}

	first := events()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, events())
	}
}

func TestImport_NotEmpty(t *testing.T) {
	s := impl.New(memory.New())
	require.NoError(t, s.Deposit(ctx, "amy", 1))

	err := Import(ctx, s, mustLoad(t, testGenesis))
	require.True(t, errors.Is(err, ErrNotEmpty))

	b, err := s.GetBalance(ctx, "amy")
	require.NoError(t, err)
	assert.EqualValues(t, 1, b)
}

func TestImport_Error(t *testing.T) {
	s := impl.New(memory.New())

	err := Import(ctx, s, &Genesis{Follows: []Follow{{Follower: "amy", Followee: "zed"}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUserNotFound))
}
