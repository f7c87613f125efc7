package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/agora/internal/service"
)

func TestSrv_SendReward(t *testing.T) {
	s := newTestService()
	mustCreateUsers(t, s, "poster", "rewarder")
	id := mustCreatePost(t, s, "poster")

	require.NoError(t, s.Deposit(ctx, "rewarder", 100))

	require.NoError(t, s.SendReward(ctx, "rewarder", id, 5))

	p, err := s.GetPost(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 5, p.RewardAmount)

	u, err := s.GetUser(ctx, "poster")
	require.NoError(t, err)
	assert.EqualValues(t, 5, u.RewardsBalance)

	b, err := s.GetBalance(ctx, "poster")
	require.NoError(t, err)
	assert.EqualValues(t, 5, b)

	b, err = s.GetBalance(ctx, "rewarder")
	require.NoError(t, err)
	assert.EqualValues(t, 95, b)

	ee, err := s.ListEvents(ctx, 0, 100)
	require.NoError(t, err)
	assert.JSONEq(t, `{"post_id":1,"sender":"rewarder","recipient":"poster","amount":5}`, string(ee[len(ee)-1].Payload))
}

func TestSrv_SendReward_Errors(t *testing.T) {
	s := newTestService()
	mustCreateUsers(t, s, "poster", "rewarder")
	id := mustCreatePost(t, s, "poster")
	require.NoError(t, s.Deposit(ctx, "rewarder", 3))

	tt := []struct {
		name   string
		postID uint64
		amount int64
		err    error
	}{
		{name: "zero", postID: id, amount: 0, err: service.ErrZeroAmount},
		{name: "negative", postID: id, amount: -1, err: service.ErrZeroAmount},
		{name: "unknown_post", postID: 999, amount: 1, err: service.ErrPostNotFound},
		{name: "zero_on_unknown_post", postID: 999, amount: 0, err: service.ErrZeroAmount},
		{name: "insufficient_funds", postID: id, amount: 5, err: service.ErrInsufficientFunds},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			h := mustGetHeight(t, s)
			require.Equal(t, tc.err, s.SendReward(ctx, "rewarder", tc.postID, tc.amount))
			require.Equal(t, h, mustGetHeight(t, s))
		})
	}

	p, err := s.GetPost(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, p.RewardAmount)

	b, err := s.GetBalance(ctx, "rewarder")
	require.NoError(t, err)
	assert.EqualValues(t, 3, b)

	b, err = s.GetBalance(ctx, "poster")
	require.NoError(t, err)
	assert.Zero(t, b)
}

func TestSrv_SendReward_ToSelf(t *testing.T) {
	s := newTestService()
	mustCreateUsers(t, s, "poster")
	id := mustCreatePost(t, s, "poster")
	require.NoError(t, s.Deposit(ctx, "poster", 10))

	require.NoError(t, s.SendReward(ctx, "poster", id, 10))

	b, err := s.GetBalance(ctx, "poster")
	require.NoError(t, err)
	assert.EqualValues(t, 10, b)
}

func TestSrv_Deposit(t *testing.T) {
	s := newTestService()

	require.Equal(t, service.ErrZeroAmount, s.Deposit(ctx, "addr", 0))
	require.NoError(t, s.Deposit(ctx, "addr", 7))
	require.NoError(t, s.Deposit(ctx, "addr", 3))

	b, err := s.GetBalance(ctx, "addr")
	require.NoError(t, err)
	assert.EqualValues(t, 10, b)
	assert.EqualValues(t, 2, mustGetHeight(t, s))
}
