// Package genesis seeds an empty ledger with balances, profiles and follow edges.
package genesis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/agora/internal/service"
)

var log = logrus.WithField("layer", "genesis").WithField("package", "genesis")

// ErrNotEmpty is returned when the ledger already has events.
var ErrNotEmpty = errors.New("ledger is not empty")

// Genesis is the initial ledger state.
type Genesis struct {
	Balances map[string]int64 `json:"balances"`
	Users    []User           `json:"users"`
	Follows  []Follow         `json:"follows"`
}

// User ...
type User struct {
	Address      string `json:"address"`
	Username     string `json:"username"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`
}

// Follow ...
type Follow struct {
	Follower string `json:"follower"`
	Followee string `json:"followee"`
}

// Load reads genesis from the json file.
func Load(path string) (*Genesis, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read genesis: %w", err)
	}

	var g Genesis
	if err := json.Unmarshal(b, &g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal genesis: %w", err)
	}

	return &g, nil
}

// Import commits g through s. Balances go first in address order, then users and follows in file order,
// so importing the same genesis always produces the same events.
func Import(ctx context.Context, s service.Service, g *Genesis) error {
	h, err := s.GetHeight(ctx)
	if err != nil {
		return fmt.Errorf("failed to get height: %w", err)
	}

	if h != 0 {
		return fmt.Errorf("%w: height is %d", ErrNotEmpty, h)
	}

	addresses := make([]string, 0, len(g.Balances))
	for k := range g.Balances {
		addresses = append(addresses, k)
	}
	sort.Strings(addresses)

	for i, v := range addresses {
		if err := s.Deposit(ctx, v, g.Balances[v]); err != nil {
			return fmt.Errorf("failed to deposit to %s: %w", v, err)
		}

		if (i+1)%20 == 0 {
			log.Infof("%d of %d balances imported", i+1, len(addresses))
		}
	}

	for i, v := range g.Users {
		if _, err := s.CreateUser(ctx, v.Address, service.CreateUserParams{
			Username:     v.Username,
			Bio:          v.Bio,
			ProfileImage: v.ProfileImage,
		}); err != nil {
			return fmt.Errorf("failed to create user %s: %w", v.Address, err)
		}

		if (i+1)%20 == 0 {
			log.Infof("%d of %d users imported", i+1, len(g.Users))
		}
	}

	for i, v := range g.Follows {
		if err := s.Follow(ctx, v.Follower, v.Followee); err != nil {
			return fmt.Errorf("failed to follow %s by %s: %w", v.Followee, v.Follower, err)
		}

		if (i+1)%20 == 0 {
			log.Infof("%d of %d follows imported", i+1, len(g.Follows))
		}
	}

	log.WithField("balances", len(addresses)).
		WithField("users", len(g.Users)).
		WithField("follows", len(g.Follows)).
		Info("genesis imported")

	return nil
}
