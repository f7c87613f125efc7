// Package consumer contains interfaces of event log consumers.
package consumer

import (
	"context"

	"github.com/Decentr-net/agora/internal/entities"
)

//go:generate mockgen -destination=./mock/consumer.go -package=mock -source=consumer.go

// Pinger checks if a dependency is alive.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Consumer tails the ledger event log.
type Consumer interface {
	Pinger

	Run(ctx context.Context) error
}

// Feed is a consumer which delivers committed events to live subscribers.
type Feed interface {
	Consumer

	// Subscribe returns a channel of events committed after the call and a function to unsubscribe.
	// The channel is closed after unsubscribe.
	Subscribe() (<-chan *entities.Event, func())
}
