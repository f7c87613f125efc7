// Package feed tails the ledger event log and delivers new events to subscribers.
package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/agora/internal/consumer"
	"github.com/Decentr-net/agora/internal/entities"
	"github.com/Decentr-net/agora/internal/metrics"
	"github.com/Decentr-net/agora/internal/storage"
)

var log = logrus.WithField("layer", "consumer").WithField("package", "feed")

const (
	batchSize        = 100
	subscriberBuffer = 64
)

type feed struct {
	s storage.Storage

	interval      time.Duration
	retryInterval time.Duration

	mu     sync.RWMutex
	subs   map[uint64]*subscriber
	nextID uint64
	err    error
}

type subscriber struct {
	ch   chan *entities.Event
	once sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() {
		close(s.ch)
	})
}

// New creates new instance of feed.
// interval is waited when the log has no new events, retryInterval is waited after a failed poll.
func New(s storage.Storage, interval, retryInterval time.Duration) consumer.Feed {
	return &feed{
		s:             s,
		interval:      interval,
		retryInterval: retryInterval,
		subs:          map[uint64]*subscriber{},
	}
}

func (f *feed) Ping(ctx context.Context) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.err
}

func (f *feed) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

// Run starts from the current height, so only events committed after start are delivered.
func (f *feed) Run(ctx context.Context) error {
	last, err := f.s.GetHeight(ctx)
	if err != nil {
		return fmt.Errorf("failed to get height: %w", err)
	}

	log.WithField("height", last).Info("start tailing event log")

	for {
		ee, err := f.s.ListEvents(ctx, last, batchSize)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			log.WithField("after", last).WithError(err).Error("failed to list events")
			f.setErr(err)

			if !sleep(ctx, f.retryInterval) {
				return nil
			}
			continue
		}
		f.setErr(nil)

		for _, e := range ee {
			f.dispatch(e)
			last = e.Height
		}

		if len(ee) == batchSize {
			continue
		}

		if !sleep(ctx, f.interval) {
			return nil
		}
	}
}

// sleep returns false when ctx is done.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// dispatch never blocks. A subscriber whose buffer is full is closed, so it can resubscribe
// from the last height it has seen instead of missing events silently.
func (f *feed) dispatch(e *entities.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id, sub := range f.subs {
		select {
		case sub.ch <- e:
		default:
			log.WithField("subscriber", id).WithField("height", e.Height).Warn("subscriber is too slow, closing")
			delete(f.subs, id)
			sub.close()
		}
	}

	metrics.EventsDispatched.WithLabelValues(string(e.Type)).Inc()
}

// Subscribe returns a channel of new events. The channel is closed by unsubscribe
// or when the subscriber falls behind.
func (f *feed) Subscribe() (<-chan *entities.Event, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++

	sub := &subscriber{ch: make(chan *entities.Event, subscriberBuffer)}
	f.subs[id] = sub

	return sub.ch, func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()

		sub.close()
	}
}
