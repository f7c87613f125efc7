package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Decentr-net/agora/internal/entities"
)

func (s server) getStats(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /stats Ledger GetStats
	//
	// Returns ledger height and totals. The response is cached for a few seconds.
	//
	// ---
	// responses:
	//   '200':
	//     description: Stats
	//     schema:
	//       "$ref": "#/definitions/Stats"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	h, err := s.s.GetHeight(r.Context())
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get height: %s", err.Error())
		return
	}

	users, err := s.s.GetTotalUsers(r.Context())
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get total users: %s", err.Error())
		return
	}

	posts, err := s.s.GetTotalPosts(r.Context())
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get total posts: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, Stats{
		Height:     h,
		TotalUsers: users,
		TotalPosts: posts,
	})
}

func (s server) listEvents(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /events Ledger ListEvents
	//
	// Returns committed events in height order.
	//
	// ---
	// parameters:
	// - name: after
	//   description: sets not-including lower bound of height
	//   in: query
	//   required: false
	//   default: 0
	// - name: limit
	//   description: limits count of returned events
	//   in: query
	//   required: false
	//   default: 100
	//   minimum: 1
	//   maximum: 1000
	// responses:
	//   '200':
	//     description: Events
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Event"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	after, err := getUint64Query(r, "after", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit, err := getUint64Query(r, "limit", defaultLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if limit == 0 || limit > maxLimit {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s: limit should be in [1, %d]", errInvalidRequest, maxLimit))
		return
	}

	ee, err := s.s.ListEvents(r.Context(), after, uint16(limit))
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list events: %s", err.Error())
		return
	}

	out := make([]Event, len(ee))
	for i, v := range ee {
		out[i] = toEvent(v)
	}

	writeOK(w, http.StatusOK, out)
}

// streamEvents writes events as server-sent events. Events after the `after` height are replayed from the log
// first, then live events from the feed follow. The stream ends when the feed drops this subscriber.
func (s server) streamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming is not supported")
		return
	}

	after, err := getUint64Query(r, "after", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// subscribe before replay so nothing committed in between is lost
	ch, unsubscribe := s.f.Subscribe()
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	if r.URL.Query().Get("after") != "" {
		for {
			ee, err := s.s.ListEvents(r.Context(), after, maxLimit)
			if err != nil {
				log.WithError(err).Error("failed to replay events")
				return
			}

			for _, e := range ee {
				if err := writeSSE(w, e); err != nil {
					return
				}
				after = e.Height
			}
			flusher.Flush()

			if len(ee) < maxLimit {
				break
			}
		}
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case e, ok := <-ch:
			if !ok {
				// the client resumes with after set to the last received id
				log.WithField("after", after).Debug("event feed closed the stream")
				return
			}

			if e.Height <= after {
				continue
			}

			if err := writeSSE(w, e); err != nil {
				return
			}
			flusher.Flush()
			after = e.Height
		}
	}
}

func writeSSE(w http.ResponseWriter, e *entities.Event) error {
	data, err := json.Marshal(toEvent(e))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", e.Height, e.Type, data); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}
