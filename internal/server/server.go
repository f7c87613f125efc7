// Package server Agora
//
// The Agora is a social ledger: profiles, posts, comments, follows, likes, rewards and direct messages.
// Every mutation is committed as exactly one event of the ledger's event log.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
//     SecurityDefinitions:
//       bearer:
//         type: apiKey
//         name: Authorization
//         in: header
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/agora/internal/consumer"
	mm "github.com/Decentr-net/agora/internal/middleware"
	"github.com/Decentr-net/agora/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

var log = logrus.WithField("layer", "server").WithField("package", "server")

const (
	maxBodySize = 8 * 1024
	statsTTL    = 10 * time.Second
)

type server struct {
	s service.Service
	f consumer.Feed
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, f consumer.Feed, r chi.Router, timeout time.Duration, jwtSecret []byte) {
	r.Use(
		middleware.RequestID,
		loggerMiddleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.Recoverer,
	)

	srv := server{
		s: s,
		f: f,
	}

	r.Route("/v1", func(r chi.Router) {
		// stream is long-living, so it is out of the timeout group
		r.Get("/events/stream", srv.streamEvents)

		r.Group(func(r chi.Router) {
			r.Use(
				middleware.Timeout(timeout),
				bodyLimiterMiddleware(maxBodySize),
			)

			r.Get("/stats", mm.Cached(statsTTL, srv.getStats))
			r.Get("/events", srv.listEvents)

			r.Get("/users/{address}", srv.getUser)
			r.Get("/usernames/{username}", srv.searchByUsername)
			r.Get("/users/{address}/posts", srv.getUserPostIDs)
			r.Get("/users/{address}/followers", srv.getFollowers)
			r.Get("/users/{address}/following", srv.getFollowing)
			r.Get("/users/{address}/following/{target}", srv.isFollowing)
			r.Get("/users/{address}/balance", srv.getBalance)
			r.Get("/users/{address}/chats", srv.getRecentChats)
			r.Get("/users/{address}/conversations", srv.getConversations)
			r.Get("/users/{address}/chats/{counterpart}", srv.getChatHistory)
			r.Get("/users/{address}/chats/{counterpart}/allowed", srv.canChat)
			r.Get("/users/{address}/unread", srv.getUnreadCount)

			r.Get("/posts/{id}", srv.getPost)
			r.Get("/posts/{id}/comments", srv.getComments)
			r.Get("/posts/{id}/engagements/{address}", srv.getEngagement)

			r.Get("/messages/{id}", srv.getMessage)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware(jwtSecret))

				r.Post("/users", srv.createUser)
				r.Post("/users/{address}/follow", srv.follow)
				r.Delete("/users/{address}/follow", srv.unfollow)

				r.Post("/posts", srv.createPost)
				r.Post("/posts/{id}/comments", srv.addComment)
				r.Post("/posts/{id}/like", srv.like)
				r.Delete("/posts/{id}/like", srv.unlike)
				r.Post("/posts/{id}/share", srv.share)
				r.Post("/posts/{id}/rewards", srv.sendReward)

				r.Post("/messages", srv.sendMessage)
				r.Post("/messages/{id}/read", srv.markMessageAsRead)
				r.Post("/chats/{sender}/read", srv.markAllMessagesAsRead)
			})
		})
	})
}
