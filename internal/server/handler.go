package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/Decentr-net/agora/internal/service"
)

func (s server) createUser(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /users Identity CreateUser
	//
	// Creates caller's profile.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreateUserRequest"
	// responses:
	//   '201':
	//     description: Profile
	//     schema:
	//       "$ref": "#/definitions/Profile"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: profile already exists or username is taken
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreateUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := s.s.CreateUser(r.Context(), getPrincipal(r.Context()), service.CreateUserParams{
		Username:     req.Username,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		writeServiceError(w, r, "create user", err)
		return
	}

	writeOK(w, http.StatusCreated, toProfile(u))
}

func (s server) getUser(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users/{address} Identity GetUser
	//
	// Returns profile by address.
	//
	// ---
	// parameters:
	// - name: address
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Profile
	//     schema:
	//       "$ref": "#/definitions/Profile"
	//   '404':
	//     description: profile not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	u, err := s.s.GetUser(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		writeServiceError(w, r, "get user", err)
		return
	}

	writeOK(w, http.StatusOK, toProfile(u))
}

func (s server) searchByUsername(w http.ResponseWriter, r *http.Request) {
	u, err := s.s.SearchByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeServiceError(w, r, "search user", err)
		return
	}

	writeOK(w, http.StatusOK, toProfile(u))
}

func (s server) getUserPostIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := s.s.GetUserPostIDs(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		writeServiceError(w, r, "get user posts", err)
		return
	}

	writeOK(w, http.StatusOK, ids)
}

func (s server) getBalance(w http.ResponseWriter, r *http.Request) {
	b, err := s.s.GetBalance(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		writeServiceError(w, r, "get balance", err)
		return
	}

	writeOK(w, http.StatusOK, Balance{Balance: b})
}

func (s server) follow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /users/{address}/follow Graph Follow
	//
	// Caller follows the user.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: address
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '204':
	//     description: followed
	//   '400':
	//     description: self follow
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: profile not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: already following
	//     schema:
	//       "$ref": "#/definitions/Error"

	if err := s.s.Follow(r.Context(), getPrincipal(r.Context()), chi.URLParam(r, "address")); err != nil {
		writeServiceError(w, r, "follow", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) unfollow(w http.ResponseWriter, r *http.Request) {
	if err := s.s.Unfollow(r.Context(), getPrincipal(r.Context()), chi.URLParam(r, "address")); err != nil {
		writeServiceError(w, r, "unfollow", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) isFollowing(w http.ResponseWriter, r *http.Request) {
	ok, err := s.s.IsFollowing(r.Context(), chi.URLParam(r, "address"), chi.URLParam(r, "target"))
	if err != nil {
		writeServiceError(w, r, "check follow", err)
		return
	}

	writeOK(w, http.StatusOK, Flag{Value: ok})
}

func (s server) getFollowers(w http.ResponseWriter, r *http.Request) {
	out, err := s.s.GetFollowers(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		writeServiceError(w, r, "get followers", err)
		return
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) getFollowing(w http.ResponseWriter, r *http.Request) {
	out, err := s.s.GetFollowing(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		writeServiceError(w, r, "get following", err)
		return
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Content CreatePost
	//
	// Publishes a post of the caller.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreatePostRequest"
	// responses:
	//   '201':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: caller has no profile
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreatePostRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.s.CreatePost(r.Context(), getPrincipal(r.Context()), service.CreatePostParams{
		Content: req.Content,
		Media:   req.Media,
	})
	if err != nil {
		writeServiceError(w, r, "create post", err)
		return
	}

	writeOK(w, http.StatusCreated, toPost(p))
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id} Content GetPost
	//
	// Returns post with its counters.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// responses:
	//   '200':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, err := getUint64Param(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.s.GetPost(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "get post", err)
		return
	}

	writeOK(w, http.StatusOK, toPost(p))
}

func (s server) addComment(w http.ResponseWriter, r *http.Request) {
	id, err := getUint64Param(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req AddCommentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := s.s.AddComment(r.Context(), getPrincipal(r.Context()), id, req.Content)
	if err != nil {
		writeServiceError(w, r, "add comment", err)
		return
	}

	writeOK(w, http.StatusCreated, toComment(c))
}

func (s server) getComments(w http.ResponseWriter, r *http.Request) {
	id, err := getUint64Param(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cc, err := s.s.GetComments(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "get comments", err)
		return
	}

	out := make([]Comment, len(cc))
	for i, v := range cc {
		out[i] = toComment(v)
	}

	writeOK(w, http.StatusOK, out)
}

// postAction runs f for the caller and the post from url.
func postAction(w http.ResponseWriter, r *http.Request, op string, f func(ctx context.Context, caller string, postID uint64) error) {
	id, err := getUint64Param(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := f(r.Context(), getPrincipal(r.Context()), id); err != nil {
		writeServiceError(w, r, op, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) like(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/like Engagement Like
	//
	// Caller likes the post.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// responses:
	//   '204':
	//     description: liked
	//   '404':
	//     description: post or profile not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: already liked
	//     schema:
	//       "$ref": "#/definitions/Error"

	postAction(w, r, "like", s.s.Like)
}

func (s server) unlike(w http.ResponseWriter, r *http.Request) {
	postAction(w, r, "unlike", s.s.Unlike)
}

func (s server) share(w http.ResponseWriter, r *http.Request) {
	postAction(w, r, "share", s.s.Share)
}

func (s server) getEngagement(w http.ResponseWriter, r *http.Request) {
	id, err := getUint64Param(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := s.s.GetEngagement(r.Context(), chi.URLParam(r, "address"), id)
	if err != nil {
		writeServiceError(w, r, "get engagement", err)
		return
	}

	writeOK(w, http.StatusOK, Engagement{Liked: e.Liked, Shared: e.Shared})
}

func (s server) sendReward(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/rewards Reward SendReward
	//
	// Transfers amount from caller's balance to the post's author.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/SendRewardRequest"
	// responses:
	//   '204':
	//     description: rewarded
	//   '400':
	//     description: zero amount or insufficient funds
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req SendRewardRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	postAction(w, r, "send reward", func(ctx context.Context, caller string, postID uint64) error {
		return s.s.SendReward(ctx, caller, postID, req.Amount)
	})
}
