package server

import (
	"net/http"

	"github.com/go-chi/chi"
)

func (s server) canChat(w http.ResponseWriter, r *http.Request) {
	ok, err := s.s.CanChat(r.Context(), chi.URLParam(r, "address"), chi.URLParam(r, "counterpart"))
	if err != nil {
		writeServiceError(w, r, "check chat", err)
		return
	}

	writeOK(w, http.StatusOK, Flag{Value: ok})
}

func (s server) sendMessage(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /messages Messaging SendMessage
	//
	// Sends direct message from caller. One of the parties must follow the other.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/SendMessageRequest"
	// responses:
	//   '201':
	//     description: Message
	//     schema:
	//       "$ref": "#/definitions/Message"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: parties do not follow each other
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req SendMessageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := s.s.SendMessage(r.Context(), getPrincipal(r.Context()), req.Receiver, req.Content)
	if err != nil {
		writeServiceError(w, r, "send message", err)
		return
	}

	writeOK(w, http.StatusCreated, toMessage(m))
}

func (s server) getMessage(w http.ResponseWriter, r *http.Request) {
	id, err := getUint64Param(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := s.s.GetMessage(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "get message", err)
		return
	}

	writeOK(w, http.StatusOK, toMessage(m))
}

func (s server) getChatHistory(w http.ResponseWriter, r *http.Request) {
	mm, err := s.s.GetChatHistory(r.Context(), chi.URLParam(r, "address"), chi.URLParam(r, "counterpart"))
	if err != nil {
		writeServiceError(w, r, "get chat history", err)
		return
	}

	out := make([]Message, len(mm))
	for i, v := range mm {
		out[i] = toMessage(v)
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) getRecentChats(w http.ResponseWriter, r *http.Request) {
	out, err := s.s.GetRecentChats(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		writeServiceError(w, r, "get recent chats", err)
		return
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) getConversations(w http.ResponseWriter, r *http.Request) {
	cc, err := s.s.GetConversations(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		writeServiceError(w, r, "get conversations", err)
		return
	}

	out := make([]Conversation, len(cc))
	for i, v := range cc {
		out[i] = toConversation(v)
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) markMessageAsRead(w http.ResponseWriter, r *http.Request) {
	id, err := getUint64Param(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.MarkMessageAsRead(r.Context(), getPrincipal(r.Context()), id); err != nil {
		writeServiceError(w, r, "mark message as read", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) markAllMessagesAsRead(w http.ResponseWriter, r *http.Request) {
	if err := s.s.MarkAllMessagesAsRead(r.Context(), getPrincipal(r.Context()), chi.URLParam(r, "sender")); err != nil {
		writeServiceError(w, r, "mark messages as read", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getUnreadCount returns unread messages from sender query parameter, or the total when it is omitted.
func (s server) getUnreadCount(w http.ResponseWriter, r *http.Request) {
	var (
		c   uint32
		err error
	)

	receiver := chi.URLParam(r, "address")
	if sender := r.URL.Query().Get("sender"); sender != "" {
		c, err = s.s.GetUnreadMessageCount(r.Context(), receiver, sender)
	} else {
		c, err = s.s.GetTotalUnreadMessages(r.Context(), receiver)
	}

	if err != nil {
		writeServiceError(w, r, "count unread messages", err)
		return
	}

	writeOK(w, http.StatusOK, Count{Count: c})
}
