package handlers

import (
	"net/http"

	"github.com/byestunting/byestunting/internal/messages"
	"github.com/byestunting/byestunting/pkg/errors"
)

// MessageHandler serves the contact-form inbox endpoints.
type MessageHandler struct {
	store *messages.Store
}

// NewMessageHandler wires the handler.
func NewMessageHandler(store *messages.Store) *MessageHandler {
	return &MessageHandler{store: store}
}

// List returns messages, filtered by ?status, ?priority, and ?limit.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	msgs := h.store.List(messages.ListFilter{
		Status:   r.URL.Query().Get("status"),
		Priority: r.URL.Query().Get("priority"),
		Limit:    queryInt(r, "limit"),
	})
	if msgs == nil {
		msgs = []messages.Message{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

// Get returns one message by id.
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "messageID")
	if err != nil {
		writeAppError(w, err)
		return
	}

	msg, err := h.store.Get(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// Create stores a new contact-form submission.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var msg messages.Message
	if err := decodeJSON(r, &msg); err != nil {
		writeAppError(w, err)
		return
	}

	created, err := h.store.Create(msg)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type statusRequest struct {
	Status string `json:"status"`
}

// SetStatus advances a message through the unread/read/replied workflow.
func (h *MessageHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "messageID")
	if err != nil {
		writeAppError(w, err)
		return
	}

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}
	if req.Status == "" {
		writeAppError(w, errors.InvalidParam("status wajib diisi"))
		return
	}

	msg, err := h.store.SetStatus(id, req.Status)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}
