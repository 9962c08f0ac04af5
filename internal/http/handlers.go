package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pravobot/pkg"
)

// conversationRouter is the piece of the core the transport needs: one call
// per inbound message event, returning the finished reply payload.
type conversationRouter interface {
	Route(ctx context.Context, userID int64, text string, hasVoice bool) pkg.ReplyPayload
}

// Server bundles the dependencies required by the HTTP handlers.
type Server struct {
	conversations conversationRouter
	metrics       *Metrics
	logger        *slog.Logger
}

// NewServer builds the chi handler tree: the message API, the liveness
// endpoint, and the metrics exposition.
func NewServer(conversations conversationRouter, metrics *Metrics, logger *slog.Logger) http.Handler {
	s := &Server{conversations: conversations, metrics: metrics, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Post("/api/messages", s.handleMessage)
	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	return r
}

// handleMessage accepts one inbound message event and returns the reply
// payload as JSON.  Each request is an independent task; concurrency
// control lives in the core's session store, not here.
func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var req pkg.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == 0 {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}
	reply := s.conversations.Route(r.Context(), req.UserID, req.Text, req.Voice)

	outcome := "ok"
	if reply.Degraded {
		outcome = "degraded"
		s.logger.Warn("degraded reply", "user_id", req.UserID, "reason", reply.Reason)
	}
	s.metrics.Messages.WithLabelValues(outcome).Inc()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(reply); err != nil {
		s.logger.Error("failed to encode reply", "error", err)
	}
}

// handleHealthz is the liveness endpoint.
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	io.WriteString(w, "Bot is running!")
}
