package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"smartthings-bridge/internal/domain/model"
	"smartthings-bridge/internal/ports"
)

// Server exposes live accessories and their characteristics over HTTP.
type Server struct {
	bridge  ports.BridgePort
	metrics http.Handler
	logger  *slog.Logger
}

// NewServer builds the server. metrics may be nil, in which case /metrics
// is not routed.
func NewServer(bridge ports.BridgePort, metrics http.Handler, logger *slog.Logger) *Server {
	return &Server{
		bridge:  bridge,
		metrics: metrics,
		logger:  logger.With("component", "http"),
	}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	s.RegisterRoutes(r)
	return r
}

func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/accessories", func(r chi.Router) {
		r.Get("/", s.handleListAccessories)
		r.Get("/{id}", s.handleGetAccessory)
		r.Get("/{id}/characteristics/{name}", s.handleReadCharacteristic)
		r.Put("/{id}/characteristics/{name}", s.handleWriteCharacteristic)
	})
}

type characteristicBody struct {
	Value any `json:"value"`
}

func (s *Server) handleListAccessories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.bridge.Accessories())
}

func (s *Server) handleGetAccessory(w http.ResponseWriter, r *http.Request) {
	acc, err := s.bridge.Accessory(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

func (s *Server) handleReadCharacteristic(w http.ResponseWriter, r *http.Request) {
	value, err := s.bridge.ReadCharacteristic(chi.URLParam(r, "id"), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, characteristicBody{Value: value})
}

func (s *Server) handleWriteCharacteristic(w http.ResponseWriter, r *http.Request) {
	var body characteristicBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if body.Value == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "value is required"})
		return
	}

	id, name := chi.URLParam(r, "id"), chi.URLParam(r, "name")
	if err := s.bridge.WriteCharacteristic(r.Context(), id, name, body.Value); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Debug("characteristic written", "accessory_id", id, "characteristic", name, "value", body.Value)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrUnknownAccessory), errors.Is(err, model.ErrUnknownCharacteristic):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrReadOnly):
		status = http.StatusMethodNotAllowed
	case errors.Is(err, model.ErrInvalidValue):
		status = http.StatusBadRequest
	default:
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
