package health

import (
	"context"
	"net/http"
	"time"

	"aircnc/pkg/httpx"
	"aircnc/pkg/logger"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"
)

type Handler struct {
	mongo *mongo.Client
	log   *logger.Logger
}

func NewHandler(mongoClient *mongo.Client, log *logger.Logger) *Handler {
	return &Handler{
		mongo: mongoClient,
		log:   log,
	}
}

func (h *Handler) Liveness(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("AirCNC server is running.."))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.mongo.Ping(ctx, nil); err != nil {
		h.log.Error("Health check failed", "error", err)
		httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Liveness)
	router.GET("/health", h.Health)
}
