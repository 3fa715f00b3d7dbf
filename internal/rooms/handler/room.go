package handler

import (
	"encoding/json"
	"net/http"

	"aircnc/internal/auth"
	"aircnc/internal/rooms/service"
	apperrors "aircnc/pkg/errors"
	"aircnc/pkg/httpx"
	"aircnc/pkg/logger"
	"aircnc/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type RoomHandler struct {
	service service.RoomService
	guard   auth.Guard
	log     *logger.Logger
}

func NewRoomHandler(service service.RoomService, guard auth.Guard, log *logger.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		guard:   guard,
		log:     log,
	}
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var room model.Room
	if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	result, err := h.service.Create(r.Context(), &room)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, result)
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var room model.Room
	if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	result, err := h.service.Update(r.Context(), ps.ByName("id"), &room)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, result)
}

func (h *RoomHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rooms, err := h.service.GetAll(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rooms)
}

func (h *RoomHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	room, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, room)
}

// GetByHostEmail requires the caller's token email to match the requested
// email exactly; a mismatch fails before any database read.
func (h *RoomHandler) GetByHostEmail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := ps.ByName("email")

	claims := auth.ClaimsFrom(r.Context())
	if claims == nil || claims.Email != email {
		h.log.Warn("Host email mismatch", "requested", email)
		httpx.WriteError(w, apperrors.Forbidden("Forbidden access"))
		return
	}

	rooms, err := h.service.GetByHostEmail(r.Context(), email)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rooms)
}

func (h *RoomHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var update model.RoomStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), ps.ByName("id"), update.Status)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, result)
}

func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	result, err := h.service.Delete(r.Context(), ps.ByName("id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, result)
}

func (h *RoomHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/rooms", h.Create)
	router.PUT("/rooms/:id", h.guard(h.Update))
	router.GET("/rooms", h.GetAll)
	router.GET("/room/:id", h.GetByID)
	router.GET("/rooms/:email", h.guard(h.GetByHostEmail))
	router.PATCH("/rooms/status/:id", h.UpdateStatus)
	router.DELETE("/rooms/:id", h.Delete)
}
