package handler

import (
	"encoding/json"
	"net/http"

	"aircnc/internal/bookings/service"
	apperrors "aircnc/pkg/errors"
	"aircnc/pkg/httpx"
	"aircnc/pkg/logger"
	"aircnc/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	result, err := h.service.Create(r.Context(), &booking)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, result)
}

func (h *BookingHandler) GetByGuestEmail(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.GetByGuestEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) GetByHostEmail(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.GetByHostEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	result, err := h.service.Delete(r.Context(), ps.ByName("id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, result)
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/bookings", h.Create)
	router.GET("/bookings", h.GetByGuestEmail)
	router.GET("/bookings/host", h.GetByHostEmail)
	router.DELETE("/bookings/:id", h.Delete)
}
