package handler

import (
	"encoding/json"
	"net/http"

	"aircnc/internal/auth"
	"aircnc/internal/payments/service"
	apperrors "aircnc/pkg/errors"
	"aircnc/pkg/httpx"
	"aircnc/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type PaymentHandler struct {
	service service.PaymentService
	guard   auth.Guard
	log     *logger.Logger
}

func NewPaymentHandler(service service.PaymentService, guard auth.Guard, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		guard:   guard,
		log:     log,
	}
}

func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload PaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	// Absent or zero price: no provider call, no body. Callers guard
	// against the empty response.
	if payload.Price == 0 {
		httpx.WriteNoContent(w)
		return
	}

	clientSecret, err := h.service.CreateIntent(r.Context(), payload.Price)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, PaymentIntentResponse{ClientSecret: clientSecret})
}

func (h *PaymentHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/create-payment-intent", h.guard(h.CreateIntent))
}
