package auth

import (
	"encoding/json"
	"net/http"

	apperrors "aircnc/pkg/errors"
	"aircnc/pkg/httpx"
	"aircnc/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type TokenRequest struct {
	Email string `json:"email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type TokenHandler struct {
	tokens *TokenService
	log    *logger.Logger
}

func NewTokenHandler(tokens *TokenService, log *logger.Logger) *TokenHandler {
	return &TokenHandler{
		tokens: tokens,
		log:    log,
	}
}

func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}
	if payload.Email == "" {
		httpx.WriteError(w, apperrors.InvalidInput("email is required"))
		return
	}

	token, err := h.tokens.Issue(payload.Email)
	if err != nil {
		h.log.Error("Failed to sign token", "error", err)
		httpx.WriteError(w, apperrors.Internal("Failed to issue token", err))
		return
	}

	httpx.WriteJSON(w, http.StatusOK, TokenResponse{Token: token})
}

func (h *TokenHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/jwt", h.Issue)
}
