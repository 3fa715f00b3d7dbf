package handler

import (
	"encoding/json"
	"net/http"

	"aircnc/internal/users/service"
	apperrors "aircnc/pkg/errors"
	"aircnc/pkg/httpx"
	"aircnc/pkg/logger"
	"aircnc/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type UserHandler struct {
	service service.UserService
	log     *logger.Logger
}

func NewUserHandler(service service.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := ps.ByName("email")

	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	result, err := h.service.Upsert(r.Context(), email, &user)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, result)
}

func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := ps.ByName("email")

	user, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	// A missing user serializes as null; not-found is not an error here.
	httpx.WriteJSON(w, http.StatusOK, user)
}

func (h *UserHandler) RegisterRoutes(router *httprouter.Router) {
	router.PUT("/users/:email", h.Upsert)
	router.GET("/users/:email", h.GetByEmail)
}
