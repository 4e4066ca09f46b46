package handler

import (
	"errors"
	"net/http"

	"kittens-api/internal/auth"
	breedsdomain "kittens-api/internal/domain/breeds"
	kittensdomain "kittens-api/internal/domain/kittens"
	ratingsdomain "kittens-api/internal/domain/ratings"
	userdomain "kittens-api/internal/domain/user"
	"kittens-api/internal/transport/httpserver/middleware"
	"kittens-api/pkg/logger"
)

type Handlers struct {
	Breeds  *breedsdomain.Service
	Kittens *kittensdomain.Service
	Ratings *ratingsdomain.Service
	Users   *userdomain.Service
	Tokens  *auth.Tokens
	log     logger.Logger
}

func New(breeds *breedsdomain.Service, kittens *kittensdomain.Service, ratings *ratingsdomain.Service, users *userdomain.Service, tokens *auth.Tokens, log logger.Logger) *Handlers {
	return &Handlers{
		Breeds:  breeds,
		Kittens: kittens,
		Ratings: ratings,
		Users:   users,
		Tokens:  tokens,
		log:     log,
	}
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func identityOrUnauthorized(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return auth.Identity{}, false
	}
	return identity, true
}

// writeRequestError answers a body decode or parameter failure with 400.
func writeRequestError(w http.ResponseWriter, err error) {
	var paramErr *ParamError
	if errors.As(err, &paramErr) {
		writeError(w, http.StatusBadRequest, paramErr.Code(), paramErr.Error())
		return
	}
	writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
}
