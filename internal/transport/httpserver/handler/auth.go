package handler

import (
	"errors"
	"net/http"
	"strings"

	"kittens-api/internal/auth"
	userdomain "kittens-api/internal/domain/user"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type tokenPairResponse struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

type accessTokenResponse struct {
	Access string `json:"access"`
}

// Register godoc
// @Summary Register a user and issue a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Credentials"
// @Success 201 {object} tokenPairResponse
// @Failure 400 {object} errorEnvelope "missing parameter, username taken or credentials too long"
// @Router /register [post]
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	username, password, ok := readCredentials(w, r)
	if !ok {
		return
	}

	created, err := h.Users.Register(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, userdomain.ErrUsernameTaken):
			h.log.BusinessError("auth.register: username taken", err, "username", username)
			writeError(w, http.StatusBadRequest, "username_taken", err.Error())
			return
		case errors.Is(err, userdomain.ErrUsernameTooLong):
			h.log.BusinessError("auth.register: username too long", err)
			writeError(w, http.StatusBadRequest, "username_too_long", err.Error())
			return
		case errors.Is(err, userdomain.ErrPasswordTooLong):
			h.log.BusinessError("auth.register: password too long", err, "username", username)
			writeError(w, http.StatusBadRequest, "password_too_long", err.Error())
			return
		}
		h.log.InternalError("auth.register: create user failed", err, "username", username)
		writeInternalError(w)
		return
	}

	h.writeTokenPair(w, http.StatusCreated, created, "auth.register")
}

// ObtainToken godoc
// @Summary Exchange credentials for a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Credentials"
// @Success 200 {object} tokenPairResponse
// @Failure 400 {object} errorEnvelope
// @Failure 401 {object} errorEnvelope "invalid credentials"
// @Router /token [post]
func (h *Handlers) ObtainToken(w http.ResponseWriter, r *http.Request) {
	username, password, ok := readCredentials(w, r)
	if !ok {
		return
	}

	found, err := h.Users.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, userdomain.ErrInvalidCredentials) {
			h.log.BusinessError("auth.token: invalid credentials", err, "username", username)
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "no active account found with the given credentials")
			return
		}
		h.log.InternalError("auth.token: authenticate failed", err, "username", username)
		writeInternalError(w)
		return
	}

	h.writeTokenPair(w, http.StatusOK, found, "auth.token")
}

// RefreshToken godoc
// @Summary Exchange a refresh token for a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body refreshRequest true "Refresh token"
// @Success 200 {object} accessTokenResponse
// @Failure 400 {object} errorEnvelope
// @Failure 401 {object} errorEnvelope "invalid token"
// @Router /token/refresh [post]
func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	params, err := decodeParams(r)
	if err != nil {
		writeRequestError(w, err)
		return
	}
	refresh, err := params.RequiredString("refresh")
	if err != nil {
		writeRequestError(w, err)
		return
	}

	access, identity, err := h.Tokens.Refresh(refresh)
	if err != nil {
		h.log.BusinessError("auth.refresh: invalid refresh token", err)
		writeError(w, http.StatusUnauthorized, "invalid_token", auth.ErrInvalidToken.Error())
		return
	}
	if _, err := h.Users.GetByID(r.Context(), identity.UserID); err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			h.log.BusinessError("auth.refresh: token user not found", err, "user_id", identity.UserID)
			writeError(w, http.StatusUnauthorized, "invalid_token", auth.ErrInvalidToken.Error())
			return
		}
		h.log.InternalError("auth.refresh: load user failed", err, "user_id", identity.UserID)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, accessTokenResponse{Access: access})
}

func readCredentials(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	params, err := decodeParams(r)
	if err != nil {
		writeRequestError(w, err)
		return "", "", false
	}
	username, err := params.RequiredString("username")
	if err == nil && strings.TrimSpace(username) == "" {
		err = missingParam("username")
	}
	if err != nil {
		writeRequestError(w, err)
		return "", "", false
	}
	password, err := params.RequiredString("password")
	if err != nil {
		writeRequestError(w, err)
		return "", "", false
	}
	return username, password, true
}

func (h *Handlers) writeTokenPair(w http.ResponseWriter, status int, u *userdomain.User, area string) {
	pair, err := h.Tokens.IssuePair(auth.Identity{UserID: u.ID, Username: u.Username})
	if err != nil {
		h.log.InternalError(area+": issue tokens failed", err, "user_id", u.ID)
		writeInternalError(w)
		return
	}
	writeJSON(w, status, tokenPairResponse{Refresh: pair.Refresh, Access: pair.Access})
}
