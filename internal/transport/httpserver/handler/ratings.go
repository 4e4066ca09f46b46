package handler

import (
	"errors"
	"net/http"

	ratingsdomain "kittens-api/internal/domain/ratings"
)

type rateRequest struct {
	KittenID    int64 `json:"kitten_id"`
	RatingValue int   `json:"rating_value"`
}

// RateKitten godoc
// @Summary Rate a kitten from 1 to 5
// @Description The first rating of a kitten by the caller is created, later ones overwrite it.
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body rateRequest true "Rating"
// @Success 201 {object} messageResponse "rating created"
// @Success 200 {object} messageResponse "rating updated"
// @Failure 400 {object} errorEnvelope
// @Failure 401 {object} errorEnvelope
// @Failure 404 {object} errorEnvelope "no such kitten"
// @Failure 409 {object} errorEnvelope "concurrent rating"
// @Router /ratings [post]
func (h *Handlers) RateKitten(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}
	params, err := decodeParams(r)
	if err != nil {
		writeRequestError(w, err)
		return
	}
	kittenID, err := params.RequiredID("kitten_id")
	if err != nil {
		writeRequestError(w, err)
		return
	}
	value, err := params.RequiredInt("rating_value")
	if err != nil {
		writeRequestError(w, err)
		return
	}
	if err := ratingsdomain.ValidateValue(value); err != nil {
		h.log.BusinessError("ratings.rate: value out of range", err, "user_id", identity.UserID, "kitten_id", kittenID, "value", value)
		writeError(w, http.StatusBadRequest, "invalid_rating", err.Error())
		return
	}

	result, err := h.Ratings.Rate(r.Context(), identity.UserID, kittenID, value)
	if err != nil {
		switch {
		case errors.Is(err, ratingsdomain.ErrKittenNotFound):
			h.log.BusinessError("ratings.rate: kitten not found", err, "user_id", identity.UserID, "kitten_id", kittenID)
			writeError(w, http.StatusNotFound, "not_found", err.Error())
		case errors.Is(err, ratingsdomain.ErrRatingConflict):
			h.log.BusinessError("ratings.rate: concurrent rating", err, "user_id", identity.UserID, "kitten_id", kittenID)
			writeError(w, http.StatusConflict, "rating_conflict", ratingsdomain.ErrRatingConflict.Error())
		default:
			h.log.InternalError("ratings.rate: rate kitten failed", err, "user_id", identity.UserID, "kitten_id", kittenID)
			writeInternalError(w)
		}
		return
	}

	if result.Outcome == ratingsdomain.OutcomeCreated {
		writeJSON(w, http.StatusCreated, messageResponse{Message: "rating created"})
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "rating updated"})
}
