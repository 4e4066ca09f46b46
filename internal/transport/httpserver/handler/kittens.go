package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	kittensdomain "kittens-api/internal/domain/kittens"
)

const (
	msgNull      = "this field may not be null"
	msgNotString = "not a valid string"
)

type kittenSummaryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Breed int64  `json:"breed"`
	Owner int64  `json:"owner"`
}

type kittenResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	AgeInMonths int    `json:"age_in_months"`
	Description string `json:"description"`
	Breed       int64  `json:"breed"`
	Owner       int64  `json:"owner"`
}

// Documentation only. Bodies are decoded through Params.
type kittenRequest struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	AgeInMonths int    `json:"age_in_months"`
	Description string `json:"description"`
	Breed       int64  `json:"breed"`
}

type kittenUpdateRequest struct {
	KittenID    int64   `json:"kitten_id"`
	Name        *string `json:"name"`
	Color       *string `json:"color"`
	AgeInMonths *int    `json:"age_in_months"`
	Description *string `json:"description"`
	Breed       *int64  `json:"breed"`
}

type kittenIDRequest struct {
	KittenID int64 `json:"kitten_id"`
}

type breedIDRequest struct {
	BreedID int64 `json:"breed_id"`
}

// ListKittens godoc
// @Summary List kittens
// @Tags kittens
// @Produce json
// @Success 200 {array} kittenSummaryResponse
// @Router /kittens [get]
func (h *Handlers) ListKittens(w http.ResponseWriter, r *http.Request) {
	items, err := h.Kittens.List(r.Context())
	if err != nil {
		h.log.InternalError("kittens.list: list kittens failed", err)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, toKittenSummaries(items))
}

// KittensByBreed godoc
// @Summary List kittens of a breed
// @Tags kittens
// @Accept json
// @Produce json
// @Param payload body breedIDRequest true "Breed"
// @Success 200 {array} kittenSummaryResponse
// @Failure 400 {object} errorEnvelope
// @Failure 404 {object} errorEnvelope "no kittens found"
// @Router /kittens/by-breed [post]
func (h *Handlers) KittensByBreed(w http.ResponseWriter, r *http.Request) {
	params, err := decodeParams(r)
	if err != nil {
		writeRequestError(w, err)
		return
	}
	breedID, err := params.RequiredID("breed_id")
	if err != nil {
		writeRequestError(w, err)
		return
	}

	items, err := h.Kittens.ListByBreed(r.Context(), breedID)
	if err != nil {
		if errors.Is(err, kittensdomain.ErrNoKittensFound) {
			h.log.BusinessError("kittens.by_breed: no kittens found", err, "breed_id", breedID)
			writeError(w, http.StatusNotFound, "no_kittens_found", err.Error())
			return
		}
		h.log.InternalError("kittens.by_breed: list kittens failed", err, "breed_id", breedID)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, toKittenSummaries(items))
}

// KittenDetail godoc
// @Summary Kitten detail
// @Tags kittens
// @Accept json
// @Produce json
// @Param payload body kittenIDRequest true "Kitten"
// @Success 200 {object} kittenResponse
// @Failure 400 {object} errorEnvelope
// @Failure 404 {object} errorEnvelope "kitten not found"
// @Router /kittens/detail [post]
func (h *Handlers) KittenDetail(w http.ResponseWriter, r *http.Request) {
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

	kitten, err := h.Kittens.Get(r.Context(), kittenID)
	if err != nil {
		if errors.Is(err, kittensdomain.ErrKittenNotFound) {
			h.log.BusinessError("kittens.detail: kitten not found", err, "kitten_id", kittenID)
			writeError(w, http.StatusNotFound, "kitten_not_found", err.Error())
			return
		}
		h.log.InternalError("kittens.detail: get kitten failed", err, "kitten_id", kittenID)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, toKittenResponse(*kitten))
}

// CreateKitten godoc
// @Summary Create a kitten owned by the caller
// @Description Any owner value in the payload is ignored.
// @Tags kittens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body kittenRequest true "Kitten"
// @Success 201 {object} kittenResponse
// @Failure 400 {object} errorEnvelope "field errors"
// @Failure 401 {object} errorEnvelope
// @Router /kittens [post]
func (h *Handlers) CreateKitten(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}
	params, err := decodeParams(r)
	if err != nil {
		writeRequestError(w, err)
		return
	}

	fields, fieldErrs := kittenFields(params)
	if len(fieldErrs) > 0 {
		h.log.BusinessError("kittens.create: invalid fields", fieldErrs, "user_id", identity.UserID)
		writeFieldErrors(w, fieldErrs)
		return
	}

	kitten, err := h.Kittens.Create(r.Context(), identity.UserID, fields)
	if err != nil {
		if errors.As(err, &fieldErrs) {
			h.log.BusinessError("kittens.create: invalid fields", err, "user_id", identity.UserID)
			writeFieldErrors(w, fieldErrs)
			return
		}
		h.log.InternalError("kittens.create: create kitten failed", err, "user_id", identity.UserID)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusCreated, toKittenResponse(*kitten))
}

// UpdateKitten godoc
// @Summary Partially update a kitten owned by the caller
// @Description Someone else's kitten is reported as not found.
// @Tags kittens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body kittenUpdateRequest true "Kitten id and the fields to change"
// @Success 200 {object} kittenResponse
// @Failure 400 {object} errorEnvelope
// @Failure 401 {object} errorEnvelope
// @Failure 404 {object} errorEnvelope "kitten not found"
// @Router /kittens [put]
func (h *Handlers) UpdateKitten(w http.ResponseWriter, r *http.Request) {
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

	fields, fieldErrs := kittenFields(params)
	var kitten *kittensdomain.Kitten
	if len(fieldErrs) > 0 {
		// not found wins over malformed fields
		_, err = h.Kittens.GetOwned(r.Context(), identity.UserID, kittenID)
		if err == nil {
			err = fieldErrs
		}
	} else {
		kitten, err = h.Kittens.Update(r.Context(), identity.UserID, kittenID, fields)
	}
	if err != nil {
		switch {
		case errors.Is(err, kittensdomain.ErrKittenNotFound):
			h.log.BusinessError("kittens.update: kitten not found", err, "user_id", identity.UserID, "kitten_id", kittenID)
			writeError(w, http.StatusNotFound, "kitten_not_found", kittensdomain.ErrKittenNotFound.Error())
		case errors.As(err, &fieldErrs):
			h.log.BusinessError("kittens.update: invalid fields", err, "user_id", identity.UserID, "kitten_id", kittenID)
			writeFieldErrors(w, fieldErrs)
		default:
			h.log.InternalError("kittens.update: update kitten failed", err, "user_id", identity.UserID, "kitten_id", kittenID)
			writeInternalError(w)
		}
		return
	}
	writeJSON(w, http.StatusOK, toKittenResponse(*kitten))
}

// DeleteKitten godoc
// @Summary Delete a kitten owned by the caller
// @Tags kittens
// @Accept json
// @Security BearerAuth
// @Param payload body kittenIDRequest true "Kitten"
// @Success 204
// @Failure 400 {object} errorEnvelope
// @Failure 401 {object} errorEnvelope
// @Failure 404 {object} errorEnvelope "kitten not found"
// @Router /kittens [delete]
func (h *Handlers) DeleteKitten(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Kittens.Delete(r.Context(), identity.UserID, kittenID); err != nil {
		if errors.Is(err, kittensdomain.ErrKittenNotFound) {
			h.log.BusinessError("kittens.delete: kitten not found", err, "user_id", identity.UserID, "kitten_id", kittenID)
			writeError(w, http.StatusNotFound, "kitten_not_found", err.Error())
			return
		}
		h.log.InternalError("kittens.delete: delete kitten failed", err, "user_id", identity.UserID, "kitten_id", kittenID)
		writeInternalError(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// kittenFields reads the mutable kitten attributes. Absent members stay
// nil; members of the wrong type are reported per field. Owner is never
// read from the body.
func kittenFields(params Params) (kittensdomain.Fields, kittensdomain.FieldErrors) {
	errs := kittensdomain.FieldErrors{}
	fields := kittensdomain.Fields{
		Name:        stringField(params, kittensdomain.FieldName, errs),
		Color:       stringField(params, kittensdomain.FieldColor, errs),
		AgeInMonths: intField(params, kittensdomain.FieldAgeInMonths, errs),
		Description: stringField(params, kittensdomain.FieldDescription, errs),
	}
	if breed := intField(params, kittensdomain.FieldBreed, errs); breed != nil {
		breedID := int64(*breed)
		fields.BreedID = &breedID
	}
	return fields, errs
}

func stringField(params Params, name string, errs kittensdomain.FieldErrors) *string {
	value, ok := params[name]
	if !ok {
		return nil
	}
	if isNull(value) {
		errs.Add(name, msgNull)
		return nil
	}
	var parsed string
	if err := json.Unmarshal(value, &parsed); err != nil {
		errs.Add(name, msgNotString)
		return nil
	}
	return &parsed
}

func intField(params Params, name string, errs kittensdomain.FieldErrors) *int {
	value, ok := params[name]
	if !ok {
		return nil
	}
	if isNull(value) {
		errs.Add(name, msgNull)
		return nil
	}
	parsed, ok := parseInt(value)
	if !ok {
		errs.Add(name, kittensdomain.MsgNotInteger)
		return nil
	}
	result := int(parsed)
	return &result
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func toKittenSummaries(items []kittensdomain.Kitten) []kittenSummaryResponse {
	response := make([]kittenSummaryResponse, 0, len(items))
	for _, item := range items {
		response = append(response, kittenSummaryResponse{
			ID:    item.ID,
			Name:  item.Name,
			Breed: item.BreedID,
			Owner: item.OwnerID,
		})
	}
	return response
}

func toKittenResponse(item kittensdomain.Kitten) kittenResponse {
	return kittenResponse{
		ID:          item.ID,
		Name:        item.Name,
		Color:       item.Color,
		AgeInMonths: item.AgeInMonths,
		Description: item.Description,
		Breed:       item.BreedID,
		Owner:       item.OwnerID,
	}
}
