package handler

import (
	"net/http"

	breedsdomain "kittens-api/internal/domain/breeds"
)

type breedResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListBreeds godoc
// @Summary List breeds
// @Tags breeds
// @Produce json
// @Success 200 {array} breedResponse
// @Router /breeds [get]
func (h *Handlers) ListBreeds(w http.ResponseWriter, r *http.Request) {
	items, err := h.Breeds.List(r.Context())
	if err != nil {
		h.log.InternalError("breeds.list: list breeds failed", err)
		writeInternalError(w)
		return
	}

	response := make([]breedResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toBreedResponse(item))
	}
	writeJSON(w, http.StatusOK, response)
}

func toBreedResponse(item breedsdomain.Breed) breedResponse {
	return breedResponse{ID: item.ID, Name: item.Name}
}
