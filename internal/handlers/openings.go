package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/chess-openings/internal/logger"
	"github.com/sbilibin2017/chess-openings/internal/models"
)

// OpeningsLister defines the interface that the openings service must implement.
type OpeningsLister interface {
	List(ctx context.Context) ([]models.OpeningDB, error)
}

// OpeningsResponse represents the openings catalog
// swagger:model OpeningsResponse
type OpeningsResponse struct {
	// Openings ordered by name
	Openings []models.OpeningDB `json:"openings"`
}

// OpeningsErrorResponse represents an error response for the openings catalog
// swagger:model OpeningsErrorResponse
type OpeningsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListOpeningsHandler returns an HTTP handler for the openings catalog.
// @Summary List openings
// @Description Returns the openings catalog, served from cache when available
// @Tags openings
// @Produce json
// @Success 200 {object} handlers.OpeningsResponse "Openings catalog"
// @Failure 500 {object} handlers.OpeningsErrorResponse "Internal server error"
// @Router /openings [get]
// @Security BearerAuth
func NewListOpeningsHandler(svc OpeningsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		openings, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list openings", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(OpeningsErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if openings == nil {
			openings = []models.OpeningDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(OpeningsResponse{
			Openings: openings,
		})
	}
}
