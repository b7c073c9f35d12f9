package handler

import (
	"net/http"

	"github.com/mohdanas86/hotelRevnue/internal/usecases/insighting"
	"github.com/mohdanas86/hotelRevnue/pkg/log"
)

// GetInsights retorna as análises narrativas geradas sobre o dataset
func GetInsights(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		insights, err := service.Generate()
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, map[string]any{
			"insights": insights,
			"count":    len(insights),
		})
	}
}

// RefreshInsights recarrega o dataset e regenera as análises
func RefreshInsights(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Refresh(); err != nil {
			respondError(w, r, err)
			return
		}

		log.ForContext(r.Context()).Info("handler: dataset recarregado para novas análises")

		insights, err := service.Generate()
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, map[string]any{
			"message":  "Data refreshed successfully",
			"insights": insights,
			"count":    len(insights),
		})
	}
}
