package handler

import (
	"net/http"

	"github.com/mohdanas86/hotelRevnue/internal/usecases/filtering"
)

// GetFilterOptions lista os valores disponíveis para cada filtro
func GetFilterOptions(service filtering.FilterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := service.Options()
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, options)
	}
}

// ValidateFilters confere os valores do filtro contra o dataset
func ValidateFilters(service filtering.FilterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec, err := filtering.ParseSpec(r.URL.Query())
		if err != nil {
			respondError(w, r, err)
			return
		}

		report, err := service.Validate(spec)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, report)
	}
}
