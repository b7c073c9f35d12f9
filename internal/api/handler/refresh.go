package handler

import (
	"net/http"

	"github.com/mohdanas86/hotelRevnue/internal/scheduler"
	"github.com/mohdanas86/hotelRevnue/pkg/log"
)

// TriggerDatasetRefresh inicia uma recarga manual do dataset em segundo plano
func TriggerDatasetRefresh(service *scheduler.DatasetRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("handler: recarga manual do dataset solicitada")

		service.TriggerManualSync()

		respondJSON(w, r, http.StatusAccepted, map[string]string{
			"message": "Dataset refresh started",
		})
	}
}

// GetDatasetRefreshStatus retorna o estado do agendador de recarga
func GetDatasetRefreshStatus(service *scheduler.DatasetRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, service.GetStatus())
	}
}
