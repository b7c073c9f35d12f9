package handler

import (
	"net/http"

	"github.com/mohdanas86/hotelRevnue/internal/domain"
	"github.com/mohdanas86/hotelRevnue/internal/usecases/forecasting"
	"github.com/mohdanas86/hotelRevnue/pkg/log"
)

// forecastHandler encapsula os dois endpoints de previsão: validação do
// horizonte e geração (ou reuso do cache).
func forecastHandler(service forecasting.Forecaster, generate func(int) (*domain.ForecastResult, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, err := service.ValidateHorizon(r.URL.Query().Get("days_ahead"))
		if err != nil {
			respondError(w, r, err)
			return
		}

		result, err := generate(days)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, result)
	}
}

// GetRevenueForecast retorna a projeção de receita diária
func GetRevenueForecast(service forecasting.Forecaster) http.HandlerFunc {
	return forecastHandler(service, service.RevenueForecast)
}

// GetOccupancyForecast retorna a projeção de ocupação média diária
func GetOccupancyForecast(service forecasting.Forecaster) http.HandlerFunc {
	return forecastHandler(service, service.OccupancyForecast)
}

// ClearForecastCache descarta todas as previsões memoizadas
func ClearForecastCache(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service.ClearCache()

		log.ForContext(r.Context()).Info("handler: cache de previsões limpo por requisição")

		respondJSON(w, r, http.StatusOK, map[string]string{
			"message": "Forecast cache cleared",
		})
	}
}

// GetForecastCacheStatus retorna as chaves e limites do cache de previsões
func GetForecastCacheStatus(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, service.CacheStatus())
	}
}
