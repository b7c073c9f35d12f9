package handler

import (
	"net/http"

	"github.com/mohdanas86/hotelRevnue/internal/domain"
	"github.com/mohdanas86/hotelRevnue/internal/usecases/aggregating"
	"github.com/mohdanas86/hotelRevnue/internal/usecases/filtering"
)

// legacyHandler encapsula o padrão comum dos endpoints analíticos: parse
// do filtro, agregação e resposta com o envelope de metadados.
func legacyHandler(aggregate func(*domain.FilterSpec) (*aggregating.ListResponse, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec, err := filtering.ParseSpec(r.URL.Query())
		if err != nil {
			respondError(w, r, err)
			return
		}

		result, err := aggregate(spec)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, result)
	}
}

// GetKPIs retorna o resumo compacto de indicadores
func GetKPIs(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec, err := filtering.ParseSpec(r.URL.Query())
		if err != nil {
			respondError(w, r, err)
			return
		}

		result, err := service.KPIs(spec)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, result)
	}
}

// GetRevenueTrend retorna a receita total por data
func GetRevenueTrend(service aggregating.Aggregator) http.HandlerFunc {
	return legacyHandler(service.RevenueTrend)
}

// GetOccupancyTrend retorna a ocupação média por data
func GetOccupancyTrend(service aggregating.Aggregator) http.HandlerFunc {
	return legacyHandler(service.OccupancyTrend)
}

// GetRevenueByHotel retorna o ranking de hotéis com índice de performance
func GetRevenueByHotel(service aggregating.Aggregator) http.HandlerFunc {
	return legacyHandler(service.RevenueByHotel)
}

// GetRevenueByChannel retorna as métricas por canal de reserva
func GetRevenueByChannel(service aggregating.Aggregator) http.HandlerFunc {
	return legacyHandler(service.RevenueByChannel)
}

// GetMarketSegmentShare retorna a participação de receita por segmento
func GetMarketSegmentShare(service aggregating.Aggregator) http.HandlerFunc {
	return legacyHandler(service.MarketSegmentShare)
}

// GetScatterData retorna os pontos ADR x ocupação x receita por registro
func GetScatterData(service aggregating.Aggregator) http.HandlerFunc {
	return legacyHandler(service.ScatterData)
}

// GetCancellationsByChannel retorna os cancelamentos somados por canal
func GetCancellationsByChannel(service aggregating.Aggregator) http.HandlerFunc {
	return legacyHandler(service.CancellationsByChannel)
}
