package handler

import (
	"net/http"
	"strconv"

	"github.com/mohdanas86/hotelRevnue/internal/domain"
	"github.com/mohdanas86/hotelRevnue/internal/usecases/aggregating"
	"github.com/mohdanas86/hotelRevnue/internal/usecases/filtering"
)

// timeSeriesHandler encapsula os endpoints de série temporal do
// dashboard: filtro + granularidade validada antes da agregação.
func timeSeriesHandler(aggregate func(*domain.FilterSpec, string) (*aggregating.ListResponse, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec, err := filtering.ParseSpec(r.URL.Query())
		if err != nil {
			respondError(w, r, err)
			return
		}

		granularity, err := aggregating.ValidateGranularity(r.URL.Query().Get("granularity"))
		if err != nil {
			respondError(w, r, err)
			return
		}

		result, err := aggregate(spec, granularity)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, result)
	}
}

// GetDashboardSummary retorna os KPIs consolidados do dashboard
func GetDashboardSummary(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec, err := filtering.ParseSpec(r.URL.Query())
		if err != nil {
			respondError(w, r, err)
			return
		}

		result, err := service.Summary(spec)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, result)
	}
}

// GetRevenueOverTime retorna receita e ADR médios por período
func GetRevenueOverTime(service aggregating.Aggregator) http.HandlerFunc {
	return timeSeriesHandler(service.RevenueOverTime)
}

// GetOccupancyOverTime retorna a ocupação média percentual por período
func GetOccupancyOverTime(service aggregating.Aggregator) http.HandlerFunc {
	return timeSeriesHandler(service.OccupancyOverTime)
}

// GetADROverTime retorna a diária média por período
func GetADROverTime(service aggregating.Aggregator) http.HandlerFunc {
	return timeSeriesHandler(service.ADROverTime)
}

// GetCancellationsOverTime retorna cancelamentos e taxa por período
func GetCancellationsOverTime(service aggregating.Aggregator) http.HandlerFunc {
	return timeSeriesHandler(service.CancellationsOverTime)
}

// GetBookingsByChannel retorna reservas e participação por canal
func GetBookingsByChannel(service aggregating.Aggregator) http.HandlerFunc {
	return legacyHandler(service.BookingsByChannel)
}

// GetBookingsBySegment retorna reservas e participação por segmento
func GetBookingsBySegment(service aggregating.Aggregator) http.HandlerFunc {
	return legacyHandler(service.BookingsBySegment)
}

// GetDashboardRevenueByHotel retorna o top-N de hotéis por receita
func GetDashboardRevenueByHotel(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec, err := filtering.ParseSpec(r.URL.Query())
		if err != nil {
			respondError(w, r, err)
			return
		}

		topN := service.DefaultTopN()
		if raw := r.URL.Query().Get("top_n"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				respondError(w, r, domain.NewValidationError("top_n deve ser um inteiro positivo"))
				return
			}
			topN = parsed
		}

		result, err := service.RevenueByHotelDashboard(spec, topN)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, result)
	}
}
