// Package aggregating calcula as agregações analíticas sobre uma visão
// (possivelmente filtrada) do dataset: somas, médias, taxas, top-N e
// participações por dimensão.
package aggregating

import (
	"github.com/pkg/errors"

	"github.com/mohdanas86/hotelRevnue/infrastructure/dataset"
	"github.com/mohdanas86/hotelRevnue/internal/config"
	"github.com/mohdanas86/hotelRevnue/internal/domain"
	"github.com/mohdanas86/hotelRevnue/internal/usecases/filtering"
)

// Granularidades aceitas para as séries temporais do dashboard.
const (
	GranularityDay   = "day"
	GranularityWeek  = "week"
	GranularityMonth = "month"
)

// ListResponse é o envelope padrão das agregações que devolvem listas.
type ListResponse struct {
	Data           any                   `json:"data"`
	Granularity    string                `json:"granularity,omitempty"`
	FiltersApplied map[string]any        `json:"filters_applied"`
	Metadata       domain.FilterMetadata `json:"metadata"`
}

// SummaryResponse é o resumo de KPIs do dashboard com o envelope de filtros.
type SummaryResponse struct {
	domain.KPISummary
	FiltersApplied map[string]any        `json:"filters_applied"`
	Metadata       domain.FilterMetadata `json:"metadata"`
}

// KPIResponse é o resumo compacto legado com o envelope de filtros.
type KPIResponse struct {
	domain.KPI
	FiltersApplied map[string]any        `json:"filters_applied"`
	Metadata       domain.FilterMetadata `json:"metadata"`
}

type Aggregator interface {
	KPIs(spec *domain.FilterSpec) (*KPIResponse, error)
	RevenueTrend(spec *domain.FilterSpec) (*ListResponse, error)
	OccupancyTrend(spec *domain.FilterSpec) (*ListResponse, error)
	RevenueByHotel(spec *domain.FilterSpec) (*ListResponse, error)
	RevenueByChannel(spec *domain.FilterSpec) (*ListResponse, error)
	MarketSegmentShare(spec *domain.FilterSpec) (*ListResponse, error)
	ScatterData(spec *domain.FilterSpec) (*ListResponse, error)
	CancellationsByChannel(spec *domain.FilterSpec) (*ListResponse, error)

	Summary(spec *domain.FilterSpec) (*SummaryResponse, error)
	RevenueOverTime(spec *domain.FilterSpec, granularity string) (*ListResponse, error)
	OccupancyOverTime(spec *domain.FilterSpec, granularity string) (*ListResponse, error)
	ADROverTime(spec *domain.FilterSpec, granularity string) (*ListResponse, error)
	CancellationsOverTime(spec *domain.FilterSpec, granularity string) (*ListResponse, error)
	BookingsByChannel(spec *domain.FilterSpec) (*ListResponse, error)
	BookingsBySegment(spec *domain.FilterSpec) (*ListResponse, error)
	RevenueByHotelDashboard(spec *domain.FilterSpec, topN int) (*ListResponse, error)

	DefaultTopN() int
}

type AnalyticsService struct {
	store dataset.Store
	cfg   config.Dashboard
}

func NewAnalyticsService(store dataset.Store, cfg config.Dashboard) *AnalyticsService {
	return &AnalyticsService{store: store, cfg: cfg}
}

// DefaultTopN é o limite padrão do ranking de hotéis do dashboard.
func (s *AnalyticsService) DefaultTopN() int {
	return s.cfg.DefaultTopN
}

// ValidateGranularity normaliza o parâmetro de granularidade. Valor
// ausente vira "day"; valores desconhecidos falham antes de qualquer
// agregação ser computada.
func ValidateGranularity(raw string) (string, error) {
	switch raw {
	case "":
		return GranularityDay, nil
	case GranularityDay, GranularityWeek, GranularityMonth:
		return raw, nil
	default:
		return "", domain.NewValidationError(
			"granularidade inválida %q: use day, week ou month", raw)
	}
}

// view carrega o dataset e aplica o filtro, devolvendo também a contagem
// original para compor os metadados da resposta.
func (s *AnalyticsService) view(spec *domain.FilterSpec) (*domain.Dataset, int, error) {
	d, err := s.store.Load()
	if err != nil {
		return nil, 0, errors.Wrap(err, "aggregating: carregar dataset")
	}

	return filtering.Apply(d, spec), d.Len(), nil
}

func (s *AnalyticsService) envelope(data any, spec *domain.FilterSpec, view *domain.Dataset, originalRecords int) *ListResponse {
	return &ListResponse{
		Data:           data,
		FiltersApplied: spec.Applied(),
		Metadata:       filtering.Metadata(view, originalRecords),
	}
}
