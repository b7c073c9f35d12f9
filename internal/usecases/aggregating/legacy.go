package aggregating

import (
	"sort"
	"time"

	"github.com/mohdanas86/hotelRevnue/internal/domain"
	"github.com/mohdanas86/hotelRevnue/internal/usecases/filtering"
	"github.com/mohdanas86/hotelRevnue/pkg/utils"
)

// Limite fixo do ranking de hotéis dos endpoints legados.
const legacyTopHotels = 15

// KPIs calcula o resumo compacto de indicadores dos endpoints legados.
func (s *AnalyticsService) KPIs(spec *domain.FilterSpec) (*KPIResponse, error) {
	view, originalRecords, err := s.view(spec)
	if err != nil {
		return nil, err
	}

	response := &KPIResponse{
		FiltersApplied: spec.Applied(),
		Metadata:       filtering.Metadata(view, originalRecords),
	}

	if view.IsEmpty() {
		return response, nil
	}

	var revenue, occupancy, adr, revpar float64
	var cancellations int
	for _, r := range view.Records {
		revenue += r.Revenue
		occupancy += r.OccupancyRate
		adr += r.ADR
		revpar += r.RevPAR
		cancellations += r.CancellationCount
	}
	count := float64(view.Len())

	response.KPI = domain.KPI{
		TotalRevenue:       utils.RoundWithTwoDecimalPlace(revenue),
		AvgOccupancy:       utils.RoundN(occupancy/count, 3),
		AvgADR:             utils.RoundWithTwoDecimalPlace(adr / count),
		AvgRevPAR:          utils.RoundWithTwoDecimalPlace(revpar / count),
		TotalCancellations: cancellations,
	}

	return response, nil
}

// RevenueTrend soma a receita por data, em ordem cronológica.
func (s *AnalyticsService) RevenueTrend(spec *domain.FilterSpec) (*ListResponse, error) {
	view, originalRecords, err := s.view(spec)
	if err != nil {
		return nil, err
	}

	dates, byDate := groupByDate(view)

	data := make([]domain.RevenueTrendPoint, 0, len(dates))
	for _, date := range dates {
		g := byDate[date]
		data = append(data, domain.RevenueTrendPoint{
			Date:    date.Format(time.DateOnly),
			Revenue: utils.RoundWithTwoDecimalPlace(g.revenue),
		})
	}

	return s.envelope(data, spec, view, originalRecords), nil
}

// OccupancyTrend calcula a ocupação média por data, em ordem cronológica.
func (s *AnalyticsService) OccupancyTrend(spec *domain.FilterSpec) (*ListResponse, error) {
	view, originalRecords, err := s.view(spec)
	if err != nil {
		return nil, err
	}

	dates, byDate := groupByDate(view)

	data := make([]domain.OccupancyTrendPoint, 0, len(dates))
	for _, date := range dates {
		g := byDate[date]
		data = append(data, domain.OccupancyTrendPoint{
			Date:      date.Format(time.DateOnly),
			Occupancy: utils.RoundN(g.occupancy/float64(g.count), 4),
		})
	}

	return s.envelope(data, spec, view, originalRecords), nil
}

// RevenueByHotel agrega métricas por hotel e restringe aos maiores por
// receita, com a pontuação de desempenho derivada.
func (s *AnalyticsService) RevenueByHotel(spec *domain.FilterSpec) (*ListResponse, error) {
	view, originalRecords, err := s.view(spec)
	if err != nil {
		return nil, err
	}

	keys, groups := groupBy(view, func(r domain.BookingRecord) string { return r.HotelID })

	var maxRevenue float64
	for _, key := range keys {
		if groups[key].revenue > maxRevenue {
			maxRevenue = groups[key].revenue
		}
	}

	data := make([]domain.HotelRevenue, 0, len(keys))
	for _, key := range keys {
		g := groups[key]
		count := float64(g.count)
		avgOccupancy := g.occupancy / count

		score := 0.0
		if maxRevenue > 0 {
			score = (g.revenue/maxRevenue)*0.6 + avgOccupancy*0.4
		}

		data = append(data, domain.HotelRevenue{
			HotelID:          key,
			HotelName:        "Hotel " + key,
			Revenue:          utils.RoundWithTwoDecimalPlace(g.revenue),
			Occupancy:        utils.RoundN(avgOccupancy, 1),
			ADR:              utils.RoundWithTwoDecimalPlace(g.adr / count),
			RevPAR:           utils.RoundWithTwoDecimalPlace(g.revpar / count),
			Cancellations:    g.cancellations,
			PerformanceScore: utils.RoundN(score, 3),
		})
	}

	sort.SliceStable(data, func(i, j int) bool { return data[i].Revenue > data[j].Revenue })
	if len(data) > legacyTopHotels {
		data = data[:legacyTopHotels]
	}

	return s.envelope(data, spec, view, originalRecords), nil
}

// RevenueByChannel agrega métricas por canal de reserva, com contagem de
// hotéis distintos, pontuação de eficiência e participação de mercado.
func (s *AnalyticsService) RevenueByChannel(spec *domain.FilterSpec) (*ListResponse, error) {
	view, originalRecords, err := s.view(spec)
	if err != nil {
		return nil, err
	}

	keys, groups := groupBy(view, func(r domain.BookingRecord) string { return r.BookingChannel })

	hotelsByChannel := make(map[string]map[string]struct{})
	for _, r := range view.Records {
		if hotelsByChannel[r.BookingChannel] == nil {
			hotelsByChannel[r.BookingChannel] = make(map[string]struct{})
		}
		hotelsByChannel[r.BookingChannel][r.HotelID] = struct{}{}
	}

	var maxRevenue, totalRevenue float64
	for _, key := range keys {
		totalRevenue += groups[key].revenue
		if groups[key].revenue > maxRevenue {
			maxRevenue = groups[key].revenue
		}
	}

	data := make([]domain.ChannelRevenue, 0, len(keys))
	for _, key := range keys {
		g := groups[key]
		count := float64(g.count)
		avgOccupancy := g.occupancy / count

		score := 0.0
		if maxRevenue > 0 {
			score = (g.revenue/maxRevenue)*0.5 +
				((100-float64(g.cancellations))/100)*0.3 +
				(avgOccupancy/100)*0.2
		}

		share := 0.0
		if totalRevenue > 0 {
			share = g.revenue / totalRevenue * 100
		}

		data = append(data, domain.ChannelRevenue{
			BookingChannel:  key,
			Revenue:         utils.RoundWithTwoDecimalPlace(g.revenue),
			Occupancy:       utils.RoundN(avgOccupancy, 1),
			ADR:             utils.RoundWithTwoDecimalPlace(g.adr / count),
			RevPAR:          utils.RoundWithTwoDecimalPlace(g.revpar / count),
			Cancellations:   g.cancellations,
			HotelCount:      len(hotelsByChannel[key]),
			EfficiencyScore: utils.RoundN(score, 3),
			MarketShare:     utils.RoundN(share, 1),
		})
	}

	sort.SliceStable(data, func(i, j int) bool { return data[i].Revenue > data[j].Revenue })

	return s.envelope(data, spec, view, originalRecords), nil
}

// MarketSegmentShare soma a receita por segmento de mercado com a
// participação percentual de cada um.
func (s *AnalyticsService) MarketSegmentShare(spec *domain.FilterSpec) (*ListResponse, error) {
	view, originalRecords, err := s.view(spec)
	if err != nil {
		return nil, err
	}

	keys, groups := groupBy(view, func(r domain.BookingRecord) string { return r.MarketSegment })

	var totalRevenue float64
	for _, key := range keys {
		totalRevenue += groups[key].revenue
	}

	data := make([]domain.SegmentRevenue, 0, len(keys))
	for _, key := range keys {
		g := groups[key]

		share := 0.0
		if totalRevenue > 0 {
			share = g.revenue / totalRevenue * 100
		}

		data = append(data, domain.SegmentRevenue{
			MarketSegment: key,
			Revenue:       utils.RoundWithTwoDecimalPlace(g.revenue),
			MarketShare:   utils.RoundN(share, 1),
		})
	}

	return s.envelope(data, spec, view, originalRecords), nil
}

// ScatterData projeta as colunas do gráfico de dispersão, linha a linha.
func (s *AnalyticsService) ScatterData(spec *domain.FilterSpec) (*ListResponse, error) {
	view, originalRecords, err := s.view(spec)
	if err != nil {
		return nil, err
	}

	data := make([]domain.ScatterPoint, 0, view.Len())
	for _, r := range view.Records {
		data = append(data, domain.ScatterPoint{
			HotelID:   r.HotelID,
			ADR:       r.ADR,
			Occupancy: r.OccupancyRate,
			Revenue:   r.Revenue,
		})
	}

	return s.envelope(data, spec, view, originalRecords), nil
}

// CancellationsByChannel soma os cancelamentos por canal, do maior para
// o menor.
func (s *AnalyticsService) CancellationsByChannel(spec *domain.FilterSpec) (*ListResponse, error) {
	view, originalRecords, err := s.view(spec)
	if err != nil {
		return nil, err
	}

	keys, groups := groupBy(view, func(r domain.BookingRecord) string { return r.BookingChannel })

	data := make([]domain.ChannelCancellations, 0, len(keys))
	for _, key := range keys {
		data = append(data, domain.ChannelCancellations{
			BookingChannel: key,
			Cancellations:  groups[key].cancellations,
		})
	}

	sort.SliceStable(data, func(i, j int) bool { return data[i].Cancellations > data[j].Cancellations })

	return s.envelope(data, spec, view, originalRecords), nil
}
