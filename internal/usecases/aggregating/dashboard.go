package aggregating

import (
	"sort"
	"time"

	"github.com/mohdanas86/hotelRevnue/internal/domain"
	"github.com/mohdanas86/hotelRevnue/internal/usecases/filtering"
	"github.com/mohdanas86/hotelRevnue/pkg/utils"
)

// Summary calcula o resumo de KPIs do dashboard. Uma visão vazia devolve
// a struct zerada com os metadados do filtro, nunca erro.
func (s *AnalyticsService) Summary(spec *domain.FilterSpec) (*SummaryResponse, error) {
	view, originalRecords, err := s.view(spec)
	if err != nil {
		return nil, err
	}

	response := &SummaryResponse{
		FiltersApplied: spec.Applied(),
		Metadata:       filtering.Metadata(view, originalRecords),
	}

	if view.IsEmpty() {
		return response, nil
	}

	var revenue, occupancy, adr, revpar float64
	var cancellations, roomsSold int
	for _, r := range view.Records {
		revenue += r.Revenue
		occupancy += r.OccupancyRate
		adr += r.ADR
		revpar += r.RevPAR
		cancellations += r.CancellationCount
		roomsSold += r.RoomsSold
	}
	count := float64(view.Len())

	cancellationRate := 0.0
	if roomsSold > 0 {
		cancellationRate = utils.RoundWithTwoDecimalPlace(float64(cancellations) / float64(roomsSold) * 100)
	}

	response.KPISummary = domain.KPISummary{
		TotalRevenue:       utils.RoundWithTwoDecimalPlace(revenue),
		TotalBookings:      roomsSold,
		AvgADR:             utils.RoundWithTwoDecimalPlace(adr / count),
		AvgRevPAR:          utils.RoundWithTwoDecimalPlace(revpar / count),
		AvgOccupancy:       utils.RoundN(occupancy/count, 4),
		CancellationRate:   cancellationRate,
		TotalCancellations: cancellations,
		TotalRoomsSold:     roomsSold,
	}

	return response, nil
}

// RevenueOverTime soma a receita e calcula o ADR médio por balde de tempo.
func (s *AnalyticsService) RevenueOverTime(spec *domain.FilterSpec, granularity string) (*ListResponse, error) {
	view, originalRecords, err := s.view(spec)
	if err != nil {
		return nil, err
	}

	buckets, groups := resample(view, granularity)

	data := make([]domain.RevenueOverTimePoint, 0, len(buckets))
	for _, bucket := range buckets {
		g := groups[bucket]
		data = append(data, domain.RevenueOverTimePoint{
			Date:    bucket.Format(time.DateOnly),
			Revenue: utils.RoundWithTwoDecimalPlace(g.revenue),
			ADR:     utils.RoundWithTwoDecimalPlace(g.adr / float64(g.count)),
		})
	}

	response := s.envelope(data, spec, view, originalRecords)
	response.Granularity = granularity
	return response, nil
}

// OccupancyOverTime calcula a ocupação média por balde, em 0-100.
func (s *AnalyticsService) OccupancyOverTime(spec *domain.FilterSpec, granularity string) (*ListResponse, error) {
	view, originalRecords, err := s.view(spec)
	if err != nil {
		return nil, err
	}

	buckets, groups := resample(view, granularity)

	data := make([]domain.OccupancyOverTimePoint, 0, len(buckets))
	for _, bucket := range buckets {
		g := groups[bucket]
		data = append(data, domain.OccupancyOverTimePoint{
			Date:      bucket.Format(time.DateOnly),
			Occupancy: utils.RoundWithTwoDecimalPlace(g.occupancy / float64(g.count) * 100),
		})
	}

	response := s.envelope(data, spec, view, originalRecords)
	response.Granularity = granularity
	return response, nil
}

// ADROverTime calcula o ADR médio por balde de tempo.
func (s *AnalyticsService) ADROverTime(spec *domain.FilterSpec, granularity string) (*ListResponse, error) {
	view, originalRecords, err := s.view(spec)
	if err != nil {
		return nil, err
	}

	buckets, groups := resample(view, granularity)

	data := make([]domain.ADROverTimePoint, 0, len(buckets))
	for _, bucket := range buckets {
		g := groups[bucket]
		data = append(data, domain.ADROverTimePoint{
			Date: bucket.Format(time.DateOnly),
			ADR:  utils.RoundWithTwoDecimalPlace(g.adr / float64(g.count)),
		})
	}

	response := s.envelope(data, spec, view, originalRecords)
	response.Granularity = granularity
	return response, nil
}

// CancellationsOverTime soma cancelamentos por balde com a taxa sobre os
// quartos vendidos. Denominador zero produz taxa 0, nunca erro.
func (s *AnalyticsService) CancellationsOverTime(spec *domain.FilterSpec, granularity string) (*ListResponse, error) {
	view, originalRecords, err := s.view(spec)
	if err != nil {
		return nil, err
	}

	buckets, groups := resample(view, granularity)

	data := make([]domain.CancellationsOverTimePoint, 0, len(buckets))
	for _, bucket := range buckets {
		g := groups[bucket]

		rate := 0.0
		if g.roomsSold > 0 {
			rate = utils.RoundWithTwoDecimalPlace(float64(g.cancellations) / float64(g.roomsSold) * 100)
		}

		data = append(data, domain.CancellationsOverTimePoint{
			Date:             bucket.Format(time.DateOnly),
			Cancellations:    g.cancellations,
			CancellationRate: rate,
		})
	}

	response := s.envelope(data, spec, view, originalRecords)
	response.Granularity = granularity
	return response, nil
}

// BookingsByChannel agrega reservas por canal com a participação
// percentual de cada um sobre o total de reservas.
func (s *AnalyticsService) BookingsByChannel(spec *domain.FilterSpec) (*ListResponse, error) {
	view, originalRecords, err := s.view(spec)
	if err != nil {
		return nil, err
	}

	keys, groups := groupBy(view, func(r domain.BookingRecord) string { return r.BookingChannel })

	totalBookings := 0
	for _, key := range keys {
		totalBookings += groups[key].roomsSold
	}

	data := make([]domain.ChannelBookings, 0, len(keys))
	for _, key := range keys {
		g := groups[key]

		share := 0.0
		if totalBookings > 0 {
			share = utils.RoundN(float64(g.roomsSold)/float64(totalBookings)*100, 1)
		}

		data = append(data, domain.ChannelBookings{
			BookingChannel: key,
			Bookings:       g.roomsSold,
			Revenue:        utils.RoundWithTwoDecimalPlace(g.revenue),
			Cancellations:  g.cancellations,
			SharePct:       share,
		})
	}

	sort.SliceStable(data, func(i, j int) bool { return data[i].Bookings > data[j].Bookings })

	return s.envelope(data, spec, view, originalRecords), nil
}

// BookingsBySegment agrega reservas por segmento de mercado, com ADR
// médio e participação percentual.
func (s *AnalyticsService) BookingsBySegment(spec *domain.FilterSpec) (*ListResponse, error) {
	view, originalRecords, err := s.view(spec)
	if err != nil {
		return nil, err
	}

	keys, groups := groupBy(view, func(r domain.BookingRecord) string { return r.MarketSegment })

	totalBookings := 0
	for _, key := range keys {
		totalBookings += groups[key].roomsSold
	}

	data := make([]domain.SegmentBookings, 0, len(keys))
	for _, key := range keys {
		g := groups[key]

		share := 0.0
		if totalBookings > 0 {
			share = utils.RoundN(float64(g.roomsSold)/float64(totalBookings)*100, 1)
		}

		data = append(data, domain.SegmentBookings{
			MarketSegment: key,
			Bookings:      g.roomsSold,
			Revenue:       utils.RoundWithTwoDecimalPlace(g.revenue),
			Cancellations: g.cancellations,
			AvgADR:        utils.RoundWithTwoDecimalPlace(g.adr / float64(g.count)),
			SharePct:      share,
		})
	}

	sort.SliceStable(data, func(i, j int) bool { return data[i].Bookings > data[j].Bookings })

	return s.envelope(data, spec, view, originalRecords), nil
}

// RevenueByHotelDashboard agrega receita por hotel e restringe aos topN
// maiores. topN não positivo cai no padrão configurado.
func (s *AnalyticsService) RevenueByHotelDashboard(spec *domain.FilterSpec, topN int) (*ListResponse, error) {
	view, originalRecords, err := s.view(spec)
	if err != nil {
		return nil, err
	}

	if topN <= 0 {
		topN = s.cfg.DefaultTopN
	}

	keys, groups := groupBy(view, func(r domain.BookingRecord) string { return r.HotelID })

	data := make([]domain.HotelDashboardRevenue, 0, len(keys))
	for _, key := range keys {
		g := groups[key]
		count := float64(g.count)

		data = append(data, domain.HotelDashboardRevenue{
			HotelID:      key,
			Revenue:      utils.RoundWithTwoDecimalPlace(g.revenue),
			Bookings:     g.roomsSold,
			AvgADR:       utils.RoundWithTwoDecimalPlace(g.adr / count),
			AvgOccupancy: utils.RoundN(g.occupancy/count*100, 1),
		})
	}

	sort.SliceStable(data, func(i, j int) bool { return data[i].Revenue > data[j].Revenue })
	if len(data) > topN {
		data = data[:topN]
	}

	return s.envelope(data, spec, view, originalRecords), nil
}
