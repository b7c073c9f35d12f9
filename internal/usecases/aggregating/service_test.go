package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohdanas86/hotelRevnue/internal/config"
	"github.com/mohdanas86/hotelRevnue/internal/domain"
)

type stubStore struct {
	dataset *domain.Dataset
}

func (s *stubStore) Load() (*domain.Dataset, error)    { return s.dataset, nil }
func (s *stubStore) Refresh() (*domain.Dataset, error) { return s.dataset, nil }

func newService(d *domain.Dataset) *AnalyticsService {
	return NewAnalyticsService(&stubStore{dataset: d}, config.Dashboard{DefaultTopN: 10})
}

func record(date, hotelID, channel, segment string, revenue, adr, occupancy float64, roomsSold, cancellations int) domain.BookingRecord {
	d, _ := time.Parse(time.DateOnly, date)
	return domain.BookingRecord{
		Date:              d,
		HotelID:           hotelID,
		BookingChannel:    channel,
		MarketSegment:     segment,
		Revenue:           revenue,
		ADR:               adr,
		RevPAR:            revenue / 100,
		OccupancyRate:     occupancy,
		RoomsAvailable:    100,
		RoomsSold:         roomsSold,
		CancellationCount: cancellations,
	}
}

func sampleDataset() *domain.Dataset {
	return &domain.Dataset{Records: []domain.BookingRecord{
		record("2024-01-01", "H001", "OTA", "Business", 100000, 5000, 0.80, 20, 2),
		record("2024-01-02", "H001", "Direct", "Leisure", 60000, 4000, 0.60, 15, 1),
		record("2024-01-03", "H002", "OTA", "Business", 50000, 2500, 0.50, 20, 5),
		record("2024-01-04", "H003", "Corporate", "Group", 30000, 3000, 0.40, 10, 0),
	}}
}

func TestValidateGranularity(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "Vazio vira day", raw: "", want: GranularityDay},
		{name: "day é aceito", raw: "day", want: GranularityDay},
		{name: "week é aceito", raw: "week", want: GranularityWeek},
		{name: "month é aceito", raw: "month", want: GranularityMonth},
		{name: "Valor desconhecido falha com ValidationError", raw: "quarter", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateGranularity(tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				var validationErr *domain.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummary(t *testing.T) {
	t.Run("Visão completa soma e tira médias", func(t *testing.T) {
		service := newService(sampleDataset())

		summary, err := service.Summary(&domain.FilterSpec{})

		require.NoError(t, err)
		assert.Equal(t, 240000.0, summary.TotalRevenue)
		assert.Equal(t, 65, summary.TotalBookings)
		assert.Equal(t, 3625.0, summary.AvgADR)
		assert.Equal(t, 0.575, summary.AvgOccupancy)
		assert.Equal(t, 8, summary.TotalCancellations)
		assert.Equal(t, 12.31, summary.CancellationRate)
		assert.Equal(t, 4, summary.Metadata.TotalRecords)
	})

	t.Run("Visão vazia devolve struct zerada, não erro", func(t *testing.T) {
		service := newService(sampleDataset())

		summary, err := service.Summary(&domain.FilterSpec{HotelIDs: []string{"H999"}})

		require.NoError(t, err)
		assert.Equal(t, 0.0, summary.TotalRevenue)
		assert.Equal(t, 0, summary.TotalBookings)
		assert.Equal(t, 0.0, summary.CancellationRate)
		assert.Equal(t, 0, summary.Metadata.TotalRecords)
		assert.Equal(t, 4, summary.Metadata.OriginalRecords)
	})

	t.Run("Taxa de cancelamento com zero quartos vendidos é 0", func(t *testing.T) {
		service := newService(&domain.Dataset{Records: []domain.BookingRecord{
			record("2024-01-01", "H001", "OTA", "Business", 0, 0, 0, 0, 3),
		}})

		summary, err := service.Summary(&domain.FilterSpec{})

		require.NoError(t, err)
		assert.Equal(t, 0.0, summary.CancellationRate)
		assert.Equal(t, 3, summary.TotalCancellations)
	})
}

func TestKPIs(t *testing.T) {
	service := newService(sampleDataset())

	kpis, err := service.KPIs(&domain.FilterSpec{})

	require.NoError(t, err)
	assert.Equal(t, 240000.0, kpis.TotalRevenue)
	assert.Equal(t, 0.575, kpis.AvgOccupancy)
	assert.Equal(t, 3625.0, kpis.AvgADR)
	assert.Equal(t, 8, kpis.TotalCancellations)
}

func TestRevenueByChannel_ConservacaoEParticipacao(t *testing.T) {
	service := newService(sampleDataset())

	response, err := service.RevenueByChannel(&domain.FilterSpec{})
	require.NoError(t, err)

	data, ok := response.Data.([]domain.ChannelRevenue)
	require.True(t, ok)
	require.Len(t, data, 3)

	// Ordenado por receita decrescente
	assert.Equal(t, "OTA", data[0].BookingChannel)
	assert.Equal(t, 150000.0, data[0].Revenue)

	// Lei de conservação: a soma dos grupos é a receita total da visão
	var totalRevenue, totalShare float64
	for _, row := range data {
		totalRevenue += row.Revenue
		totalShare += row.MarketShare
	}
	assert.Equal(t, 240000.0, totalRevenue)
	assert.InDelta(t, 100.0, totalShare, 0.2)
}

func TestRevenueByChannel_FiltroDeHotel(t *testing.T) {
	service := newService(&domain.Dataset{Records: []domain.BookingRecord{
		record("2024-01-01", "H001", "OTA", "Business", 100000, 5000, 0.8, 20, 0),
		record("2024-01-02", "H002", "OTA", "Business", 50000, 2500, 0.5, 20, 0),
	}})

	response, err := service.RevenueByChannel(&domain.FilterSpec{HotelIDs: []string{"H001"}})
	require.NoError(t, err)

	data := response.Data.([]domain.ChannelRevenue)
	require.Len(t, data, 1)
	assert.Equal(t, "OTA", data[0].BookingChannel)
	assert.Equal(t, 100000.0, data[0].Revenue)
	assert.Equal(t, 100.0, data[0].MarketShare)
}

func TestRevenueByHotel(t *testing.T) {
	service := newService(sampleDataset())

	response, err := service.RevenueByHotel(&domain.FilterSpec{})
	require.NoError(t, err)

	data := response.Data.([]domain.HotelRevenue)
	require.Len(t, data, 3)

	// H001 lidera com receita máxima: score = 0.6 + 0.4*ocupação média
	assert.Equal(t, "H001", data[0].HotelID)
	assert.Equal(t, "Hotel H001", data[0].HotelName)
	assert.Equal(t, 160000.0, data[0].Revenue)
	assert.Equal(t, 0.88, data[0].PerformanceScore)

	// Demais hotéis em ordem decrescente de receita
	assert.Equal(t, "H002", data[1].HotelID)
	assert.Equal(t, "H003", data[2].HotelID)
}

func TestMarketSegmentShare_SomaCem(t *testing.T) {
	service := newService(sampleDataset())

	response, err := service.MarketSegmentShare(&domain.FilterSpec{})
	require.NoError(t, err)

	data := response.Data.([]domain.SegmentRevenue)
	require.Len(t, data, 3)

	var totalShare float64
	for _, row := range data {
		totalShare += row.MarketShare
	}
	assert.InDelta(t, 100.0, totalShare, 0.2)
}

func TestCancellationsByChannel_OrdenadoDecrescente(t *testing.T) {
	service := newService(sampleDataset())

	response, err := service.CancellationsByChannel(&domain.FilterSpec{})
	require.NoError(t, err)

	data := response.Data.([]domain.ChannelCancellations)
	require.Len(t, data, 3)
	assert.Equal(t, "OTA", data[0].BookingChannel)
	assert.Equal(t, 7, data[0].Cancellations)
	assert.GreaterOrEqual(t, data[0].Cancellations, data[1].Cancellations)
	assert.GreaterOrEqual(t, data[1].Cancellations, data[2].Cancellations)
}

func TestBookingsByChannel_Participacao(t *testing.T) {
	service := newService(sampleDataset())

	response, err := service.BookingsByChannel(&domain.FilterSpec{})
	require.NoError(t, err)

	data := response.Data.([]domain.ChannelBookings)
	require.Len(t, data, 3)

	// OTA tem 40 de 65 reservas
	assert.Equal(t, "OTA", data[0].BookingChannel)
	assert.Equal(t, 40, data[0].Bookings)
	assert.Equal(t, 61.5, data[0].SharePct)

	var totalShare float64
	for _, row := range data {
		totalShare += row.SharePct
	}
	assert.InDelta(t, 100.0, totalShare, 0.2)
}

func TestRevenueTrend_OrdenadoPorData(t *testing.T) {
	service := newService(&domain.Dataset{Records: []domain.BookingRecord{
		record("2024-01-02", "H001", "OTA", "Business", 200, 100, 0.5, 10, 0),
		record("2024-01-01", "H001", "OTA", "Business", 100, 100, 0.5, 10, 0),
		record("2024-01-01", "H002", "OTA", "Business", 50, 100, 0.5, 10, 0),
	}})

	response, err := service.RevenueTrend(&domain.FilterSpec{})
	require.NoError(t, err)

	data := response.Data.([]domain.RevenueTrendPoint)
	require.Len(t, data, 2)
	assert.Equal(t, "2024-01-01", data[0].Date)
	assert.Equal(t, 150.0, data[0].Revenue)
	assert.Equal(t, "2024-01-02", data[1].Date)
	assert.Equal(t, 200.0, data[1].Revenue)
}

func TestResampling(t *testing.T) {
	// 2024-01-01 é segunda-feira; a semana encerra no domingo 2024-01-07
	service := newService(&domain.Dataset{Records: []domain.BookingRecord{
		record("2024-01-01", "H001", "OTA", "Business", 100, 100, 0.5, 10, 1),
		record("2024-01-03", "H001", "OTA", "Business", 200, 200, 0.7, 10, 1),
		record("2024-01-08", "H001", "OTA", "Business", 400, 300, 0.9, 10, 2),
	}})

	t.Run("Semanas encerram no domingo", func(t *testing.T) {
		response, err := service.RevenueOverTime(&domain.FilterSpec{}, GranularityWeek)
		require.NoError(t, err)

		data := response.Data.([]domain.RevenueOverTimePoint)
		require.Len(t, data, 2)
		assert.Equal(t, "2024-01-07", data[0].Date)
		assert.Equal(t, 300.0, data[0].Revenue)
		assert.Equal(t, 150.0, data[0].ADR)
		assert.Equal(t, "2024-01-14", data[1].Date)
		assert.Equal(t, 400.0, data[1].Revenue)
		assert.Equal(t, "week", response.Granularity)
	})

	t.Run("Meses rotulam o último dia do mês", func(t *testing.T) {
		response, err := service.OccupancyOverTime(&domain.FilterSpec{}, GranularityMonth)
		require.NoError(t, err)

		data := response.Data.([]domain.OccupancyOverTimePoint)
		require.Len(t, data, 1)
		assert.Equal(t, "2024-01-31", data[0].Date)
		assert.Equal(t, 70.0, data[0].Occupancy)
	})

	t.Run("Taxa de cancelamento por balde", func(t *testing.T) {
		response, err := service.CancellationsOverTime(&domain.FilterSpec{}, GranularityWeek)
		require.NoError(t, err)

		data := response.Data.([]domain.CancellationsOverTimePoint)
		require.Len(t, data, 2)
		assert.Equal(t, 2, data[0].Cancellations)
		assert.Equal(t, 10.0, data[0].CancellationRate)
	})
}

func TestRevenueByHotelDashboard_TopN(t *testing.T) {
	service := newService(sampleDataset())

	t.Run("topN restringe o ranking", func(t *testing.T) {
		response, err := service.RevenueByHotelDashboard(&domain.FilterSpec{}, 2)
		require.NoError(t, err)

		data := response.Data.([]domain.HotelDashboardRevenue)
		require.Len(t, data, 2)
		assert.Equal(t, "H001", data[0].HotelID)
		assert.Equal(t, 160000.0, data[0].Revenue)
		assert.Equal(t, 70.0, data[0].AvgOccupancy)
	})

	t.Run("topN não positivo usa o padrão configurado", func(t *testing.T) {
		response, err := service.RevenueByHotelDashboard(&domain.FilterSpec{}, 0)
		require.NoError(t, err)

		data := response.Data.([]domain.HotelDashboardRevenue)
		assert.Len(t, data, 3)
	})
}

func TestScatterData_ProjecaoLinhaALinha(t *testing.T) {
	service := newService(sampleDataset())

	response, err := service.ScatterData(&domain.FilterSpec{})
	require.NoError(t, err)

	data := response.Data.([]domain.ScatterPoint)
	require.Len(t, data, 4)
	assert.Equal(t, "H001", data[0].HotelID)
	assert.Equal(t, 5000.0, data[0].ADR)
	assert.Equal(t, 0.80, data[0].Occupancy)
	assert.Equal(t, 100000.0, data[0].Revenue)
}
