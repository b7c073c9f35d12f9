package filtering

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohdanas86/hotelRevnue/internal/domain"
)

func record(date string, hotelID, channel, segment string, revenue float64) domain.BookingRecord {
	d, _ := time.Parse(time.DateOnly, date)
	return domain.BookingRecord{
		Date:           d,
		HotelID:        hotelID,
		BookingChannel: channel,
		MarketSegment:  segment,
		Revenue:        revenue,
		RoomsAvailable: 100,
		RoomsSold:      60,
		OccupancyRate:  0.6,
	}
}

func sampleDataset() *domain.Dataset {
	return &domain.Dataset{Records: []domain.BookingRecord{
		record("2024-01-01", "H001", "OTA", "Business", 100000),
		record("2024-01-02", "H001", "Direct", "Leisure", 80000),
		record("2024-01-03", "H002", "OTA", "Business", 50000),
		record("2024-01-04", "H003", "Corporate", "Group", 30000),
	}}
}

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name     string
		query    url.Values
		wantErr  bool
		validate func(t *testing.T, spec *domain.FilterSpec)
	}{
		{
			name:  "Query vazia produz filtro vazio",
			query: url.Values{},
			validate: func(t *testing.T, spec *domain.FilterSpec) {
				assert.True(t, spec.IsEmpty())
			},
		},
		{
			name: "Listas separadas por vírgula são normalizadas",
			query: url.Values{
				"hotel_id":        {" H001 , H002 ,"},
				"booking_channel": {"OTA"},
			},
			validate: func(t *testing.T, spec *domain.FilterSpec) {
				assert.Equal(t, []string{"H001", "H002"}, spec.HotelIDs)
				assert.Equal(t, []string{"OTA"}, spec.BookingChannels)
			},
		},
		{
			name: "Datas válidas delimitam o intervalo",
			query: url.Values{
				"start_date": {"2024-01-01"},
				"end_date":   {"2024-01-31"},
			},
			validate: func(t *testing.T, spec *domain.FilterSpec) {
				require.NotNil(t, spec.StartDate)
				require.NotNil(t, spec.EndDate)
				assert.Equal(t, "2024-01-01", spec.StartDate.Format(time.DateOnly))
				assert.Equal(t, "2024-01-31", spec.EndDate.Format(time.DateOnly))
			},
		},
		{
			name:    "Data ilegível falha com FilterError",
			query:   url.Values{"start_date": {"01-13-2024"}},
			wantErr: true,
		},
		{
			name: "Intervalo invertido falha com FilterError",
			query: url.Values{
				"start_date": {"2024-02-01"},
				"end_date":   {"2024-01-01"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseSpec(tt.query)

			if tt.wantErr {
				require.Error(t, err)
				var filterErr *domain.FilterError
				assert.ErrorAs(t, err, &filterErr)
				return
			}

			require.NoError(t, err)
			tt.validate(t, spec)
		})
	}
}

func TestApply(t *testing.T) {
	start, _ := time.Parse(time.DateOnly, "2024-01-02")
	end, _ := time.Parse(time.DateOnly, "2024-01-03")

	tests := []struct {
		name      string
		spec      *domain.FilterSpec
		wantDates []string
	}{
		{
			name:      "Filtro vazio devolve cópia equivalente",
			spec:      &domain.FilterSpec{},
			wantDates: []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"},
		},
		{
			name:      "Lista de hotéis faz OR dentro do campo",
			spec:      &domain.FilterSpec{HotelIDs: []string{"H001", "H003"}},
			wantDates: []string{"2024-01-01", "2024-01-02", "2024-01-04"},
		},
		{
			name: "Campos diferentes fazem AND",
			spec: &domain.FilterSpec{
				HotelIDs:        []string{"H001", "H002"},
				BookingChannels: []string{"OTA"},
			},
			wantDates: []string{"2024-01-01", "2024-01-03"},
		},
		{
			name:      "Intervalo de datas é inclusivo nas duas pontas",
			spec:      &domain.FilterSpec{StartDate: &start, EndDate: &end},
			wantDates: []string{"2024-01-02", "2024-01-03"},
		},
		{
			name:      "Filtro sem correspondência produz visão vazia",
			spec:      &domain.FilterSpec{HotelIDs: []string{"H999"}},
			wantDates: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Apply(sampleDataset(), tt.spec)

			dates := make([]string, 0, view.Len())
			for _, r := range view.Records {
				dates = append(dates, r.Date.Format(time.DateOnly))
			}
			assert.Equal(t, tt.wantDates, dates)
		})
	}
}

func TestApply_Idempotente(t *testing.T) {
	spec := &domain.FilterSpec{
		HotelIDs:        []string{"H001"},
		BookingChannels: []string{"OTA", "Direct"},
	}

	once := Apply(sampleDataset(), spec)
	twice := Apply(once, spec)

	assert.Equal(t, once.Records, twice.Records)
}

func TestApply_NaoMutaDatasetOriginal(t *testing.T) {
	original := sampleDataset()
	view := Apply(original, &domain.FilterSpec{HotelIDs: []string{"H001"}})

	view.Records[0].Revenue = -1

	assert.Equal(t, 100000.0, original.Records[0].Revenue)
}

func TestMetadata(t *testing.T) {
	t.Run("Visão não vazia descreve intervalo e contagens", func(t *testing.T) {
		view := Apply(sampleDataset(), &domain.FilterSpec{BookingChannels: []string{"OTA"}})

		meta := Metadata(view, 4)

		assert.Equal(t, 2, meta.TotalRecords)
		assert.Equal(t, 4, meta.OriginalRecords)
		assert.Equal(t, 2, meta.Hotels)
		assert.Equal(t, 1, meta.Channels)
		assert.Equal(t, 1, meta.Segments)
		require.NotNil(t, meta.DateRange)
		assert.Equal(t, "2024-01-01", meta.DateRange.Start)
		assert.Equal(t, "2024-01-03", meta.DateRange.End)
	})

	t.Run("Visão vazia tem date_range nulo", func(t *testing.T) {
		meta := Metadata(&domain.Dataset{}, 4)

		assert.Equal(t, 0, meta.TotalRecords)
		assert.Nil(t, meta.DateRange)
	})
}

func TestService_Validate(t *testing.T) {
	store := &stubStore{dataset: sampleDataset()}
	service := NewService(store)

	t.Run("Valores conhecidos e desconhecidos são separados por campo", func(t *testing.T) {
		report, err := service.Validate(&domain.FilterSpec{
			HotelIDs:        []string{"H001", "H999"},
			BookingChannels: []string{"OTA"},
		})

		require.NoError(t, err)
		assert.False(t, report.Valid)
		assert.Equal(t, []string{"H001"}, report.Fields["hotel_id"].Valid)
		assert.Equal(t, []string{"H999"}, report.Fields["hotel_id"].Invalid)
		assert.Equal(t, []string{"OTA"}, report.Fields["booking_channel"].Valid)
		assert.Empty(t, report.Fields["booking_channel"].Invalid)
	})

	t.Run("Filtro vazio é válido e não reporta campos", func(t *testing.T) {
		report, err := service.Validate(&domain.FilterSpec{})

		require.NoError(t, err)
		assert.True(t, report.Valid)
		assert.Empty(t, report.Fields)
	})
}

func TestService_Options(t *testing.T) {
	store := &stubStore{dataset: sampleDataset()}
	service := NewService(store)

	options, err := service.Options()

	require.NoError(t, err)
	assert.Equal(t, []string{"H001", "H002", "H003"}, options.Hotels)
	assert.Equal(t, []string{"Corporate", "Direct", "OTA"}, options.Channels)
	assert.Equal(t, []string{"Business", "Group", "Leisure"}, options.Segments)
	assert.Equal(t, "2024-01-01", options.DateRange.MinDate)
	assert.Equal(t, "2024-01-04", options.DateRange.MaxDate)
	assert.Equal(t, 4, options.TotalRecords)
}

type stubStore struct {
	dataset *domain.Dataset
}

func (s *stubStore) Load() (*domain.Dataset, error)    { return s.dataset, nil }
func (s *stubStore) Refresh() (*domain.Dataset, error) { return s.dataset, nil }
