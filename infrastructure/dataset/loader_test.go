package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohdanas86/hotelRevnue/internal/config"
	"github.com/mohdanas86/hotelRevnue/internal/domain"
)

const csvHeader = "Date,Hotel_ID,Rooms_Available,Rooms_Sold,Occupancy_Rate,ADR_INR,RevPAR_INR,Revenue_INR,Cancellation_Count,Market_Segment,Booking_Channel\n"

func storeConfig(path string) config.Dataset {
	return config.Dataset{
		CSVPath:       path,
		SyntheticDays: 90,
		SyntheticSeed: 42,
	}
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCSV(t *testing.T) {
	t.Run("Carrega linhas válidas com data no formato primário", func(t *testing.T) {
		path := writeCSV(t, csvHeader+
			"15-01-2024,H001,100,70,0.7,3000,2100,210000,5,Business,OTA\n"+
			"16-01-2024,H002,80,40,0.5,2500,1250,100000,2,Leisure,Direct\n")

		d, err := LoadCSV(path)

		require.NoError(t, err)
		require.Equal(t, 2, d.Len())
		assert.Equal(t, "H001", d.Records[0].HotelID)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), d.Records[0].Date)
		assert.Equal(t, 0.7, d.Records[0].OccupancyRate)
		assert.Equal(t, 210000.0, d.Records[0].Revenue)
	})

	t.Run("Infere formatos de data alternativos", func(t *testing.T) {
		path := writeCSV(t, csvHeader+
			"2024-01-15,H001,100,70,0.7,3000,2100,210000,5,Business,OTA\n"+
			"16/01/2024,H002,80,40,0.5,2500,1250,100000,2,Leisure,Direct\n")

		d, err := LoadCSV(path)

		require.NoError(t, err)
		require.Equal(t, 2, d.Len())
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), d.Records[0].Date)
		assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), d.Records[1].Date)
	})

	t.Run("Descarta linhas com numéricos ilegíveis", func(t *testing.T) {
		path := writeCSV(t, csvHeader+
			"15-01-2024,H001,100,70,0.7,3000,2100,210000,5,Business,OTA\n"+
			"16-01-2024,H002,80,40,abc,2500,1250,100000,2,Leisure,Direct\n"+
			"17-01-2024,H003,80,40,0.5,2500,1250,n/a,2,Leisure,Direct\n")

		d, err := LoadCSV(path)

		require.NoError(t, err)
		assert.Equal(t, 1, d.Len())
	})

	t.Run("Descarta ocupação fora do intervalo de fração", func(t *testing.T) {
		path := writeCSV(t, csvHeader+
			"15-01-2024,H001,100,70,0.7,3000,2100,210000,5,Business,OTA\n"+
			"16-01-2024,H002,80,40,70.0,2500,1250,100000,2,Leisure,Direct\n"+
			"17-01-2024,H003,80,40,-0.1,2500,1250,100000,2,Leisure,Direct\n")

		d, err := LoadCSV(path)

		require.NoError(t, err)
		assert.Equal(t, 1, d.Len())
	})

	t.Run("Descarta datas ilegíveis e cancelamentos negativos", func(t *testing.T) {
		path := writeCSV(t, csvHeader+
			"not-a-date,H001,100,70,0.7,3000,2100,210000,5,Business,OTA\n"+
			"16-01-2024,H002,80,40,0.5,2500,1250,100000,-2,Leisure,Direct\n"+
			"17-01-2024,H003,80,40,0.5,2500,1250,100000,2,Leisure,Direct\n")

		d, err := LoadCSV(path)

		require.NoError(t, err)
		assert.Equal(t, 1, d.Len())
	})

	t.Run("Remove duplicatas exatas uma única vez", func(t *testing.T) {
		row := "15-01-2024,H001,100,70,0.7,3000,2100,210000,5,Business,OTA\n"
		path := writeCSV(t, csvHeader+row+row+row)

		d, err := LoadCSV(path)

		require.NoError(t, err)
		assert.Equal(t, 1, d.Len())
	})

	t.Run("Aceita inteiros exportados como decimais", func(t *testing.T) {
		path := writeCSV(t, csvHeader+
			"15-01-2024,H001,100.0,70.0,0.7,3000,2100,210000,5.0,Business,OTA\n")

		d, err := LoadCSV(path)

		require.NoError(t, err)
		require.Equal(t, 1, d.Len())
		assert.Equal(t, 100, d.Records[0].RoomsAvailable)
		assert.Equal(t, 70, d.Records[0].RoomsSold)
		assert.Equal(t, 5, d.Records[0].CancellationCount)
	})

	t.Run("Falha com SchemaError quando faltam colunas obrigatórias", func(t *testing.T) {
		path := writeCSV(t, "Date,Hotel_ID,Revenue_INR\n15-01-2024,H001,210000\n")

		_, err := LoadCSV(path)

		require.Error(t, err)
		var schemaErr *domain.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Contains(t, schemaErr.MissingColumns, "Occupancy_Rate")
		assert.Contains(t, schemaErr.MissingColumns, "Booking_Channel")
	})

	t.Run("Falha ao abrir arquivo inexistente", func(t *testing.T) {
		_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))

		require.Error(t, err)
	})
}

func TestSynthetic(t *testing.T) {
	t.Run("Gera pelo menos 30 dias por 5 hotéis", func(t *testing.T) {
		d := Synthetic(10, 42)

		assert.Equal(t, 30*5, d.Len())
		assert.Len(t, d.DistinctHotels(), 5)
	})

	t.Run("É determinístico para a mesma semente", func(t *testing.T) {
		first := Synthetic(45, 42)
		second := Synthetic(45, 42)

		assert.Equal(t, first.Fingerprint(), second.Fingerprint())
	})

	t.Run("Sementes diferentes geram valores diferentes", func(t *testing.T) {
		first := Synthetic(45, 42)
		second := Synthetic(45, 7)

		assert.NotEqual(t, first.Fingerprint(), second.Fingerprint())
	})

	t.Run("Ocupação permanece como fração válida", func(t *testing.T) {
		d := Synthetic(60, 42)

		for _, r := range d.Records {
			assert.GreaterOrEqual(t, r.OccupancyRate, 0.0)
			assert.LessOrEqual(t, r.OccupancyRate, 1.0)
			assert.GreaterOrEqual(t, r.CancellationCount, 0)
		}
	})
}

func TestStore(t *testing.T) {
	t.Run("Memoiza o dataset entre chamadas de Load", func(t *testing.T) {
		path := writeCSV(t, csvHeader+
			"15-01-2024,H001,100,70,0.7,3000,2100,210000,5,Business,OTA\n")

		store := NewStore(storeConfig(path))

		first, err := store.Load()
		require.NoError(t, err)

		second, err := store.Load()
		require.NoError(t, err)

		assert.Same(t, first, second)
	})

	t.Run("Refresh substitui o dataset memoizado", func(t *testing.T) {
		path := writeCSV(t, csvHeader+
			"15-01-2024,H001,100,70,0.7,3000,2100,210000,5,Business,OTA\n")

		store := NewStore(storeConfig(path))

		first, err := store.Load()
		require.NoError(t, err)
		require.Equal(t, 1, first.Len())

		extra := "16-01-2024,H002,80,40,0.5,2500,1250,100000,2,Leisure,Direct\n"
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, append(content, []byte(extra)...), 0o600))

		refreshed, err := store.Refresh()
		require.NoError(t, err)
		assert.Equal(t, 2, refreshed.Len())

		current, err := store.Load()
		require.NoError(t, err)
		assert.Same(t, refreshed, current)
	})

	t.Run("Usa dados sintéticos quando a fonte não existe", func(t *testing.T) {
		store := NewStore(storeConfig(filepath.Join(t.TempDir(), "missing.csv")))

		d, err := store.Load()

		require.NoError(t, err)
		assert.GreaterOrEqual(t, d.Len(), 30*5)
	})
}
