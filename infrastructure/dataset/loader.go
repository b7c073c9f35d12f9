package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mohdanas86/hotelRevnue/internal/domain"
)

// Colunas obrigatórias da fonte, na ordem do cabeçalho original.
var requiredColumns = []string{
	"Date",
	"Hotel_ID",
	"Rooms_Available",
	"Rooms_Sold",
	"Occupancy_Rate",
	"ADR_INR",
	"RevPAR_INR",
	"Revenue_INR",
	"Cancellation_Count",
	"Market_Segment",
	"Booking_Channel",
}

// Formato primário DD-MM-YYYY; os demais são inferência de contingência.
var dateFormats = []string{
	"02-01-2006",
	"2006-01-02",
	"02/01/2006",
}

// LoadCSV lê e valida o arquivo fonte, devolvendo o dataset limpo.
// Linhas com numéricos inválidos, ocupação fora de [0,1] ou datas
// ilegíveis são descartadas; duplicatas exatas são removidas uma vez.
func LoadCSV(path string) (*domain.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "dataset: abrir arquivo fonte")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "dataset: ler cabeçalho")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.SchemaError{MissingColumns: missing}
	}

	var (
		records    []domain.BookingRecord
		dropped    int
		duplicates int
		seen       = make(map[string]struct{})
	)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "dataset: ler linha")
		}

		record, ok := parseRow(row, columns)
		if !ok {
			dropped++
			continue
		}

		key := record.Key()
		if _, exists := seen[key]; exists {
			duplicates++
			continue
		}
		seen[key] = struct{}{}

		records = append(records, record)
	}

	logrus.WithFields(logrus.Fields{
		"path":       path,
		"records":    len(records),
		"dropped":    dropped,
		"duplicates": duplicates,
	}).Info("dataset: fonte carregada e validada")

	return &domain.Dataset{Records: records}, nil
}

func parseRow(row []string, columns map[string]int) (domain.BookingRecord, bool) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	date, ok := parseDate(field("Date"))
	if !ok {
		return domain.BookingRecord{}, false
	}

	occupancy, okOcc := parseFloat(field("Occupancy_Rate"))
	adr, okADR := parseFloat(field("ADR_INR"))
	revenue, okRev := parseFloat(field("Revenue_INR"))
	if !okOcc || !okADR || !okRev {
		return domain.BookingRecord{}, false
	}

	// Invariante da fonte: ocupação é fração em [0,1]
	if occupancy < 0 || occupancy > 1 {
		return domain.BookingRecord{}, false
	}

	revpar, okRevPAR := parseFloat(field("RevPAR_INR"))
	roomsAvailable, okAvail := parseInt(field("Rooms_Available"))
	roomsSold, okSold := parseInt(field("Rooms_Sold"))
	cancellations, okCancel := parseInt(field("Cancellation_Count"))
	if !okRevPAR || !okAvail || !okSold || !okCancel || cancellations < 0 {
		return domain.BookingRecord{}, false
	}

	return domain.BookingRecord{
		Date:              date,
		HotelID:           field("Hotel_ID"),
		RoomsAvailable:    roomsAvailable,
		RoomsSold:         roomsSold,
		OccupancyRate:     occupancy,
		ADR:               adr,
		RevPAR:            revpar,
		Revenue:           revenue,
		CancellationCount: cancellations,
		MarketSegment:     field("Market_Segment"),
		BookingChannel:    field("Booking_Channel"),
	}, true
}

func parseDate(raw string) (time.Time, bool) {
	for _, format := range dateFormats {
		if date, err := time.Parse(format, raw); err == nil {
			return date, true
		}
	}
	return time.Time{}, false
}

func parseFloat(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseInt(raw string) (int, bool) {
	if v, err := strconv.Atoi(raw); err == nil {
		return v, true
	}

	// Fontes exportadas por planilha às vezes gravam inteiros como "12.0"
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(v), true
	}

	return 0, false
}
