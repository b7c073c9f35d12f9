package domain

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"
)

// BookingRecord representa uma linha do dataset: um hotel em um dia.
type BookingRecord struct {
	Date              time.Time
	HotelID           string
	RoomsAvailable    int
	RoomsSold         int
	OccupancyRate     float64 // fração em [0,1]
	ADR               float64
	RevPAR            float64
	Revenue           float64
	CancellationCount int
	MarketSegment     string
	BookingChannel    string
}

// Key retorna a representação canônica da linha, usada para deduplicação
// e para o fingerprint do dataset.
func (r BookingRecord) Key() string {
	return fmt.Sprintf("%s|%s|%d|%d|%.6f|%.6f|%.6f|%.6f|%d|%s|%s",
		r.Date.Format(time.DateOnly),
		r.HotelID,
		r.RoomsAvailable,
		r.RoomsSold,
		r.OccupancyRate,
		r.ADR,
		r.RevPAR,
		r.Revenue,
		r.CancellationCount,
		r.MarketSegment,
		r.BookingChannel,
	)
}

// Dataset é a tabela em memória de registros de reservas. Depois de
// carregada ela é tratada como imutável: consumidores que precisam
// modificar linhas trabalham sobre uma cópia (ver Copy).
type Dataset struct {
	Records []BookingRecord
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// Copy retorna uma cópia defensiva do dataset. As linhas são structs por
// valor, então a cópia do slice é suficiente para isolar mutações.
func (d *Dataset) Copy() *Dataset {
	records := make([]BookingRecord, len(d.Records))
	copy(records, d.Records)
	return &Dataset{Records: records}
}

// Fingerprint calcula o hash de conteúdo do dataset, usado como chave de
// invalidação do cache de previsões.
func (d *Dataset) Fingerprint() string {
	h := md5.New()
	for _, r := range d.Records {
		h.Write([]byte(r.Key()))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// DateBounds retorna a menor e a maior data do dataset. O terceiro valor
// é falso quando o dataset está vazio.
func (d *Dataset) DateBounds() (time.Time, time.Time, bool) {
	if d.IsEmpty() {
		return time.Time{}, time.Time{}, false
	}

	minDate, maxDate := d.Records[0].Date, d.Records[0].Date
	for _, r := range d.Records[1:] {
		if r.Date.Before(minDate) {
			minDate = r.Date
		}
		if r.Date.After(maxDate) {
			maxDate = r.Date
		}
	}

	return minDate, maxDate, true
}

// DistinctHotels retorna os IDs de hotéis distintos, ordenados.
func (d *Dataset) DistinctHotels() []string {
	return d.distinct(func(r BookingRecord) string { return r.HotelID })
}

// DistinctChannels retorna os canais de reserva distintos, ordenados.
func (d *Dataset) DistinctChannels() []string {
	return d.distinct(func(r BookingRecord) string { return r.BookingChannel })
}

// DistinctSegments retorna os segmentos de mercado distintos, ordenados.
func (d *Dataset) DistinctSegments() []string {
	return d.distinct(func(r BookingRecord) string { return r.MarketSegment })
}

func (d *Dataset) distinct(field func(BookingRecord) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)

	for _, r := range d.Records {
		v := field(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	sort.Strings(values)
	return values
}

// NormalizeList separa uma lista de valores por vírgula, removendo
// espaços em branco e entradas vazias.
func NormalizeList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))

	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}

	return values
}
