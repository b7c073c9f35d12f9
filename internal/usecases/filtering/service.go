// Package filtering interpreta e aplica filtros opcionais sobre o
// dataset de reservas. Campos de lista aceitam valores separados por
// vírgula (OR dentro do campo, AND entre campos) e as datas delimitam
// um intervalo inclusivo.
package filtering

import (
	"net/url"
	"time"

	"github.com/mohdanas86/hotelRevnue/infrastructure/dataset"
	"github.com/mohdanas86/hotelRevnue/internal/domain"
	"github.com/mohdanas86/hotelRevnue/pkg/utils"
)

// ParseSpec monta um FilterSpec a partir dos parâmetros de query.
// Datas ilegíveis ou intervalo invertido resultam em FilterError;
// um filtro nunca é descartado silenciosamente.
func ParseSpec(query url.Values) (*domain.FilterSpec, error) {
	spec := &domain.FilterSpec{}

	if raw := query.Get("hotel_id"); raw != "" {
		spec.HotelIDs = domain.NormalizeList(raw)
	}
	if raw := query.Get("booking_channel"); raw != "" {
		spec.BookingChannels = domain.NormalizeList(raw)
	}
	if raw := query.Get("market_segment"); raw != "" {
		spec.MarketSegments = domain.NormalizeList(raw)
	}

	startDate, err := parseDateParam("start_date", query.Get("start_date"))
	if err != nil {
		return nil, err
	}
	spec.StartDate = startDate

	endDate, err := parseDateParam("end_date", query.Get("end_date"))
	if err != nil {
		return nil, err
	}
	spec.EndDate = endDate

	if spec.StartDate != nil && spec.EndDate != nil && spec.EndDate.Before(*spec.StartDate) {
		return nil, &domain.FilterError{
			Field:   "end_date",
			Value:   spec.EndDate.Format(time.DateOnly),
			Message: "end_date anterior a start_date",
		}
	}

	return spec, nil
}

func parseDateParam(field, raw string) (*time.Time, error) {
	date, err := utils.ParseDate(raw)
	if err != nil {
		return nil, &domain.FilterError{
			Field:   field,
			Value:   raw,
			Message: "data inválida, esperado o formato YYYY-MM-DD",
		}
	}

	return date, nil
}

// Apply produz a visão filtrada do dataset. Um filtro vazio devolve uma
// cópia equivalente da entrada; os predicados são uma conjunção pura,
// então a ordem de aplicação não altera o resultado.
func Apply(d *domain.Dataset, spec *domain.FilterSpec) *domain.Dataset {
	if spec.IsEmpty() {
		return d.Copy()
	}

	records := make([]domain.BookingRecord, 0, d.Len())
	for _, r := range d.Records {
		if spec.Matches(r) {
			records = append(records, r)
		}
	}

	return &domain.Dataset{Records: records}
}

// Metadata descreve o efeito do filtro sobre o dataset, independente da
// agregação calculada em seguida.
func Metadata(view *domain.Dataset, originalRecords int) domain.FilterMetadata {
	meta := domain.FilterMetadata{
		TotalRecords:    view.Len(),
		OriginalRecords: originalRecords,
		Hotels:          len(view.DistinctHotels()),
		Channels:        len(view.DistinctChannels()),
		Segments:        len(view.DistinctSegments()),
	}

	if minDate, maxDate, ok := view.DateBounds(); ok {
		meta.DateRange = &domain.DateRange{
			Start: minDate.Format(time.DateOnly),
			End:   maxDate.Format(time.DateOnly),
		}
	}

	return meta
}

type FilterService interface {
	Options() (*domain.FilterOptions, error)
	Validate(spec *domain.FilterSpec) (*domain.FilterValidation, error)
}

type Service struct {
	store dataset.Store
}

func NewService(store dataset.Store) *Service {
	return &Service{store: store}
}

// Options lista os valores disponíveis para cada filtro no dataset
// completo, com o intervalo de datas e o total de registros.
func (s *Service) Options() (*domain.FilterOptions, error) {
	d, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	options := &domain.FilterOptions{
		Hotels:       d.DistinctHotels(),
		Channels:     d.DistinctChannels(),
		Segments:     d.DistinctSegments(),
		TotalRecords: d.Len(),
	}

	if minDate, maxDate, ok := d.DateBounds(); ok {
		options.DateRange = domain.OptionsRange{
			MinDate: minDate.Format(time.DateOnly),
			MaxDate: maxDate.Format(time.DateOnly),
		}
	}

	return options, nil
}

// Validate confere os valores do filtro contra o dataset, separando os
// reconhecidos dos desconhecidos campo a campo.
func (s *Service) Validate(spec *domain.FilterSpec) (*domain.FilterValidation, error) {
	d, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	report := &domain.FilterValidation{
		Valid:  true,
		Fields: map[string]domain.FieldValidation{},
	}

	checks := []struct {
		field  string
		values []string
		known  []string
	}{
		{"hotel_id", spec.HotelIDs, d.DistinctHotels()},
		{"booking_channel", spec.BookingChannels, d.DistinctChannels()},
		{"market_segment", spec.MarketSegments, d.DistinctSegments()},
	}

	for _, check := range checks {
		if len(check.values) == 0 {
			continue
		}

		field := splitKnown(check.values, check.known)
		if len(field.Invalid) > 0 {
			report.Valid = false
		}
		report.Fields[check.field] = field
	}

	return report, nil
}

func splitKnown(values, known []string) domain.FieldValidation {
	knownSet := make(map[string]struct{}, len(known))
	for _, v := range known {
		knownSet[v] = struct{}{}
	}

	field := domain.FieldValidation{
		Valid:   make([]string, 0, len(values)),
		Invalid: make([]string, 0),
	}

	for _, v := range values {
		if _, ok := knownSet[v]; ok {
			field.Valid = append(field.Valid, v)
		} else {
			field.Invalid = append(field.Invalid, v)
		}
	}

	return field
}
