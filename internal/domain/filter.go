package domain

import "time"

// FilterSpec é o conjunto opcional de restrições aplicáveis ao dataset.
// Campos de lista fazem OR entre si; campos diferentes fazem AND.
// Campo ausente (nil/vazio) significa "sem restrição".
type FilterSpec struct {
	HotelIDs        []string
	BookingChannels []string
	MarketSegments  []string
	StartDate       *time.Time
	EndDate         *time.Time
}

// IsEmpty indica que nenhuma restrição foi informada.
func (f *FilterSpec) IsEmpty() bool {
	if f == nil {
		return true
	}
	return len(f.HotelIDs) == 0 &&
		len(f.BookingChannels) == 0 &&
		len(f.MarketSegments) == 0 &&
		f.StartDate == nil &&
		f.EndDate == nil
}

// Applied retorna a representação do filtro usada no campo
// filters_applied das respostas, apenas com os campos presentes.
func (f *FilterSpec) Applied() map[string]any {
	applied := map[string]any{}
	if f == nil {
		return applied
	}

	if len(f.HotelIDs) > 0 {
		applied["hotel_id"] = f.HotelIDs
	}
	if len(f.BookingChannels) > 0 {
		applied["booking_channel"] = f.BookingChannels
	}
	if len(f.MarketSegments) > 0 {
		applied["market_segment"] = f.MarketSegments
	}
	if f.StartDate != nil {
		applied["start_date"] = f.StartDate.Format(time.DateOnly)
	}
	if f.EndDate != nil {
		applied["end_date"] = f.EndDate.Format(time.DateOnly)
	}

	return applied
}

// Matches verifica se um registro satisfaz todas as restrições do filtro.
func (f *FilterSpec) Matches(r BookingRecord) bool {
	if f == nil {
		return true
	}

	if len(f.HotelIDs) > 0 && !contains(f.HotelIDs, r.HotelID) {
		return false
	}
	if len(f.BookingChannels) > 0 && !contains(f.BookingChannels, r.BookingChannel) {
		return false
	}
	if len(f.MarketSegments) > 0 && !contains(f.MarketSegments, r.MarketSegment) {
		return false
	}
	if f.StartDate != nil && r.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && r.Date.After(*f.EndDate) {
		return false
	}

	return true
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
