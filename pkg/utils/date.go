package utils

import "time"

// ParseDate interpreta uma data no formato YYYY-MM-DD. Entrada vazia
// resulta em nil sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
