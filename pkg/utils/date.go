package utils

import "time"

// ParseDate converte uma data no formato YYYY-MM-DD
func ParseDate(dateStr string) (*time.Time, error) {
	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
