package utils

import "time"

// DateLayout é o formato de data aceito nos parâmetros de consulta da API
const DateLayout = "2006-01-02"

// ParseDate interpreta uma data de calendário vinda da query string.
// String vazia resulta na data zero, tratada como limite ausente.
func ParseDate(dateStr string) (*time.Time, error) {
	date := time.Time{}

	if dateStr != "" {
		parsed, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &date, nil
}
