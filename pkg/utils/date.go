package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate interpreta uma data no formato YYYY-MM-DD, sem componente de hora
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("data não informada")
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q: %w", dateStr, err)
	}

	return date, nil
}

// TruncateToDate descarta hora e fuso, mantendo apenas o dia do calendário
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
