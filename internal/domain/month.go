package domain

import (
	"fmt"
	"strings"
	"time"
)

const monthLayout = "2006-01"

// Month é um mês de calendário no formato YYYY-MM
type Month struct {
	Year  int
	Month time.Month
}

func ParseMonth(value string) (Month, error) {
	t, err := time.Parse(monthLayout, strings.TrimSpace(value))
	if err != nil {
		return Month{}, fmt.Errorf("mês inválido %q, use o formato YYYY-MM", value)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf retorna o mês de calendário da data
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

func (m Month) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) LastDay() time.Time {
	return m.FirstDay().AddDate(0, 1, -1)
}

// Days retorna a quantidade de dias do mês
func (m Month) Days() int {
	return m.LastDay().Day()
}

// Contains verifica se a data pertence ao mês
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

func (m Month) AddMonths(n int) Month {
	return MonthOf(m.FirstDay().AddDate(0, n, 0))
}

func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
