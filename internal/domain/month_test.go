package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Month
		wantErr bool
	}{
		{name: "mês válido", input: "2024-02", want: Month{Year: 2024, Month: time.February}},
		{name: "com espaços", input: " 2023-12 ", want: Month{Year: 2023, Month: time.December}},
		{name: "formato invertido", input: "02-2024", wantErr: true},
		{name: "mês inexistente", input: "2024-13", wantErr: true},
		{name: "vazio", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonth(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonth_Window(t *testing.T) {
	leap := Month{Year: 2024, Month: time.February}

	assert.Equal(t, "2024-02", leap.String())
	assert.Equal(t, 29, leap.Days())
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), leap.FirstDay())
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), leap.LastDay())
	assert.True(t, leap.Contains(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
	assert.False(t, leap.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))

	assert.Equal(t, Month{Year: 2024, Month: time.January}, Month{Year: 2023, Month: time.December}.AddMonths(1))
	assert.Equal(t, Month{Year: 2023, Month: time.December}, Month{Year: 2024, Month: time.January}.AddMonths(-1))
}

func TestMonth_Text(t *testing.T) {
	var m Month
	require.NoError(t, m.UnmarshalText([]byte("2025-07")))
	assert.Equal(t, Month{Year: 2025, Month: time.July}, m)

	text, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2025-07", string(text))

	assert.Error(t, m.UnmarshalText([]byte("julho")))
}
