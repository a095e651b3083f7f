package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguatrack/aguatrack-api/internal/domain"
)

func TestParseDate_Formatos(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-15", time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)},
		{"2026-03-15T18:30:00Z", time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		require.NoError(t, err, tc.in)
		assert.True(t, tc.want.Equal(got), tc.in)
	}
}

func TestParseDate_Invalida(t *testing.T) {
	for _, in := range []string{"", "15/03/2026", "2026-13-01", "ayer"} {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, in)
	}
}

// Dos horas distintas del mismo día truncan a la misma clave: así el libro
// garantiza una fila por (cliente, día).
func TestTruncateToDay_MismaClave(t *testing.T) {
	morning := time.Date(2026, 3, 15, 8, 15, 0, 0, time.Local)
	night := time.Date(2026, 3, 15, 23, 59, 59, 0, time.Local)
	assert.True(t, TruncateToDay(morning).Equal(TruncateToDay(night)))
	assert.Equal(t, 0, TruncateToDay(night).Hour())
}

// Una fecha sin hora (parseada en local) y un timestamp RFC 3339 con offset
// distinto pero del mismo día calendario local truncan a la misma clave.
// Se fija la zona local para que el caso cruce offsets de verdad.
func TestTruncateToDay_MismaClaveEntreOffsets(t *testing.T) {
	original := time.Local
	time.Local = time.FixedZone("UTC-5", -5*60*60)
	defer func() { time.Local = original }()

	plain, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	utc, err := ParseDate("2026-03-15T10:00:00Z") // 05:00 hora local del mismo día
	require.NoError(t, err)

	k1 := TruncateToDay(plain)
	k2 := TruncateToDay(utc)
	assert.True(t, k1.Equal(k2),
		"misma fecha calendario local debe producir la misma clave: %v vs %v", k1, k2)
}

func TestEndOfDay(t *testing.T) {
	d := time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)
	end := EndOfDay(d)
	assert.Equal(t, 15, end.Day())
	assert.Equal(t, 23, end.Hour())
	assert.True(t, end.Before(time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)))
}

// MonthBounds usa la longitud real del mes, incluido febrero bisiesto.
func TestMonthBounds(t *testing.T) {
	cases := []struct {
		in      string
		lastDay int
	}{
		{"2026-01", 31},
		{"2026-02", 28},
		{"2024-02", 29},
		{"2026-04", 30},
	}
	for _, tc := range cases {
		start, end, err := MonthBounds(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, 1, start.Day(), tc.in)
		assert.Equal(t, 0, start.Hour(), tc.in)
		assert.Equal(t, tc.lastDay, end.Day(), tc.in)
	}
}

func TestMonthBounds_Invalido(t *testing.T) {
	for _, in := range []string{"", "2026", "2026-3", "marzo-2026"} {
		_, _, err := MonthBounds(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, in)
	}
}
