// Package ledger contiene los casos de uso de los dos libros de ingresos:
// el libro diario de entregas puntuales y el log de suscripción mensual.
package ledger

import (
	"time"

	"github.com/aguatrack/aguatrack-api/internal/domain"
)

// Formatos de fecha aceptados en la API.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDate interpreta una fecha de entrada en cualquiera de los formatos
// soportados. Devuelve domain.ErrInvalidInput si no coincide con ninguno.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.ErrInvalidInput
}

// TruncateToDay normaliza una fecha al inicio del día local (00:00:00.000).
// Primero convierte el instante a hora local: una fecha RFC 3339 con offset
// arbitrario y una fecha sin hora del mismo día calendario local deben
// producir la misma clave de identidad, no dos filas.
func TruncateToDay(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// EndOfDay devuelve el último instante representable del día (23:59:59.999).
func EndOfDay(t time.Time) time.Time {
	return TruncateToDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// MonthBounds expande un mes "YYYY-MM" al rango [día 1 00:00:00.000,
// último día 23:59:59.999] respetando la longitud real del mes.
func MonthBounds(yearMonth string) (start, end time.Time, err error) {
	first, err := time.ParseInLocation("2006-01", yearMonth, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	start = first
	end = first.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end, nil
}
