package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthRevenueResult resultado crudo de una consulta de ingresos agrupada por
// mes calendario (1–12, derivado de la fecha del registro, no de un índice).
// Lo produce la DB; el use case de dashboard lo fusiona entre fuentes.
type MonthRevenueResult struct {
	Month        int
	TotalRevenue decimal.Decimal
	TotalDue     decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para la agregación de
// ingresos del dashboard. Las implementaciones son read-only.
type AnalyticsRepository interface {
	// GetDeliveryRevenueByMonth agrupa las entregas hechas (status done) del
	// negocio en el rango dado: amount_paid → TotalRevenue, amount_due → TotalDue.
	GetDeliveryRevenueByMonth(
		ctx context.Context,
		businessID string,
		startDate, endDate time.Time,
	) ([]MonthRevenueResult, error)

	// GetMonthlyLogRevenueByMonth agrupa los logs de suscripción con entrega
	// hecha: amount suma a TotalRevenue cuando payment_status es paid y a
	// TotalDue cuando es unpaid (acumulación mutuamente excluyente).
	GetMonthlyLogRevenueByMonth(
		ctx context.Context,
		businessID string,
		startDate, endDate time.Time,
	) ([]MonthRevenueResult, error)

	// CountCustomers cuenta los clientes del negocio. Es un total de vida del
	// negocio, independiente de la ventana de fechas del dashboard.
	CountCustomers(ctx context.Context, businessID string) (int, error)
}
