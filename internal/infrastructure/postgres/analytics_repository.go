package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de lectura para el dashboard de ingresos.
// Trabaja directo sobre el pool: los agregados no participan en transacciones.
// Las columnas date del libro son DATE, no TIMESTAMPTZ: EXTRACT(MONTH) agrupa
// por día calendario sin depender del TimeZone de la sesión de la base.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el repositorio de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetDeliveryRevenueByMonth agrupa las entregas hechas por mes calendario:
// amount_paid suma a ingresos, amount_due a deuda. Solo status done cuenta.
func (r *AnalyticsRepo) GetDeliveryRevenueByMonth(
	ctx context.Context,
	businessID string,
	startDate, endDate time.Time,
) ([]repository.MonthRevenueResult, error) {
	query := `
		SELECT EXTRACT(MONTH FROM date)::INT AS month,
			COALESCE(SUM(amount_paid), 0) AS total_revenue,
			COALESCE(SUM(amount_due), 0) AS total_due
		FROM deliveries
		WHERE business_id = $1 AND status = 'done' AND date BETWEEN $2 AND $3
		GROUP BY month
		ORDER BY month`
	rows, err := r.pool.Query(ctx, query, businessID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("delivery revenue by month: %w", err)
	}
	defer rows.Close()
	return scanMonthRevenue(rows)
}

// GetMonthlyLogRevenueByMonth agrupa los logs de suscripción con entrega hecha
// por mes calendario: amount suma a ingresos si está pagado, a deuda si no.
// Acumulación mutuamente excluyente por fila (CASE sobre payment_status).
func (r *AnalyticsRepo) GetMonthlyLogRevenueByMonth(
	ctx context.Context,
	businessID string,
	startDate, endDate time.Time,
) ([]repository.MonthRevenueResult, error) {
	query := `
		SELECT EXTRACT(MONTH FROM date)::INT AS month,
			COALESCE(SUM(CASE WHEN payment_status = 'paid' THEN amount ELSE 0 END), 0) AS total_revenue,
			COALESCE(SUM(CASE WHEN payment_status = 'unpaid' THEN amount ELSE 0 END), 0) AS total_due
		FROM monthly_logs
		WHERE business_id = $1 AND delivery_status = 'done' AND date BETWEEN $2 AND $3
		GROUP BY month
		ORDER BY month`
	rows, err := r.pool.Query(ctx, query, businessID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("monthly log revenue by month: %w", err)
	}
	defer rows.Close()
	return scanMonthRevenue(rows)
}

// CountCustomers total de clientes del negocio (de vida, sin ventana de fechas).
func (r *AnalyticsRepo) CountCustomers(ctx context.Context, businessID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM customers WHERE business_id = $1`, businessID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return count, nil
}

func scanMonthRevenue(rows pgx.Rows) ([]repository.MonthRevenueResult, error) {
	var results []repository.MonthRevenueResult
	for rows.Next() {
		var r repository.MonthRevenueResult
		if err := rows.Scan(&r.Month, &r.TotalRevenue, &r.TotalDue); err != nil {
			return nil, fmt.Errorf("scan month revenue: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
