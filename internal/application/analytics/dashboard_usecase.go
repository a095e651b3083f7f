// Package analytics contiene el motor de agregación de ingresos del dashboard:
// fusiona el libro de entregas puntuales y el log de suscripción mensual en
// una sola serie mensual de ingresos y saldos del año en curso.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aguatrack/aguatrack-api/internal/application/dto"
	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
)

// DashboardUseCase genera las estadísticas del dashboard para un negocio.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a las tablas de los libros; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetStats construye el DashboardStatsDTO del negocio indicado.
//
// Ventana: [1 de enero del año en curso, ahora]. Años anteriores nunca entran.
//
// Tres llamadas en paralelo:
//  1. GetDeliveryRevenueByMonth    → ingresos/saldos del libro de entregas
//  2. GetMonthlyLogRevenueByMonth  → ingresos/saldos del log de suscripción
//  3. CountCustomers               → total de clientes (de vida, sin ventana)
//
// Después se fusionan las dos series por número de mes sumando ambos campos;
// la fusión es agnóstica de la fuente: un negocio con actividad en un solo
// libro se comporta igual que uno con actividad repartida. Cualquier fallo
// aborta el cómputo completo; jamás se devuelven totales parciales o en cero
// por un error silenciado.
func (uc *DashboardUseCase) GetStats(ctx context.Context, businessID string) (*dto.DashboardStatsDTO, error) {
	now := time.Now()
	startOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	// ── Goroutines para paralelizar las 3 consultas DB ────────────────────────
	type revenueResult struct {
		rows []repository.MonthRevenueResult
		err  error
	}
	type countResult struct {
		total int
		err   error
	}

	deliveryCh := make(chan revenueResult, 1)
	logCh := make(chan revenueResult, 1)
	customersCh := make(chan countResult, 1)

	go func() {
		rows, err := uc.analyticsRepo.GetDeliveryRevenueByMonth(ctx, businessID, startOfYear, now)
		deliveryCh <- revenueResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetMonthlyLogRevenueByMonth(ctx, businessID, startOfYear, now)
		logCh <- revenueResult{rows, err}
	}()
	go func() {
		total, err := uc.analyticsRepo.CountCustomers(ctx, businessID)
		customersCh <- countResult{total, err}
	}()

	deliveries := <-deliveryCh
	logs := <-logCh
	customers := <-customersCh

	if deliveries.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos de entregas: %w", deliveries.err)
	}
	if logs.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos de suscripción: %w", logs.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: total de clientes: %w", customers.err)
	}

	stats := mergeMonthly(deliveries.rows, logs.rows)

	// ── Overview: reducción sobre la serie ya fusionada ───────────────────────
	paid := decimal.Zero
	pending := decimal.Zero
	for _, bucket := range stats {
		paid = paid.Add(bucket.TotalRevenue)
		pending = pending.Add(bucket.TotalDue)
	}

	return &dto.DashboardStatsDTO{
		RevenueStats:    stats,
		TotalCustomers:  customers.total,
		PaymentOverview: dto.PaymentOverviewDTO{Paid: paid, Pending: pending},
	}, nil
}

// mergeMonthly une las dos series por número de mes sumando TotalRevenue y
// TotalDue, y devuelve los buckets ordenados ascendente por mes. Un mes ausente
// en ambas fuentes no aparece en el resultado.
func mergeMonthly(sources ...[]repository.MonthRevenueResult) []dto.MonthRevenueDTO {
	combined := make(map[int]*dto.MonthRevenueDTO)
	for _, rows := range sources {
		for _, row := range rows {
			bucket, ok := combined[row.Month]
			if !ok {
				bucket = &dto.MonthRevenueDTO{
					Month:        row.Month,
					TotalRevenue: decimal.Zero,
					TotalDue:     decimal.Zero,
				}
				combined[row.Month] = bucket
			}
			bucket.TotalRevenue = bucket.TotalRevenue.Add(row.TotalRevenue)
			bucket.TotalDue = bucket.TotalDue.Add(row.TotalDue)
		}
	}

	months := make([]int, 0, len(combined))
	for month := range combined {
		months = append(months, month)
	}
	sort.Ints(months)

	// Slice vacío (no nil) para que un año sin actividad serialice como [].
	stats := make([]dto.MonthRevenueDTO, 0, len(months))
	for _, month := range months {
		stats = append(stats, *combined[month])
	}
	return stats
}
