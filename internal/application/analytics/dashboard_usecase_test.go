package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguatrack/aguatrack-api/internal/application/analytics"
	"github.com/aguatrack/aguatrack-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doble del repositorio de analítica
// ──────────────────────────────────────────────────────────────────────────────

type fakeAnalyticsRepo struct {
	deliveryRows []repository.MonthRevenueResult
	deliveryErr  error
	logRows      []repository.MonthRevenueResult
	logErr       error
	customers    int
	customersErr error

	gotStart time.Time
	gotEnd   time.Time
}

func (f *fakeAnalyticsRepo) GetDeliveryRevenueByMonth(_ context.Context, _ string, start, end time.Time) ([]repository.MonthRevenueResult, error) {
	f.gotStart, f.gotEnd = start, end
	return f.deliveryRows, f.deliveryErr
}

func (f *fakeAnalyticsRepo) GetMonthlyLogRevenueByMonth(_ context.Context, _ string, _, _ time.Time) ([]repository.MonthRevenueResult, error) {
	return f.logRows, f.logErr
}

func (f *fakeAnalyticsRepo) CountCustomers(_ context.Context, _ string) (int, error) {
	return f.customers, f.customersErr
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fusión de las dos fuentes de ingreso
// ──────────────────────────────────────────────────────────────────────────────

// Mes compartido entre ambas fuentes: los montos se suman campo a campo.
// Mes exclusivo de una fuente: entra tal cual. El overview reduce la serie
// ya fusionada.
func TestGetStats_FusionaEntregasYSuscripcion(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		deliveryRows: []repository.MonthRevenueResult{
			{Month: 3, TotalRevenue: dec("100"), TotalDue: dec("20")},
			{Month: 5, TotalRevenue: dec("30"), TotalDue: dec("10")},
		},
		logRows: []repository.MonthRevenueResult{
			{Month: 3, TotalRevenue: dec("50"), TotalDue: dec("0")},
		},
		customers: 12,
	}
	uc := analytics.NewDashboardUseCase(repo)

	stats, err := uc.GetStats(context.Background(), "biz-1")
	require.NoError(t, err)

	require.Len(t, stats.RevenueStats, 2)
	assert.Equal(t, 3, stats.RevenueStats[0].Month)
	assert.True(t, stats.RevenueStats[0].TotalRevenue.Equal(dec("150")),
		"marzo debe sumar 100 de entregas + 50 de suscripción")
	assert.True(t, stats.RevenueStats[0].TotalDue.Equal(dec("20")))
	assert.Equal(t, 5, stats.RevenueStats[1].Month)
	assert.True(t, stats.RevenueStats[1].TotalRevenue.Equal(dec("30")))
	assert.True(t, stats.RevenueStats[1].TotalDue.Equal(dec("10")))

	assert.True(t, stats.PaymentOverview.Paid.Equal(dec("180")),
		"paid debe ser la suma de TotalRevenue de todos los buckets")
	assert.True(t, stats.PaymentOverview.Pending.Equal(dec("30")),
		"pending debe ser la suma de TotalDue de todos los buckets")
	assert.Equal(t, 12, stats.TotalCustomers)
}

// La serie sale ordenada por mes ascendente aunque las fuentes lleguen en
// cualquier orden.
func TestGetStats_OrdenaMesesAscendente(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		deliveryRows: []repository.MonthRevenueResult{
			{Month: 11, TotalRevenue: dec("5"), TotalDue: dec("0")},
			{Month: 2, TotalRevenue: dec("1"), TotalDue: dec("0")},
		},
		logRows: []repository.MonthRevenueResult{
			{Month: 7, TotalRevenue: dec("3"), TotalDue: dec("0")},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	stats, err := uc.GetStats(context.Background(), "biz-1")
	require.NoError(t, err)

	require.Len(t, stats.RevenueStats, 3)
	assert.Equal(t, 2, stats.RevenueStats[0].Month)
	assert.Equal(t, 7, stats.RevenueStats[1].Month)
	assert.Equal(t, 11, stats.RevenueStats[2].Month)
}

// Un negocio con actividad en un solo libro se comporta igual que uno con
// actividad repartida.
func TestGetStats_UnaSolaFuente(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		logRows: []repository.MonthRevenueResult{
			{Month: 1, TotalRevenue: dec("200"), TotalDue: dec("40")},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	stats, err := uc.GetStats(context.Background(), "biz-1")
	require.NoError(t, err)

	require.Len(t, stats.RevenueStats, 1)
	assert.True(t, stats.PaymentOverview.Paid.Equal(dec("200")))
	assert.True(t, stats.PaymentOverview.Pending.Equal(dec("40")))
}

// Año sin actividad: serie vacía (no nil) y overview en cero.
func TestGetStats_SinActividad(t *testing.T) {
	repo := &fakeAnalyticsRepo{customers: 3}
	uc := analytics.NewDashboardUseCase(repo)

	stats, err := uc.GetStats(context.Background(), "biz-1")
	require.NoError(t, err)

	assert.NotNil(t, stats.RevenueStats, "la serie debe serializar como [], no null")
	assert.Empty(t, stats.RevenueStats)
	assert.True(t, stats.PaymentOverview.Paid.IsZero())
	assert.True(t, stats.PaymentOverview.Pending.IsZero())
	assert.Equal(t, 3, stats.TotalCustomers)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallos y ventana
// ──────────────────────────────────────────────────────────────────────────────

// Cualquier fuente que falle aborta el cómputo completo: nunca totales
// parciales.
func TestGetStats_ErrorDeFuenteAborta(t *testing.T) {
	boom := errors.New("conexión perdida")

	cases := []struct {
		name string
		repo *fakeAnalyticsRepo
	}{
		{"entregas", &fakeAnalyticsRepo{deliveryErr: boom}},
		{"suscripción", &fakeAnalyticsRepo{logErr: boom}},
		{"clientes", &fakeAnalyticsRepo{customersErr: boom}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := analytics.NewDashboardUseCase(tc.repo)
			stats, err := uc.GetStats(context.Background(), "biz-1")
			require.Error(t, err)
			assert.ErrorIs(t, err, boom)
			assert.Nil(t, stats)
		})
	}
}

// La ventana arranca el 1 de enero del año en curso: años anteriores no entran.
func TestGetStats_VentanaDelAnioEnCurso(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetStats(context.Background(), "biz-1")
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, now.Year(), repo.gotStart.Year())
	assert.Equal(t, time.January, repo.gotStart.Month())
	assert.Equal(t, 1, repo.gotStart.Day())
	assert.WithinDuration(t, now, repo.gotEnd, 5*time.Second)
}
