package dto

import "github.com/shopspring/decimal"

// MonthRevenueDTO bucket mensual ya fusionado entre las dos fuentes de ingreso.
// Month es el número de mes calendario (1–12); los meses sin actividad en
// ninguna fuente no aparecen (no se rellenan con ceros).
type MonthRevenueDTO struct {
	Month        int             `json:"month"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalDue     decimal.Decimal `json:"totalDue"`
}

// PaymentOverviewDTO reducción sobre la serie mensual ya fusionada.
type PaymentOverviewDTO struct {
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
}

// DashboardStatsDTO respuesta del dashboard del año en curso.
// TotalCustomers es un conteo de vida del negocio, no año-a-la-fecha.
type DashboardStatsDTO struct {
	RevenueStats    []MonthRevenueDTO  `json:"revenueStats"`
	TotalCustomers  int                `json:"totalCustomers"`
	PaymentOverview PaymentOverviewDTO `json:"paymentOverview"`
}
