package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO resumen para las tarjetas del dashboard.
type DashboardStatsDTO struct {
	TotalSKUs      int64           `json:"total_skus"`
	TotalValuation decimal.Decimal `json:"total_valuation"` // sum(stock * price)
	LowStockAlert  int64           `json:"low_stock_alert"` // productos con stock < 10
	StockChart     []StockBarDTO   `json:"stock_chart"`     // top 10 por stock
}

// StockBarDTO una barra del gráfico de stock.
type StockBarDTO struct {
	Name  string `json:"name"`
	Stock int64  `json:"stock"`
}

// WarehouseSlotDTO un producto con su ubicación física para el mapa de bodega.
type WarehouseSlotDTO struct {
	ProductID int64  `json:"product_id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Stock     int64  `json:"stock"`
	Location  string `json:"location"`
}

// ExportFileDTO un archivo de exportación listo para descargar.
type ExportFileDTO struct {
	Filename    string
	ContentType string
	Data        []byte
}
