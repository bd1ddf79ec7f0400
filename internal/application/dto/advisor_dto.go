package dto

// RestockSuggestionDTO proyección lineal de demanda para un producto.
type RestockSuggestionDTO struct {
	ProductID    int64   `json:"product_id"`
	SKU          string  `json:"sku"`
	ProductName  string  `json:"product_name"`
	CurrentStock int64   `json:"current_stock"`
	TotalOut     int64   `json:"total_out"`      // unidades OUT dentro de la ventana
	AvgDailyOut  float64 `json:"avg_daily_out"`  // TotalOut / windowDays
	SuggestedQty int64   `json:"suggested_qty"`  // ceil(AvgDailyOut * horizonDays), mínimo 10
	DaysToEmpty  int64   `json:"days_to_empty"`  // floor(CurrentStock / AvgDailyOut); 999 = sin riesgo
}
