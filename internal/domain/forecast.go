package domain

// Métricas que podem ser previstas. Correspondem às colunas da fonte.
const (
	MetricRevenue   = "Revenue_INR"
	MetricOccupancy = "Occupancy_Rate"
)

// ForecastPoint é um dia projetado. PredictedValue e LowerBound nunca são
// negativos; UpperBound não sofre piso.
type ForecastPoint struct {
	Date           string  `json:"date"`
	PredictedValue float64 `json:"predicted_value"`
	LowerBound     float64 `json:"lower_bound"`
	UpperBound     float64 `json:"upper_bound"`
}

// ModelMetrics descreve a qualidade do modelo treinado, no mesmo formato
// para o modelo sazonal e o de regressão.
type ModelMetrics struct {
	MAE       float64 `json:"mae"`
	R2        float64 `json:"r2"`
	ModelType string  `json:"model_type"`
}

// ForecastMetadata acompanha toda previsão gerada.
type ForecastMetadata struct {
	TargetColumn       string       `json:"target_column"`
	ModelMetrics       ModelMetrics `json:"model_metrics"`
	TrainingDataPoints int          `json:"training_data_points"`
	ForecastPeriodDays int          `json:"forecast_period_days"`
	LastHistoricalDate string       `json:"last_historical_date"`
	ForecastStartDate  string       `json:"forecast_start_date"`
	ForecastEndDate    string       `json:"forecast_end_date"`
	GeneratedAt        string       `json:"generated_at"`
}

// ForecastResult é a resposta completa de uma previsão.
type ForecastResult struct {
	Forecast []ForecastPoint  `json:"forecast"`
	Metadata ForecastMetadata `json:"metadata"`
}

// CacheStatus expõe o estado do cache de previsões para inspeção.
type CacheStatus struct {
	CachedEntries int      `json:"cached_entries"`
	CacheKeys     []string `json:"cache_keys"`
	MaxAgeHours   int      `json:"max_age_hours"`
}
