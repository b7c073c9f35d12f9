package forecasting

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mohdanas86/hotelRevnue/infrastructure/dataset"
	"github.com/mohdanas86/hotelRevnue/internal/config"
	"github.com/mohdanas86/hotelRevnue/internal/domain"
)

type Forecaster interface {
	RevenueForecast(days int) (*domain.ForecastResult, error)
	OccupancyForecast(days int) (*domain.ForecastResult, error)
	ValidateHorizon(raw string) (int, error)
	CacheStatus() domain.CacheStatus
	ClearCache()
}

type ForecastService struct {
	store dataset.Store
	cfg   config.Forecast
	cache *resultCache

	// injetável nos testes
	now func() time.Time
}

func NewForecastService(store dataset.Store, cfg config.Forecast) *ForecastService {
	return &ForecastService{
		store: store,
		cfg:   cfg,
		cache: newResultCache(time.Duration(cfg.CacheTTLHours)*time.Hour, time.Now),
		now:   time.Now,
	}
}

// RevenueForecast projeta a receita diária total para os próximos dias.
func (s *ForecastService) RevenueForecast(days int) (*domain.ForecastResult, error) {
	return s.generate(domain.MetricRevenue, days)
}

// OccupancyForecast projeta a ocupação média diária para os próximos dias.
func (s *ForecastService) OccupancyForecast(days int) (*domain.ForecastResult, error) {
	return s.generate(domain.MetricOccupancy, days)
}

// ValidateHorizon normaliza o parâmetro de horizonte antes de qualquer
// acesso a dados. Ausente vira o padrão configurado; fora do intervalo
// suportado falha com ValidationError.
func (s *ForecastService) ValidateHorizon(raw string) (int, error) {
	if raw == "" {
		return s.cfg.DefaultHorizonDays, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return 0, domain.NewValidationError("days_ahead deve ser um inteiro positivo")
	}
	if days > s.cfg.MaxHorizonDays {
		return 0, domain.NewValidationError("days_ahead não pode exceder %d dias", s.cfg.MaxHorizonDays)
	}

	return days, nil
}

// CacheStatus expõe o estado do cache de previsões para inspeção.
func (s *ForecastService) CacheStatus() domain.CacheStatus {
	return s.cache.Status(s.cfg.CacheTTLHours)
}

// ClearCache descarta todas as previsões guardadas, forçando novo
// treinamento na próxima requisição.
func (s *ForecastService) ClearCache() {
	s.cache.Clear()
}

func (s *ForecastService) generate(metric string, days int) (*domain.ForecastResult, error) {
	d, err := s.store.Load()
	if err != nil {
		return nil, errors.Wrap(err, "forecasting: carregar dataset")
	}

	key := fmt.Sprintf("%s_%d_%s", metric, days, d.Fingerprint())
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	series := dailySeries(d, metric)
	if len(series) < s.cfg.MinHistoryDays {
		return nil, &domain.InsufficientDataError{
			Points:  len(series),
			Minimum: s.cfg.MinHistoryDays,
		}
	}

	trained, metrics, err := s.train(metric, series)
	if err != nil {
		return nil, err
	}

	lastDate := series[len(series)-1].date
	dates := make([]time.Time, 0, days)
	for i := 1; i <= days; i++ {
		dates = append(dates, lastDate.AddDate(0, 0, i))
	}

	predictions := trained.Predict(dates)

	points := make([]domain.ForecastPoint, 0, len(predictions))
	for i, p := range predictions {
		// Receita e ocupação não podem ser negativas; o teto não sofre piso
		points = append(points, domain.ForecastPoint{
			Date:           dates[i].Format(time.DateOnly),
			PredictedValue: floorZero(p.value),
			LowerBound:     floorZero(p.lower),
			UpperBound:     p.upper,
		})
	}

	result := &domain.ForecastResult{
		Forecast: points,
		Metadata: domain.ForecastMetadata{
			TargetColumn:       metric,
			ModelMetrics:       metrics,
			TrainingDataPoints: len(series),
			ForecastPeriodDays: days,
			LastHistoricalDate: lastDate.Format(time.DateOnly),
			ForecastStartDate:  points[0].Date,
			ForecastEndDate:    points[len(points)-1].Date,
			GeneratedAt:        s.now().Format("2006-01-02 15:04:05"),
		},
	}

	s.cache.Set(key, result)

	logrus.WithFields(logrus.Fields{
		"metric": metric,
		"days":   days,
		"model":  metrics.ModelType,
	}).Info("forecast: previsão gerada")

	return result, nil
}

// train tenta o modelo sazonal e cai para a regressão em qualquer falha
// de treinamento. A previsão sempre sai de um dos dois caminhos.
func (s *ForecastService) train(metric string, series []samplePoint) (model, domain.ModelMetrics, error) {
	primary := newSeasonalModel()
	metrics, err := primary.Fit(series)
	if err == nil {
		return primary, metrics, nil
	}

	logrus.WithFields(logrus.Fields{
		"metric": metric,
		"error":  err.Error(),
	}).Warn("forecast: modelo sazonal falhou, usando regressão de contingência")

	fallback := newRegressionModel()
	metrics, err = fallback.Fit(series)
	if err != nil {
		return nil, domain.ModelMetrics{}, errors.Wrap(err, "forecasting: treinar modelo de contingência")
	}

	return fallback, metrics, nil
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
