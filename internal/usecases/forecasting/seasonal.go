package forecasting

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/mohdanas86/hotelRevnue/internal/domain"
)

const seasonalModelType = "Seasonal"

// Largura do intervalo de 95% sobre o desvio padrão dos resíduos.
const confidenceZ = 1.96

// seasonalModel é o modelo primário: tendência linear por mínimos
// quadrados multiplicada por índices sazonais de dia da semana e de mês.
// O ajuste falha quando a tendência cruza zero dentro do treino ou a
// série é degenerada, acionando a contingência de regressão.
type seasonalModel struct {
	slope     float64
	intercept float64
	weekday   [7]float64
	month     [13]float64
	sigma     float64
	start     time.Time
}

func newSeasonalModel() *seasonalModel {
	return &seasonalModel{}
}

func (m *seasonalModel) Fit(points []samplePoint) (domain.ModelMetrics, error) {
	if len(points) < 2 {
		return domain.ModelMetrics{}, &domain.ModelTrainingError{
			Model: seasonalModelType,
			Err:   errors.New("série muito curta para ajustar tendência"),
		}
	}

	m.start = points[0].date

	// Tendência linear sobre os dias decorridos desde o início da série
	var sumT, sumY, sumTY, sumTT float64
	n := float64(len(points))
	for _, p := range points {
		t := m.elapsed(p.date)
		sumT += t
		sumY += p.value
		sumTY += t * p.value
		sumTT += t * t
	}

	denominator := n*sumTT - sumT*sumT
	if denominator == 0 {
		return domain.ModelMetrics{}, &domain.ModelTrainingError{
			Model: seasonalModelType,
			Err:   errors.New("série sem variação temporal"),
		}
	}

	meanY := sumY / n
	variance := 0.0
	for _, p := range points {
		variance += (p.value - meanY) * (p.value - meanY)
	}
	if variance == 0 {
		return domain.ModelMetrics{}, &domain.ModelTrainingError{
			Model: seasonalModelType,
			Err:   errors.New("série com variância nula"),
		}
	}

	m.slope = (n*sumTY - sumT*sumY) / denominator
	m.intercept = (sumY - m.slope*sumT) / n

	// Sazonalidade multiplicativa exige nível de tendência positivo em
	// todos os pontos de treino
	ratios := make([]float64, len(points))
	for i, p := range points {
		trend := m.trend(p.date)
		if trend <= 0 {
			return domain.ModelMetrics{}, &domain.ModelTrainingError{
				Model: seasonalModelType,
				Err:   errors.New("nível de tendência não positivo no treino"),
			}
		}
		ratios[i] = p.value / trend
	}

	m.fitIndices(points, ratios)

	// Resíduos do ajuste completo para a banda de confiança e métricas
	actual := make([]float64, len(points))
	fitted := make([]float64, len(points))
	var squaredSum float64
	for i, p := range points {
		actual[i] = p.value
		fitted[i] = m.at(p.date)
		residual := p.value - fitted[i]
		squaredSum += residual * residual
	}
	m.sigma = math.Sqrt(squaredSum / n)

	return domain.ModelMetrics{
		MAE:       meanAbsoluteError(actual, fitted),
		R2:        rSquared(actual, fitted),
		ModelType: seasonalModelType,
	}, nil
}

func (m *seasonalModel) Predict(dates []time.Time) []prediction {
	predictions := make([]prediction, 0, len(dates))
	for _, date := range dates {
		value := m.at(date)
		predictions = append(predictions, prediction{
			value: value,
			lower: value - confidenceZ*m.sigma,
			upper: value + confidenceZ*m.sigma,
		})
	}
	return predictions
}

// fitIndices calcula os índices sazonais como a razão média observada
// por dia da semana e por mês. Grupos ausentes ficam neutros (1).
func (m *seasonalModel) fitIndices(points []samplePoint, ratios []float64) {
	var weekdaySum, monthSum [13]float64
	var weekdayCount, monthCount [13]int

	for i, p := range points {
		wd := int(p.date.Weekday())
		mo := int(p.date.Month())
		weekdaySum[wd] += ratios[i]
		weekdayCount[wd]++
		monthSum[mo] += ratios[i]
		monthCount[mo]++
	}

	for wd := 0; wd < 7; wd++ {
		m.weekday[wd] = 1
		if weekdayCount[wd] > 0 {
			m.weekday[wd] = weekdaySum[wd] / float64(weekdayCount[wd])
		}
	}
	for mo := 1; mo <= 12; mo++ {
		m.month[mo] = 1
		if monthCount[mo] > 0 {
			m.month[mo] = monthSum[mo] / float64(monthCount[mo])
		}
	}
}

func (m *seasonalModel) elapsed(date time.Time) float64 {
	return date.Sub(m.start).Hours() / 24
}

func (m *seasonalModel) trend(date time.Time) float64 {
	return m.intercept + m.slope*m.elapsed(date)
}

func (m *seasonalModel) at(date time.Time) float64 {
	return m.trend(date) * m.weekday[int(date.Weekday())] * m.month[int(date.Month())]
}
