package forecasting

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/mohdanas86/hotelRevnue/internal/domain"
)

const regressionModelType = "Linear Regression"

const featureCount = 5

// Banda de confiança simplificada da contingência: ±10% do valor previsto.
const regressionBandWidth = 0.10

// regressionModel é a contingência: regressão linear por mínimos
// quadrados sobre atributos de calendário padronizados. Sempre produz
// um resultado para séries não vazias.
type regressionModel struct {
	coef  [featureCount + 1]float64
	mean  [featureCount]float64
	std   [featureCount]float64
	start time.Time
}

func newRegressionModel() *regressionModel {
	return &regressionModel{}
}

func (m *regressionModel) Fit(points []samplePoint) (domain.ModelMetrics, error) {
	if len(points) == 0 {
		return domain.ModelMetrics{}, &domain.ModelTrainingError{
			Model: regressionModelType,
			Err:   errors.New("série vazia"),
		}
	}

	m.start = points[0].date

	raw := make([][featureCount]float64, len(points))
	for i, p := range points {
		raw[i] = m.features(p.date)
	}

	m.fitScaler(raw)

	scaled := make([][featureCount]float64, len(points))
	for i := range raw {
		scaled[i] = m.scale(raw[i])
	}

	m.solve(scaled, points)

	actual := make([]float64, len(points))
	predicted := make([]float64, len(points))
	for i, p := range points {
		actual[i] = p.value
		predicted[i] = m.apply(scaled[i])
	}

	return domain.ModelMetrics{
		MAE:       meanAbsoluteError(actual, predicted),
		R2:        rSquared(actual, predicted),
		ModelType: regressionModelType,
	}, nil
}

func (m *regressionModel) Predict(dates []time.Time) []prediction {
	predictions := make([]prediction, 0, len(dates))
	for _, date := range dates {
		value := m.apply(m.scale(m.features(date)))
		predictions = append(predictions, prediction{
			value: value,
			lower: value * (1 - regressionBandWidth),
			upper: value * (1 + regressionBandWidth),
		})
	}
	return predictions
}

// features deriva os atributos de calendário de uma data: dias desde o
// início da série, dia do ano, dia da semana, mês e ano.
func (m *regressionModel) features(date time.Time) [featureCount]float64 {
	return [featureCount]float64{
		date.Sub(m.start).Hours() / 24,
		float64(date.YearDay()),
		float64(date.Weekday()),
		float64(date.Month()),
		float64(date.Year()),
	}
}

func (m *regressionModel) fitScaler(raw [][featureCount]float64) {
	n := float64(len(raw))

	for j := 0; j < featureCount; j++ {
		var sum float64
		for i := range raw {
			sum += raw[i][j]
		}
		m.mean[j] = sum / n

		var variance float64
		for i := range raw {
			diff := raw[i][j] - m.mean[j]
			variance += diff * diff
		}
		m.std[j] = math.Sqrt(variance / n)

		// Atributo constante (ano, por exemplo) vira coluna neutra
		if m.std[j] == 0 {
			m.std[j] = 1
		}
	}
}

func (m *regressionModel) scale(raw [featureCount]float64) [featureCount]float64 {
	var scaled [featureCount]float64
	for j := 0; j < featureCount; j++ {
		scaled[j] = (raw[j] - m.mean[j]) / m.std[j]
	}
	return scaled
}

func (m *regressionModel) apply(scaled [featureCount]float64) float64 {
	value := m.coef[0]
	for j := 0; j < featureCount; j++ {
		value += m.coef[j+1] * scaled[j]
	}
	return value
}

// solve resolve as equações normais (XᵀX)β = Xᵀy por eliminação
// gaussiana com pivoteamento parcial. Colunas degeneradas recebem
// coeficiente zero em vez de derrubar o ajuste.
func (m *regressionModel) solve(scaled [][featureCount]float64, points []samplePoint) {
	const dim = featureCount + 1

	var a [dim][dim]float64
	var b [dim]float64

	row := func(i int) [dim]float64 {
		var x [dim]float64
		x[0] = 1
		for j := 0; j < featureCount; j++ {
			x[j+1] = scaled[i][j]
		}
		return x
	}

	for i := range scaled {
		x := row(i)
		for p := 0; p < dim; p++ {
			for q := 0; q < dim; q++ {
				a[p][q] += x[p] * x[q]
			}
			b[p] += x[p] * points[i].value
		}
	}

	for col := 0; col < dim; col++ {
		pivot := col
		for r := col + 1; r < dim; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		if math.Abs(a[col][col]) < 1e-12 {
			continue
		}

		for r := col + 1; r < dim; r++ {
			factor := a[r][col] / a[col][col]
			for q := col; q < dim; q++ {
				a[r][q] -= factor * a[col][q]
			}
			b[r] -= factor * b[col]
		}
	}

	for col := dim - 1; col >= 0; col-- {
		if math.Abs(a[col][col]) < 1e-12 {
			m.coef[col] = 0
			continue
		}

		sum := b[col]
		for q := col + 1; q < dim; q++ {
			sum -= a[col][q] * m.coef[q]
		}
		m.coef[col] = sum / a[col][col]
	}
}
