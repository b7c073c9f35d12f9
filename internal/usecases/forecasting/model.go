// Package forecasting gera previsões diárias de receita e ocupação a
// partir do dataset completo, com um modelo sazonal primário, regressão
// linear como contingência e cache com expiração por tempo.
package forecasting

import (
	"math"
	"time"

	"github.com/mohdanas86/hotelRevnue/internal/domain"
)

// samplePoint é uma observação diária da série alvo.
type samplePoint struct {
	date  time.Time
	value float64
}

// prediction é um valor projetado com a banda de confiança crua, antes
// do piso em zero aplicado pelo serviço.
type prediction struct {
	value float64
	lower float64
	upper float64
}

// model é a estratégia de previsão: ajusta sobre a série diária e
// projeta valores para datas futuras. Um erro de ajuste do modelo
// primário aciona a contingência, nunca aborta a previsão.
type model interface {
	Fit(points []samplePoint) (domain.ModelMetrics, error)
	Predict(dates []time.Time) []prediction
}

func meanAbsoluteError(actual, predicted []float64) float64 {
	if len(actual) == 0 {
		return 0
	}

	var sum float64
	for i := range actual {
		sum += math.Abs(actual[i] - predicted[i])
	}
	return sum / float64(len(actual))
}

func rSquared(actual, predicted []float64) float64 {
	if len(actual) == 0 {
		return 0
	}

	var mean float64
	for _, v := range actual {
		mean += v
	}
	mean /= float64(len(actual))

	var ssRes, ssTot float64
	for i := range actual {
		ssRes += (actual[i] - predicted[i]) * (actual[i] - predicted[i])
		ssTot += (actual[i] - mean) * (actual[i] - mean)
	}
	if ssTot == 0 {
		return 0
	}

	return 1 - ssRes/ssTot
}
