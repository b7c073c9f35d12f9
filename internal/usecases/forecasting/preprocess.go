package forecasting

import (
	"sort"
	"time"

	"github.com/mohdanas86/hotelRevnue/internal/domain"
)

// dailySeries agrega o dataset por data na série diária da métrica alvo:
// soma para receita, média para taxas. A série volta ordenada.
func dailySeries(d *domain.Dataset, metric string) []samplePoint {
	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)

	for _, r := range d.Records {
		switch metric {
		case domain.MetricOccupancy:
			sums[r.Date] += r.OccupancyRate
		default:
			sums[r.Date] += r.Revenue
		}
		counts[r.Date]++
	}

	series := make([]samplePoint, 0, len(sums))
	for date, sum := range sums {
		value := sum
		if metric == domain.MetricOccupancy {
			value = sum / float64(counts[date])
		}
		series = append(series, samplePoint{date: date, value: value})
	}

	sort.Slice(series, func(i, j int) bool { return series[i].date.Before(series[j].date) })

	return series
}
