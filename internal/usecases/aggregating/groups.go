package aggregating

import (
	"sort"
	"time"

	"github.com/mohdanas86/hotelRevnue/internal/domain"
)

// group acumula as reduções usadas pelas agregações. Campos de média
// guardam a soma; a divisão por count acontece na emissão.
type group struct {
	revenue       float64
	occupancy     float64
	adr           float64
	revpar        float64
	cancellations int
	roomsSold     int
	count         int
}

func (g *group) add(r domain.BookingRecord) {
	g.revenue += r.Revenue
	g.occupancy += r.OccupancyRate
	g.adr += r.ADR
	g.revpar += r.RevPAR
	g.cancellations += r.CancellationCount
	g.roomsSold += r.RoomsSold
	g.count++
}

// groupBy agrupa a visão por uma dimensão categórica. As chaves voltam
// ordenadas para tornar a saída determinística.
func groupBy(view *domain.Dataset, key func(domain.BookingRecord) string) ([]string, map[string]*group) {
	groups := make(map[string]*group)

	for _, r := range view.Records {
		k := key(r)
		if groups[k] == nil {
			groups[k] = &group{}
		}
		groups[k].add(r)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys, groups
}

// groupByDate agrupa a visão por data, em ordem cronológica.
func groupByDate(view *domain.Dataset) ([]time.Time, map[time.Time]*group) {
	groups := make(map[time.Time]*group)

	for _, r := range view.Records {
		if groups[r.Date] == nil {
			groups[r.Date] = &group{}
		}
		groups[r.Date].add(r)
	}

	dates := make([]time.Time, 0, len(groups))
	for date := range groups {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	return dates, groups
}

// bucketDate projeta uma data no rótulo do seu balde de tempo: o próprio
// dia, o domingo que encerra a semana ou o último dia do mês.
func bucketDate(date time.Time, granularity string) time.Time {
	switch granularity {
	case GranularityWeek:
		offset := (7 - int(date.Weekday())) % 7
		return date.AddDate(0, 0, offset)
	case GranularityMonth:
		return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location())
	default:
		return date
	}
}

// resample agrupa a visão por balde de tempo na granularidade pedida.
func resample(view *domain.Dataset, granularity string) ([]time.Time, map[time.Time]*group) {
	groups := make(map[time.Time]*group)

	for _, r := range view.Records {
		bucket := bucketDate(r.Date, granularity)
		if groups[bucket] == nil {
			groups[bucket] = &group{}
		}
		groups[bucket].add(r)
	}

	buckets := make([]time.Time, 0, len(groups))
	for bucket := range groups {
		buckets = append(buckets, bucket)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Before(buckets[j]) })

	return buckets, groups
}
