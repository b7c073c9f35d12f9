// Package insighting roda uma bateria fixa de análises estatísticas
// sobre o dataset completo e as apresenta como frases de negócio.
// Cada categoria é independente: uma análise que falha contribui com
// zero frases e nunca interrompe a geração das demais.
package insighting

import (
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mohdanas86/hotelRevnue/infrastructure/dataset"
	"github.com/mohdanas86/hotelRevnue/internal/domain"
	"github.com/mohdanas86/hotelRevnue/pkg/utils"
)

type Insighter interface {
	Generate() ([]string, error)
	Refresh() error
}

type Service struct {
	store dataset.Store
}

func NewService(store dataset.Store) *Service {
	return &Service{store: store}
}

type category struct {
	name    string
	analyze func(*domain.Dataset) []string
}

// Generate produz as frases de todas as categorias, na ordem fixa da
// bateria de análises.
func (s *Service) Generate() ([]string, error) {
	d, err := s.store.Load()
	if err != nil {
		return nil, errors.Wrap(err, "insighting: carregar dataset")
	}

	categories := []category{
		{"cancellation_rates", analyzeCancellationRates},
		{"market_segments", analyzeMarketSegments},
		{"monthly_revenue", analyzeMonthlyRevenue},
		{"channel_adr", analyzeChannelADR},
		{"revenue_growth", analyzeRevenueGrowth},
		{"occupancy_performance", analyzeOccupancyPerformance},
		{"revpar_performance", analyzeRevPARPerformance},
		{"seasonal_trends", analyzeSeasonalTrends},
	}

	insights := make([]string, 0, 2*len(categories))
	for _, c := range categories {
		insights = append(insights, runCategory(c, d)...)
	}

	logrus.WithField("insights", len(insights)).Info("insights: geração concluída")
	return insights, nil
}

// Refresh força o recarregamento do dataset antes da próxima geração.
func (s *Service) Refresh() error {
	_, err := s.store.Refresh()
	if err != nil {
		return errors.Wrap(err, "insighting: recarregar dataset")
	}
	return nil
}

// runCategory isola a falha de uma análise: pânico na categoria é
// registrado e a categoria não contribui com frases.
func runCategory(c category, d *domain.Dataset) (insights []string) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"category": c.name,
				"error":    r,
			}).Warn("insights: análise falhou e foi ignorada")
			insights = nil
		}
	}()

	return c.analyze(d)
}

// 1. Taxas de cancelamento por canal de reserva.
func analyzeCancellationRates(d *domain.Dataset) []string {
	type channelRate struct {
		channel string
		rate    float64
	}

	sold := make(map[string]int)
	cancelled := make(map[string]int)
	for _, r := range d.Records {
		sold[r.BookingChannel] += r.RoomsSold
		cancelled[r.BookingChannel] += r.CancellationCount
	}

	rates := make([]channelRate, 0, len(sold))
	for channel, roomsSold := range sold {
		totalBookings := roomsSold + cancelled[channel]
		if totalBookings == 0 {
			continue
		}
		rates = append(rates, channelRate{
			channel: channel,
			rate:    float64(cancelled[channel]) / float64(totalBookings) * 100,
		})
	}
	if len(rates) == 0 {
		return nil
	}

	sort.Slice(rates, func(i, j int) bool { return rates[i].rate > rates[j].rate })
	highest, lowest := rates[0], rates[len(rates)-1]

	insights := []string{fmt.Sprintf(
		"%s bookings have the highest cancellation rate at %.1f%%, compared to %s at %.1f%%.",
		highest.channel, highest.rate, lowest.channel, lowest.rate,
	)}

	if len(rates) >= 2 {
		diff := rates[0].rate - rates[1].rate
		if diff > 1 {
			insights = append(insights, fmt.Sprintf(
				"%s generates %.1f percentage points more cancellations than %s.",
				rates[0].channel, diff, rates[1].channel,
			))
		}
	}

	return insights
}

// 2. Contribuição de receita por segmento de mercado.
func analyzeMarketSegments(d *domain.Dataset) []string {
	type segmentRevenue struct {
		segment string
		revenue float64
	}

	bySegment := make(map[string]float64)
	var totalRevenue float64
	for _, r := range d.Records {
		bySegment[r.MarketSegment] += r.Revenue
		totalRevenue += r.Revenue
	}
	if totalRevenue == 0 {
		return nil
	}

	segments := make([]segmentRevenue, 0, len(bySegment))
	for segment, revenue := range bySegment {
		segments = append(segments, segmentRevenue{segment: segment, revenue: revenue})
	}
	sort.Slice(segments, func(i, j int) bool { return segments[i].revenue > segments[j].revenue })

	topShare := utils.RoundN(segments[0].revenue/totalRevenue*100, 1)

	insights := []string{fmt.Sprintf(
		"%s segment contributes %.1f%% of total revenue, generating %s.",
		segments[0].segment, topShare, utils.FormatINR(segments[0].revenue),
	)}

	if len(segments) >= 2 {
		secondShare := utils.RoundN(segments[1].revenue/totalRevenue*100, 1)
		insights = append(insights, fmt.Sprintf(
			"%s outperforms %s by %.1f percentage points in revenue share.",
			segments[0].segment, segments[1].segment, topShare-secondShare,
		))
	}

	if topShare > 50 {
		insights = append(insights, fmt.Sprintf(
			"Revenue is highly concentrated with %s representing over half of all income.",
			segments[0].segment,
		))
	} else if topShare < 30 {
		insights = append(insights,
			"Revenue is well-diversified across market segments with no single segment dominating.")
	}

	return insights
}

var monthNames = [...]string{"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

// 3. Padrão mensal de receita e comparação entre trimestres.
func analyzeMonthlyRevenue(d *domain.Dataset) []string {
	byMonth := make(map[int]float64)
	for _, r := range d.Records {
		byMonth[int(r.Date.Month())] += r.Revenue
	}
	if len(byMonth) == 0 {
		return nil
	}

	highest, lowest := 0, 0
	for month := range byMonth {
		if highest == 0 || byMonth[month] > byMonth[highest] {
			highest = month
		}
		if lowest == 0 || byMonth[month] < byMonth[lowest] {
			lowest = month
		}
	}
	if byMonth[lowest] == 0 {
		return nil
	}

	pctDiff := utils.RoundN((byMonth[highest]-byMonth[lowest])/byMonth[lowest]*100, 1)

	insights := []string{fmt.Sprintf(
		"%s has the lowest monthly revenue at %s, while %s peaks at %s (%.1f%% higher).",
		monthNames[lowest], utils.FormatINR(byMonth[lowest]),
		monthNames[highest], utils.FormatINR(byMonth[highest]), pctDiff,
	)}

	quarters := map[string]float64{
		"Q1": byMonth[1] + byMonth[2] + byMonth[3],
		"Q2": byMonth[4] + byMonth[5] + byMonth[6],
		"Q3": byMonth[7] + byMonth[8] + byMonth[9],
		"Q4": byMonth[10] + byMonth[11] + byMonth[12],
	}

	best, worst := "Q1", "Q1"
	for _, q := range []string{"Q2", "Q3", "Q4"} {
		if quarters[q] > quarters[best] {
			best = q
		}
		if quarters[q] < quarters[worst] {
			worst = q
		}
	}

	insights = append(insights, fmt.Sprintf(
		"%s is the strongest quarter for revenue, while %s presents the biggest opportunity for improvement.",
		best, worst,
	))

	return insights
}

// 4. ADR por canal, ponderado pelos quartos vendidos.
func analyzeChannelADR(d *domain.Dataset) []string {
	weighted := make(map[string]float64)
	sold := make(map[string]int)
	var overallWeighted float64
	var overallSold int

	for _, r := range d.Records {
		weighted[r.BookingChannel] += r.ADR * float64(r.RoomsSold)
		sold[r.BookingChannel] += r.RoomsSold
		overallWeighted += r.ADR * float64(r.RoomsSold)
		overallSold += r.RoomsSold
	}
	if overallSold == 0 {
		return nil
	}

	adr := make(map[string]float64, len(weighted))
	for channel, total := range weighted {
		if sold[channel] == 0 {
			continue
		}
		adr[channel] = utils.RoundWithTwoDecimalPlace(total / float64(sold[channel]))
	}
	if len(adr) == 0 {
		return nil
	}

	highest, lowest := "", ""
	for channel := range adr {
		if highest == "" || adr[channel] > adr[highest] {
			highest = channel
		}
		if lowest == "" || adr[channel] < adr[lowest] {
			lowest = channel
		}
	}
	if adr[lowest] == 0 {
		return nil
	}

	premiumPct := utils.RoundN((adr[highest]-adr[lowest])/adr[lowest]*100, 1)

	insights := []string{fmt.Sprintf(
		"%s commands the highest ADR at %s, representing a %.1f%% premium over %s (%s).",
		highest, utils.FormatINR(adr[highest]), premiumPct, lowest, utils.FormatINR(adr[lowest]),
	)}

	overallADR := overallWeighted / float64(overallSold)
	aboveAverage := 0
	for _, value := range adr {
		if value > overallADR {
			aboveAverage++
		}
	}
	if aboveAverage > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d out of %d booking channels achieve above-average ADR of %s.",
			aboveAverage, len(adr), utils.FormatINR(overallADR),
		))
	}

	return insights
}

// 5. Crescimento de receita mês a mês.
func analyzeRevenueGrowth(d *domain.Dataset) []string {
	byYearMonth := make(map[string]float64)
	for _, r := range d.Records {
		byYearMonth[r.Date.Format("2006-01")] += r.Revenue
	}

	months := make([]string, 0, len(byYearMonth))
	for ym := range byYearMonth {
		months = append(months, ym)
	}
	sort.Strings(months)

	if len(months) < 2 {
		return []string{"Insufficient data for revenue growth analysis."}
	}

	type monthGrowth struct {
		month  string
		growth float64
	}

	growths := make([]monthGrowth, 0, len(months)-1)
	for i := 1; i < len(months); i++ {
		previous := byYearMonth[months[i-1]]
		if previous == 0 {
			continue
		}
		growths = append(growths, monthGrowth{
			month:  months[i],
			growth: (byYearMonth[months[i]] - previous) / previous * 100,
		})
	}
	if len(growths) == 0 {
		return nil
	}

	var sum float64
	for _, g := range growths {
		sum += g.growth
	}
	avgGrowth := sum / float64(len(growths))
	latest := growths[len(growths)-1].growth

	direction := "growth"
	if avgGrowth <= 0 {
		direction = "decline"
	}
	abs := avgGrowth
	if abs < 0 {
		abs = -abs
	}

	insights := []string{fmt.Sprintf(
		"Average month-over-month revenue %s is %.1f%%, with the most recent month showing %+.1f%%.",
		direction, abs, latest,
	)}

	if len(growths) >= 3 {
		best, worst := growths[0], growths[0]
		for _, g := range growths[1:] {
			if g.growth > best.growth {
				best = g
			}
			if g.growth < worst.growth {
				worst = g
			}
		}
		insights = append(insights, fmt.Sprintf(
			"Strongest growth occurred in %s (+%.1f%%), while %s saw the steepest decline (%+.1f%%).",
			best.month, best.growth, worst.month, worst.growth,
		))
	}

	return insights
}

// 6. Desempenho de ocupação geral e por segmento.
func analyzeOccupancyPerformance(d *domain.Dataset) []string {
	if d.IsEmpty() {
		return nil
	}

	var sum float64
	minOcc, maxOcc := d.Records[0].OccupancyRate, d.Records[0].OccupancyRate
	for _, r := range d.Records {
		sum += r.OccupancyRate
		if r.OccupancyRate < minOcc {
			minOcc = r.OccupancyRate
		}
		if r.OccupancyRate > maxOcc {
			maxOcc = r.OccupancyRate
		}
	}
	avg := sum / float64(d.Len())

	insights := []string{fmt.Sprintf(
		"Average occupancy rate is %.1f%% with a range from %.1f%% to %.1f%%.",
		avg*100, minOcc*100, maxOcc*100,
	)}

	occSum := make(map[string]float64)
	occCount := make(map[string]int)
	for _, r := range d.Records {
		occSum[r.MarketSegment] += r.OccupancyRate
		occCount[r.MarketSegment]++
	}

	highest, lowest := "", ""
	bySegment := make(map[string]float64, len(occSum))
	for segment := range occSum {
		bySegment[segment] = occSum[segment] / float64(occCount[segment]) * 100
		if highest == "" || bySegment[segment] > bySegment[highest] {
			highest = segment
		}
		if lowest == "" || bySegment[segment] < bySegment[lowest] {
			lowest = segment
		}
	}

	insights = append(insights, fmt.Sprintf(
		"%s achieves the highest occupancy at %.1f%%, while %s has the lowest at %.1f%%.",
		highest, bySegment[highest], lowest, bySegment[lowest],
	))

	return insights
}

// 7. RevPAR médio geral e por canal.
func analyzeRevPARPerformance(d *domain.Dataset) []string {
	if d.IsEmpty() {
		return nil
	}

	var sum float64
	revparSum := make(map[string]float64)
	revparCount := make(map[string]int)
	for _, r := range d.Records {
		sum += r.RevPAR
		revparSum[r.BookingChannel] += r.RevPAR
		revparCount[r.BookingChannel]++
	}
	avg := sum / float64(d.Len())

	top := ""
	byChannel := make(map[string]float64, len(revparSum))
	for channel := range revparSum {
		byChannel[channel] = utils.RoundWithTwoDecimalPlace(revparSum[channel] / float64(revparCount[channel]))
		if top == "" || byChannel[channel] > byChannel[top] {
			top = channel
		}
	}

	return []string{fmt.Sprintf(
		"Average RevPAR across all channels is %s, with %s leading at %s.",
		utils.FormatINR(avg), top, utils.FormatINR(byChannel[top]),
	)}
}

// 8. Padrão por dia da semana e fim de semana versus dias úteis.
func analyzeSeasonalTrends(d *domain.Dataset) []string {
	if d.IsEmpty() {
		return nil
	}

	revenueSum := make(map[time.Weekday]float64)
	revenueCount := make(map[time.Weekday]int)
	for _, r := range d.Records {
		revenueSum[r.Date.Weekday()] += r.Revenue
		revenueCount[r.Date.Weekday()]++
	}

	byDay := make(map[time.Weekday]float64, len(revenueSum))
	var best, worst time.Weekday
	first := true
	for day := range revenueSum {
		byDay[day] = revenueSum[day] / float64(revenueCount[day])
		if first || byDay[day] > byDay[best] {
			best = day
		}
		if first || byDay[day] < byDay[worst] {
			worst = day
		}
		first = false
	}

	insights := []string{fmt.Sprintf(
		"%s generates the highest average daily revenue at %s, while %s is the weakest at %s.",
		best.String(), utils.FormatINR(byDay[best]), worst.String(), utils.FormatINR(byDay[worst]),
	)}

	var weekendSum, weekdaySum float64
	var weekendDays, weekdayDays int
	for day, avg := range byDay {
		if day == time.Saturday || day == time.Sunday {
			weekendSum += avg
			weekendDays++
		} else {
			weekdaySum += avg
			weekdayDays++
		}
	}
	if weekendDays == 0 || weekdayDays == 0 {
		return insights
	}

	weekendAvg := weekendSum / float64(weekendDays)
	weekdayAvg := weekdaySum / float64(weekdayDays)

	if weekendAvg > weekdayAvg && weekdayAvg > 0 {
		diffPct := utils.RoundN((weekendAvg-weekdayAvg)/weekdayAvg*100, 1)
		insights = append(insights, fmt.Sprintf(
			"Weekend revenue exceeds weekday average by %.1f%%.", diffPct))
	} else if weekendAvg > 0 {
		diffPct := utils.RoundN((weekdayAvg-weekendAvg)/weekendAvg*100, 1)
		insights = append(insights, fmt.Sprintf(
			"Weekday revenue exceeds weekend average by %.1f%%.", diffPct))
	}

	return insights
}
