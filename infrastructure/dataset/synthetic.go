package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/mohdanas86/hotelRevnue/internal/domain"
)

var (
	syntheticChannels = []string{"Direct", "OTA", "Corporate", "Travel Agent", "Website"}
	syntheticSegments = []string{"Business", "Leisure", "Corporate", "Group"}
)

// Synthetic gera um dataset com estrutura determinística e valores
// aleatórios com semente fixa, cobrindo os últimos `days` dias para um
// conjunto pequeno de hotéis. Mantém os componentes dependentes (inclusive
// a previsão, que exige pelo menos 30 datas) utilizáveis sem dados reais.
func Synthetic(days int, seed int64) *domain.Dataset {
	if days < 30 {
		days = 30
	}

	rng := rand.New(rand.NewSource(seed))
	today := time.Now().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -days+1)

	records := make([]domain.BookingRecord, 0, days*5)

	for day := 0; day < days; day++ {
		date := start.AddDate(0, 0, day)

		for hotel := 1; hotel <= 5; hotel++ {
			roomsAvailable := 80 + rng.Intn(120)
			occupancy := 0.35 + rng.Float64()*0.6
			roomsSold := int(math.Round(occupancy * float64(roomsAvailable)))
			adr := 2500 + rng.Float64()*6500
			revenue := adr * float64(roomsSold)

			records = append(records, domain.BookingRecord{
				Date:              date,
				HotelID:           fmt.Sprintf("H%03d", hotel),
				RoomsAvailable:    roomsAvailable,
				RoomsSold:         roomsSold,
				OccupancyRate:     occupancy,
				ADR:               adr,
				RevPAR:            revenue / float64(roomsAvailable),
				Revenue:           revenue,
				CancellationCount: rng.Intn(13),
				MarketSegment:     syntheticSegments[rng.Intn(len(syntheticSegments))],
				BookingChannel:    syntheticChannels[rng.Intn(len(syntheticChannels))],
			})
		}
	}

	return &domain.Dataset{Records: records}
}
