package domain

// DateRange delimita o intervalo de datas presente em uma visão filtrada.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FilterMetadata descreve o efeito de um filtro sobre o dataset,
// independente da agregação calculada.
type FilterMetadata struct {
	TotalRecords    int        `json:"total_records"`
	OriginalRecords int        `json:"original_records"`
	DateRange       *DateRange `json:"date_range"`
	Hotels          int        `json:"hotels"`
	Channels        int        `json:"channels"`
	Segments        int        `json:"segments"`
}

// KPISummary é o resumo de indicadores do dashboard. Visões vazias
// retornam a struct zerada, nunca erro.
type KPISummary struct {
	TotalRevenue       float64 `json:"total_revenue"`
	TotalBookings      int     `json:"total_bookings"`
	AvgADR             float64 `json:"avg_adr"`
	AvgRevPAR          float64 `json:"avg_revpar"`
	AvgOccupancy       float64 `json:"avg_occupancy"`
	CancellationRate   float64 `json:"cancellation_rate"`
	TotalCancellations int     `json:"total_cancellations"`
	TotalRoomsSold     int     `json:"total_rooms_sold"`
}

// KPI é o resumo compacto dos endpoints legados.
type KPI struct {
	TotalRevenue       float64 `json:"total_revenue"`
	AvgOccupancy       float64 `json:"avg_occupancy"`
	AvgADR             float64 `json:"avg_adr"`
	AvgRevPAR          float64 `json:"avg_revpar"`
	TotalCancellations int     `json:"total_cancellations"`
}

// RevenueTrendPoint é um ponto da série de receita por data.
type RevenueTrendPoint struct {
	Date    string  `json:"Date"`
	Revenue float64 `json:"Revenue_INR"`
}

// OccupancyTrendPoint é um ponto da série de ocupação por data.
type OccupancyTrendPoint struct {
	Date      string  `json:"Date"`
	Occupancy float64 `json:"Occupancy_Rate"`
}

// HotelRevenue agrega métricas por hotel (endpoint legado, top 15).
type HotelRevenue struct {
	HotelID          string  `json:"Hotel_ID"`
	HotelName        string  `json:"Hotel_Name"`
	Revenue          float64 `json:"Revenue_INR"`
	Occupancy        float64 `json:"Occupancy_Rate"`
	ADR              float64 `json:"ADR_INR"`
	RevPAR           float64 `json:"RevPAR_INR"`
	Cancellations    int     `json:"Cancellation_Count"`
	PerformanceScore float64 `json:"Performance_Score"`
}

// ChannelRevenue agrega métricas por canal de reserva (endpoint legado).
type ChannelRevenue struct {
	BookingChannel  string  `json:"Booking_Channel"`
	Revenue         float64 `json:"Revenue_INR"`
	Occupancy       float64 `json:"Occupancy_Rate"`
	ADR             float64 `json:"ADR_INR"`
	RevPAR          float64 `json:"RevPAR_INR"`
	Cancellations   int     `json:"Cancellation_Count"`
	HotelCount      int     `json:"Hotel_Count"`
	EfficiencyScore float64 `json:"Efficiency_Score"`
	MarketShare     float64 `json:"Market_Share"`
}

// SegmentRevenue agrega receita por segmento de mercado.
type SegmentRevenue struct {
	MarketSegment string  `json:"Market_Segment"`
	Revenue       float64 `json:"Revenue_INR"`
	MarketShare   float64 `json:"Market_Share"`
}

// ScatterPoint é a projeção linha-a-linha usada no gráfico de dispersão.
type ScatterPoint struct {
	HotelID   string  `json:"Hotel_ID"`
	ADR       float64 `json:"ADR_INR"`
	Occupancy float64 `json:"Occupancy_Rate"`
	Revenue   float64 `json:"Revenue_INR"`
}

// ChannelCancellations soma cancelamentos por canal.
type ChannelCancellations struct {
	BookingChannel string `json:"Booking_Channel"`
	Cancellations  int    `json:"Cancellation_Count"`
}

// RevenueOverTimePoint é um balde de tempo com receita somada e ADR médio.
type RevenueOverTimePoint struct {
	Date    string  `json:"Date"`
	Revenue float64 `json:"Revenue_INR"`
	ADR     float64 `json:"ADR_INR"`
}

// OccupancyOverTimePoint traz a ocupação média do balde em 0-100.
type OccupancyOverTimePoint struct {
	Date      string  `json:"Date"`
	Occupancy float64 `json:"Occupancy_Rate"`
}

// ADROverTimePoint traz o ADR médio do balde.
type ADROverTimePoint struct {
	Date string  `json:"Date"`
	ADR  float64 `json:"ADR_INR"`
}

// CancellationsOverTimePoint traz cancelamentos somados e a taxa do balde.
type CancellationsOverTimePoint struct {
	Date             string  `json:"Date"`
	Cancellations    int     `json:"cancellations"`
	CancellationRate float64 `json:"cancellation_rate"`
}

// ChannelBookings agrega reservas por canal com participação percentual.
type ChannelBookings struct {
	BookingChannel string  `json:"Booking_Channel"`
	Bookings       int     `json:"bookings"`
	Revenue        float64 `json:"revenue"`
	Cancellations  int     `json:"cancellations"`
	SharePct       float64 `json:"share_pct"`
}

// SegmentBookings agrega reservas por segmento com participação percentual.
type SegmentBookings struct {
	MarketSegment string  `json:"Market_Segment"`
	Bookings      int     `json:"bookings"`
	Revenue       float64 `json:"revenue"`
	Cancellations int     `json:"cancellations"`
	AvgADR        float64 `json:"avg_adr"`
	SharePct      float64 `json:"share_pct"`
}

// HotelDashboardRevenue agrega receita por hotel para o dashboard (top N).
type HotelDashboardRevenue struct {
	HotelID      string  `json:"Hotel_ID"`
	Revenue      float64 `json:"revenue"`
	Bookings     int     `json:"bookings"`
	AvgADR       float64 `json:"avg_adr"`
	AvgOccupancy float64 `json:"avg_occupancy"`
}

// FilterOptions lista os valores disponíveis para cada filtro.
type FilterOptions struct {
	Hotels       []string     `json:"hotels"`
	Channels     []string     `json:"channels"`
	Segments     []string     `json:"segments"`
	DateRange    OptionsRange `json:"date_range"`
	TotalRecords int          `json:"total_records"`
}

// OptionsRange delimita as datas mínima e máxima do dataset completo.
type OptionsRange struct {
	MinDate string `json:"min_date"`
	MaxDate string `json:"max_date"`
}

// FieldValidation separa os valores reconhecidos dos desconhecidos para
// um campo de filtro.
type FieldValidation struct {
	Valid   []string `json:"valid"`
	Invalid []string `json:"invalid"`
}

// FilterValidation é o relatório de validação de um conjunto de filtros
// contra os valores presentes no dataset.
type FilterValidation struct {
	Valid  bool                       `json:"valid"`
	Fields map[string]FieldValidation `json:"fields"`
}
