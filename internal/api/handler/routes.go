package handler

import (
	"net/http"

	"github.com/mohdanas86/hotelRevnue/internal/api/handler/router"
	"github.com/mohdanas86/hotelRevnue/internal/scheduler"
	"github.com/mohdanas86/hotelRevnue/internal/usecases/aggregating"
	"github.com/mohdanas86/hotelRevnue/internal/usecases/filtering"
	"github.com/mohdanas86/hotelRevnue/internal/usecases/forecasting"
	"github.com/mohdanas86/hotelRevnue/internal/usecases/insighting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: Root(),
		},
	}
}

func Analytics(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/kpi",
			Method:  http.MethodGet,
			Handler: GetKPIs(service),
		},
		{
			Path:    "/api/revenue-trend",
			Method:  http.MethodGet,
			Handler: GetRevenueTrend(service),
		},
		{
			Path:    "/api/occupancy-trend",
			Method:  http.MethodGet,
			Handler: GetOccupancyTrend(service),
		},
		{
			Path:    "/api/revenue-by-hotel",
			Method:  http.MethodGet,
			Handler: GetRevenueByHotel(service),
		},
		{
			Path:    "/api/revenue-by-channel",
			Method:  http.MethodGet,
			Handler: GetRevenueByChannel(service),
		},
		{
			Path:    "/api/market-segment",
			Method:  http.MethodGet,
			Handler: GetMarketSegmentShare(service),
		},
		{
			Path:    "/api/scatter",
			Method:  http.MethodGet,
			Handler: GetScatterData(service),
		},
		{
			Path:    "/api/cancellations-by-channel",
			Method:  http.MethodGet,
			Handler: GetCancellationsByChannel(service),
		},
	}
}

func Dashboard(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dashboard/summary",
			Method:  http.MethodGet,
			Handler: GetDashboardSummary(service),
		},
		{
			Path:    "/api/dashboard/revenue-over-time",
			Method:  http.MethodGet,
			Handler: GetRevenueOverTime(service),
		},
		{
			Path:    "/api/dashboard/occupancy-over-time",
			Method:  http.MethodGet,
			Handler: GetOccupancyOverTime(service),
		},
		{
			Path:    "/api/dashboard/adr-over-time",
			Method:  http.MethodGet,
			Handler: GetADROverTime(service),
		},
		{
			Path:    "/api/dashboard/cancellations-over-time",
			Method:  http.MethodGet,
			Handler: GetCancellationsOverTime(service),
		},
		{
			Path:    "/api/dashboard/bookings-by-channel",
			Method:  http.MethodGet,
			Handler: GetBookingsByChannel(service),
		},
		{
			Path:    "/api/dashboard/bookings-by-segment",
			Method:  http.MethodGet,
			Handler: GetBookingsBySegment(service),
		},
		{
			Path:    "/api/dashboard/revenue-by-hotel",
			Method:  http.MethodGet,
			Handler: GetDashboardRevenueByHotel(service),
		},
	}
}

func Forecasts(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:    "/api/revenue-forecast",
			Method:  http.MethodGet,
			Handler: GetRevenueForecast(service),
		},
		{
			Path:    "/api/occupancy-forecast",
			Method:  http.MethodGet,
			Handler: GetOccupancyForecast(service),
		},
		{
			Path:    "/api/forecast/clear-cache",
			Method:  http.MethodPost,
			Handler: ClearForecastCache(service),
		},
		{
			Path:    "/api/forecast/cache-status",
			Method:  http.MethodGet,
			Handler: GetForecastCacheStatus(service),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(service),
		},
		{
			Path:    "/api/insights/refresh",
			Method:  http.MethodPost,
			Handler: RefreshInsights(service),
		},
	}
}

func Filters(service filtering.FilterService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/filters/available",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
		{
			Path:    "/api/filters/options",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
		{
			Path:    "/api/filters/validate",
			Method:  http.MethodGet,
			Handler: ValidateFilters(service),
		},
	}
}

func DatasetRefresh(service *scheduler.DatasetRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dataset/refresh",
			Method:  http.MethodPost,
			Handler: TriggerDatasetRefresh(service),
		},
		{
			Path:    "/api/dataset/refresh/status",
			Method:  http.MethodGet,
			Handler: GetDatasetRefreshStatus(service),
		},
	}
}
