package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	Dashboard      Dashboard      `mapstructure:",squash"`
	Forecast       Forecast       `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Dataset struct {
	CSVPath       string `mapstructure:"dataset_csv_path"`
	SyntheticDays int    `mapstructure:"dataset_synthetic_days"`
	SyntheticSeed int64  `mapstructure:"dataset_synthetic_seed"`
}

type Dashboard struct {
	DefaultTopN int `mapstructure:"dashboard_default_top_n"`
}

type Forecast struct {
	CacheTTLHours      int `mapstructure:"forecast_cache_ttl_hours"`
	MinHistoryDays     int `mapstructure:"forecast_min_history_days"`
	DefaultHorizonDays int `mapstructure:"forecast_default_horizon_days"`
	MaxHorizonDays     int `mapstructure:"forecast_max_horizon_days"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATASET_CSV_PATH", "data/intelligent_hotel_revenue_.csv")
	viper.SetDefault("DATASET_SYNTHETIC_DAYS", 90)
	viper.SetDefault("DATASET_SYNTHETIC_SEED", 42)

	viper.SetDefault("DASHBOARD_DEFAULT_TOP_N", 10)

	viper.SetDefault("FORECAST_CACHE_TTL_HOURS", 24)
	viper.SetDefault("FORECAST_MIN_HISTORY_DAYS", 30)
	viper.SetDefault("FORECAST_DEFAULT_HORIZON_DAYS", 30)
	viper.SetDefault("FORECAST_MAX_HORIZON_DAYS", 365)

	// Recarga diária do dataset às 3h, desabilitada por padrão
	viper.SetDefault("DATASET_REFRESH_CRON", "0 3 * * *")
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}
}
