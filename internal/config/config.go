package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	WeekRollover WeekRollover `mapstructure:",squash"`
	Seed         Seed         `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	SSLMode     string `mapstructure:"database_sslmode"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`
}

// Redis guarda os relatórios do dashboard. URL vazia desabilita o cache.
type Redis struct {
	URL string        `mapstructure:"redis_url"`
	TTL time.Duration `mapstructure:"redis_ttl"`
}

type Auth struct {
	Enabled       bool          `mapstructure:"auth_enabled"`
	Secret        string        `mapstructure:"auth_secret"`
	AdminUsername string        `mapstructure:"admin_username"`
	AdminPassword string        `mapstructure:"admin_password"`
	TokenTTL      time.Duration `mapstructure:"auth_token_ttl"`
}

type WeekRollover struct {
	CronSchedule string `mapstructure:"week_rollover_cron"`
	Enabled      bool   `mapstructure:"week_rollover_enabled"`
	StartWeekday string `mapstructure:"week_rollover_start_weekday"`
}

type Seed struct {
	Enabled  bool  `mapstructure:"seed_enabled"`
	RandSeed int64 `mapstructure:"seed_rand_seed"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/irbis")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REDIS_TTL", "5m")

	viper.SetDefault("AUTH_ENABLED", true)
	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "qwerty123") // ONLY LOCAL
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	// Defaults para criação automática das semanas
	viper.SetDefault("WEEK_ROLLOVER_CRON", "0 1 * * *") // Todos os dias à 1h da manhã
	viper.SetDefault("WEEK_ROLLOVER_ENABLED", false)
	viper.SetDefault("WEEK_ROLLOVER_START_WEEKDAY", "wednesday")

	viper.SetDefault("SEED_ENABLED", false)
	viper.SetDefault("SEED_RAND_SEED", 0)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Database.DSN = BuildDSN(config.Database)

	if _, err := ParseWeekday(config.WeekRollover.StartWeekday); err != nil {
		return nil, err
	}

	return config, nil
}

// BuildDSN monta a URL de conexão esperada pelo lib/pq
func BuildDSN(db Database) string {
	dsn := fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)

	if db.SSLMode != "" && !strings.Contains(db.URL, "sslmode=") {
		separator := "?"
		if strings.Contains(db.URL, "?") {
			separator = "&"
		}
		dsn = fmt.Sprintf("%s%ssslmode=%s", dsn, separator, db.SSLMode)
	}

	return dsn
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday aceita o nome do dia da semana em inglês, sem diferenciar maiúsculas
func ParseWeekday(name string) (time.Weekday, error) {
	weekday, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return time.Sunday, fmt.Errorf("config: dia da semana inválido %q", name)
	}
	return weekday, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Arquivo .env não encontrado, usando variáveis de ambiente do processo")
}
