package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Telegram         Telegram         `mapstructure:",squash"`
	Notification     Notification     `mapstructure:",squash"`
	PaymentReminders PaymentReminders `mapstructure:",squash"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
}

// Telegram concentra a única credencial do bot usada por todas as notificações
type Telegram struct {
	BaseURL      string        `mapstructure:"telegram_base_url"`
	BotToken     string        `mapstructure:"telegram_bot_token"`
	AdminChatID  string        `mapstructure:"telegram_admin_chat_id"`
	BusinessName string        `mapstructure:"telegram_business_name"`
	ContactPhone string        `mapstructure:"telegram_contact_phone"`
	Timeout      time.Duration `mapstructure:"telegram_timeout"`
}

type Notification struct {
	Enabled        bool          `mapstructure:"notification_enabled"`
	AttemptTimeout time.Duration `mapstructure:"notification_attempt_timeout"`
	MaxAttempts    uint          `mapstructure:"notification_max_attempts"`
	RetryInterval  time.Duration `mapstructure:"notification_retry_interval"`
	MaxRetryAfter  time.Duration `mapstructure:"notification_max_retry_after"`
}

type PaymentReminders struct {
	CronSchedule  string        `mapstructure:"payment_reminders_cron"`
	Enabled       bool          `mapstructure:"payment_reminders_enabled"`
	PacingDelay   time.Duration `mapstructure:"payment_reminders_pacing_delay"`
	DueDay        int           `mapstructure:"payment_reminders_due_day"`
	MonthLookBack int           `mapstructure:"payment_reminders_month_lookback"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dairy?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")

	viper.SetDefault("TELEGRAM_BASE_URL", "https://api.telegram.org")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_ADMIN_CHAT_ID", "")
	viper.SetDefault("TELEGRAM_BUSINESS_NAME", "SUDHA SAGAR DAIRY")
	viper.SetDefault("TELEGRAM_CONTACT_PHONE", "")
	viper.SetDefault("TELEGRAM_TIMEOUT", "10s")

	viper.SetDefault("NOTIFICATION_ENABLED", true)
	viper.SetDefault("NOTIFICATION_ATTEMPT_TIMEOUT", "10s")
	viper.SetDefault("NOTIFICATION_MAX_ATTEMPTS", 3)
	viper.SetDefault("NOTIFICATION_RETRY_INTERVAL", "500ms")
	viper.SetDefault("NOTIFICATION_MAX_RETRY_AFTER", "30s")

	// Lembretes de pagamento: dia 1 de cada mês às 9h, referentes ao mês anterior,
	// com 1 segundo entre envios e vencimento no dia 5 do mês seguinte
	viper.SetDefault("PAYMENT_REMINDERS_CRON", "0 9 1 * *")
	viper.SetDefault("PAYMENT_REMINDERS_ENABLED", false)
	viper.SetDefault("PAYMENT_REMINDERS_PACING_DELAY", "1s")
	viper.SetDefault("PAYMENT_REMINDERS_DUE_DAY", 5)
	viper.SetDefault("PAYMENT_REMINDERS_MONTH_LOOKBACK", 1)

	viper.SetDefault("LOG_LEVEL", "debug")
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

	if config.Telegram.BotToken == "" {
		logrus.Warn("TELEGRAM_BOT_TOKEN não configurado, notificações serão desativadas")
		config.Notification.Enabled = false
	}

	if config.PaymentReminders.DueDay < 1 || config.PaymentReminders.DueDay > 28 {
		return nil, fmt.Errorf("PAYMENT_REMINDERS_DUE_DAY inválido: %d", config.PaymentReminders.DueDay)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
