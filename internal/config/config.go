package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Tiendanube   Tiendanube   `mapstructure:",squash"`
	CacheCleanup CacheCleanup `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Tiendanube struct {
	APIURL       string `mapstructure:"tiendanube_api_url"`
	AuthURL      string `mapstructure:"tiendanube_auth_url"`
	TokenURL     string `mapstructure:"tiendanube_token_url"`
	ClientID     string `mapstructure:"tiendanube_client_id"`
	ClientSecret string `mapstructure:"tiendanube_client_secret"`
	RedirectURI  string `mapstructure:"tiendanube_redirect_uri"`
}

type App struct {
	LogLevel     string `mapstructure:"log_level"`
	DashboardURL string `mapstructure:"dashboard_url"`
}

type CacheCleanup struct {
	CronSchedule  string `mapstructure:"cache_cleanup_cron"`
	RetentionDays int    `mapstructure:"cache_cleanup_retention_days"`
	Enabled       bool   `mapstructure:"cache_cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/profit")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("TIENDANUBE_API_URL", "https://api.tiendanube.com/v1")
	viper.SetDefault("TIENDANUBE_AUTH_URL", "https://www.tiendanube.com/apps/authorize")
	viper.SetDefault("TIENDANUBE_TOKEN_URL", "https://api.tiendanube.com/v1/oauth/access_token")
	viper.SetDefault("TIENDANUBE_CLIENT_ID", "your_client_id")
	viper.SetDefault("TIENDANUBE_CLIENT_SECRET", "your_client_secret") // ONLY LOCAL
	viper.SetDefault("TIENDANUBE_REDIRECT_URI", "http://localhost:8000/v1/auth/callback/tiendanube")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("DASHBOARD_URL", "http://localhost:3000")

	// Defaults para limpeza de cache de vendas
	viper.SetDefault("CACHE_CLEANUP_CRON", "0 5 * * *")    // Todos os dias às 5h da manhã
	viper.SetDefault("CACHE_CLEANUP_RETENTION_DAYS", 7)    // Manter 7 dias de cache
	viper.SetDefault("CACHE_CLEANUP_ENABLED", true)        // Habilitar limpeza de cache

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
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
