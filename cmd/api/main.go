package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/profit-manager-api/infrastructure/integrator/tiendanube"
	"github.com/vfg2006/profit-manager-api/infrastructure/integrator/tiendanube/tiendanubeclient"
	"github.com/vfg2006/profit-manager-api/infrastructure/repository"
	"github.com/vfg2006/profit-manager-api/internal/api"
	"github.com/vfg2006/profit-manager-api/internal/config"
	"github.com/vfg2006/profit-manager-api/internal/scheduler"
	"github.com/vfg2006/profit-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/profit-manager-api/internal/usecases/calculating"
	"github.com/vfg2006/profit-manager-api/internal/usecases/configuring"
	"github.com/vfg2006/profit-manager-api/internal/usecases/selling"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	sessionRepo := repository.NewSessionRepository(pgConn)
	salesCacheRepo := repository.NewSalesCacheRepository(pgConn)
	calculationRepo := repository.NewCalculationRepository(pgConn)
	userConfigRepo := repository.NewUserConfigRepository(pgConn)

	tiendanubeClient := tiendanubeclient.NewClient(cfg)
	tiendanubeIntegrator := tiendanube.New(cfg, tiendanubeClient)

	authenticator := authenticating.NewService(tiendanubeIntegrator, sessionRepo, cfg)

	// Inicializa o serviço de vendas com suporte a cache persistente
	sellingService := selling.NewService(cfg, tiendanubeIntegrator)
	cachedSellingService := sellingService.(*selling.Service).WithCache(salesCacheRepo)

	calcService := calculating.NewService(calculationRepo)
	configService := configuring.NewService(userConfigRepo)

	// Inicializa o agendador de limpeza de cache
	cacheCleanupService := scheduler.NewCacheCleanupService(salesCacheRepo, calculationRepo, cfg)

	if err := cacheCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de cache")
	} else {
		logrus.Info("Agendador de limpeza de cache iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		cachedSellingService,
		calcService,
		configService,
		authenticator,
		cacheCleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
