package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-manager-api/infrastructure/repository"
	"github.com/vfg2006/profit-manager-api/internal/config"
)

// CacheCleanupConfig representa a configuração do agendador de limpeza do cache de vendas
type CacheCleanupConfig struct {
	CronSchedule   string
	RetentionDays  int
	CleanupEnabled bool
}

// CacheCleanupService gerencia o agendamento e execução da limpeza dos dados
// de vendas e cálculos mais antigos do que o período de retenção
type CacheCleanupService struct {
	scheduler              *gocron.Scheduler
	config                 CacheCleanupConfig
	salesCacheRepo         repository.SalesCacheRepository
	calculationRepo        repository.CalculationRepository
	cleanupRunning         bool
	cleanupMutex           sync.Mutex
	lastCleanupStartedAt   time.Time
	lastCleanupCompletedAt time.Time
}

// NewCacheCleanupService cria uma nova instância do serviço de limpeza de cache
func NewCacheCleanupService(
	salesCacheRepo repository.SalesCacheRepository,
	calculationRepo repository.CalculationRepository,
	appConfig *config.Config,
) *CacheCleanupService {
	cleanupConfig := CacheCleanupConfig{
		CronSchedule:   appConfig.CacheCleanup.CronSchedule,
		RetentionDays:  appConfig.CacheCleanup.RetentionDays,
		CleanupEnabled: appConfig.CacheCleanup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   cleanupConfig.CronSchedule,
		"retention_days":  cleanupConfig.RetentionDays,
		"cleanup_enabled": cleanupConfig.CleanupEnabled,
	}).Info("Configuração do agendador de limpeza de cache carregada")

	return &CacheCleanupService{
		scheduler:       scheduler,
		config:          cleanupConfig,
		salesCacheRepo:  salesCacheRepo,
		calculationRepo: calculationRepo,
		cleanupRunning:  false,
	}
}

// Start inicia o agendador
func (s *CacheCleanupService) Start(ctx context.Context) error {
	if !s.config.CleanupEnabled {
		logrus.Info("Limpeza de cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCleanup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de cache: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de cache")
		s.scheduler.Stop()
	}()

	return nil
}

// runCleanup remove do banco as entradas de cache de vendas e os cálculos
// mais antigos do que o período de retenção
func (s *CacheCleanupService) runCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de cache já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	startTime := time.Now()
	s.lastCleanupStartedAt = startTime

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	logrus.WithField("retention_days", s.config.RetentionDays).Info("Iniciando limpeza de cache de vendas")

	salesRemoved, err := s.salesCacheRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao limpar o cache de vendas")
	}

	calculationsRemoved, err := s.calculationRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao limpar os cálculos antigos")
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":             duration.String(),
		"sales_removed":        salesRemoved,
		"calculations_removed": calculationsRemoved,
		"retention_days":       s.config.RetentionDays,
	}).Info("Limpeza de cache concluída")

	s.lastCleanupCompletedAt = time.Now()
}

// TriggerManualCleanup inicia manualmente uma limpeza de cache
func (s *CacheCleanupService) TriggerManualCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de cache já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de cache")
	go s.runCleanup()
}

// GetStatus retorna o status atual do agendador
func (s *CacheCleanupService) GetStatus() map[string]any {
	return map[string]any{
		"cleanup_enabled":           s.config.CleanupEnabled,
		"cleanup_cron":              s.config.CronSchedule,
		"retention_days":            s.config.RetentionDays,
		"last_cleanup_started_at":   s.lastCleanupStartedAt,
		"last_cleanup_completed_at": s.lastCleanupCompletedAt,
	}
}
