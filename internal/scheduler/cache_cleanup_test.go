package scheduler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profit-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/profit-manager-api/internal/config"
	"go.uber.org/mock/gomock"
)

func newTestCleanupService(t *testing.T, retentionDays int) (*CacheCleanupService, *mocks.MockSalesCacheRepository, *mocks.MockCalculationRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSalesCacheRepo := mocks.NewMockSalesCacheRepository(ctrl)
	mockCalculationRepo := mocks.NewMockCalculationRepository(ctrl)

	cfg := &config.Config{
		CacheCleanup: config.CacheCleanup{
			CronSchedule:  "0 5 * * *",
			RetentionDays: retentionDays,
			Enabled:       true,
		},
	}

	service := NewCacheCleanupService(mockSalesCacheRepo, mockCalculationRepo, cfg)

	return service, mockSalesCacheRepo, mockCalculationRepo
}

func TestCacheCleanupService_runCleanup(t *testing.T) {
	t.Run("Remove vendas e cálculos além da retenção", func(t *testing.T) {
		service, mockSalesCacheRepo, mockCalculationRepo := newTestCleanupService(t, 7)

		mockSalesCacheRepo.EXPECT().
			DeleteOlderThan(7).
			Return(int64(12), nil)

		mockCalculationRepo.EXPECT().
			DeleteOlderThan(7).
			Return(int64(4), nil)

		service.runCleanup()

		assert.False(t, service.lastCleanupStartedAt.IsZero())
		assert.False(t, service.lastCleanupCompletedAt.IsZero())
	})

	t.Run("Falha na limpeza de vendas não impede a limpeza de cálculos", func(t *testing.T) {
		service, mockSalesCacheRepo, mockCalculationRepo := newTestCleanupService(t, 7)

		mockSalesCacheRepo.EXPECT().
			DeleteOlderThan(7).
			Return(int64(0), errors.New("banco indisponível"))

		mockCalculationRepo.EXPECT().
			DeleteOlderThan(7).
			Return(int64(2), nil)

		service.runCleanup()
	})
}

func TestCacheCleanupService_GetStatus(t *testing.T) {
	service, _, _ := newTestCleanupService(t, 14)

	status := service.GetStatus()
	assert.Equal(t, true, status["cleanup_enabled"])
	assert.Equal(t, "0 5 * * *", status["cleanup_cron"])
	assert.Equal(t, 14, status["retention_days"])
}
