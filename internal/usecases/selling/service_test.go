package selling

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	tiendanubedomain "github.com/vfg2006/profit-manager-api/infrastructure/integrator/tiendanube/domain"
	tiendanubemocks "github.com/vfg2006/profit-manager-api/infrastructure/integrator/tiendanube/mocks"
	"github.com/vfg2006/profit-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/profit-manager-api/internal/config"
	"github.com/vfg2006/profit-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetDailySales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pastDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		setup    func(integrator *tiendanubemocks.MockTiendanubeIntegrator, cacheRepo *mocks.MockSalesCacheRepository)
		validate func(t *testing.T, report *domain.DailySalesReport, err error)
	}{
		{
			name: "Cache hit em data passada - não consulta a API",
			date: pastDate,
			setup: func(integrator *tiendanubemocks.MockTiendanubeIntegrator, cacheRepo *mocks.MockSalesCacheRepository) {
				cacheRepo.EXPECT().
					GetByUserIDAndDate("store-1", pastDate).
					Return(&domain.SalesCacheEntry{
						UserID: "store-1",
						Date:   pastDate,
						Aggregate: &domain.DailySalesAggregate{
							TotalOrders:   5,
							PaidOrders:    3,
							TotalSales:    1500.00,
							TotalShipping: 150.00,
						},
					}, nil)
			},
			validate: func(t *testing.T, report *domain.DailySalesReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.SalesSourceCache, report.Source)
				assert.False(t, report.Degraded)
				assert.Equal(t, 3, report.Aggregate.PaidOrders)
				assert.Equal(t, 1500.00, report.Aggregate.TotalSales)
			},
		},
		{
			name: "Cache miss - busca na API e persiste o agregado",
			date: pastDate,
			setup: func(integrator *tiendanubemocks.MockTiendanubeIntegrator, cacheRepo *mocks.MockSalesCacheRepository) {
				cacheRepo.EXPECT().
					GetByUserIDAndDate("store-1", pastDate).
					Return(nil, nil)

				integrator.EXPECT().
					GetOrdersByDate(gomock.Any(), pastDate).
					Return([]tiendanubedomain.Order{
						{Status: "paid", Total: "100.00", ShippingCost: "10.00"},
						{Status: "pending", Total: "50.00"},
					}, nil)

				cacheRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, report *domain.DailySalesReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.SalesSourceAPI, report.Source)
				assert.False(t, report.Degraded)
				assert.Equal(t, 2, report.Aggregate.TotalOrders)
				assert.Equal(t, 1, report.Aggregate.PaidOrders)
				assert.Equal(t, 100.00, report.Aggregate.TotalSales)
				assert.Equal(t, 10.00, report.Aggregate.TotalShipping)
			},
		},
		{
			name: "Falha na API degrada para agregado zerado, nunca para erro",
			date: pastDate,
			setup: func(integrator *tiendanubemocks.MockTiendanubeIntegrator, cacheRepo *mocks.MockSalesCacheRepository) {
				cacheRepo.EXPECT().
					GetByUserIDAndDate("store-1", pastDate).
					Return(nil, nil)

				integrator.EXPECT().
					GetOrdersByDate(gomock.Any(), pastDate).
					Return(nil, errors.New("timeout na API da Tiendanube"))
			},
			validate: func(t *testing.T, report *domain.DailySalesReport, err error) {
				assert.NoError(t, err)
				assert.True(t, report.Degraded)
				assert.Equal(t, &domain.DailySalesAggregate{}, report.Aggregate)
			},
		},
		{
			name: "Falha ao salvar no cache não impede a resposta",
			date: pastDate,
			setup: func(integrator *tiendanubemocks.MockTiendanubeIntegrator, cacheRepo *mocks.MockSalesCacheRepository) {
				cacheRepo.EXPECT().
					GetByUserIDAndDate("store-1", pastDate).
					Return(nil, nil)

				integrator.EXPECT().
					GetOrdersByDate(gomock.Any(), pastDate).
					Return([]tiendanubedomain.Order{
						{Status: "paid", Total: "200.00", ShippingCost: "20.00"},
					}, nil)

				cacheRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(errors.New("banco indisponível"))
			},
			validate: func(t *testing.T, report *domain.DailySalesReport, err error) {
				assert.NoError(t, err)
				assert.False(t, report.Degraded)
				assert.Equal(t, 200.00, report.Aggregate.TotalSales)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIntegrator := tiendanubemocks.NewMockTiendanubeIntegrator(ctrl)
			mockCacheRepo := mocks.NewMockSalesCacheRepository(ctrl)

			tt.setup(mockIntegrator, mockCacheRepo)

			service := NewService(&config.Config{}, mockIntegrator).(*Service).WithCache(mockCacheRepo)

			report, err := service.GetDailySales("store-1", "token", "1", tt.date)
			tt.validate(t, report, err)
		})
	}
}

func TestService_GetDailySales_DiaCorrenteIgnoraCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := tiendanubemocks.NewMockTiendanubeIntegrator(ctrl)
	mockCacheRepo := mocks.NewMockSalesCacheRepository(ctrl)

	today := time.Now().UTC().Truncate(24 * time.Hour)

	// Nenhuma chamada ao cache é esperada para o dia corrente
	mockIntegrator.EXPECT().
		GetOrdersByDate(gomock.Any(), today).
		Return([]tiendanubedomain.Order{
			{Status: "paid", Total: "300.00", ShippingCost: "30.00"},
		}, nil)

	service := NewService(&config.Config{}, mockIntegrator).(*Service).WithCache(mockCacheRepo)

	report, err := service.GetDailySales("store-1", "token", "1", today)
	assert.NoError(t, err)
	assert.Equal(t, domain.SalesSourceAPI, report.Source)
	assert.Equal(t, 300.00, report.Aggregate.TotalSales)
}
