package calculating

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profit-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/profit-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Compute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCalculationRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Entradas válidas - calcula e recomenda", func(t *testing.T) {
		aggregate := &domain.DailySalesAggregate{
			TotalSales:    1000.00,
			TotalShipping: 100.00,
		}
		costs := &domain.CostInputs{
			AdvertisingCost: floatPtr(50.00),
			ProductCost:     floatPtr(300.00),
			ShippingCost:    floatPtr(100.00),
		}

		result, recommendations, err := service.Compute(aggregate, costs)
		assert.NoError(t, err)
		assert.Equal(t, 450.00, result.Profitability)
		assert.True(t, result.IsProfitable)

		// Margem de 50% e ROI de 900% rendem apenas a recomendação de sucesso
		assert.Len(t, recommendations, 1)
		assert.Equal(t, "Excelente Rentabilidade", recommendations[0].Title)
	})

	t.Run("Validação falha - não calcula e retorna a lista completa", func(t *testing.T) {
		costs := &domain.CostInputs{
			AdvertisingCost: floatPtr(-10),
		}

		result, recommendations, err := service.Compute(nil, costs)
		assert.Nil(t, result)
		assert.Nil(t, recommendations)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{
			"Dados de vendas inválidos",
			"advertisingCost deve ser um número maior ou igual a 0",
		}, validationErr.Errors)
	})
}

func TestService_SaveCalculation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCalculationRepository(ctrl)
	service := NewService(mockRepo)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	result := &domain.ProfitabilityResult{Profitability: 450, IsProfitable: true}

	t.Run("Persiste a entrada chaveada por usuário e data", func(t *testing.T) {
		mockRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(entry *domain.CalculationEntry) error {
				assert.Equal(t, "store-1", entry.UserID)
				assert.Equal(t, date, entry.Date)
				assert.Equal(t, result, entry.Result)
				return nil
			})

		err := service.SaveCalculation("store-1", date, &domain.CostInputs{}, result, nil)
		assert.NoError(t, err)
	})

	t.Run("Propaga falha do repositório", func(t *testing.T) {
		mockRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(errors.New("banco indisponível"))

		err := service.SaveCalculation("store-1", date, &domain.CostInputs{}, result, nil)
		assert.Error(t, err)
	})
}

func TestService_ListCalculations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCalculationRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Sem datas - considera os últimos 30 dias", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByDateRange("store-1", gomock.Any(), gomock.Any()).
			DoAndReturn(func(userID string, start, end time.Time) ([]*domain.CalculationEntry, error) {
				assert.WithinDuration(t, time.Now().UTC(), end, time.Minute)
				assert.WithinDuration(t, end.AddDate(0, 0, -30), start, time.Minute)
				return []*domain.CalculationEntry{}, nil
			})

		entries, err := service.ListCalculations("store-1", nil, nil)
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Com datas explícitas - usa o período informado", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

		mockRepo.EXPECT().
			GetByDateRange("store-1", start, end).
			Return([]*domain.CalculationEntry{{UserID: "store-1"}}, nil)

		entries, err := service.ListCalculations("store-1", &start, &end)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
