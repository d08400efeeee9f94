package calculating

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-manager-api/infrastructure/repository"
	"github.com/vfg2006/profit-manager-api/internal/domain"
)

// Período padrão de listagem quando o chamador não informa datas
const defaultListRangeDays = 30

// Calculator orquestra o pipeline de cálculo de rentabilidade:
// validação, cálculo e geração de recomendações, com persistência
// opcional dos resultados.
type Calculator interface {
	Compute(aggregate *domain.DailySalesAggregate, costs *domain.CostInputs) (*domain.ProfitabilityResult, []*domain.Recommendation, error)
	SaveCalculation(userID string, date time.Time, costs *domain.CostInputs, result *domain.ProfitabilityResult, recommendations []*domain.Recommendation) error
	ListCalculations(userID string, startDate, endDate *time.Time) ([]*domain.CalculationEntry, error)
}

type Service struct {
	calculationRepo repository.CalculationRepository
}

// NewService cria uma nova instância do serviço de cálculo
func NewService(calculationRepo repository.CalculationRepository) Calculator {
	return &Service{
		calculationRepo: calculationRepo,
	}
}

// Compute valida as entradas e, somente se válidas, calcula a
// rentabilidade e gera as recomendações. Em caso de violações, retorna
// um ValidationError com a lista completa e não tenta o cálculo.
func (s *Service) Compute(aggregate *domain.DailySalesAggregate, costs *domain.CostInputs) (*domain.ProfitabilityResult, []*domain.Recommendation, error) {
	validation := ValidateInputs(aggregate, costs)
	if !validation.IsValid {
		return nil, nil, NewValidationError(validation)
	}

	result := CalculateDailyProfitability(aggregate, costs)
	recommendations := GenerateRecommendations(result)

	return result, recommendations, nil
}

// SaveCalculation persiste o cálculo chaveado por usuário e data
func (s *Service) SaveCalculation(
	userID string,
	date time.Time,
	costs *domain.CostInputs,
	result *domain.ProfitabilityResult,
	recommendations []*domain.Recommendation,
) error {
	entry := &domain.CalculationEntry{
		UserID:          userID,
		Date:            date,
		Costs:           costs,
		Result:          result,
		Recommendations: recommendations,
	}

	if err := s.calculationRepo.SaveOrUpdate(entry); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"date":    date.Format(time.DateOnly),
		}).Error("Erro ao salvar cálculo de rentabilidade")
		return err
	}

	return nil
}

// ListCalculations retorna os cálculos persistidos do usuário no
// período informado. Sem datas, considera os últimos 30 dias.
func (s *Service) ListCalculations(userID string, startDate, endDate *time.Time) ([]*domain.CalculationEntry, error) {
	end := time.Now().UTC()
	if endDate != nil && !endDate.IsZero() {
		end = *endDate
	}

	start := end.AddDate(0, 0, -defaultListRangeDays)
	if startDate != nil && !startDate.IsZero() {
		start = *startDate
	}

	return s.calculationRepo.GetByDateRange(userID, start, end)
}
