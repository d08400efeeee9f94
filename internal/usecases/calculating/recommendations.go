package calculating

import (
	"github.com/vfg2006/profit-manager-api/internal/domain"
)

// Limiares fixos das regras de recomendação. São política do produto e
// precisam ser reproduzidos exatamente.
const (
	lowMarginThreshold     = 10.0
	lowROIThreshold        = 100.0
	healthyMarginThreshold = 20.0
)

// GenerateRecommendations aplica as regras de recomendação sobre o
// resultado de rentabilidade. As regras são avaliadas de forma
// independente e as recomendações são adicionadas em ordem fixa, que é
// a ordem de exibição. A lista pode ser vazia.
func GenerateRecommendations(result *domain.ProfitabilityResult) []*domain.Recommendation {
	recommendations := make([]*domain.Recommendation, 0)

	if result == nil {
		return recommendations
	}

	if !result.IsProfitable {
		recommendations = append(recommendations, &domain.Recommendation{
			Type:     domain.RecommendationWarning,
			Title:    "Rentabilidade Negativa",
			Message:  "Seu negócio está gerando perdas. Revise seus custos e preços.",
			Priority: domain.PriorityHigh,
		})
	}

	if result.ProfitMargin < lowMarginThreshold {
		recommendations = append(recommendations, &domain.Recommendation{
			Type:     domain.RecommendationInfo,
			Title:    "Margem Baixa",
			Message:  "Sua margem de rentabilidade é menor que 10%. Considere otimizar custos ou ajustar preços.",
			Priority: domain.PriorityMedium,
		})
	}

	if result.AdvertisingROI < lowROIThreshold {
		recommendations = append(recommendations, &domain.Recommendation{
			Type:     domain.RecommendationInfo,
			Title:    "ROI de Publicidade Baixo",
			Message:  "O retorno do seu investimento em publicidade é menor que 100%. Revise sua estratégia de marketing.",
			Priority: domain.PriorityMedium,
		})
	}

	if result.IsProfitable && result.ProfitMargin > healthyMarginThreshold {
		recommendations = append(recommendations, &domain.Recommendation{
			Type:     domain.RecommendationSuccess,
			Title:    "Excelente Rentabilidade",
			Message:  "Seu negócio está gerando uma rentabilidade saudável. Mantenha esse ritmo!",
			Priority: domain.PriorityLow,
		})
	}

	return recommendations
}
