package calculating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profit-manager-api/internal/domain"
)

func TestGenerateRecommendations(t *testing.T) {
	tests := []struct {
		name           string
		result         *domain.ProfitabilityResult
		expectedTitles []string
	}{
		{
			name:           "Resultado nulo - lista vazia",
			result:         nil,
			expectedTitles: []string{},
		},
		{
			name: "Prejuízo com margem e ROI baixos - três recomendações em ordem fixa",
			result: &domain.ProfitabilityResult{
				Profitability:  -100,
				ProfitMargin:   -50,
				AdvertisingROI: -100,
				IsProfitable:   false,
			},
			expectedTitles: []string{
				"Rentabilidade Negativa",
				"Margem Baixa",
				"ROI de Publicidade Baixo",
			},
		},
		{
			name: "Rentabilidade saudável com ROI alto - apenas sucesso",
			result: &domain.ProfitabilityResult{
				Profitability:  500,
				ProfitMargin:   50,
				AdvertisingROI: 900,
				IsProfitable:   true,
			},
			expectedTitles: []string{
				"Excelente Rentabilidade",
			},
		},
		{
			name: "Rentável com margem baixa e ROI baixo",
			result: &domain.ProfitabilityResult{
				Profitability:  50,
				ProfitMargin:   5,
				AdvertisingROI: 50,
				IsProfitable:   true,
			},
			expectedTitles: []string{
				"Margem Baixa",
				"ROI de Publicidade Baixo",
			},
		},
		{
			name: "Margem exatamente no limiar de 10% não dispara margem baixa",
			result: &domain.ProfitabilityResult{
				Profitability:  100,
				ProfitMargin:   10,
				AdvertisingROI: 200,
				IsProfitable:   true,
			},
			expectedTitles: []string{},
		},
		{
			name: "Margem exatamente em 20% não dispara excelente rentabilidade",
			result: &domain.ProfitabilityResult{
				Profitability:  100,
				ProfitMargin:   20,
				AdvertisingROI: 150,
				IsProfitable:   true,
			},
			expectedTitles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recommendations := GenerateRecommendations(tt.result)

			titles := make([]string, 0, len(recommendations))
			for _, rec := range recommendations {
				titles = append(titles, rec.Title)
			}

			assert.Equal(t, tt.expectedTitles, titles)
		})
	}
}

func TestGenerateRecommendations_TiposEPrioridades(t *testing.T) {
	result := &domain.ProfitabilityResult{
		Profitability:  -100,
		ProfitMargin:   -50,
		AdvertisingROI: -100,
		IsProfitable:   false,
	}

	recommendations := GenerateRecommendations(result)
	assert.Len(t, recommendations, 3)

	assert.Equal(t, domain.RecommendationWarning, recommendations[0].Type)
	assert.Equal(t, domain.PriorityHigh, recommendations[0].Priority)

	assert.Equal(t, domain.RecommendationInfo, recommendations[1].Type)
	assert.Equal(t, domain.PriorityMedium, recommendations[1].Priority)

	assert.Equal(t, domain.RecommendationInfo, recommendations[2].Type)
	assert.Equal(t, domain.PriorityMedium, recommendations[2].Priority)
}
