package domain

// Tipos de recomendação
const (
	RecommendationSuccess = "success"
	RecommendationWarning = "warning"
	RecommendationInfo    = "info"
)

// Prioridades de recomendação
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Recommendation é uma mensagem de orientação derivada do resultado de
// rentabilidade. A ordem de geração é a ordem de exibição.
type Recommendation struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}
