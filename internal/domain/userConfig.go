package domain

import (
	"time"
)

// DefaultCosts são os custos padrão pré-carregados no dashboard
type DefaultCosts struct {
	AdvertisingCost float64 `json:"advertisingCost"`
	ProductCost     float64 `json:"productCost"`
	ShippingCost    float64 `json:"shippingCost"`
}

// Preferences são as preferências de exibição do usuário
type Preferences struct {
	Currency   string `json:"currency"`
	DateFormat string `json:"dateFormat"`
}

// UserConfig é a configuração persistida por usuário
type UserConfig struct {
	UserID       string       `json:"user_id,omitempty"`
	DefaultCosts DefaultCosts `json:"defaultCosts"`
	Preferences  Preferences  `json:"preferences"`
	UpdatedAt    time.Time    `json:"updatedAt,omitempty"`
}

// NewDefaultUserConfig retorna a configuração padrão para usuários sem
// configuração salva
func NewDefaultUserConfig() *UserConfig {
	return &UserConfig{
		DefaultCosts: DefaultCosts{},
		Preferences: Preferences{
			Currency:   "ARS",
			DateFormat: "DD/MM/YYYY",
		},
	}
}
