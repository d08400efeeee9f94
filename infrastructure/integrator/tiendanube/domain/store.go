package tiendanubedomain

import (
	"encoding/json"
)

// Store representa as informações básicas da loja retornadas pela API.
// O nome vem indexado por idioma ("es", "pt", ...).
type Store struct {
	ID      json.Number       `json:"id,omitempty"`
	Name    map[string]string `json:"name,omitempty"`
	Email   string            `json:"email,omitempty"`
	Country string            `json:"country,omitempty"`
	URL     string            `json:"url,omitempty"`
}

// MainName retorna o primeiro nome disponível da loja, priorizando espanhol
func (s Store) MainName() string {
	if name, ok := s.Name["es"]; ok && name != "" {
		return name
	}

	for _, name := range s.Name {
		if name != "" {
			return name
		}
	}

	return ""
}

// Token é a resposta do endpoint de troca de código OAuth
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
	UserID      int64  `json:"user_id"`
}
