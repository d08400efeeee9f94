package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// StoreSession representa uma loja autenticada via OAuth da Tiendanube.
// O token de acesso é tratado como uma credencial opaca.
type StoreSession struct {
	UserID      string    `json:"user_id"`
	StoreID     string    `json:"store_id"`
	StoreName   string    `json:"store_name"`
	AccessToken string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Claims struct {
	UserID    string
	StoreID   string
	StoreName string
	jwt.RegisteredClaims
}
