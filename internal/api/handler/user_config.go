package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/profit-manager-api/internal/domain"
	"github.com/vfg2006/profit-manager-api/internal/usecases/configuring"
	"github.com/vfg2006/profit-manager-api/pkg/apiErrors"
	"github.com/vfg2006/profit-manager-api/pkg/log"
	"github.com/vfg2006/profit-manager-api/pkg/middleware"
)

// GetUserConfig retorna a configuração do usuário autenticado, com os
// valores padrão quando nenhuma configuração foi salva
func GetUserConfig(service configuring.Configurer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		cfg, err := service.Load(claims.UserID)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": claims.UserID,
				"error":   err.Error(),
			}).Error("config: failed to load user config")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar a configuração", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cfg); err != nil {
			logger.WithError(err).Error("config: failed to encode response")
		}
	})
}

// SaveUserConfig persiste a configuração do usuário autenticado
func SaveUserConfig(service configuring.Configurer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var cfg domain.UserConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		saved, err := service.Save(claims.UserID, &cfg)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": claims.UserID,
				"error":   err.Error(),
			}).Error("config: failed to save user config")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar a configuração", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(saved); err != nil {
			logger.WithError(err).Error("config: failed to encode response")
		}
	})
}
