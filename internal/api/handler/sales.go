package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/profit-manager-api/internal/domain"
	"github.com/vfg2006/profit-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/profit-manager-api/internal/usecases/selling"
	"github.com/vfg2006/profit-manager-api/pkg/apiErrors"
	"github.com/vfg2006/profit-manager-api/pkg/log"
	"github.com/vfg2006/profit-manager-api/pkg/middleware"
)

// DailySalesResponse é o envelope da resposta de vendas diárias
type DailySalesResponse struct {
	Date string `json:"date"`
	*domain.DailySalesReport
}

// GetDailySales retorna o agregado de vendas da loja autenticada para a
// data informada no path
func GetDailySales(service selling.DailySeller, authService authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		dateStr := httprouter.ParamsFromContext(r.Context()).ByName("date")
		date, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": claims.UserID,
				"date":    dateStr,
			}).Warn("sales: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		session, err := authService.GetSession(claims.UserID)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": claims.UserID,
				"error":   err.Error(),
			}).Error("sales: failed to load store session")

			writeAuthError(w, err)
			return
		}

		report, err := service.GetDailySales(claims.UserID, session.AccessToken, session.StoreID, date)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": claims.UserID,
				"date":    dateStr,
				"error":   err.Error(),
			}).Error("sales: failed to get daily sales")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao obter as vendas do dia", nil)
			return
		}

		logger.WithFields(log.Fields{
			"user_id":      claims.UserID,
			"date":         dateStr,
			"total_orders": report.Aggregate.TotalOrders,
			"source":       report.Source,
			"degraded":     report.Degraded,
		}).Info("sales: daily sales retrieved")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(DailySalesResponse{
			Date:             date.Format(time.DateOnly),
			DailySalesReport: report,
		}); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
		}
	})
}

// writeAuthError converte erros de autenticação em respostas de API
func writeAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
}
