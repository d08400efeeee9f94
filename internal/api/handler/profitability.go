package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/profit-manager-api/internal/domain"
	"github.com/vfg2006/profit-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/profit-manager-api/internal/usecases/calculating"
	"github.com/vfg2006/profit-manager-api/internal/usecases/selling"
	"github.com/vfg2006/profit-manager-api/pkg/apiErrors"
	"github.com/vfg2006/profit-manager-api/pkg/log"
	"github.com/vfg2006/profit-manager-api/pkg/middleware"
	"github.com/vfg2006/profit-manager-api/pkg/utils"
)

// ProfitabilityResponse é o envelope da resposta do cálculo de rentabilidade
type ProfitabilityResponse struct {
	Date            string                      `json:"date"`
	Sales           *domain.DailySalesReport    `json:"sales"`
	Costs           *domain.CostInputs          `json:"costs"`
	Result          *domain.ProfitabilityResult `json:"result"`
	Recommendations []*domain.Recommendation    `json:"recommendations"`
	Degraded        bool                        `json:"degraded"`
}

// SaveCalculationRequest é o corpo para persistir um cálculo já realizado
type SaveCalculationRequest struct {
	Date            string                      `json:"date"`
	Costs           *domain.CostInputs          `json:"costs"`
	Result          *domain.ProfitabilityResult `json:"result"`
	Recommendations []*domain.Recommendation    `json:"recommendations"`
}

// ComputeProfitability busca as vendas da data, valida os custos
// informados, calcula a rentabilidade, gera as recomendações e persiste
// o resultado
func ComputeProfitability(
	sellingService selling.DailySeller,
	calcService calculating.Calculator,
	authService authenticating.Authenticator,
) http.Handler {
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
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		var costs domain.CostInputs
		if err := json.NewDecoder(r.Body).Decode(&costs); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		session, err := authService.GetSession(claims.UserID)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": claims.UserID,
				"error":   err.Error(),
			}).Error("profitability: failed to load store session")

			writeAuthError(w, err)
			return
		}

		report, err := sellingService.GetDailySales(claims.UserID, session.AccessToken, session.StoreID, date)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": claims.UserID,
				"date":    dateStr,
				"error":   err.Error(),
			}).Error("profitability: failed to get daily sales")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao obter as vendas do dia", nil)
			return
		}

		result, recommendations, err := calcService.Compute(report.Aggregate, &costs)
		if err != nil {
			var validationErr *calculating.ValidationError
			if errors.As(err, &validationErr) {
				logger.WithFields(log.Fields{
					"user_id": claims.UserID,
					"date":    dateStr,
					"errors":  validationErr.Errors,
				}).Warn("profitability: invalid inputs")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Entradas inválidas para o cálculo", validationErr.Errors)
				return
			}

			logger.WithError(err).Error("profitability: computation failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular a rentabilidade", nil)
			return
		}

		// Falha na persistência não invalida o cálculo já realizado
		if err := calcService.SaveCalculation(claims.UserID, date, &costs, result, recommendations); err != nil {
			logger.WithFields(log.Fields{
				"user_id": claims.UserID,
				"date":    dateStr,
				"error":   err.Error(),
			}).Warn("profitability: failed to persist calculation")
		}

		logger.WithFields(log.Fields{
			"user_id":       claims.UserID,
			"date":          dateStr,
			"profitability": result.Profitability,
			"is_profitable": result.IsProfitable,
			"degraded":      report.Degraded,
		}).Info("profitability: calculation completed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ProfitabilityResponse{
			Date:            date.Format(time.DateOnly),
			Sales:           report,
			Costs:           &costs,
			Result:          result,
			Recommendations: recommendations,
			Degraded:        report.Degraded,
		}); err != nil {
			logger.WithError(err).Error("profitability: failed to encode response")
		}
	})
}

// ListCalculations retorna os cálculos persistidos do usuário no período
// informado via query string (últimos 30 dias por padrão)
func ListCalculations(calcService calculating.Calculator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		startDate, err := parseOptionalDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := parseOptionalDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		calculations, err := calcService.ListCalculations(claims.UserID, startDate, endDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": claims.UserID,
				"error":   err.Error(),
			}).Error("profitability: failed to list calculations")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar os cálculos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(calculations); err != nil {
			logger.WithError(err).Error("profitability: failed to encode response")
		}
	})
}

// SaveCalculation persiste um cálculo já realizado pelo cliente
func SaveCalculation(calcService calculating.Calculator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req SaveCalculationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		date, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		if req.Result == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O campo result é obrigatório", nil)
			return
		}

		if err := calcService.SaveCalculation(claims.UserID, date, req.Costs, req.Result, req.Recommendations); err != nil {
			logger.WithFields(log.Fields{
				"user_id": claims.UserID,
				"date":    req.Date,
				"error":   err.Error(),
			}).Error("profitability: failed to save calculation")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar o cálculo", nil)
			return
		}

		w.WriteHeader(http.StatusCreated)
	})
}

// parseOptionalDate converte um parâmetro de data opcional; ausência não é erro
func parseOptionalDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}
	return utils.ParseDate(dateStr)
}
