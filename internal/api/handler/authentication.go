package handler

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/vfg2006/profit-manager-api/internal/config"
	"github.com/vfg2006/profit-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/profit-manager-api/pkg/apiErrors"
	"github.com/vfg2006/profit-manager-api/pkg/log"
)

type TestConnectionRequest struct {
	AccessToken string `json:"access_token"`
}

type TestConnectionResponse struct {
	Connected bool `json:"connected"`
}

// TiendanubeLogin redireciona o lojista para a página de autorização OAuth
// da Tiendanube
func TiendanubeLogin(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		authorizeURL, err := service.AuthorizeURL()
		if err != nil {
			logger.WithError(err).Error("auth: failed to build authorize URL")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar a URL de autorização", nil)
			return
		}

		http.Redirect(w, r, authorizeURL, http.StatusFound)
	}
}

// TiendanubeCallback conclui o fluxo OAuth da Tiendanube e redireciona o
// lojista de volta ao dashboard com os dados da sessão, ou com um
// parâmetro de erro quando o fluxo falha
func TiendanubeCallback(service authenticating.Authenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if oauthErr := r.URL.Query().Get("error"); oauthErr != "" {
			logger.WithField("oauth_error", oauthErr).Warn("auth: authorization denied by Tiendanube")
			redirectWithError(w, r, cfg.App.DashboardURL, "authorization_denied")
			return
		}

		code := r.URL.Query().Get("code")
		result, err := service.HandleCallback(code)
		if err != nil {
			logger.WithError(err).Error("auth: OAuth callback failed")

			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) && errors.Is(authErr.Err, authenticating.ErrMissingAuthCode) {
				redirectWithError(w, r, cfg.App.DashboardURL, "missing_code")
				return
			}

			redirectWithError(w, r, cfg.App.DashboardURL, "auth_failed")
			return
		}

		logger.WithFields(log.Fields{
			"user_id":    result.Session.UserID,
			"store_name": result.Session.StoreName,
		}).Info("auth: store authenticated successfully")

		params := url.Values{}
		params.Set("store_id", result.Session.StoreID)
		params.Set("store_name", result.Session.StoreName)
		params.Set("token", result.Token)

		http.Redirect(w, r, cfg.App.DashboardURL+"/?"+params.Encode(), http.StatusFound)
	}
}

// TestConnection verifica se um token de acesso alcança a API da Tiendanube
func TestConnection(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req TestConnectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.AccessToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O campo access_token é obrigatório", nil)
			return
		}

		connected, err := service.TestConnection(req.AccessToken)
		if err != nil {
			logger.WithError(err).Warn("auth: connection test failed")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(TestConnectionResponse{Connected: connected}); err != nil {
			logger.WithError(err).Error("auth: failed to encode response")
		}
	}
}

func redirectWithError(w http.ResponseWriter, r *http.Request, dashboardURL, code string) {
	params := url.Values{}
	params.Set("error", code)
	http.Redirect(w, r, dashboardURL+"/?"+params.Encode(), http.StatusFound)
}
