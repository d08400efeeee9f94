package tiendanubeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	tiendanubedomain "github.com/vfg2006/profit-manager-api/infrastructure/integrator/tiendanube/domain"
)

// ExchangeCode troca o código de autorização OAuth por um access token
func (c *TiendanubeClient) ExchangeCode(code string) (*tiendanubedomain.Token, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", c.config.Tiendanube.ClientID)
	form.Set("client_secret", c.config.Tiendanube.ClientSecret)
	form.Set("code", code)
	form.Set("redirect_uri", c.config.Tiendanube.RedirectURI)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.config.Tiendanube.TokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição de token falhou com status: %s", resp.Status)
	}

	var token tiendanubedomain.Token
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if token.AccessToken == "" {
		return nil, fmt.Errorf("resposta de token sem access_token")
	}

	return &token, nil
}
