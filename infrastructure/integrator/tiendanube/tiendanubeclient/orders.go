package tiendanubeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	tiendanubedomain "github.com/vfg2006/profit-manager-api/infrastructure/integrator/tiendanube/domain"
)

type OrdersConsultationParams struct {
	AccessToken string
	StoreID     string
}

type OrdersConsultationResponse []tiendanubedomain.Order

// GetOrders busca todos os pedidos da loja. A API da Tiendanube não
// oferece filtro de data no servidor, então a coleção completa é
// retornada e o filtro acontece no chamador.
func (c *TiendanubeClient) GetOrders(params OrdersConsultationParams) (OrdersConsultationResponse, error) {
	var response OrdersConsultationResponse

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Tiendanube.APIURL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, fmt.Sprintf("/stores/%s/orders", params.StoreID))

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	// Adicionar cabeçalhos necessários.
	req.Header.Set("Authorization", "bearer "+params.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
