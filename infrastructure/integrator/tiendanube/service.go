package tiendanube

import (
	"fmt"
	"net/url"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	tiendanubedomain "github.com/vfg2006/profit-manager-api/infrastructure/integrator/tiendanube/domain"
	"github.com/vfg2006/profit-manager-api/infrastructure/integrator/tiendanube/tiendanubeclient"
	"github.com/vfg2006/profit-manager-api/internal/config"
	"github.com/vfg2006/profit-manager-api/pkg/utils"
)

// TTLs do cache em memória da coleção de pedidos. Buscar todos os
// pedidos da loja é O(loja inteira), então chamadas próximas no tempo
// reutilizam a mesma resposta.
const (
	ordersCacheTTL     = 5 * time.Minute
	ordersCacheCleanup = 10 * time.Minute
)

type TiendanubeIntegrator interface {
	GetOrdersByDate(params tiendanubedomain.GetOrdersParams, date time.Time) ([]tiendanubedomain.Order, error)
	GetStoreInfo(accessToken string) (*tiendanubedomain.Store, error)
	ExchangeCode(code string) (*tiendanubedomain.Token, error)
	AuthorizeURL() (string, error)
	CheckConnection(params tiendanubedomain.CheckConnectionParams) (bool, error)
}

type TiendanubeService struct {
	cfg         *config.Config
	Client      tiendanubeclient.Client
	ordersCache *gocache.Cache
}

func New(cfg *config.Config, client tiendanubeclient.Client) TiendanubeIntegrator {
	return &TiendanubeService{
		cfg:         cfg,
		Client:      client,
		ordersCache: gocache.New(ordersCacheTTL, ordersCacheCleanup),
	}
}

// GetOrdersByDate retorna os pedidos da loja cuja data de criação,
// truncada para o dia em UTC, é igual à data alvo. A API não oferece
// filtro de data, então a coleção completa é buscada e filtrada aqui.
func (s *TiendanubeService) GetOrdersByDate(params tiendanubedomain.GetOrdersParams, date time.Time) ([]tiendanubedomain.Order, error) {
	if params.AccessToken == "" || params.StoreID == "" {
		return nil, fmt.Errorf("credencial e identificador da loja são obrigatórios")
	}

	if date.IsZero() {
		return nil, fmt.Errorf("é necessário informar uma data válida")
	}

	orders, err := s.getAllOrders(params)
	if err != nil {
		return nil, err
	}

	targetDate := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	ordersOfDay := make([]tiendanubedomain.Order, 0)
	for _, order := range orders {
		orderDate, ok := order.CreatedDate()
		if !ok {
			logrus.WithFields(logrus.Fields{
				"order_id":   order.ID,
				"created_at": order.CreatedAt,
			}).Warn("Pedido com data de criação ilegível, ignorando no filtro")
			continue
		}

		if orderDate.Equal(targetDate) {
			ordersOfDay = append(ordersOfDay, order)
		}
	}

	return ordersOfDay, nil
}

// getAllOrders busca a coleção completa de pedidos da loja, com cache
// em memória de curta duração por loja
func (s *TiendanubeService) getAllOrders(params tiendanubedomain.GetOrdersParams) ([]tiendanubedomain.Order, error) {
	cacheKey := fmt.Sprintf("orders_%s", params.StoreID)

	if cached, found := s.ordersCache.Get(cacheKey); found {
		if orders, ok := cached.([]tiendanubedomain.Order); ok {
			logrus.WithFields(logrus.Fields{
				"store_id":     params.StoreID,
				"orders_count": len(orders),
			}).Debug("Pedidos obtidos do cache em memória")
			return orders, nil
		}
	}

	resp, err := s.Client.GetOrders(tiendanubeclient.OrdersConsultationParams{
		AccessToken: params.AccessToken,
		StoreID:     params.StoreID,
	})
	if err != nil {
		return nil, err
	}

	orders := []tiendanubedomain.Order(resp)
	s.ordersCache.Set(cacheKey, orders, gocache.DefaultExpiration)

	return orders, nil
}

// GetStoreInfo busca as informações da loja para o token informado
func (s *TiendanubeService) GetStoreInfo(accessToken string) (*tiendanubedomain.Store, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("token de acesso é obrigatório")
	}

	return s.Client.GetStore(accessToken)
}

// ExchangeCode troca o código de autorização por um token de acesso
func (s *TiendanubeService) ExchangeCode(code string) (*tiendanubedomain.Token, error) {
	if code == "" {
		return nil, fmt.Errorf("código de autorização é obrigatório")
	}

	return s.Client.ExchangeCode(code)
}

// AuthorizeURL monta a URL de autorização OAuth da Tiendanube com um
// parâmetro de estado aleatório
func (s *TiendanubeService) AuthorizeURL() (string, error) {
	state, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar estado OAuth: %w", err)
	}

	query := url.Values{}
	query.Set("response_type", "code")
	query.Set("client_id", s.cfg.Tiendanube.ClientID)
	query.Set("redirect_uri", s.cfg.Tiendanube.RedirectURI)
	query.Set("scope", "read_orders,read_products,read_store")
	query.Set("state", state)

	return fmt.Sprintf("%s?%s", s.cfg.Tiendanube.AuthURL, query.Encode()), nil
}

// CheckConnection verifica se o token informado consegue acessar a loja
func (s *TiendanubeService) CheckConnection(params tiendanubedomain.CheckConnectionParams) (bool, error) {
	_, err := s.Client.GetStore(params.AccessToken)
	if err != nil {
		return false, err
	}

	return true, nil
}
