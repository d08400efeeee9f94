package tiendanubeclient

import (
	"net/http"
	"time"

	tiendanubedomain "github.com/vfg2006/profit-manager-api/infrastructure/integrator/tiendanube/domain"
	"github.com/vfg2006/profit-manager-api/internal/config"
)

type Client interface {
	GetOrders(params OrdersConsultationParams) (OrdersConsultationResponse, error)
	GetStore(accessToken string) (*tiendanubedomain.Store, error)
	ExchangeCode(code string) (*tiendanubedomain.Token, error)
}

type TiendanubeClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API da Tiendanube
func NewClient(cfg *config.Config) Client {
	return &TiendanubeClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
