package selling

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-manager-api/infrastructure/integrator/tiendanube"
	tiendanubedomain "github.com/vfg2006/profit-manager-api/infrastructure/integrator/tiendanube/domain"
	"github.com/vfg2006/profit-manager-api/infrastructure/repository"
	"github.com/vfg2006/profit-manager-api/internal/config"
	"github.com/vfg2006/profit-manager-api/internal/domain"
)

// DailySeller obtém o relatório de vendas de uma loja para uma data
type DailySeller interface {
	GetDailySales(userID, accessToken, storeID string, date time.Time) (*domain.DailySalesReport, error)
}

type Service struct {
	cfg               *config.Config
	tiendanubeService tiendanube.TiendanubeIntegrator
	salesCacheRepo    repository.SalesCacheRepository
	useCache          bool
}

// NewService cria uma nova instância do serviço de vendas diárias
func NewService(cfg *config.Config, tiendanubeService tiendanube.TiendanubeIntegrator) DailySeller {
	return &Service{
		cfg:               cfg,
		tiendanubeService: tiendanubeService,
		salesCacheRepo:    nil,   // Inicialmente null
		useCache:          false, // Inicialmente não usa cache
	}
}

// WithCache habilita o cache persistente de agregados de vendas
func (s *Service) WithCache(salesCacheRepo repository.SalesCacheRepository) *Service {
	s.salesCacheRepo = salesCacheRepo
	s.useCache = salesCacheRepo != nil
	return s
}

// GetDailySales retorna o agregado de vendas de uma data. Falhas na API
// da Tiendanube degradam para um agregado zerado com a flag Degraded,
// nunca para um erro propagado ao pipeline de cálculo.
func (s *Service) GetDailySales(userID, accessToken, storeID string, date time.Time) (*domain.DailySalesReport, error) {
	report := &domain.DailySalesReport{
		Date:    date,
		StoreID: storeID,
		Source:  domain.SalesSourceAPI,
	}

	isToday := date.Format(time.DateOnly) == time.Now().UTC().Format(time.DateOnly)

	// Tentar o cache primeiro. O dia corrente nunca é lido do cache
	// porque os pedidos ainda estão chegando.
	if s.useCache && !isToday {
		cached, err := s.salesCacheRepo.GetByUserIDAndDate(userID, date)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"user_id": userID,
				"date":    date.Format(time.DateOnly),
			}).Warn("Erro ao buscar agregado de vendas do cache")
		}

		if cached != nil && cached.Aggregate != nil {
			report.Aggregate = cached.Aggregate
			report.Source = domain.SalesSourceCache
			return report, nil
		}
	}

	params := tiendanubedomain.GetOrdersParams{
		AccessToken: accessToken,
		StoreID:     storeID,
	}

	orders, err := s.tiendanubeService.GetOrdersByDate(params, date)
	if err != nil {
		// Política de degradar para zero: a falha é registrada e
		// sinalizada no relatório, e o agregado segue vazio.
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id":  userID,
			"store_id": storeID,
			"date":     date.Format(time.DateOnly),
		}).Error("Erro ao obter pedidos da Tiendanube, degradando para agregado zerado")

		report.Aggregate = &domain.DailySalesAggregate{}
		report.Degraded = true
		return report, nil
	}

	report.Aggregate = AggregateOrders(orders)

	// Salvar no cache, exceto o dia corrente. Falha de persistência não
	// impede a resposta da requisição atual.
	if s.useCache && !isToday {
		entry := &domain.SalesCacheEntry{
			UserID:    userID,
			Date:      date,
			Aggregate: report.Aggregate,
		}

		if err := s.salesCacheRepo.SaveOrUpdate(entry); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"user_id": userID,
				"date":    date.Format(time.DateOnly),
			}).Warn("Erro ao salvar agregado de vendas no cache")
		}
	}

	return report, nil
}
