package selling

import (
	tiendanubedomain "github.com/vfg2006/profit-manager-api/infrastructure/integrator/tiendanube/domain"
	"github.com/vfg2006/profit-manager-api/internal/domain"
	"github.com/vfg2006/profit-manager-api/pkg/utils"
)

// AggregateOrders reduz os pedidos de um dia ao agregado de vendas.
// Todos os pedidos contam em TotalOrders; apenas pedidos pagos ou
// fechados contam em PaidOrders e nos totais monetários. Valores
// malformados contribuem com zero sem excluir o pedido da contagem.
// O arredondamento para 2 casas acontece uma única vez, sobre as somas,
// para não acumular erro de arredondamento por pedido.
func AggregateOrders(orders []tiendanubedomain.Order) *domain.DailySalesAggregate {
	var totalSales, totalShipping float64
	paidOrders := 0

	for _, order := range orders {
		if !order.IsPaid() {
			continue
		}

		paidOrders++
		totalSales += order.Total.Float()
		totalShipping += order.ShippingCost.Float()
	}

	return &domain.DailySalesAggregate{
		TotalOrders:   len(orders),
		PaidOrders:    paidOrders,
		TotalSales:    utils.RoundWithTwoDecimalPlace(totalSales),
		TotalShipping: utils.RoundWithTwoDecimalPlace(totalShipping),
	}
}
