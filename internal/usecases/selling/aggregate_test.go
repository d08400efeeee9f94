package selling

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	tiendanubedomain "github.com/vfg2006/profit-manager-api/infrastructure/integrator/tiendanube/domain"
	"github.com/vfg2006/profit-manager-api/internal/domain"
)

func TestAggregateOrders(t *testing.T) {
	tests := []struct {
		name     string
		orders   []tiendanubedomain.Order
		expected *domain.DailySalesAggregate
	}{
		{
			name:   "Lista vazia de pedidos - agregado zerado",
			orders: []tiendanubedomain.Order{},
			expected: &domain.DailySalesAggregate{
				TotalOrders:   0,
				PaidOrders:    0,
				TotalSales:    0,
				TotalShipping: 0,
			},
		},
		{
			name: "Pedidos pagos e fechados contam nas vendas",
			orders: []tiendanubedomain.Order{
				{Status: "paid", Total: "1500.50", ShippingCost: "250.25"},
				{Status: "closed", Total: "2000.00", ShippingCost: "100.00"},
			},
			expected: &domain.DailySalesAggregate{
				TotalOrders:   2,
				PaidOrders:    2,
				TotalSales:    3500.50,
				TotalShipping: 350.25,
			},
		},
		{
			name: "Pedidos pendentes e cancelados contam apenas no total de pedidos",
			orders: []tiendanubedomain.Order{
				{Status: "paid", Total: "1000.00", ShippingCost: "50.00"},
				{Status: "pending", Total: "9999.99", ShippingCost: "999.99"},
				{Status: "cancelled", Total: "500.00", ShippingCost: "10.00"},
				{Status: "", Total: "100.00"},
			},
			expected: &domain.DailySalesAggregate{
				TotalOrders:   4,
				PaidOrders:    1,
				TotalSales:    1000.00,
				TotalShipping: 50.00,
			},
		},
		{
			name: "Pedido pago com total malformado conta como pago e soma zero",
			orders: []tiendanubedomain.Order{
				{Status: "paid", Total: "abc", ShippingCost: "10.00"},
				{Status: "paid", Total: "200.00", ShippingCost: ""},
			},
			expected: &domain.DailySalesAggregate{
				TotalOrders:   2,
				PaidOrders:    2,
				TotalSales:    200.00,
				TotalShipping: 10.00,
			},
		},
		{
			name: "Arredondamento acontece uma única vez sobre as somas",
			orders: []tiendanubedomain.Order{
				{Status: "paid", Total: "10.004", ShippingCost: "0.004"},
				{Status: "paid", Total: "10.004", ShippingCost: "0.004"},
			},
			expected: &domain.DailySalesAggregate{
				TotalOrders:   2,
				PaidOrders:    2,
				TotalSales:    20.01,
				TotalShipping: 0.01,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AggregateOrders(tt.orders)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAggregateOrders_OrderIndependente(t *testing.T) {
	orders := []tiendanubedomain.Order{
		{Status: "paid", Total: "100.10", ShippingCost: "10.01"},
		{Status: "pending", Total: "55.55", ShippingCost: "5.55"},
		{Status: "closed", Total: "200.20", ShippingCost: "20.02"},
		{Status: "cancelled", Total: "99.99"},
		{Status: "paid", Total: "abc", ShippingCost: "1.00"},
	}

	expected := AggregateOrders(orders)

	// O agregado não pode depender da ordem dos pedidos
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]tiendanubedomain.Order, len(orders))
		copy(shuffled, orders)
		rnd.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, expected, AggregateOrders(shuffled))
	}
}

func TestAggregateOrders_PaidNuncaExcedeTotal(t *testing.T) {
	orders := []tiendanubedomain.Order{
		{Status: "paid", Total: "10.00"},
		{Status: "pending", Total: "20.00"},
		{Status: "closed", Total: "30.00"},
	}

	result := AggregateOrders(orders)
	assert.LessOrEqual(t, result.PaidOrders, result.TotalOrders)
}
