package domain

import (
	"time"
)

// Fontes possíveis de um relatório de vendas diárias
const (
	SalesSourceAPI   = "api"
	SalesSourceCache = "cache"
)

// DailySalesAggregate resume os pedidos de uma data em contagens e totais monetários.
// Os valores monetários são arredondados para 2 casas decimais na agregação.
type DailySalesAggregate struct {
	TotalOrders   int     `json:"totalOrders"`
	PaidOrders    int     `json:"paidOrders"`
	TotalSales    float64 `json:"totalSales"`
	TotalShipping float64 `json:"totalShipping"`
}

// DailySalesReport é a resposta do serviço de vendas diárias.
// Degraded indica que a busca na API falhou e o agregado foi zerado,
// distinguindo "nenhuma venda na data" de "falha na consulta".
type DailySalesReport struct {
	Date      time.Time            `json:"-"`
	StoreID   string               `json:"storeId"`
	Aggregate *DailySalesAggregate `json:"data"`
	Source    string               `json:"source"`
	Degraded  bool                 `json:"degraded"`
}

// SalesCacheEntry representa um agregado de vendas armazenado no banco
type SalesCacheEntry struct {
	ID        int64                `json:"id"`
	UserID    string               `json:"user_id"`
	Date      time.Time            `json:"date"`
	Aggregate *DailySalesAggregate `json:"aggregate"`
	CachedAt  time.Time            `json:"cached_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}
