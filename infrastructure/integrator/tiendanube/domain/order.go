package tiendanubedomain

import (
	"strconv"
	"strings"
	"time"
)

// Status de pedido que contam como venda. "closed" é contabilizado como
// pago por semântica herdada da própria Tiendanube.
const (
	OrderStatusPaid   = "paid"
	OrderStatusClosed = "closed"
)

// Amount é um valor monetário tolerante: a API da Tiendanube retorna
// valores como número ou como string numérica, e pedidos com campos
// malformados não podem abortar a agregação.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		s = ""
	}

	*a = Amount(s)
	return nil
}

// Float converte o valor para float64, tratando valores malformados ou
// ausentes como zero
func (a Amount) Float() float64 {
	value, err := strconv.ParseFloat(string(a), 64)
	if err != nil {
		return 0
	}

	return value
}

// Order representa um pedido retornado pela API da Tiendanube.
// Somente os campos usados pela agregação são mapeados.
type Order struct {
	ID           int64  `json:"id,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	Status       string `json:"status,omitempty"`
	Total        Amount `json:"total,omitempty"`
	ShippingCost Amount `json:"shipping_cost,omitempty"`
	Currency     string `json:"currency,omitempty"`
}

// IsPaid indica se o pedido conta para as métricas de venda
func (o Order) IsPaid() bool {
	return o.Status == OrderStatusPaid || o.Status == OrderStatusClosed
}

// CreatedDate retorna a data de criação do pedido truncada para o dia em
// UTC. O segundo retorno é falso quando o timestamp não pode ser lido.
func (o Order) CreatedDate() (time.Time, bool) {
	createdAt, err := time.Parse(time.RFC3339, o.CreatedAt)
	if err != nil {
		return time.Time{}, false
	}

	createdAt = createdAt.UTC()

	return time.Date(createdAt.Year(), createdAt.Month(), createdAt.Day(), 0, 0, 0, 0, time.UTC), true
}

type GetOrdersParams struct {
	AccessToken string
	StoreID     string
}

type CheckConnectionParams struct {
	AccessToken string
}
