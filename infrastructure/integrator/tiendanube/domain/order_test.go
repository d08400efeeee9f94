package tiendanubedomain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected float64
	}{
		{"Valor como string", `{"total": "1500.50"}`, 1500.50},
		{"Valor como número", `{"total": 1500.5}`, 1500.50},
		{"Valor como inteiro", `{"total": 1500}`, 1500},
		{"Valor nulo", `{"total": null}`, 0},
		{"Valor ausente", `{}`, 0},
		{"Valor malformado", `{"total": "abc"}`, 0},
		{"String vazia", `{"total": ""}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var order Order
			err := json.Unmarshal([]byte(tt.payload), &order)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, order.Total.Float())
		})
	}
}

func TestOrder_IsPaid(t *testing.T) {
	assert.True(t, Order{Status: "paid"}.IsPaid())
	assert.True(t, Order{Status: "closed"}.IsPaid())
	assert.False(t, Order{Status: "pending"}.IsPaid())
	assert.False(t, Order{Status: "cancelled"}.IsPaid())
	assert.False(t, Order{Status: ""}.IsPaid())
}

func TestOrder_CreatedDate(t *testing.T) {
	t.Run("Timestamp com fuso é truncado para o dia em UTC", func(t *testing.T) {
		// 23h de 15/01 em UTC-3 é 02h de 16/01 em UTC
		order := Order{CreatedAt: "2024-01-15T23:30:00-03:00"}

		date, ok := order.CreatedDate()
		assert.True(t, ok)
		assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("Timestamp ilegível retorna falso", func(t *testing.T) {
		order := Order{CreatedAt: "15/01/2024"}

		_, ok := order.CreatedDate()
		assert.False(t, ok)
	})

	t.Run("Timestamp vazio retorna falso", func(t *testing.T) {
		_, ok := Order{}.CreatedDate()
		assert.False(t, ok)
	})
}
