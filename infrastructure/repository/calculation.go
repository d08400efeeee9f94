package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/profit-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/profit-manager-api/internal/domain"
)

const (
	calculationsTable = "calculations c"
)

type CalculationRepository interface {
	GetByUserIDAndDate(userID string, date time.Time) (*domain.CalculationEntry, error)
	GetByDateRange(userID string, startDate, endDate time.Time) ([]*domain.CalculationEntry, error)
	SaveOrUpdate(entry *domain.CalculationEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type calculationRepository struct {
	conn *postgres.Connection
}

func NewCalculationRepository(conn *postgres.Connection) CalculationRepository {
	return &calculationRepository{
		conn: conn,
	}
}

func (r *calculationRepository) GetByUserIDAndDate(userID string, date time.Time) (*domain.CalculationEntry, error) {
	query, args, err := squirrel.
		Select("c.id, c.user_id, c.date, c.costs, c.result, c.recommendations, c.calculated_at, c.updated_at").
		From(calculationsTable).
		Where(squirrel.Eq{"c.user_id": userID, "c.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := scanCalculation(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cálculo: %w", err)
	}

	return entry, nil
}

func (r *calculationRepository) GetByDateRange(userID string, startDate, endDate time.Time) ([]*domain.CalculationEntry, error) {
	query, args, err := squirrel.
		Select("c.id, c.user_id, c.date, c.costs, c.result, c.recommendations, c.calculated_at, c.updated_at").
		From(calculationsTable).
		Where(squirrel.Eq{"c.user_id": userID}).
		Where(squirrel.GtOrEq{"c.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"c.date": endDate.Format(time.DateOnly)}).
		OrderBy("c.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.CalculationEntry, 0)
	for rows.Next() {
		entry, err := scanCalculationRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cálculos: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *calculationRepository) SaveOrUpdate(entry *domain.CalculationEntry) error {
	costsJSON, err := json.Marshal(entry.Costs)
	if err != nil {
		return fmt.Errorf("erro ao serializar custos para JSON: %w", err)
	}

	resultJSON, err := json.Marshal(entry.Result)
	if err != nil {
		return fmt.Errorf("erro ao serializar resultado para JSON: %w", err)
	}

	recommendationsJSON, err := json.Marshal(entry.Recommendations)
	if err != nil {
		return fmt.Errorf("erro ao serializar recomendações para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("calculations").
		Columns("user_id", "date", "costs", "result", "recommendations").
		Values(
			entry.UserID,
			entry.Date.Format(time.DateOnly),
			costsJSON,
			resultJSON,
			recommendationsJSON,
		).
		Suffix(`
			ON CONFLICT (user_id, date) DO UPDATE SET
				costs = EXCLUDED.costs,
				result = EXCLUDED.result,
				recommendations = EXCLUDED.recommendations,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *calculationRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("calculations").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

type calculationScanner interface {
	Scan(dest ...any) error
}

func scanCalculation(row calculationScanner) (*domain.CalculationEntry, error) {
	entry := &domain.CalculationEntry{}
	var costsJSON, resultJSON, recommendationsJSON []byte

	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Date,
		&costsJSON,
		&resultJSON,
		&recommendationsJSON,
		&entry.CalculatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if costsJSON != nil {
		costs := &domain.CostInputs{}
		if err := json.Unmarshal(costsJSON, costs); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de custos: %w", err)
		}
		entry.Costs = costs
	}

	if resultJSON != nil {
		result := &domain.ProfitabilityResult{}
		if err := json.Unmarshal(resultJSON, result); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON do resultado: %w", err)
		}
		entry.Result = result
	}

	if recommendationsJSON != nil {
		recommendations := make([]*domain.Recommendation, 0)
		if err := json.Unmarshal(recommendationsJSON, &recommendations); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de recomendações: %w", err)
		}
		entry.Recommendations = recommendations
	}

	return entry, nil
}

func scanCalculationRows(rows *sql.Rows) (*domain.CalculationEntry, error) {
	return scanCalculation(rows)
}
