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
	salesCacheTable = "sales_cache sc"
)

type SalesCacheRepository interface {
	GetByUserIDAndDate(userID string, date time.Time) (*domain.SalesCacheEntry, error)
	SaveOrUpdate(entry *domain.SalesCacheEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type salesCacheRepository struct {
	conn *postgres.Connection
}

func NewSalesCacheRepository(conn *postgres.Connection) SalesCacheRepository {
	return &salesCacheRepository{
		conn: conn,
	}
}

func (r *salesCacheRepository) GetByUserIDAndDate(userID string, date time.Time) (*domain.SalesCacheEntry, error) {
	query, args, err := squirrel.
		Select("sc.id, sc.user_id, sc.date, sc.aggregate, sc.cached_at, sc.updated_at").
		From(salesCacheTable).
		Where(squirrel.Eq{"sc.user_id": userID, "sc.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cache de vendas: %w", err)
	}

	return entry, nil
}

func (r *salesCacheRepository) SaveOrUpdate(entry *domain.SalesCacheEntry) error {
	var aggregateJSON []byte
	var err error

	if entry.Aggregate != nil {
		aggregateJSON, err = json.Marshal(entry.Aggregate)
		if err != nil {
			return fmt.Errorf("erro ao serializar agregado para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("sales_cache").
		Columns("user_id", "date", "aggregate").
		Values(
			entry.UserID,
			entry.Date.Format(time.DateOnly),
			aggregateJSON,
		).
		Suffix(`
			ON CONFLICT (user_id, date) DO UPDATE SET
				aggregate = EXCLUDED.aggregate,
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

func (r *salesCacheRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("sales_cache").
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

func (r *salesCacheRepository) scanEntry(row *sql.Row) (*domain.SalesCacheEntry, error) {
	entry := &domain.SalesCacheEntry{}
	var aggregateJSON []byte

	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Date,
		&aggregateJSON,
		&entry.CachedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if aggregateJSON != nil {
		aggregate := &domain.DailySalesAggregate{}
		if err := json.Unmarshal(aggregateJSON, aggregate); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON do agregado: %w", err)
		}
		entry.Aggregate = aggregate
	}

	return entry, nil
}
