package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/profit-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/profit-manager-api/internal/domain"
)

const (
	userConfigsTable = "user_configs uc"
)

type UserConfigRepository interface {
	GetByUserID(userID string) (*domain.UserConfig, error)
	SaveOrUpdate(config *domain.UserConfig) error
}

type userConfigRepository struct {
	conn *postgres.Connection
}

func NewUserConfigRepository(conn *postgres.Connection) UserConfigRepository {
	return &userConfigRepository{
		conn: conn,
	}
}

func (r *userConfigRepository) GetByUserID(userID string) (*domain.UserConfig, error) {
	query, args, err := squirrel.
		Select("uc.user_id, uc.default_costs, uc.preferences, uc.updated_at").
		From(userConfigsTable).
		Where(squirrel.Eq{"uc.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	config := &domain.UserConfig{}
	var defaultCostsJSON, preferencesJSON []byte

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&config.UserID,
		&defaultCostsJSON,
		&preferencesJSON,
		&config.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear configuração: %w", err)
	}

	if defaultCostsJSON != nil {
		if err := json.Unmarshal(defaultCostsJSON, &config.DefaultCosts); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de custos padrão: %w", err)
		}
	}

	if preferencesJSON != nil {
		if err := json.Unmarshal(preferencesJSON, &config.Preferences); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de preferências: %w", err)
		}
	}

	return config, nil
}

func (r *userConfigRepository) SaveOrUpdate(config *domain.UserConfig) error {
	defaultCostsJSON, err := json.Marshal(config.DefaultCosts)
	if err != nil {
		return fmt.Errorf("erro ao serializar custos padrão para JSON: %w", err)
	}

	preferencesJSON, err := json.Marshal(config.Preferences)
	if err != nil {
		return fmt.Errorf("erro ao serializar preferências para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("user_configs").
		Columns("user_id", "default_costs", "preferences").
		Values(
			config.UserID,
			defaultCostsJSON,
			preferencesJSON,
		).
		Suffix(`
			ON CONFLICT (user_id) DO UPDATE SET
				default_costs = EXCLUDED.default_costs,
				preferences = EXCLUDED.preferences,
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
