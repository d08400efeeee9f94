package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/profit-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/profit-manager-api/internal/domain"
)

const (
	sessionsTable = "store_sessions ss"
)

type SessionRepository interface {
	GetByUserID(userID string) (*domain.StoreSession, error)
	SaveOrUpdate(session *domain.StoreSession) error
	Delete(userID string) error
}

type sessionRepository struct {
	conn *postgres.Connection
}

func NewSessionRepository(conn *postgres.Connection) SessionRepository {
	return &sessionRepository{
		conn: conn,
	}
}

func (r *sessionRepository) GetByUserID(userID string) (*domain.StoreSession, error) {
	query, args, err := squirrel.
		Select("ss.user_id, ss.store_id, ss.store_name, ss.access_token, ss.created_at, ss.updated_at").
		From(sessionsTable).
		Where(squirrel.Eq{"ss.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	session := &domain.StoreSession{}
	row := r.conn.QueryRow(query, args...)

	err = row.Scan(
		&session.UserID,
		&session.StoreID,
		&session.StoreName,
		&session.AccessToken,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear sessão: %w", err)
	}

	return session, nil
}

func (r *sessionRepository) SaveOrUpdate(session *domain.StoreSession) error {
	query := squirrel.StatementBuilder.
		Insert("store_sessions").
		Columns("user_id", "store_id", "store_name", "access_token").
		Values(
			session.UserID,
			session.StoreID,
			session.StoreName,
			session.AccessToken,
		).
		Suffix(`
			ON CONFLICT (user_id) DO UPDATE SET
				store_id = EXCLUDED.store_id,
				store_name = EXCLUDED.store_name,
				access_token = EXCLUDED.access_token,
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

func (r *sessionRepository) Delete(userID string) error {
	query, args, err := squirrel.
		Delete("store_sessions").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
