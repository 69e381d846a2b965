// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-kpi-api/infrastructure/database/postgres"
)

const appStateTable = "app_state"

// AppStateRepository é o armazenamento chave/valor de estado da aplicação.
// Todos os valores são strings; chave ausente resulta em valor vazio, não erro.
type AppStateRepository interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

type appStateRepository struct {
	conn *postgres.Connection
}

func NewAppStateRepository(conn *postgres.Connection) AppStateRepository {
	return &appStateRepository{
		conn: conn,
	}
}

// getStateQuery monta o SELECT do valor de uma chave
func getStateQuery(key string) (string, []interface{}, error) {
	return squirrel.
		Select("value").
		From(appStateTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// setStateQuery monta o upsert de uma chave. As colunas referenciadas na
// cláusula de conflito precisam existir no DDL da tabela app_state do script
// de migração.
func setStateQuery(key, value string) (string, []interface{}, error) {
	return squirrel.
		Insert(appStateTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *appStateRepository) Get(key string) (string, error) {
	query, args, err := getStateQuery(key)
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value string
	err = r.conn.QueryRow(query, args...).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("erro ao ler estado %q: %w", key, err)
	}

	return value, nil
}

func (r *appStateRepository) Set(key, value string) error {
	query, args, err := setStateQuery(key, value)
	if err != nil {
		return fmt.Errorf("erro ao construir query de upsert: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao gravar estado %q: %w", key, err)
	}

	return nil
}
