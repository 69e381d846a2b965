package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStateQuery(t *testing.T) {
	query, args, err := getStateQuery("kpi_store")

	require.NoError(t, err)
	assert.Equal(t, "SELECT value FROM app_state WHERE key = $1", query)
	assert.Equal(t, []interface{}{"kpi_store"}, args)
}

func TestSetStateQuery(t *testing.T) {
	query, args, err := setStateQuery("summary_to", "equipe@exemplo.com")

	require.NoError(t, err)

	// O Postgres valida as colunas do DO UPDATE mesmo sem conflito; a cláusula
	// só pode referenciar colunas existentes no DDL de app_state da migração
	assert.Equal(t,
		"INSERT INTO app_state (key,value) VALUES ($1,$2) "+
			"ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP",
		query,
	)
	assert.Equal(t, []interface{}{"summary_to", "equipe@exemplo.com"}, args)
}
