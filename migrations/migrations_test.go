package migrations

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_TelefonoDeClienteSinIndiceUnico(t *testing.T) {
	sql, err := files.ReadFile("001_init.sql")
	require.NoError(t, err)

	unique := regexp.MustCompile(`(?i)CREATE\s+UNIQUE\s+INDEX[^;]*ON\s+customers\s*\(\s*phone`)
	assert.False(t, unique.Match(sql))
	assert.Contains(t, string(sql), "customers_phone_idx ON customers (phone)")
}
