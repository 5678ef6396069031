package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/otopia-pos/pkg/jwt"
)

const secret = "unit-test-secret"

func TestGenerateParse_RoundTripDevuelveUsuarioYRol(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "user-1", "kasir", "otopia-test", 60)
	require.NoError(t, err)

	userID, role, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "kasir", role)
}

func TestParse_TokenVencidoEsErrTokenExpired(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "user-1", "kasir", "otopia-test", -5)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(secret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenExpired)
}

func TestParse_FirmaIncorrectaEsErrTokenInvalid(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", "user-1", "owner", "otopia-test", 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(secret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalid)
	assert.NotErrorIs(t, err, pkgjwt.ErrTokenExpired)
}

func TestParse_BasuraEsErrTokenInvalid(t *testing.T) {
	_, _, err := pkgjwt.Parse(secret, "no.es.un.jwt")
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalid)
}

func TestGenerate_SecretVacioFalla(t *testing.T) {
	_, err := pkgjwt.Generate("", "user-1", "owner", "otopia-test", 60)
	assert.Error(t, err)
}
