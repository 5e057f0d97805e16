package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cosmogen-server/internal/auth"
	"cosmogen-server/internal/shared/config"
)

func setupConfig(t *testing.T) {
	t.Helper()

	previous := config.GlobalConfig
	config.GlobalConfig = &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "0123456789abcdef0123456789abcdef",
			TokenExpiration: time.Hour,
		},
	}
	t.Cleanup(func() { config.GlobalConfig = previous })
}

func TestJWTRoundTrip(t *testing.T) {
	setupConfig(t)

	token, err := auth.GenerateJWT("ops@localhost", "Ops", "admin")
	require.NoError(t, err)

	claims, err := auth.ValidateJWT(token)
	require.NoError(t, err)
	require.Equal(t, "ops@localhost", claims.Subject)
	require.Equal(t, "Ops", claims.DisplayName)
	require.Equal(t, "admin", claims.Role)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	setupConfig(t)

	_, err := auth.ValidateJWT("not.a.token")
	require.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	setupConfig(t)

	token, err := auth.GenerateJWT("ops@localhost", "Ops", "viewer")
	require.NoError(t, err)

	config.GlobalConfig.Auth.JWTSecret = "ffffffffffffffffffffffffffffffff"
	_, err = auth.ValidateJWT(token)
	require.Error(t, err)
}
