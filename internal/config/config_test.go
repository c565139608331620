package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Missing JWT secret is fatal", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")

		_, err := LoadConfig()
		assert.ErrorIs(t, err, ErrMissingJWTSecret)
	})

	t.Run("Default Values", func(t *testing.T) {
		os.Setenv("JWT_SECRET", "test-secret")
		defer os.Unsetenv("JWT_SECRET")

		cfg, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "local", cfg.AppEnv)
		assert.Equal(t, "8000", cfg.Port)
		assert.Equal(t, "http://localhost:5173", cfg.CORSOrigin)
		assert.Equal(t, "test-secret", cfg.JWTSecret)
	})

	t.Run("Environment Variables", func(t *testing.T) {
		os.Setenv("JWT_SECRET", "test-secret")
		os.Setenv("PORT", "9999")
		defer os.Unsetenv("JWT_SECRET")
		defer os.Unsetenv("PORT")

		cfg, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "9999", cfg.Port)
	})
}
