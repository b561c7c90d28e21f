package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/freightdesk/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.App.Port)
		assert.Equal(t, "Net 30", cfg.Billing.PaymentTerms)
		assert.Equal(t, 30, cfg.Billing.DueDays)
		assert.Equal(t, 10*time.Second, cfg.Audit.Timeout)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, "postgres://postgres:@localhost:5432/freightdesk?sslmode=disable", cfg.ConnectionString())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", "s3cret")
		t.Setenv("BILLING_DUE_DAYS", "45")
		t.Setenv("BILLING_PAYMENT_TERMS", "Net 45")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test,https://b.test")
		t.Setenv("TENANT_ID", "0b5c4f3e-2f59-4ad5-9f57-6c1b9c8f6a10")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
		assert.Equal(t, 45, cfg.Billing.DueDays)
		assert.Equal(t, "Net 45", cfg.Billing.PaymentTerms)
		assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, "0b5c4f3e-2f59-4ad5-9f57-6c1b9c8f6a10", cfg.TenantID)
	})
}
