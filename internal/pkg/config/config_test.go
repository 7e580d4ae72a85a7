//go:build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "sandbox outside production",
			mutate: func(c *Config) {},
		},
		{
			name: "sandbox refused in production",
			mutate: func(c *Config) {
				c.App.Env = "production"
			},
			wantErr: "not allowed",
		},
		{
			name: "sandbox refused in prod alias",
			mutate: func(c *Config) {
				c.App.Env = "PROD"
			},
			wantErr: "not allowed",
		},
		{
			name: "sandbox refused when env is empty",
			mutate: func(c *Config) {
				c.App.Env = ""
			},
			wantErr: "not allowed",
		},
		{
			name: "sandbox refused for a misspelt env",
			mutate: func(c *Config) {
				c.App.Env = "prodution"
			},
			wantErr: "not allowed",
		},
		{
			name: "sandbox refused in staging",
			mutate: func(c *Config) {
				c.App.Env = "staging"
			},
			wantErr: "not allowed",
		},
		{
			name: "sandbox allowed in local dev",
			mutate: func(c *Config) {
				c.App.Env = " Development "
			},
		},
		{
			name: "live requires omise keys",
			mutate: func(c *Config) {
				c.Payment.Mode = PaymentModeLive
			},
			wantErr: "OMISE_SECRET_KEY",
		},
		{
			name: "live with keys in production",
			mutate: func(c *Config) {
				c.App.Env = "production"
				c.Payment.Mode = PaymentModeLive
				c.Payment.OmisePublicKey = "pkey_test"
				c.Payment.OmiseSecretKey = "skey_test"
			},
		},
		{
			name: "unknown mode",
			mutate: func(c *Config) {
				c.Payment.Mode = "bypass"
			},
			wantErr: "invalid PAYMENT_MODE",
		},
		{
			name: "negative deposit months",
			mutate: func(c *Config) {
				c.Lease.DepositMonths = -1
			},
			wantErr: "LEASE_DEPOSIT_MONTHS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewTestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
