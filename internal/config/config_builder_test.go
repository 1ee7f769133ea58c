package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_DefaultsFillMissingFields(t *testing.T) {
	cfg, err := newConfigBuilder().
		withFlags([]string{"-token-sign-key", "secret", "-d", "sqlite://blog.db"}).
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, defaultPasswordHashCost, cfg.App.PasswordHashCost)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultImagesDir, cfg.Storage.Images.Dir)
	assert.Equal(t, int64(defaultMaxUploadSize), cfg.Storage.Images.MaxUploadSize)
}

func TestBuild_EnvWinsOverFlagsAndJSON(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"app": {"token_sign_key": "from-json", "token_issuer": "json-issuer", "token_duration": "3h"},
		"storage": {"db": {"dsn": "sqlite://json.db"}}
	}`)
	t.Setenv("APP_TOKEN_SIGN_KEY", "from-env")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-token-sign-key", "from-flags", "-token-issuer", "flag-issuer", "-c", path}).
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 3*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "sqlite://json.db", cfg.Storage.DB.DSN)
}

func TestBuild_JSONFileErrorIsReturned(t *testing.T) {
	_, err := newConfigBuilder().
		withFlags([]string{"-c", "/definitely/not/here.json"}).
		withJSON().
		build()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := defaultConfig()
		cfg.App.TokenSignKey = "secret"
		cfg.Storage.DB.DSN = "sqlite://blog.db"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "no sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrEmptyTokenSignKey},
		{name: "no dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrEmptyDSN},
		{name: "cost too low", mutate: func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 3 }, wantErr: ErrInvalidPasswordHashCost},
		{name: "cost too high", mutate: func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 32 }, wantErr: ErrInvalidPasswordHashCost},
		{name: "no addresses", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrNoServerAddress},
		{name: "no image dir", mutate: func(cfg *StructuredConfig) { cfg.Storage.Images.Dir = "" }, wantErr: ErrInvalidImagesConfigs},
		{name: "s3 without region", mutate: func(cfg *StructuredConfig) { cfg.Storage.Images.S3.Bucket = "b" }, wantErr: ErrInvalidImagesConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
