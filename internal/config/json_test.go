package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"app": {
			"token_sign_key": "json-secret",
			"token_issuer": "json-issuer",
			"token_duration": "45m",
			"password_hash_cost": 8,
			"log_level": "debug"
		},
		"storage": {
			"db": {"dsn": "sqlite:///tmp/blog.db"},
			"images": {
				"dir": "/data/img",
				"public_path": "/img",
				"max_upload_size": 4096,
				"s3": {"bucket": "b", "region": "r", "public_base_url": "https://cdn"}
			}
		},
		"server": {
			"http_address": ":9000",
			"grpc_address": ":9001",
			"request_timeout": 1000000000
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 8, cfg.App.PasswordHashCost)
	assert.Equal(t, "sqlite:///tmp/blog.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/data/img", cfg.Storage.Images.Dir)
	assert.Equal(t, "/img", cfg.Storage.Images.PublicPath)
	assert.Equal(t, int64(4096), cfg.Storage.Images.MaxUploadSize)
	assert.Equal(t, "b", cfg.Storage.Images.S3.Bucket)
	assert.Equal(t, "https://cdn", cfg.Storage.Images.S3.PublicBaseURL)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, ":9001", cfg.Server.GRPCAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	_, err := parseJSON(writeTempJSONConfig(t, `{"app": `))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "nanoseconds", input: `1000`, want: 1000},
		{name: "invalid string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"2m0s"`, string(b))
}
