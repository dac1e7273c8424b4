package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId":      "",
			"pushAudience": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"storage": map[string]any{
			"bucketUrl":     "mem://",
			"publicBaseUrl": "",
		},
		"smtp": map[string]any{
			"tlsPolicy": "mandatory",
		},
		"mailWorker": map[string]any{
			"pushPath": "/push",
		},
		"cron": map[string]any{
			"secret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PUBSUB_PUSHAUDIENCE", want: "pubsub.pushAudience"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "STORAGE_PUBLIC_BASE_URL", want: "storage.public.base.url"},
		{envKey: "SMTP_TLSPOLICY", want: "smtp.tlsPolicy"},
		{envKey: "MAILWORKER_PUSHPATH", want: "mailWorker.pushPath"},
		{envKey: "CRON_SECRET", want: "cron.secret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := "env:\n  env: develop\ncron:\n  secret: from-yaml\nsmtp:\n  tlsPolicy: none\n  port: 25\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlBody), 0o600))
	t.Chdir(dir)
	t.Setenv("CRON_SECRET", "from-env")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.Env.Env)
	require.NotNil(t, cfg.Cron)
	assert.Equal(t, "from-env", cfg.Cron.Secret)
	require.NotNil(t, cfg.SMTP)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "none", cfg.SMTP.TLSPolicy)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Storage: &StorageConfig{}, MailWorker: &MailWorkerConfig{}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultMaxUploadSize, cfg.Storage.MaxUploadSize)
	assert.Equal(t, defaultCacheMaxAge, cfg.Storage.CacheMaxAge)
	assert.Equal(t, defaultPushPath, cfg.MailWorker.PushPath)
}

func TestConfig_Validate(t *testing.T) {
	newConfig := func(env, access, cron string) *Config {
		cfg := &Config{Cron: &CronConfig{Secret: cron}}
		cfg.Env.Env = env
		cfg.SecretKey.Access = access
		cfg.SecretKey.Refresh = "refresh-secret"

		return cfg
	}

	assert.NoError(t, newConfig("develop", "change-me-access", "change-me-cron").validate())
	assert.NoError(t, newConfig("production", "access-secret", "cron-secret").validate())

	err := newConfig("production", "change-me-access", "cron-secret").validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secretKey.access")

	err = newConfig("staging", "access-secret", "").validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cron.secret")
}
