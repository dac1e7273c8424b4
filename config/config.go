package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultMaxUploadSize      = "5MB"
	defaultCacheMaxAge        = 3600
	defaultPushPath           = "/push"

	envDevelop              = "develop"
	placeholderSecretPrefix = "change-me"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Storage configuration for recipe and country images
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// PubSub configuration for email event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// SMTP configuration used by the mail worker
	SMTP *SMTPConfig `json:"smtp" yaml:"smtp"`

	// MailWorker listens for Pub/Sub pushes next to the API
	MailWorker *MailWorkerConfig `json:"mailWorker" yaml:"mailWorker"`

	// QRCode configuration for recipe share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Cron guards the scheduled endpoints
	Cron *CronConfig `json:"cron" yaml:"cron"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int `json:"bcryptCost" yaml:"bcryptCost"`
	MinPasswordLength int `json:"minPasswordLength" yaml:"minPasswordLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines the object storage bucket for uploaded images
type StorageConfig struct {
	// Bucket URL understood by gocloud.dev/blob, e.g. gs://recipe-images, s3://recipe-images, file:///tmp/images, mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Public base URL prepended to object paths
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	// Cache-Control max-age in seconds
	CacheMaxAge int `json:"cacheMaxAge" yaml:"cacheMaxAge"`

	MaxUploadSize string `json:"maxUploadSize" yaml:"maxUploadSize"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected audience of push tokens; empty disables verification
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// Service account allowed to sign push tokens
	PushServiceAccount string `json:"pushServiceAccount" yaml:"pushServiceAccount"`
}

// SMTPConfig defines the outgoing mail server
type SMTPConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	UserName string `json:"userName" yaml:"userName"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
	// TLS policy: "mandatory", "opportunistic" or "none"
	TLSPolicy string `json:"tlsPolicy" yaml:"tlsPolicy"`
}

// MailWorkerConfig defines the push endpoint of cmd/mailworker
type MailWorkerConfig struct {
	// Port overrides http.port so both processes can run on one host
	Port int `json:"port" yaml:"port"`

	// PushPath is the route the subscription pushes to
	PushPath string `json:"pushPath" yaml:"pushPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// CronConfig defines the shared secret expected from the scheduler
type CronConfig struct {
	Secret string `json:"secret" yaml:"secret"`
}

// LoadWithEnv reads <name>.yaml from the first search path that has it and
// overlays environment variables such as POSTGRES_SSLMODE onto the YAML keys.
func LoadWithEnv[T any](name string, configPath ...string) (*T, error) {
	searchPaths, err := resolveSearchPaths(configPath)
	if err != nil {
		return nil, err
	}
	configFile, err := findConfigFile(name, searchPaths)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", name)
	}

	existing := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, existing), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	return cfg, nil
}

func resolveSearchPaths(configPath []string) ([]string, error) {
	paths := []string{defaultPath}
	if len(configPath) == 0 {
		return paths, nil
	}

	pwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "os.Getwd")
	}
	for _, path := range configPath {
		paths = append(paths, filepath.Join(pwd, path))
	}

	return paths, nil
}

func findConfigFile(name string, searchPaths []string) (string, error) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", name)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Storage != nil {
		if strings.TrimSpace(cfg.Storage.MaxUploadSize) == "" {
			cfg.Storage.MaxUploadSize = defaultMaxUploadSize
		}
		if cfg.Storage.CacheMaxAge <= 0 {
			cfg.Storage.CacheMaxAge = defaultCacheMaxAge
		}
	}
	if cfg.MailWorker != nil && cfg.MailWorker.PushPath == "" {
		cfg.MailWorker.PushPath = defaultPushPath
	}
}

// validate refuses to start outside develop with the placeholder secrets
// shipped in config.yaml.
func (cfg *Config) validate() error {
	if cfg.Env.Env == envDevelop {
		return nil
	}

	secrets := map[string]string{
		"secretKey.access":  cfg.SecretKey.Access,
		"secretKey.refresh": cfg.SecretKey.Refresh,
	}
	if cfg.Cron != nil {
		secrets["cron.secret"] = cfg.Cron.Secret
	}
	for key, value := range secrets {
		if value == "" || strings.HasPrefix(value, placeholderSecretPrefix) {
			return errors.Errorf("%s must be set in %s", key, cfg.Env.Env)
		}
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
