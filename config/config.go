package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"cortex/internal/domain/constants"

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

	defaultLookbackDays       = 30
	defaultAttemptTimeout     = 10 * time.Minute
	defaultMaxConcurrentUsers = 4
	defaultMaxRetries         = 3
	defaultRateLimitWait      = 60 * time.Second
	defaultRequestTimeout     = 30 * time.Second
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

	// Identity verifies bearer tokens issued by the external identity provider
	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	// Cron protects the scheduled batch sync endpoint
	Cron *CronConfig `json:"cron" yaml:"cron"`

	// Secrets configures at-rest encryption of provider tokens
	Secrets *SecretsConfig `json:"secrets" yaml:"secrets"`

	Whoop    *ProviderConfig `json:"whoop" yaml:"whoop"`
	Withings *ProviderConfig `json:"withings" yaml:"withings"`

	Sync *SyncConfig `json:"sync" yaml:"sync"`

	App *AppConfig `json:"app" yaml:"app"`

	// PubSub configuration for batch sync fan-out
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// IdentityConfig defines how identity-provider JWTs are verified
type IdentityConfig struct {
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`
	Issuer    string `json:"issuer" yaml:"issuer"`
	Audience  string `json:"audience" yaml:"audience"`
}

// CronConfig holds the bcrypt hash of the shared cron secret
type CronConfig struct {
	SecretHash string `json:"secretHash" yaml:"secretHash"`
}

// SecretsConfig selects the gocloud secrets keeper, e.g. base64key://... or gcpkms://...
type SecretsConfig struct {
	KeeperURL string `json:"keeperUrl" yaml:"keeperUrl"`
}

// ProviderConfig describes one upstream health-data provider.
type ProviderConfig struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string `json:"redirectUri" yaml:"redirectUri"`
	Scopes       string `json:"scopes" yaml:"scopes"`

	APIBaseURL string `json:"apiBaseUrl" yaml:"apiBaseUrl"`
	AuthURL    string `json:"authUrl" yaml:"authUrl"`
	TokenURL   string `json:"tokenUrl" yaml:"tokenUrl"`

	// PageInterval is the minimum spacing between consecutive page requests
	PageInterval time.Duration `json:"pageInterval" yaml:"pageInterval"`

	// RateLimitWait is used on 429 when the response has no Retry-After header
	RateLimitWait  time.Duration `json:"rateLimitWait" yaml:"rateLimitWait"`
	MaxRetries     int           `json:"maxRetries" yaml:"maxRetries"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// SyncConfig tunes the sync orchestrator and batch runner
type SyncConfig struct {
	LookbackDays       int           `json:"lookbackDays" yaml:"lookbackDays"`
	AttemptTimeout     time.Duration `json:"attemptTimeout" yaml:"attemptTimeout"`
	MaxConcurrentUsers int           `json:"maxConcurrentUsers" yaml:"maxConcurrentUsers"`

	// BatchMode is "inline" (run every sync in the cron request) or "pubsub" (fan out to the worker)
	BatchMode string `json:"batchMode" yaml:"batchMode"`
}

type AppConfig struct {
	// ConnectRedirectURL is where the browser lands after an OAuth callback
	ConnectRedirectURL string `json:"connectRedirectUrl" yaml:"connectRedirectUrl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
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
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills in zero values that have a sensible production default.
func (cfg *Config) applyDefaults() {
	if cfg.Sync == nil {
		cfg.Sync = &SyncConfig{}
	}
	if cfg.Sync.LookbackDays <= 0 {
		cfg.Sync.LookbackDays = defaultLookbackDays
	}
	if cfg.Sync.AttemptTimeout <= 0 {
		cfg.Sync.AttemptTimeout = defaultAttemptTimeout
	}
	if cfg.Sync.MaxConcurrentUsers <= 0 {
		cfg.Sync.MaxConcurrentUsers = defaultMaxConcurrentUsers
	}
	if cfg.Sync.BatchMode == "" {
		cfg.Sync.BatchMode = constants.BatchModeInline
	}

	if cfg.Whoop == nil {
		cfg.Whoop = &ProviderConfig{}
	}
	cfg.Whoop.withDefaults(ProviderConfig{
		APIBaseURL:   "https://api.prod.whoop.com/developer/v2",
		AuthURL:      "https://api.prod.whoop.com/oauth/oauth2/auth",
		TokenURL:     "https://api.prod.whoop.com/oauth/oauth2/token",
		Scopes:       "read:profile read:body_measurement read:cycles read:recovery read:sleep read:workout offline",
		PageInterval: 600 * time.Millisecond,
	})

	if cfg.Withings == nil {
		cfg.Withings = &ProviderConfig{}
	}
	cfg.Withings.withDefaults(ProviderConfig{
		APIBaseURL:   "https://wbsapi.withings.net",
		AuthURL:      "https://account.withings.com/oauth2_user/authorize2",
		TokenURL:     "https://wbsapi.withings.net/v2/oauth2",
		Scopes:       "user.metrics,user.activity",
		PageInterval: 500 * time.Millisecond,
	})
}

func (p *ProviderConfig) withDefaults(def ProviderConfig) {
	if p.APIBaseURL == "" {
		p.APIBaseURL = def.APIBaseURL
	}
	if p.AuthURL == "" {
		p.AuthURL = def.AuthURL
	}
	if p.TokenURL == "" {
		p.TokenURL = def.TokenURL
	}
	if p.Scopes == "" {
		p.Scopes = def.Scopes
	}
	if p.PageInterval <= 0 {
		p.PageInterval = def.PageInterval
	}
	if p.RateLimitWait <= 0 {
		p.RateLimitWait = defaultRateLimitWait
	}
	if p.MaxRetries <= 0 {
		p.MaxRetries = defaultMaxRetries
	}
	if p.RequestTimeout <= 0 {
		p.RequestTimeout = defaultRequestTimeout
	}
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
