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

	defaultPushProvider        = "vapid"
	defaultPushIcon            = "/icon.png"
	defaultPushBadge           = "/badge.png"
	defaultPushURL             = "/"
	defaultVAPIDTTL            = 86400
	defaultDispatchConcurrency = 50
	defaultDeliveryTimeout     = 10 * time.Second
	defaultReleaseBatchSize    = 100
	defaultQRCodeSize          = 256
	defaultQRCodeLevel         = "M"
	defaultNATSStream          = "PUSH_CAMPAIGNS"
	defaultNATSSubject         = "push.campaigns.dispatch"
	defaultNATSDurable         = "dispatch-worker"
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

	// CORS configuration for browser clients
	CORS *CORSConfig `json:"cors" yaml:"cors"`

	// Push delivery configuration
	Push *PushConfig `json:"push" yaml:"push"`

	// Dispatch configuration for campaign fan-out
	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Firebase configuration, used when push.provider is firebase
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for store subscription QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for dispatch event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CORSConfig defines allowed browser origins
type CORSConfig struct {
	AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
}

// PushConfig defines how notifications are delivered and the payload fallbacks
type PushConfig struct {
	// Provider type: "vapid" for Web Push or "firebase" for FCM
	Provider string `json:"provider" yaml:"provider"`

	VAPID VAPIDConfig `json:"vapid" yaml:"vapid"`

	// Fallbacks applied when a campaign leaves the field empty
	DefaultIcon  string `json:"defaultIcon" yaml:"defaultIcon"`
	DefaultBadge string `json:"defaultBadge" yaml:"defaultBadge"`
	DefaultURL   string `json:"defaultUrl" yaml:"defaultUrl"`
}

// VAPIDConfig defines the application server identity for Web Push
type VAPIDConfig struct {
	PublicKey  string `json:"publicKey" yaml:"publicKey"`
	PrivateKey string `json:"privateKey" yaml:"privateKey"`

	// Contact URI or email sent to push services
	Subscriber string `json:"subscriber" yaml:"subscriber"`

	// Seconds the push service keeps an undelivered message
	TTL int `json:"ttl" yaml:"ttl"`

	// Urgency header: very-low, low, normal or high
	Urgency string `json:"urgency" yaml:"urgency"`
}

// DispatchConfig bounds a single campaign fan-out
type DispatchConfig struct {
	// Maximum deliveries in flight per dispatch
	Concurrency int `json:"concurrency" yaml:"concurrency"`

	// Deadline for a single delivery call
	DeliveryTimeout time.Duration `json:"deliveryTimeout" yaml:"deliveryTimeout"`

	// Maximum due campaigns released per call
	ReleaseBatchSize int `json:"releaseBatchSize" yaml:"releaseBatchSize"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub or "nats" for NATS JetStream
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// NATS settings (for nats provider)
	NATS NATSConfig `json:"nats" yaml:"nats"`
}

// NATSConfig defines the JetStream stream and consumer used for dispatch events
type NATSConfig struct {
	URL     string `json:"url" yaml:"url"`
	Stream  string `json:"stream" yaml:"stream"`
	Subject string `json:"subject" yaml:"subject"`
	Durable string `json:"durable" yaml:"durable"`
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

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

// applyDefaults fills optional sections so every consumer can rely on non-nil config.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres == nil {
		cfg.Postgres = &postgres.DBConn{}
	}

	if cfg.CORS == nil || len(cfg.CORS.AllowOrigins) == 0 {
		cfg.CORS = &CORSConfig{AllowOrigins: []string{"*"}}
	}

	if cfg.Push == nil {
		cfg.Push = &PushConfig{}
	}
	if cfg.Push.Provider == "" {
		cfg.Push.Provider = defaultPushProvider
	}
	if cfg.Push.DefaultIcon == "" {
		cfg.Push.DefaultIcon = defaultPushIcon
	}
	if cfg.Push.DefaultBadge == "" {
		cfg.Push.DefaultBadge = defaultPushBadge
	}
	if cfg.Push.DefaultURL == "" {
		cfg.Push.DefaultURL = defaultPushURL
	}
	if cfg.Push.VAPID.TTL <= 0 {
		cfg.Push.VAPID.TTL = defaultVAPIDTTL
	}

	if cfg.Dispatch == nil {
		cfg.Dispatch = &DispatchConfig{}
	}
	if cfg.Dispatch.Concurrency <= 0 {
		cfg.Dispatch.Concurrency = defaultDispatchConcurrency
	}
	if cfg.Dispatch.DeliveryTimeout <= 0 {
		cfg.Dispatch.DeliveryTimeout = defaultDeliveryTimeout
	}
	if cfg.Dispatch.ReleaseBatchSize <= 0 {
		cfg.Dispatch.ReleaseBatchSize = defaultReleaseBatchSize
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
	}

	if cfg.PubSub != nil {
		if cfg.PubSub.NATS.Stream == "" {
			cfg.PubSub.NATS.Stream = defaultNATSStream
		}
		if cfg.PubSub.NATS.Subject == "" {
			cfg.PubSub.NATS.Subject = defaultNATSSubject
		}
		if cfg.PubSub.NATS.Durable == "" {
			cfg.PubSub.NATS.Durable = defaultNATSDurable
		}
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
