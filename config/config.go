package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "1MB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
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

	// Messenger configuration for the Graph API and webhook verification
	Messenger *MessengerConfig `json:"messenger" yaml:"messenger"`

	// LLM configuration for reply generation
	LLM *LLMConfig `json:"llm" yaml:"llm"`

	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	Order *OrderConfig `json:"order" yaml:"order"`

	// Effects configuration for what happens when an order becomes ready
	Effects *EffectsConfig `json:"effects" yaml:"effects"`

	// Admin configuration for the operator API
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// Firebase configuration for operator alerts
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for payment QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for order-ready events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MessengerConfig defines the page credentials used against the Graph API
type MessengerConfig struct {
	PageAccessToken string        `json:"pageAccessToken" yaml:"pageAccessToken"`
	VerifyToken     string        `json:"verifyToken" yaml:"verifyToken"`
	AppSecret       string        `json:"appSecret" yaml:"appSecret"`
	GraphAPIBase    string        `json:"graphApiBase" yaml:"graphApiBase"`
	GraphAPIVersion string        `json:"graphApiVersion" yaml:"graphApiVersion"`
	Timeout         time.Duration `json:"timeout" yaml:"timeout"`
}

// LLMConfig defines the reply generator settings
type LLMConfig struct {
	// Provider type: "gemini" or "static"
	Provider        string  `json:"provider" yaml:"provider"`
	APIKey          string  `json:"apiKey" yaml:"apiKey"`
	Model           string  `json:"model" yaml:"model"`
	Temperature     float32 `json:"temperature" yaml:"temperature"`
	MaxOutputTokens int32   `json:"maxOutputTokens" yaml:"maxOutputTokens"`
	HistoryWindow   int     `json:"historyWindow" yaml:"historyWindow"`
}

// CatalogConfig defines catalog matching limits
type CatalogConfig struct {
	SimilarityThreshold float64 `json:"similarityThreshold" yaml:"similarityThreshold"`
	ResultLimit         int     `json:"resultLimit" yaml:"resultLimit"`
}

// OrderConfig defines order extraction settings
type OrderConfig struct {
	// Runes inspected on each side of a product name when inferring quantity
	QuantityWindow int `json:"quantityWindow" yaml:"quantityWindow"`
}

// EffectsConfig defines account labels and payment instructions
type EffectsConfig struct {
	Labels         []string `json:"labels" yaml:"labels"`
	BankName       string   `json:"bankName" yaml:"bankName"`
	AccountNumber  string   `json:"accountNumber" yaml:"accountNumber"`
	AccountHolder  string   `json:"accountHolder" yaml:"accountHolder"`
	RemoteKeywords []string `json:"remoteKeywords" yaml:"remoteKeywords"`
	CityKeywords   []string `json:"cityKeywords" yaml:"cityKeywords"`
	// Firebase topic notified when an order becomes ready; empty disables alerts
	AlertTopic string `json:"alertTopic" yaml:"alertTopic"`
}

// AdminConfig defines operator API credentials
type AdminConfig struct {
	Username     string        `json:"username" yaml:"username"`
	PasswordHash string        `json:"passwordHash" yaml:"passwordHash"`
	JWTSecret    string        `json:"jwtSecret" yaml:"jwtSecret"`
	TokenTTL     time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// FirebaseConfig defines Firebase configuration for operator alerts
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "inline" (default), "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Buffered events for the inline provider
	QueueSize int `json:"queueSize" yaml:"queueSize"`
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
	// A missing .env is fine; real deployments inject the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

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

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills the optional sections with their built-in values.
func (c *Config) ApplyDefaults() {
	if c.Messenger == nil {
		c.Messenger = &MessengerConfig{}
	}
	if c.Messenger.GraphAPIBase == "" {
		c.Messenger.GraphAPIBase = "https://graph.facebook.com"
	}
	if c.Messenger.GraphAPIVersion == "" {
		c.Messenger.GraphAPIVersion = "v21.0"
	}
	if c.Messenger.Timeout <= 0 {
		c.Messenger.Timeout = 10 * time.Second
	}

	if c.LLM == nil {
		c.LLM = &LLMConfig{}
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gemini-2.5-flash"
	}
	if c.LLM.MaxOutputTokens <= 0 {
		c.LLM.MaxOutputTokens = 1000
	}
	if c.LLM.HistoryWindow <= 0 {
		c.LLM.HistoryWindow = 10
	}

	if c.Catalog == nil {
		c.Catalog = &CatalogConfig{}
	}
	if c.Catalog.SimilarityThreshold <= 0 {
		c.Catalog.SimilarityThreshold = 0.2
	}
	if c.Catalog.ResultLimit <= 0 {
		c.Catalog.ResultLimit = 10
	}

	if c.Order == nil {
		c.Order = &OrderConfig{}
	}
	if c.Order.QuantityWindow <= 0 {
		c.Order.QuantityWindow = 20
	}

	if c.Effects == nil {
		c.Effects = &EffectsConfig{}
	}
	if len(c.Effects.Labels) == 0 {
		c.Effects.Labels = []string{"Захиалга", "Төлбөр хүлээгдэж буй"}
	}

	if c.Admin != nil && c.Admin.TokenTTL <= 0 {
		c.Admin.TokenTTL = 12 * time.Hour
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
