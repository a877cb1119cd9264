package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultGeocoderBaseURL  = "https://nominatim.openstreetmap.org"
	defaultGeocoderCountry  = "ua"
	defaultGeocoderLimit    = 5
	defaultGeocoderMinChars = 3
	defaultGeocoderDebounce = 500 * time.Millisecond
	defaultResolverLimit    = 100
	defaultMapLinkBaseURL   = "https://www.google.com/maps/search/"
	defaultBackendTimeout   = 15 * time.Second
	defaultSessionFilePath  = ".portal/session.json"
	defaultSessionKeyPrefix = "portal:session:"
	defaultQRCodeSize       = 256
	defaultQRCodeLevel      = "M"
	defaultMaxBodySize      = "2M"
)

// Session store drivers.
const (
	SessionStoreFile  = "file"
	SessionStoreRedis = "redis"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Backend is the building management REST API the console drives
	Backend BackendConfig `json:"backend" yaml:"backend"`

	// Geocoder configuration for address autocomplete
	Geocoder *GeocoderConfig `json:"geocoder" yaml:"geocoder"`

	// Session configuration for durable session storage
	Session SessionConfig `json:"session" yaml:"session"`

	// Redis connection, required when the session store driver is redis
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Resolver configuration for the address occupant lookup
	Resolver *ResolverConfig `json:"resolver" yaml:"resolver"`

	// MapLink configuration for "open in maps" links
	MapLink *MapLinkConfig `json:"mapLink" yaml:"mapLink"`

	// QRCode configuration for map link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// BackendConfig defines the upstream REST API connection
type BackendConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// GeocoderConfig defines the geocoding search endpoint and autocomplete behaviour
type GeocoderConfig struct {
	BaseURL      string        `json:"baseUrl" yaml:"baseUrl"`
	CountryCodes string        `json:"countryCodes" yaml:"countryCodes"`
	Limit        int           `json:"limit" yaml:"limit"`
	MinChars     int           `json:"minChars" yaml:"minChars"`
	Debounce     time.Duration `json:"debounce" yaml:"debounce"`
	UserAgent    string        `json:"userAgent" yaml:"userAgent"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

// SessionConfig defines where the operator session is persisted
type SessionConfig struct {
	// Store driver: "file" (default) or "redis"
	Store     string `json:"store" yaml:"store"`
	FilePath  string `json:"filePath" yaml:"filePath"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// ResolverConfig defines the page sizes of the occupant resolver reads
type ResolverConfig struct {
	DeviceLimit int `json:"deviceLimit" yaml:"deviceLimit"`
	UserLimit   int `json:"userLimit" yaml:"userLimit"`
}

// MapLinkConfig defines the external map provider
type MapLinkConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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

	if strings.TrimSpace(cfg.Backend.BaseURL) == "" {
		return nil, errors.New("backend.baseUrl is required")
	}

	cfg.ApplyDefaults()

	if cfg.Session.Store == SessionStoreRedis && cfg.Redis == nil {
		return nil, errors.New("redis configuration is required for the redis session store")
	}

	return cfg, nil
}

// ApplyDefaults fills optional sections with their default values.
func (cfg *Config) ApplyDefaults() {
	if cfg.HTTP.MaxRequestBodySize == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxBodySize
	}

	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = defaultBackendTimeout
	}

	if cfg.Geocoder == nil {
		cfg.Geocoder = &GeocoderConfig{}
	}
	if cfg.Geocoder.BaseURL == "" {
		cfg.Geocoder.BaseURL = defaultGeocoderBaseURL
	}
	if strings.TrimSpace(cfg.Geocoder.CountryCodes) == "" {
		cfg.Geocoder.CountryCodes = defaultGeocoderCountry
	}
	if cfg.Geocoder.Limit <= 0 {
		cfg.Geocoder.Limit = defaultGeocoderLimit
	}
	if cfg.Geocoder.MinChars <= 0 {
		cfg.Geocoder.MinChars = defaultGeocoderMinChars
	}
	if cfg.Geocoder.Debounce <= 0 {
		cfg.Geocoder.Debounce = defaultGeocoderDebounce
	}
	if cfg.Geocoder.Timeout <= 0 {
		cfg.Geocoder.Timeout = defaultBackendTimeout
	}

	if cfg.Session.Store == "" {
		cfg.Session.Store = SessionStoreFile
	}
	if cfg.Session.FilePath == "" {
		cfg.Session.FilePath = defaultSessionFilePath
	}
	if cfg.Session.KeyPrefix == "" {
		cfg.Session.KeyPrefix = defaultSessionKeyPrefix
	}

	if cfg.Resolver == nil {
		cfg.Resolver = &ResolverConfig{}
	}
	if cfg.Resolver.DeviceLimit <= 0 {
		cfg.Resolver.DeviceLimit = defaultResolverLimit
	}
	if cfg.Resolver.UserLimit <= 0 {
		cfg.Resolver.UserLimit = defaultResolverLimit
	}

	if cfg.MapLink == nil {
		cfg.MapLink = &MapLinkConfig{}
	}
	if cfg.MapLink.BaseURL == "" {
		cfg.MapLink.BaseURL = defaultMapLinkBaseURL
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
