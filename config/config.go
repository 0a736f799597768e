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

	defaultMaxDistanceKm       = 50.0
	defaultMaxResults          = 50
	defaultDelivererMatchLimit = 10
	defaultLocationMaxAge      = 30 * time.Minute
	defaultScoreWeight         = 0.25

	defaultDeadlineToleranceKm = 2.0
	defaultAverageSpeedKmh     = 40.0
	defaultServiceTime         = 10 * time.Minute
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

	// SecretKey.Access verifies access tokens issued by the identity service.
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Matching *MatchingConfig `json:"matching" yaml:"matching"`

	Routing *RoutingConfig `json:"routing" yaml:"routing"`

	// PubSub configuration for match and route events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MatchingConfig tunes candidate filtering and scoring.
type MatchingConfig struct {
	// Upper bound applied when a request does not set its own radius
	MaxDistanceKm float64 `json:"maxDistanceKm" yaml:"maxDistanceKm"`

	// Maximum number of ranked announcements returned to a deliverer
	MaxResults int `json:"maxResults" yaml:"maxResults"`

	// Maximum number of ranked deliverers returned for an announcement
	DelivererMatchLimit int `json:"delivererMatchLimit" yaml:"delivererMatchLimit"`

	// Deliverers below this aggregate rating are not proposed to clients
	MinDelivererRating float64 `json:"minDelivererRating" yaml:"minDelivererRating"`

	// A deliverer position older than this is reported as stale
	LocationMaxAge time.Duration `json:"locationMaxAge" yaml:"locationMaxAge"`

	Weights ScoreWeights `json:"weights" yaml:"weights"`
}

// ScoreWeights are the relative weights of the scoring sub-scores. Each must lie in [0, 1].
type ScoreWeights struct {
	Distance float64 `json:"distance" yaml:"distance"`
	Price    float64 `json:"price" yaml:"price"`
	Rating   float64 `json:"rating" yaml:"rating"`
	Capacity float64 `json:"capacity" yaml:"capacity"`
}

// RoutingConfig tunes the stop sequencing heuristic and its time estimates.
type RoutingConfig struct {
	// Distance window in which an earlier deadline wins over the strictly nearest stop.
	// Unset selects the default; 0 orders stops by distance alone.
	DeadlineToleranceKm *float64 `json:"deadlineToleranceKm" yaml:"deadlineToleranceKm"`

	// Average speed used for leg duration estimates
	AverageSpeedKmh float64 `json:"averageSpeedKmh" yaml:"averageSpeedKmh"`

	// Time spent at each stop
	ServiceTime time.Duration `json:"serviceTime" yaml:"serviceTime"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint receiving push messages (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf and overlays environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// MATCHING_MAXDISTANCEKM -> matching.maxDistanceKm, aligned with the YAML keys
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, configPath ...string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every unset tunable with its documented default.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Matching == nil {
		c.Matching = &MatchingConfig{}
	}
	m := c.Matching
	if m.MaxDistanceKm <= 0 {
		m.MaxDistanceKm = defaultMaxDistanceKm
	}
	if m.MaxResults <= 0 {
		m.MaxResults = defaultMaxResults
	}
	if m.DelivererMatchLimit <= 0 {
		m.DelivererMatchLimit = defaultDelivererMatchLimit
	}
	if m.LocationMaxAge <= 0 {
		m.LocationMaxAge = defaultLocationMaxAge
	}
	if m.Weights == (ScoreWeights{}) {
		m.Weights = ScoreWeights{
			Distance: defaultScoreWeight,
			Price:    defaultScoreWeight,
			Rating:   defaultScoreWeight,
			Capacity: defaultScoreWeight,
		}
	}

	if c.Routing == nil {
		c.Routing = &RoutingConfig{}
	}
	r := c.Routing
	if r.DeadlineToleranceKm == nil || *r.DeadlineToleranceKm < 0 {
		tolerance := defaultDeadlineToleranceKm
		r.DeadlineToleranceKm = &tolerance
	}
	if r.AverageSpeedKmh <= 0 {
		r.AverageSpeedKmh = defaultAverageSpeedKmh
	}
	if r.ServiceTime <= 0 {
		r.ServiceTime = defaultServiceTime
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

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index missing a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
