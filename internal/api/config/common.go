package config

// Config holds the full application configuration.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Mongo         MongoConfig         `mapstructure:"mongo"`
	Redis         RedisConfig         `mapstructure:"redis"`
	LLM           LLMConfig           `mapstructure:"llm"`
	Cache         CacheConfig         `mapstructure:"cache"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Speech        SpeechConfig        `mapstructure:"speech"`
	ContentSafety ContentSafetyConfig `mapstructure:"content_safety"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// MongoConfig points at the document store holding the dashboard collections.
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LLMConfig carries the Azure OpenAI credentials. The proxy is considered
// configured only when APIKey, Endpoint and Deployment are all present.
type LLMConfig struct {
	APIKey     string `mapstructure:"api_key"`
	Endpoint   string `mapstructure:"endpoint"`
	Deployment string `mapstructure:"deployment"`
	APIVersion string `mapstructure:"api_version"`
}

// CacheConfig points at the cross-system de-dupe cache registration endpoint.
type CacheConfig struct {
	RegisterURL string `mapstructure:"register_url"`
}

// JWTConfig holds the SSO shared secret. An empty secret disables
// authentication entirely (development mode).
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// SpeechConfig is reserved for voice synthesis; no endpoint uses it yet.
type SpeechConfig struct {
	Key    string `mapstructure:"key"`
	Region string `mapstructure:"region"`
}

// ContentSafetyConfig is reserved for content moderation; no endpoint uses it yet.
type ContentSafetyConfig struct {
	Key      string `mapstructure:"key"`
	Endpoint string `mapstructure:"endpoint"`
}
