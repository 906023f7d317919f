package config

const (
	ResolverRemote = "remote"
	ResolverStatic = "static"
)

// ServerConfig contains the inbound HTTP settings
type ServerConfig struct {
	Port           int `yaml:"port" validate:"gt=0,lte=65535"`
	ReadTimeoutMS  int `yaml:"readTimeoutMS" validate:"gte=0"`
	WriteTimeoutMS int `yaml:"writeTimeoutMS" validate:"gte=0"`
}

// BahnConfig contains the upstream provider settings.
// TimeoutMS of 0 leaves outbound requests without a client timeout.
type BahnConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"required,url"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

type SearchConfig struct {
	DefaultDayLimit int `yaml:"defaultDayLimit" validate:"gt=0"`
	MaxDayLimit     int `yaml:"maxDayLimit" validate:"gtefield=DefaultDayLimit,max=366"`
}

type StationsConfig struct {
	Resolver string `yaml:"resolver" validate:"oneof=remote static"`
}

type TelegramConfig struct {
	Token string `yaml:"token"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Bahn     BahnConfig     `yaml:"bahn"`
	Search   SearchConfig   `yaml:"search"`
	Stations StationsConfig `yaml:"stations"`
	Telegram TelegramConfig `yaml:"telegram"`
	Log      LogConfig      `yaml:"log"`
}
