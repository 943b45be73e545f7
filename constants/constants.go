package constants

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "FRETDEX"

const ConfigName = "fretdex"

// middle C, where exported triads start
const BaseMidiNote = 60

type Config struct {
	OutDir string       `mapstructure:"out_dir"`
	Server ServerConfig `mapstructure:"server"`
	Midi   MidiConfig   `mapstructure:"midi"`
	Log    LogConfig    `mapstructure:"log"`
	PNG    PNGConfig    `mapstructure:"png"`
}

type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type MidiConfig struct {
	InPort     string `mapstructure:"in_port"`     // empty = first input port
	DebounceMs int    `mapstructure:"debounce_ms"` // coalesce note bursts
	Velocity   uint8  `mapstructure:"velocity"`    // for exported files
}

type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

type PNGConfig struct {
	Width int `mapstructure:"width"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("out_dir", "./out")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("midi.in_port", "")
	v.SetDefault("midi.debounce_ms", 100)
	v.SetDefault("midi.velocity", 100)
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("png.width", 1200)
}

// NewViper wires defaults, an optional fretdex.toml and FRETDEX_* env vars.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetConfigName(ConfigName)
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, "."+ConfigName))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads .env (if present) and the config file into v. The file is
// optional unless one was set with SetConfigFile.
func Load(v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load .env")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}
