package config

import (
	"fmt"
	"strings"

	"github.com/de-tools/timelog-reporter/pkg/services/aggregate"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const EnvPrefix = "TIMELOG"

// LayoutSeparator splits TIMELOG_DATE_LAYOUTS; layouts themselves contain spaces.
const LayoutSeparator = ";"

type Settings struct {
	LogLevel    string   `mapstructure:"log_level"`
	Output      string   `mapstructure:"output"`
	DateLayouts []string `mapstructure:"date_layouts"`
	KeepNotes   bool     `mapstructure:"keep_notes"`
	Server      Server   `mapstructure:"server"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// LoadSettings reads the settings file at path, if any, layered over defaults
// and TIMELOG_* environment variables.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("keep_notes", false)
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// No slice default here: viper would split the env value on whitespace.
	if err := v.BindEnv("date_layouts"); err != nil {
		return nil, fmt.Errorf("failed to bind date layouts: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Settings
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(LayoutSeparator),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if len(cfg.DateLayouts) == 0 {
		cfg.DateLayouts = aggregate.DefaultDateLayouts
	}
	return &cfg, nil
}

// DateParser builds the parser for the configured layouts.
func (s *Settings) DateParser() *aggregate.DateParser {
	if s == nil {
		return aggregate.NewDateParser()
	}
	return aggregate.NewDateParser(s.DateLayouts...)
}
