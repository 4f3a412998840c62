package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/example/trimmargin/internal/logging"
	"github.com/example/trimmargin/internal/text"
)

// Config holds every setting the CLI reads. Mode selects the transform; the
// remaining text fields are its arguments.
type Config struct {
	Mode      string `mapstructure:"mode"`
	Prefix    string `mapstructure:"prefix"`
	NewIndent string `mapstructure:"new_indent"`
	Indent    string `mapstructure:"indent"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"mode":       "mode",
	"prefix":     "prefix",
	"new-indent": "new_indent",
	"indent":     "indent",
	"log-level":  "log_level",
	"log-format": "log_format",
}

func DefaultConfig() Config {
	return Config{
		Mode:      ModeTrimMargin,
		Prefix:    text.DefaultMarginPrefix,
		NewIndent: "",
		Indent:    text.DefaultPrependIndent,
		LogLevel:  "warn",
		LogFormat: logging.FormatText,
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("mode", defaults.Mode, "Operation to perform ("+strings.Join(Modes(), "|")+")")
	fs.StringP("prefix", "p", defaults.Prefix, "Margin prefix for margin-based modes")
	fs.StringP("new-indent", "n", defaults.NewIndent, "New indent for replace-by-margin / replace-indent")
	fs.String("indent", defaults.Indent, "Indent for prepend mode")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("log-format", defaults.LogFormat, "Log format (text|json)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("TRIMMARGIN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("trimmargin")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	mode, err := NormalizeMode(cfg.Mode)
	if err != nil {
		return Config{}, err
	}
	cfg.Mode = mode

	format, err := NormalizeLogFormat(cfg.LogFormat)
	if err != nil {
		return Config{}, err
	}
	cfg.LogFormat = format

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("mode", c.Mode)
	v.SetDefault("prefix", c.Prefix)
	v.SetDefault("new_indent", c.NewIndent)
	v.SetDefault("indent", c.Indent)
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("log_format", c.LogFormat)
}

// bindFlags binds the registered config flags present in fs. Flags that were
// not registered are skipped so callers may expose a subset.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}
