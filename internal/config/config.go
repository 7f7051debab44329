package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/roadmapkit/trail"
	"github.com/roadmapkit/trail/internal/render"
)

// EnvPrefix prefixes the environment variables that override configuration:
// TRAIL_SERVER_PORT → server.port.
const EnvPrefix = "TRAIL"

// Config holds all application configuration.
type Config struct {
	Smoothing float64      `mapstructure:"smoothing"`
	SVG       SVGConfig    `mapstructure:"svg"`
	Log       LogConfig    `mapstructure:"log"`
	Server    ServerConfig `mapstructure:"server"`
	Style     render.Style `mapstructure:"style"`
}

type SVGConfig struct {
	Precision int `mapstructure:"precision"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ServerConfig struct {
	Port         int `mapstructure:"port"`
	ReadTimeout  int `mapstructure:"read_timeout"`
	WriteTimeout int `mapstructure:"write_timeout"`
	BodyLimit    int `mapstructure:"body_limit"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

func (s ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

func (s ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// Smoother returns the smoother for the configured factor.
func (c *Config) Smoother() trail.Smoother {
	return trail.Smoother{Smoothing: c.Smoothing}
}

func (c *Config) SVGOptions() trail.SVGOptions {
	return trail.SVGOptions{MaxPrecision: c.SVG.Precision}
}

func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Style:    c.Style,
		Smoother: c.Smoother(),
		SVG:      c.SVGOptions(),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("smoothing", trail.DefaultSmoothing)
	v.SetDefault("svg.precision", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.body_limit", 1<<20)

	st := render.DefaultStyle()
	v.SetDefault("style.background", st.Background)
	v.SetDefault("style.shadow_color", st.ShadowColor)
	v.SetDefault("style.shadow_width", st.ShadowWidth)
	v.SetDefault("style.shadow_opacity", st.ShadowOpacity)
	v.SetDefault("style.shadow_dx", st.ShadowDX)
	v.SetDefault("style.shadow_dy", st.ShadowDY)
	v.SetDefault("style.cutout_color", st.CutoutColor)
	v.SetDefault("style.cutout_width", st.CutoutWidth)
	v.SetDefault("style.segment_width", st.SegmentWidth)
	v.SetDefault("style.center_color", st.CenterColor)
	v.SetDefault("style.center_width", st.CenterWidth)
	v.SetDefault("style.center_dash", st.CenterDash)
	v.SetDefault("style.center_opacity", st.CenterOpacity)
	v.SetDefault("style.marker_radius", st.MarkerRadius)
	v.SetDefault("style.fit_trail", st.FitTrail)
}

// Load reads configuration from defaults, a config file and environment
// variables, in increasing order of precedence. If path is empty, trail.yaml
// is looked for in the working directory and ./configs and may be missing.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("trail")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration values are sane.
func (c *Config) Validate() error {
	var errs []string

	if !(c.Smoothing >= 0 && c.Smoothing <= 1) {
		errs = append(errs, fmt.Sprintf("smoothing must be in [0, 1], got %g", c.Smoothing))
	}
	if c.SVG.Precision < 0 {
		errs = append(errs, fmt.Sprintf("svg.precision must not be negative, got %d", c.SVG.Precision))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or console, got %q", c.Log.Format))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	if c.Server.BodyLimit <= 0 {
		errs = append(errs, "server.body_limit must be positive")
	}
	if c.Style.MarkerRadius < 0 {
		errs = append(errs, "style.marker_radius must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
