// internal/config/config.go
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "MINIONS"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = eris.New("invalid config")

type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Spawn      SpawnConfig      `mapstructure:"spawn"`
	Camera     CameraConfig     `mapstructure:"camera"`
	Window     WindowConfig     `mapstructure:"window"`
	Assets     AssetsConfig     `mapstructure:"assets"`
	Log        LogConfig        `mapstructure:"log"`
}

// SimulationConfig - пороги и скорость миньонов.
type SimulationConfig struct {
	SwitchingDelta   float32 `mapstructure:"switching_delta"`
	StoppingDistance float32 `mapstructure:"stopping_distance"`
	SeeingDistance   float32 `mapstructure:"seeing_distance"`
	MovingSpeed      float32 `mapstructure:"moving_speed"`
	MaxDeltaTime     float64 `mapstructure:"max_delta_time"`
}

type SpawnConfig struct {
	ExtraMinions int     `mapstructure:"extra_minions"`
	Seed         int64   `mapstructure:"seed"` // 0 - сид от времени
	PlaneSize    float32 `mapstructure:"plane_size"`
}

type CameraConfig struct {
	MoveSpeed   float32 `mapstructure:"move_speed"`
	ScrollSpeed float32 `mapstructure:"scroll_speed"`
	YMin        float32 `mapstructure:"y_min"`
	YMax        float32 `mapstructure:"y_max"`
	Fovy        float32 `mapstructure:"fovy"`
}

type WindowConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type AssetsConfig struct {
	Prototypes string `mapstructure:"prototypes"` // пусто - встроенные прототипы
	ModelsDir  string `mapstructure:"models_dir"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

var defaults = map[string]any{
	"simulation.switching_delta":   0.1,
	"simulation.stopping_distance": 1.0,
	"simulation.seeing_distance":   5.0,
	"simulation.moving_speed":      0.2,
	"simulation.max_delta_time":    0.06,
	"spawn.extra_minions":          0,
	"spawn.seed":                   0,
	"spawn.plane_size":             PlaneSize,
	"camera.move_speed":            5.0,
	"camera.scroll_speed":          0.8,
	"camera.y_min":                 2.0,
	"camera.y_max":                 5.0,
	"camera.fovy":                  45.0,
	"window.width":                 ScreenWidth,
	"window.height":                ScreenHeight,
	"assets.prototypes":            "",
	"assets.models_dir":            "assets/models",
	"log.level":                    "info",
}

// Default returns the configuration with every value at its default.
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			SwitchingDelta:   0.1,
			StoppingDistance: 1.0,
			SeeingDistance:   5.0,
			MovingSpeed:      0.2,
			MaxDeltaTime:     0.06,
		},
		Spawn: SpawnConfig{PlaneSize: PlaneSize},
		Camera: CameraConfig{
			MoveSpeed:   5.0,
			ScrollSpeed: 0.8,
			YMin:        2.0,
			YMax:        5.0,
			Fovy:        45.0,
		},
		Window: WindowConfig{Width: ScreenWidth, Height: ScreenHeight},
		Assets: AssetsConfig{ModelsDir: "assets/models"},
		Log:    LogConfig{Level: "info"},
	}
}

// Flags declares one command line flag per config key plus --config.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (yaml, json or toml)")
	d := Default()
	fs.Float32("simulation.switching_delta", d.Simulation.SwitchingDelta, "distance gain required to switch targets")
	fs.Float32("simulation.stopping_distance", d.Simulation.StoppingDistance, "distance at which a minion stops")
	fs.Float32("simulation.seeing_distance", d.Simulation.SeeingDistance, "distance at which a minion starts moving")
	fs.Float32("simulation.moving_speed", d.Simulation.MovingSpeed, "speed of placed minions, units per second")
	fs.Float64("simulation.max_delta_time", d.Simulation.MaxDeltaTime, "upper bound of a frame delta, seconds")
	fs.Int("spawn.extra_minions", d.Spawn.ExtraMinions, "randomly placed minions added to the opening scene")
	fs.Int64("spawn.seed", d.Spawn.Seed, "seed for random placement, 0 uses the clock")
	fs.Float32("spawn.plane_size", d.Spawn.PlaneSize, "side of the ground plane")
	fs.Float32("camera.move_speed", d.Camera.MoveSpeed, "camera pan speed")
	fs.Float32("camera.scroll_speed", d.Camera.ScrollSpeed, "camera zoom step per wheel notch")
	fs.Float32("camera.y_min", d.Camera.YMin, "lowest camera height")
	fs.Float32("camera.y_max", d.Camera.YMax, "highest camera height")
	fs.Float32("camera.fovy", d.Camera.Fovy, "vertical field of view, degrees")
	fs.Int("window.width", d.Window.Width, "window width")
	fs.Int("window.height", d.Window.Height, "window height")
	fs.String("assets.prototypes", d.Assets.Prototypes, "prototype definitions JSON, empty uses the built-in set")
	fs.String("assets.models_dir", d.Assets.ModelsDir, "directory with prototype models")
	fs.String("log.level", d.Log.Level, "log level (debug, info, warn, error)")
	return fs
}

// Load parses args and merges flags, MINIONS_* environment variables,
// an optional config file and defaults, in that order of precedence.
func Load(name string, args []string) (Config, error) {
	fs := Flags(name)
	if err := fs.Parse(args); err != nil {
		return Config{}, eris.Wrap(err, "failed to parse flags")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		_ = v.BindPFlag(f.Name, f)
	})

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, eris.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	s := c.Simulation
	switch {
	case s.StoppingDistance < 0:
		return eris.Wrapf(ErrInvalidConfig, "stopping_distance %v is negative", s.StoppingDistance)
	case s.SeeingDistance <= s.StoppingDistance:
		return eris.Wrapf(ErrInvalidConfig, "seeing_distance %v must exceed stopping_distance %v",
			s.SeeingDistance, s.StoppingDistance)
	case s.SwitchingDelta < 0:
		return eris.Wrapf(ErrInvalidConfig, "switching_delta %v is negative", s.SwitchingDelta)
	case s.MovingSpeed < 0:
		return eris.Wrapf(ErrInvalidConfig, "moving_speed %v is negative", s.MovingSpeed)
	case s.MaxDeltaTime <= 0:
		return eris.Wrapf(ErrInvalidConfig, "max_delta_time %v must be positive", s.MaxDeltaTime)
	case c.Camera.YMin > c.Camera.YMax:
		return eris.Wrapf(ErrInvalidConfig, "camera y_min %v exceeds y_max %v", c.Camera.YMin, c.Camera.YMax)
	case c.Spawn.ExtraMinions < 0:
		return eris.Wrapf(ErrInvalidConfig, "extra_minions %d is negative", c.Spawn.ExtraMinions)
	case c.Spawn.PlaneSize <= 0:
		return eris.Wrapf(ErrInvalidConfig, "plane_size %v must be positive", c.Spawn.PlaneSize)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return eris.Wrapf(ErrInvalidConfig, "log level %q: %v", c.Log.Level, err)
	}
	return nil
}

// LogLevel returns the configured zerolog level, falling back to info.
func (c Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
