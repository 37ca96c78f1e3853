package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	LogFormat             string
	AllowOrigins          string
	RoundRobinTimeQuantum int
	SkipIdle              bool
	PredictorIntercept    float64
	PredictorCoefficients map[string]float64
	StorePath             string
	// Request limits for the HTTP API. Zero disables a limit.
	MaxProcesses     int
	MaxSimulatedTime int
}

var once sync.Once
var config *SchedulerConfig
var configErr error
var configFile string

// SetConfigFile points the singleton at an explicit file. It must be called
// before the first GetSchedulerConfig.
func SetConfigFile(path string) {
	configFile = path
}

func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		v := viper.New()
		if configFile != "" {
			v.SetConfigFile(configFile)
		} else {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath("./")
		}
		config, configErr = Load(v)
	})

	return config, configErr
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("cors.allow_origins", "http://localhost:8080")
	v.SetDefault("scheduler.round_robin.time_quantum", 10)
	v.SetDefault("scheduler.skip_idle", false)
	v.SetDefault("predictor.intercept", 0.0)
	v.SetDefault("predictor.coefficients", map[string]any{"ReqTime": 1.0})
	v.SetDefault("store.path", "")
	v.SetDefault("limits.max_processes", 1000)
	v.SetDefault("limits.max_simulated_time", 100000)
}

// Load reads configuration through v. A missing config file is not an
// error; defaults and SCHEDSIM_* environment variables still apply.
func Load(v *viper.Viper) (*SchedulerConfig, error) {
	setDefaults(v)
	v.SetEnvPrefix("SCHEDSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*SchedulerConfig, error) {
	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
		AllowOrigins:          v.GetString("cors.allow_origins"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		SkipIdle:              v.GetBool("scheduler.skip_idle"),
		PredictorIntercept:    v.GetFloat64("predictor.intercept"),
		PredictorCoefficients: make(map[string]float64),
		StorePath:             v.GetString("store.path"),
		MaxProcesses:          v.GetInt("limits.max_processes"),
		MaxSimulatedTime:      v.GetInt("limits.max_simulated_time"),
	}
	for name, raw := range v.GetStringMap("predictor.coefficients") {
		coefficient, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, fmt.Errorf("predictor coefficient %s: %w", name, err)
		}
		cfg.PredictorCoefficients[name] = coefficient
	}

	if cfg.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", cfg.RoundRobinTimeQuantum)
	}
	if cfg.MaxProcesses < 0 || cfg.MaxSimulatedTime < 0 {
		return nil, fmt.Errorf("limits must not be negative, got max_processes=%d max_simulated_time=%d", cfg.MaxProcesses, cfg.MaxSimulatedTime)
	}
	return cfg, nil
}
