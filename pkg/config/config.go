package config

import (
	"os"
	"strings"

	"github.com/elchead/knapsack-solver/pkg/algorithms"
	"github.com/elchead/knapsack-solver/pkg/solver"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

const (
	EnvPrefix      = "KNAPSACK"
	DefaultEnvFile = ".env"
	StrategyBoth   = "both"
)

type Influx struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

func (i Influx) Enabled() bool { return i.URL != "" }

type Config struct {
	Strategy string
	Order    string
	LogLevel string
	Influx   Influx
}

// ReadEnv loads variables from an env file into the process environment.
// A missing default file is not an error.
func ReadEnv(envFile string) error {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	err := godotenv.Load(envFile)
	if err != nil && envFile == DefaultEnvFile && os.IsNotExist(errors.Cause(err)) {
		return nil
	}
	return errors.Wrapf(err, "load env file %s", envFile)
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("strategy", StrategyBoth)
	v.SetDefault("order", algorithms.Ascending.String())
	v.SetDefault("log_level", "info")
	v.SetDefault("influx.bucket", "default")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Strategy: v.GetString("strategy"),
		Order:    v.GetString("order"),
		LogLevel: v.GetString("log_level"),
		Influx: Influx{
			URL:    v.GetString("influx.url"),
			Token:  v.GetString("influx.token"),
			Org:    v.GetString("influx.org"),
			Bucket: v.GetString("influx.bucket"),
		},
	}
	if cfg.Influx.Token == "" {
		cfg.Influx.Token = os.Getenv("INFLUXDB_TOKEN")
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := c.Strategies(); err != nil {
		return err
	}
	if _, err := algorithms.ParseSortOrder(c.Order); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if c.Influx.Enabled() && c.Influx.Org == "" {
		return errors.New("invalid config: influx org is required when influx url is set")
	}
	return nil
}

// Strategies resolves the configured strategy name, "both" selecting all of them.
func (c Config) Strategies() ([]solver.Strategy, error) {
	if strings.EqualFold(c.Strategy, StrategyBoth) {
		return solver.Strategies(), nil
	}
	var res []solver.Strategy
	for _, name := range strings.Split(c.Strategy, ",") {
		s, err := solver.ParseStrategy(name)
		if err != nil {
			return nil, errors.Wrap(err, "invalid config")
		}
		if !slices.Contains(res, s) {
			res = append(res, s)
		}
	}
	return res, nil
}

func (c Config) SortOrder() algorithms.SortOrder {
	order, _ := algorithms.ParseSortOrder(c.Order)
	return order
}
