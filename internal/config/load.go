package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PQBENCH_DATA_DIR.
const EnvPrefix = "PQBENCH"

// FlagBindings maps CLI flag names to configuration keys. Flags missing from
// the flag set passed to Load are ignored.
var FlagBindings = map[string]string{
	"data-dir":             "data_dir",
	"graphs-dir":           "graphs_dir",
	"verbose":              "verbose",
	"log-file":             "log_file",
	"metrics-file":         "metrics_file",
	"classical-iterations": "classical.iterations",
	"pqc-iterations":       "pqc.iterations",
	"kem-preference":       "pqc.kem_preference",
	"sig-preference":       "pqc.signature_preference",
	"message":              "pqc.message",
}

// Settings is the resolved configuration handed to every component.
type Settings struct {
	DataDir     string `mapstructure:"data_dir" yaml:"data_dir"`
	GraphsDir   string `mapstructure:"graphs_dir" yaml:"graphs_dir"`
	Verbose     bool   `mapstructure:"verbose" yaml:"verbose"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file,omitempty"`
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file,omitempty"`

	Classical ClassicalSettings `mapstructure:"classical" yaml:"classical"`
	PQC       PQCSettings       `mapstructure:"pqc" yaml:"pqc"`
}

type ClassicalSettings struct {
	Iterations int              `mapstructure:"iterations" yaml:"iterations"`
	Benchmarks []ClassicalEntry `mapstructure:"benchmarks" yaml:"benchmarks"`
}

// ClassicalEntry is one external command to benchmark. Command is split
// with shell quoting rules; no shell is involved in running it.
type ClassicalEntry struct {
	Algorithm string `mapstructure:"algorithm" yaml:"algorithm"`
	Operation string `mapstructure:"operation" yaml:"operation"`
	Command   string `mapstructure:"command" yaml:"command"`
}

type PQCSettings struct {
	Iterations          int      `mapstructure:"iterations" yaml:"iterations"`
	KEMPreference       []string `mapstructure:"kem_preference" yaml:"kem_preference"`
	SignaturePreference []string `mapstructure:"signature_preference" yaml:"signature_preference"`
	Message             string   `mapstructure:"message" yaml:"message"`
}

// ClassicalCSV is the classical runner's output file.
func (s *Settings) ClassicalCSV() string {
	return filepath.Join(s.DataDir, "classical.csv")
}

// PQCCSV is the post-quantum runner's output file.
func (s *Settings) PQCCSV() string {
	return filepath.Join(s.DataDir, "pqc.csv")
}

// Load resolves settings from, in increasing priority: defaults, the config
// file, a .env file, environment variables and changed flags. Each call uses
// its own viper instance.
func Load(cfgFile string, flags *pflag.FlagSet) (*Settings, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("pqbench")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	base := "pq-project"
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, "pq-project")
	}

	v.SetDefault("data_dir", filepath.Join(base, "data"))
	v.SetDefault("graphs_dir", filepath.Join(base, "graphs"))
	v.SetDefault("verbose", false)
	v.SetDefault("log_file", "")
	v.SetDefault("metrics_file", "")

	v.SetDefault("classical.iterations", 5)
	v.SetDefault("classical.benchmarks", []map[string]any{
		{"algorithm": "RSA-2048", "operation": "keygen", "command": "openssl genrsa 2048"},
		{"algorithm": "RSA-4096", "operation": "keygen", "command": "openssl genrsa 4096"},
		{"algorithm": "ECDSA-P256", "operation": "keygen", "command": "openssl ecparam -name prime256v1 -genkey"},
	})

	v.SetDefault("pqc.iterations", 50)
	v.SetDefault("pqc.kem_preference", []string{"Kyber768", "ML-KEM-768", "Kyber512", "ML-KEM-512"})
	v.SetDefault("pqc.signature_preference", []string{"ML-DSA-87", "ML-DSA-65", "ML-DSA-44", "Dilithium3", "Dilithium2"})
	v.SetDefault("pqc.message", "test message for signing")
}
