// Package config defines the configuration surface consumed by the core.
// Core packages take these values at construction time and never read the
// environment themselves.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rcliao/career-vault/internal/check"
	"github.com/rcliao/career-vault/internal/model"
)

// Config is the root application configuration.
type Config struct {
	Data       DataConfig       `mapstructure:"data"`
	Validation ValidationConfig `mapstructure:"validation"`
	Checks     ChecksConfig     `mapstructure:"checks"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Contact    ContactConfig    `mapstructure:"contact"`
}

// DataConfig locates and tunes the record store.
type DataConfig struct {
	// Path of the career data JSON file.
	Path string `mapstructure:"path"`
	// BackupEnabled keeps a single-generation .bak sibling.
	BackupEnabled bool `mapstructure:"backup_enabled"`
	// CacheEnabled keeps the last loaded store in memory.
	CacheEnabled bool `mapstructure:"cache_enabled"`
	// CacheTTL optionally expires the cache by age, on top of the
	// modification-timestamp check. Zero disables the TTL.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// ValidationConfig tunes the schema range rules.
type ValidationConfig struct {
	MinYear       int      `mapstructure:"min_year"`
	SkillDenylist []string `mapstructure:"skill_denylist"`
}

// ChecksConfig tunes the consistency and authenticity checkers.
type ChecksConfig struct {
	YearsBack           int      `mapstructure:"years_back"`
	SimilarityThreshold float64  `mapstructure:"similarity_threshold"`
	VagueQuantifiers    []string `mapstructure:"vague_quantifiers"`
	Superlatives        []string `mapstructure:"superlatives"`
	FutureTense         []string `mapstructure:"future_tense"`
}

// LoggingConfig selects log level and encoding.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ContactConfig seeds the contact block of a freshly created store.
type ContactConfig struct {
	Name     string `mapstructure:"name"`
	Email    string `mapstructure:"email"`
	Phone    string `mapstructure:"phone"`
	LinkedIn string `mapstructure:"linkedin"`
	Location string `mapstructure:"location"`
}

// DefaultDataPath is the store location when nothing is configured.
func DefaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "career_data.json"
	}
	return filepath.Join(home, ".career-vault", "career_data.json")
}

// Load reads configuration from the given file (or, when path is empty,
// from ~/.career-vault/config.yaml if present) with defaults for every
// field. A missing config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CAREER_VAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".career-vault"))
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.path", DefaultDataPath())
	v.SetDefault("data.backup_enabled", true)
	v.SetDefault("data.cache_enabled", true)
	v.SetDefault("data.cache_ttl", time.Duration(0))

	v.SetDefault("validation.min_year", 1950)
	v.SetDefault("validation.skill_denylist", model.DefaultSkillDenylist)

	v.SetDefault("checks.years_back", 10)
	v.SetDefault("checks.similarity_threshold", check.DefaultSimilarityThreshold)
	v.SetDefault("checks.vague_quantifiers", check.DefaultVagueQuantifiers)
	v.SetDefault("checks.superlatives", check.DefaultSuperlatives)
	v.SetDefault("checks.future_tense", check.DefaultFutureTense)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("contact.name", "Your Name")
	v.SetDefault("contact.email", "your.email@example.com")
	v.SetDefault("contact.phone", "000-000-0000")
	v.SetDefault("contact.linkedin", "")
	v.SetDefault("contact.location", "")
}

// ValidateOptions builds the schema rule set from the configuration.
func (c *Config) ValidateOptions(now time.Time) model.ValidateOptions {
	opts := model.DefaultValidateOptions(now)
	if c.Validation.MinYear > 0 {
		opts.MinYear = c.Validation.MinYear
	}
	if len(c.Validation.SkillDenylist) > 0 {
		opts.SkillDenylist = c.Validation.SkillDenylist
	}
	return opts
}

// ConsistencyOptions builds the consistency checker bounds.
func (c *Config) ConsistencyOptions(now time.Time) check.ConsistencyOptions {
	opts := check.DefaultConsistencyOptions(now)
	if c.Checks.YearsBack > 0 {
		opts.YearsBack = c.Checks.YearsBack
	}
	return opts
}

// AuthenticityOptions builds the authenticity pattern lists.
func (c *Config) AuthenticityOptions() check.AuthenticityOptions {
	opts := check.DefaultAuthenticityOptions()
	if len(c.Checks.VagueQuantifiers) > 0 {
		opts.VagueQuantifiers = c.Checks.VagueQuantifiers
	}
	if len(c.Checks.Superlatives) > 0 {
		opts.Superlatives = c.Checks.Superlatives
	}
	if len(c.Checks.FutureTense) > 0 {
		opts.FutureTense = c.Checks.FutureTense
	}
	if c.Checks.SimilarityThreshold > 0 {
		opts.SimilarityThreshold = c.Checks.SimilarityThreshold
	}
	return opts
}

// DefaultContact converts the configured contact block into the model type.
func (c *Config) DefaultContact() model.ContactInfo {
	return model.ContactInfo{
		Name:     c.Contact.Name,
		Email:    c.Contact.Email,
		Phone:    c.Contact.Phone,
		LinkedIn: c.Contact.LinkedIn,
		Location: c.Contact.Location,
	}
}
