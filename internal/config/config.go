package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application settings loaded from the config file and
// environment variables. LLM provider selection and API keys are handled
// separately by the llm package.
type Config struct {
	Subjects    []string    `mapstructure:"subjects"`     // subjects offered in subject mode
	SubjectTest TestConfig  `mapstructure:"subject_test"` // subject-wise test shape
	FullMock    MockConfig  `mapstructure:"full_mock"`    // full mock exam shape
	Leaderboard BoardConfig `mapstructure:"leaderboard"`  // leaderboard settings
	DBPath      string      `mapstructure:"-"`            // database path, from file or PREPDECK_DB
	CertDir     string      `mapstructure:"cert_dir"`     // directory for rendered certificates
}

// TestConfig is the shape of a subject-wise test.
type TestConfig struct {
	Questions int           `mapstructure:"questions"`
	Duration  time.Duration `mapstructure:"duration"`
}

// MockConfig is the shape of the full mock exam.
type MockConfig struct {
	Duration time.Duration   `mapstructure:"duration"`
	Sections []SectionConfig `mapstructure:"sections"`
}

// SectionConfig is one subject slice of the full mock paper.
type SectionConfig struct {
	Subject string `mapstructure:"subject"`
	Count   int    `mapstructure:"count"`
}

// BoardConfig holds leaderboard settings.
type BoardConfig struct {
	Size int `mapstructure:"size"`
}

// Load reads configuration from an optional yaml file and environment
// variables. A missing file falls back to defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$XDG_CONFIG_HOME/prepdeck")
	v.AddConfigPath("$HOME/.config/prepdeck")
	v.AddConfigPath(".")

	v.SetDefault("subjects", []string{"Mathematics", "Science", "English", "General Knowledge"})
	v.SetDefault("subject_test.questions", 10)
	v.SetDefault("subject_test.duration", "10m")
	v.SetDefault("full_mock.duration", "60m")
	v.SetDefault("leaderboard.size", 5)
	v.SetDefault("cert_dir", ".")

	v.SetEnvPrefix("PREPDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("db_path", "PREPDECK_DB")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.DBPath = v.GetString("db_path")

	if len(cfg.FullMock.Sections) == 0 {
		cfg.FullMock.Sections = defaultSections()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultSections() []SectionConfig {
	return []SectionConfig{
		{Subject: "Mathematics", Count: 15},
		{Subject: "Science", Count: 15},
		{Subject: "English", Count: 10},
		{Subject: "General Knowledge", Count: 10},
	}
}

// Validate rejects settings that could never produce a working test.
func (c *Config) Validate() error {
	if len(c.Subjects) == 0 {
		return errors.New("config: at least one subject is required")
	}
	if c.SubjectTest.Questions <= 0 {
		return fmt.Errorf("config: subject_test.questions must be positive, got %d", c.SubjectTest.Questions)
	}
	if c.SubjectTest.Duration <= 0 {
		return fmt.Errorf("config: subject_test.duration must be positive, got %s", c.SubjectTest.Duration)
	}
	if c.FullMock.Duration <= 0 {
		return fmt.Errorf("config: full_mock.duration must be positive, got %s", c.FullMock.Duration)
	}
	total := 0
	for _, s := range c.FullMock.Sections {
		if s.Subject == "" || s.Count <= 0 {
			return fmt.Errorf("config: invalid full_mock section %+v", s)
		}
		total += s.Count
	}
	if total <= 0 {
		return errors.New("config: full_mock needs at least one section question")
	}
	if c.Leaderboard.Size <= 0 {
		return fmt.Errorf("config: leaderboard.size must be positive, got %d", c.Leaderboard.Size)
	}
	return nil
}
