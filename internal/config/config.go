package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/vms/vms/internal/storage"
)

type Config struct {
	Env             string `mapstructure:"ENV"`
	LogLevel        string `mapstructure:"VMS_LOG_LEVEL"`
	DataDir         string `mapstructure:"VMS_DATA_DIR"`
	PatientFile     string `mapstructure:"VMS_PATIENT_FILE"`
	AppointmentFile string `mapstructure:"VMS_APPOINTMENT_FILE"`
	VaccinationFile string `mapstructure:"VMS_VACCINATION_FILE"`
	KeywordFile     string `mapstructure:"VMS_KEYWORD_FILE"`
	PageSize        int    `mapstructure:"VMS_PAGE_SIZE"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("VMS_LOG_LEVEL", "warn")
	v.SetDefault("VMS_DATA_DIR", "data")
	v.SetDefault("VMS_PATIENT_FILE", "patients.json")
	v.SetDefault("VMS_APPOINTMENT_FILE", "appointments.json")
	v.SetDefault("VMS_VACCINATION_FILE", "vaccinations.json")
	v.SetDefault("VMS_KEYWORD_FILE", "keywords.json")
	v.SetDefault("VMS_PAGE_SIZE", 20)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("VMS_LOG_LEVEL")
	v.BindEnv("VMS_DATA_DIR")
	v.BindEnv("VMS_PATIENT_FILE")
	v.BindEnv("VMS_APPOINTMENT_FILE")
	v.BindEnv("VMS_VACCINATION_FILE")
	v.BindEnv("VMS_KEYWORD_FILE")
	v.BindEnv("VMS_PAGE_SIZE")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Level returns the parsed VMS_LOG_LEVEL.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

// StoragePaths resolves the data file names. Relative names are placed under
// VMS_DATA_DIR; absolute names are used as given.
func (c *Config) StoragePaths() storage.Paths {
	resolve := func(name string) string {
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(c.DataDir, name)
	}
	return storage.Paths{
		Patients:     resolve(c.PatientFile),
		Appointments: resolve(c.AppointmentFile),
		Vaccinations: resolve(c.VaccinationFile),
		Keywords:     resolve(c.KeywordFile),
	}
}

// Validate checks that the configuration can be used to run a session. Every
// data file must be named, the four files must differ, and the page size must
// be a valid listing limit.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("VMS_LOG_LEVEL %q is not a valid level: %w", c.LogLevel, err)
	}
	if c.PageSize < 1 || c.PageSize > 100 {
		return fmt.Errorf("VMS_PAGE_SIZE must be between 1 and 100, got %d", c.PageSize)
	}

	files := map[string]string{
		"VMS_PATIENT_FILE":     c.PatientFile,
		"VMS_APPOINTMENT_FILE": c.AppointmentFile,
		"VMS_VACCINATION_FILE": c.VaccinationFile,
		"VMS_KEYWORD_FILE":     c.KeywordFile,
	}
	for key, name := range files {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%s is required", key)
		}
	}

	p := c.StoragePaths()
	seen := make(map[string]bool, 4)
	for _, path := range []string{p.Patients, p.Appointments, p.Vaccinations, p.Keywords} {
		clean := filepath.Clean(path)
		if seen[clean] {
			return fmt.Errorf("data files must be distinct, %s is used twice", clean)
		}
		seen[clean] = true
	}
	return nil
}
