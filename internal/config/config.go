package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage drivers
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

// DefaultConfigPath is used when no --config flag is given
const DefaultConfigPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Storage struct {
		Driver         string `yaml:"driver" env:"STORAGE_DRIVER"`
		DataDir        string `yaml:"data_dir" env:"STORAGE_DATA_DIR"`
		StudentFile    string `yaml:"student_file" env:"STORAGE_STUDENT_FILE"`
		AttendanceFile string `yaml:"attendance_file" env:"STORAGE_ATTENDANCE_FILE"`
	} `yaml:"storage"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Hostel struct {
		RoomCapacity     int  `yaml:"room_capacity" env:"HOSTEL_ROOM_CAPACITY"`
		MinRoom          int  `yaml:"min_room" env:"HOSTEL_MIN_ROOM"`
		MaxRoom          int  `yaml:"max_room" env:"HOSTEL_MAX_ROOM"`
		EnforceRoomRange bool `yaml:"enforce_room_range" env:"HOSTEL_ENFORCE_ROOM_RANGE"`
	} `yaml:"hostel"`

	Admin struct {
		PINHash string `yaml:"pin_hash" env:"ADMIN_PIN_HASH"`
	} `yaml:"admin"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
		File   string `yaml:"file" env:"LOG_FILE"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// A missing config file is fine; defaults and env still apply
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Storage.Driver = DriverFile
	config.Storage.DataDir = "."
	config.Storage.StudentFile = "student_data.txt"
	config.Storage.AttendanceFile = "attendance.txt"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "hostel"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 1
	config.Database.MaxOpenConns = 4
	config.Database.ConnMaxLifetime = "1h"

	config.Hostel.RoomCapacity = 4
	config.Hostel.MinRoom = 1
	config.Hostel.MaxRoom = 10
	config.Hostel.EnforceRoomRange = false

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.File = "hostel.log"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch strings.ToLower(config.Storage.Driver) {
	case DriverFile:
		if config.Storage.StudentFile == "" || config.Storage.AttendanceFile == "" {
			return fmt.Errorf("student and attendance file names are required")
		}
		if config.Storage.StudentFile == config.Storage.AttendanceFile {
			return fmt.Errorf("student and attendance files must differ")
		}
	case DriverPostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("invalid database conn_max_lifetime: %w", err)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}
	config.Storage.Driver = strings.ToLower(config.Storage.Driver)

	if config.Hostel.RoomCapacity < 1 {
		return fmt.Errorf("room capacity must be at least 1")
	}

	if config.Hostel.MinRoom > config.Hostel.MaxRoom {
		return fmt.Errorf("min_room (%d) exceeds max_room (%d)", config.Hostel.MinRoom, config.Hostel.MaxRoom)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
