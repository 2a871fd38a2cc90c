package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Server  ServerConfig  `json:"server"`
	Storage StorageConfig `json:"storage"`
	PDF     PDFConfig     `json:"pdf"`
	Logging LoggingConfig `json:"logging"`
}

type ServerConfig struct {
	Port int    `json:"port"`
	Host string `json:"host"`
}

type StorageConfig struct {
	DataDir      string `json:"data_dir"`
	DatabaseFile string `json:"database_file"`
}

// PDFConfig selects the export backend. "auto" tries headless Chrome, then
// wkhtmltopdf, then the built-in renderer; naming one restricts to it.
type PDFConfig struct {
	Generator string `json:"generator"`
	PaperSize string `json:"paper_size"`
}

type LoggingConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// DatabasePath is the resolved location of the workspace database file.
func (c *Config) DatabasePath() string {
	if filepath.IsAbs(c.Storage.DatabaseFile) {
		return c.Storage.DatabaseFile
	}
	return filepath.Join(c.Storage.DataDir, c.Storage.DatabaseFile)
}

// LoadConfig builds the configuration from defaults, the optional JSON file
// at path and finally environment variables, in increasing priority.
func LoadConfig(path string) (*Config, error) {
	config := getDefaultConfig()

	loadFromEnvironment(config)

	file, err := os.Open(path)
	if err == nil {
		defer file.Close()
		decoder := json.NewDecoder(file)
		if err := decoder.Decode(config); err != nil {
			return nil, err
		}
		// Environment variables win over the file.
		loadFromEnvironment(config)
	}

	return config, nil
}

func (c *Config) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(c)
}

func getDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Storage: StorageConfig{
			DataDir:      "data",
			DatabaseFile: "invoicedesk.db",
		},
		PDF: PDFConfig{
			Generator: "auto",
			PaperSize: "A4",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

func loadFromEnvironment(config *Config) {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if dir := os.Getenv("DATA_DIR"); dir != "" {
		config.Storage.DataDir = dir
	}
	if file := os.Getenv("DATABASE_FILE"); file != "" {
		config.Storage.DatabaseFile = file
	}

	if generator := os.Getenv("PDF_GENERATOR"); generator != "" {
		config.PDF.Generator = generator
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if file := os.Getenv("LOG_FILE"); file != "" {
		config.Logging.File = file
	}
}
