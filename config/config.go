package config

import (
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Providers ProvidersConfig `yaml:"providers"`
	Data      DataConfig      `yaml:"data"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release
}

type DatabaseConfig struct {
	Type string `yaml:"type"` // sqlite, mysql
	DSN  string `yaml:"dsn"`
}

// CatalogConfig 代理目录配置
type CatalogConfig struct {
	Path string `yaml:"path"` // agents.yaml 路径
}

// ProvidersConfig 各 LLM 提供商的固定配置
type ProvidersConfig struct {
	Gemini GeminiConfig `yaml:"gemini"`
	Grok   GrokConfig   `yaml:"grok"`
}

// GeminiConfig Gemini 提供商配置
// 注意：Gemini 客户端不设置显式超时，保留原系统的不对称行为
type GeminiConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// GrokConfig Grok 提供商配置
type GrokConfig struct {
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

type DataConfig struct {
	Dir string `yaml:"dir"`
}

var (
	cfg  *Config
	once sync.Once
)

func GetConfig() *Config {
	once.Do(func() {
		cfg = loadConfig()
	})
	return cfg
}

func loadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Type: "sqlite",
			DSN:  "./data/app.db",
		},
		Catalog: CatalogConfig{
			Path: "agents.yaml",
		},
		Providers: ProvidersConfig{
			Gemini: GeminiConfig{
				BaseURL: "https://generativelanguage.googleapis.com/v1beta/openai",
				Model:   "gemini-2.0-flash",
			},
			Grok: GrokConfig{
				BaseURL: "https://api.x.ai/v1",
				Model:   "grok-4-fast-reasoning",
				Timeout: 3600 * time.Second,
			},
		},
		Data: DataConfig{
			Dir: "./data",
		},
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err == nil {
		yaml.Unmarshal(data, config)
	}

	// 环境变量优先级高于配置文件
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = port
	}
	if dbType := os.Getenv("DB_TYPE"); dbType != "" {
		config.Database.Type = dbType
	}
	if dbDSN := os.Getenv("DB_DSN"); dbDSN != "" {
		config.Database.DSN = dbDSN
	}
	if catalogPath := os.Getenv("AGENTS_PATH"); catalogPath != "" {
		config.Catalog.Path = catalogPath
	}
	if dataDir := os.Getenv("DATA_DIR"); dataDir != "" {
		config.Data.Dir = dataDir
	}

	return config
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func UpdateConfig(newCfg *Config) {
	cfg = newCfg
}
