package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Server   *Server   `json:"server" yaml:"server"`
	Database *Database `json:"database" yaml:"database"`
	Redis    *Redis    `json:"redis" yaml:"redis"`
	Jwt      *Jwt      `json:"jwt" yaml:"jwt"`
	Cors     *Cors     `json:"cors" yaml:"cors"`
	HashID   *HashID   `json:"hashid" yaml:"hashid"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

type Cors struct {
	AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
}

type HashID struct {
	Salt string `json:"salt" yaml:"salt"`
}

// New loads the yaml file and panics when it cannot be used.
func New(filename string) *Config {
	conf, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load reads filename, applies .env / environment overrides and fills defaults.
func Load(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}
	// .env is optional, a missing file is not an error.
	_ = godotenv.Load()

	conf, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filename, err)
	}
	conf.applyEnv()
	return conf, nil
}

// Parse decodes yaml content and fills defaults. Environment is not consulted.
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	conf.setDefaults()
	return &conf, nil
}

func (c *Config) setDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 3000
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSQLite
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.Secret == "" {
		c.Jwt.Secret = "dev_secret"
	}
	if c.Jwt.ExpiresIn == 0 {
		c.Jwt.ExpiresIn = 3600
	}
	if c.Cors == nil {
		c.Cors = &Cors{}
	}
	if c.HashID == nil {
		c.HashID = &HashID{}
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Jwt.Secret = v
	}
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Jwt.ExpiresIn = n
		}
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		c.Database.Dsn = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Server.Http = n
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		if c.Redis == nil {
			c.Redis = &Redis{}
		}
		c.Redis.Address = v
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
