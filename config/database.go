package config

import "fmt"

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// sqlitePragmas turn on foreign keys and wait on locks instead of failing.
const sqlitePragmas = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

type Database struct {
	Driver   string `json:"driver" yaml:"driver"`
	Dsn      string `json:"dsn" yaml:"dsn"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database string `json:"database" yaml:"database"`
	MaxOpen  int    `json:"max_open" yaml:"max_open"`
	MaxIdle  int    `json:"max_idle" yaml:"max_idle"`
}

// DSN returns the explicit dsn if set, otherwise builds one for the driver.
func (d *Database) DSN() string {
	if d.Dsn != "" {
		return d.Dsn
	}
	switch d.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	case DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
			d.Host, d.Username, d.Password, d.Database, d.Port)
	default:
		name := d.Database
		if name == "" {
			name = "socialnetwork.db"
		}
		return name + sqlitePragmas
	}
}
