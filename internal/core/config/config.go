package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level      string
	JSON       bool
	File       string // when set, logs also rotate into this file
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type JWT struct {
	Secret   string
	Issuer   string
	TTLHours int
}

// Store selects the persistence backend: "file" keeps everything in one
// JSON document at Path, "postgres"/"mysql" go through gorm with DSN.
type Store struct {
	Driver             string
	Path               string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

// Upload selects the image intake strategy: "disk" or "remote".
type Upload struct {
	Strategy     string
	PublicDir    string
	MaxSizeMB    int
	ServiceURL   string
	ServiceToken string
}

type Mail struct {
	Host     string
	Port     int
	Username string
	Password string
	To       string
}

type Redis struct {
	Addr       string `mapstructure:"addr"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	ListTTLSec int    `mapstructure:"listttlsec"`
}

type Config struct {
	App    App
	Log    Log
	JWT    JWT
	Store  Store
	Upload Upload
	Mail   Mail
	Redis  Redis `mapstructure:"redis"`
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 5000)
	v.SetDefault("app.http.readtimeoutsec", 5)
	v.SetDefault("app.http.writetimeoutsec", 10)
	v.SetDefault("app.http.idletimeoutsec", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("jwt.issuer", "portfolio-api")
	v.SetDefault("jwt.ttlhours", 168)
	v.SetDefault("store.driver", "file")
	v.SetDefault("store.path", "./data.json")
	v.SetDefault("store.maxopenconns", 10)
	v.SetDefault("store.maxidleconns", 5)
	v.SetDefault("store.connmaxlifetimemin", 30)
	v.SetDefault("store.automigrate", true)
	v.SetDefault("store.loglevel", "warn")
	v.SetDefault("upload.strategy", "disk")
	v.SetDefault("upload.publicdir", "./public")
	v.SetDefault("upload.maxsizemb", 5)
	v.SetDefault("mail.port", 587)
	v.SetDefault("redis.listttlsec", 30)

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	return &c
}
