package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	Debug    bool   `yaml:"debug"`
}

type WebConfig struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	Secret string `yaml:"secret"`
}

type DBConfig struct {
	Type     string `yaml:"type"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Passwd   string `yaml:"passwd"`
	MaxConn  int    `yaml:"max_conn"`
	IdleConn int    `yaml:"idle_conn"`
	Debug    bool   `yaml:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type SmtpConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type WeatherConfig struct {
	ApiURL   string `yaml:"api_url"`
	CacheTTL int    `yaml:"cache_ttl"`
}

type AppConfig struct {
	System   SysConfig     `yaml:"system"`
	Web      WebConfig     `yaml:"web"`
	Database DBConfig      `yaml:"database"`
	Logger   LogConfig     `yaml:"logger"`
	Smtp     SmtpConfig    `yaml:"smtp"`
	Weather  WeatherConfig `yaml:"weather"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "arecamart",
		Location: "Asia/Kolkata",
		Workdir:  "/var/arecamart",
		Debug:    true,
	},
	Web: WebConfig{
		Host:   "0.0.0.0",
		Port:   1816,
		Secret: "9b6de5cc-arecamart-b712-no-secret",
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "arecamart",
		User:     "postgres",
		Passwd:   "",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/arecamart/arecamart.log",
	},
	Smtp: SmtpConfig{
		Enabled: false,
		Port:    587,
	},
	Weather: WeatherConfig{
		ApiURL:   "https://api.open-meteo.com/v1/forecast",
		CacheTTL: 600,
	},
}

func setEnvValue(name string, f func(v string)) {
	if v, ok := os.LookupEnv(name); ok {
		f(v)
	}
}

func setEnvInt64Value(name string, f func(v int64)) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		f(i)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return
	}
	if b, err := strconv.ParseBool(v); err == nil {
		f(b)
	}
}

// LoadConfig reads the YAML config file and applies environment overrides.
// A missing file is not an error; defaults are used.
func LoadConfig(cfile string) *AppConfig {
	defaults := *DefaultAppConfig
	cfg := &defaults
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvValue("ARECAMART_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("ARECAMART_SYSTEM_LOCATION", func(v string) { cfg.System.Location = v })
	setEnvBoolValue("ARECAMART_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })

	setEnvValue("ARECAMART_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvInt64Value("ARECAMART_WEB_PORT", func(v int64) { cfg.Web.Port = int(v) })
	setEnvValue("ARECAMART_WEB_SECRET", func(v string) { cfg.Web.Secret = v })

	setEnvValue("ARECAMART_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvInt64Value("ARECAMART_DB_PORT", func(v int64) { cfg.Database.Port = int(v) })
	setEnvValue("ARECAMART_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("ARECAMART_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("ARECAMART_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvBoolValue("ARECAMART_DB_DEBUG", func(v bool) { cfg.Database.Debug = v })

	setEnvValue("ARECAMART_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })
	setEnvBoolValue("ARECAMART_LOGGER_FILE_ENABLE", func(v bool) { cfg.Logger.FileEnable = v })

	setEnvBoolValue("ARECAMART_SMTP_ENABLED", func(v bool) { cfg.Smtp.Enabled = v })
	setEnvValue("ARECAMART_SMTP_HOST", func(v string) { cfg.Smtp.Host = v })
	setEnvInt64Value("ARECAMART_SMTP_PORT", func(v int64) { cfg.Smtp.Port = int(v) })
	setEnvValue("ARECAMART_SMTP_USERNAME", func(v string) { cfg.Smtp.Username = v })
	setEnvValue("ARECAMART_SMTP_PASSWORD", func(v string) { cfg.Smtp.Password = v })
	setEnvValue("ARECAMART_SMTP_FROM", func(v string) { cfg.Smtp.From = v })

	return cfg
}
