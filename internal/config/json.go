package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
// Durations accept Go duration strings ("30s") or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Environment string `json:"environment"`
		BaseURL     string `json:"base_url"`
		LogLevel    string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Session struct {
		CookieName string   `json:"cookie_name"`
		TTL        Duration `json:"ttl"`
		Secret     string   `json:"secret"`
		Issuer     string   `json:"issuer"`
		Prefix     string   `json:"prefix"`
		UserPrefix string   `json:"user_prefix"`
	} `json:"session,omitempty"`

	Reset struct {
		TokenTTL Duration `json:"token_ttl"`
		Prefix   string   `json:"prefix"`
	} `json:"reset,omitempty"`

	Mail struct {
		Provider string `json:"provider"`
		APIKey   string `json:"api_key"`
		From     string `json:"from"`
		Subject  string `json:"subject"`
	} `json:"mail,omitempty"`

	Hashing struct {
		Workers    int    `json:"workers"`
		MemoryKiB  uint32 `json:"memory_kib"`
		Iterations uint32 `json:"iterations"`
		Threads    uint8  `json:"threads"`
	} `json:"hashing,omitempty"`

	Validation struct {
		MinUsernameLength int `json:"min_username_length"`
		MinPasswordLength int `json:"min_password_length"`
	} `json:"validation,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Environment: jsonCfg.App.Environment,
			BaseURL:     jsonCfg.App.BaseURL,
			LogLevel:    jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Session: Session{
			CookieName: jsonCfg.Session.CookieName,
			TTL:        time.Duration(jsonCfg.Session.TTL),
			Secret:     jsonCfg.Session.Secret,
			Issuer:     jsonCfg.Session.Issuer,
			Prefix:     jsonCfg.Session.Prefix,
			UserPrefix: jsonCfg.Session.UserPrefix,
		},
		Reset: Reset{
			TokenTTL: time.Duration(jsonCfg.Reset.TokenTTL),
			Prefix:   jsonCfg.Reset.Prefix,
		},
		Mail: Mail{
			Provider: jsonCfg.Mail.Provider,
			APIKey:   jsonCfg.Mail.APIKey,
			From:     jsonCfg.Mail.From,
			Subject:  jsonCfg.Mail.Subject,
		},
		Hashing: Hashing{
			Workers:    jsonCfg.Hashing.Workers,
			MemoryKiB:  jsonCfg.Hashing.MemoryKiB,
			Iterations: jsonCfg.Hashing.Iterations,
			Threads:    jsonCfg.Hashing.Threads,
		},
		Validation: Validation{
			MinUsernameLength: jsonCfg.Validation.MinUsernameLength,
			MinPasswordLength: jsonCfg.Validation.MinPasswordLength,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
