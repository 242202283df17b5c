package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
		LogFile  string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		Path    string `json:"path"`
	} `json:"storage,omitempty"`

	Crypto struct {
		ArgonTime      uint32 `json:"argon_time"`
		ArgonMemoryKiB uint32 `json:"argon_memory_kib"`
		ArgonThreads   uint8  `json:"argon_threads"`
	} `json:"crypto,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		AutoLockAfter         Duration `json:"auto_lock_after"`
		AutoLockCheckInterval Duration `json:"auto_lock_check_interval"`
	} `json:"workers,omitempty"`

	Export struct {
		DateLayout string `json:"date_layout"`
	} `json:"export,omitempty"`
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
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			Path:    jsonCfg.Storage.Path,
		},
		Crypto: Crypto{
			ArgonTime:      jsonCfg.Crypto.ArgonTime,
			ArgonMemoryKiB: jsonCfg.Crypto.ArgonMemoryKiB,
			ArgonThreads:   jsonCfg.Crypto.ArgonThreads,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			AutoLockAfter:         time.Duration(jsonCfg.Workers.AutoLockAfter),
			AutoLockCheckInterval: time.Duration(jsonCfg.Workers.AutoLockCheckInterval),
		},
		Export: Export{
			DateLayout: jsonCfg.Export.DateLayout,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
