package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		KDFSalt        string `json:"kdf_salt"`
		KDFIterations  int    `json:"kdf_iterations"`
		DecryptWorkers int    `json:"decrypt_workers"`
		Version        string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		VaultAddress    string   `json:"vault_address"`
		IdentityAddress string   `json:"identity_address"`
		TokenAddress    string   `json:"token_address"`
		IdentityAPIKey  string   `json:"identity_api_key"`
		RequestTimeout  Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
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
			KDFSalt:        jsonCfg.App.KDFSalt,
			KDFIterations:  jsonCfg.App.KDFIterations,
			DecryptWorkers: jsonCfg.App.DecryptWorkers,
			Version:        jsonCfg.App.Version,
		},
		Adapter: Adapter{
			VaultAddress:    jsonCfg.Adapter.VaultAddress,
			IdentityAddress: jsonCfg.Adapter.IdentityAddress,
			TokenAddress:    jsonCfg.Adapter.TokenAddress,
			IdentityAPIKey:  jsonCfg.Adapter.IdentityAPIKey,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
