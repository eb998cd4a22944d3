package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultVaultAddress    = "https://amnplus.onrender.com"
	DefaultIdentityAddress = "https://identitytoolkit.googleapis.com"
	DefaultTokenAddress    = "https://securetoken.googleapis.com"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultKDFIterations   = 100000
	DefaultDecryptWorkers  = 8
	DefaultVersion         = "dev"
)

// defaultConfig returns the lowest-priority config layer. The KDF salt is
// left empty on purpose: the crypto package owns its default.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			KDFIterations:  DefaultKDFIterations,
			DecryptWorkers: DefaultDecryptWorkers,
			Version:        DefaultVersion,
		},
		Adapter: Adapter{
			VaultAddress:    DefaultVaultAddress,
			IdentityAddress: DefaultIdentityAddress,
			TokenAddress:    DefaultTokenAddress,
			RequestTimeout:  DefaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN()},
		},
	}
}

// defaultDSN places the cache database in the per-user config directory,
// falling back to the working directory.
func defaultDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "amnplus.db"
	}
	return filepath.Join(dir, "amnplus", "amnplus.db")
}
