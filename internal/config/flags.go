package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the configuration flags bound to a command's persistent flag
// set. Values are read after the command line has been parsed.
type Flags struct {
	jsonConfigPath  string
	vaultAddress    string
	identityAddress string
	tokenAddress    string
	identityAPIKey  string
	requestTimeout  time.Duration
	kdfSalt         string
	kdfIterations   int
	decryptWorkers  int
	dbDSN           string
	logFile         string
	logLevel        string
}

// RegisterFlags binds all configuration flags to fs and returns the holder
// that [GetStructuredConfig] reads them from.
//
// Flags:
//
//	-c/--config        JSON config file path
//	--vault-address    vault backend base URL
//	--identity-address identity provider account API base URL
//	--token-address    identity provider token API base URL
//	--api-key          identity provider web API key
//	--request-timeout  outbound request timeout (e.g. "15s")
//	--kdf-salt         deployment key-derivation salt
//	--kdf-iterations   key-derivation iteration count
//	--decrypt-workers  parallel decryptions per list
//	-d/--db            local cache database path
//	--log-file         log file path
//	--log-level        log level
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.vaultAddress, "vault-address", "", "Vault backend base URL")
	fs.StringVar(&f.identityAddress, "identity-address", "", "Identity provider account API base URL")
	fs.StringVar(&f.tokenAddress, "token-address", "", "Identity provider token API base URL")
	fs.StringVar(&f.identityAPIKey, "api-key", "", "Identity provider web API key")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&f.kdfSalt, "kdf-salt", "", "Deployment key-derivation salt")
	fs.IntVar(&f.kdfIterations, "kdf-iterations", 0, "Key-derivation iteration count")
	fs.IntVar(&f.decryptWorkers, "decrypt-workers", 0, "Parallel decryptions per list")
	fs.StringVarP(&f.dbDSN, "db", "d", "", "Local cache database path")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	return f
}

func (f *Flags) config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			KDFSalt:        f.kdfSalt,
			KDFIterations:  f.kdfIterations,
			DecryptWorkers: f.decryptWorkers,
		},
		Adapter: Adapter{
			VaultAddress:    f.vaultAddress,
			IdentityAddress: f.identityAddress,
			TokenAddress:    f.tokenAddress,
			IdentityAPIKey:  f.identityAPIKey,
			RequestTimeout:  f.requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: f.dbDSN},
		},
		Log: Log{
			File:  f.logFile,
			Level: f.logLevel,
		},
		JSONFilePath: f.jsonConfigPath,
	}
}
