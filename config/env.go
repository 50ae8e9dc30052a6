package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables overriding values from the TOML file.
const (
	EnvProxyUrl          = "BEAR_PROXY_URL"
	EnvChainID           = "BEAR_CHAIN_ID"
	EnvPemPath           = "BEAR_PEM_PATH"
	EnvGasLimit          = "BEAR_GAS_LIMIT"
	EnvAirdropAddress    = "BEAR_AIRDROP_ADDRESS"
	EnvGovernanceAddress = "BEAR_GOVERNANCE_ADDRESS"
	EnvServerPort        = "BEAR_SERVER_PORT"
)

// LookupFunc resolves an environment variable, as os.LookupEnv does.
type LookupFunc func(key string) (string, bool)

// ApplyEnvironment overrides cfg with BEAR_* variables. Values from the
// process environment win over values read from envFile. A missing
// envFile is not an error.
func ApplyEnvironment(cfg *GeneralConfig, envFile string, lookup LookupFunc) error {
	fileValues := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileValues = values
		case os.IsNotExist(err):
			log.Debug("no env file found", "path", envFile)
		default:
			return NewConfigurationError(envFile, "malformed env file", err)
		}
	}

	resolve := func(key string) (string, bool) {
		if lookup != nil {
			if v, ok := lookup(key); ok && v != "" {
				return v, true
			}
		}
		v, ok := fileValues[key]
		return v, ok && v != ""
	}

	if v, ok := resolve(EnvProxyUrl); ok {
		cfg.Blockchain.ProxyUrl = v
	}
	if v, ok := resolve(EnvChainID); ok {
		cfg.Blockchain.ChainID = v
	}
	if v, ok := resolve(EnvPemPath); ok {
		cfg.Blockchain.PemPath = v
	}
	if v, ok := resolve(EnvGasLimit); ok {
		gasLimit, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return NewConfigurationError(EnvGasLimit, "not an unsigned integer", err)
		}
		cfg.Blockchain.GasLimit = gasLimit
	}
	if v, ok := resolve(EnvAirdropAddress); ok {
		cfg.Airdrop.Address = v
	}
	if v, ok := resolve(EnvGovernanceAddress); ok {
		cfg.Governance.Address = v
	}
	if v, ok := resolve(EnvServerPort); ok {
		cfg.Server.Port = v
	}

	return nil
}
