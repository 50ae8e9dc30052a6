package config

import (
	"os"

	logger "github.com/ElrondNetwork/elrond-go-logger"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// DefaultConfigPath is where the commands look for their TOML configuration.
const DefaultConfigPath = "./config/config.toml"

const (
	AirdropAddressPlaceholder    = "YOUR_AIRDROP_CONTRACT_ADDRESS"
	GovernanceAddressPlaceholder = "YOUR_GOVERNANCE_CONTRACT_ADDRESS"
)

const (
	defaultTriggerEndpoint      = "monthlyAirdrop"
	defaultTreasuryEndpoint     = "getTreasury"
	defaultParticipantsEndpoint = "getParticipants"
	defaultContributionEndpoint = "getContribution"
	defaultProposalEndpoint     = "submitProposal"
	defaultServerPort           = ":8080"
)

var log = logger.GetOrCreate("config")

type GeneralConfig struct {
	Blockchain BlockchainInformation
	Airdrop    AirdropConfig
	Governance GovernanceConfig
	Server     ServerConfig
}

type BlockchainInformation struct {
	GasPrice uint64
	GasLimit uint64
	ProxyUrl string
	ChainID  string
	PemPath  string
}

// AirdropConfig addresses the airdrop contract and names its endpoints.
type AirdropConfig struct {
	Address              string
	TriggerEndpoint      string
	TreasuryEndpoint     string
	ParticipantsEndpoint string
	ContributionEndpoint string
}

// GovernanceConfig addresses the contract proposals are submitted to.
// GasLimit, when set, replaces the blockchain default for proposal calls.
type GovernanceConfig struct {
	Address  string
	Endpoint string
	GasLimit uint64
}

type ServerConfig struct {
	Port string
}

func LoadConfig(configPath string) (GeneralConfig, error) {
	configFile, err := os.Open(configPath)
	if err != nil {
		return GeneralConfig{}, NewConfigurationError(configPath, "cannot open config file", err)
	}
	defer func(configFile *os.File) {
		err = configFile.Close()
		if err != nil {
			log.Error("failure closing file reader", "err", err.Error())
		}
	}(configFile)

	config := &GeneralConfig{}
	err = toml.NewDecoder(configFile).Decode(config)
	if err != nil {
		return GeneralConfig{}, NewConfigurationError(configPath, "malformed config file", errors.WithStack(err))
	}

	config.applyDefaults()
	log.Debug("loaded config", "path", configPath, "proxy", config.Blockchain.ProxyUrl)

	return *config, nil
}

func (gc *GeneralConfig) applyDefaults() {
	if gc.Airdrop.TriggerEndpoint == "" {
		gc.Airdrop.TriggerEndpoint = defaultTriggerEndpoint
	}
	if gc.Airdrop.TreasuryEndpoint == "" {
		gc.Airdrop.TreasuryEndpoint = defaultTreasuryEndpoint
	}
	if gc.Airdrop.ParticipantsEndpoint == "" {
		gc.Airdrop.ParticipantsEndpoint = defaultParticipantsEndpoint
	}
	if gc.Airdrop.ContributionEndpoint == "" {
		gc.Airdrop.ContributionEndpoint = defaultContributionEndpoint
	}
	if gc.Governance.Endpoint == "" {
		gc.Governance.Endpoint = defaultProposalEndpoint
	}
	if gc.Server.Port == "" {
		gc.Server.Port = defaultServerPort
	}
}
