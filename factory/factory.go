package factory

import (
	"os"

	"github.com/cloudstrikethunderbeing/bear/airdrop"
	"github.com/cloudstrikethunderbeing/bear/config"
	"github.com/cloudstrikethunderbeing/bear/governance"
	"github.com/cloudstrikethunderbeing/bear/interaction"
)

// LoadGeneralConfig reads the TOML config and applies BEAR_* overrides from
// envFile and the process environment.
func LoadGeneralConfig(configPath string, envFile string) (config.GeneralConfig, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.GeneralConfig{}, err
	}

	err = config.ApplyEnvironment(&cfg, envFile, os.LookupEnv)
	if err != nil {
		return config.GeneralConfig{}, err
	}

	return cfg, nil
}

// CreateInteractor loads the PEM identity and binds it to the gateway.
func CreateInteractor(chainInfo config.BlockchainInformation) (*interaction.BlockchainInteractor, error) {
	err := chainInfo.Validate()
	if err != nil {
		return nil, err
	}

	signer, err := interaction.NewPemSigner(chainInfo.PemPath)
	if err != nil {
		return nil, config.NewConfigurationError("Blockchain.PemPath", "cannot load signing identity", err)
	}

	return interaction.NewBlockchainInteractor(chainInfo, signer, interaction.NewElrondProxy(chainInfo.ProxyUrl, nil))
}

func CreateAirdropClient(cfg config.GeneralConfig) (airdrop.ContractClient, error) {
	err := cfg.Airdrop.Validate()
	if err != nil {
		return nil, err
	}

	interactor, err := CreateInteractor(cfg.Blockchain)
	if err != nil {
		return nil, err
	}

	client, err := airdrop.NewContractClient(interactor, cfg.Airdrop)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func CreateProposalSubmitter(cfg config.GeneralConfig) (governance.ProposalSubmitter, error) {
	err := cfg.Governance.Validate()
	if err != nil {
		return nil, err
	}

	interactor, err := CreateInteractor(cfg.Blockchain)
	if err != nil {
		return nil, err
	}

	submitter, err := governance.NewContractClient(interactor, cfg.Governance)
	if err != nil {
		return nil, err
	}
	return submitter, nil
}
