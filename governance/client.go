package governance

import (
	logger "github.com/ElrondNetwork/elrond-go-logger"
	"github.com/ElrondNetwork/elrond-sdk/erdgo/data"
	"github.com/cloudstrikethunderbeing/bear/config"
	"github.com/cloudstrikethunderbeing/bear/interaction"
)

var log = logger.GetOrCreate("governance")

// ProposalSubmitter submits governance proposals.
type ProposalSubmitter interface {
	SubmitProposal(payload ProposalPayload) (string, error)
}

type contractClient struct {
	interactor interaction.ContractInteractor
	config     config.GovernanceConfig
}

// NewContractClient binds interactor to the governance contract in cfg.
func NewContractClient(interactor interaction.ContractInteractor, cfg config.GovernanceConfig) (*contractClient, error) {
	if interactor == nil {
		return nil, config.NewConfigurationError("interactor", "", NilInteractorErr)
	}
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	_, err = data.NewAddressFromBech32String(cfg.Address)
	if err != nil {
		return nil, config.NewConfigurationError("Governance.Address", "not a bech32 address", err)
	}

	return &contractClient{
		interactor: interactor,
		config:     cfg,
	}, nil
}

func (cc *contractClient) SubmitProposal(payload ProposalPayload) (string, error) {
	log.Debug("submitting proposal",
		"title", payload.Title,
		"target e8s", payload.TargetIcpE8s,
		"governance", cc.config.Address,
	)
	return cc.interactor.CallContract(cc.config.Address, cc.config.Endpoint, cc.config.GasLimit, payload.Args()...)
}
