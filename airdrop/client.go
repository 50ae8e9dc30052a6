package airdrop

import (
	"math/big"

	logger "github.com/ElrondNetwork/elrond-go-logger"
	"github.com/ElrondNetwork/elrond-sdk/erdgo/data"
	"github.com/cloudstrikethunderbeing/bear/config"
	"github.com/cloudstrikethunderbeing/bear/interaction"
	"github.com/pkg/errors"
)

const addressLen = 32

var log = logger.GetOrCreate("airdrop")

// ContractClient exposes the airdrop contract endpoints.
type ContractClient interface {
	TriggerDistribution() (string, error)
	Treasury() (*big.Int, error)
	Participants() ([]string, error)
	Contribution(address string) (*big.Int, error)
}

type contractClient struct {
	interactor interaction.ContractInteractor
	config     config.AirdropConfig
}

// NewContractClient binds interactor to the airdrop contract named in cfg.
func NewContractClient(interactor interaction.ContractInteractor, cfg config.AirdropConfig) (*contractClient, error) {
	if interactor == nil {
		return nil, config.NewConfigurationError("interactor", "", NilInteractorErr)
	}
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	_, err = data.NewAddressFromBech32String(cfg.Address)
	if err != nil {
		return nil, config.NewConfigurationError("Airdrop.Address", "not a bech32 address", err)
	}

	return &contractClient{
		interactor: interactor,
		config:     cfg,
	}, nil
}

func (cc *contractClient) TriggerDistribution() (string, error) {
	return cc.interactor.CallContract(cc.config.Address, cc.config.TriggerEndpoint, 0)
}

func (cc *contractClient) Treasury() (*big.Int, error) {
	return cc.queryBigInt(cc.config.TreasuryEndpoint)
}

func (cc *contractClient) Participants() ([]string, error) {
	returnData, err := cc.interactor.QueryContract(cc.config.Address, cc.config.ParticipantsEndpoint)
	if err != nil {
		return nil, err
	}

	participants := make([]string, 0, len(returnData))
	for _, raw := range returnData {
		if len(raw) != addressLen {
			log.Debug("unexpected participant length", "len", len(raw))
			return nil, &interaction.RemoteInvocationError{
				Operation: cc.config.ParticipantsEndpoint,
				Err:       InvalidParticipantErr,
			}
		}
		participants = append(participants, data.NewAddressFromBytes(raw).AddressAsBech32String())
	}
	return participants, nil
}

func (cc *contractClient) Contribution(address string) (*big.Int, error) {
	participant, err := data.NewAddressFromBech32String(address)
	if err != nil {
		return nil, config.NewConfigurationError("address", "not a bech32 address", err)
	}
	return cc.queryBigInt(cc.config.ContributionEndpoint, participant.AddressBytes())
}

func (cc *contractClient) queryBigInt(funcName string, args ...[]byte) (*big.Int, error) {
	returnData, err := cc.interactor.QueryContract(cc.config.Address, funcName, args...)
	if err != nil {
		return nil, err
	}
	if len(returnData) == 0 {
		return nil, &interaction.RemoteInvocationError{
			Operation: funcName,
			Err:       errors.WithStack(interaction.EmptyQueryResponseErr),
		}
	}
	return big.NewInt(0).SetBytes(returnData[0]), nil
}
