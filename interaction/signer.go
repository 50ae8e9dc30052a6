package interaction

import (
	wallet "github.com/ElrondNetwork/elrond-sdk-erdgo"
	"github.com/ElrondNetwork/elrond-sdk/erdgo"
	"github.com/ElrondNetwork/elrond-sdk/erdgo/data"
	"github.com/pkg/errors"
)

// Signer authorizes transactions on behalf of one account.
type Signer interface {
	Address() string
	SignTransaction(tx *data.Transaction) error
}

type pemSigner struct {
	privateKey []byte
	address    string
}

// NewPemSigner loads the signing identity from a PEM file and derives its
// bech32 address.
func NewPemSigner(pemPath string) (*pemSigner, error) {
	sk, err := wallet.LoadPrivateKeyFromPemFile(pemPath)
	if err != nil {
		return nil, errors.Wrapf(err, "loading private key from %s", pemPath)
	}
	address, err := wallet.GetAddressFromPrivateKey(sk)
	if err != nil {
		return nil, errors.Wrapf(err, "deriving address for key in %s", pemPath)
	}

	return &pemSigner{
		privateKey: sk,
		address:    address,
	}, nil
}

func (ps *pemSigner) Address() string {
	return ps.address
}

func (ps *pemSigner) SignTransaction(tx *data.Transaction) error {
	err := erdgo.SignTransaction(tx, ps.privateKey)
	if err != nil {
		log.Debug("failed signing transaction", "err", err.Error())
		return err
	}
	return nil
}
