package interaction

import (
	"github.com/ElrondNetwork/elrond-sdk/erdgo/blockchain"
	"github.com/ElrondNetwork/elrond-sdk/erdgo/data"
	"github.com/pkg/errors"
)

const vmReturnCodeOk = "ok"

// ChainProxy is the slice of the gateway API the interactor relies on.
type ChainProxy interface {
	GetAccount(bech32Address string) (*data.Account, error)
	SendTransaction(tx *data.Transaction) (string, error)
	GetTransactionStatus(txHash string) (string, error)
	QueryContract(request *data.VmValueRequest) ([][]byte, error)
}

type elrondProxy struct {
	proxy blockchain.ProxyHandler
}

// NewElrondProxy returns a ChainProxy backed by the gateway at proxyUrl.
// A nil client selects http.DefaultClient. No request is issued until one
// of its methods is called.
func NewElrondProxy(proxyUrl string, client blockchain.HTTPClient) *elrondProxy {
	return &elrondProxy{
		proxy: blockchain.NewElrondProxy(proxyUrl, client),
	}
}

func (ep *elrondProxy) GetAccount(bech32Address string) (*data.Account, error) {
	addressHandler, err := data.NewAddressFromBech32String(bech32Address)
	if err != nil {
		return nil, err
	}
	return ep.proxy.GetAccount(addressHandler)
}

func (ep *elrondProxy) SendTransaction(tx *data.Transaction) (string, error) {
	return ep.proxy.SendTransaction(tx)
}

func (ep *elrondProxy) GetTransactionStatus(txHash string) (string, error) {
	return ep.proxy.GetTransactionStatus(txHash)
}

// QueryContract runs a VM query. A return code other than "ok" is a
// rejection by the contract and is reported as an error.
func (ep *elrondProxy) QueryContract(request *data.VmValueRequest) ([][]byte, error) {
	response, err := ep.proxy.ExecuteVMQuery(request)
	if err != nil {
		return nil, err
	}
	if response == nil || response.Data == nil {
		return nil, EmptyQueryResponseErr
	}
	if response.Data.ReturnCode != vmReturnCodeOk {
		return nil, errors.Wrapf(QueryRejectedErr, "%s: %s", response.Data.ReturnCode, response.Data.ReturnMessage)
	}
	return response.Data.ReturnData, nil
}
