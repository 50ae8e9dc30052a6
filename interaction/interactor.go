package interaction

import (
	"sync"
	"time"

	logger "github.com/ElrondNetwork/elrond-go-logger"
	"github.com/ElrondNetwork/elrond-go/data/transaction"
	"github.com/ElrondNetwork/elrond-sdk/erdgo/data"
	"github.com/cloudstrikethunderbeing/bear/config"
	"github.com/pkg/errors"
)

var log = logger.GetOrCreate("interaction")

const defaultStatusPollInterval = 2 * time.Second

// BlockchainInteractor signs and sends contract calls and runs read-only
// contract queries through a gateway proxy. The sender account is fetched
// on the first call, so construction never touches the network.
type BlockchainInteractor struct {
	proxy    ChainProxy
	signer   Signer
	chainID  string
	gasLimit uint64
	gasPrice uint64
	account  *data.Account
	txMut    sync.Mutex

	pollInterval time.Duration
}

func NewBlockchainInteractor(
	chainInfo config.BlockchainInformation,
	signer Signer,
	proxy ChainProxy,
) (*BlockchainInteractor, error) {
	err := chainInfo.Validate()
	if err != nil {
		return nil, err
	}
	if signer == nil {
		return nil, config.NewConfigurationError("signer", "a signing identity is required", NilSignerErr)
	}
	if proxy == nil {
		return nil, config.NewConfigurationError("proxy", "", NilProxyErr)
	}

	return &BlockchainInteractor{
		proxy:    proxy,
		signer:   signer,
		chainID:  chainInfo.ChainID,
		gasLimit: chainInfo.GasLimit,
		gasPrice: chainInfo.GasPrice,

		pollInterval: defaultStatusPollInterval,
	}, nil
}

// CallContract sends endpoint@args to receiver as a signed transaction,
// waits until the network reports a final status and returns its hash. A
// zero gasLimit selects the configured default.
func (bi *BlockchainInteractor) CallContract(
	receiver string,
	endpoint string,
	gasLimit uint64,
	args ...[]byte,
) (string, error) {
	bi.txMut.Lock()
	defer bi.txMut.Unlock()

	err := bi.loadAccount()
	if err != nil {
		return "", newRemoteInvocationError(endpoint, err)
	}

	if gasLimit == 0 {
		gasLimit = bi.gasLimit
	}
	tx, err := bi.createSignedTx("0", BuildCallData(endpoint, args...), receiver, gasLimit)
	if err != nil {
		return "", newRemoteInvocationError(endpoint, err)
	}

	txHash, err := bi.sendTx(tx)
	if err != nil {
		return "", newRemoteInvocationError(endpoint, err)
	}

	log.Info("contract call sent", "endpoint", endpoint, "receiver", receiver, "txHash", txHash)

	err = bi.waitForExecution(txHash)
	if err != nil {
		return "", newRemoteInvocationError(endpoint, err)
	}

	log.Info("contract call executed", "endpoint", endpoint, "txHash", txHash)
	return txHash, nil
}

// QueryContract runs a read-only endpoint and returns its raw return data.
func (bi *BlockchainInteractor) QueryContract(address string, funcName string, args ...[]byte) ([][]byte, error) {
	request := &data.VmValueRequest{
		Address:    address,
		FuncName:   funcName,
		CallerAddr: bi.signer.Address(),
		Args:       EncodeQueryArgs(args...),
	}

	returnData, err := bi.proxy.QueryContract(request)
	if err != nil {
		log.Debug("failed querying contract", "func", funcName, "err", err.Error())
		return nil, newRemoteInvocationError(funcName, err)
	}

	return returnData, nil
}

// SenderAddress is the bech32 address transactions are sent from.
func (bi *BlockchainInteractor) SenderAddress() string {
	return bi.signer.Address()
}

func (bi *BlockchainInteractor) loadAccount() error {
	if bi.account != nil {
		return nil
	}

	account, err := bi.proxy.GetAccount(bi.signer.Address())
	if err != nil {
		log.Debug("failed fetching sender account", "address", bi.signer.Address(), "err", err.Error())
		return errors.Wrap(err, "fetching sender account")
	}
	if account == nil {
		return errors.New("sender account not found")
	}

	bi.account = account
	return nil
}

func (bi *BlockchainInteractor) createSignedTx(
	value string,
	inputData []byte,
	receiver string,
	gasLimit uint64,
) (*data.Transaction, error) {
	tx := &data.Transaction{
		Value:    value,
		RcvAddr:  receiver,
		Data:     inputData,
		Nonce:    bi.account.Nonce,
		SndAddr:  bi.signer.Address(),
		GasPrice: bi.gasPrice,
		GasLimit: gasLimit,
		ChainID:  bi.chainID,
		Version:  1,
		Options:  0,
	}

	err := bi.signer.SignTransaction(tx)
	if err != nil {
		return nil, errors.Wrap(err, "signing transaction")
	}

	return tx, nil
}

func (bi *BlockchainInteractor) sendTx(tx *data.Transaction) (string, error) {
	txHash, err := bi.proxy.SendTransaction(tx)
	if err != nil {
		log.Debug("failed sending transaction", "err", err.Error())
		return "", err
	}

	log.Debug("current account nonce", "nonce", bi.account.Nonce)
	bi.account.Nonce++
	return txHash, nil
}

// waitForExecution polls the transaction status until it leaves the pending
// state. There is no deadline: a transaction that never settles blocks the
// caller.
func (bi *BlockchainInteractor) waitForExecution(txHash string) error {
	for {
		status, err := bi.proxy.GetTransactionStatus(txHash)
		if err != nil {
			log.Debug("failed fetching transaction status", "txHash", txHash, "err", err.Error())
			return errors.Wrapf(err, "fetching status of tx %s", txHash)
		}

		switch transaction.TxStatus(status) {
		case transaction.TxStatusSuccess:
			return nil
		case transaction.TxStatusFail, transaction.TxStatusInvalid, transaction.TxStatusRewardReverted:
			return errors.Wrapf(TransactionFailedErr, "tx %s status %s", txHash, status)
		}

		log.Trace("transaction not final yet", "txHash", txHash, "status", status)
		time.Sleep(bi.pollInterval)
	}
}
