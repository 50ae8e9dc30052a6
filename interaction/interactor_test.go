package interaction

import (
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/ElrondNetwork/elrond-sdk/erdgo/data"
	"github.com/cloudstrikethunderbeing/bear/config"
	"github.com/stretchr/testify/require"
)

const (
	senderAddress   = "erd1qvpsxqcrqvpsxqcrqvpsxqcrqvpsxqcrqvpsxqcrqvpsxqcrqvpsh78jz5"
	contractAddress = "erd1qqqqqqqqqqqqqpgqzyg3zyg3zyg3zyg3zyg3zyg3zyg3zyg3zygshp4wmg"
)

type signerStub struct {
	signErr error
	signed  int
}

func (ss *signerStub) Address() string {
	return senderAddress
}

func (ss *signerStub) SignTransaction(tx *data.Transaction) error {
	if ss.signErr != nil {
		return ss.signErr
	}
	ss.signed++
	tx.Signature = "signature"
	return nil
}

type proxyStub struct {
	accountCalls int
	sent         []*data.Transaction
	queries      []*data.VmValueRequest
	sendErr      error
	queryErr     error
	returnData   [][]byte
	statuses     []string
	statusErr    error
	statusCalls  int
}

func (ps *proxyStub) GetAccount(bech32Address string) (*data.Account, error) {
	ps.accountCalls++
	return &data.Account{Address: bech32Address, Nonce: 7}, nil
}

func (ps *proxyStub) SendTransaction(tx *data.Transaction) (string, error) {
	if ps.sendErr != nil {
		return "", ps.sendErr
	}
	ps.sent = append(ps.sent, tx)
	return "txhash", nil
}

// GetTransactionStatus replays statuses in order, then reports success.
func (ps *proxyStub) GetTransactionStatus(_ string) (string, error) {
	ps.statusCalls++
	if ps.statusErr != nil {
		return "", ps.statusErr
	}
	if len(ps.statuses) == 0 {
		return "success", nil
	}
	status := ps.statuses[0]
	ps.statuses = ps.statuses[1:]
	return status, nil
}

func (ps *proxyStub) QueryContract(request *data.VmValueRequest) ([][]byte, error) {
	ps.queries = append(ps.queries, request)
	if ps.queryErr != nil {
		return nil, ps.queryErr
	}
	return ps.returnData, nil
}

var chainInfo = config.BlockchainInformation{
	GasPrice: 1000000000,
	GasLimit: 60000000,
	ProxyUrl: "https://gateway.multiversx.com",
	ChainID:  "1",
	PemPath:  "./owner.pem",
}

func TestNewBlockchainInteractor_ShouldNotContactNetwork(t *testing.T) {
	t.Parallel()
	proxy := &proxyStub{}
	bi, err := NewBlockchainInteractor(chainInfo, &signerStub{}, proxy)
	require.Nil(t, err)
	require.NotNil(t, bi)
	require.Equal(t, 0, proxy.accountCalls)
	require.Equal(t, senderAddress, bi.SenderAddress())
}

func TestNewBlockchainInteractor_NilSignerShouldErr(t *testing.T) {
	t.Parallel()
	bi, err := NewBlockchainInteractor(chainInfo, nil, &proxyStub{})
	require.Nil(t, bi)
	require.True(t, config.IsConfigurationError(err))
	require.ErrorIs(t, err, NilSignerErr)
}

func TestNewBlockchainInteractor_InvalidUrlShouldErr(t *testing.T) {
	t.Parallel()
	info := chainInfo
	info.ProxyUrl = "::not a url"
	bi, err := NewBlockchainInteractor(info, &signerStub{}, &proxyStub{})
	require.Nil(t, bi)
	require.True(t, config.IsConfigurationError(err))
}

func TestBlockchainInteractor_CallContractShouldWork(t *testing.T) {
	t.Parallel()
	proxy := &proxyStub{}
	signer := &signerStub{}
	bi, _ := NewBlockchainInteractor(chainInfo, signer, proxy)

	txHash, err := bi.CallContract(contractAddress, "monthlyAirdrop", 0)
	require.Nil(t, err)
	require.Equal(t, "txhash", txHash)

	txHash, err = bi.CallContract(contractAddress, "submitProposal", 120000000, []byte("BEAR"))
	require.Nil(t, err)
	require.Equal(t, "txhash", txHash)

	require.Equal(t, 1, proxy.accountCalls)
	require.Len(t, proxy.sent, 2)
	require.Equal(t, 2, signer.signed)

	first := proxy.sent[0]
	require.Equal(t, uint64(7), first.Nonce)
	require.Equal(t, uint64(60000000), first.GasLimit)
	require.Equal(t, []byte("monthlyAirdrop"), first.Data)
	require.Equal(t, contractAddress, first.RcvAddr)
	require.Equal(t, senderAddress, first.SndAddr)
	require.Equal(t, "1", first.ChainID)

	second := proxy.sent[1]
	require.Equal(t, uint64(8), second.Nonce)
	require.Equal(t, uint64(120000000), second.GasLimit)
	require.Equal(t, []byte("submitProposal@"+hex.EncodeToString([]byte("BEAR"))), second.Data)
}

func TestBlockchainInteractor_CallContractSendFailureShouldErr(t *testing.T) {
	t.Parallel()
	proxy := &proxyStub{sendErr: errors.New("connection refused")}
	bi, _ := NewBlockchainInteractor(chainInfo, &signerStub{}, proxy)

	txHash, err := bi.CallContract(contractAddress, "monthlyAirdrop", 0)
	require.Equal(t, "", txHash)
	require.True(t, IsRemoteInvocationError(err))
	require.Equal(t, uint64(7), bi.account.Nonce)
}

func TestBlockchainInteractor_CallContractSignFailureShouldErr(t *testing.T) {
	t.Parallel()
	proxy := &proxyStub{}
	bi, _ := NewBlockchainInteractor(chainInfo, &signerStub{signErr: errors.New("bad key")}, proxy)

	_, err := bi.CallContract(contractAddress, "monthlyAirdrop", 0)
	require.True(t, IsRemoteInvocationError(err))
	require.Len(t, proxy.sent, 0)
}

func newPollingInteractor(t *testing.T, proxy *proxyStub) *BlockchainInteractor {
	bi, err := NewBlockchainInteractor(chainInfo, &signerStub{}, proxy)
	require.Nil(t, err)
	bi.pollInterval = time.Millisecond
	return bi
}

func TestBlockchainInteractor_CallContractPendingThenSuccessShouldWork(t *testing.T) {
	t.Parallel()
	proxy := &proxyStub{statuses: []string{"pending", "", "pending", "success"}}
	bi := newPollingInteractor(t, proxy)

	txHash, err := bi.CallContract(contractAddress, "monthlyAirdrop", 0)
	require.Nil(t, err)
	require.Equal(t, "txhash", txHash)
	require.Equal(t, 4, proxy.statusCalls)
}

func TestBlockchainInteractor_CallContractFailedOnChainShouldErr(t *testing.T) {
	t.Parallel()
	proxy := &proxyStub{statuses: []string{"pending", "fail"}}
	bi := newPollingInteractor(t, proxy)

	txHash, err := bi.CallContract(contractAddress, "monthlyAirdrop", 0)
	require.Equal(t, "", txHash)
	require.True(t, IsRemoteInvocationError(err))
	require.ErrorIs(t, err, TransactionFailedErr)
	require.Equal(t, 2, proxy.statusCalls)

	var remoteErr *RemoteInvocationError
	require.ErrorAs(t, err, &remoteErr)
	require.Equal(t, "monthlyAirdrop", remoteErr.Operation)
	require.Equal(t, uint64(8), bi.account.Nonce)
}

func TestBlockchainInteractor_CallContractInvalidShouldErr(t *testing.T) {
	t.Parallel()
	proxy := &proxyStub{statuses: []string{"invalid"}}
	bi := newPollingInteractor(t, proxy)

	_, err := bi.CallContract(contractAddress, "submitProposal", 0, []byte("BEAR"))
	require.True(t, IsRemoteInvocationError(err))
	require.ErrorIs(t, err, TransactionFailedErr)
	require.Equal(t, 1, proxy.statusCalls)
}

func TestBlockchainInteractor_CallContractStatusFailureShouldErr(t *testing.T) {
	t.Parallel()
	statusErr := errors.New("gateway unavailable")
	proxy := &proxyStub{statusErr: statusErr}
	bi := newPollingInteractor(t, proxy)

	_, err := bi.CallContract(contractAddress, "monthlyAirdrop", 0)
	require.True(t, IsRemoteInvocationError(err))
	require.ErrorIs(t, err, statusErr)
	require.Len(t, proxy.sent, 1)
}

func TestBlockchainInteractor_QueryContractShouldWork(t *testing.T) {
	t.Parallel()
	proxy := &proxyStub{returnData: [][]byte{{0x01, 0x00}}}
	bi, _ := NewBlockchainInteractor(chainInfo, &signerStub{}, proxy)

	returnData, err := bi.QueryContract(contractAddress, "getContribution", []byte{0xab})
	require.Nil(t, err)
	require.Equal(t, [][]byte{{0x01, 0x00}}, returnData)
	require.Len(t, proxy.queries, 1)
	require.Equal(t, "getContribution", proxy.queries[0].FuncName)
	require.Equal(t, []string{"ab"}, proxy.queries[0].Args)
	require.Equal(t, 0, proxy.accountCalls)
}

func TestBlockchainInteractor_QueryContractFailureShouldErr(t *testing.T) {
	t.Parallel()
	proxy := &proxyStub{queryErr: errors.New("timeout")}
	bi, _ := NewBlockchainInteractor(chainInfo, &signerStub{}, proxy)

	_, err := bi.QueryContract(contractAddress, "getTreasury")
	require.True(t, IsRemoteInvocationError(err))

	var remoteErr *RemoteInvocationError
	require.ErrorAs(t, err, &remoteErr)
	require.Equal(t, "getTreasury", remoteErr.Operation)
}

func TestBuildCallData(t *testing.T) {
	t.Parallel()
	require.Equal(t, []byte("monthlyAirdrop"), BuildCallData("monthlyAirdrop"))
	require.Equal(t, []byte("f@0a@"), BuildCallData("f", []byte{0x0a}, []byte{}))
}
