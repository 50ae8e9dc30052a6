package interaction

import (
	"bytes"
	"path/filepath"
	"testing"

	wallet "github.com/ElrondNetwork/elrond-sdk-erdgo"
	"github.com/ElrondNetwork/elrond-sdk/erdgo/data"
	"github.com/stretchr/testify/require"
)

func writePemFile(t *testing.T) (string, string) {
	seed := bytes.Repeat([]byte{0x07}, 32)
	expectedAddress, err := wallet.GetAddressFromPrivateKey(seed)
	require.Nil(t, err)

	pemPath := filepath.Join(t.TempDir(), "owner.pem")
	require.Nil(t, wallet.SavePrivateKeyToPemFile(seed, pemPath))

	return pemPath, expectedAddress
}

func TestNewPemSigner_ShouldWork(t *testing.T) {
	t.Parallel()
	pemPath, expectedAddress := writePemFile(t)

	signer, err := NewPemSigner(pemPath)
	require.Nil(t, err)
	require.Equal(t, expectedAddress, signer.Address())
	require.Len(t, signer.privateKey, 64)
}

func TestNewPemSigner_MissingFileShouldErr(t *testing.T) {
	t.Parallel()
	signer, err := NewPemSigner(filepath.Join(t.TempDir(), "missing.pem"))
	require.Nil(t, signer)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "missing.pem")
}

func TestPemSigner_SignTransactionShouldWork(t *testing.T) {
	t.Parallel()
	pemPath, expectedAddress := writePemFile(t)
	signer, err := NewPemSigner(pemPath)
	require.Nil(t, err)

	tx := &data.Transaction{
		Nonce:    7,
		Value:    "0",
		RcvAddr:  contractAddress,
		SndAddr:  expectedAddress,
		GasPrice: 1000000000,
		GasLimit: 60000000,
		Data:     BuildCallData("monthlyAirdrop"),
		ChainID:  "1",
		Version:  1,
	}
	require.Nil(t, signer.SignTransaction(tx))
	// ed25519 signatures are 64 bytes, hex encoded
	require.Len(t, tx.Signature, 128)
}
