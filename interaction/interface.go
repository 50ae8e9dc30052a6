package interaction

// ContractInteractor is what contract clients need from the chain:
// signed calls and read-only queries.
type ContractInteractor interface {
	CallContract(receiver string, endpoint string, gasLimit uint64, args ...[]byte) (string, error)
	QueryContract(address string, funcName string, args ...[]byte) ([][]byte, error)
}
