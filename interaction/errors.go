package interaction

import (
	"fmt"

	"github.com/pkg/errors"
)

var NilSignerErr = errors.New("nil signer provided")

var NilProxyErr = errors.New("nil chain proxy provided")

var EmptyQueryResponseErr = errors.New("empty query response")

var QueryRejectedErr = errors.New("query rejected by contract")

var TransactionFailedErr = errors.New("transaction failed on chain")

// RemoteInvocationError wraps anything surfaced while calling or querying
// a contract: network failures, rejected transactions, signing failures.
type RemoteInvocationError struct {
	Operation string
	Err       error
}

func (e *RemoteInvocationError) Error() string {
	return fmt.Sprintf("remote invocation %s failed: %v", e.Operation, e.Err)
}

func (e *RemoteInvocationError) Unwrap() error {
	return e.Err
}

func newRemoteInvocationError(operation string, err error) error {
	return &RemoteInvocationError{
		Operation: operation,
		Err:       err,
	}
}

// IsRemoteInvocationError reports whether err wraps a RemoteInvocationError.
func IsRemoteInvocationError(err error) bool {
	var remoteErr *RemoteInvocationError
	return errors.As(err, &remoteErr)
}
