package airdrop

import "github.com/pkg/errors"

var NilInteractorErr = errors.New("nil contract interactor provided")

var InvalidParticipantErr = errors.New("invalid participant address in query response")

var IncompleteRunErr = errors.New("airdrop run finished with failures")
