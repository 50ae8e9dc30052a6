package governance

import "github.com/pkg/errors"

var NilInteractorErr = errors.New("nil contract interactor provided")

var NegativeTargetErr = errors.New("target must not be negative")

var FractionalBaseUnitsErr = errors.New("target has more precision than one base unit")

var TargetOverflowErr = errors.New("target does not fit in 64 bits of base units")
