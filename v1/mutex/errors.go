package mutex

import muterrors "github.com/mirkobrombin/go-mutex/v1/errors"

// ErrAlreadyBorrowed is the panic value (wrapped) raised by Cell.Lock on a
// conflicting borrow, and the error returned by Cell.TryLock.
var ErrAlreadyBorrowed = muterrors.ErrAlreadyBorrowed
