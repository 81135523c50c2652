package errorx

import (
	"errors"

	"github.com/randakar/repldbkit/kv"
)

// Backend converts *err into a [kv.BackendError] describing a failed
// operation on key k.
//
// It does nothing if *err is nil or already a [kv.BackendError].
func Backend(err *error, op, k string) {
	if err == nil {
		panic("err must not be nil")
	}

	if *err == nil {
		return
	}

	var target *kv.BackendError
	if errors.As(*err, &target) {
		return
	}

	*err = &kv.BackendError{
		Op:    op,
		Key:   k,
		Cause: *err,
	}
}
