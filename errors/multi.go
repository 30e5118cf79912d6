package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If given error implements unpacker interface, it is flattened and
// instead of clubbing that error all those that it contains are
// directly attached to the result set.
func Append(errs ...error) error {
	var res multiError
	for _, err := range errs {
		if errIsNil(err) {
			continue
		}
		if u, ok := err.(unpacker); ok {
			res = append(res, u.Unpack()...)
		} else {
			res = append(res, err)
		}
	}

	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiError represents a group of errors. It is a result of combining
// any number of errors into one.
type multiError []error

var _ unpacker = (multiError)(nil)

func (errs multiError) Error() string {
	switch len(errs) {
	case 0:
		return "<nil>"
	case 1:
		return errs[0].Error()
	}

	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = fmt.Sprintf("\t* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n%s", len(errs), strings.Join(msgs, "\n"))
}

// ABCICode returns the code of the first contained error that provides
// one. Only the first error code is relevant as the fail-fast approach
// is used when processing.
func (errs multiError) ABCICode() uint32 {
	for _, err := range errs {
		if code := abciCode(err); code != internalABCICode {
			return code
		}
	}
	return internalABCICode
}

// Unpack returns all errors that this instance is clubbing together.
func (errs multiError) Unpack() []error {
	return errs
}

// unpacker is implemented by errors that represent a collection of
// other errors.
type unpacker interface {
	Unpack() []error
}
