package services

import "errors"

// ErrValidation marks input the caller can fix. Controllers map it to 400.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string { return e.Message }

// AsValidation unwraps err into an *ErrValidation when possible.
func AsValidation(err error) (*ErrValidation, bool) {
	var ve *ErrValidation
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ErrDuplicate marks a uniqueness conflict. Controllers map it to 409.
var ErrDuplicate = errors.New("services: duplicate")
