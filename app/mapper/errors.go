package mapper

import "errors"

var ErrMissingRequiredField = errors.New("missing required field")
