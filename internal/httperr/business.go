package httperr

import "errors"

// BusinessError is a rule violation identified by a stable code that the
// admin client switches on.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	return Code(err) == code
}

// Code returns the business code wrapped in err, or "" if there is none.
func Code(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
