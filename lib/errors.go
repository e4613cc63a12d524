package lib

type Error string

func (e Error) Error() string { return string(e) }

type ErrorCode struct {
	error
	code int
}

func NewErrorCode(err error, code int) ErrorCode {
	return ErrorCode{err, code}
}

func (e *ErrorCode) Code() int {
	return e.code
}

// First drops the trailing error of a two value return.
// Handy for calls like afero.Exists where the error is not interesting.
func First[T any](v T, _ error) T {
	return v
}
