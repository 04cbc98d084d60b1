package spotifyauth

import "fmt"

type ErrorCode string

const (
	// ErrorCodeInvalidArgument indicates a required parameter that is empty
	// or otherwise unacceptable. It is only returned while assembling a
	// request, never after it was built.
	ErrorCodeInvalidArgument ErrorCode = "invalid_argument"
	// ErrorCodeInvalidPayload indicates a boundary payload that could not be
	// decoded back into a request.
	ErrorCodeInvalidPayload ErrorCode = "invalid_payload"
)

type Error struct {
	Code        ErrorCode
	Description string
	wrapped     error
}

func newError(code ErrorCode, desc string) Error {
	return Error{
		Code:        code,
		Description: desc,
	}
}

func wrapError(code ErrorCode, desc string, err error) Error {
	return Error{
		Code:        code,
		Description: desc,
		wrapped:     err,
	}
}

func (err Error) Error() string {
	if err.wrapped == nil {
		return fmt.Sprintf("%s %s", err.Code, err.Description)
	}

	return fmt.Sprintf("%s %s: %v", err.Code, err.Description, err.wrapped)
}

func (err Error) Unwrap() error {
	return err.wrapped
}
