package youtube

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// RemoteError wraps a failed upstream call. When the API reported an
// error object, its code and message are surfaced.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	var gerr *googleapi.Error
	if errors.As(e.Err, &gerr) && gerr.Message != "" {
		return fmt.Sprintf("%s: upstream error %d: %s", e.Op, gerr.Code, gerr.Message)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
