package replitkv

import (
	"fmt"
	"net/http"
)

// HTTPError describes a response from the database with a status code that
// the client does not understand.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf(
		"unexpected HTTP status %d (%s): %q",
		e.StatusCode,
		http.StatusText(e.StatusCode),
		e.Body,
	)
}

// checkStatus returns an [HTTPError] if res does not have a 2xx status code.
func checkStatus(res *http.Response, body []byte) error {
	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil
	}

	return &HTTPError{
		StatusCode: res.StatusCode,
		Body:       body,
	}
}
