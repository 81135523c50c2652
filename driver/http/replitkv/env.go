package replitkv

import (
	"os"
	"strings"

	"github.com/randakar/repldbkit/kv"
)

// URLEnvVar is the name of the environment variable that Replit uses to supply
// a repl with the connection URL of its database.
const URLEnvVar = "REPLIT_DB_URL"

// URLFromEnv returns the connection URL in the [URLEnvVar] environment
// variable.
//
// It is intended to be called once, when an application starts. It returns a
// [kv.ConfigurationError] if the variable is not set.
func URLFromEnv() (string, error) {
	u := strings.TrimSpace(os.Getenv(URLEnvVar))
	if u == "" {
		return "", &kv.ConfigurationError{
			Reason: URLEnvVar + " is not set",
		}
	}
	return u, nil
}

// NewFromEnv returns a new [Client] connected to the database identified by
// the [URLEnvVar] environment variable.
func NewFromEnv(options ...Option) (*Client, error) {
	u, err := URLFromEnv()
	if err != nil {
		return nil, err
	}
	return New(u, options...)
}
