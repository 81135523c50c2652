package marshaler

import (
	"fmt"
	"strconv"
)

var (
	// String marshals and unmarshals the built-in string type without
	// modification.
	String = New(
		func(v string) (string, error) {
			return v, nil
		},
		func(data string) (string, error) {
			return data, nil
		},
	)

	// Bool marshals and unmarshals the built-in bool type as "true" or
	// "false".
	Bool = New(
		func(v bool) (string, error) {
			return strconv.FormatBool(v), nil
		},
		func(data string) (bool, error) {
			v, err := strconv.ParseBool(data)
			if err != nil {
				return false, fmt.Errorf("unable to unmarshal bool: %w", err)
			}
			return v, nil
		},
	)

	// Int marshals and unmarshals the built-in int64 type as a base-10
	// integer.
	Int = New(
		func(v int64) (string, error) {
			return strconv.FormatInt(v, 10), nil
		},
		func(data string) (int64, error) {
			v, err := strconv.ParseInt(data, 10, 64)
			if err != nil {
				return 0, fmt.Errorf("unable to unmarshal int: %w", err)
			}
			return v, nil
		},
	)
)
