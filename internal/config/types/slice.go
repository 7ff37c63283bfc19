package types

import (
	"strings"
)

// StringSlice is a comma separated list of strings.
type StringSlice []string

// String joins the values with a comma.
//
//goland:noinspection GoMixedReceiverTypes
func (s StringSlice) String() string {
	return strings.Join(s, ",")
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
//goland:noinspection GoMixedReceiverTypes
func (s StringSlice) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Empty elements are dropped, so an empty string results in an empty slice.
//
//goland:noinspection GoMixedReceiverTypes
func (s *StringSlice) UnmarshalText(text []byte) error {
	values := make(StringSlice, 0)

	for _, value := range strings.Split(string(text), ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}

	*s = values

	return nil
}
