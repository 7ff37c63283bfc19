package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AudienceMode selects which audience is requested on login.
type AudienceMode int

const (
	// AudienceModeUserInfo requests a token for the provider's userinfo endpoint.
	AudienceModeUserInfo AudienceMode = iota
	// AudienceModeAPI requests a token for the configured API audience.
	AudienceModeAPI
)

// String returns the string representation of the audience mode.
//
//goland:noinspection GoMixedReceiverTypes
func (m AudienceMode) String() string {
	text, err := m.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
//goland:noinspection GoMixedReceiverTypes
func (m AudienceMode) MarshalText() ([]byte, error) {
	switch m {
	case AudienceModeUserInfo:
		return []byte("userinfo"), nil
	case AudienceModeAPI:
		return []byte("api"), nil
	default:
		return nil, fmt.Errorf("unknown audience mode %d", m)
	}
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
//
//goland:noinspection GoMixedReceiverTypes
func (m *AudienceMode) UnmarshalText(text []byte) error {
	mode := strings.ToLower(strings.TrimSpace(string(text)))
	switch mode {
	case "userinfo":
		*m = AudienceModeUserInfo
	case "api":
		*m = AudienceModeAPI
	default:
		return fmt.Errorf("invalid audience mode %q, expected userinfo or api", mode)
	}

	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
//
//goland:noinspection GoMixedReceiverTypes
func (m AudienceMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String()) //nolint:wrapcheck
}
