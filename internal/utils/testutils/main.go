package testutils

import (
	"net/url"

	"github.com/jkroepke/auth0-login/internal/config"
	"github.com/jkroepke/auth0-login/internal/config/types"
)

const (
	Domain      = "example.auth0.com"
	ClientID    = "abc123"
	CallbackURL = "https://app.example.com/callback"
	APIAudience = "https://api.example.com"
)

// NewTestConfig returns a valid configuration for the generic userinfo variant.
func NewTestConfig() config.Config {
	conf := config.Defaults
	conf.Auth0.Domain = Domain
	conf.Auth0.Client.ID = ClientID
	conf.Auth0.CallbackURL = types.URL{URL: &url.URL{Scheme: "https", Host: "app.example.com", Path: "/callback"}}

	return conf
}

// NewTestAPIConfig returns a valid configuration for the audience-aware variant.
func NewTestAPIConfig() config.Config {
	conf := NewTestConfig()
	conf.Auth0.AudienceMode = types.AudienceModeAPI
	conf.Auth0.APIAudience = APIAudience

	return conf
}
