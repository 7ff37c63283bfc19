package config

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/jkroepke/auth0-login/internal/config/types"
	"github.com/jkroepke/auth0-login/internal/ui"
)

// Validate validates the config.
//
// Provider values are only checked for presence. A misspelled domain or an
// unknown audience is reported by the hosted login page after the redirect.
func Validate(conf Config) error {
	if err := validateAuth0Config(conf.Auth0); err != nil {
		return err
	}

	return validateHTTPConfig(conf)
}

// validateHTTPConfig validates the HTTP configuration.
func validateHTTPConfig(conf Config) error {
	if conf.HTTP.BaseURL.IsEmpty() {
		return fmt.Errorf("http.baseurl is %w", ErrRequired)
	}

	if err := validateURL(conf.HTTP.BaseURL); err != nil {
		return fmt.Errorf("http.baseurl: %w", err)
	}

	if conf.HTTP.TLS && (conf.HTTP.CertFile == "" || conf.HTTP.KeyFile == "") {
		return fmt.Errorf("http.cert and http.key are %w if http.tls is enabled", ErrRequired)
	}

	if conf.HTTP.Template.IsEmpty() {
		return fmt.Errorf("http.template is %w", ErrRequired)
	}

	if conf.HTTP.AssetPath.IsEmpty() {
		return fmt.Errorf("http.assets-path is %w", ErrRequired)
	}

	if err := conf.HTTP.Template.Execute(io.Discard, ui.Page{}); err != nil {
		return fmt.Errorf("invalid rendering http.template: %w", err)
	}

	return nil
}

// validateAuth0Config validates the provider configuration.
func validateAuth0Config(auth0 Auth0) error {
	if auth0.Domain == "" {
		return fmt.Errorf("auth0.domain is %w", ErrRequired)
	}

	if auth0.Client.ID == "" {
		return fmt.Errorf("auth0.client.id is %w", ErrRequired)
	}

	if auth0.CallbackURL.IsEmpty() {
		return fmt.Errorf("auth0.callback-url is %w", ErrRequired)
	}

	if auth0.AudienceMode == types.AudienceModeAPI && auth0.APIAudience == "" {
		return fmt.Errorf("auth0.api-audience is %w if auth0.audience-mode is api", ErrRequired)
	}

	if err := validateURL(auth0.Logout.ReturnTo); err != nil {
		return fmt.Errorf("auth0.logout.return-to: %w", err)
	}

	return nil
}

func validateURL(uri types.URL) error {
	if uri.IsEmpty() {
		return nil
	}

	if !slices.Contains([]string{"http", "https"}, uri.Scheme) {
		return errors.New("invalid URL. only http:// or https:// scheme supported")
	}

	if uri.Host == "" {
		return errors.New("invalid URL. empty hostname")
	}

	return nil
}
