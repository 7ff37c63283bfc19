package login

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jkroepke/auth0-login/internal/config"
	"github.com/zitadel/oidc/v3/pkg/client/rp"
	"golang.org/x/oauth2"
)

// Authorizer starts the provider's hosted authorization flow.
// Implementations answer the request with a redirect and report
// nothing back; errors are shown by the provider after the redirect.
type Authorizer interface {
	Authorize(w http.ResponseWriter, r *http.Request, params AuthorizationParams)
}

// AuthorizerFunc adapts a function to the [Authorizer] interface.
type AuthorizerFunc func(w http.ResponseWriter, r *http.Request, params AuthorizationParams)

func (f AuthorizerFunc) Authorize(w http.ResponseWriter, r *http.Request, params AuthorizationParams) {
	f(w, r, params)
}

// RelyingPartyAuthorizer redirects to the /authorize endpoint of an Auth0 tenant.
type RelyingPartyAuthorizer struct {
	relyingParty rp.RelyingParty
}

// NewRelyingPartyAuthorizer creates the relying party for the configured tenant.
// The endpoints are derived from the domain, no discovery request is made.
func NewRelyingPartyAuthorizer(logger *slog.Logger, conf config.Config) (*RelyingPartyAuthorizer, error) {
	tenantURL := &url.URL{Scheme: "https", Host: conf.Auth0.Domain}

	oauthConfig := &oauth2.Config{
		ClientID:    conf.Auth0.Client.ID,
		RedirectURL: conf.Auth0.CallbackURL.String(),
		Scopes:      strings.Fields(Scope),
		Endpoint: oauth2.Endpoint{
			AuthURL:  tenantURL.JoinPath("authorize").String(),
			TokenURL: tenantURL.JoinPath("oauth", "token").String(),
		},
	}

	relyingParty, err := rp.NewRelyingPartyOAuth(oauthConfig, rp.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("error creating relying party for %s: %w", conf.Auth0.Domain, err)
	}

	return &RelyingPartyAuthorizer{relyingParty: relyingParty}, nil
}

// Authorize redirects to the hosted login page. Every parameter is set per
// request, so the values of params always win over the static client config.
func (a *RelyingPartyAuthorizer) Authorize(w http.ResponseWriter, r *http.Request, params AuthorizationParams) {
	urlParams := []rp.URLParamOpt{
		rp.WithURLParam("audience", params.Audience),
		rp.WithURLParam("scope", params.Scope),
		rp.WithURLParam("response_type", params.ResponseType),
		rp.WithURLParam("redirect_uri", params.RedirectURI),
	}

	if params.UILocales != "" {
		urlParams = append(urlParams, rp.WithURLParam("ui_locales", params.UILocales))
	}

	rp.AuthURLHandler(noState, a.relyingParty, urlParams...).ServeHTTP(w, r)
}

// noState leaves out the state parameter. The callback is served elsewhere
// and does not verify it.
func noState() string {
	return ""
}
