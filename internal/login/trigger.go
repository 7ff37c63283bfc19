package login

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jkroepke/auth0-login/internal/config"
	"github.com/jkroepke/auth0-login/internal/config/types"
	"github.com/jkroepke/auth0-login/internal/metrics"
	"github.com/zitadel/logging"
)

// Trigger serves the targets of the login and logout controls.
type Trigger struct {
	conf       config.Config
	logger     *slog.Logger
	authorizer Authorizer
	metrics    *metrics.Metrics
	locales    *localeMatcher
	logoutURL  string
}

// New returns a Trigger for conf. The configuration is copied, later changes
// to conf have no effect.
func New(logger *slog.Logger, conf config.Config, authorizer Authorizer, m *metrics.Metrics) (*Trigger, error) {
	locales, err := newLocaleMatcher(conf.Auth0.UILocales)
	if err != nil {
		return nil, fmt.Errorf("auth0.ui-locales: %w", err)
	}

	return &Trigger{
		conf:       conf,
		logger:     logger,
		authorizer: authorizer,
		metrics:    m,
		locales:    locales,
		logoutURL:  logoutURL(conf),
	}, nil
}

// Audience returns the audience requested by the configured variant.
func (t *Trigger) Audience() string {
	if t.conf.Auth0.AudienceMode == types.AudienceModeAPI {
		return t.conf.Auth0.APIAudience
	}

	return "https://" + t.conf.Auth0.Domain + "/userinfo"
}

// Params builds the authorize parameters for r.
func (t *Trigger) Params(r *http.Request) AuthorizationParams {
	return AuthorizationParams{
		Audience:     t.Audience(),
		Scope:        Scope,
		ResponseType: ResponseType,
		RedirectURI:  t.conf.Auth0.CallbackURL.String(),
		UILocales:    t.locales.match(r.Header.Get("Accept-Language")),
	}
}

// Login returns the handler behind the .btn-login controls.
// It never renders content itself, every request ends in a redirect to the
// hosted login page. Repeated requests are not deduplicated.
func (t *Trigger) Login() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := t.Params(r)

		t.requestLogger(r.Context()).LogAttrs(r.Context(), slog.LevelInfo, "redirect to hosted login page",
			slog.String("audience", params.Audience),
			slog.String("redirect_uri", params.RedirectURI),
			slog.String("ui_locales", params.UILocales),
		)

		t.metrics.IncrementLoginRedirects(t.conf.Auth0.AudienceMode.String())
		t.authorizer.Authorize(w, r, params)
	})
}

// LogoutURL returns the provider logout URL the logout route redirects to.
func (t *Trigger) LogoutURL() string {
	return t.logoutURL
}

// Logout returns the handler behind the .btn-logout controls.
// There is no local session, the provider session is ended by its
// /v2/logout endpoint which sends the browser back to auth0.logout.return-to.
func (t *Trigger) Logout() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.requestLogger(r.Context()).LogAttrs(r.Context(), slog.LevelInfo, "redirect to provider logout")

		t.metrics.IncrementLogoutRedirects()
		http.Redirect(w, r, t.logoutURL, http.StatusFound)
	})
}

func (t *Trigger) requestLogger(ctx context.Context) *slog.Logger {
	if logger, ok := logging.FromContext(ctx); ok {
		return logger
	}

	return t.logger
}

func logoutURL(conf config.Config) string {
	returnTo := conf.Auth0.Logout.ReturnTo
	if returnTo.IsEmpty() {
		returnTo = conf.HTTP.BaseURL
	}

	query := url.Values{}
	query.Set("client_id", conf.Auth0.Client.ID)
	query.Set("returnTo", returnTo.String())

	return (&url.URL{
		Scheme:   "https",
		Host:     conf.Auth0.Domain,
		Path:     "/v2/logout",
		RawQuery: query.Encode(),
	}).String()
}
