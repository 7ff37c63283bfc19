package config

import (
	"flag"
)

//goland:noinspection GoMixedReceiverTypes
func (c *Config) flagSetDebug(flagSet *flag.FlagSet) {
	flagSet.BoolVar(
		&c.Debug.Pprof,
		"debug.pprof",
		lookupEnvOrDefault("debug.pprof", c.Debug.Pprof),
		"Enables go profiling endpoint. This should be never exposed.",
	)
	flagSet.BoolVar(
		&c.Debug.Metrics,
		"debug.metrics",
		lookupEnvOrDefault("debug.metrics", c.Debug.Metrics),
		"Enables the prometheus /metrics endpoint on the debug listener.",
	)
	flagSet.StringVar(
		&c.Debug.Listen,
		"debug.listen",
		lookupEnvOrDefault("debug.listen", c.Debug.Listen),
		"listen address for go profiling and metrics endpoint",
	)
}

//goland:noinspection GoMixedReceiverTypes
func (c *Config) flagSetLog(flagSet *flag.FlagSet) {
	flagSet.StringVar(
		&c.Log.Format,
		"log.format",
		lookupEnvOrDefault("log.format", c.Log.Format),
		"log format. json or console",
	)
	flagSet.TextVar(
		&c.Log.Level,
		"log.level",
		lookupEnvOrDefault("log.level", c.Log.Level),
		"log level. Can be one of: debug, info, warn, error",
	)
}

//goland:noinspection GoMixedReceiverTypes
func (c *Config) flagSetHTTP(flagSet *flag.FlagSet) {
	flagSet.StringVar(
		&c.HTTP.Listen,
		"http.listen",
		lookupEnvOrDefault("http.listen", c.HTTP.Listen),
		"listen addr for the web listener",
	)
	flagSet.BoolVar(
		&c.HTTP.TLS,
		"http.tls",
		lookupEnvOrDefault("http.tls", c.HTTP.TLS),
		"enable TLS listener",
	)
	flagSet.TextVar(
		&c.HTTP.BaseURL,
		"http.baseurl",
		lookupEnvOrDefault("http.baseurl", c.HTTP.BaseURL),
		"public URL of this service. Its path is used as prefix for all routes.",
	)
	flagSet.StringVar(
		&c.HTTP.KeyFile,
		"http.key",
		lookupEnvOrDefault("http.key", c.HTTP.KeyFile),
		"Path to tls server key used for TLS listener.",
	)
	flagSet.StringVar(
		&c.HTTP.CertFile,
		"http.cert",
		lookupEnvOrDefault("http.cert", c.HTTP.CertFile),
		"Path to tls server certificate used for TLS listener.",
	)
	flagSet.TextVar(
		&c.HTTP.Template,
		"http.template",
		lookupEnvOrDefault("http.template", c.HTTP.Template),
		"Path to a HTML file which replaces the home page. "+
			"Elements with the classes btn-login and btn-logout should link to .LoginURL and .LogoutURL.",
	)
	flagSet.TextVar(
		&c.HTTP.AssetPath,
		"http.assets-path",
		lookupEnvOrDefault("http.assets-path", c.HTTP.AssetPath),
		"Custom path to the assets directory. Files in this directory will be served under /assets/ instead of the embedded assets.",
	)
}

//goland:noinspection GoMixedReceiverTypes
func (c *Config) flagSetAuth0(flagSet *flag.FlagSet) {
	flagSet.StringVar(
		&c.Auth0.Domain,
		"auth0.domain",
		lookupEnvOrDefault("auth0.domain", c.Auth0.Domain),
		"Auth0 tenant domain, e.g. example.auth0.com. Fallback env: AUTH0_DOMAIN",
	)
	flagSet.StringVar(
		&c.Auth0.Client.ID,
		"auth0.client.id",
		lookupEnvOrDefault("auth0.client.id", c.Auth0.Client.ID),
		"Auth0 application client id. Fallback env: AUTH0_CLIENT_ID",
	)
	flagSet.TextVar(
		&c.Auth0.CallbackURL,
		"auth0.callback-url",
		lookupEnvOrDefault("auth0.callback-url", c.Auth0.CallbackURL),
		"URL Auth0 redirects to after authentication. Fallback env: AUTH0_CALLBACK_URL",
	)
	flagSet.TextVar(
		&c.Auth0.AudienceMode,
		"auth0.audience-mode",
		lookupEnvOrDefault("auth0.audience-mode", c.Auth0.AudienceMode),
		"Audience requested on login. userinfo requests https://<domain>/userinfo, api requests auth0.api-audience.",
	)
	flagSet.StringVar(
		&c.Auth0.APIAudience,
		"auth0.api-audience",
		lookupEnvOrDefault("auth0.api-audience", c.Auth0.APIAudience),
		"Identifier of the API the access token is requested for. Required if auth0.audience-mode is api. Fallback env: API_AUDIENCE",
	)
	flagSet.TextVar(
		&c.Auth0.UILocales,
		"auth0.ui-locales",
		lookupEnvOrDefault("auth0.ui-locales", c.Auth0.UILocales),
		"Comma separated list of locales supported by the hosted login page. "+
			"If set, the best match for the browser language is sent as ui_locales.",
	)
	flagSet.TextVar(
		&c.Auth0.Logout.ReturnTo,
		"auth0.logout.return-to",
		lookupEnvOrDefault("auth0.logout.return-to", c.Auth0.Logout.ReturnTo),
		"URL Auth0 redirects to after logout. Defaults to http.baseurl.",
	)
}
