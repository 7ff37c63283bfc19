package login

const (
	// Scope is requested on every login.
	Scope = "openid profile"
	// ResponseType selects the authorization code flow.
	ResponseType = "code"
)

// AuthorizationParams are the parameters of a single authorize request.
// A new value is built for every login and never stored.
type AuthorizationParams struct {
	Audience     string
	Scope        string
	ResponseType string
	RedirectURI  string
	// UILocales is the locale of the hosted login page. Empty means the
	// provider picks one.
	UILocales string
}
