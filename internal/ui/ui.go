package ui

import "embed"

//go:embed index.gohtml
var Template embed.FS

// Page is the data the home page template is rendered with.
//
// LoginURL and LogoutURL are the targets of the .btn-login and .btn-logout
// controls. The remaining fields expose the provider configuration to the
// page, e.g. for custom templates which display or script against it.
type Page struct {
	Title       string
	AssetsURL   string
	LoginURL    string
	LogoutURL   string
	Domain      string
	ClientID    string
	CallbackURL string
	Audience    string
}
