package config

import (
	"html/template"
	"log/slog"
	"net/url"

	"github.com/jkroepke/auth0-login/internal/config/types"
	"github.com/jkroepke/auth0-login/internal/ui"
	"github.com/jkroepke/auth0-login/internal/ui/assets"
)

//nolint:gochecknoglobals
var Defaults = Config{
	Debug: Debug{
		Listen: ":9001",
	},
	Log: Log{
		Format: "console",
		Level:  slog.LevelInfo,
	},
	HTTP: HTTP{
		AssetPath: types.FS{FS: assets.FS},
		BaseURL: types.URL{URL: &url.URL{
			Scheme: "http",
			Host:   "localhost:3000",
		}},
		Listen:   ":3000",
		TLS:      false,
		Template: types.Template{Template: template.Must(template.New("index.gohtml").ParseFS(ui.Template, "index.gohtml"))},
	},
	Auth0: Auth0{
		AudienceMode: types.AudienceModeUserInfo,
		UILocales:    make(types.StringSlice, 0),
	},
}
