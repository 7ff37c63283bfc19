package httphandler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jkroepke/auth0-login/internal/config"
	"github.com/jkroepke/auth0-login/internal/login"
	"github.com/jkroepke/auth0-login/internal/ui"
	"github.com/jkroepke/auth0-login/internal/ui/assets"
	"github.com/jkroepke/auth0-login/internal/utils"
	"github.com/zitadel/logging"
)

const HeaderRequestID = "X-Request-Id"

// New returns the handler with all HTTP endpoints of the main listener.
//
// The handlers are mounted under the base path from conf.HTTP.BaseURL and
// register the following routes:
//   - GET <basePath>/         home page carrying the login and logout controls.
//   - GET <basePath>/ready    readiness probe responding with "OK".
//   - GET <basePath>/assets/* serves custom static files, falling back to the embedded ones.
//   - GET <basePath>/login    redirects to the hosted login page.
//   - GET <basePath>/logout   redirects to the provider logout endpoint.
// All other paths respond with 404.
func New(logger *slog.Logger, conf config.Config, trigger *login.Trigger) http.Handler {
	basePath := conf.HTTP.BaseURL.BasePath()

	mux := http.NewServeMux()
	if basePath != "" {
		mux.Handle("/", http.NotFoundHandler())
	}

	page := ui.Page{
		Title:       "Auth0 Login",
		AssetsURL:   basePath + "/assets",
		LoginURL:    basePath + "/login",
		LogoutURL:   basePath + "/logout",
		Domain:      conf.Auth0.Domain,
		ClientID:    conf.Auth0.Client.ID,
		CallbackURL: conf.Auth0.CallbackURL.String(),
		Audience:    trigger.Audience(),
	}

	mux.Handle(fmt.Sprintf("GET %s/{$}", basePath), homePage(logger, conf, page))
	mux.Handle(fmt.Sprintf("GET %s/ready", basePath), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	mux.Handle(fmt.Sprintf("GET %s/assets/", basePath), http.StripPrefix(basePath+"/assets/", http.FileServerFS(utils.NewOverlayFS(assets.FS, conf.HTTP.AssetPath.FS))))
	mux.Handle(fmt.Sprintf("GET %s/login", basePath), noCacheHeaders(trigger.Login()))
	mux.Handle(fmt.Sprintf("GET %s/logout", basePath), noCacheHeaders(trigger.Logout()))

	return requestID(logger, mux)
}

func homePage(logger *slog.Logger, conf config.Config, page ui.Page) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer

		if err := conf.HTTP.Template.Execute(&buf, page); err != nil {
			requestLogger(r, logger).LogAttrs(r.Context(), slog.LevelError, "executing template",
				slog.Any("err", err),
			)

			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	})
}

// requestID tags every request with an id and hands a logger carrying it
// down to the handlers.
func requestID(logger *slog.Logger, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(HeaderRequestID, id)

		ctx := logging.ToContext(r.Context(), logger.With(slog.String("request_id", id)))
		h.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestLogger(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if logger, ok := logging.FromContext(r.Context()); ok {
		return logger
	}

	return fallback
}

func noCacheHeaders(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		h.ServeHTTP(w, r)
	})
}
