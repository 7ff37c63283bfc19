package httphandler_test

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"testing/fstest"

	"github.com/jkroepke/auth0-login/internal/config"
	"github.com/jkroepke/auth0-login/internal/config/types"
	"github.com/jkroepke/auth0-login/internal/httphandler"
	"github.com/jkroepke/auth0-login/internal/login"
	"github.com/jkroepke/auth0-login/internal/metrics"
	"github.com/jkroepke/auth0-login/internal/utils/testutils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(tb testing.TB, conf config.Config) (http.Handler, *[]login.AuthorizationParams, *testutils.Logger) {
	tb.Helper()

	logger := testutils.NewTestLogger()
	calls := &[]login.AuthorizationParams{}

	authorizer := login.AuthorizerFunc(func(w http.ResponseWriter, r *http.Request, params login.AuthorizationParams) {
		*calls = append(*calls, params)
		http.Redirect(w, r, "https://"+testutils.Domain+"/authorize", http.StatusFound)
	})

	trigger, err := login.New(logger.Logger, conf, authorizer, metrics.New(prometheus.NewRegistry()))
	require.NoError(tb, err)

	return httphandler.New(logger.Logger, conf, trigger), calls, logger
}

func TestHomePage(t *testing.T) {
	t.Parallel()

	handler, calls, _ := newHandler(t, testutils.NewTestConfig())

	require.HTTPStatusCode(t, handler.ServeHTTP, http.MethodGet, "/", nil, http.StatusOK)
	require.HTTPBodyContains(t, handler.ServeHTTP, http.MethodGet, "/", nil, `class="btn btn-primary btn-login" href="/login"`)
	require.HTTPBodyContains(t, handler.ServeHTTP, http.MethodGet, "/", nil, `class="btn btn-logout" href="/logout"`)
	require.HTTPBodyContains(t, handler.ServeHTTP, http.MethodGet, "/", nil, `href="/assets/style.css"`)
	require.HTTPBodyContains(t, handler.ServeHTTP, http.MethodGet, "/", nil, testutils.Domain)

	assert.Empty(t, *calls)
}

func TestBasePath(t *testing.T) {
	t.Parallel()

	conf := testutils.NewTestConfig()
	conf.HTTP.BaseURL = types.URL{URL: &url.URL{Scheme: "https", Host: "app.example.com", Path: "/app/"}}

	handler, calls, _ := newHandler(t, conf)

	require.HTTPBodyContains(t, handler.ServeHTTP, http.MethodGet, "/app/", nil, `href="/app/login"`)
	require.HTTPBodyContains(t, handler.ServeHTTP, http.MethodGet, "/app/", nil, `href="/app/logout"`)
	require.HTTPSuccess(t, handler.ServeHTTP, http.MethodGet, "/app/ready", nil)
	require.HTTPSuccess(t, handler.ServeHTTP, http.MethodGet, "/app/assets/favicon.svg", nil)
	require.HTTPRedirect(t, handler.ServeHTTP, http.MethodGet, "/app/login", nil)
	require.HTTPStatusCode(t, handler.ServeHTTP, http.MethodGet, "/login", nil, http.StatusNotFound)
	require.HTTPStatusCode(t, handler.ServeHTTP, http.MethodGet, "/", nil, http.StatusNotFound)

	assert.Len(t, *calls, 1)
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	handler, _, _ := newHandler(t, testutils.NewTestConfig())

	for _, tc := range []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"ready", http.MethodGet, "/ready", http.StatusOK},
		{"favicon", http.MethodGet, "/assets/favicon.svg", http.StatusOK},
		{"stylesheet", http.MethodGet, "/assets/style.css", http.StatusOK},
		{"login", http.MethodGet, "/login", http.StatusFound},
		{"logout", http.MethodGet, "/logout", http.StatusFound},
		{"unknown", http.MethodGet, "/unknown", http.StatusNotFound},
		{"post login", http.MethodPost, "/login", http.StatusMethodNotAllowed},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.HTTPStatusCode(t, handler.ServeHTTP, tc.method, tc.path, nil, tc.status)
		})
	}
}

func TestLoginAndLogout(t *testing.T) {
	t.Parallel()

	handler, calls, _ := newHandler(t, testutils.NewTestAPIConfig())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
	require.Len(t, *calls, 1)
	assert.Equal(t, testutils.APIAudience, (*calls)[0].Audience)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
	assert.Equal(t,
		"https://example.auth0.com/v2/logout?client_id=abc123&returnTo=http%3A%2F%2Flocalhost%3A3000",
		rec.Header().Get("Location"),
	)
	assert.Len(t, *calls, 1)
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	handler, _, logger := newHandler(t, testutils.NewTestConfig())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	generated := rec.Header().Get(httphandler.HeaderRequestID)
	assert.Len(t, generated, 36)
	assert.Contains(t, logger.GetLogs(), "request_id="+generated)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.Header.Set(httphandler.HeaderRequestID, "upstream-id")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "upstream-id", rec.Header().Get(httphandler.HeaderRequestID))
	assert.Contains(t, logger.GetLogs(), "request_id=upstream-id")
}

func TestCustomAssets(t *testing.T) {
	t.Parallel()

	conf := testutils.NewTestConfig()
	conf.HTTP.AssetPath = types.FS{
		FS: fstest.MapFS{
			"index.txt": &fstest.MapFile{
				Data: []byte("index"),
			},
		},
	}

	handler, _, _ := newHandler(t, conf)

	require.HTTPBodyContains(t, handler.ServeHTTP, http.MethodGet, "/assets/index.txt", nil, "index")
	require.HTTPBodyContains(t, handler.ServeHTTP, http.MethodGet, "/assets/favicon.svg", nil, "<svg")
	require.HTTPStatusCode(t, handler.ServeHTTP, http.MethodGet, "/assets/missing.txt", nil, http.StatusNotFound)
}

func TestCustomTemplate(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name     string
		template string
		status   int
		body     string
	}{
		{
			"several controls",
			`<a class="btn-login" href="{{ .LoginURL }}">a</a><button class="btn-login" formaction="{{ .LoginURL }}">b</button>`,
			http.StatusOK,
			`<button class="btn-login" formaction="/login">`,
		},
		{
			"without controls",
			`<p>{{ .Audience }}</p>`,
			http.StatusOK,
			`<p>https://example.auth0.com/userinfo</p>`,
		},
		{
			"broken template",
			`{{ .Missing }}`,
			http.StatusInternalServerError,
			"Internal Server Error",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			conf := testutils.NewTestConfig()
			conf.HTTP.Template = types.Template{Template: template.Must(template.New("custom").Parse(tc.template))}

			handler, _, logger := newHandler(t, conf)

			require.HTTPStatusCode(t, handler.ServeHTTP, http.MethodGet, "/", nil, tc.status)
			require.HTTPBodyContains(t, handler.ServeHTTP, http.MethodGet, "/", nil, tc.body)

			if tc.status != http.StatusOK {
				assert.Contains(t, logger.GetLogs(), `msg="executing template"`)
			}
		})
	}
}
