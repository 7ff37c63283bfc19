package httpserver_test

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/jkroepke/auth0-login/internal/config"
	"github.com/jkroepke/auth0-login/internal/config/types"
	"github.com/jkroepke/auth0-login/internal/httpserver"
	"github.com/jkroepke/auth0-login/internal/utils/testutils"
	"github.com/madflojo/testcerts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/nettest"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})
}

func TestNewHTTPServer(t *testing.T) {
	t.Parallel()

	logger := testutils.NewTestLogger()

	cert, key, err := testcerts.GenerateCertsToTempFile(t.TempDir())
	require.NoError(t, err)

	baseURL := types.URL{URL: &url.URL{Scheme: "http", Host: "127.0.0.1"}}

	confs := []struct {
		name string
		conf config.HTTP
		err  error
	}{
		{
			"http listener",
			config.HTTP{
				BaseURL: baseURL,
				Listen:  "127.0.0.1:0",
			},
			nil,
		},
		{
			"https listener invalid",
			config.HTTP{
				BaseURL: baseURL,
				Listen:  "127.0.0.1:0",
				TLS:     true,
			},
			errors.New("tls.LoadX509KeyPair: open"),
		},
		{
			"https listener",
			config.HTTP{
				BaseURL:  baseURL,
				Listen:   "127.0.0.1:0",
				TLS:      true,
				KeyFile:  key,
				CertFile: cert,
			},
			nil,
		},
		{
			"invalid address",
			config.HTTP{
				Listen: "127.0.0.1:-1",
			},
			errors.New("error listen on 127.0.0.1:-1"),
		},
	}

	for _, tt := range confs {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svr := httpserver.NewHTTPServer(httpserver.ServerNameDefault, logger.Logger, tt.conf, okHandler())

			ctx, cancel := context.WithCancel(t.Context())
			defer cancel()

			errCh := make(chan error, 1)

			go func() {
				errCh <- svr.Listen(ctx)
			}()

			if tt.err == nil {
				require.NoError(t, svr.Reload())

				time.Sleep(50 * time.Millisecond)
				cancel()

				require.NoError(t, <-errCh)
			} else {
				require.ErrorContains(t, <-errCh, tt.err.Error())
			}
		})
	}
}

func TestServe(t *testing.T) {
	t.Parallel()

	cert, key, err := testcerts.GenerateCertsToTempFile(t.TempDir())
	require.NoError(t, err)

	for _, tc := range []struct {
		name   string
		conf   config.HTTP
		scheme string
	}{
		{"http", config.HTTP{}, "http"},
		{"https", config.HTTP{TLS: true, CertFile: cert, KeyFile: key}, "https"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			logger := testutils.NewTestLogger()

			listener, err := nettest.NewLocalListener("tcp")
			require.NoError(t, err)

			svr := httpserver.NewHTTPServer(httpserver.ServerNameDefault, logger.Logger, tc.conf, okHandler())

			ctx, cancel := context.WithCancel(t.Context())
			defer cancel()

			errCh := make(chan error, 1)

			go func() {
				errCh <- svr.Serve(ctx, listener)
			}()

			client := &http.Client{
				Timeout: 5 * time.Second,
				Transport: &http.Transport{
					TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
				},
			}

			req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, tc.scheme+"://"+listener.Addr().String()+"/", nil)
			require.NoError(t, err)

			resp, err := client.Do(req)
			require.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.NoError(t, resp.Body.Close())

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "OK", string(body))

			cancel()
			require.NoError(t, <-errCh)

			assert.Contains(t, logger.GetLogs(), "start "+map[string]string{"http": "HTTP", "https": "HTTPS"}[tc.scheme]+" listener on "+listener.Addr().String())
			assert.Contains(t, logger.GetLogs(), "http listener stopped")
		})
	}
}

func TestReload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cert, key, err := testcerts.GenerateCertsToTempFile(dir)
	require.NoError(t, err)

	logger := testutils.NewTestLogger()
	svr := httpserver.NewHTTPServer(httpserver.ServerNameDefault, logger.Logger, config.HTTP{TLS: true, CertFile: cert, KeyFile: key}, okHandler())

	require.NoError(t, svr.Reload())
	assert.NotContains(t, logger.GetLogs(), "reloading TLS certificate")

	require.NoError(t, svr.Reload())
	assert.Contains(t, logger.GetLogs(), "reloading TLS certificate")

	certificate, err := svr.GetCertificateFunc()(nil)
	require.NoError(t, err)
	require.NotNil(t, certificate)

	require.NoError(t, os.Remove(cert))
	require.ErrorContains(t, svr.Reload(), "tls.LoadX509KeyPair")

	certificate, err = svr.GetCertificateFunc()(nil)
	require.NoError(t, err)
	assert.NotNil(t, certificate)
}

func TestReloadWithoutTLS(t *testing.T) {
	t.Parallel()

	svr := httpserver.NewHTTPServer(httpserver.ServerNameDebug, testutils.NewTestLogger().Logger, config.HTTP{}, okHandler())

	require.NoError(t, svr.Reload())
}
