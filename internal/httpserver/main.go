package httpserver

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jkroepke/auth0-login/internal/config"
)

const (
	ServerNameDefault = "default"
	ServerNameDebug   = "debug"
)

type Server struct {
	name   string
	conf   config.HTTP
	logger *slog.Logger
	server *http.Server

	tlsCertificate   *tls.Certificate
	tlsCertificateMu sync.RWMutex
}

func NewHTTPServer(name string, logger *slog.Logger, conf config.HTTP, handler http.Handler) *Server {
	logger = logger.With(slog.String("server", name))

	return &Server{
		name:   name,
		conf:   conf,
		logger: logger,
		server: &http.Server{
			Addr:              conf.Listen,
			ReadHeaderTimeout: 3 * time.Second,
			ReadTimeout:       3 * time.Second,
			WriteTimeout:      30 * time.Second,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
			Handler:           handler,
		},
		tlsCertificateMu: sync.RWMutex{},
	}
}

// Listen opens the configured address and serves until ctx is done.
func (s *Server) Listen(ctx context.Context) error {
	if err := s.setupTLS(); err != nil {
		return err
	}

	listener, err := (&net.ListenConfig{}).Listen(ctx, "tcp", s.conf.Listen)
	if err != nil {
		return fmt.Errorf("error listen on %s: %w", s.conf.Listen, err)
	}

	return s.serve(ctx, listener)
}

// Serve serves on listener until ctx is done. The listener is closed on return.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if err := s.setupTLS(); err != nil {
		_ = listener.Close()

		return err
	}

	return s.serve(ctx, listener)
}

func (s *Server) setupTLS() error {
	if !s.conf.TLS {
		return nil
	}

	if err := s.Reload(); err != nil {
		return err
	}

	s.server.TLSConfig = &tls.Config{
		MinVersion:     tls.VersionTLS12,
		GetCertificate: s.GetCertificateFunc(),
	}

	return nil
}

func (s *Server) serve(ctx context.Context, listener net.Listener) error {
	scheme := "HTTP"

	if s.conf.TLS {
		scheme = "HTTPS"
		listener = tls.NewListener(listener, s.server.TLSConfig)
	}

	if s.conf.BaseURL.IsEmpty() {
		s.logger.Info(fmt.Sprintf("start %s listener on %s", scheme, listener.Addr().String()))
	} else {
		s.logger.Info(fmt.Sprintf(
			"start %s listener on %s with base url %s", scheme, listener.Addr().String(), s.conf.BaseURL.String(),
		))
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- s.server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("http server %s: %w", s.name, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutdown http server %s: %w", s.name, err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server %s: %w", s.name, err)
	}

	s.logger.Info("http listener stopped")

	return nil
}

func (s *Server) GetCertificateFunc() func(*tls.ClientHelloInfo) (*tls.Certificate, error) {
	return func(*tls.ClientHelloInfo) (*tls.Certificate, error) {
		s.tlsCertificateMu.RLock()
		defer s.tlsCertificateMu.RUnlock()

		return s.tlsCertificate, nil
	}
}

// Reload reads the TLS key pair from disk again. It is a no-op without TLS.
func (s *Server) Reload() error {
	if !s.conf.TLS {
		return nil
	}

	certs, err := tls.LoadX509KeyPair(s.conf.CertFile, s.conf.KeyFile)
	if err != nil {
		return fmt.Errorf("tls.LoadX509KeyPair: %w", err)
	}

	s.tlsCertificateMu.Lock()
	defer s.tlsCertificateMu.Unlock()

	if s.tlsCertificate != nil {
		s.logger.Info("reloading TLS certificate")
	}

	s.tlsCertificate = &certs

	return nil
}
