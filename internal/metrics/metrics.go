package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auth0"

// Metrics counts the redirects issued by the login and logout controls.
type Metrics struct {
	LoginRedirects  *prometheus.CounterVec
	LogoutRedirects prometheus.Counter
}

// New creates all metrics and registers them on registerer.
func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		LoginRedirects: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_redirects_total",
			Help:      "Total number of redirects to the hosted login page",
		}, []string{"audience_mode"}),
		LogoutRedirects: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logout_redirects_total",
			Help:      "Total number of redirects to the provider logout endpoint",
		}),
	}
}

// IncrementLoginRedirects records a login redirect for the given audience mode.
func (m *Metrics) IncrementLoginRedirects(audienceMode string) {
	m.LoginRedirects.WithLabelValues(audienceMode).Inc()
}

// IncrementLogoutRedirects records a logout redirect.
func (m *Metrics) IncrementLogoutRedirects() {
	m.LogoutRedirects.Inc()
}
