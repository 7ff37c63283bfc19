package config

import (
	"encoding/json"
	"log/slog"

	"github.com/jkroepke/auth0-login/internal/config/types"
)

type Config struct {
	ConfigFile string `json:"config" yaml:"config"`
	HTTP       HTTP   `json:"http"   yaml:"http"`
	Debug      Debug  `json:"debug"  yaml:"debug"`
	Log        Log    `json:"log"    yaml:"log"`
	Auth0      Auth0  `json:"auth0"  yaml:"auth0"`
}

type HTTP struct {
	BaseURL   types.URL      `json:"baseurl"     yaml:"baseurl"`
	AssetPath types.FS       `json:"assets-path" yaml:"assets-path"`
	Template  types.Template `json:"template"    yaml:"template"`
	Listen    string         `json:"listen"      yaml:"listen"`
	CertFile  string         `json:"cert"        yaml:"cert"`
	KeyFile   string         `json:"key"         yaml:"key"`
	TLS       bool           `json:"tls"         yaml:"tls"`
}

type Log struct {
	Format string     `json:"format" yaml:"format"`
	Level  slog.Level `json:"level"  yaml:"level"`
}

type Debug struct {
	Listen  string `json:"listen"  yaml:"listen"`
	Pprof   bool   `json:"pprof"   yaml:"pprof"`
	Metrics bool   `json:"metrics" yaml:"metrics"`
}

// Auth0 holds everything the login controls need to talk to the tenant.
type Auth0 struct {
	Domain       string             `json:"domain"        yaml:"domain"`
	Client       Auth0Client        `json:"client"        yaml:"client"`
	CallbackURL  types.URL          `json:"callback-url"  yaml:"callback-url"`
	AudienceMode types.AudienceMode `json:"audience-mode" yaml:"audience-mode"`
	APIAudience  string             `json:"api-audience"  yaml:"api-audience"`
	UILocales    types.StringSlice  `json:"ui-locales"    yaml:"ui-locales"`
	Logout       Auth0Logout        `json:"logout"        yaml:"logout"`
}

type Auth0Client struct {
	ID string `json:"id" yaml:"id"`
}

type Auth0Logout struct {
	ReturnTo types.URL `json:"return-to" yaml:"return-to"`
}

//goland:noinspection GoMixedReceiverTypes
func (c Config) String() string {
	jsonString, err := json.Marshal(c)
	if err != nil {
		panic(err)
	}

	return string(jsonString)
}
