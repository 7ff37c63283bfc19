package main

import (
	"os"

	"github.com/jkroepke/auth0-login/cmd/daemon"
)

//nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(daemon.Execute(os.Args, os.Stdout, version, commit, date))
}
