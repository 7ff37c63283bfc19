package config

import (
	"encoding"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

const envPrefix = "CONFIG_"

// legacyEnvironmentVariables maps flag names to the variable names used by
// the quickstart .env files. They are only consulted if the CONFIG_ variable is unset.
//
//nolint:gochecknoglobals
var legacyEnvironmentVariables = map[string]string{
	"auth0.domain":       "AUTH0_DOMAIN",
	"auth0.client.id":    "AUTH0_CLIENT_ID",
	"auth0.callback-url": "AUTH0_CALLBACK_URL",
	"auth0.api-audience": "API_AUDIENCE",
}

// New loads the configuration from configuration files, environment variables and command line arguments in that order.
//
//goland:noinspection GoMixedReceiverTypes
func New(args []string, writer io.Writer) (Config, error) {
	config := Defaults

	if configFilePath := lookupConfigArgument(args); configFilePath != "" {
		if err := config.ReadFromConfigFile(configFilePath); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, err
		}
	}

	if err := config.ReadFromFlagAndEnvironment(args, writer); err != nil {
		return Config{}, err
	}

	return config, nil
}

// ReadFromConfigFile reads the configuration from a yaml file. Unknown keys are rejected.
//
//goland:noinspection GoMixedReceiverTypes
func (c *Config) ReadFromConfigFile(configFilePath string) error {
	configFile, err := os.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("error opening config file %s: %w", configFilePath, err)
	}

	defer func() {
		_ = configFile.Close()
	}()

	c.ConfigFile = configFilePath

	decoder := yaml.NewDecoder(configFile)
	decoder.KnownFields(true)

	if err = decoder.Decode(c); err != nil {
		return fmt.Errorf("error decoding config file %s: %w", configFilePath, err)
	}

	return nil
}

// ReadFromFlagAndEnvironment reads the configuration from command line arguments and environment variables.
//
//goland:noinspection GoMixedReceiverTypes
func (c *Config) ReadFromFlagAndEnvironment(args []string, writer io.Writer) error {
	flagSet := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flagSet.SetOutput(writer)
	flagSet.Usage = func() {
		_, _ = fmt.Fprintf(flagSet.Output(), "Usage of %s:\r\n\r\n", flagSet.Name())
		// --help should display options with double dash
		flagSet.VisitAll(func(flag *flag.Flag) {
			flag.Name = "-" + flag.Name
		})
		flagSet.PrintDefaults()
	}

	flagSet.String(
		"config",
		"",
		"path to one .yaml config file",
	)

	flagSet.Bool(
		"version",
		false,
		"show version",
	)

	c.flagSetDebug(flagSet)
	c.flagSetLog(flagSet)
	c.flagSetHTTP(flagSet)
	c.flagSetAuth0(flagSet)

	flagSet.VisitAll(func(flag *flag.Flag) {
		if flag.Name == "version" {
			return
		}

		flag.Usage += fmt.Sprintf(" (env: %s)", getEnvironmentVariableByFlagName(flag.Name))
	})

	if err := flagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("error parsing command line arguments: %w", err)
	}

	if flagSet.Lookup("version").Value.String() == "true" {
		return ErrVersion
	}

	return nil
}

func lookupConfigArgument(args []string) string {
	configFile := ""

	for i, arg := range args {
		if !strings.HasPrefix(arg, "--config") && !strings.HasPrefix(arg, "-config") {
			continue
		}

		if _, value, ok := strings.Cut(arg, "="); ok {
			configFile = value

			break
		}

		// --config without value, look at the next argument
		if len(args) > i+1 {
			configFile = args[i+1]

			break
		}
	}

	if configFile == "" {
		configFile, _ = lookupEnv("config")
	}

	return configFile
}

// lookupEnv looks up the environment variable for a flag name.
// The legacy quickstart variable is used as fallback.
func lookupEnv(flagName string) (string, bool) {
	if value, ok := os.LookupEnv(getEnvironmentVariableByFlagName(flagName)); ok {
		return value, true
	}

	if legacyName, ok := legacyEnvironmentVariables[flagName]; ok {
		return os.LookupEnv(legacyName)
	}

	return "", false
}

// lookupEnvOrDefault looks up the environment variable by the flag name and returns the value.
// If the environment variable is not set or can't be parsed, it returns the default value.
// It supports string, bool, int and every type whose pointer implements [encoding.TextUnmarshaler].
// If the type is not supported, it panics.
func lookupEnvOrDefault[T any](key string, defaultValue T) T {
	envValue, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}

	switch any(defaultValue).(type) {
	case string:
		return any(envValue).(T) //nolint:forcetypeassert
	case bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			return defaultValue
		}

		return any(boolValue).(T) //nolint:forcetypeassert
	case int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			return defaultValue
		}

		return any(intValue).(T) //nolint:forcetypeassert
	}

	value := defaultValue

	unmarshaler, ok := any(&value).(encoding.TextUnmarshaler)
	if !ok {
		panic(fmt.Sprintf("unsupported type %T for environment variable %s", defaultValue, key))
	}

	if err := unmarshaler.UnmarshalText([]byte(envValue)); err != nil {
		return defaultValue
	}

	return value
}

// getEnvironmentVariableByFlagName converts a flag name to an environment variable name.
// It replaces all dots with underscores and all dashes with double underscores.
// It also converts the flag name to uppercase.
func getEnvironmentVariableByFlagName(flagName string) string {
	return envPrefix + strings.ReplaceAll(strings.ReplaceAll(strings.ToUpper(flagName), ".", "_"), "-", "__")
}
