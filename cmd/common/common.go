/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"strings"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/wallet-trust/internal/logfields"
)

const (
	// LogLevelFlagName is the flag name used for setting the log levels.
	LogLevelFlagName = "log-level"
	// LogLevelEnvKey is the env var name used for setting the log levels.
	LogLevelEnvKey = "LOG_LEVEL"
	// LogLevelFlagShorthand is the shorthand flag name used for setting the log levels.
	LogLevelFlagShorthand = "l"
	// LogLevelPrefixFlagUsage is the usage text for the log level flag.
	LogLevelPrefixFlagUsage = "Sets logging levels for individual modules as well as the default level. " +
		"The format of the string is as follows: module1=level1:module2=level2:defaultLevel. " +
		"Supported levels are: PANIC, FATAL, ERROR, WARNING, INFO, DEBUG. " +
		"Example: trust-registry=DEBUG:federated-trust=WARNING:INFO. " +
		"Defaults to info if not set. Setting to debug may adversely impact performance. Alternatively, this can be " +
		"set with the following environment variable: " + LogLevelEnvKey
)

// SetLogLevels applies a log level spec. A spec without module overrides only sets the default level.
func SetLogLevels(logger *log.Log, spec string) {
	if !strings.Contains(spec, "=") {
		SetDefaultLogLevel(logger, spec)

		return
	}

	if err := log.SetSpec(spec); err != nil {
		logger.Warn("Invalid log level spec, defaulting to info.",
			logfields.WithUserLogLevel(spec), log.WithError(err))

		log.SetLevel("", log.INFO)
	}
}

// SetDefaultLogLevel sets the default log level.
func SetDefaultLogLevel(logger *log.Log, userLogLevel string) {
	logLevel, err := log.ParseLevel(userLogLevel)
	if err != nil {
		logger.Warn(`User log level is not a valid. It must be one of the following: `+
			log.PANIC.String()+", "+
			log.FATAL.String()+", "+
			log.ERROR.String()+", "+
			log.WARNING.String()+", "+
			log.INFO.String()+", "+
			log.DEBUG.String()+". Defaulting to info.", logfields.WithUserLogLevel(userLogLevel))

		logLevel = log.INFO
	} else if logLevel == log.DEBUG {
		logger.Info(`Log level set to "debug". Performance may be adversely impacted.`)
	}

	log.SetLevel("", logLevel)
}
