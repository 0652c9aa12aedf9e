/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package trust-rest serves wallet trust verification over a REST API.
package main

import (
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/wallet-trust/cmd/trust-rest/resolvecmd"
	"github.com/trustbloc/wallet-trust/cmd/trust-rest/startcmd"
)

var logger = log.New("trust-rest")
var Version string // will be embedded during build

func main() {
	rootCmd := &cobra.Command{
		Use: "trust-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(
		startcmd.WithVersion(Version),
	))
	rootCmd.AddCommand(resolvecmd.GetResolveCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run trust-rest", log.WithError(err))
	}
}
