/*
Copyright 2025 Ledgerline Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ledgerline/ledgerline"
	"github.com/ledgerline/ledgerline/config"
	"github.com/ledgerline/ledgerline/database"
	"github.com/ledgerline/ledgerline/internal/notification"
)

// Ledgerline represents the CLI application, encapsulating the root Cobra command.
type Ledgerline struct {
	cmd *cobra.Command
}

// ledgerlineInstance holds the service instance and its configuration, shared
// by every subcommand.
type ledgerlineInstance struct {
	ledgerline *ledgerline.Ledgerline
	cnf        *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration and initializes the service instance before
// running any command.
func preRun(app *ledgerlineInstance) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig("ledgerline.json")
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		newLedgerline, err := setupLedgerline(cnf)
		if err != nil {
			notification.NotifyError(err)
			log.Fatal(err)
		}

		app.ledgerline = newLedgerline
		app.cnf = cnf

		return nil
	}
}

// setupLedgerline connects the datasource and builds the service layer.
func setupLedgerline(cfg *config.Configuration) (*ledgerline.Ledgerline, error) {
	db, err := database.NewDataSource(cfg)
	if err != nil {
		return nil, fmt.Errorf("error getting datasource: %v", err)
	}

	newLedgerline, err := ledgerline.NewLedgerline(db)
	if err != nil {
		return nil, fmt.Errorf("error creating ledgerline: %v", err)
	}
	return newLedgerline, nil
}

// NewCLI creates the command-line interface for the application.
func NewCLI() *Ledgerline {
	var configFile string
	b := &ledgerlineInstance{}

	var rootCmd = &cobra.Command{
		Use:   "ledgerline",
		Short: "Customer sales and payout reconciliation ledger",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./ledgerline.json", "Configuration file for ledgerline")

	rootCmd.PersistentPreRunE = preRun(b)

	rootCmd.AddCommand(serverCommands(b))

	return &Ledgerline{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur during execution.
func (w Ledgerline) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()
	cli := NewCLI()
	cli.executeCLI()
}
