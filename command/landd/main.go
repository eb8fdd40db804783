// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// land parcel registry command tool
//
// operates directly on the local database named in the configuration
// file; one operation per invocation
package main

import (
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/landd/account"
	"github.com/bitmark-inc/landd/configuration"
	"github.com/bitmark-inc/landd/messagebus"
	"github.com/bitmark-inc/landd/ownership"
	"github.com/bitmark-inc/landd/payment"
	"github.com/bitmark-inc/landd/registry"
	"github.com/bitmark-inc/landd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		exitwithstatus.Message(usage(program))
	}

	configurationFile := "landd.conf"
	if len(options["config-file"]) > 0 {
		configurationFile = options["config-file"][0]
	}

	masterConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}

	logging := logger.Configuration{
		Directory: masterConfiguration.Logging.Directory,
		File:      filepath.Base(masterConfiguration.Logging.File),
		Size:      masterConfiguration.Logging.Size,
		Count:     masterConfiguration.Logging.Count,
		Console:   masterConfiguration.Logging.Console,
		Levels:    masterConfiguration.Logging.Levels,
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger initialise error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	log.Infof("version: %s", version)

	command := arguments[0]
	arguments = arguments[1:]

	// identity generation needs no database
	if "gen-identity" == command {
		newAccount, privateKey, err := account.New(masterConfiguration.Testnet)
		if nil != err {
			exitwithstatus.Message("%s: identity generate error: %s", program, err)
		}
		fmt.Printf("account: %s\n", newAccount)
		fmt.Printf("private: %x\n", []byte(privateKey))
		return
	}

	administrator, err := account.AccountFromBase58(masterConfiguration.Registry.Administrator)
	if nil != err {
		exitwithstatus.Message("%s: administrator account error: %s", program, err)
	}

	store, err := storage.New(masterConfiguration.Database.Name)
	if nil != err {
		exitwithstatus.Message("%s: storage error: %s", program, err)
	}
	defer store.Close()

	tokens := ownership.New(store.Pool.Tokens)
	ledger := payment.NewLedger(store.Pool.Balances)
	bus := messagebus.New()

	reg, err := registry.New(store, tokens, ledger, registry.Options{
		Administrator:  administrator,
		SupplyCap:      masterConfiguration.Registry.SupplyCap,
		MinimumPrice:   masterConfiguration.Registry.MinimumPriceUnits(),
		FeeBasisPoints: masterConfiguration.Registry.FeeBasisPoints,
		Bus:            bus,
	})
	if nil != err {
		exitwithstatus.Message("%s: registry error: %s", program, err)
	}

	err = runCommand(reg, ledger, store, tokens, administrator, command, arguments)

	printEvents(bus)

	if nil != err {
		log.Errorf("%s error: %s", command, err)
		exitwithstatus.Message("%s: %s error: %s", program, command, err)
	}
}

func usage(program string) string {
	return fmt.Sprintf(
		"usage: %s [--help] [--verbose] [--version] [--config-file=FILE] command [arguments]\n"+
			"  gen-identity                          generate a new account key pair\n"+
			"  issue TO X Y SIZE NAME                create a parcel (administrator)\n"+
			"  list OWNER ID PRICE                   put a parcel up for sale\n"+
			"  delist OWNER ID                       withdraw a parcel from sale\n"+
			"  buy BUYER ID AMOUNT                   purchase a listed parcel\n"+
			"  parcel ID                             show one parcel\n"+
			"  listings                              show all active listings\n"+
			"  owned ACCOUNT                         show parcels held by an account\n"+
			"  coordinate X Y                        show the parcel at a position\n"+
			"  set-fee BASIS-POINTS                  change the marketplace fee (administrator)\n"+
			"  withdraw                              sweep accrued fees (administrator)\n"+
			"  emergency                             sweep fees without empty check (administrator)\n"+
			"  deposit ACCOUNT AMOUNT                credit an internal balance\n"+
			"  balance ACCOUNT                       show one internal balance\n"+
			"  balances                              show all internal balances\n"+
			"  stats                                 show registry statistics",
		program)
}
