// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the Lua configuration file and fill in
// all defaults
package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/landd/currency"
	"github.com/bitmark-inc/landd/fault"
)

// basic defaults (directories and files are relative to the
// "data_directory" from the configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultDatabaseDirectory = "data"
	defaultDatabaseName      = "landd.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "landd.log"
	defaultLogCount     = 10          // number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when the log file exceeds this size

	defaultSupplyCap      = 10000
	defaultMinimumPrice   = "0.00010000"
	defaultFeeBasisPoints = 250
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		"main":            "info",
		"registry":        "info",
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the leveldb files
type DatabaseType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

// RegistryType - parameters of the registry instance
type RegistryType struct {
	Administrator  string `gluamapper:"administrator"`
	SupplyCap      uint64 `gluamapper:"supply_cap"`
	MinimumPrice   string `gluamapper:"minimum_price"`
	FeeBasisPoints uint64 `gluamapper:"fee_basis_points"`
}

// LoggerType - rotating log file settings
type LoggerType struct {
	Directory string            `gluamapper:"directory"`
	File      string            `gluamapper:"file"`
	Size      int               `gluamapper:"size"`
	Count     int               `gluamapper:"count"`
	Console   bool              `gluamapper:"console"`
	Levels    map[string]string `gluamapper:"levels"`
}

// Configuration - the full configuration file content
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory"`
	Testnet       bool         `gluamapper:"testnet"`
	Database      DatabaseType `gluamapper:"database"`
	Registry      RegistryType `gluamapper:"registry"`
	Logging       LoggerType   `gluamapper:"logging"`
}

// MinimumPriceUnits - the configured minimum listing price
func (r RegistryType) MinimumPriceUnits() currency.Unit {
	return currency.FromByteString([]byte(r.MinimumPrice))
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,

		Database: DatabaseType{
			Directory: defaultDatabaseDirectory,
			Name:      defaultDatabaseName,
		},

		Registry: RegistryType{
			SupplyCap:      defaultSupplyCap,
			MinimumPrice:   defaultMinimumPrice,
			FeeBasisPoints: defaultFeeBasisPoints,
		},

		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if options.Registry.FeeBasisPoints > currency.MaxBasisPoints {
		return nil, fault.FeeTooHigh
	}
	if 0 == options.Registry.SupplyCap {
		return nil, fmt.Errorf("registry supply_cap must not be zero")
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force relevant directories to be absolute paths,
	// relative ones are resolved against the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// fail if any of these are not simple file names i.e. must not
	// contain a path separator, then add the correct directory prefix
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, &options.Logging.Directory},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			*f[0] = ensureAbsolute(*f[1], *f[0])
		default:
			return nil, fmt.Errorf("files: %q is not a plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{&options.Database.Directory, &options.Logging.Directory} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
