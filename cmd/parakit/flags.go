// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

var (
	// BasePathFlag is the path to the node database directory
	BasePathFlag = cli.StringFlag{
		Name:  "basepath",
		Usage: "Path to the node database directory",
	}
	// MaxStorageRootsFlag is the storage root bound the runtime is configured with
	MaxStorageRootsFlag = cli.UintFlag{
		Name:  "max-storage-roots",
		Usage: "Bound on live relay storage roots, as configured in the runtime",
		Value: 4,
	}
	// LogFlag sets the global log level
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit, eror, warn, info, dbug and trce",
	}
)
