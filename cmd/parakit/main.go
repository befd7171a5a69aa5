// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Command parakit inspects the block production governance state persisted by
// a parachain node: the bounded relay storage root history used for state
// proof generation and the highest slot authorship record.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ChainSafe/chaindb"
	"github.com/urfave/cli"

	"github.com/ChainSafe/parakit/dot/state"
	"github.com/ChainSafe/parakit/internal/log"
	"github.com/ChainSafe/parakit/lib/relayroots"
)

var logger = log.NewFromGlobal(
	log.AddContext("pkg", "cmd"),
)

func main() {
	app := cli.NewApp()
	app.Name = "parakit"
	app.Usage = "inspect parachain block production governance state"
	app.Commands = []cli.Command{
		{
			Name:   "roots",
			Usage:  "List the stored relay chain storage roots, oldest first",
			Flags:  []cli.Flag{BasePathFlag, MaxStorageRootsFlag, LogFlag},
			Action: handleRoots,
		},
		{
			Name:   "slot",
			Usage:  "Show the highest slot authorship record",
			Flags:  []cli.Flag{BasePathFlag, LogFlag},
			Action: handleSlot,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		logger.Errorf("%s", err)
		os.Exit(1)
	}
}

func startLogger(ctx *cli.Context) error {
	levelString := ctx.String(LogFlag.Name)
	if levelString == "" {
		return nil
	}

	level, err := log.ParseLevel(levelString)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}

	log.Patch(log.SetLevel(level))
	return nil
}

func openDatabase(ctx *cli.Context) (chaindb.Database, error) {
	basepath := ctx.String(BasePathFlag.Name)
	if basepath == "" {
		return nil, errors.New("the --basepath flag is required")
	}

	db, err := chaindb.NewBadgerDB(&chaindb.Config{
		DataDir: basepath,
	})
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", basepath, err)
	}

	return db, nil
}

func handleRoots(ctx *cli.Context) error {
	err := startLogger(ctx)
	if err != nil {
		return err
	}

	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	roots, err := relayroots.NewRelayStorageRoots(db, relayroots.Config{
		MaxStorageRoots: uint32(ctx.Uint(MaxStorageRootsFlag.Name)),
	})
	if err != nil {
		return err
	}

	keys, err := roots.Keys()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Println("no relay storage roots stored")
		return nil
	}

	for _, number := range keys {
		root, err := roots.Root(number)
		if err != nil {
			return err
		}
		fmt.Printf("%d\t%s\n", number, root)
	}

	latestNumber, _, err := roots.Latest()
	if err != nil {
		return err
	}
	logger.Infof("%d roots stored, latest relay block is %d", len(keys), latestNumber)

	return nil
}

func handleSlot(ctx *cli.Context) error {
	err := startLogger(ctx)
	if err != nil {
		return err
	}

	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	info, err := state.NewSlotState(db).HighestSlotInfo()
	if err != nil {
		return err
	}
	if info == nil {
		fmt.Println("no slot authorship record stored")
		return nil
	}

	fmt.Println(info)
	return nil
}
