// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package relayroots stores the latest MaxStorageRoots relay storage roots,
// which can be used to verify state proofs against an old state of the relay
// chain.
//
// This is useful when the proof needs to be generated by an end user, because
// by the time their transaction is included in a block, the latest relay
// block will probably have changed and therefore the proof will be invalid.
// To avoid that, the user generates a proof against the latest relay block
// stored here. That proof stays valid as long as the relay block is not
// evicted.
//
// One storage root is stored per local block, but there may be more than one
// relay block in between two local blocks. In that case there is a gap in the
// stored numbers, so proof tooling should always use the latest stored root.
package relayroots

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/go-playground/validator/v10"

	"github.com/ChainSafe/parakit/dot/types"
	"github.com/ChainSafe/parakit/internal/log"
)

var logger = log.NewFromGlobal(
	log.AddContext("pkg", "relayroots"),
)

const relayRootsTablePrefix = "relayroots"

var (
	rootKeyPrefix = []byte("root")
	rootKeysKey   = []byte("root_keys")
)

var (
	// ErrRootNotFound is returned when no storage root is stored for a
	// relay block number, either because it was never observed or because
	// it has been evicted.
	ErrRootNotFound = errors.New("relay storage root not found")

	// ErrNoStateProvider is returned by RecordCurrentRelayState when the
	// store was built without a relay chain state provider.
	ErrNoStateProvider = errors.New("no relay chain state provider")
)

// RelaychainStateProvider supplies the relay chain state the current local
// block is being built against.
type RelaychainStateProvider interface {
	CurrentRelayChainState() (types.RelayChainState, error)
}

// Config holds the relay storage roots parameters. They are fixed per
// deployment and never mutated at runtime.
type Config struct {
	// MaxStorageRoots bounds the number of live storage roots.
	MaxStorageRoots uint32 `validate:"required"`
	// Provider supplies the current relay chain state. It may be left nil
	// for read-only use, in which case RecordCurrentRelayState errors.
	Provider RelaychainStateProvider
}

// RelayStorageRoots is a bounded, age-ordered history of relay chain storage
// roots keyed by relay block number. The oldest entry is evicted first once
// the bound is exceeded.
type RelayStorageRoots struct {
	db     chaindb.Database
	config Config
}

// NewRelayStorageRoots validates the given configuration and returns a
// RelayStorageRoots backed by a prefixed table of the given database.
func NewRelayStorageRoots(db chaindb.Database, config Config) (*RelayStorageRoots, error) {
	err := validator.New().Struct(config)
	if err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &RelayStorageRoots{
		db:     chaindb.NewTable(db, relayRootsTablePrefix),
		config: config,
	}, nil
}

func rootKey(number uint32) []byte {
	encoded := make([]byte, 4)
	binary.LittleEndian.PutUint32(encoded, number)
	return append(rootKeyPrefix, encoded...)
}

// RecordCurrentRelayState stores the storage root of the relay block the
// current local block was built against. It is meant to be called once per
// local block, from the host's finalize hook. Observing the same relay block
// number again is a no-op, so consecutive local blocks without relay chain
// progress are harmless.
//
// At most one entry is evicted per call to keep the per-block write count
// constant. If MaxStorageRoots was lowered across an upgrade, the key list is
// truncated to the bound and the orphaned entries are leaked rather than
// deleted in one unbounded sweep.
func (r *RelayStorageRoots) RecordCurrentRelayState() error {
	if r.config.Provider == nil {
		return ErrNoStateProvider
	}

	relayState, err := r.config.Provider.CurrentRelayChainState()
	if err != nil {
		return fmt.Errorf("getting current relay chain state: %w", err)
	}

	// If this relay block number has already been stored, skip it.
	has, err := r.db.Has(rootKey(relayState.Number))
	if err != nil {
		return fmt.Errorf("checking for relay storage root: %w", err)
	}
	if has {
		logger.Tracef("relay block %d already stored, skipping", relayState.Number)
		return nil
	}

	err = r.db.Put(rootKey(relayState.Number), relayState.StateRoot[:])
	if err != nil {
		return fmt.Errorf("putting relay storage root: %w", err)
	}

	keys, err := r.Keys()
	if err != nil {
		return err
	}
	keys = append(keys, relayState.Number)

	// Delete the oldest stored root if the total number is greater than
	// MaxStorageRoots.
	if uint32(len(keys)) > r.config.MaxStorageRoots {
		oldest := keys[0]
		keys = keys[1:]
		err = r.db.Del(rootKey(oldest))
		if err != nil {
			return fmt.Errorf("deleting oldest relay storage root: %w", err)
		}
		logger.Tracef("evicted relay storage root for relay block %d", oldest)
	}

	// If MaxStorageRoots has decreased, more than one root would need to be
	// deleted. Only the key list is truncated, leaking the orphaned entries.
	if uint32(len(keys)) > r.config.MaxStorageRoots {
		keys = keys[:r.config.MaxStorageRoots]
	}

	err = r.storeKeys(keys)
	if err != nil {
		return err
	}

	logger.Debugf("stored relay storage root %s for relay block %d",
		relayState.StateRoot, relayState.Number)
	return nil
}

// Root returns the storage root stored for the given relay block number.
func (r *RelayStorageRoots) Root(number uint32) (common.Hash, error) {
	value, err := r.db.Get(rootKey(number))
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return common.Hash{}, fmt.Errorf("%w: relay block %d", ErrRootNotFound, number)
	} else if err != nil {
		return common.Hash{}, fmt.Errorf("getting relay storage root: %w", err)
	}

	return common.NewHash(value), nil
}

// Keys returns the live relay block numbers in insertion order, oldest
// first.
func (r *RelayStorageRoots) Keys() ([]uint32, error) {
	encoded, err := r.db.Get(rootKeysKey)
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("getting relay storage root keys: %w", err)
	}

	var keys []uint32
	err = scale.Unmarshal(encoded, &keys)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling relay storage root keys: %w", err)
	}

	return keys, nil
}

// Latest returns the most recently stored relay block number and its storage
// root. Proof tooling should build proofs against this root, since older
// roots are the first to be evicted.
func (r *RelayStorageRoots) Latest() (number uint32, root common.Hash, err error) {
	keys, err := r.Keys()
	if err != nil {
		return 0, common.Hash{}, err
	}
	if len(keys) == 0 {
		return 0, common.Hash{}, fmt.Errorf("%w: no roots stored", ErrRootNotFound)
	}

	number = keys[len(keys)-1]
	root, err = r.Root(number)
	if err != nil {
		return 0, common.Hash{}, err
	}

	return number, root, nil
}

func (r *RelayStorageRoots) storeKeys(keys []uint32) error {
	encoded, err := scale.Marshal(keys)
	if err != nil {
		return fmt.Errorf("marshalling relay storage root keys: %w", err)
	}

	err = r.db.Put(rootKeysKey, encoded)
	if err != nil {
		return fmt.Errorf("putting relay storage root keys: %w", err)
	}

	return nil
}
