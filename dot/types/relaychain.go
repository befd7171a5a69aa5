// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"
)

// RelayChainState is the view of the relay chain supplied by the host for
// the current local block: the relay block the candidate is being built
// against and the storage root of the relay chain at that block.
type RelayChainState struct {
	Number    uint32
	StateRoot common.Hash
}

// SlotInfo is the highest relay chain slot seen by this chain so far,
// together with the number of blocks authored within that slot.
type SlotInfo struct {
	Slot     uint64
	Authored uint32
}

func (si SlotInfo) String() string {
	return fmt.Sprintf("slot %d (authored %d)", si.Slot, si.Authored)
}
