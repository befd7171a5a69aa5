// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package consensushook

import (
	"errors"
)

var (
	// ErrAuthoredBlocksLimit is returned when the number of blocks authored
	// within the current slot exceeds the velocity budget. A block failing
	// this check is consensus-invalid and must be rejected by the host.
	ErrAuthoredBlocksLimit = errors.New("authored blocks limit is reached for the slot")

	// ErrSlotDerivationMismatch is returned when the slot derived from the
	// relay chain slot and the two slot durations disagrees with the slot
	// recorded by the inherent.
	ErrSlotDerivationMismatch = errors.New("slot number mismatch")
)
