// SPDX-License-Identifier: MIT

package tier

import "errors"

// Sentinel errors shared by tier and the packages built on it. Match with
// errors.Is; call sites wrap them with fmt.Errorf("ctx: %w", ErrX).
var (
	// ErrDomainMismatch indicates two tiers or documents do not share a time domain.
	ErrDomainMismatch = errors.New("tier: domain mismatch")

	// ErrInvalidTierKind indicates an interval tier was expected but a point tier received, or vice versa.
	ErrInvalidTierKind = errors.New("tier: invalid tier kind")

	// ErrInvalidRange indicates an index out of bounds, an empty selection or a broken interval chain.
	ErrInvalidRange = errors.New("tier: invalid range")

	// ErrEmptyInput indicates there is nothing to operate on.
	ErrEmptyInput = errors.New("tier: empty input")
)
