// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccountStatus is the identity provider's view of an account.
//
// The set is closed: every provider-specific status string is converted into
// one of these values at the adapter boundary, and nothing past that boundary
// compares raw status strings.
type AccountStatus int

const (
	// AccountUnknown means the identity provider has no such user.
	AccountUnknown AccountStatus = iota

	// AccountUnconfirmed means the account exists but the one-time code was
	// never confirmed. New codes may be requested in this state.
	AccountUnconfirmed

	// AccountConfirmed is terminal: no confirmation or resend is accepted.
	AccountConfirmed
)

// String implements fmt.Stringer.
func (s AccountStatus) String() string {
	switch s {
	case AccountUnconfirmed:
		return "unconfirmed"
	case AccountConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// CodeDelivery describes where the identity provider sent a confirmation
// code. Destination is masked by the provider (a***@x.com).
type CodeDelivery struct {
	Destination string
	Medium      string
}

// SignUpResult is the identity provider's answer to a successful sign-up.
type SignUpResult struct {
	// UserSub is the provider's immutable identifier for the account.
	UserSub   string
	Confirmed bool
	Delivery  CodeDelivery
}
