// Package sa holds the per-connection IKE security association record.
//
// One IKESecurityAssociation exists per IKE connection and is owned by
// exactly one connection-processing flow at a time; the connection
// manager guarantees mutual exclusion, so the record carries no lock.
package sa

import (
	"github.com/sirupsen/logrus"
)

// State values for the IKE SA negotiation progress.
const (
	StateInit uint8 = iota
	StateAuth
	StateEstablished
	StateRekeying
	StateDeleting
)

// IKESecurityAssociation is the mutable state of one IKE SA. The
// negotiation procedures created by the transaction factory hold a
// reference to it and update it as exchanges complete.
type IKESecurityAssociation struct {
	// SPIs
	LocalSPI  uint64
	RemoteSPI uint64

	// Per-direction message ID counters
	InitiatorMessageID uint32
	ResponderMessageID uint32

	// Keying material, derived after IKE_SA_INIT completes
	ConcatenatedNonce      []byte
	DiffieHellmanSharedKey []byte
	SKd                    []byte // child SA key derivation
	SKai, SKar             []byte // integrity, initiator/responder
	SKei, SKer             []byte // encryption, initiator/responder
	SKpi, SKpr             []byte // IKE authentication, initiator/responder

	// Negotiation progress
	State uint8
}

// New creates an IKE SA record in the initial state.
func New(localSPI, remoteSPI uint64) *IKESecurityAssociation {
	logrus.WithFields(logrus.Fields{
		"function":   "New",
		"local_spi":  localSPI,
		"remote_spi": remoteSPI,
	}).Debug("Creating IKE security association")

	return &IKESecurityAssociation{
		LocalSPI:  localSPI,
		RemoteSPI: remoteSPI,
		State:     StateInit,
	}
}

// Established reports whether the IKE SA has completed authentication.
func (s *IKESecurityAssociation) Established() bool {
	return s.State == StateEstablished
}

// SetState updates the negotiation progress marker.
func (s *IKESecurityAssociation) SetState(state uint8) {
	logrus.WithFields(logrus.Fields{
		"function":  "SetState",
		"local_spi": s.LocalSPI,
		"old_state": s.State,
		"new_state": state,
	}).Debug("IKE SA state change")

	s.State = state
}
