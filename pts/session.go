// Package pts implements the Platform Trust Service session attached to
// an attestation connection. The session records the attested platform
// identity and computes measurement digests; TPM access itself lives
// behind the measurement collectors and is not part of this package.
package pts

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MeasAlgo selects the hash algorithm used for platform measurements.
type MeasAlgo uint8

const (
	MeasAlgoSHA1 MeasAlgo = iota
	MeasAlgoSHA256
	MeasAlgoSHA384
)

// String returns the algorithm name.
func (a MeasAlgo) String() string {
	switch a {
	case MeasAlgoSHA1:
		return "SHA1"
	case MeasAlgoSHA384:
		return "SHA384"
	default:
		return "SHA256"
	}
}

// Session is one Platform Trust Service session. It is created and owned
// exclusively by the attestation state of a connection and is discarded
// together with it.
type Session struct {
	id           uuid.UUID
	platformInfo string
	algo         MeasAlgo
}

// NewSession creates a session with a fresh identifier and the default
// SHA-256 measurement algorithm.
func NewSession() *Session {
	s := &Session{
		id:   uuid.New(),
		algo: MeasAlgoSHA256,
	}

	logrus.WithFields(logrus.Fields{
		"function":   "NewSession",
		"session_id": s.id.String(),
	}).Debug("Created platform trust service session")

	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// SetPlatformInfo records the attested platform description, e.g.
// "Ubuntu 24.04 x86_64".
func (s *Session) SetPlatformInfo(info string) {
	logrus.WithFields(logrus.Fields{
		"function":      "SetPlatformInfo",
		"session_id":    s.id.String(),
		"platform_info": info,
	}).Info("Platform information set")

	s.platformInfo = info
}

// PlatformInfo returns the recorded platform description, or the empty
// string when none was configured.
func (s *Session) PlatformInfo() string {
	return s.platformInfo
}

// SetMeasAlgo selects the measurement hash algorithm.
func (s *Session) SetMeasAlgo(algo MeasAlgo) {
	s.algo = algo
}

// MeasAlgo returns the selected measurement hash algorithm.
func (s *Session) MeasAlgo() MeasAlgo {
	return s.algo
}

// Measure computes the digest of data under the session's measurement
// algorithm.
func (s *Session) Measure(data []byte) []byte {
	var h hash.Hash
	switch s.algo {
	case MeasAlgoSHA1:
		h = sha1.New()
	case MeasAlgoSHA384:
		h = sha512.New384()
	default:
		h = sha256.New()
	}
	h.Write(data)
	return h.Sum(nil)
}
