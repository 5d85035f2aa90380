// Package attestation implements the verifier-side state of the TNC
// attestation handshake running inside an IKE connection.
//
// One State exists per connection. The verifier registers every file or
// directory measurement request and every functional component evidence
// request it sends, and checks each off exactly once when the matching
// response arrives. Responses may arrive in any order and duplicates or
// forged identifiers are reported as not-found, never as a crash.
//
// A State instance is owned by exactly one connection-processing flow at
// a time; the connection manager guarantees mutual exclusion, so the
// state carries no lock.
package attestation
