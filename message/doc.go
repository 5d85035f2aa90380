// Package message defines the decoded IKEv2 message model used by the
// negotiation core.
//
// This package only models messages that have already been parsed and
// decrypted by the transport layer: an exchange type, a message ID, the
// request/response flag and an ordered list of typed payloads. Byte-level
// encoding and decoding is not handled here.
//
// Example:
//
//	msg := message.NewRequest(message.ExchangeInformational, 4, nil)
//	if msg.PayloadCount() == 0 {
//	    // empty INFORMATIONAL request, the liveness probe convention
//	}
package message
