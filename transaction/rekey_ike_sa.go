package transaction

import (
	"github.com/JSDL1991/strongswan/message"
	"github.com/JSDL1991/strongswan/sa"
)

// RekeyIKESA would replace the IKE SA with a fresh one under new keys.
// The procedure is recognized by the dispatcher but its negotiation
// logic is not implemented yet; Process reports ErrNotSupported so the
// caller can answer with a NO_PROPOSAL_CHOSEN style rejection.
//
// TODO: implement the rekey negotiation once child SA inheritance is in
// place.
type RekeyIKESA struct {
	ikeSA     *sa.IKESecurityAssociation
	messageID uint32
}

// NewRekeyIKESA constructs the IKE SA rekey placeholder.
func NewRekeyIKESA(ikeSA *sa.IKESecurityAssociation, messageID uint32) *RekeyIKESA {
	return &RekeyIKESA{ikeSA: ikeSA, messageID: messageID}
}

// MessageID returns the message ID the transaction was created for.
func (t *RekeyIKESA) MessageID() uint32 {
	return t.messageID
}

// Process reports that IKE SA rekeying is not supported.
func (t *RekeyIKESA) Process(request *message.Message) (*message.Message, error) {
	return nil, ErrNotSupported
}
