package transaction

import (
	"github.com/JSDL1991/strongswan/message"
	"github.com/JSDL1991/strongswan/sa"
)

// RekeyChildSA would replace an AH or ESP child SA under new keys. Like
// RekeyIKESA it is a recognized-but-unsupported placeholder: dispatch
// still classifies the exchange, Process reports ErrNotSupported.
type RekeyChildSA struct {
	ikeSA     *sa.IKESecurityAssociation
	messageID uint32
}

// NewRekeyChildSA constructs the child SA rekey placeholder.
func NewRekeyChildSA(ikeSA *sa.IKESecurityAssociation, messageID uint32) *RekeyChildSA {
	return &RekeyChildSA{ikeSA: ikeSA, messageID: messageID}
}

// MessageID returns the message ID the transaction was created for.
func (t *RekeyChildSA) MessageID() uint32 {
	return t.messageID
}

// Process reports that child SA rekeying is not supported.
func (t *RekeyChildSA) Process(request *message.Message) (*message.Message, error) {
	return nil, ErrNotSupported
}
