package transaction

import (
	"github.com/sirupsen/logrus"

	"github.com/JSDL1991/strongswan/message"
	"github.com/JSDL1991/strongswan/sa"
)

// DeleteIKESA handles an INFORMATIONAL request deleting the IKE SA
// itself. Deletion of individual child SAs is a different path and never
// reaches this procedure.
type DeleteIKESA struct {
	ikeSA     *sa.IKESecurityAssociation
	messageID uint32
}

// NewDeleteIKESA constructs the IKE SA deletion procedure.
func NewDeleteIKESA(ikeSA *sa.IKESecurityAssociation, messageID uint32) *DeleteIKESA {
	return &DeleteIKESA{ikeSA: ikeSA, messageID: messageID}
}

// MessageID returns the message ID the transaction was created for.
func (t *DeleteIKESA) MessageID() uint32 {
	return t.messageID
}

// Process acknowledges the deletion with an empty INFORMATIONAL response
// and marks the SA for teardown. The connection manager destroys the SA
// after the response has been sent.
func (t *DeleteIKESA) Process(request *message.Message) (*message.Message, error) {
	t.ikeSA.SetState(sa.StateDeleting)

	logrus.WithFields(logrus.Fields{
		"function":   "Process",
		"exchange":   "INFORMATIONAL",
		"message_id": t.messageID,
		"local_spi":  t.ikeSA.LocalSPI,
	}).Info("IKE SA deletion requested by peer")

	return message.NewResponse(message.ExchangeInformational, t.messageID, nil), nil
}
