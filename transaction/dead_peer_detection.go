package transaction

import (
	"github.com/sirupsen/logrus"

	"github.com/JSDL1991/strongswan/message"
	"github.com/JSDL1991/strongswan/sa"
)

// DeadPeerDetection answers an empty INFORMATIONAL request, the liveness
// probe convention: a request without any payloads only asks for proof
// that this end is still alive.
type DeadPeerDetection struct {
	ikeSA     *sa.IKESecurityAssociation
	messageID uint32
}

// NewDeadPeerDetection constructs the liveness check procedure.
func NewDeadPeerDetection(ikeSA *sa.IKESecurityAssociation, messageID uint32) *DeadPeerDetection {
	return &DeadPeerDetection{ikeSA: ikeSA, messageID: messageID}
}

// MessageID returns the message ID the transaction was created for.
func (t *DeadPeerDetection) MessageID() uint32 {
	return t.messageID
}

// Process returns the empty INFORMATIONAL response that acknowledges the
// probe. No SA state changes.
func (t *DeadPeerDetection) Process(request *message.Message) (*message.Message, error) {
	logrus.WithFields(logrus.Fields{
		"function":   "Process",
		"message_id": t.messageID,
		"local_spi":  t.ikeSA.LocalSPI,
	}).Debug("Answering dead peer detection probe")

	return message.NewResponse(message.ExchangeInformational, t.messageID, nil), nil
}
