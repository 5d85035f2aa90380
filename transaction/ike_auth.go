package transaction

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/JSDL1991/strongswan/message"
	"github.com/JSDL1991/strongswan/sa"
)

// IKEAuth authenticates the peers of an IKE SA established by the
// initial exchange. It is only ever created as the continuation of an
// IKESAInit transaction; the dispatch factory never constructs it.
type IKEAuth struct {
	ikeSA     *sa.IKESecurityAssociation
	messageID uint32
}

// NewIKEAuth constructs the authentication procedure.
func NewIKEAuth(ikeSA *sa.IKESecurityAssociation, messageID uint32) *IKEAuth {
	return &IKEAuth{ikeSA: ikeSA, messageID: messageID}
}

// MessageID returns the message ID the transaction was created for.
func (t *IKEAuth) MessageID() uint32 {
	return t.messageID
}

// Process handles an IKE_AUTH request. The request must carry an AUTH
// payload; signature verification belongs to the credential layer, here
// the SA is moved to the established state once the payload is present.
func (t *IKEAuth) Process(request *message.Message) (*message.Message, error) {
	if request.ExchangeType() != message.ExchangeIKEAuth {
		return nil, fmt.Errorf("%w: expected IKE_AUTH, got %s",
			ErrNotSupported, request.ExchangeType())
	}
	if request.FirstPayload(message.PayloadAuthentication) == nil {
		return nil, fmt.Errorf("IKE_AUTH request missing AUTH payload")
	}

	t.ikeSA.SetState(sa.StateEstablished)

	logrus.WithFields(logrus.Fields{
		"function":   "Process",
		"exchange":   "IKE_AUTH",
		"message_id": t.messageID,
		"local_spi":  t.ikeSA.LocalSPI,
	}).Info("IKE SA established")

	return message.NewResponse(message.ExchangeIKEAuth, t.messageID, nil), nil
}
