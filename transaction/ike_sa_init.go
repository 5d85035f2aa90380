package transaction

import (
	"crypto/rand"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/curve25519"

	"github.com/JSDL1991/strongswan/message"
	"github.com/JSDL1991/strongswan/sa"
)

// NonceSize is the size of the nonce contributed to each IKE_SA_INIT
// exchange. RFC 7296 requires between 16 and 256 octets.
const NonceSize = 32

// IKESAInit is the initial exchange of an IKE SA. It negotiates the
// proposal, performs the ephemeral key exchange and exchanges nonces.
// Once complete it drives the IKE_AUTH continuation.
type IKESAInit struct {
	ikeSA     *sa.IKESecurityAssociation
	messageID uint32

	dhPrivate [32]byte
	dhPublic  [32]byte
	nonce     []byte
}

// NewIKESAInit constructs the initial exchange procedure, generating the
// local ephemeral Curve25519 key pair and nonce up front.
func NewIKESAInit(ikeSA *sa.IKESecurityAssociation, messageID uint32) *IKESAInit {
	t := &IKESAInit{
		ikeSA:     ikeSA,
		messageID: messageID,
		nonce:     make([]byte, NonceSize),
	}

	// rand.Read only fails when the platform entropy source is broken,
	// in which case the whole peer is unusable anyway.
	if _, err := rand.Read(t.dhPrivate[:]); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "NewIKESAInit",
			"error":    err,
		}).Error("Failed to generate ephemeral key")
		return t
	}
	curve25519.ScalarBaseMult(&t.dhPublic, &t.dhPrivate)

	if _, err := rand.Read(t.nonce); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "NewIKESAInit",
			"error":    err,
		}).Error("Failed to generate nonce")
	}

	return t
}

// MessageID returns the message ID the transaction was created for.
func (t *IKESAInit) MessageID() uint32 {
	return t.messageID
}

// Process handles an IKE_SA_INIT request: it derives the shared secret
// from the peer's key exchange payload, records the concatenated nonces
// on the IKE SA and builds the responder half of the exchange.
func (t *IKESAInit) Process(request *message.Message) (*message.Message, error) {
	if request.ExchangeType() != message.ExchangeIKESAInit {
		return nil, fmt.Errorf("%w: expected IKE_SA_INIT, got %s",
			ErrNotSupported, request.ExchangeType())
	}

	kePayload := request.FirstPayload(message.PayloadKeyExchange)
	noncePayload := request.FirstPayload(message.PayloadNonce)
	if kePayload == nil || noncePayload == nil {
		return nil, fmt.Errorf("IKE_SA_INIT request missing KE or nonce payload")
	}

	ke, kok := kePayload.(*message.RawPayload)
	peerNonce, nok := noncePayload.(*message.RawPayload)
	if !kok || !nok {
		return nil, fmt.Errorf("IKE_SA_INIT request carries malformed KE or nonce payload")
	}
	if len(ke.Data) != 32 {
		return nil, fmt.Errorf("unexpected key exchange data length %d", len(ke.Data))
	}

	var peerPublic [32]byte
	copy(peerPublic[:], ke.Data)
	shared, err := curve25519.X25519(t.dhPrivate[:], peerPublic[:])
	if err != nil {
		return nil, fmt.Errorf("key agreement failed: %w", err)
	}

	t.ikeSA.DiffieHellmanSharedKey = shared
	t.ikeSA.ConcatenatedNonce = append(append([]byte{}, peerNonce.Data...), t.nonce...)
	t.ikeSA.SetState(sa.StateAuth)

	logrus.WithFields(logrus.Fields{
		"function":   "Process",
		"exchange":   "IKE_SA_INIT",
		"message_id": t.messageID,
		"local_spi":  t.ikeSA.LocalSPI,
	}).Info("IKE_SA_INIT exchange processed")

	response := message.NewResponse(message.ExchangeIKESAInit, t.messageID, nil)
	response.AppendPayload(&message.RawPayload{
		PayloadType: message.PayloadKeyExchange,
		Data:        t.dhPublic[:],
	})
	response.AppendPayload(&message.RawPayload{
		PayloadType: message.PayloadNonce,
		Data:        t.nonce,
	})
	return response, nil
}

// Continue creates the IKE_AUTH continuation of a completed initial
// exchange. IKE_AUTH is never dispatched as a top-level request.
func (t *IKESAInit) Continue() *IKEAuth {
	return NewIKEAuth(t.ikeSA, t.messageID+1)
}
