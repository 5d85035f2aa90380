package transaction

import (
	"github.com/sirupsen/logrus"

	"github.com/JSDL1991/strongswan/message"
	"github.com/JSDL1991/strongswan/sa"
)

// New selects and constructs the negotiation procedure for an inbound
// request, or returns nil when no procedure applies at this level.
//
// nil is an expected outcome, not an error: responses are never
// dispatched here, IKE_AUTH only ever runs as a continuation of the
// initial exchange, a CREATE_CHILD_SA without a REKEY_SA notification is
// a fresh child creation handled by a separate path, and an
// INFORMATIONAL without an IKE-level delete belongs to the generic
// informational processing.
//
// The function is pure apart from allocating the selected procedure and
// may be called concurrently for different IKE SAs.
func New(ikeSA *sa.IKESecurityAssociation, request *message.Message) Transaction {
	if !request.IsRequest() {
		return nil
	}
	messageID := request.MessageID()

	log := logrus.WithFields(logrus.Fields{
		"function":   "New",
		"exchange":   request.ExchangeType().String(),
		"message_id": messageID,
	})

	switch request.ExchangeType() {
	case message.ExchangeIKESAInit:
		log.Debug("Dispatching IKE_SA_INIT transaction")
		return NewIKESAInit(ikeSA, messageID)

	case message.ExchangeIKEAuth:
		// IKE_AUTH is always driven from within IKE_SA_INIT, it never
		// appears alone as a top-level request.
		log.Debug("Ignoring top-level IKE_AUTH request")
		return nil

	case message.ExchangeCreateChildSA:
		return newForCreateChildSA(ikeSA, request, log)

	case message.ExchangeInformational:
		return newForInformational(ikeSA, request, log)

	default:
		log.Warn("Unknown exchange type, no transaction dispatched")
		return nil
	}
}

// newForCreateChildSA looks for a REKEY_SA notify to distinguish a rekey
// from a fresh child SA creation. The first usable notification wins.
func newForCreateChildSA(ikeSA *sa.IKESecurityAssociation, request *message.Message, log *logrus.Entry) Transaction {
	for _, payload := range request.Payloads() {
		if payload.Type() != message.PayloadNotify {
			continue
		}
		notify, ok := payload.(*message.NotifyPayload)
		if !ok || notify.NotifyType != message.NotifyRekeySA {
			continue
		}
		switch notify.ProtocolID {
		case message.ProtocolIKE:
			log.Debug("Dispatching IKE SA rekey transaction")
			return NewRekeyIKESA(ikeSA, request.MessageID())
		case message.ProtocolAH, message.ProtocolESP:
			log.WithFields(logrus.Fields{
				"protocol": notify.ProtocolID.String(),
			}).Debug("Dispatching child SA rekey transaction")
			return NewRekeyChildSA(ikeSA, request.MessageID())
		}
	}
	// No usable REKEY_SA notify: a fresh child SA creation, constructed
	// by the child creation path, not here.
	log.Debug("CREATE_CHILD_SA without rekey notification, not dispatched")
	return nil
}

// newForInformational dispatches an IKE-level deletion if a matching
// delete payload is present, or the dead peer detection procedure when
// the request carries no payloads at all.
func newForInformational(ikeSA *sa.IKESecurityAssociation, request *message.Message, log *logrus.Entry) Transaction {
	payloadCount := 0
	for _, payload := range request.Payloads() {
		payloadCount++
		if payload.Type() != message.PayloadDelete {
			continue
		}
		del, ok := payload.(*message.DeletePayload)
		if !ok {
			continue
		}
		if del.ProtocolID == message.ProtocolIKE {
			log.Debug("Dispatching IKE SA delete transaction")
			return NewDeleteIKESA(ikeSA, request.MessageID())
		}
	}
	if payloadCount == 0 {
		// An empty INFORMATIONAL request is the liveness probe.
		log.Debug("Dispatching dead peer detection transaction")
		return NewDeadPeerDetection(ikeSA, request.MessageID())
	}
	log.Debug("INFORMATIONAL without IKE-level delete, not dispatched")
	return nil
}
