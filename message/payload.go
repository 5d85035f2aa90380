package message

// PayloadType identifies the type of an IKEv2 payload, using the payload
// type values assigned by RFC 7296 section 3.2.
type PayloadType uint8

const (
	PayloadSecurityAssociation PayloadType = iota + 33 // SA
	PayloadKeyExchange                                 // KE
	PayloadIDInitiator                                 // IDi
	PayloadIDResponder                                 // IDr
	PayloadCertificate                                 // CERT
	PayloadCertificateRequest                          // CERTREQ
	PayloadAuthentication                              // AUTH
	PayloadNonce                                       // Ni, Nr
	PayloadNotify                                      // N
	PayloadDelete                                      // D
	PayloadVendorID                                    // V
	PayloadTSInitiator                                 // TSi
	PayloadTSResponder                                 // TSr
	PayloadEncrypted                                   // SK
	PayloadConfiguration                               // CP
	PayloadEAP                                         // EAP
)

// ProtocolID identifies the protocol a payload refers to, per RFC 7296
// section 3.3.1.
type ProtocolID uint8

const (
	ProtocolNone ProtocolID = iota
	ProtocolIKE
	ProtocolAH
	ProtocolESP
)

// String returns the RFC 7296 protocol name.
func (p ProtocolID) String() string {
	switch p {
	case ProtocolIKE:
		return "IKE"
	case ProtocolAH:
		return "AH"
	case ProtocolESP:
		return "ESP"
	default:
		return "NONE"
	}
}

// NotifyType identifies the kind of a notification payload. Only the
// values the negotiation core inspects or emits are listed.
type NotifyType uint16

const (
	// Error notifications
	NotifyUnsupportedCriticalPayload NotifyType = 1
	NotifyInvalidSyntax              NotifyType = 7
	NotifyNoProposalChosen           NotifyType = 14
	NotifyAuthenticationFailed       NotifyType = 24
	NotifyNoAdditionalSAs            NotifyType = 35

	// Status notifications
	NotifyInitialContact        NotifyType = 16384
	NotifyCookie                NotifyType = 16390
	NotifyRekeySA               NotifyType = 16393
	NotifyUsePFS                NotifyType = 16394
	NotifyNonFirstFragments     NotifyType = 16395
	NotifyMobikeSupported       NotifyType = 16396
	NotifyNoNatsAllowed         NotifyType = 16402
	NotifyAuthLifetime          NotifyType = 16403
	NotifyMultipleAuthSupported NotifyType = 16404
)

// Payload is one decoded IKEv2 payload inside a message. Concrete payload
// views expose the fields the negotiation core inspects; everything else
// stays opaque.
type Payload interface {
	Type() PayloadType
}

// NotifyPayload is the decoded view of a notification payload (N).
type NotifyPayload struct {
	NotifyType NotifyType
	ProtocolID ProtocolID
	SPI        []byte
	Data       []byte
}

// Type returns PayloadNotify.
func (p *NotifyPayload) Type() PayloadType {
	return PayloadNotify
}

// DeletePayload is the decoded view of a delete payload (D). It names the
// security association(s) being torn down; for ProtocolIKE the SPI list
// is empty since the containing IKE SA is implied.
type DeletePayload struct {
	ProtocolID ProtocolID
	SPISize    uint8
	SPIs       [][]byte
}

// Type returns PayloadDelete.
func (p *DeletePayload) Type() PayloadType {
	return PayloadDelete
}

// RawPayload carries a payload kind the core does not inspect beyond its
// type tag. Dispatch scanning skips over these.
type RawPayload struct {
	PayloadType PayloadType
	Data        []byte
}

// Type returns the wrapped payload type.
func (p *RawPayload) Type() PayloadType {
	return p.PayloadType
}
