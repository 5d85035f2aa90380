package message

// ExchangeType identifies an IKEv2 exchange, per RFC 7296 section 3.1.
type ExchangeType uint8

const (
	ExchangeIKESAInit     ExchangeType = 34
	ExchangeIKEAuth       ExchangeType = 35
	ExchangeCreateChildSA ExchangeType = 36
	ExchangeInformational ExchangeType = 37
)

// String returns the RFC 7296 exchange name.
func (e ExchangeType) String() string {
	switch e {
	case ExchangeIKESAInit:
		return "IKE_SA_INIT"
	case ExchangeIKEAuth:
		return "IKE_AUTH"
	case ExchangeCreateChildSA:
		return "CREATE_CHILD_SA"
	case ExchangeInformational:
		return "INFORMATIONAL"
	default:
		return "UNKNOWN"
	}
}

// Message is one decoded IKEv2 message. The payload list preserves wire
// order; the message ID is carried through to the selected transaction
// but never interpreted during dispatch.
type Message struct {
	exchangeType ExchangeType
	messageID    uint32
	isRequest    bool
	payloads     []Payload
}

// NewRequest creates a decoded request message.
func NewRequest(exchangeType ExchangeType, messageID uint32, payloads []Payload) *Message {
	return &Message{
		exchangeType: exchangeType,
		messageID:    messageID,
		isRequest:    true,
		payloads:     payloads,
	}
}

// NewResponse creates a decoded response message.
func NewResponse(exchangeType ExchangeType, messageID uint32, payloads []Payload) *Message {
	return &Message{
		exchangeType: exchangeType,
		messageID:    messageID,
		isRequest:    false,
		payloads:     payloads,
	}
}

// ExchangeType returns the exchange this message belongs to.
func (m *Message) ExchangeType() ExchangeType {
	return m.exchangeType
}

// MessageID returns the per-direction message identifier.
func (m *Message) MessageID() uint32 {
	return m.messageID
}

// IsRequest reports whether the message carries the request flag.
func (m *Message) IsRequest() bool {
	return m.isRequest
}

// Payloads returns the ordered payload list. Callers must treat the
// slice as read-only.
func (m *Message) Payloads() []Payload {
	return m.payloads
}

// PayloadCount returns the number of payloads in the message.
func (m *Message) PayloadCount() int {
	return len(m.payloads)
}

// AppendPayload adds a payload at the end of the list. Used by tests and
// by procedures building outbound messages.
func (m *Message) AppendPayload(p Payload) {
	m.payloads = append(m.payloads, p)
}

// FirstPayload returns the first payload of the given type, or nil.
func (m *Message) FirstPayload(t PayloadType) Payload {
	for _, p := range m.payloads {
		if p.Type() == t {
			return p
		}
	}
	return nil
}
