package message

import (
	"testing"
)

func TestMessageAccessors(t *testing.T) {
	notify := &NotifyPayload{NotifyType: NotifyRekeySA, ProtocolID: ProtocolESP}
	msg := NewRequest(ExchangeCreateChildSA, 9, []Payload{
		&RawPayload{PayloadType: PayloadSecurityAssociation},
		notify,
	})

	if msg.ExchangeType() != ExchangeCreateChildSA {
		t.Errorf("ExchangeType() = %v, want CREATE_CHILD_SA", msg.ExchangeType())
	}
	if msg.MessageID() != 9 {
		t.Errorf("MessageID() = %d, want 9", msg.MessageID())
	}
	if !msg.IsRequest() {
		t.Error("IsRequest() = false, want true")
	}
	if msg.PayloadCount() != 2 {
		t.Errorf("PayloadCount() = %d, want 2", msg.PayloadCount())
	}

	if got := msg.FirstPayload(PayloadNotify); got != Payload(notify) {
		t.Errorf("FirstPayload(Notify) = %v, want the notify payload", got)
	}
	if got := msg.FirstPayload(PayloadDelete); got != nil {
		t.Errorf("FirstPayload(Delete) = %v, want nil", got)
	}
}

func TestNewResponse(t *testing.T) {
	msg := NewResponse(ExchangeInformational, 3, nil)
	if msg.IsRequest() {
		t.Error("IsRequest() = true for a response")
	}
	if msg.PayloadCount() != 0 {
		t.Errorf("PayloadCount() = %d, want 0", msg.PayloadCount())
	}

	msg.AppendPayload(&RawPayload{PayloadType: PayloadNonce})
	if msg.PayloadCount() != 1 {
		t.Errorf("PayloadCount() after append = %d, want 1", msg.PayloadCount())
	}
}

func TestPayloadTypes(t *testing.T) {
	testCases := []struct {
		name    string
		payload Payload
		want    PayloadType
	}{
		{"Notify", &NotifyPayload{}, PayloadNotify},
		{"Delete", &DeletePayload{}, PayloadDelete},
		{"Raw keeps its tag", &RawPayload{PayloadType: PayloadKeyExchange}, PayloadKeyExchange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.payload.Type(); got != tc.want {
				t.Errorf("Type() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExchangeTypeString(t *testing.T) {
	testCases := []struct {
		exchange ExchangeType
		want     string
	}{
		{ExchangeIKESAInit, "IKE_SA_INIT"},
		{ExchangeIKEAuth, "IKE_AUTH"},
		{ExchangeCreateChildSA, "CREATE_CHILD_SA"},
		{ExchangeInformational, "INFORMATIONAL"},
		{ExchangeType(200), "UNKNOWN"},
	}

	for _, tc := range testCases {
		if got := tc.exchange.String(); got != tc.want {
			t.Errorf("ExchangeType(%d).String() = %q, want %q", tc.exchange, got, tc.want)
		}
	}
}

func TestProtocolIDString(t *testing.T) {
	testCases := []struct {
		protocol ProtocolID
		want     string
	}{
		{ProtocolIKE, "IKE"},
		{ProtocolAH, "AH"},
		{ProtocolESP, "ESP"},
		{ProtocolNone, "NONE"},
	}

	for _, tc := range testCases {
		if got := tc.protocol.String(); got != tc.want {
			t.Errorf("ProtocolID(%d).String() = %q, want %q", tc.protocol, got, tc.want)
		}
	}
}
