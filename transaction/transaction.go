package transaction

import (
	"errors"

	"github.com/JSDL1991/strongswan/message"
)

// ErrNotSupported is returned by Process on procedures that are
// recognized by the dispatcher but whose negotiation logic is not
// implemented. The dispatch decision itself stays observable.
var ErrNotSupported = errors.New("transaction type not supported")

// Transaction is one negotiation procedure instance bound to an IKE SA
// and to the message ID of the request that selected it.
type Transaction interface {
	// MessageID returns the message ID the transaction was created for.
	MessageID() uint32

	// Process handles the request and builds the response message.
	// Implementations must not retain the request beyond the call.
	Process(request *message.Message) (*message.Message, error)
}
