// Package transaction implements the IKEv2 negotiation procedures and the
// dispatch factory that selects one for an inbound request.
//
// A transaction is one request/response pair driving the IKE SA forward:
// the initial exchange, authentication, deletion, liveness checking or a
// rekeying variant. The factory inspects the exchange type of a decoded
// request and, for the ambiguous exchange types, the payload content, and
// constructs the matching procedure.
//
// Example:
//
//	t := transaction.New(ikeSA, request)
//	if t == nil {
//	    // not a request, or an exchange handled elsewhere
//	    return
//	}
//	response, err := t.Process(request)
package transaction
