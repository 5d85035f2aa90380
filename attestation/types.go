package attestation

// HandshakeState tracks how far the attestation handshake of one
// connection has progressed. The state object stores the value but does
// not enforce transition order; the handshake controller drives it.
type HandshakeState uint8

const (
	HandshakeInit HandshakeState = iota
	HandshakeDiscovery
	HandshakeTPMInit
	HandshakeMeas
	HandshakeCompEvid
	HandshakeEnd
)

// ActionRecommendation is the verifier's access recommendation for the
// connection.
type ActionRecommendation uint8

const (
	RecommendationNone ActionRecommendation = iota
	RecommendationAllow
	RecommendationIsolate
	RecommendationNoAccess
)

// EvaluationResult is the verifier's compliance verdict.
type EvaluationResult uint8

const (
	EvaluationDontKnow EvaluationResult = iota
	EvaluationCompliant
	EvaluationNonCompliantMinor
	EvaluationNonCompliantMajor
	EvaluationError
)

// ComponentName identifies a functional component whose evidence the
// verifier may request.
type ComponentName uint32

const (
	ComponentIgnore ComponentName = iota
	ComponentTrustedPlatform
	ComponentTGRUB
	ComponentTBoot
	ComponentIMA
)

// Qualifier narrows a component evidence request. Together with the
// vendor ID and component name it forms the complete match key; there is
// no separate request identifier.
type Qualifier struct {
	Kernel       bool
	SubComponent bool
	Type         uint8
}
