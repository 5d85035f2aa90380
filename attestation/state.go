package attestation

import (
	"github.com/sirupsen/logrus"

	"github.com/JSDL1991/strongswan/pts"
	"github.com/JSDL1991/strongswan/settings"
)

// PlatformInfoKey is the configuration key holding the optional platform
// description forwarded into the PTS session at state construction.
const PlatformInfoKey = "imv-attestation.platform_info"

// fileMeasRequest is one outstanding file or directory measurement
// request, matched by its assigned id.
type fileMeasRequest struct {
	id     uint16
	fileID int
	isDir  bool
}

// compEvidRequest is one outstanding functional component evidence
// request, matched by structural equality of all fields.
type compEvidRequest struct {
	vendorID  uint32
	qualifier Qualifier
	name      ComponentName
}

// State is the attestation handshake state of one connection.
type State struct {
	connectionID uint32

	// TNC connection lifecycle value, stored opaquely.
	connState uint32

	handshakeState HandshakeState
	rec            ActionRecommendation
	eval           EvaluationResult

	// File measurement request ids are never reused for the lifetime of
	// the state, even after check-off, so a stale response can never
	// match a newer request.
	fileMeasRequestCounter uint16
	fileMeasRequests       []fileMeasRequest

	compEvidRequests []compEvidRequest

	pts *pts.Session

	measurementError bool
}

// NewState creates the attestation state for a connection. The owned PTS
// session is created here; a configured platform_info value is forwarded
// into it, absence of the key is not an error.
func NewState(connectionID uint32, cfg *settings.Settings) *State {
	s := &State{
		connectionID:   connectionID,
		handshakeState: HandshakeInit,
		rec:            RecommendationNone,
		eval:           EvaluationDontKnow,
		pts:            pts.NewSession(),
	}

	if cfg != nil {
		if platformInfo := cfg.GetStr(PlatformInfoKey, ""); platformInfo != "" {
			s.pts.SetPlatformInfo(platformInfo)
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":      "NewState",
		"connection_id": connectionID,
	}).Info("Created attestation state")

	return s
}

// ConnectionID returns the TNC connection identifier.
func (s *State) ConnectionID() uint32 {
	return s.connectionID
}

// ChangeState stores the new TNC connection lifecycle value.
func (s *State) ChangeState(connState uint32) {
	s.connState = connState
}

// ConnState returns the stored TNC connection lifecycle value.
func (s *State) ConnState() uint32 {
	return s.connState
}

// HandshakeState returns the current attestation handshake phase.
func (s *State) HandshakeState() HandshakeState {
	return s.handshakeState
}

// SetHandshakeState advances the attestation handshake phase. Transition
// legality is the handshake controller's concern, not checked here.
func (s *State) SetHandshakeState(state HandshakeState) {
	logrus.WithFields(logrus.Fields{
		"function":      "SetHandshakeState",
		"connection_id": s.connectionID,
		"old_state":     s.handshakeState,
		"new_state":     state,
	}).Debug("Attestation handshake state change")

	s.handshakeState = state
}

// PTS returns the platform trust service session owned by this state.
func (s *State) PTS() *pts.Session {
	return s.pts
}

// AddFileMeasRequest registers an outstanding file or directory
// measurement request and returns its newly assigned id. Ids start at 1
// and increase strictly for the lifetime of the state.
func (s *State) AddFileMeasRequest(fileID int, isDir bool) uint16 {
	s.fileMeasRequestCounter++
	s.fileMeasRequests = append(s.fileMeasRequests, fileMeasRequest{
		id:     s.fileMeasRequestCounter,
		fileID: fileID,
		isDir:  isDir,
	})

	logrus.WithFields(logrus.Fields{
		"function":      "AddFileMeasRequest",
		"connection_id": s.connectionID,
		"request_id":    s.fileMeasRequestCounter,
		"file_id":       fileID,
		"is_dir":        isDir,
	}).Debug("Registered file measurement request")

	return s.fileMeasRequestCounter
}

// CheckOffFileMeasRequest removes the outstanding request with the given
// id and returns its target. found is false for an unknown, stale or
// forged id; the caller decides whether that is a protocol violation.
func (s *State) CheckOffFileMeasRequest(id uint16) (fileID int, isDir bool, found bool) {
	for i, req := range s.fileMeasRequests {
		if req.id != id {
			continue
		}
		s.fileMeasRequests = append(s.fileMeasRequests[:i], s.fileMeasRequests[i+1:]...)

		logrus.WithFields(logrus.Fields{
			"function":      "CheckOffFileMeasRequest",
			"connection_id": s.connectionID,
			"request_id":    id,
		}).Debug("Checked off file measurement request")

		return req.fileID, req.isDir, true
	}

	logrus.WithFields(logrus.Fields{
		"function":      "CheckOffFileMeasRequest",
		"connection_id": s.connectionID,
		"request_id":    id,
	}).Warn("No outstanding file measurement request with this id")

	return 0, false, false
}

// FileMeasRequestCount returns the number of outstanding file
// measurement requests.
func (s *State) FileMeasRequestCount() int {
	return len(s.fileMeasRequests)
}

// AddCompEvidRequest registers an outstanding functional component
// evidence request. Identical requests may be outstanding concurrently.
func (s *State) AddCompEvidRequest(vendorID uint32, qualifier Qualifier, name ComponentName) {
	s.compEvidRequests = append(s.compEvidRequests, compEvidRequest{
		vendorID:  vendorID,
		qualifier: qualifier,
		name:      name,
	})

	logrus.WithFields(logrus.Fields{
		"function":      "AddCompEvidRequest",
		"connection_id": s.connectionID,
		"vendor_id":     vendorID,
		"component":     name,
	}).Debug("Registered component evidence request")
}

// CheckOffCompEvidRequest removes the first outstanding request equal in
// all fields, in insertion order, and reports whether one was found.
func (s *State) CheckOffCompEvidRequest(vendorID uint32, qualifier Qualifier, name ComponentName) bool {
	for i, req := range s.compEvidRequests {
		if req.vendorID != vendorID || req.qualifier != qualifier || req.name != name {
			continue
		}
		s.compEvidRequests = append(s.compEvidRequests[:i], s.compEvidRequests[i+1:]...)

		logrus.WithFields(logrus.Fields{
			"function":      "CheckOffCompEvidRequest",
			"connection_id": s.connectionID,
			"vendor_id":     vendorID,
			"component":     name,
		}).Debug("Checked off component evidence request")

		return true
	}

	logrus.WithFields(logrus.Fields{
		"function":      "CheckOffCompEvidRequest",
		"connection_id": s.connectionID,
		"vendor_id":     vendorID,
		"component":     name,
	}).Warn("No matching outstanding component evidence request")

	return false
}

// CompEvidRequestCount returns the number of outstanding component
// evidence requests.
func (s *State) CompEvidRequestCount() int {
	return len(s.compEvidRequests)
}

// MeasurementError reports whether a measurement error was recorded.
func (s *State) MeasurementError() bool {
	return s.measurementError
}

// SetMeasurementError records a measurement error. The flag is monotonic
// and never cleared again for the lifetime of the state.
func (s *State) SetMeasurementError() {
	if !s.measurementError {
		logrus.WithFields(logrus.Fields{
			"function":      "SetMeasurementError",
			"connection_id": s.connectionID,
		}).Warn("Measurement error recorded")
	}
	s.measurementError = true
}

// Recommendation returns the action recommendation and evaluation result
// pair.
func (s *State) Recommendation() (ActionRecommendation, EvaluationResult) {
	return s.rec, s.eval
}

// SetRecommendation stores the recommendation and evaluation pair. The
// pair's semantic consistency is a policy concern, not validated here.
func (s *State) SetRecommendation(rec ActionRecommendation, eval EvaluationResult) {
	logrus.WithFields(logrus.Fields{
		"function":       "SetRecommendation",
		"connection_id":  s.connectionID,
		"recommendation": rec,
		"evaluation":     eval,
	}).Info("Attestation recommendation set")

	s.rec = rec
	s.eval = eval
}
