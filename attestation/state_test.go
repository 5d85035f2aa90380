package attestation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JSDL1991/strongswan/settings"
)

func TestNewState_Defaults(t *testing.T) {
	s := NewState(7, nil)

	assert.Equal(t, uint32(7), s.ConnectionID())
	assert.Equal(t, HandshakeInit, s.HandshakeState())

	rec, eval := s.Recommendation()
	assert.Equal(t, RecommendationNone, rec)
	assert.Equal(t, EvaluationDontKnow, eval)

	assert.Equal(t, 0, s.FileMeasRequestCount())
	assert.Equal(t, 0, s.CompEvidRequestCount())
	assert.False(t, s.MeasurementError())

	require.NotNil(t, s.PTS())
	assert.Empty(t, s.PTS().PlatformInfo())
}

func TestNewState_PlatformInfoForwarded(t *testing.T) {
	t.Setenv("IMV_ATTESTATION_PLATFORM_INFO", "Ubuntu 24.04 x86_64")

	s := NewState(1, settings.Empty())
	assert.Equal(t, "Ubuntu 24.04 x86_64", s.PTS().PlatformInfo())
}

func TestFileMeasRequest_IDsStrictlyIncreasing(t *testing.T) {
	s := NewState(1, nil)

	id1 := s.AddFileMeasRequest(10, false)
	id2 := s.AddFileMeasRequest(11, true)
	assert.Equal(t, uint16(1), id1)
	assert.Equal(t, uint16(2), id2)

	// Checking off must not free the id for reuse.
	_, _, found := s.CheckOffFileMeasRequest(id1)
	require.True(t, found)

	id3 := s.AddFileMeasRequest(12, false)
	assert.Equal(t, uint16(3), id3)
	assert.Equal(t, 2, s.FileMeasRequestCount())
}

func TestCheckOffFileMeasRequest(t *testing.T) {
	s := NewState(1, nil)

	id := s.AddFileMeasRequest(42, true)

	// Unknown id leaves the table unchanged.
	_, _, found := s.CheckOffFileMeasRequest(id + 100)
	assert.False(t, found)
	assert.Equal(t, 1, s.FileMeasRequestCount())

	fileID, isDir, found := s.CheckOffFileMeasRequest(id)
	require.True(t, found)
	assert.Equal(t, 42, fileID)
	assert.True(t, isDir)
	assert.Equal(t, 0, s.FileMeasRequestCount())

	// A second check-off of the same id is a stale duplicate.
	_, _, found = s.CheckOffFileMeasRequest(id)
	assert.False(t, found)
}

func TestCheckOffFileMeasRequest_OutOfOrder(t *testing.T) {
	s := NewState(1, nil)

	first := s.AddFileMeasRequest(1, false)
	second := s.AddFileMeasRequest(2, false)
	third := s.AddFileMeasRequest(3, true)

	fileID, _, found := s.CheckOffFileMeasRequest(second)
	require.True(t, found)
	assert.Equal(t, 2, fileID)

	fileID, isDir, found := s.CheckOffFileMeasRequest(third)
	require.True(t, found)
	assert.Equal(t, 3, fileID)
	assert.True(t, isDir)

	fileID, _, found = s.CheckOffFileMeasRequest(first)
	require.True(t, found)
	assert.Equal(t, 1, fileID)

	assert.Equal(t, 0, s.FileMeasRequestCount())
}

func TestCompEvidRequest_DuplicatesAllowed(t *testing.T) {
	s := NewState(1, nil)
	q := Qualifier{Kernel: true, Type: 2}

	s.AddCompEvidRequest(0x00902A, q, ComponentIMA)
	s.AddCompEvidRequest(0x00902A, q, ComponentIMA)
	assert.Equal(t, 2, s.CompEvidRequestCount())

	// One check-off removes exactly one of the two identical entries.
	assert.True(t, s.CheckOffCompEvidRequest(0x00902A, q, ComponentIMA))
	assert.Equal(t, 1, s.CompEvidRequestCount())

	assert.True(t, s.CheckOffCompEvidRequest(0x00902A, q, ComponentIMA))
	assert.Equal(t, 0, s.CompEvidRequestCount())

	assert.False(t, s.CheckOffCompEvidRequest(0x00902A, q, ComponentIMA))
}

func TestCompEvidRequest_ExactMatchRequired(t *testing.T) {
	s := NewState(1, nil)
	q := Qualifier{Kernel: true, SubComponent: false, Type: 1}

	s.AddCompEvidRequest(0x00902A, q, ComponentTBoot)

	testCases := []struct {
		name      string
		vendorID  uint32
		qualifier Qualifier
		compName  ComponentName
	}{
		{"Different vendor", 0x005597, q, ComponentTBoot},
		{"Different qualifier kernel flag", 0x00902A, Qualifier{Kernel: false, Type: 1}, ComponentTBoot},
		{"Different qualifier sub-component flag", 0x00902A, Qualifier{Kernel: true, SubComponent: true, Type: 1}, ComponentTBoot},
		{"Different qualifier type", 0x00902A, Qualifier{Kernel: true, Type: 2}, ComponentTBoot},
		{"Different component name", 0x00902A, q, ComponentTGRUB},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, s.CheckOffCompEvidRequest(tc.vendorID, tc.qualifier, tc.compName))
			assert.Equal(t, 1, s.CompEvidRequestCount())
		})
	}

	assert.True(t, s.CheckOffCompEvidRequest(0x00902A, q, ComponentTBoot))
}

func TestMeasurementError_Monotonic(t *testing.T) {
	s := NewState(1, nil)

	assert.False(t, s.MeasurementError())
	s.SetMeasurementError()
	assert.True(t, s.MeasurementError())

	// Idempotent and irreversible.
	s.SetMeasurementError()
	assert.True(t, s.MeasurementError())
}

func TestRecommendation(t *testing.T) {
	s := NewState(1, nil)

	s.SetRecommendation(RecommendationIsolate, EvaluationNonCompliantMajor)
	rec, eval := s.Recommendation()
	assert.Equal(t, RecommendationIsolate, rec)
	assert.Equal(t, EvaluationNonCompliantMajor, eval)
}

func TestHandshakeStateStorage(t *testing.T) {
	s := NewState(1, nil)

	s.SetHandshakeState(HandshakeMeas)
	assert.Equal(t, HandshakeMeas, s.HandshakeState())

	s.ChangeState(3)
	assert.Equal(t, uint32(3), s.ConnState())
}
