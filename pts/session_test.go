package pts

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSession(t *testing.T) {
	s1 := NewSession()
	s2 := NewSession()

	assert.NotEqual(t, s1.ID(), s2.ID(), "sessions must have distinct identifiers")
	assert.Equal(t, MeasAlgoSHA256, s1.MeasAlgo())
	assert.Empty(t, s1.PlatformInfo())
}

func TestSession_PlatformInfo(t *testing.T) {
	s := NewSession()
	s.SetPlatformInfo("Debian 12 x86_64")
	assert.Equal(t, "Debian 12 x86_64", s.PlatformInfo())
}

func TestSession_Measure(t *testing.T) {
	s := NewSession()
	data := []byte("measurement input")

	want := sha256.Sum256(data)
	assert.Equal(t, want[:], s.Measure(data))

	testCases := []struct {
		algo MeasAlgo
		size int
	}{
		{MeasAlgoSHA1, 20},
		{MeasAlgoSHA256, 32},
		{MeasAlgoSHA384, 48},
	}
	for _, tc := range testCases {
		t.Run(tc.algo.String(), func(t *testing.T) {
			s.SetMeasAlgo(tc.algo)
			assert.Len(t, s.Measure(data), tc.size)
		})
	}
}
