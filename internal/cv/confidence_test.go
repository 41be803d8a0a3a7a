package cv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfidenceString(t *testing.T) {
	require.Equal(t, "high", ConfidenceHigh.String())
	require.Equal(t, "medium", ConfidenceMedium.String())
	require.Equal(t, "low", ConfidenceLow.String())
	require.Equal(t, "unknown", ConfidenceUnknown.String())
}

func TestParseConfidence(t *testing.T) {
	for _, c := range []Confidence{ConfidenceLow, ConfidenceMedium, ConfidenceHigh} {
		parsed, err := ParseConfidence(c.String())
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}

	parsed, err := ParseConfidence(" High ")
	require.NoError(t, err)
	require.Equal(t, ConfidenceHigh, parsed)

	_, err = ParseConfidence("bogus")
	require.Error(t, err)
}

func TestConfidenceJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(ConfidenceMedium)
	require.NoError(t, err)
	require.Equal(t, `"medium"`, string(data))

	var c Confidence
	require.NoError(t, json.Unmarshal([]byte(`"low"`), &c))
	require.Equal(t, ConfidenceLow, c)

	require.Error(t, json.Unmarshal([]byte(`"nope"`), &c))
	require.Error(t, json.Unmarshal([]byte(`42`), &c))
}

func TestWeakerOf(t *testing.T) {
	require.Equal(t, ConfidenceLow, WeakerOf(ConfidenceLow, ConfidenceHigh))
	require.Equal(t, ConfidenceLow, WeakerOf(ConfidenceHigh, ConfidenceLow))
	require.Equal(t, ConfidenceMedium, WeakerOf(ConfidenceMedium, ConfidenceMedium))
	require.Equal(t, ConfidenceHigh, WeakerOf(ConfidenceUnknown, ConfidenceHigh))
	require.Equal(t, ConfidenceHigh, WeakerOf(ConfidenceHigh, ConfidenceUnknown))
}
