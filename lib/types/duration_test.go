package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDurationUnmarshalYAML(t *testing.T) {
	testCases := []struct {
		str string
		val Duration
	}{
		{"0s", 0},
		{"30s", Duration(30 * time.Second)},
		{"1m", Duration(time.Minute)},
		{"1h30m", Duration(time.Hour + 30*time.Minute)},
	}
	for _, tC := range testCases {
		t.Run(tC.str, func(t *testing.T) {
			assert := require.New(t)
			var d Duration
			assert.NoError(yaml.Unmarshal([]byte(tC.str), &d))
			assert.Equal(tC.val, d)
		})
	}

	var d Duration
	require.Error(t, yaml.Unmarshal([]byte("five minutes"), &d))
}
