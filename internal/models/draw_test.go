package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistoryGame(t *testing.T) {
	hist := &History{
		Timestamp:    "2025-06-03T14:00:00Z",
		Powerball:    []Draw{{Date: "2025-01-03", Numbers: []int{1, 7}, Jackpot: 71000000}},
		MegaMillions: []Draw{},
	}

	draws, ok := hist.Game("powerball")
	require.True(t, ok)
	require.Len(t, draws, 1)

	draws, ok = hist.Game("megaMillions")
	require.True(t, ok)
	require.Empty(t, draws)

	_, ok = hist.Game("unknownGame")
	require.False(t, ok)

	// The snapshot's timestamp field is not addressable as a game.
	_, ok = hist.Game("timestamp")
	require.False(t, ok)
}

func TestHistoryJSONKeys(t *testing.T) {
	raw, err := json.Marshal(&History{
		Timestamp:    "2025-06-03T14:00:00Z",
		Powerball:    []Draw{},
		MegaMillions: []Draw{},
	})
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 3)
	require.Contains(t, decoded, "timestamp")
	require.Contains(t, decoded, "powerball")
	require.Contains(t, decoded, "megaMillions")
}
