package boardfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diplomacy-agent/internal/domain/entity"
)

const sampleBoard = `{
  "phase": "S1901M",
  "phase_type": "movement",
  "units": {
    "FRANCE": ["A PAR", "A MAR", "F BRE"],
    "ENGLAND": ["F LON", "F EDI", "A LVP"]
  },
  "centers": {
    "FRANCE": ["PAR", "MAR", "BRE"],
    "ENGLAND": ["LON", "EDI", "LVP"]
  },
  "possible_orders": {
    "FRANCE": {
      "PAR": ["A PAR H", "A PAR - BUR", "A PAR - PIC"]
    }
  },
  "press": [
    {"sender": "ENGLAND", "recipient": "FRANCE", "phase": "S1901M", "content": "Shall we split the Channel?"}
  ]
}`

func writeBoard(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Snapshot(t *testing.T) {
	s, err := Load(writeBoard(t, sampleBoard))
	require.NoError(t, err)

	assert.Equal(t, "S1901M", s.Phase)
	assert.Equal(t, entity.PhaseMovement, s.PhaseType)
	assert.Equal(t, []string{"A PAR", "A MAR", "F BRE"}, s.Units[entity.France])
	assert.Equal(t, []string{"A PAR H", "A PAR - BUR", "A PAR - PIC"}, s.Possible[entity.France]["PAR"])

	require.Len(t, s.Press, 1)
	assert.Equal(t, entity.England, s.Press[0].Sender)

	board := s.Board()
	assert.Equal(t, "S1901M", board.PhaseName)
	assert.Equal(t, s.Units, board.Units)
}

func TestLoad_MissingPhaseFails(t *testing.T) {
	_, err := Load(writeBoard(t, `{"phase_type": "movement"}`))
	require.Error(t, err)
}

func TestLoad_UnknownPhaseTypeFails(t *testing.T) {
	_, err := Load(writeBoard(t, `{"phase": "W1901A", "phase_type": "adjustment"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "adjustment")
}

func TestLoad_BadJSONFails(t *testing.T) {
	_, err := Load(writeBoard(t, "{not json"))
	require.Error(t, err)
}
