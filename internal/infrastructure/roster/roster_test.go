package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diplomacy-agent/internal/domain/entity"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_FullRoster(t *testing.T) {
	path := writeRoster(t, `
prompts_dir: ./prompts
reply_log_dir: ./replies
default_model: "gpt-4o"
default_temperature: 0.7
powers:
  FRANCE:
    model: "openrouter:anthropic/claude-3.5-sonnet"
    temperature: 0.4
    max_tokens: 4096
  england:
    model: "gemini-2.0-flash"
  GERMANY: {}
`)

	r, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./prompts", r.PromptsDir)
	assert.Equal(t, "./replies", r.ReplyLogDir)

	france := r.Powers[entity.France]
	assert.Equal(t, "openrouter:anthropic/claude-3.5-sonnet", france.Model)
	assert.Equal(t, float32(0.4), france.Temperature)
	assert.Equal(t, 4096, france.MaxTokens)

	england := r.Powers[entity.England]
	assert.Equal(t, "gemini-2.0-flash", england.Model)
	assert.Equal(t, float32(0.7), england.Temperature)

	germany := r.Powers[entity.Germany]
	assert.Equal(t, "gpt-4o", germany.Model)
}

func TestLoad_PowerListInBoardOrder(t *testing.T) {
	path := writeRoster(t, `
default_model: "gpt-4o"
powers:
  TURKEY: {}
  AUSTRIA: {}
  FRANCE: {}
`)

	r, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []entity.Power{entity.Austria, entity.France, entity.Turkey}, r.PowerList())
}

func TestLoad_UnknownPowerFails(t *testing.T) {
	path := writeRoster(t, `
default_model: "gpt-4o"
powers:
  ATLANTIS: {}
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ATLANTIS")
}

func TestLoad_MissingModelFails(t *testing.T) {
	path := writeRoster(t, `
powers:
  FRANCE: {}
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_EmptyRosterFails(t *testing.T) {
	path := writeRoster(t, "prompts_dir: ./prompts\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_DefaultReplyLogDir(t *testing.T) {
	path := writeRoster(t, `
default_model: "gpt-4o"
powers:
  ITALY: {}
`)

	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "log", r.ReplyLogDir)
}
