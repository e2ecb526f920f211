package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestProfile(t *testing.T) *Context {
	t.Helper()
	ctx, err := Load(filepath.Join("testdata", "profile.json"))
	require.NoError(t, err)
	return ctx
}

func TestLoad(t *testing.T) {
	ctx := loadTestProfile(t)

	assert.Equal(t, "Charles Siboto", ctx.Identity.Name)
	assert.Equal(t, "1 March 2026", ctx.Identity.AvailableFrom)
	assert.Len(t, ctx.Experience, 1)
	assert.Len(t, ctx.Skills["localisation"], 3)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.json"))
	require.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anon.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"profile": {"email": "x@y.z"}}`), 0o644))

	_, err := Load(path)
	require.ErrorContains(t, err, "missing a name")
}

func TestContextBlock(t *testing.T) {
	block := loadTestProfile(t).ContextBlock()

	assert.Contains(t, block, "Charles Siboto")
	assert.Contains(t, block, "EXPERIENCE")
	assert.Contains(t, block, "Senior Editor, Penguin Random House SA")
	assert.Contains(t, block, "EDUCATION")
	assert.Contains(t, block, "SKILLS")
	assert.Contains(t, block, "PUBLICATIONS")
	assert.Contains(t, block, "The Legend of Mamlambo")
	assert.Contains(t, block, "GAMING BACKGROUND")
	assert.Contains(t, block, "Available from: 1 March 2026")
}

func TestContextBlock_Deterministic(t *testing.T) {
	ctx := loadTestProfile(t)
	assert.Equal(t, ctx.ContextBlock(), ctx.ContextBlock())
}

func TestSummary(t *testing.T) {
	summary := loadTestProfile(t).Summary()

	assert.Contains(t, summary, "Charles Siboto")
	assert.Contains(t, summary, "LQA")
	assert.Contains(t, summary, "Available from 1 March 2026")
}

func TestClosingLine(t *testing.T) {
	assert.Equal(t,
		"Available from: 1 March 2026 | Salary expectation: €50,000 - €58,000",
		loadTestProfile(t).ClosingLine())

	empty := &Context{}
	assert.Equal(t, "", empty.ClosingLine())
}
