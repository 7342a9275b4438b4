package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kernelchunk/internal/session"
)

func testModel() Model {
	return New(zap.NewNop(), DefaultSettings())
}

func press(t *testing.T, m Model, key tea.KeyType) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: key})
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestChunkActionBuildsSequence(t *testing.T) {
	m := testModel()
	m.input.SetValue(`{"kernels":[{"id":"a"},{"id":"b"}]}`)

	m = press(t, m, tea.KeyCtrlK)

	require.NotNil(t, m.seq)
	assert.Equal(t, 2, m.seq.Len())
	assert.Len(t, m.chunks.Items(), 2)
	assert.Contains(t, m.status, "2 chunks ready")
}

func TestCopyNextWritesClipboardAndMarksChunk(t *testing.T) {
	oldClipboard := clipboardWriteAll
	var copied []string
	clipboardWriteAll = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	defer func() { clipboardWriteAll = oldClipboard }()

	m := testModel()
	m.input.SetValue(`{"kernels":[{"id":"a"},{"id":"b"}]}`)
	m = press(t, m, tea.KeyCtrlK)

	m = press(t, m, tea.KeyCtrlY)
	require.Len(t, copied, 1)
	assert.Contains(t, copied[0], `"id": "a"`)
	assert.Equal(t, session.Copied, m.seq.State(0))
	assert.Equal(t, session.Pending, m.seq.State(1))
	assert.Contains(t, m.status, "Copied chunk 1/2")

	m = press(t, m, tea.KeyCtrlY)
	require.Len(t, copied, 2)
	assert.Contains(t, copied[1], `"id": "b"`)

	// Exhausted: the next press copies nothing and resets the counter.
	m = press(t, m, tea.KeyCtrlY)
	assert.Len(t, copied, 2)
	assert.Equal(t, 0, m.seq.Cursor())
	assert.Equal(t, session.Pending, m.seq.State(0))
	assert.Contains(t, m.status, "counter reset")

	// And the cycle starts over from the first chunk.
	m = press(t, m, tea.KeyCtrlY)
	require.Len(t, copied, 3)
	assert.Contains(t, copied[2], `"id": "a"`)
}

func TestCopyWithoutChunksIsHarmless(t *testing.T) {
	oldClipboard := clipboardWriteAll
	clipboardWriteAll = func(string) error {
		t.Fatal("clipboard must not be touched")
		return nil
	}
	defer func() { clipboardWriteAll = oldClipboard }()

	m := testModel()
	m = press(t, m, tea.KeyCtrlY)
	assert.Contains(t, m.status, "Nothing to copy")
}

func TestReparseReplacesSequence(t *testing.T) {
	oldClipboard := clipboardWriteAll
	clipboardWriteAll = func(string) error { return nil }
	defer func() { clipboardWriteAll = oldClipboard }()

	m := testModel()
	m.input.SetValue(`{"kernels":[{"id":"a"},{"id":"b"}]}`)
	m = press(t, m, tea.KeyCtrlK)
	m = press(t, m, tea.KeyCtrlY)

	m.input.SetValue(`[{"id":"x"},{"id":"y"},{"id":"z"}]`)
	m = press(t, m, tea.KeyCtrlK)

	assert.Equal(t, 3, m.seq.Len())
	assert.Equal(t, 0, m.seq.Cursor())
	assert.Equal(t, session.Pending, m.seq.State(0))
	assert.Equal(t, "x", m.seq.Chunk(0)["id"])
}

func TestParseErrorLeavesSequenceUntouched(t *testing.T) {
	m := testModel()
	m.input.SetValue(`{"kernels":[{"id":"a"}]}`)
	m = press(t, m, tea.KeyCtrlK)
	require.NotNil(t, m.seq)

	m.input.SetValue(`{bad json`)
	m = press(t, m, tea.KeyCtrlK)

	assert.Contains(t, m.status, "Parse error")
	require.NotNil(t, m.seq)
	assert.Equal(t, 1, m.seq.Len())
}

func TestStatusDistinguishesErrorKinds(t *testing.T) {
	m := testModel()

	m.input.SetValue("")
	m = press(t, m, tea.KeyCtrlK)
	assert.Contains(t, m.status, "Paste or load")

	m.input.SetValue(`{"id":"k1","title":"Solo"}`)
	m = press(t, m, tea.KeyCtrlK)
	assert.Contains(t, m.status, "No kernels found")
}

func TestClearDiscardsChunks(t *testing.T) {
	m := testModel()
	m.input.SetValue(`[{"id":"a"},{"id":"b"}]`)
	m = press(t, m, tea.KeyCtrlK)

	m = press(t, m, tea.KeyCtrlR)
	assert.Nil(t, m.seq)
	assert.Empty(t, m.chunks.Items())
}

func TestCopiedMarkDerivedFromSessionState(t *testing.T) {
	seq := session.New([]map[string]any{
		{"id": "a", "section": "header", "title": "Header"},
		{"id": "a", "section": "heat_signature", "title": "Heat Signature"},
	})
	seq.Advance()

	items := chunkItems(seq)
	require.Len(t, items, 2)
	first := items[0].(chunkItem)
	second := items[1].(chunkItem)
	assert.True(t, first.copied)
	assert.False(t, second.copied)
	assert.True(t, strings.Contains(first.Title(), "✓"))
	assert.False(t, strings.Contains(second.Title(), "✓"))
	assert.Equal(t, "Heat Signature", second.label)
}
