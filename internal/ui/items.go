package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"kernelchunk/internal/session"
)

type chunkItem struct {
	index  int
	label  string
	detail string
	copied bool
}

func (i chunkItem) Title() string {
	if i.copied {
		return copiedStyle.Render(fmt.Sprintf("✓ %d. %s", i.index+1, i.label))
	}
	return fmt.Sprintf("%d. %s", i.index+1, i.label)
}
func (i chunkItem) Description() string { return i.detail }
func (i chunkItem) FilterValue() string { return i.label }

// chunkItems derives the display list from the sequence. Labels come from
// the chunk itself, consumed marks purely from the session state.
func chunkItems(seq *session.Sequence) []list.Item {
	items := make([]list.Item, 0, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		chunk := seq.Chunk(i)
		items = append(items, chunkItem{
			index:  i,
			label:  chunkLabel(chunk),
			detail: fmt.Sprintf("id: %v", chunkID(chunk)),
			copied: seq.State(i) == session.Copied,
		})
	}
	return items
}

func chunkLabel(chunk map[string]any) string {
	if t, ok := chunk["title"].(string); ok && t != "" {
		return t
	}
	if tag, ok := chunk["section"].(string); ok {
		return tag
	}
	return "kernel"
}

func chunkID(chunk map[string]any) any {
	if id, ok := chunk["id"]; ok {
		return id
	}
	return "unknown"
}
