package markdown

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"report-srv/internal/document"
	"report-srv/internal/document/documenttest"
	"report-srv/internal/model"
)

func TestRender(t *testing.T) {
	r := New()
	assert.Equal(t, model.DocumentFormatMarkdown, r.Format())

	doc, err := r.Render(context.Background(), documenttest.Input())
	require.NoError(t, err)
	assert.Equal(t, "weekly-report-2024-W12.md", doc.FileName)
	assert.Equal(t, "text/markdown; charset=utf-8", doc.ContentType)

	content := string(doc.Content)
	assert.Contains(t, content, "# Weekly Report - Week 12, 2024\n")
	assert.Contains(t, content, "**Tasks completed:** 2/3 (66.7%)")
	assert.Contains(t, content, "## Website Redesign")
	assert.Contains(t, content, "Client: Jane Doe / Acme Ltd")
	assert.Contains(t, content, `| Wireframes \| v2 | completed | urgent | 1h 30m |`)
	assert.Contains(t, content, "| Print proofs | completed | low | 0m |")
	assert.Contains(t, content, "*Prepared by CRM Reports.*")
}

func TestRenderIsDeterministic(t *testing.T) {
	first, err := New().Render(context.Background(), documenttest.Input())
	require.NoError(t, err)
	second, err := New().Render(context.Background(), documenttest.Input())
	require.NoError(t, err)
	assert.Equal(t, first.Content, second.Content)
}

func TestRenderNoItems(t *testing.T) {
	in := documenttest.Input()
	in.Items = nil

	doc, err := New().Render(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, string(doc.Content), "_No project activity in this period._")
}

func TestRenderRequiresFileName(t *testing.T) {
	in := documenttest.Input()
	in.FileName = ""
	_, err := New().Render(context.Background(), in)
	assert.ErrorIs(t, err, document.ErrEmptyFileName)
}
