package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontmatterRoundTrip(t *testing.T) {
	meta := Metadata{
		ID:          "deploy-checklist",
		Title:       "Deploy Checklist",
		Description: "Steps before shipping",
		Tags:        []string{"ops", "release"},
	}

	doc, err := SerializeFrontmatter(meta, "# Checklist\n\n- tests green\n")
	require.NoError(t, err)

	parsed, body, err := ParseFrontmatter(doc)
	require.NoError(t, err)
	assert.Equal(t, meta.ID, parsed.ID)
	assert.Equal(t, meta.Title, parsed.Title)
	assert.Equal(t, meta.Tags, parsed.Tags)
	assert.Contains(t, body, "tests green")
}

func TestParseFrontmatterStripsByteOrderMark(t *testing.T) {
	raw := "\uFEFF---\nid: bom-doc\ntitle: BOM Doc\n---\n\nbody"
	meta, body, err := ParseFrontmatter(raw)
	require.NoError(t, err)
	assert.Equal(t, "bom-doc", meta.ID)
	assert.Equal(t, "BOM Doc", meta.Title)
	assert.Contains(t, body, "body")
}

func TestParseFrontmatterWithoutBlock(t *testing.T) {
	meta, body, err := ParseFrontmatter("# Just a heading\n\nNo frontmatter here.")
	require.NoError(t, err)
	assert.Empty(t, meta.ID)
	assert.Contains(t, body, "Just a heading")
}

func TestParseFrontmatterUnterminatedBlock(t *testing.T) {
	raw := "---\nid: broken\ntitle: Broken"
	meta, body, err := ParseFrontmatter(raw)
	require.NoError(t, err)
	assert.Empty(t, meta.ID)
	assert.Equal(t, raw, body)
}

func TestParseFrontmatterPreservesExtraKeys(t *testing.T) {
	raw := "---\nid: custom\ntitle: Custom\nauthor: someone\npriority: 3\n---\n\nbody"
	meta, _, err := ParseFrontmatter(raw)
	require.NoError(t, err)
	assert.Equal(t, "someone", meta.Extra["author"])
	assert.Equal(t, 3, meta.Extra["priority"])

	doc, err := SerializeFrontmatter(meta, "body")
	require.NoError(t, err)
	assert.Contains(t, doc, "author: someone")
}

func TestEnrichFrontmatter(t *testing.T) {
	meta := EnrichFrontmatter(Metadata{ID: "wrong-id"}, "right-id", true)
	assert.Equal(t, "right-id", meta.ID)
	assert.Equal(t, "right id", meta.Title)
	assert.NotEmpty(t, meta.CreatedDate)
	assert.Equal(t, meta.CreatedDate, meta.LastModified)

	meta.CreatedDate = "2024-01-01"
	again := EnrichFrontmatter(meta, "right-id", false)
	assert.Equal(t, "2024-01-01", again.CreatedDate)
}
