package docs

import (
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// ParseFrontmatter splits a markdown document into its YAML frontmatter and
// body. A document without a frontmatter block parses as empty metadata with
// the whole input as body.
func ParseFrontmatter(raw string) (Metadata, string, error) {
	var meta Metadata

	trimmed := strings.TrimLeft(raw, "\uFEFF\n\r")
	if !strings.HasPrefix(trimmed, frontmatterDelimiter+"\n") &&
		trimmed != frontmatterDelimiter {
		return meta, raw, nil
	}

	rest := strings.TrimPrefix(trimmed, frontmatterDelimiter+"\n")
	idx := strings.Index(rest, "\n"+frontmatterDelimiter)
	if idx < 0 {
		return meta, raw, nil
	}

	block := rest[:idx]
	body := rest[idx+len("\n"+frontmatterDelimiter):]
	body = strings.TrimPrefix(body, "\n")

	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return Metadata{}, "", err
	}
	return meta, body, nil
}

// SerializeFrontmatter renders metadata and body back into one markdown
// document with a leading frontmatter block
func SerializeFrontmatter(meta Metadata, body string) (string, error) {
	block, err := yaml.Marshal(&meta)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(frontmatterDelimiter + "\n")
	b.Write(block)
	b.WriteString(frontmatterDelimiter + "\n")
	if body != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimLeft(body, "\n"))
	}
	return b.String(), nil
}

// EnrichFrontmatter stamps identity and timestamps onto metadata: the entry
// id always wins over whatever the document claimed, created_date is set
// once on first write, and last_modified moves on every write.
func EnrichFrontmatter(meta Metadata, id string, isNew bool) Metadata {
	now := time.Now().Format("2006-01-02")

	meta.ID = id
	if meta.Title == "" {
		meta.Title = strings.ReplaceAll(id, "-", " ")
	}
	if isNew || meta.CreatedDate == "" {
		meta.CreatedDate = now
	}
	meta.LastModified = now
	return meta
}
