package docs

import "errors"

// Sentinel errors the HTTP layer maps onto status codes
var (
	ErrNotFound             = errors.New("entry not found")
	ErrExists               = errors.New("entry already exists")
	ErrInvalidSection       = errors.New("unknown section")
	ErrInvalidPath          = errors.New("invalid file path")
	ErrMalformedFrontmatter = errors.New("malformed frontmatter")
)

// Section names the catalog recognizes, mapped to the canonical markdown
// file that carries each entry's frontmatter.
var SectionFiles = map[string]string{
	"workflows": "WORKFLOW.md",
	"skills":    "SKILL.md",
	"mcp":       "MCP.md",
	"subagents": "SUBAGENT.md",
}

// ValidSection reports whether the catalog knows the given section
func ValidSection(section string) bool {
	_, ok := SectionFiles[section]
	return ok
}

// Metadata is the frontmatter block of a catalog entry. Extra keys an
// author adds are preserved on the Extra map across read-modify-write.
type Metadata struct {
	ID           string         `yaml:"id" json:"id"`
	Title        string         `yaml:"title" json:"title"`
	Description  string         `yaml:"description,omitempty" json:"description,omitempty"`
	Tags         []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	CreatedDate  string         `yaml:"created_date,omitempty" json:"created_date,omitempty"`
	LastModified string         `yaml:"last_modified,omitempty" json:"last_modified,omitempty"`
	Extra        map[string]any `yaml:",inline" json:"extra,omitempty"`
}

// Entry is one catalog item: a directory under a section holding the
// canonical markdown file plus any supporting files.
type Entry struct {
	ID       string   `json:"id"`
	Section  string   `json:"section"`
	Metadata Metadata `json:"metadata"`
	Body     string   `json:"body,omitempty"`
}

// File describes one file inside an entry directory
type File struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Size  int64  `json:"size"`
	IsDir bool   `json:"is_dir"`
}

// FileContent is the text of one file, or a placeholder for binary data
type FileContent struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Binary  bool   `json:"binary"`
}

// SyncResult summarizes one section's mirror run
type SyncResult struct {
	Section string   `json:"section"`
	Synced  []string `json:"synced"`
	Errors  []string `json:"errors,omitempty"`
}

// manifest is the index file written next to each mirrored section
type manifest struct {
	Entries []manifestEntry `json:"entries"`
}

type manifestEntry struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Category      string   `json:"category,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	EstimatedTime string   `json:"estimated_time,omitempty"`
}
