package docs

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

const trashDir = ".trash"

// Service manages the markdown content catalog: a vault directory of
// sections, each holding entry directories with a canonical frontmatter
// file, plus a public mirror produced by sync.
type Service struct {
	vaultPath      string
	publicPath     string
	trashOverwrite bool
}

// NewService returns a catalog service over the given vault and mirror roots
func NewService(vaultPath, publicPath string, trashOverwrite bool) *Service {
	return &Service{
		vaultPath:      vaultPath,
		publicPath:     publicPath,
		trashOverwrite: trashOverwrite,
	}
}

// ListSection returns every entry in a section, sorted by id. Entries whose
// canonical file is missing or unparseable are skipped, not fatal.
func (s *Service) ListSection(section string) ([]Entry, error) {
	canonical, ok := SectionFiles[section]
	if !ok {
		return nil, ErrInvalidSection
	}

	sectionPath := filepath.Join(s.vaultPath, section)
	dirs, err := os.ReadDir(sectionPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, err
	}

	entries := make([]Entry, 0, len(dirs))
	for _, d := range dirs {
		if !d.IsDir() || d.Name() == trashDir {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(sectionPath, d.Name(), canonical))
		if err != nil {
			continue
		}
		meta, _, err := ParseFrontmatter(string(raw))
		if err != nil {
			log.Printf("Skipping %s/%s: bad frontmatter: %v", section, d.Name(), err)
			continue
		}
		if meta.ID == "" {
			meta.ID = d.Name()
		}
		entries = append(entries, Entry{ID: d.Name(), Section: section, Metadata: meta})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

// GetEntry returns one entry with its full body
func (s *Service) GetEntry(section, id string) (*Entry, error) {
	canonical, ok := SectionFiles[section]
	if !ok {
		return nil, ErrInvalidSection
	}

	raw, err := os.ReadFile(filepath.Join(s.vaultPath, section, id, canonical))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	meta, body, err := ParseFrontmatter(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w in %s/%s: %v", ErrMalformedFrontmatter, section, id, err)
	}
	if meta.ID == "" {
		meta.ID = id
	}
	return &Entry{ID: id, Section: section, Metadata: meta, Body: body}, nil
}

// ListFiles lists the files inside one entry directory, recursively,
// with paths relative to the entry root
func (s *Service) ListFiles(section, id string) ([]File, error) {
	if !ValidSection(section) {
		return nil, ErrInvalidSection
	}

	entryPath := filepath.Join(s.vaultPath, section, id)
	info, err := os.Stat(entryPath)
	if err != nil || !info.IsDir() {
		return nil, ErrNotFound
	}

	var files []File
	err = filepath.WalkDir(entryPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == entryPath {
			return nil
		}
		rel, err := filepath.Rel(entryPath, path)
		if err != nil {
			return err
		}
		f := File{Name: d.Name(), Path: filepath.ToSlash(rel), IsDir: d.IsDir()}
		if !d.IsDir() {
			if fi, err := d.Info(); err == nil {
				f.Size = fi.Size()
			}
		}
		files = append(files, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// GetFileContent reads one file inside an entry. Paths that escape the
// entry directory are rejected; binary files return a placeholder instead
// of raw bytes.
func (s *Service) GetFileContent(section, id, relPath string) (*FileContent, error) {
	if !ValidSection(section) {
		return nil, ErrInvalidSection
	}

	entryPath := filepath.Join(s.vaultPath, section, id)
	target := filepath.Join(entryPath, filepath.FromSlash(relPath))

	resolved, err := filepath.Abs(target)
	if err != nil {
		return nil, ErrInvalidPath
	}
	base, err := filepath.Abs(entryPath)
	if err != nil {
		return nil, ErrInvalidPath
	}
	if resolved != base && !strings.HasPrefix(resolved, base+string(filepath.Separator)) {
		return nil, ErrInvalidPath
	}

	raw, err := os.ReadFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !utf8.Valid(raw) {
		return &FileContent{
			Path:    relPath,
			Content: fmt.Sprintf("[binary file: %d bytes]", len(raw)),
			Binary:  true,
		}, nil
	}
	return &FileContent{Path: relPath, Content: string(raw)}, nil
}

// CreateEntry creates a new entry directory with its canonical file.
// Fails when the id is already taken.
func (s *Service) CreateEntry(section, id string, meta Metadata, body string) (*Entry, error) {
	canonical, ok := SectionFiles[section]
	if !ok {
		return nil, ErrInvalidSection
	}

	entryPath := filepath.Join(s.vaultPath, section, id)
	if _, err := os.Stat(entryPath); err == nil {
		return nil, ErrExists
	}
	if err := os.MkdirAll(entryPath, 0o755); err != nil {
		return nil, err
	}

	meta = EnrichFrontmatter(meta, id, true)
	doc, err := SerializeFrontmatter(meta, body)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(entryPath, canonical), []byte(doc), 0o644); err != nil {
		return nil, err
	}

	log.Printf("Created %s entry %s", section, id)
	return &Entry{ID: id, Section: section, Metadata: meta, Body: body}, nil
}

// UpdateEntry merges new metadata and body into an existing entry. Zero
// metadata fields leave the stored values untouched; a nil body keeps the
// current body.
func (s *Service) UpdateEntry(section, id string, meta Metadata, body *string) (*Entry, error) {
	canonical := SectionFiles[section]
	existing, err := s.GetEntry(section, id)
	if err != nil {
		return nil, err
	}

	merged := existing.Metadata
	if meta.Title != "" {
		merged.Title = meta.Title
	}
	if meta.Description != "" {
		merged.Description = meta.Description
	}
	if meta.Tags != nil {
		merged.Tags = meta.Tags
	}
	for k, v := range meta.Extra {
		if merged.Extra == nil {
			merged.Extra = map[string]any{}
		}
		merged.Extra[k] = v
	}
	merged = EnrichFrontmatter(merged, id, false)

	newBody := existing.Body
	if body != nil {
		newBody = *body
	}

	doc, err := SerializeFrontmatter(merged, newBody)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(s.vaultPath, section, id, canonical)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return nil, err
	}

	log.Printf("Updated %s entry %s", section, id)
	return &Entry{ID: id, Section: section, Metadata: merged, Body: newBody}, nil
}

// DeleteEntry moves an entry directory into the vault trash rather than
// removing it. A previous trashed copy under the same id is replaced or
// rejected depending on the overwrite policy.
func (s *Service) DeleteEntry(section, id string) error {
	if !ValidSection(section) {
		return ErrInvalidSection
	}

	entryPath := filepath.Join(s.vaultPath, section, id)
	if _, err := os.Stat(entryPath); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}

	trashPath := filepath.Join(s.vaultPath, trashDir, section)
	if err := os.MkdirAll(trashPath, 0o755); err != nil {
		return err
	}

	dest := filepath.Join(trashPath, id)
	if _, err := os.Stat(dest); err == nil {
		if !s.trashOverwrite {
			return fmt.Errorf("trash already holds %s/%s", section, id)
		}
		if err := os.RemoveAll(dest); err != nil {
			return err
		}
	}

	if err := os.Rename(entryPath, dest); err != nil {
		return err
	}
	log.Printf("Moved %s entry %s to trash", section, id)
	return nil
}

// SyncSection mirrors one section into the public content directory and
// writes a manifest.json index next to the mirrored entries. Entries are
// replaced one at a time through a staging directory, so a failed copy
// keeps that entry's previous mirror; per-entry failures are collected,
// never fatal to the run. Mirror directories whose vault entry is gone
// are pruned.
func (s *Service) SyncSection(section string) (*SyncResult, error) {
	if !ValidSection(section) {
		return nil, ErrInvalidSection
	}

	entries, err := s.ListSection(section)
	if err != nil {
		return nil, err
	}

	destRoot := filepath.Join(s.publicPath, section)
	if err := os.MkdirAll(destRoot, 0o755); err != nil {
		return nil, err
	}

	result := &SyncResult{Section: section}
	idx := manifest{Entries: []manifestEntry{}}
	keep := make(map[string]bool, len(entries))
	for _, e := range entries {
		keep[e.ID] = true

		src := filepath.Join(s.vaultPath, section, e.ID)
		dst := filepath.Join(destRoot, e.ID)
		if err := replaceTree(src, dst); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", e.ID, err))
			continue
		}
		result.Synced = append(result.Synced, e.ID)
		idx.Entries = append(idx.Entries, manifestEntryFor(section, e))
	}

	stale, err := os.ReadDir(destRoot)
	if err != nil {
		return nil, err
	}
	for _, d := range stale {
		if !d.IsDir() || keep[d.Name()] {
			continue
		}
		if err := os.RemoveAll(filepath.Join(destRoot, d.Name())); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", d.Name(), err))
		}
	}

	raw, err := json.MarshalIndent(&idx, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(destRoot, "manifest.json"), raw, 0o644); err != nil {
		return nil, err
	}

	log.Printf("Synced %d %s entries (%d errors)", len(result.Synced), section, len(result.Errors))
	return result, nil
}

// SyncAll mirrors every known section
func (s *Service) SyncAll() ([]SyncResult, error) {
	sections := make([]string, 0, len(SectionFiles))
	for name := range SectionFiles {
		sections = append(sections, name)
	}
	sort.Strings(sections)

	results := make([]SyncResult, 0, len(sections))
	for _, section := range sections {
		result, err := s.SyncSection(section)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, nil
}

// manifestEntryFor builds one manifest record, lifting category, difficulty,
// and estimated time out of the entry's extra frontmatter. Workflows without
// an explicit difficulty default to intermediate.
func manifestEntryFor(section string, e Entry) manifestEntry {
	difficulty := extraString(e.Metadata, "difficulty")
	if difficulty == "" && section == "workflows" {
		difficulty = "intermediate"
	}
	return manifestEntry{
		ID:            e.ID,
		Name:          e.Metadata.Title,
		Description:   e.Metadata.Description,
		Category:      extraString(e.Metadata, "category"),
		Tags:          e.Metadata.Tags,
		Difficulty:    difficulty,
		EstimatedTime: extraString(e.Metadata, "estimated_time"),
	}
}

func extraString(meta Metadata, key string) string {
	if v, ok := meta.Extra[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// replaceTree copies src into a staging directory and swaps it in, leaving
// any previous dst untouched when the copy fails
func replaceTree(src, dst string) error {
	staging := dst + ".tmp"
	if err := os.RemoveAll(staging); err != nil {
		return err
	}
	if err := copyTree(src, staging); err != nil {
		os.RemoveAll(staging)
		return err
	}
	if err := os.RemoveAll(dst); err != nil {
		os.RemoveAll(staging)
		return err
	}
	return os.Rename(staging, dst)
}

func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, raw, 0o644)
	})
}
