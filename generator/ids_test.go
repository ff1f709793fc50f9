package generator

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCourseID(t *testing.T) {
	id := GenerateCourseID()
	assert.True(t, strings.HasPrefix(id, "bedrock_course_"))
	assert.Len(t, id, len("bedrock_course_")+12)

	assert.NotEqual(t, id, GenerateCourseID())
}

var slugShape = regexp.MustCompile(`^[a-z0-9-]+-\d{6}$`)

func TestGenerateSlugShape(t *testing.T) {
	slug := GenerateSlug("Complete Go Programming: From Zero to Hero!")
	assert.Regexp(t, slugShape, slug)
	assert.True(t, strings.HasPrefix(slug, "complete-go-programming-from-zero-to-her"))
	assert.LessOrEqual(t, len(slug), 50)
}

func TestGenerateSlugCollidingTitles(t *testing.T) {
	// Equal titles normalize to the same base, the suffix must still differ
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		slug := GenerateSlug("Complete Python Course")
		assert.False(t, seen[slug], "slug %q repeated", slug)
		seen[slug] = true
	}
}

func TestGenerateSlugStripsSymbols(t *testing.T) {
	slug := GenerateSlug("C++ & Rust (2024)")
	assert.True(t, strings.HasPrefix(slug, "c-rust-2024-"))
}
