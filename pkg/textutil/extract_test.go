package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindURI(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
		found    bool
	}{
		{"plain http", "Gradle (8.7) http://www.gradle.org/", "http://www.gradle.org/", true},
		{"https with path", "see https://sdkman.io/sdks#java for details", "https://sdkman.io/sdks#java", true},
		{"first match wins", "http://a.example http://b.example", "http://a.example", true},
		{"no scheme", "www.gradle.org", "", false},
		{"empty line", "", "", false},
		{"scheme mid-line", "Java (21.0.2) https://projects.eclipse.org/projects/adoptium.temurin", "https://projects.eclipse.org/projects/adoptium.temurin", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindURI(tt.line)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFindLastParenthesized(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
		found    bool
	}{
		{"single token", "Gradle (8.7) http://www.gradle.org/", "(8.7)", true},
		{"last of several", "Ant (1.9) tooling (1.10.14) here", "(1.10.14)", true},
		{"hyphenated version", "Java (21.0.2-tem) https://adoptium.net", "(21.0.2-tem)", true},
		{"bang and plus", "A (1.0.0+build!) x", "(1.0.0+build!)", true},
		{"empty parens", "name () here", "", false},
		{"no parens", "no version line", "", false},
		{"disallowed interior", "weird (a,b)", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindLastParenthesized(tt.line)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSplitPipeRow(t *testing.T) {
	fields := SplitPipeRow(" Eclipse | | 17.0.2 | tem | | 17.0.2-tem ")
	assert.Equal(t, []string{"Eclipse", "", "17.0.2", "tem", "", "17.0.2-tem"}, fields)

	assert.Equal(t, []string{"no pipes"}, SplitPipeRow("no pipes"))
	assert.Equal(t, []string{""}, SplitPipeRow(""))
}

func TestFieldAt(t *testing.T) {
	fields := []string{"a", "b"}
	assert.Equal(t, "a", FieldAt(fields, 0))
	assert.Equal(t, "b", FieldAt(fields, 1))
	assert.Equal(t, "", FieldAt(fields, 2))
	assert.Equal(t, "", FieldAt(fields, -1))
	assert.Equal(t, "", FieldAt(nil, 0))
}
