package skills

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when the skill document cannot be located.
var ErrNotFound = errors.New("SKILL.md not found")

// Document is a parsed skill document.
type Document struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Trigger     string `yaml:"trigger"`

	// Body is the markdown after the frontmatter.
	Body string `yaml:"-"`
	// Raw is the complete file contents.
	Raw []byte `yaml:"-"`
	// Path is the file the document was read from, empty when embedded.
	Path string `yaml:"-"`
}

// Embedded returns the SKILL.md compiled into the binary.
func Embedded() (*Document, error) {
	if len(embeddedSkill) == 0 {
		return nil, ErrNotFound
	}
	return Parse(embeddedSkill, "")
}

// Load reads the skill document. A non-empty override names a file that
// replaces the embedded copy; if that file does not exist Load returns
// ErrNotFound.
func Load(override string) (*Document, error) {
	if override == "" {
		return Embedded()
	}
	data, err := os.ReadFile(override)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrNotFound, override)
		}
		return nil, fmt.Errorf("failed to read skill document: %w", err)
	}
	return Parse(data, override)
}

// Parse parses a markdown document with optional YAML frontmatter.
// Frontmatter is delimited by "---" lines at the top of the file.
func Parse(data []byte, path string) (*Document, error) {
	doc := &Document{Raw: data, Path: path}
	content := strings.ReplaceAll(string(data), "\r\n", "\n")

	if !strings.HasPrefix(content, "---\n") {
		doc.Body = strings.TrimSpace(content)
		return doc, nil
	}

	rest := strings.TrimPrefix(content, "---\n")
	front, body, found := strings.Cut(rest, "\n---")
	if !found {
		doc.Body = strings.TrimSpace(content)
		return doc, nil
	}
	// Drop the remainder of the closing delimiter line.
	if _, after, ok := strings.Cut(body, "\n"); ok {
		body = after
	} else {
		body = ""
	}

	if err := yaml.Unmarshal([]byte(front), doc); err != nil {
		return nil, fmt.Errorf("invalid skill frontmatter: %w", err)
	}
	doc.Body = strings.TrimSpace(body)
	return doc, nil
}
