// Package spike implements the spike directory index.
//
// A spike is a dated experiment folder living directly under a root
// directory and named YYYY-MM-DD-<slug>. The directory name is the only
// record of an entry: there is no metadata file, database, or cache, and
// every query re-reads the root.
package spike

import "strings"

// DateLayout is the time layout of the date prefix in entry names.
const DateLayout = "2006-01-02"

// Entry is one spike directory.
type Entry struct {
	Date string `json:"date"`
	Slug string `json:"slug"`
	Path string `json:"path"`
}

// Name returns the directory name of the entry.
func (e Entry) Name() string {
	return e.Date + "-" + e.Slug
}

// ParseDirName splits a directory name into its date and slug.
//
// The name is cut on the first three hyphens so the slug keeps any
// hyphens of its own. The date segments are not validated: any name with
// at least three hyphens parses, even "abc-de-fg-x" or one with an empty slug.
func ParseDirName(name string) (date, slug string, ok bool) {
	parts := strings.SplitN(name, "-", 4)
	if len(parts) < 4 {
		return "", "", false
	}
	return parts[0] + "-" + parts[1] + "-" + parts[2], parts[3], true
}

// MatchSlug reports whether query occurs in slug, ignoring case.
func MatchSlug(slug, query string) bool {
	return strings.Contains(strings.ToLower(slug), strings.ToLower(query))
}
