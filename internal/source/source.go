// Package source loads tuple collections from local files so the query
// engine has something to chew on. The engine itself never touches
// storage; these adapters are its upstream collaborators.
//
// Supported inputs: a JSON array of objects, a YAML document (sequence or
// single mapping), a markdown file or directory (frontmatter becomes the
// tuple), and a SQLite database (rows of one table).
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/sift/internal/query"
)

// Options adjust how a path is loaded.
type Options struct {
	// Table names the table to read when the path is a SQLite database.
	Table string
}

// Load reads the tuples behind path, dispatching on its extension.
// Directories are walked as markdown collections.
func Load(path string, opts Options) ([]query.Tuple, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return LoadMarkdownDir(path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".md", ".markdown":
		t, err := LoadMarkdownFile(path)
		if err != nil {
			return nil, err
		}
		return []query.Tuple{t}, nil
	case ".db", ".sqlite", ".sqlite3":
		if opts.Table == "" {
			return nil, fmt.Errorf("loading %s requires a table name", path)
		}
		return LoadSQLite(path, opts.Table)
	}
	return nil, fmt.Errorf("unsupported source: %s", path)
}
