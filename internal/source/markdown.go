package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	goslug "github.com/gosimple/slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/sift/internal/query"
)

// LoadMarkdownDir reads every .md file under dir (non-recursive) as one
// tuple each, sorted by filename for a stable collection order.
func LoadMarkdownDir(dir string) ([]query.Tuple, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".md" || ext == ".markdown" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	tuples := make([]query.Tuple, 0, len(paths))
	for _, p := range paths {
		t, err := LoadMarkdownFile(p)
		if err != nil {
			return nil, err
		}
		tuples = append(tuples, t)
	}
	return tuples, nil
}

// LoadMarkdownFile turns one markdown document into a tuple: the YAML
// frontmatter supplies the attributes, the slugified filename becomes
// "id", and the first heading becomes "title" when the frontmatter does
// not already claim those attributes.
func LoadMarkdownFile(path string) (query.Tuple, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := string(data)

	tuple := query.Tuple{}
	fm, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for k, v := range fm {
		tuple[k] = v
	}

	if !tuple.Has("id") {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		tuple["id"] = goslug.Make(base)
	}
	if !tuple.Has("title") {
		if title := firstHeading(body); title != "" {
			tuple["title"] = title
		}
	}
	return tuple, nil
}

// splitFrontmatter separates YAML frontmatter from the document body.
// Frontmatter is only recognized when the first line is '---'; an unclosed
// block is treated as absent.
func splitFrontmatter(content string) (map[string]any, string, error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return nil, content, nil
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, content, nil
	}

	var fm map[string]any
	raw := strings.Join(lines[1:end], "\n")
	if err := yaml.Unmarshal([]byte(raw), &fm); err != nil {
		return nil, "", fmt.Errorf("parsing frontmatter: %w", err)
	}
	body := strings.Join(lines[end+1:], "\n")
	return fm, body, nil
}

// firstHeading returns the text of the first heading in the body.
func firstHeading(body string) string {
	md := goldmark.New()
	src := []byte(body)
	doc := md.Parser().Parse(text.NewReader(src))

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || title != "" {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		var sb strings.Builder
		for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
			if textNode, ok := child.(*ast.Text); ok {
				sb.Write(textNode.Segment.Value(src))
			}
		}
		title = strings.TrimSpace(sb.String())
		return ast.WalkStop, nil
	})
	return title
}
