package source

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "people.json", `[
		{"name": "kermit", "age": 42},
		{"name": "piggy", "age": 40}
	]`)

	tuples, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if len(tuples) != 2 {
		t.Fatalf("got %d tuples, want 2", len(tuples))
	}
	if tuples[0]["name"] != "kermit" {
		t.Errorf("first tuple = %v", tuples[0])
	}
	// JSON numbers decode as float64; the engine's coercion handles that.
	if tuples[0]["age"] != float64(42) {
		t.Errorf("age = %T(%v)", tuples[0]["age"], tuples[0]["age"])
	}
}

func TestLoadJSONRejectsNonObjects(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.json", `[1, 2, 3]`)
	if _, err := LoadJSON(path); err == nil {
		t.Error("expected error for non-object elements")
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "people.yaml", `
- name: kermit
  active: true
- name: piggy
  age: 40
`)
	tuples, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if len(tuples) != 2 {
		t.Fatalf("got %d tuples, want 2", len(tuples))
	}
	if tuples[0]["active"] != true {
		t.Errorf("active = %v", tuples[0]["active"])
	}
	if tuples[0].Has("age") {
		t.Error("sparse attribute leaked into the wrong tuple")
	}
}

func TestLoadMarkdownFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "My Note.md", `---
status: active
priority: 2
---

# A Real Heading

Body text.
`)
	tuple, err := LoadMarkdownFile(path)
	if err != nil {
		t.Fatalf("LoadMarkdownFile: %v", err)
	}
	if tuple["status"] != "active" {
		t.Errorf("status = %v", tuple["status"])
	}
	if tuple["id"] != "my-note" {
		t.Errorf("id = %v", tuple["id"])
	}
	if tuple["title"] != "A Real Heading" {
		t.Errorf("title = %v", tuple["title"])
	}
}

func TestLoadMarkdownFileWithoutFrontmatter(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "plain.md", "# Just a heading\n\ntext\n")
	tuple, err := LoadMarkdownFile(path)
	if err != nil {
		t.Fatalf("LoadMarkdownFile: %v", err)
	}
	if tuple["id"] != "plain" || tuple["title"] != "Just a heading" {
		t.Errorf("tuple = %v", tuple)
	}
}

func TestLoadMarkdownDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.md", "---\nn: 2\n---\n")
	writeFile(t, dir, "a.md", "---\nn: 1\n---\n")
	writeFile(t, dir, "ignored.txt", "not markdown")

	tuples, err := LoadMarkdownDir(dir)
	if err != nil {
		t.Fatalf("LoadMarkdownDir: %v", err)
	}
	if len(tuples) != 2 {
		t.Fatalf("got %d tuples, want 2", len(tuples))
	}
	// Filename order keeps the collection stable.
	if tuples[0]["n"] != 1 || tuples[1]["n"] != 2 {
		t.Errorf("order = %v", tuples)
	}
}

func TestLoadSQLite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "people.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("opening fixture db: %v", err)
	}
	stmts := []string{
		`CREATE TABLE people (name TEXT, age INTEGER, note TEXT)`,
		`INSERT INTO people VALUES ('kermit', 42, NULL)`,
		`INSERT INTO people VALUES ('piggy', 40, 'diva')`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("seeding fixture db: %v", err)
		}
	}
	db.Close()

	tuples, err := LoadSQLite(path, "people")
	if err != nil {
		t.Fatalf("LoadSQLite: %v", err)
	}
	if len(tuples) != 2 {
		t.Fatalf("got %d tuples, want 2", len(tuples))
	}
	if tuples[0]["name"] != "kermit" {
		t.Errorf("first tuple = %v", tuples[0])
	}
	// NULL columns come back as absent attributes.
	if tuples[0].Has("note") {
		t.Error("NULL column should be absent")
	}
	if tuples[1]["note"] != "diva" {
		t.Errorf("note = %v", tuples[1]["note"])
	}
}

func TestLoadSQLiteRejectsBadTableName(t *testing.T) {
	if _, err := LoadSQLite("whatever.db", "people; DROP TABLE x"); err == nil {
		t.Error("expected error for an illegal table name")
	}
}

func TestLoadDispatch(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "data.json", `[{"a": 1}]`)

	tuples, err := Load(jsonPath, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tuples) != 1 {
		t.Errorf("got %d tuples", len(tuples))
	}

	odd := writeFile(t, dir, "data.xyz", "")
	if _, err := Load(odd, Options{}); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
