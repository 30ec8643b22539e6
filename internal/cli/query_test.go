package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestQueryFlagsAreDocumented(t *testing.T) {
	queryCmd.LocalFlags().VisitAll(func(flag *pflag.Flag) {
		if flag.Usage == "" {
			t.Errorf("flag --%s has no usage text", flag.Name)
		}
	})
}

func TestDecodeClauseFlag(t *testing.T) {
	// Empty flag means no clause.
	got, err := decodeClauseFlag("")
	if err != nil || got != nil {
		t.Errorf("empty flag = (%v, %v), want (nil, nil)", got, err)
	}

	// YAML form.
	got, err = decodeClauseFlag(`{age: {">=": 30}}`)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("decoded type = %T", got)
	}
	mods, ok := m["age"].(map[string]any)
	if !ok || mods[">="] != 30 {
		t.Errorf("decoded clause = %v", m)
	}

	// JSON is valid YAML.
	got, err = decodeClauseFlag(`{"name": "kermit"}`)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.(map[string]any)["name"] != "kermit" {
		t.Errorf("decoded clause = %v", got)
	}

	if _, err := decodeClauseFlag("{broken"); err == nil {
		t.Error("expected error for malformed clause text")
	}
}

func TestSelectedColumns(t *testing.T) {
	if cols := selectedColumns([]any{"name", "age"}); len(cols) != 2 || cols[0] != "name" {
		t.Errorf("selectedColumns = %v", cols)
	}
	// Mappings and wildcards have no fixed order to offer.
	if cols := selectedColumns(map[string]any{"name": true}); cols != nil {
		t.Errorf("selectedColumns on map = %v", cols)
	}
	if cols := selectedColumns(nil); cols != nil {
		t.Errorf("selectedColumns(nil) = %v", cols)
	}
}
