package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/sift/internal/query"
	"github.com/aidanlsb/sift/internal/source"
	"github.com/aidanlsb/sift/internal/ui"
)

var (
	whereFlag  string
	sortFlag   string
	selectFlag string
	skipFlag   int
	limitFlag  int
	tableFlag  string
	dateAttrs  []string
	outputFlag string
)

var queryCmd = &cobra.Command{
	Use:   "query <file-or-dir>",
	Short: "Filter, sort, paginate, and project a record collection",
	Long: `Load a collection of records and run it through the criteria pipeline:
filter (--where), sort (--sort), paginate (--skip/--limit), and project
(--select).

Clause flags take inline YAML (JSON is valid YAML):

  sift query people.json --where '{age: {">=": 30}}'
  sift query people.json --where '{or: [{name: kermit}, {name: piggy}]}'
  sift query notes/ --where '{like: {title: "%owl%"}}' --sort '-priority'
  sift query people.db --table people --select '[name, age]' --limit 10

Sources: .json (array of objects), .yaml/.yml, .md or a directory of
markdown files (frontmatter becomes the record), and SQLite databases
(--table picks the table).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		where, err := decodeClauseFlag(whereFlag)
		if err != nil {
			return fmt.Errorf("--where: %w", err)
		}
		if err := query.ValidateWhere(where); err != nil {
			return err
		}
		if err := query.ValidateSort(sortValue()); err != nil {
			return err
		}
		sel, err := decodeClauseFlag(selectFlag)
		if err != nil {
			return fmt.Errorf("--select: %w", err)
		}

		tuples, err := source.Load(args[0], source.Options{Table: tableFlag})
		if err != nil {
			return err
		}

		schema := query.Schema{}
		for _, attr := range dateAttrs {
			schema[strings.TrimSpace(attr)] = query.TypeDate
		}

		result, err := query.Filter(tuples, where, schema)
		if err != nil {
			return err
		}
		result, err = query.Sort(result, sortValue(), nil)
		if err != nil {
			return err
		}
		result = query.Limit(query.Skip(result, skipFlag), limitFlag)
		result = query.Project(result, sel)

		return printResult(result, sel)
	},
}

// sortValue passes the flag through untouched: the engine's sort parser
// understands the "-attr, other" string form directly.
func sortValue() any {
	if sortFlag == "" {
		return nil
	}
	return sortFlag
}

// decodeClauseFlag reads an inline YAML (or JSON) clause. Empty means no
// clause.
func decodeClauseFlag(flag string) (any, error) {
	if strings.TrimSpace(flag) == "" {
		return nil, nil
	}
	var clause any
	if err := yaml.Unmarshal([]byte(flag), &clause); err != nil {
		return nil, err
	}
	return clause, nil
}

// selectedColumns fixes table column order when the projection is a plain
// inclusion list.
func selectedColumns(sel any) []string {
	list, ok := sel.([]any)
	if !ok {
		return nil
	}
	cols := make([]string, 0, len(list))
	for _, elem := range list {
		if s, ok := elem.(string); ok {
			cols = append(cols, s)
		}
	}
	if len(cols) == 0 {
		return nil
	}
	return cols
}

func printResult(result []query.Tuple, sel any) error {
	format := outputFlag
	if format == "" {
		format = cfg.Output
	}

	switch format {
	case "json":
		if result == nil {
			result = []query.Tuple{}
		}
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	case "", "table":
		d := ui.NewDisplayContext()
		fmt.Print(ui.RenderTuples(result, selectedColumns(sel), d))
		if d.IsTTY {
			fmt.Fprintln(os.Stderr, ui.Count(len(result), "tuple", "tuples"))
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q (want table or json)", format)
}

func init() {
	queryCmd.Flags().StringVar(&whereFlag, "where", "", "WHERE clause (inline YAML/JSON)")
	queryCmd.Flags().StringVar(&sortFlag, "sort", "", "Sort keys, e.g. '-age, name'")
	queryCmd.Flags().StringVar(&selectFlag, "select", "", "Projection spec (inline YAML/JSON)")
	queryCmd.Flags().IntVar(&skipFlag, "skip", 0, "Number of tuples to skip")
	queryCmd.Flags().IntVar(&limitFlag, "limit", 0, "Maximum number of tuples (0 = all)")
	queryCmd.Flags().StringVar(&tableFlag, "table", "", "Table to read from a SQLite source")
	queryCmd.Flags().StringSliceVar(&dateAttrs, "date-attr", nil, "Attributes to treat as dates")
	queryCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format: table or json")

	rootCmd.AddCommand(queryCmd)
}
