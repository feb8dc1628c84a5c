package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/nanounits/catalog"
	"github.com/arthur-debert/nanounits/dimension"
	"github.com/arthur-debert/nanounits/internal/matching"
	"github.com/arthur-debert/nanounits/internal/validation"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// addCommands adds all the CLI commands
func (cli *CLI) addCommands() {
	cli.addEvalCommand()
	cli.addCompareCommand()
	cli.addListCommand()
	cli.addCheckCommand()
	cli.addExportCommand()
}

// termResult is one base and exponent of a formula
type termResult struct {
	Base string `json:"base" yaml:"base"`
	Exp  int    `json:"exp" yaml:"exp"`
}

// matchResult is a registered dimension related to an evaluated expression
type matchResult struct {
	Name     string `json:"name" yaml:"name"`
	Relation string `json:"relation" yaml:"relation"`
}

// evalResult is the output of eval
type evalResult struct {
	Expression string        `json:"expression" yaml:"expression"`
	Symbol     string        `json:"symbol" yaml:"symbol"`
	Kind       string        `json:"kind" yaml:"kind"`
	Terms      []termResult  `json:"terms" yaml:"terms"`
	Matches    []matchResult `json:"matches" yaml:"matches"`
}

func (cli *CLI) addEvalCommand() {
	evalCmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a dimension expression",
		Long: `Evaluate a dimension expression and show its canonical formula together
with every registered dimension it matches.

Examples:
  nanounits eval "force / area"
  nanounits eval "M L^-1 T^-2"
  nanounits --format ascii eval energy`,

		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.executeEval(cmd.OutOrStdout(), args[0])
		},
	}

	cli.rootCmd.AddCommand(evalCmd)
}

func (cli *CLI) executeEval(w io.Writer, expr string) error {
	d, err := dimension.Parse(expr, cli.registry)
	if err != nil {
		return NewExpressionError("evaluate", expr, err)
	}
	slog.Debug("expression evaluated", "expression", expr, "result", d.String())

	result := evalResult{
		Expression: expr,
		Symbol:     cli.symbol(d),
		Kind:       d.Kind().String(),
		Terms:      []termResult{},
		Matches:    []matchResult{},
	}
	for _, t := range d.Terms() {
		result.Terms = append(result.Terms, termResult{Base: t.Base.Name(), Exp: t.Exp})
	}
	for _, m := range matching.NewMatcher(cli.registry.All()).Match(d) {
		result.Matches = append(result.Matches, matchResult{Name: m.Dimension.String(), Relation: m.Relation.String()})
	}

	return cli.output(w, result, func(w io.Writer) error {
		fmt.Fprintf(w, "%s = %s (%s)\n", expr, result.Symbol, result.Kind)
		for _, m := range result.Matches {
			fmt.Fprintf(w, "  %-12s %s\n", m.Relation, m.Name)
		}
		return nil
	})
}

// compareResult is the output of compare
type compareResult struct {
	A           string `json:"a" yaml:"a"`
	B           string `json:"b" yaml:"b"`
	Equal       bool   `json:"equal" yaml:"equal"`
	Equivalent  bool   `json:"equivalent" yaml:"equivalent"`
	Convertible bool   `json:"convertible" yaml:"convertible"`
	CommonType  string `json:"common_type,omitempty" yaml:"common_type,omitempty"`
}

func (cli *CLI) addCompareCommand() {
	compareCmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Show how two dimensions relate",
		Long: `Compare two dimension expressions: identity, equivalence of formulas,
convertibility and their common type.

Examples:
  nanounits compare frequency "1/time"
  nanounits compare frequency activity`,

		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.executeCompare(cmd.OutOrStdout(), args[0], args[1])
		},
	}

	cli.rootCmd.AddCommand(compareCmd)
}

func (cli *CLI) executeCompare(w io.Writer, exprA, exprB string) error {
	a, err := dimension.Parse(exprA, cli.registry)
	if err != nil {
		return NewExpressionError("compare", exprA, err)
	}
	b, err := dimension.Parse(exprB, cli.registry)
	if err != nil {
		return NewExpressionError("compare", exprB, err)
	}

	result := compareResult{
		A:           exprA,
		B:           exprB,
		Equal:       dimension.Equal(a, b),
		Equivalent:  dimension.Equivalent(a, b),
		Convertible: dimension.Convertible(a, b),
	}
	common, err := dimension.CommonType(a, b)
	switch {
	case err == nil:
		result.CommonType = common.String()
	case !errors.Is(err, dimension.ErrNoCommonType):
		return err
	}
	slog.Debug("dimensions compared", "a", exprA, "b", exprB, "common_type", result.CommonType)

	return cli.output(w, result, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "a\t%s\t%s\n", exprA, cli.symbol(a))
		fmt.Fprintf(tw, "b\t%s\t%s\n", exprB, cli.symbol(b))
		fmt.Fprintf(tw, "equal\t%v\n", result.Equal)
		fmt.Fprintf(tw, "equivalent\t%v\n", result.Equivalent)
		fmt.Fprintf(tw, "convertible\t%v\n", result.Convertible)
		if result.CommonType != "" {
			fmt.Fprintf(tw, "common type\t%s\n", result.CommonType)
		} else {
			fmt.Fprintf(tw, "common type\t-\n")
		}
		return tw.Flush()
	})
}

// listEntry is one row of list
type listEntry struct {
	Name   string `json:"name" yaml:"name"`
	Title  string `json:"title" yaml:"title"`
	Kind   string `json:"kind" yaml:"kind"`
	Symbol string `json:"symbol" yaml:"symbol"`
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`
}

func (cli *CLI) addListCommand() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered dimensions",
		Long: `List every dimension of the configured system and catalogs in
declaration order.

Examples:
  nanounits list
  nanounits --system none --catalog mechanics.yaml list --output json`,

		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.executeList(cmd.OutOrStdout())
		},
	}

	cli.rootCmd.AddCommand(listCmd)
}

func (cli *CLI) executeList(w io.Writer) error {
	caser := cases.Title(language.Und)

	entries := []listEntry{}
	for _, d := range cli.registry.All() {
		e := listEntry{
			Name:   d.String(),
			Title:  caser.String(strings.ReplaceAll(d.String(), "_", " ")),
			Kind:   d.Kind().String(),
			Symbol: cli.symbol(d),
		}
		if n, ok := d.(*dimension.Named); ok && !dimension.IsAnonymous(n.Parent()) {
			e.Parent = n.Parent().String()
		}
		entries = append(entries, e)
	}

	return cli.output(w, entries, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tKIND\tSYMBOL\tPARENT")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Title, e.Kind, e.Symbol, e.Parent)
		}
		return tw.Flush()
	})
}

// checkResult is the outcome of checking one catalog file
type checkResult struct {
	Path     string   `json:"path" yaml:"path"`
	Valid    bool     `json:"valid" yaml:"valid"`
	Declared int      `json:"declared" yaml:"declared"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func (cli *CLI) addCheckCommand() {
	checkCmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate catalog files",
		Long: `Validate catalog files and apply them, in order, to a scratch copy of
the configured registry. Nothing is persisted.

Examples:
  nanounits check mechanics.yaml
  nanounits --system none check base.yaml derived.json`,

		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.executeCheck(cmd.OutOrStdout(), args)
		},
	}

	cli.rootCmd.AddCommand(checkCmd)
}

func (cli *CLI) executeCheck(w io.Writer, paths []string) error {
	scratch, err := cli.newRegistry(cli.viperInst.GetStringSlice("catalog"))
	if err != nil {
		return err
	}

	results := make([]checkResult, 0, len(paths))
	failed := 0
	for _, path := range paths {
		result := checkResult{Path: path}
		before := scratch.Len()

		cfg, err := catalog.Load(path)
		if err == nil {
			for symbol, names := range validation.SymbolConflicts(cfg) {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("symbol %s is shared by %s", symbol, strings.Join(names, ", ")))
			}
			err = catalog.Apply(cfg, scratch)
		}
		if err != nil {
			result.Error = err.Error()
			failed++
		} else {
			result.Valid = true
		}
		result.Declared = scratch.Len() - before
		slog.Info("catalog checked", "path", path, "valid", result.Valid, "declared", result.Declared)
		results = append(results, result)
	}

	if err := cli.output(w, results, func(w io.Writer) error {
		for _, r := range results {
			if r.Valid {
				fmt.Fprintf(w, "ok    %s (%d dimensions)\n", r.Path, r.Declared)
			} else {
				fmt.Fprintf(w, "FAIL  %s: %s\n", r.Path, r.Error)
			}
			for _, warning := range r.Warnings {
				fmt.Fprintf(w, "      warning: %s\n", warning)
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if failed > 0 {
		return &CLIError{
			Operation: "check catalogs",
			Cause:     fmt.Sprintf("%d of %d catalogs are invalid", failed, len(paths)),
		}
	}
	return nil
}

func (cli *CLI) addExportCommand() {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the registry as a JSON snapshot",
		Long: `Export every registered dimension with a stable ID, its kind, parent
and canonical terms. With --out the snapshot is written to a file, guarded by
a lock so concurrent exports do not interleave.

Examples:
  nanounits export
  nanounits --catalog mechanics.yaml export --out snapshot.json`,

		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			return cli.executeExport(cmd.OutOrStdout(), out)
		},
	}
	exportCmd.Flags().String("out", "", "Write the snapshot to this file instead of stdout")

	cli.rootCmd.AddCommand(exportCmd)
}

func (cli *CLI) executeExport(w io.Writer, out string) error {
	snap := catalog.Export(cli.registry, cli.viperInst.GetString("system"))

	if out == "" {
		return cli.output(w, snap, func(w io.Writer) error {
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			for _, e := range snap.Entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ID, e.Name, e.Formula)
			}
			return tw.Flush()
		})
	}

	store := catalog.NewFileStore(out)
	if err := store.Save(snap); err != nil {
		return NewStoreError("export snapshot", err,
			"Retry once the other nanounits process has finished",
		)
	}
	slog.Info("snapshot exported", "path", out, "entries", len(snap.Entries), "id", snap.ID)
	fmt.Fprintf(w, "exported %d dimensions to %s\n", len(snap.Entries), out)
	return nil
}
