// Package command implements the two-level command grammar (spec.md §4.2):
// split the command line into head and rest on the first space, look head
// up in a static registry keyed by short and long aliases, and hand rest to
// the matched entry's parser to produce an action.Action.
package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/apperr"
)

// parseFunc turns the command's argument text into an Action.
type parseFunc func(rest string) (action.Action, error)

type entry struct {
	short       string
	long        string
	usage       string
	description string
	parse       parseFunc
}

var registry []entry

func register(short, long, usage, description string, p parseFunc) {
	registry = append(registry, entry{short: short, long: long, usage: usage, description: description, parse: p})
}

// HelpEntry is one row of the static commands-help table (spec.md §4.4
// Help action): Command, Short Form, Usage, Description.
type HelpEntry struct {
	Command     string
	ShortForm   string
	Usage       string
	Description string
}

// Registry returns the command grammar's entries in declaration order, for
// the reducer to build the Help tab's frame from.
func Registry() []HelpEntry {
	out := make([]HelpEntry, len(registry))
	for i, e := range registry {
		out[i] = HelpEntry{Command: e.long, ShortForm: e.short, Usage: e.usage, Description: e.description}
	}
	return out
}

func init() {
	register("Q", "query", "Q <sql>", "Run a SQL query against the current frame", func(rest string) (action.Action, error) {
		return action.TableQuery{SQL: rest}, nil
	})
	register("q", "quit", "q", "Quit the application", func(rest string) (action.Action, error) {
		return action.Quit{}, nil
	})
	register("", "goto", "goto <n>", "Jump to row n (1-indexed); empty opens the line picker", parseGoto)
	register("", "goup", "goup page|half|<n>", "Scroll up a page, half page, or n rows", func(rest string) (action.Action, error) { return parsePaged(rest, true) })
	register("", "godown", "godown page|half|<n>", "Scroll down a page, half page, or n rows", func(rest string) (action.Action, error) { return parsePaged(rest, false) })
	register("", "reset", "reset", "Re-run the tab's original query", func(rest string) (action.Action, error) { return action.TableReset{}, nil })
	register("", "help", "help", "Show the command help tab", func(rest string) (action.Action, error) { return action.Help{}, nil })
	register("S", "select", "select <cols>", "Project the given columns", func(rest string) (action.Action, error) { return action.TableSelect{Cols: rest}, nil })
	register("F", "filter", "filter <cond>", "Filter rows by a SQL condition; empty opens the popup", func(rest string) (action.Action, error) {
		if strings.TrimSpace(rest) == "" {
			return action.InlineQueryShow{Kind: "filter"}, nil
		}
		return action.TableFilter{Cond: rest}, nil
	})
	register("O", "order", "order <spec>", "Order rows by a SQL ORDER BY clause; empty opens the popup", func(rest string) (action.Action, error) {
		if strings.TrimSpace(rest) == "" {
			return action.InlineQueryShow{Kind: "order"}, nil
		}
		return action.TableOrder{Spec: rest}, nil
	})
	register("", "schema", "schema", "Switch to the schema browser", func(rest string) (action.Action, error) { return action.SwitchToSchema{}, nil })
	register("", "rand", "rand", "Jump to a random row", func(rest string) (action.Action, error) { return action.TableGotoRandom{}, nil })
	register("", "tabn", "tabn <query>", "Open a new tab for a table name or SQL query", func(rest string) (action.Action, error) { return action.TabNewQuery{Query: rest}, nil })
	register("", "tabr", "tabr <i>", "Close tab i", parseTabIndex(func(i int) action.Action { return action.TabRemove{Index: i} }))
	register("", "tab", "tab <i>", "Select tab i", parseTabIndex(func(i int) action.Action { return action.TabSelect{Index: i} }))
	register("", "infer", "infer int|float|boolean|date|datetime|all", "Infer column types", parseInfer)
	register("", "register", "register <name>", "Register the current frame under a catalog name", func(rest string) (action.Action, error) {
		name := strings.TrimSpace(rest)
		if name == "" {
			return nil, apperr.Parse("register: missing name")
		}
		return action.RegisterDataFrame{Name: name}, nil
	})
	register("", "scatter", "scatter <x> <y> [group...]", "Open a scatter plot", parseScatter)
	register("", "hist", "hist <col> [buckets]", "Open a histogram", parseHist)
	register("", "theme", "theme", "Open the theme selector", func(rest string) (action.Action, error) { return action.ThemeSelectorShow{}, nil })
	register("", "export", "export <fmt> <path>", "Export the current frame", parseExport)
	register("", "import", "import <fmt>[opts] <path>", "Import a file into the catalog", parseImport)
}

// Parse turns a single command line (no leading delimiter) into an Action,
// per the registry above.
func Parse(line string) (action.Action, error) {
	head, rest := splitHeadRest(line)
	if head == "" {
		return nil, apperr.Parse("empty command")
	}
	for _, e := range registry {
		if head == e.short || head == e.long {
			return e.parse(rest)
		}
	}
	return nil, apperr.Parse("unknown command %q", head)
}

func splitHeadRest(line string) (head, rest string) {
	line = strings.TrimLeft(line, " ")
	if i := strings.IndexByte(line, ' '); i >= 0 {
		return line[:i], strings.TrimLeft(line[i+1:], " ")
	}
	return line, ""
}

func parseTabIndex(build func(int) action.Action) parseFunc {
	return func(rest string) (action.Action, error) {
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return nil, apperr.Parse("expected an integer index, got %q", rest)
		}
		return build(n), nil
	}
}

func parseGoto(rest string) (action.Action, error) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return action.GoToLineShow{}, nil
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return nil, apperr.Parse("goto: expected an integer, got %q", rest)
	}
	return action.GotoLine{N: n - 1}, nil
}

func parsePaged(rest string, up bool) (action.Action, error) {
	rest = strings.TrimSpace(rest)
	switch rest {
	case "page":
		if up {
			return action.GoUpFullPage{}, nil
		}
		return action.GoDownFullPage{}, nil
	case "half":
		if up {
			return action.GoUpHalfPage{}, nil
		}
		return action.GoDownHalfPage{}, nil
	default:
		n, err := strconv.Atoi(rest)
		if err != nil {
			return nil, apperr.Parse("expected page, half, or an integer, got %q", rest)
		}
		if up {
			return action.GoUp{N: n}, nil
		}
		return action.GoDown{N: n}, nil
	}
}

func parseInfer(rest string) (action.Action, error) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return nil, apperr.Parse("infer: missing kind")
	}
	kind := fields[0]
	switch kind {
	case "int", "float", "boolean", "date", "datetime", "all":
		return action.TableInferColumns{Kind: kind}, nil
	default:
		return nil, apperr.Parse("infer: unknown kind %q", kind)
	}
}

func parseScatter(rest string) (action.Action, error) {
	words, err := splitWords(rest)
	if err != nil {
		return nil, apperr.Parse("scatter: %v", err)
	}
	if len(words) < 2 {
		return nil, apperr.Parse("scatter: requires <x> <y> [group...]")
	}
	return action.ScatterPlot{X: words[0], Y: words[1], Groups: words[2:]}, nil
}

func parseHist(rest string) (action.Action, error) {
	words, err := splitWords(rest)
	if err != nil {
		return nil, apperr.Parse("hist: %v", err)
	}
	if len(words) < 1 {
		return nil, apperr.Parse("hist: requires <col> [buckets]")
	}
	buckets := 38
	if len(words) >= 2 {
		n, err := strconv.Atoi(words[1])
		if err != nil {
			return nil, apperr.Parse("hist: buckets must be an integer, got %q", words[1])
		}
		buckets = n
	}
	return action.HistogramPlot{Col: words[0], Buckets: buckets}, nil
}

func parseExport(rest string) (action.Action, error) {
	words, err := splitWords(rest)
	if err != nil {
		return nil, apperr.Parse("export: %v", err)
	}
	if len(words) < 2 {
		return nil, apperr.Parse("export: requires <fmt> <path>")
	}
	fmtToken, path := words[0], words[1]
	switch fmtToken {
	case "csv":
		return action.ExportCSV{Path: path, Separator: ','}, nil
	case "tsv":
		return action.ExportCSV{Path: path, Separator: '\t'}, nil
	case "parquet":
		return action.ExportParquet{Path: path}, nil
	case "json":
		return action.ExportJSON{Path: path}, nil
	case "jsonl":
		return action.ExportJSONLines{Path: path}, nil
	case "arrow":
		return action.ExportArrow{Path: path}, nil
	default:
		return nil, apperr.UnsupportedFormat(fmtToken)
	}
}

// parseImport matches "import <fmt>[\[opts\]] <path>" against the patterns
// of spec.md §4.2.2, in declaration order.
func parseImport(rest string) (action.Action, error) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, apperr.Parse("import: missing format")
	}

	fmtToken, optsText, remainder := splitFormatAndOptions(rest)
	path := strings.TrimSpace(remainder)
	if path == "" {
		return nil, apperr.Parse("import: missing path")
	}

	switch fmtToken {
	case "csv":
		return parseImportCSV(optsText, path)
	case "parquet":
		return action.ImportParquet{Path: path}, nil
	case "json":
		return action.ImportJSON{Path: path}, nil
	case "jsonl":
		return action.ImportJSONLines{Path: path}, nil
	case "arrow":
		return action.ImportArrow{Path: path}, nil
	case "sqlite":
		return action.ImportSQLite{Path: path}, nil
	case "fwf":
		return parseImportFWF(optsText, path)
	default:
		return nil, apperr.UnsupportedFormat(fmtToken)
	}
}

// splitFormatAndOptions splits "fmt[opts] rest-of-line" into the format
// token, the bracketed option text (without brackets, empty if absent), and
// whatever follows (the path).
func splitFormatAndOptions(s string) (fmtToken, opts, remainder string) {
	i := 0
	for i < len(s) && s[i] != ' ' && s[i] != '[' {
		i++
	}
	fmtToken = s[:i]
	if i < len(s) && s[i] == '[' {
		end := strings.IndexByte(s[i:], ']')
		if end < 0 {
			return fmtToken, s[i+1:], ""
		}
		opts = s[i+1 : i+end]
		remainder = s[i+end+1:]
		return fmtToken, opts, remainder
	}
	remainder = s[i:]
	return fmtToken, "", remainder
}

func parseImportCSV(optsText, path string) (action.Action, error) {
	separator := ','
	quote := '"'
	hasHeader := true

	var charArgs []rune
	for _, tok := range strings.Fields(optsText) {
		switch tok {
		case "nh", "no-header":
			hasHeader = false
		case `\t`:
			charArgs = append(charArgs, '\t')
		default:
			r := []rune(tok)
			if len(r) != 1 {
				return nil, apperr.Parse("csv: invalid option %q", tok)
			}
			charArgs = append(charArgs, r[0])
		}
	}
	if len(charArgs) > 2 {
		return nil, apperr.Parse("csv: too many separator/quote characters")
	}
	if len(charArgs) >= 1 {
		separator = charArgs[0]
	}
	if len(charArgs) >= 2 {
		quote = charArgs[1]
	}

	return action.ImportCSV{Path: path, Separator: separator, Quote: quote, HasHeader: hasHeader}, nil
}

func parseImportFWF(optsText, path string) (action.Action, error) {
	flexible := false
	hasHeader := true
	var ints []int

	for _, tok := range strings.Fields(optsText) {
		switch tok {
		case "fw", "flexible-width":
			flexible = true
		case "nh", "no-header":
			hasHeader = false
		default:
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, apperr.Parse("fwf: invalid option %q", tok)
			}
			ints = append(ints, n)
		}
	}

	sepLen := 0
	var widths []int
	if len(ints) > 0 {
		sepLen = ints[0]
		widths = ints[1:]
	}

	return action.ImportFWF{
		Path:            path,
		SeparatorLength: sepLen,
		Widths:          widths,
		HasHeader:       hasHeader,
		FlexibleWidth:   flexible,
	}, nil
}

// splitWords performs POSIX-shell-subset word splitting: whitespace
// separates words, single and double quotes group a word, and backslash
// escapes the next character.
func splitWords(s string) ([]string, error) {
	var words []string
	var cur strings.Builder
	inWord := false
	var quote rune

	flush := func() {
		if inWord {
			words = append(words, cur.String())
			cur.Reset()
			inWord = false
		}
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
				continue
			}
			if c == '\\' && quote == '"' && i+1 < len(runes) {
				i++
				cur.WriteRune(runes[i])
				continue
			}
			cur.WriteRune(c)
		case c == '\'' || c == '"':
			quote = c
			inWord = true
		case c == '\\' && i+1 < len(runes):
			i++
			cur.WriteRune(runes[i])
			inWord = true
		case c == ' ' || c == '\t':
			flush()
		default:
			cur.WriteRune(c)
			inWord = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote")
	}
	flush()
	return words, nil
}
