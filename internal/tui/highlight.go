package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"

	"github.com/tabiew-go/tabiew/internal/theme"
)

// highlighter tokenises palette and inline-query SQL text with chroma and
// renders it with the active theme's four SQL styles. The theme carries no
// separate type/function/comment styles, so those token classes fold into
// SQLKeyword and SQLOperator below rather than going unstyled.
type highlighter struct {
	lexer chroma.Lexer
}

var sqlHighlighter = newHighlighter()

func newHighlighter() *highlighter {
	l := lexers.Get("PostgreSQL")
	if l == nil {
		l = lexers.Get("SQL")
	}
	if l == nil {
		l = lexers.Fallback
	}
	return &highlighter{lexer: chroma.Coalesce(l)}
}

// highlightSQL tokenises sql and returns it with each token wrapped in the
// corresponding lipgloss style from th.
func highlightSQL(sql string, th *theme.Theme) string {
	if th == nil || sql == "" {
		return sql
	}

	iter, err := sqlHighlighter.lexer.Tokenise(nil, sql)
	if err != nil {
		return sql
	}

	var b strings.Builder
	b.Grow(len(sql) * 2)

	for _, tok := range iter.Tokens() {
		if tok.Value == "" {
			continue
		}
		style, ok := styleForToken(tok.Type, th)
		if !ok {
			b.WriteString(tok.Value)
			continue
		}
		writeStyledLines(&b, tok.Value, style)
	}

	return b.String()
}

func writeStyledLines(b *strings.Builder, value string, style lipgloss.Style) {
	if !strings.Contains(value, "\n") {
		b.WriteString(style.Render(value))
		return
	}
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		if line != "" {
			b.WriteString(style.Render(line))
		}
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
}

// styleForToken maps a chroma token class to one of the theme's four SQL
// styles. Comments and identifiers/functions have no dedicated style here, so
// comments fall in with operators (muted punctuation) and functions/types
// fall in with keywords, rather than passing through unstyled.
func styleForToken(tt chroma.TokenType, th *theme.Theme) (lipgloss.Style, bool) {
	switch {
	case isKeywordOrNameLike(tt):
		return th.SQLKeyword, true
	case isStringToken(tt):
		return th.SQLString, true
	case isNumberToken(tt):
		return th.SQLNumber, true
	case isCommentToken(tt), tt == chroma.Operator, tt == chroma.OperatorWord, tt == chroma.Punctuation:
		return th.SQLOperator, true
	default:
		return lipgloss.Style{}, false
	}
}

func isKeywordOrNameLike(tt chroma.TokenType) bool {
	switch tt {
	case chroma.Keyword, chroma.KeywordConstant, chroma.KeywordDeclaration,
		chroma.KeywordNamespace, chroma.KeywordPseudo, chroma.KeywordReserved,
		chroma.KeywordType, chroma.NameFunction, chroma.NameBuiltin:
		return true
	default:
		return false
	}
}

func isStringToken(tt chroma.TokenType) bool {
	switch tt {
	case chroma.LiteralString, chroma.LiteralStringAffix, chroma.LiteralStringBacktick,
		chroma.LiteralStringChar, chroma.LiteralStringDelimiter, chroma.LiteralStringDoc,
		chroma.LiteralStringDouble, chroma.LiteralStringEscape, chroma.LiteralStringHeredoc,
		chroma.LiteralStringInterpol, chroma.LiteralStringOther, chroma.LiteralStringRegex,
		chroma.LiteralStringSingle, chroma.LiteralStringSymbol:
		return true
	default:
		return false
	}
}

func isNumberToken(tt chroma.TokenType) bool {
	switch tt {
	case chroma.LiteralNumber, chroma.LiteralNumberBin, chroma.LiteralNumberFloat,
		chroma.LiteralNumberHex, chroma.LiteralNumberInteger, chroma.LiteralNumberIntegerLong,
		chroma.LiteralNumberOct:
		return true
	default:
		return false
	}
}

func isCommentToken(tt chroma.TokenType) bool {
	switch tt {
	case chroma.Comment, chroma.CommentHashbang, chroma.CommentMultiline,
		chroma.CommentPreproc, chroma.CommentPreprocFile, chroma.CommentSingle,
		chroma.CommentSpecial:
		return true
	default:
		return false
	}
}
