// Package search implements the Matcher collaborator (spec.md §6) and the
// one genuinely concurrent component in the system (spec.md §5): a search
// worker goroutine that owns its own pattern input and publishes a
// most-recent-result frame through a non-blocking "latest" slot, polled by
// the main thread on every tick.
package search

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/tabiew-go/tabiew/internal/dataframe"
)

// Kind selects the fuzzy or exact matching strategy.
type Kind int

const (
	Fuzzy Kind = iota
	Exact
)

// Session is one running search: a producer goroutine reading patterns from
// patternCh (capacity 1, always drained and replaced so only the latest
// pattern survives) and writing result frames into latestCh the same way.
type Session struct {
	kind      Kind
	source    *dataframe.DataFrame
	patternCh chan string
	latestCh  chan *dataframe.DataFrame
	done      chan struct{}
}

// NewSession starts a search worker over frame using the given strategy.
func NewSession(frame *dataframe.DataFrame, kind Kind) *Session {
	s := &Session{
		kind:      kind,
		source:    frame,
		patternCh: make(chan string, 1),
		latestCh:  make(chan *dataframe.DataFrame, 1),
		done:      make(chan struct{}),
	}
	go s.run()
	return s
}

// SetPattern publishes a new pattern to the worker, overwriting any
// not-yet-consumed pattern so the worker always works on the most recent
// input (readers never block, per spec.md §5).
func (s *Session) SetPattern(pattern string) {
	select {
	case <-s.patternCh:
	default:
	}
	select {
	case s.patternCh <- pattern:
	default:
	}
}

// Latest returns the most recent match result, if one has been published
// since the last call, without blocking.
func (s *Session) Latest() *dataframe.DataFrame {
	select {
	case f := <-s.latestCh:
		return f
	default:
		return nil
	}
}

// Cancel stops the worker goroutine. Per spec.md §5 there is no per-action
// cancel; the caller (the reducer, on closing/committing the SearchBar)
// simply stops consuming and cancels the worker wholesale.
func (s *Session) Cancel() {
	close(s.done)
}

func (s *Session) run() {
	for {
		select {
		case <-s.done:
			return
		case pattern := <-s.patternCh:
			frame := match(s.source, s.kind, pattern)
			select {
			case <-s.latestCh:
			default:
			}
			select {
			case s.latestCh <- frame:
			default:
			}
		}
	}
}

// match applies the selected strategy to every row of source, treating each
// row's cells joined with a space as the match target, and returns a new
// frame containing only the matching rows. Neither strategy returns an
// error, so the worker has none to propagate.
func match(source *dataframe.DataFrame, kind Kind, pattern string) *dataframe.DataFrame {
	if pattern == "" {
		return source
	}

	rowStrings := make([]string, source.Height())
	for r := 0; r < source.Height(); r++ {
		var b strings.Builder
		for _, v := range source.Row(r) {
			if v != nil {
				b.WriteString(cellString(v))
				b.WriteByte(' ')
			}
		}
		rowStrings[r] = b.String()
	}

	var matchedRows []int
	switch kind {
	case Fuzzy:
		matches := fuzzy.Find(pattern, rowStrings)
		matchedRows = make([]int, len(matches))
		for i, m := range matches {
			matchedRows[i] = m.Index
		}
	default:
		for i, s := range rowStrings {
			if strings.Contains(s, pattern) {
				matchedRows = append(matchedRows, i)
			}
		}
	}

	return selectRows(source, matchedRows)
}

func selectRows(source *dataframe.DataFrame, rows []int) *dataframe.DataFrame {
	out := make([]*dataframe.Column, len(source.Columns))
	for i, c := range source.Columns {
		data := make([]any, len(rows))
		for j, r := range rows {
			data[j] = c.Data[r]
		}
		out[i] = &dataframe.Column{Name: c.Name, Type: c.Type, Data: data}
	}
	return dataframe.New(out)
}

func cellString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
