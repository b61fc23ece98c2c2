package reducer

import (
	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/apperr"
	"github.com/tabiew-go/tabiew/internal/dataframe"
	"github.com/tabiew-go/tabiew/internal/format"
	"github.com/tabiew-go/tabiew/internal/format/arrowfmt"
	"github.com/tabiew-go/tabiew/internal/format/csvfmt"
	"github.com/tabiew-go/tabiew/internal/format/fwffmt"
	"github.com/tabiew-go/tabiew/internal/format/jsonfmt"
	"github.com/tabiew-go/tabiew/internal/format/parquetfmt"
	"github.com/tabiew-go/tabiew/internal/format/sqlitefmt"
	"github.com/tabiew-go/tabiew/internal/state"
)

// importFrames registers every frame the reader produced under the catalog
// (disambiguating names on collision, per spec.md §3) and opens a tab for
// each, landing on the last one.
func (ex *Executor) importFrames(s *state.AppState, frames []format.NamedFrame, source dataframe.Source) (action.Action, error) {
	if len(frames) == 0 {
		return nil, apperr.Parse("import produced no tables")
	}
	lastIdx := -1
	for _, nf := range frames {
		name := ex.Catalog.Register(nf.SuggestedName, nf.Frame, source)
		s.Tabs = append(s.Tabs, state.NewTab(state.TableType{Kind: state.TableTypeName, CatalogName: name}, nf.Frame))
		lastIdx = len(s.Tabs) - 1
	}
	s.SelectedTab = lastIdx
	return nil, nil
}

func (ex *Executor) importCSV(s *state.AppState, a action.ImportCSV) (action.Action, error) {
	r := csvfmt.NewReader(csvfmt.Options{Separator: a.Separator, Quote: a.Quote, HasHeader: a.HasHeader})
	frames, err := r.Read(a.Path)
	if err != nil {
		return nil, apperr.IO(err)
	}
	return ex.importFrames(s, frames, dataframe.NewFileSource(a.Path))
}

func (ex *Executor) importFWF(s *state.AppState, a action.ImportFWF) (action.Action, error) {
	r := fwffmt.NewReader(fwffmt.Options{
		SeparatorLength: a.SeparatorLength,
		Widths:          a.Widths,
		HasHeader:       a.HasHeader,
		FlexibleWidth:   a.FlexibleWidth,
	})
	frames, err := r.Read(a.Path)
	if err != nil {
		return nil, apperr.IO(err)
	}
	return ex.importFrames(s, frames, dataframe.NewFileSource(a.Path))
}

func (ex *Executor) importParquet(s *state.AppState, a action.ImportParquet) (action.Action, error) {
	frames, err := parquetfmt.NewReader().Read(a.Path)
	if err != nil {
		return nil, apperr.IO(err)
	}
	return ex.importFrames(s, frames, dataframe.NewFileSource(a.Path))
}

func (ex *Executor) importJSON(s *state.AppState, a action.ImportJSON) (action.Action, error) {
	frames, err := jsonfmt.NewReader(false).Read(a.Path)
	if err != nil {
		return nil, apperr.IO(err)
	}
	return ex.importFrames(s, frames, dataframe.NewFileSource(a.Path))
}

func (ex *Executor) importJSONLines(s *state.AppState, a action.ImportJSONLines) (action.Action, error) {
	frames, err := jsonfmt.NewReader(true).Read(a.Path)
	if err != nil {
		return nil, apperr.IO(err)
	}
	return ex.importFrames(s, frames, dataframe.NewFileSource(a.Path))
}

func (ex *Executor) importArrow(s *state.AppState, a action.ImportArrow) (action.Action, error) {
	frames, err := arrowfmt.NewReader().Read(a.Path)
	if err != nil {
		return nil, apperr.IO(err)
	}
	return ex.importFrames(s, frames, dataframe.NewFileSource(a.Path))
}

func (ex *Executor) importSQLite(s *state.AppState, a action.ImportSQLite) (action.Action, error) {
	frames, err := sqlitefmt.NewReader().Read(a.Path)
	if err != nil {
		return nil, apperr.IO(err)
	}
	return ex.importFrames(s, frames, dataframe.NewFileSource(a.Path))
}

func (ex *Executor) exportCSV(s *state.AppState, a action.ExportCSV) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, apperr.NotFound("no selected tab")
	}
	w := csvfmt.NewWriter(csvfmt.Options{Separator: a.Separator, Quote: '"', HasHeader: true})
	if err := w.Write(a.Path, tab.TableView.Frame); err != nil {
		return nil, apperr.IO(err)
	}
	return nil, nil
}

func (ex *Executor) exportParquet(s *state.AppState, a action.ExportParquet) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, apperr.NotFound("no selected tab")
	}
	if err := parquetfmt.NewWriter().Write(a.Path, tab.TableView.Frame); err != nil {
		return nil, apperr.IO(err)
	}
	return nil, nil
}

func (ex *Executor) exportJSON(s *state.AppState, a action.ExportJSON) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, apperr.NotFound("no selected tab")
	}
	if err := jsonfmt.NewWriter(false).Write(a.Path, tab.TableView.Frame); err != nil {
		return nil, apperr.IO(err)
	}
	return nil, nil
}

func (ex *Executor) exportJSONLines(s *state.AppState, a action.ExportJSONLines) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, apperr.NotFound("no selected tab")
	}
	if err := jsonfmt.NewWriter(true).Write(a.Path, tab.TableView.Frame); err != nil {
		return nil, apperr.IO(err)
	}
	return nil, nil
}

func (ex *Executor) exportArrow(s *state.AppState, a action.ExportArrow) (action.Action, error) {
	tab := s.SelectedTabContent()
	if tab == nil {
		return nil, apperr.NotFound("no selected tab")
	}
	if err := arrowfmt.NewWriter().Write(a.Path, tab.TableView.Frame); err != nil {
		return nil, apperr.IO(err)
	}
	return nil, nil
}
