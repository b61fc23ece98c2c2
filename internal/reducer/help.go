package reducer

import (
	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/command"
	"github.com/tabiew-go/tabiew/internal/dataframe"
	"github.com/tabiew-go/tabiew/internal/state"
)

// help jumps to an already-open Help tab if one exists, otherwise opens one
// built from the command grammar's static registry (spec.md §4.4 Help
// action: Command, Short Form, Usage, Description columns).
func (ex *Executor) help(s *state.AppState) (action.Action, error) {
	for i, t := range s.Tabs {
		if t.Kind.Kind == state.TableTypeHelp {
			s.SelectedTab = i
			return nil, nil
		}
	}
	s.Tabs = append(s.Tabs, state.NewTab(state.TableType{Kind: state.TableTypeHelp}, buildHelpFrame()))
	s.SelectedTab = len(s.Tabs) - 1
	return nil, nil
}

func buildHelpFrame() *dataframe.DataFrame {
	rows := command.Registry()
	cmdCol := make([]any, len(rows))
	shortCol := make([]any, len(rows))
	usageCol := make([]any, len(rows))
	descCol := make([]any, len(rows))
	for i, r := range rows {
		cmdCol[i] = r.Command
		shortCol[i] = r.ShortForm
		usageCol[i] = r.Usage
		descCol[i] = r.Description
	}
	return dataframe.New([]*dataframe.Column{
		{Name: "Command", Type: dataframe.TypeString, Data: cmdCol},
		{Name: "Short Form", Type: dataframe.TypeString, Data: shortCol},
		{Name: "Usage", Type: dataframe.TypeString, Data: usageCol},
		{Name: "Description", Type: dataframe.TypeString, Data: descCol},
	})
}
