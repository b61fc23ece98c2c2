package dataframe

// SourceKind tags the provenance of a DataFrame registered in the catalog.
type SourceKind int

const (
	SourceFile SourceKind = iota
	SourceStdin
	SourceUser
	SourceDerived
)

// Source carries origin information for display in the schema view, mirrors
// spec's tagged Source variant: File(path) | Stdin | User | Derived.
type Source struct {
	Kind SourceKind
	Path string
}

// NewFileSource builds a Source with kind File and the given path.
func NewFileSource(path string) Source { return Source{Kind: SourceFile, Path: path} }

// NewStdinSource builds a Source with kind Stdin.
func NewStdinSource() Source { return Source{Kind: SourceStdin} }

// NewUserSource builds a Source with kind User, used by RegisterDataFrame.
func NewUserSource() Source { return Source{Kind: SourceUser} }

// NewDerivedSource builds a Source with kind Derived, used for frames
// produced by a query rather than an import.
func NewDerivedSource() Source { return Source{Kind: SourceDerived} }

func (s Source) String() string {
	switch s.Kind {
	case SourceFile:
		return s.Path
	case SourceStdin:
		return "<stdin>"
	case SourceUser:
		return "<user>"
	default:
		return "<derived>"
	}
}

// TableInfo is a single catalog entry: a registered name bound to a frame,
// its provenance, and the summary statistics the DataFrameInfo modal and
// schema view display.
type TableInfo struct {
	Name           string
	Frame          *DataFrame
	Source         Source
	TotalNullCount int
	EstBytes       int
}

// NewTableInfo builds a TableInfo, computing TotalNullCount/EstBytes from
// frame at construction time (the catalog recomputes these on register).
func NewTableInfo(name string, frame *DataFrame, source Source) *TableInfo {
	return &TableInfo{
		Name:           name,
		Frame:          frame,
		Source:         source,
		TotalNullCount: frame.TotalNullCount(),
		EstBytes:       frame.EstimatedBytes(),
	}
}
