package catalog

import (
	"errors"
	"testing"

	"github.com/tabiew-go/tabiew/internal/apperr"
	"github.com/tabiew-go/tabiew/internal/dataframe"
)

type fakeEngine struct {
	called  bool
	lastSQL string
}

func (f *fakeEngine) Execute(sql string, tables map[string]*dataframe.DataFrame, current *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	f.called = true
	f.lastSQL = sql
	return dataframe.Empty(), nil
}

func frame() *dataframe.DataFrame {
	return dataframe.New([]*dataframe.Column{{Name: "a", Type: dataframe.TypeInt, Data: []any{int64(1)}}})
}

func TestRegisterAssignsDesiredWhenFree(t *testing.T) {
	c := New(&fakeEngine{})
	name := c.Register("t", frame(), dataframe.NewUserSource())
	if name != "t" {
		t.Errorf("Register() = %q, want %q", name, "t")
	}
}

func TestRegisterDisambiguates(t *testing.T) {
	c := New(&fakeEngine{})
	c.Register("t", frame(), dataframe.NewUserSource())
	second := c.Register("t", frame(), dataframe.NewUserSource())
	if second != "t_2" {
		t.Errorf("second Register(t) = %q, want t_2", second)
	}
}

func TestRegisterSkipsToNextFreeIndex(t *testing.T) {
	c := New(&fakeEngine{})
	c.Register("x", frame(), dataframe.NewUserSource())
	c.Register("x_2", frame(), dataframe.NewUserSource())
	got := c.Register("x", frame(), dataframe.NewUserSource())
	if got != "x_3" {
		t.Errorf("Register(x) with x,x_2 taken = %q, want x_3", got)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	c := New(&fakeEngine{})
	c.Register("b", frame(), dataframe.NewUserSource())
	c.Register("a", frame(), dataframe.NewUserSource())
	schema := c.Schema()
	if len(schema) != 2 || schema[0].Name != "b" || schema[1].Name != "a" {
		t.Errorf("Schema() order = %+v, want [b, a]", schema)
	}
}

func TestUnregisterNoOpIfAbsent(t *testing.T) {
	c := New(&fakeEngine{})
	c.Unregister("nope") // must not panic
	if c.Len() != 0 {
		t.Error("Len() should remain 0")
	}
}

func TestUnregisterRemovesEntry(t *testing.T) {
	c := New(&fakeEngine{})
	c.Register("t", frame(), dataframe.NewUserSource())
	c.Unregister("t")
	if c.Get("t") != nil {
		t.Error("Get(t) should be nil after Unregister")
	}
	if c.Len() != 0 {
		t.Error("Len() should be 0 after Unregister")
	}
}

func TestGetByIndex(t *testing.T) {
	c := New(&fakeEngine{})
	c.Register("t", frame(), dataframe.NewUserSource())
	if info := c.GetByIndex(0); info == nil || info.Name != "t" {
		t.Error("GetByIndex(0) should return the registered entry")
	}
	if c.GetByIndex(5) != nil {
		t.Error("GetByIndex(out of range) should return nil")
	}
}

func TestExecuteWithoutCurrentFrameButNoPlaceholder(t *testing.T) {
	eng := &fakeEngine{}
	c := New(eng)
	_, err := c.Execute("SELECT * FROM t", nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !eng.called {
		t.Error("engine should have been invoked")
	}
}

func TestExecuteReferencingCurrentWithoutFrameFails(t *testing.T) {
	eng := &fakeEngine{}
	c := New(eng)
	_, err := c.Execute("SELECT * FROM _", nil)
	if err == nil {
		t.Fatal("expected NoCurrentFrame error")
	}
	if !apperr.IsKind(err, apperr.KindSQL) {
		t.Errorf("expected KindSQL, got %v", err)
	}
	if eng.called {
		t.Error("engine should not be invoked when `_` is unbound")
	}
}

func TestExecuteWithCurrentFrame(t *testing.T) {
	eng := &fakeEngine{}
	c := New(eng)
	_, err := c.Execute("SELECT * FROM _ WHERE a > 1", frame())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !eng.called {
		t.Error("engine should have been invoked with a bound current frame")
	}
}

func TestExecuteWrapsEngineError(t *testing.T) {
	c := New(errEngine{})
	_, err := c.Execute("SELECT 1", nil)
	if !apperr.IsKind(err, apperr.KindSQL) {
		t.Errorf("expected wrapped KindSQL error, got %v", err)
	}
}

type errEngine struct{}

func (errEngine) Execute(sql string, tables map[string]*dataframe.DataFrame, current *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	return nil, errors.New("boom")
}
