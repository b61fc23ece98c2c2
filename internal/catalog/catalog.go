// Package catalog implements the process-wide name→TableInfo registry: the
// SQL engine's schema on one hand, the schema browser's backing list on the
// other. Keys are unique; insertion order is preserved for stable row
// indices in the schema view.
package catalog

import (
	"fmt"
	"sync"

	"github.com/tabiew-go/tabiew/internal/apperr"
	"github.com/tabiew-go/tabiew/internal/dataframe"
)

// Engine is the SqlEngine collaborator the catalog delegates query
// execution to. Kept as a narrow interface so internal/sqlengine's DuckDB
// implementation is swappable in tests.
type Engine interface {
	Execute(sql string, tables map[string]*dataframe.DataFrame, current *dataframe.DataFrame) (*dataframe.DataFrame, error)
}

// Catalog holds the name→TableInfo mapping plus insertion order, guarded by
// a mutex since bubbletea's event loop discipline makes concurrent access
// unlikely but the search worker still runs on its own goroutine.
type Catalog struct {
	mu     sync.Mutex
	order  []string
	byName map[string]*dataframe.TableInfo
	engine Engine
}

// New builds an empty Catalog bound to the given SqlEngine.
func New(engine Engine) *Catalog {
	return &Catalog{
		byName: make(map[string]*dataframe.TableInfo),
		engine: engine,
	}
}

// Register assigns desired a name (disambiguating on collision with
// base, base_2, base_3, ...) and stores (frame, source) under it, returning
// the actually-assigned name.
func (c *Catalog) Register(desired string, frame *dataframe.DataFrame, source dataframe.Source) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	name := c.freeName(desired)
	info := dataframe.NewTableInfo(name, frame, source)
	c.byName[name] = info
	c.order = append(c.order, name)
	return name
}

// freeName must be called with c.mu held.
func (c *Catalog) freeName(desired string) string {
	if _, taken := c.byName[desired]; !taken {
		return desired
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d", desired, i)
		if _, taken := c.byName[candidate]; !taken {
			return candidate
		}
	}
}

// Unregister removes name from the catalog. No-op if absent. Tabs that hold
// a weak Name(name) back-reference are unaffected: they keep their own
// frame copy.
func (c *Catalog) Unregister(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byName[name]; !ok {
		return
	}
	delete(c.byName, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Get returns the TableInfo registered under name, or nil.
func (c *Catalog) Get(name string) *dataframe.TableInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.byName[name]
}

// GetByIndex returns the TableInfo at position i in insertion order, or nil
// if out of range.
func (c *Catalog) GetByIndex(i int) *dataframe.TableInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.order) {
		return nil
	}
	return c.byName[c.order[i]]
}

// Schema yields the catalog's entries in insertion order.
func (c *Catalog) Schema() []*dataframe.TableInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*dataframe.TableInfo, 0, len(c.order))
	for _, n := range c.order {
		out = append(out, c.byName[n])
	}
	return out
}

// Len returns the number of registered tables.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

// Execute runs sql against every registered table plus, if current is
// non-nil, the reserved `_` placeholder table. If sql references `_` and
// current is nil, it fails with apperr.NoCurrentFrame without invoking the
// engine.
func (c *Catalog) Execute(sql string, current *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	c.mu.Lock()
	tables := make(map[string]*dataframe.DataFrame, len(c.byName))
	for name, info := range c.byName {
		tables[name] = info.Frame
	}
	c.mu.Unlock()

	if current == nil && referencesCurrent(sql) {
		return nil, apperr.NoCurrentFrame()
	}

	frame, err := c.engine.Execute(sql, tables, current)
	if err != nil {
		return nil, apperr.SQL(err)
	}
	return frame, nil
}

// referencesCurrent reports whether sql mentions the `_` placeholder as a
// standalone identifier (not part of a longer name).
func referencesCurrent(sql string) bool {
	for i := 0; i < len(sql); i++ {
		if sql[i] != '_' {
			continue
		}
		before := byte(' ')
		if i > 0 {
			before = sql[i-1]
		}
		after := byte(' ')
		if i+1 < len(sql) {
			after = sql[i+1]
		}
		if !isIdentChar(before) && !isIdentChar(after) {
			return true
		}
	}
	return false
}

func isIdentChar(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
