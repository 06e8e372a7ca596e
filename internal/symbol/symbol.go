// Package symbol implements the process-wide symbol intern table.
//
// R5RS symbols read from source are case-folded and interned: two
// symbols with the same folded name are the identical object, so eq?
// on them is true. Symbols created by gensym are uninterned and equal
// only to themselves.
package symbol

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Symbol is an interpreter-wide interned identifier, or an uninterned
// symbol produced by gensym. Two Symbol pointers are eq? iff they are
// the same pointer (interning guarantees this for same-named symbols).
type Symbol struct {
	Name       string // original spelling for uninterned symbols; folded name for interned ones
	uninterned uint64 // 0 for interned symbols, nonzero unique tag otherwise
}

// Interned reports whether s came from the process-wide table.
func (s *Symbol) Interned() bool {
	return s.uninterned == 0
}

func (s *Symbol) String() string {
	if s.uninterned != 0 {
		return fmt.Sprintf("#<uninterned-symbol %s>", s.Name)
	}
	return s.Name
}

var (
	mu     sync.Mutex
	table  = make(map[string]*Symbol)
	gensym uint64
)

// Fold case-folds a name the way symbol interning folds source
// identifiers, using Unicode-aware folding rather than strings.ToLower.
func Fold(name string) string {
	return folder.String(name)
}

// Of returns the interned symbol for name, case-folding it first.
// Repeated calls with names that fold to the same string return the
// identical *Symbol.
func Of(name string) *Symbol {
	folded := Fold(name)
	mu.Lock()
	defer mu.Unlock()
	if sym, ok := table[folded]; ok {
		return sym
	}
	sym := &Symbol{Name: folded}
	table[folded] = sym
	return sym
}

// Gensym returns a fresh uninterned symbol. Each call produces a
// distinct symbol, even across calls with the same hint, so that
// (eq? (gensym) (gensym)) is always false.
func Gensym(hint string) *Symbol {
	id := atomic.AddUint64(&gensym, 1)
	if hint == "" {
		hint = "g"
	}
	return &Symbol{Name: fmt.Sprintf("%s%d", hint, id), uninterned: id}
}
