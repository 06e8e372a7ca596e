package value

import "fmt"

// Pair is a mutable cons cell. Car/cdr mutation is only permitted
// when Mut is true; literals built by the parser are constructed with
// Mut false so set-car!/set-cdr! on quoted data fails per spec.md §3.
type Pair struct {
	Car, Cdr Value
	Mut      bool
}

func (*Pair) schemeValue() {}

// Mutable implements the Mutable interface.
func (p *Pair) Mutable() bool { return p.Mut }

// Cons builds a new, mutable pair.
func Cons(car, cdr Value) *Pair {
	return &Pair{Car: car, Cdr: cdr, Mut: true}
}

// List builds a proper list from vs, terminated by Null.
func List(vs ...Value) Value {
	var result Value = Null
	for i := len(vs) - 1; i >= 0; i-- {
		result = Cons(vs[i], result)
	}
	return result
}

// IsPair reports whether v is a Pair.
func IsPair(v Value) bool {
	_, ok := v.(*Pair)
	return ok
}

// IsList reports whether v is a proper list: a chain of pairs
// terminated by Null. Does not terminate on cyclic input; callers
// that might see cycles should bound their traversal.
func IsList(v Value) bool {
	for {
		switch t := v.(type) {
		case *nullType:
			return true
		case *Pair:
			v = t.Cdr
		default:
			return false
		}
	}
}

// ListToSlice converts a proper list to a Go slice. Returns an error
// if v is not a proper list.
func ListToSlice(v Value) ([]Value, error) {
	var out []Value
	for {
		switch t := v.(type) {
		case *nullType:
			return out, nil
		case *Pair:
			out = append(out, t.Car)
			v = t.Cdr
		default:
			return nil, fmt.Errorf("improper list")
		}
	}
}

// SliceToList is an alias for List, provided for readability at call
// sites that already hold a []Value.
func SliceToList(vs []Value) Value { return List(vs...) }

// ListLength returns the length of a proper list, erroring on improper lists.
func ListLength(v Value) (int, error) {
	n := 0
	for {
		switch t := v.(type) {
		case *nullType:
			return n, nil
		case *Pair:
			n++
			v = t.Cdr
		default:
			return 0, fmt.Errorf("improper list")
		}
	}
}
