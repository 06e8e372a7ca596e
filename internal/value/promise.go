package value

// Promise backs delay/force: a captured environment plus an
// unevaluated body, memoized on first force (spec.md §3, §9).
type Promise struct {
	Env    Environment
	Body   Value
	Forced bool
	Result Value
}

func (*Promise) schemeValue() {}
