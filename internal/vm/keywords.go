package vm

import "github.com/cwbudde/go-scheme/internal/symbol"

// Special-form keywords are recognized by fixed name, unconditionally
// — this interpreter has no define-syntax/hygienic macros (spec.md
// Non-goals), so unlike a fully hygienic Scheme these names cannot be
// shadowed by a lexical binding of the same name.
var (
	kwQuote           = symbol.Of("quote")
	kwQuasiquote      = symbol.Of("quasiquote")
	kwUnquote         = symbol.Of("unquote")
	kwUnquoteSplicing = symbol.Of("unquote-splicing")
	kwIf              = symbol.Of("if")
	kwSet             = symbol.Of("set!")
	kwDefine          = symbol.Of("define")
	kwLambda          = symbol.Of("lambda")
	kwDelay           = symbol.Of("delay")
	kwCond            = symbol.Of("cond")
	kwCase            = symbol.Of("case")
	kwWhen            = symbol.Of("when")
	kwUnless          = symbol.Of("unless")
	kwElse            = symbol.Of("else")
	kwArrow           = symbol.Of("=>")
	kwLet             = symbol.Of("let")
	kwLetStar         = symbol.Of("let*")
	kwLetrec          = symbol.Of("letrec")
	kwDo              = symbol.Of("do")
	kwAnd             = symbol.Of("and")
	kwOr              = symbol.Of("or")
	kwBegin           = symbol.Of("begin")
	kwCallCC          = symbol.Of("call/cc")
	kwCallWithCC      = symbol.Of("call-with-current-continuation")
	kwTrace           = symbol.Of("trace")
)
