// Package bootstrap embeds a small Scheme-language standard library
// layered on top of the Go-implemented primitives: the caar..cddddr
// accessor family, memq/memv/member, assq/assv/assoc, and a few
// derived list/vector procedures that are naturally expressed in
// Scheme itself rather than Go.
package bootstrap

import _ "embed"

//go:embed bootstrap.scm
var Source string
