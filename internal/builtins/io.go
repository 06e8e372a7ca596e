package builtins

import (
	"io"

	"github.com/cwbudde/go-scheme/internal/env"
	"github.com/cwbudde/go-scheme/internal/printer"
	"github.com/cwbudde/go-scheme/internal/schemeerr"
	"github.com/cwbudde/go-scheme/internal/value"
)

func registerIO(g *env.Environment, stdin, stdout *value.Port) {
	define(g, "current-input-port", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("current-input-port", args, 0); err != nil {
			return nil, err
		}
		return stdin, nil
	})
	define(g, "current-output-port", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("current-output-port", args, 0); err != nil {
			return nil, err
		}
		return stdout, nil
	})
	define(g, "eof-object", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("eof-object", args, 0); err != nil {
			return nil, err
		}
		return value.Eof, nil
	})
	// eof is bound directly to the sentinel value (not a procedure),
	// so code can write it as a constant rather than calling
	// eof-object.
	g.Define(symOf("eof"), value.Eof)
	define(g, "void", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("void", args, 0); err != nil {
			return nil, err
		}
		return value.Void, nil
	})
	define(g, "newline", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := rangeArgs("newline", args, 0, 1); err != nil {
			return nil, err
		}
		w, err := outputWriter("newline", args, 0, stdout)
		if err != nil {
			return nil, err
		}
		io.WriteString(w, "\n")
		return value.Void, nil
	})
	define(g, "write-char", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := rangeArgs("write-char", args, 1, 2); err != nil {
			return nil, err
		}
		c, err := asChar("write-char", args[0])
		if err != nil {
			return nil, err
		}
		w, err := outputWriter("write-char", args, 1, stdout)
		if err != nil {
			return nil, err
		}
		io.WriteString(w, string(c))
		return value.Void, nil
	})
	define(g, "write", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := rangeArgs("write", args, 1, 2); err != nil {
			return nil, err
		}
		w, err := outputWriter("write", args, 1, stdout)
		if err != nil {
			return nil, err
		}
		io.WriteString(w, printer.ToScheme(args[0]))
		return value.Void, nil
	})
	define(g, "display", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := rangeArgs("display", args, 1, 2); err != nil {
			return nil, err
		}
		w, err := outputWriter("display", args, 1, stdout)
		if err != nil {
			return nil, err
		}
		io.WriteString(w, displayString(args[0]))
		return value.Void, nil
	})
}

// outputWriter resolves the optional trailing port argument at index
// idx, defaulting to def when absent.
func outputWriter(name string, args []value.Value, idx int, def *value.Port) (io.Writer, error) {
	if len(args) <= idx {
		return def.Writer, nil
	}
	p, ok := args[idx].(*value.Port)
	if !ok || p.Dir != value.OutputPort {
		return nil, schemeerr.Bind("%s: not an output port", name)
	}
	return p.Writer, nil
}

// displayString renders v the way `display` does: like write, except
// strings and characters print their raw content rather than their
// read syntax.
func displayString(v value.Value) string {
	switch t := v.(type) {
	case *value.String:
		return t.String()
	case *value.Character:
		return string(t.R)
	default:
		return printer.ToScheme(v)
	}
}
