// Package scheme is the public embedding API: construct an
// Interpreter, feed it source text, and read back results — grounded
// on go-dws's pkg/dwscript.New(opts...) functional-options
// constructor shape.
package scheme

import (
	"bufio"
	"io"
	"os"

	"github.com/cwbudde/go-scheme/internal/bootstrap"
	"github.com/cwbudde/go-scheme/internal/builtins"
	"github.com/cwbudde/go-scheme/internal/env"
	"github.com/cwbudde/go-scheme/internal/parser"
	"github.com/cwbudde/go-scheme/internal/printer"
	"github.com/cwbudde/go-scheme/internal/schemeerr"
	"github.com/cwbudde/go-scheme/internal/value"
	"github.com/cwbudde/go-scheme/internal/vm"
)

// Interpreter is a ready-to-use Scheme evaluator: a global environment
// pre-populated with every built-in and bootstrap-library binding.
type Interpreter struct {
	vm     *vm.VM
	global *env.Environment
}

// Option configures an Interpreter at construction time.
type Option func(*config)

type config struct {
	stdout    io.Writer
	stdin     io.Reader
	maxFrames int
}

// WithOutput sets the stream current-output-port/write/display/newline
// write to. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.stdout = w }
}

// WithInput sets the stream current-input-port reads from. Defaults
// to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(c *config) { c.stdin = r }
}

// WithMaxFrames bounds the VM's explicit frame stack, failing
// non-tail-recursive evaluations that exceed it rather than growing
// host memory without bound. 0 (the default) leaves it unbounded;
// proper tail calls are never affected regardless of the limit.
func WithMaxFrames(n int) Option {
	return func(c *config) { c.maxFrames = n }
}

// New builds an Interpreter, registers every built-in procedure, and
// loads the embedded bootstrap library.
func New(opts ...Option) (*Interpreter, error) {
	cfg := config{stdout: os.Stdout, stdin: os.Stdin}
	for _, opt := range opts {
		opt(&cfg)
	}

	machine := vm.New(cfg.stdout)
	if cfg.maxFrames > 0 {
		machine.SetMaxFrames(cfg.maxFrames)
	}
	builtins.Register(machine.Global, machine, builtins.Ports{
		Stdin:  bufio.NewReader(cfg.stdin),
		Stdout: cfg.stdout,
	})

	interp := &Interpreter{vm: machine, global: machine.Global}
	if _, err := interp.LoadString(bootstrap.Source); err != nil {
		return nil, err
	}
	return interp, nil
}

// LoadString parses src as a sequence of top-level forms and
// evaluates each in turn, returning the value of the last.
func (in *Interpreter) LoadString(src string) (value.Value, error) {
	p := parser.New(src)
	var result value.Value = value.Void
	for {
		form, err := p.ParseOne()
		if err != nil {
			if pe, ok := err.(*parser.ParseError); ok {
				return nil, schemeerr.EvalAt(pe.Pos, "%s", pe.Msg)
			}
			return nil, err
		}
		if form == value.Eof {
			return result, nil
		}
		result, err = in.vm.Run(in.global, form)
		if err != nil {
			return nil, err
		}
	}
}

// Eval evaluates a single already-parsed Value.
func (in *Interpreter) Eval(v value.Value) (value.Value, error) {
	return in.vm.Run(in.global, v)
}

// Print renders v in its canonical written form.
func (in *Interpreter) Print(v value.Value) string {
	return printer.ToScheme(v)
}

// Depth reports the high-water mark of the VM's explicit frame stack,
// exposed so callers (and tests) can assert deep tail recursion stays
// bounded.
func (in *Interpreter) Depth() int {
	return in.vm.Depth()
}

// SetTracing toggles the VM's debug trace flag.
func (in *Interpreter) SetTracing(on bool) {
	in.vm.SetTracing(on)
}
