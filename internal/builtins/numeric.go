package builtins

import (
	"github.com/cwbudde/go-scheme/internal/env"
	"github.com/cwbudde/go-scheme/internal/number"
	"github.com/cwbudde/go-scheme/internal/schemeerr"
	"github.com/cwbudde/go-scheme/internal/value"
)

func registerNumeric(g *env.Environment) {
	define(g, "+", variadicFold("+", number.NewInteger(0), func(a, b number.Number) (number.Number, error) {
		return number.Add(a, b), nil
	}))
	define(g, "*", variadicFold("*", number.NewInteger(1), func(a, b number.Number) (number.Number, error) {
		return number.Mul(a, b), nil
	}))
	define(g, "-", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := minArgs("-", args, 1); err != nil {
			return nil, err
		}
		nums, err := asNumbers("-", args)
		if err != nil {
			return nil, err
		}
		if len(nums) == 1 {
			return value.NewNumber(number.Negate(nums[0])), nil
		}
		acc := nums[0]
		for _, n := range nums[1:] {
			acc = number.Sub(acc, n)
		}
		return value.NewNumber(acc), nil
	})
	define(g, "/", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := minArgs("/", args, 1); err != nil {
			return nil, err
		}
		nums, err := asNumbers("/", args)
		if err != nil {
			return nil, err
		}
		if len(nums) == 1 {
			r, err := number.Reciprocal(nums[0])
			if err != nil {
				return nil, schemeerr.Eval("%s", err)
			}
			return value.NewNumber(r), nil
		}
		acc := nums[0]
		for _, n := range nums[1:] {
			acc, err = number.Div(acc, n)
			if err != nil {
				return nil, schemeerr.Eval("%s", err)
			}
		}
		return value.NewNumber(acc), nil
	})

	define(g, "=", comparison("=", func(c int) bool { return c == 0 }))
	define(g, "<", comparison("<", func(c int) bool { return c < 0 }))
	define(g, "<=", comparison("<=", func(c int) bool { return c <= 0 }))
	define(g, ">", comparison(">", func(c int) bool { return c > 0 }))
	define(g, ">=", comparison(">=", func(c int) bool { return c >= 0 }))

	define(g, "min", extremum("min", func(c int) bool { return c < 0 }))
	define(g, "max", extremum("max", func(c int) bool { return c > 0 }))

	define(g, "zero?", numPred("zero?", func(n number.Number) bool { return n.Sign() == 0 }))
	define(g, "positive?", numPred("positive?", func(n number.Number) bool { return n.Sign() > 0 }))
	define(g, "negative?", numPred("negative?", func(n number.Number) bool { return n.Sign() < 0 }))
	define(g, "even?", intPred("even?", func(bit0 uint) bool { return bit0 == 0 }))
	define(g, "odd?", intPred("odd?", func(bit0 uint) bool { return bit0 != 0 }))
	define(g, "exact?", numPred("exact?", func(n number.Number) bool { return n.IsExact() }))
	define(g, "inexact?", numPred("inexact?", func(n number.Number) bool { return !n.IsExact() }))
	define(g, "integer?", numPred("integer?", func(n number.Number) bool { _, ok := n.ToInteger(); return ok }))
	define(g, "rational?", numPred("rational?", func(n number.Number) bool { return true }))
	define(g, "real?", numPred("real?", func(n number.Number) bool { return true }))
	define(g, "complex?", numPred("complex?", func(n number.Number) bool { return true }))

	define(g, "abs", numUnary("abs", func(n number.Number) (number.Number, error) { return number.Abs(n), nil }))
	define(g, "sqrt", numUnary("sqrt", number.Sqrt))

	define(g, "quotient", numBinary("quotient", number.Quotient))
	define(g, "remainder", numBinary("remainder", number.Remainder))
	define(g, "modulo", numBinary("modulo", number.Modulo))
	define(g, "gcd", numBinary("gcd", number.GCD))
	define(g, "lcm", numBinary("lcm", number.LCM))

	define(g, "number->string", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("number->string", args, 1); err != nil {
			return nil, err
		}
		n, err := asNumber("number->string", args[0])
		if err != nil {
			return nil, err
		}
		return value.NewString(n.String()), nil
	})
	define(g, "string->number", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("string->number", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("string->number", args[0])
		if err != nil {
			return nil, err
		}
		n, ok := number.ParseDecimal(s.String())
		if !ok {
			return value.False, nil
		}
		return value.NewNumber(n), nil
	})
}

func asNumbers(name string, args []value.Value) ([]number.Number, error) {
	out := make([]number.Number, len(args))
	for i, a := range args {
		n, err := asNumber(name, a)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func variadicFold(name string, identity number.Number, op func(a, b number.Number) (number.Number, error)) func(value.Environment, []value.Value) (value.Value, error) {
	return func(_ value.Environment, args []value.Value) (value.Value, error) {
		nums, err := asNumbers(name, args)
		if err != nil {
			return nil, err
		}
		acc := identity
		for _, n := range nums {
			acc, err = op(acc, n)
			if err != nil {
				return nil, schemeerr.Eval("%s", err)
			}
		}
		return value.NewNumber(acc), nil
	}
}

func comparison(name string, ok func(int) bool) func(value.Environment, []value.Value) (value.Value, error) {
	return func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := minArgs(name, args, 1); err != nil {
			return nil, err
		}
		nums, err := asNumbers(name, args)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(nums); i++ {
			if !ok(number.Compare(nums[i-1], nums[i])) {
				return value.False, nil
			}
		}
		return value.True, nil
	}
}

func extremum(name string, better func(int) bool) func(value.Environment, []value.Value) (value.Value, error) {
	return func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := minArgs(name, args, 1); err != nil {
			return nil, err
		}
		nums, err := asNumbers(name, args)
		if err != nil {
			return nil, err
		}
		best := nums[0]
		inexact := !best.IsExact()
		for _, n := range nums[1:] {
			inexact = inexact || !n.IsExact()
			if better(number.Compare(n, best)) {
				best = n
			}
		}
		if inexact && best.IsExact() {
			return value.NewNumber(number.NewReal(best.AsFloat64())), nil
		}
		return value.NewNumber(best), nil
	}
}

func numPred(name string, pred func(number.Number) bool) func(value.Environment, []value.Value) (value.Value, error) {
	return func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs(name, args, 1); err != nil {
			return nil, err
		}
		n, err := asNumber(name, args[0])
		if err != nil {
			return nil, err
		}
		return value.Bool(pred(n)), nil
	}
}

// intPred builds a parity predicate (even?/odd?) from a bit-0 test on
// the argument's underlying big.Int, so it stays correct for magnitudes
// that overflow int64 — the tower is arbitrary-precision and AsInt64
// truncation would silently misreport parity above that range.
func intPred(name string, pred func(bit0 uint) bool) func(value.Environment, []value.Value) (value.Value, error) {
	return func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs(name, args, 1); err != nil {
			return nil, err
		}
		n, err := asNumber(name, args[0])
		if err != nil {
			return nil, err
		}
		i, ok := n.ToInteger()
		if !ok {
			return nil, schemeerr.Bind("%s: not an integer: %s", name, n.String())
		}
		return value.Bool(pred(i.BigInt().Bit(0))), nil
	}
}

func numUnary(name string, fn func(number.Number) (number.Number, error)) func(value.Environment, []value.Value) (value.Value, error) {
	return func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs(name, args, 1); err != nil {
			return nil, err
		}
		n, err := asNumber(name, args[0])
		if err != nil {
			return nil, err
		}
		r, err := fn(n)
		if err != nil {
			return nil, schemeerr.Eval("%s", err)
		}
		return value.NewNumber(r), nil
	}
}

func numBinary(name string, fn func(a, b number.Number) (number.Number, error)) func(value.Environment, []value.Value) (value.Value, error) {
	return func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs(name, args, 2); err != nil {
			return nil, err
		}
		a, err := asNumber(name, args[0])
		if err != nil {
			return nil, err
		}
		b, err := asNumber(name, args[1])
		if err != nil {
			return nil, err
		}
		r, err := fn(a, b)
		if err != nil {
			return nil, schemeerr.Eval("%s", err)
		}
		return value.NewNumber(r), nil
	}
}
