package procenv

import (
	"fmt"
	"iter"

	"github.com/pgavlin/procenv/osstr"
)

// Snapshot iterators wrap a sequence captured at one instant. The capture
// is owned by the iterator and never changes; mutations of the live
// environment after capture are not reflected. Iterators are not safe for
// concurrent use.

// A VarsOsIter iterates over a snapshot of environment variables, created
// by VarsOs.
type VarsOsIter struct {
	pairs []VarPair
	i     int
}

// Next returns the next variable in the snapshot.
func (it *VarsOsIter) Next() (key, value osstr.String, ok bool) {
	if it.i >= len(it.pairs) {
		return "", "", false
	}
	p := it.pairs[it.i]
	it.i++
	return p.Key, p.Value, true
}

// All returns a range iterator over the remaining variables. Ranging does
// not consume the snapshot.
func (it *VarsOsIter) All() iter.Seq2[osstr.String, osstr.String] {
	return func(yield func(osstr.String, osstr.String) bool) {
		for _, p := range it.pairs[it.i:] {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// A VarsIter iterates over a snapshot of environment variables decoded as
// Unicode, created by Vars.
type VarsIter struct {
	inner VarsOsIter
}

// Next returns the next variable in the snapshot. It panics if the
// variable's name or value is not valid Unicode.
func (it *VarsIter) Next() (key, value string, ok bool) {
	k, v, ok := it.inner.Next()
	if !ok {
		return "", "", false
	}
	return decodeVar(k, v)
}

// All returns a range iterator over the remaining variables, with the same
// panic contract as Next.
func (it *VarsIter) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for k, v := range it.inner.All() {
			ks, vs, _ := decodeVar(k, v)
			if !yield(ks, vs) {
				return
			}
		}
	}
}

func decodeVar(k, v osstr.String) (key, value string, ok bool) {
	key, err := k.Unicode()
	if err != nil {
		panic(fmt.Errorf("environment variable name %q is not valid unicode", k.Lossy()))
	}
	value, err = v.Unicode()
	if err != nil {
		panic(fmt.Errorf("environment variable %q is not valid unicode: %q", key, v.Lossy()))
	}
	return key, value, true
}

// An ArgsOsIter iterates over a snapshot of the process's arguments,
// created by ArgsOs. Arguments can be consumed from either end.
type ArgsOsIter struct {
	args []osstr.String
	head int
	tail int
}

// Len returns the exact number of arguments remaining.
func (it *ArgsOsIter) Len() int {
	return it.tail - it.head
}

// Next returns the next argument from the front of the snapshot.
func (it *ArgsOsIter) Next() (osstr.String, bool) {
	if it.head >= it.tail {
		return "", false
	}
	arg := it.args[it.head]
	it.head++
	return arg, true
}

// NextBack returns the next argument from the back of the snapshot.
// Alternating Next and NextBack visits every argument exactly once.
func (it *ArgsOsIter) NextBack() (osstr.String, bool) {
	if it.head >= it.tail {
		return "", false
	}
	it.tail--
	return it.args[it.tail], true
}

// All returns a range iterator over the remaining arguments, front to back.
// Ranging does not consume the snapshot.
func (it *ArgsOsIter) All() iter.Seq[osstr.String] {
	return func(yield func(osstr.String) bool) {
		for _, arg := range it.args[it.head:it.tail] {
			if !yield(arg) {
				return
			}
		}
	}
}

// An ArgsIter iterates over a snapshot of the process's arguments decoded
// as Unicode, created by Args.
type ArgsIter struct {
	inner ArgsOsIter
}

// Len returns the exact number of arguments remaining.
func (it *ArgsIter) Len() int {
	return it.inner.Len()
}

// Next returns the next argument from the front of the snapshot. It panics
// if the argument is not valid Unicode.
func (it *ArgsIter) Next() (string, bool) {
	arg, ok := it.inner.Next()
	if !ok {
		return "", false
	}
	return decodeArg(arg), true
}

// NextBack returns the next argument from the back of the snapshot, with
// the same panic contract as Next.
func (it *ArgsIter) NextBack() (string, bool) {
	arg, ok := it.inner.NextBack()
	if !ok {
		return "", false
	}
	return decodeArg(arg), true
}

// All returns a range iterator over the remaining arguments, with the same
// panic contract as Next.
func (it *ArgsIter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for arg := range it.inner.All() {
			if !yield(decodeArg(arg)) {
				return
			}
		}
	}
}

func decodeArg(arg osstr.String) string {
	s, err := arg.Unicode()
	if err != nil {
		panic(fmt.Errorf("argument %q is not valid unicode", arg.Lossy()))
	}
	return s
}
