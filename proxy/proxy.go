// Package proxy forwards calls to a delegate through a chain of
// interceptors. Wrap decorates a single function value; New builds a
// dynamic stand-in over every exported method of a target.
package proxy

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

var (
	// ErrUnknownMethod is returned by Proxy.Call for a method the target
	// does not export.
	ErrUnknownMethod = errors.New("proxy: unknown method")

	// ErrBadArguments is returned by Proxy.Call when the arguments do not
	// match the method signature.
	ErrBadArguments = errors.New("proxy: bad arguments")
)

// Call describes one intercepted invocation.
type Call struct {
	Method string
	Args   []reflect.Value
}

// Invoker continues an invocation with the given arguments and returns
// the delegate's results.
type Invoker func(args []reflect.Value) []reflect.Value

// Interceptor runs around an invocation. It must call next to reach the
// delegate and return results matching the delegate's signature.
type Interceptor func(call Call, next Invoker) []reflect.Value

// Wrap returns a function of the same type as fn that forwards to fn
// through interceptors, the first one outermost. name is reported as
// Call.Method. Wrap panics if fn is not a non-nil function.
func Wrap[F any](name string, fn F, interceptors ...Interceptor) F {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		panic(fmt.Sprintf("proxy: Wrap of non-func %T", fn))
	}
	wrapped := reflect.MakeFunc(v.Type(), chain(name, v, interceptors))
	return wrapped.Interface().(F) //nolint:forcetypeassert // same type as fn
}

func chain(name string, target reflect.Value, interceptors []Interceptor) func([]reflect.Value) []reflect.Value {
	next := Invoker(target.Call)
	if target.Type().IsVariadic() {
		next = target.CallSlice
	}
	for i := len(interceptors) - 1; i >= 0; i-- {
		ic, inner := interceptors[i], next
		next = func(args []reflect.Value) []reflect.Value {
			return ic(Call{Method: name, Args: args}, inner)
		}
	}
	return next
}

// Proxy is a dynamic stand-in for a target's exported method set.
// It is immutable and safe for concurrent use if the target is.
type Proxy struct {
	target  reflect.Value
	methods map[string]reflect.Value
}

// New builds a Proxy over the exported methods of target. Methods with
// pointer receivers are only visible when target is a pointer.
func New(target any, interceptors ...Interceptor) *Proxy {
	v := reflect.ValueOf(target)
	p := &Proxy{target: v, methods: make(map[string]reflect.Value)}
	if !v.IsValid() {
		return p
	}
	t := v.Type()
	for i := range t.NumMethod() {
		m := t.Method(i)
		bound := v.Method(i)
		p.methods[m.Name] = reflect.MakeFunc(bound.Type(), chain(m.Name, bound, interceptors))
	}
	return p
}

// Target returns the delegate.
func (p *Proxy) Target() any {
	if !p.target.IsValid() {
		return nil
	}
	return p.target.Interface()
}

// Methods returns the names of the proxied methods, sorted.
func (p *Proxy) Methods() []string {
	names := make([]string, 0, len(p.methods))
	for name := range p.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Func returns the intercepted method as a func value, suitable for a
// type assertion to the method's signature.
func (p *Proxy) Func(method string) (any, bool) {
	fn, ok := p.methods[method]
	if !ok {
		return nil, false
	}
	return fn.Interface(), true
}

// Call invokes method with args through the interceptor chain and returns
// its results. A nil argument stands for the zero value of a nilable
// parameter. Panics raised by the delegate propagate to the caller.
func (p *Proxy) Call(method string, args ...any) ([]any, error) {
	fn, ok := p.methods[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
	in, err := arguments(fn.Type(), method, args)
	if err != nil {
		return nil, err
	}

	out := fn.Call(in)
	results := make([]any, len(out))
	for i, r := range out {
		results[i] = r.Interface()
	}
	return results, nil
}

func arguments(ft reflect.Type, method string, args []any) ([]reflect.Value, error) {
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: %s wants at least %d, got %d", ErrBadArguments, method, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("%w: %s wants %d, got %d", ErrBadArguments, method, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		pt := paramType(ft, i)
		if a == nil {
			switch pt.Kind() {
			case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
				in[i] = reflect.Zero(pt)
				continue
			default:
				return nil, fmt.Errorf("%w: %s arg %d: nil for %s", ErrBadArguments, method, i, pt)
			}
		}
		av := reflect.ValueOf(a)
		if !av.Type().AssignableTo(pt) {
			return nil, fmt.Errorf("%w: %s arg %d: %s is not assignable to %s", ErrBadArguments, method, i, av.Type(), pt)
		}
		in[i] = av
	}
	return in, nil
}

func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}
