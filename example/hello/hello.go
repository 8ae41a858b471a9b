package hello

import "github.com/mickamy/entitymap/proxy"

// Greeter says things to someone.
type Greeter interface {
	SayHello(name string) string
	SayHi(name string) string
	SayThankYou(name string) string
}

// Target is the plain Greeter.
type Target struct{}

func (Target) SayHello(name string) string    { return "Hello " + name }
func (Target) SayHi(name string) string       { return "Hi " + name }
func (Target) SayThankYou(name string) string { return "Thank You " + name }

type intercepted struct {
	sayHello    func(string) string
	sayHi       func(string) string
	sayThankYou func(string) string
}

func (g intercepted) SayHello(name string) string    { return g.sayHello(name) }
func (g intercepted) SayHi(name string) string       { return g.sayHi(name) }
func (g intercepted) SayThankYou(name string) string { return g.sayThankYou(name) }

// Intercept returns a Greeter that forwards every method of g through
// interceptors.
func Intercept(g Greeter, interceptors ...proxy.Interceptor) Greeter {
	return intercepted{
		sayHello:    proxy.Wrap("SayHello", g.SayHello, interceptors...),
		sayHi:       proxy.Wrap("SayHi", g.SayHi, interceptors...),
		sayThankYou: proxy.Wrap("SayThankYou", g.SayThankYou, interceptors...),
	}
}

// Capitalize returns a Greeter that uppercases everything g says.
// extra interceptors run outside the uppercasing.
func Capitalize(g Greeter, extra ...proxy.Interceptor) Greeter {
	return Intercept(g, append(append([]proxy.Interceptor(nil), extra...), proxy.UpperCase())...)
}
