package script

// DemoFile is the virtual path the demo source is registered under
const DemoFile = "/file.go"

// DemoSource is the synthetic file compiled by Run. classDecorator plays the
// part of a decorator wrapping the AppComponent constructor, and the bare
// "change me" literal is what the transform rewrites.
const DemoSource = `
package app

func classDecorator[T any](constructor func(SomeClass) T) func(SomeClass) T {
	return func(test SomeClass) T { return constructor(test) }
}

type SomeClass struct{}

type AppComponent struct {
	test SomeClass
}

func NewAppComponent(test SomeClass) *AppComponent {
	return &AppComponent{test: test}
}

var appComponent = classDecorator(NewAppComponent)

var _ = "change me"
`
