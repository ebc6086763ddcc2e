package patchnotes

// Executor runs callbacks on a designated goroutine, such as a UI loop.
type Executor interface {
	Execute(fn func())
}

// ExecutorFunc adapts an ordinary function to the Executor interface.
type ExecutorFunc func(fn func())

// Execute calls f(fn).
func (f ExecutorFunc) Execute(fn func()) {
	f(fn)
}

// InlineExecutor returns an Executor that runs callbacks on the calling goroutine.
func InlineExecutor() Executor {
	return ExecutorFunc(func(fn func()) { fn() })
}
