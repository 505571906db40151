// Package constant contains the shared constant types of approxkit.
package constant

// Error is an error implementation that allows declaring error values
// with the `const` keyword.
//
//	const ErrSomething constant.Error = "something is an error"
type Error string

func (err Error) Error() string { return string(err) }
