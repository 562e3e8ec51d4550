// Package errors provides structured, actionable error messages for the
// reconcile toolkit.
//
// Every error carries a code (e.g., "E010") that maps to a registered
// template with a short message, a longer explanation and a documentation
// link.
//
// # Error Categories
//
//   - runtime: hook misuse during render (hook outside render, order change)
//   - options: default options missing or malformed
//   - config: reconcile.json could not be read or is invalid
//   - input: CLI input documents that do not decode
//
// # Usage
//
//	err := errors.New("E010").
//	    WithSuggestion("Pass a non-nil defaults map to vango.UseOptions")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E010: Default options missing
//	//
//	//   The defaults map enumerates every recognized option and may not be nil.
//	//
//	//   Hint: Pass a non-nil defaults map to vango.UseOptions
package errors
