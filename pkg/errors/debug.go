package errors

import stdErrors "errors"

// Dump flattens an error chain into loggable parts.
type Dump struct {
	Code       Code
	TopMessage string
	Chain      []string
}

// DumpError walks the wrapped chain so handlers can log full causality
// without leaking it to clients.
func DumpError(err error) Dump {
	d := Dump{Code: CodeInternal}
	if err == nil {
		return d
	}
	d.TopMessage = err.Error()
	if typed := As(err); typed != nil {
		d.Code = typed.Code()
	}
	for cursor := err; cursor != nil; cursor = stdErrors.Unwrap(cursor) {
		d.Chain = append(d.Chain, cursor.Error())
	}
	return d
}
