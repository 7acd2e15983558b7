package logs

// Span labels one unit of work, a REPL session or one scan request.
// It travels in the context and the Handler attaches it to every record.
type Span string

type spanContextKey struct{}

var SpanKey spanContextKey
