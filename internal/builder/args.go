package builder

// Args holds the extracted argument values of one command invocation, in
// declaration order. Accessors return the zero value on index or type
// mismatch; declared argument parsers guarantee the dynamic types.
type Args struct {
	names  []string
	values []any
}

// Len returns the number of extracted arguments.
func (a Args) Len() int { return len(a.values) }

// Name returns the declared name of argument i.
func (a Args) Name(i int) string {
	if i < 0 || i >= len(a.names) {
		return ""
	}
	return a.names[i]
}

// Value returns the raw extracted value of argument i.
func (a Args) Value(i int) any {
	if i < 0 || i >= len(a.values) {
		return nil
	}
	return a.values[i]
}

// String returns argument i as a string.
func (a Args) String(i int) string {
	s, _ := a.Value(i).(string)
	return s
}

// Int returns argument i as an int64.
func (a Args) Int(i int) int64 {
	n, _ := a.Value(i).(int64)
	return n
}

// Float returns argument i as a float64.
func (a Args) Float(i int) float64 {
	f, _ := a.Value(i).(float64)
	return f
}

// Bool returns argument i as a bool.
func (a Args) Bool(i int) bool {
	b, _ := a.Value(i).(bool)
	return b
}
