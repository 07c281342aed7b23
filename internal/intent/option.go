package intent

// Value is the tagged union a parsed option resolves to: either a string
// (from --name=value) or a bare flag (from --name). Modeled as a struct
// rather than `any` so handlers read it through narrow accessors instead
// of type-switching on interface{}.
type Value struct {
	str    string
	isFlag bool
}

// flagValue is the sentinel for a bare "--name" flag option.
var flagValue = Value{isFlag: true}

// StringValue wraps s as a string-valued option.
func StringValue(s string) Value { return Value{str: s} }

// IsFlag reports whether v is a bare boolean flag (--name with no "=").
func (v Value) IsFlag() bool { return v.isFlag }

// String returns the string payload and true, or ("", false) if v is a
// flag rather than a string value.
func (v Value) String() (string, bool) {
	if v.isFlag {
		return "", false
	}
	return v.str, true
}

// Options is the parsed --name=value / --name map. Keys are option
// names without the leading "--".
type Options map[string]Value

// StringValue looks up name and returns its string payload.
func (o Options) StringValue(name string) (string, bool) {
	v, ok := o[name]
	if !ok {
		return "", false
	}
	return v.String()
}

// IsFlag reports whether name is present and is a bare flag.
func (o Options) IsFlag(name string) bool {
	v, ok := o[name]
	return ok && v.IsFlag()
}

// Has reports whether name was supplied in any form.
func (o Options) Has(name string) bool {
	_, ok := o[name]
	return ok
}
