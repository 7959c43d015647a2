package paramfile

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// File is a parsed parameter file.
type File struct {
	Entries []*Entry `@@*`
}

// Entry is one "key = value" line.
type Entry struct {
	Pos   lexer.Position
	Key   string `@Ident Assign`
	Value *Value `@@`
}

// Value is the right-hand side of an entry. Exactly one field is set.
type Value struct {
	Bool   *Boolean `  @("true" | "false")`
	Number *float64 `| @Number`
	Str    *string  `| @String`
	Ident  *string  `| @Ident`
}

// Boolean captures the true/false keywords.
type Boolean bool

func (b *Boolean) Capture(values []string) error {
	*b = values[0] == "true"
	return nil
}

// Text returns the value as a string. Numbers and booleans are rejected so
// that "ref = 1" is not silently read as a name.
func (v *Value) Text() (string, bool) {
	switch {
	case v.Str != nil:
		return *v.Str, true
	case v.Ident != nil:
		return *v.Ident, true
	}
	return "", false
}

func (v *Value) String() string {
	switch {
	case v.Bool != nil:
		return fmt.Sprint(bool(*v.Bool))
	case v.Number != nil:
		return fmt.Sprint(*v.Number)
	case v.Str != nil:
		return fmt.Sprintf("%q", *v.Str)
	case v.Ident != nil:
		return *v.Ident
	}
	return "<empty>"
}
