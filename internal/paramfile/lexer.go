package paramfile

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ParamLexer tokenizes footprint parameter files:
//
//	# comment
//	designator = USBC
//	reverse    = true
//	rotation   = -90
//	at         = "(at 10 20 90)"
//	A          = GND
//	B          = +5V
//
// Words need at least one letter, so net names such as +5V or 3V3 lex as a
// single Ident while -90 stays a Number.
var ParamLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Ident", Pattern: `[-+]?[0-9.]*[A-Za-z_][A-Za-z0-9_.+\-]*`},
	{Name: "Number", Pattern: `[-+]?(?:\d+\.?\d*|\.\d+)`},
	{Name: "Assign", Pattern: `=`},
})
