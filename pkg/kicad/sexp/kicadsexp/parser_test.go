package kicadsexp

import (
	"strings"
	"testing"
)

func TestLexerTokens(t *testing.T) {
	lex := NewLexer(strings.NewReader("(pad \"\" smd # comment\n \"a \\\"b\\\"\")"))

	want := []Token{
		{Type: TokenLeftParen, Value: "(", Line: 1},
		{Type: TokenSymbol, Value: "pad", Line: 1},
		{Type: TokenString, Value: "", Line: 1},
		{Type: TokenSymbol, Value: "smd", Line: 1},
		{Type: TokenString, Value: `a "b"`, Line: 2},
		{Type: TokenRightParen, Value: ")", Line: 2},
		{Type: TokenEOF, Line: 2},
	}

	for i, w := range want {
		got, err := lex.NextToken()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if got != w {
			t.Errorf("token %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestParseString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "single list",
			input: "(layer F.Cu)",
			want:  []string{"(layer F.Cu)"},
		},
		{
			name:  "nested lists",
			input: "(module m (at 0 0) (pad 1 smd (size 1 2)))",
			want:  []string{"(module m (at 0 0) (pad 1 smd (size 1 2)))"},
		},
		{
			name:  "multiple top-level expressions",
			input: "(a) (b c)\n(d)",
			want:  []string{"(a)", "(b c)", "(d)"},
		},
		{
			name:  "empty list",
			input: "()",
			want:  []string{"()"},
		},
		{
			name:  "empty input",
			input: "   \n",
			want:  nil,
		},
		{
			name:    "unbalanced open",
			input:   "(module m (at 0 0)",
			wantErr: true,
		},
		{
			name:    "unbalanced close",
			input:   "(a))",
			wantErr: true,
		},
		{
			name:    "unterminated string",
			input:   `(a "b)`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseString() expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseString() unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseString() returned %d expressions, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].String() != tt.want[i] {
					t.Errorf("expression %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseStringLargeInput(t *testing.T) {
	// Larger than the bufio buffer, so the reader is consulted repeatedly.
	var b strings.Builder
	b.WriteString("(module big")
	for i := 0; i < 2000; i++ {
		b.WriteString(" (pad 1 smd roundrect (at 0 0) (size 1 1))")
	}
	b.WriteString(")")

	got, err := ParseString(b.String())
	if err != nil {
		t.Fatalf("ParseString() unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ParseString() returned %d expressions, want 1", len(got))
	}
	if n := got[0].LeafCount(); n != 2002 {
		t.Errorf("LeafCount() = %d, want 2002", n)
	}
}

func TestParseOne(t *testing.T) {
	if _, err := ParseOne(strings.NewReader("(a) (b)")); err == nil {
		t.Errorf("ParseOne() with two expressions expected error")
	}
	if _, err := ParseOne(strings.NewReader("")); err == nil {
		t.Errorf("ParseOne() with no expressions expected error")
	}
	s, err := ParseOne(strings.NewReader("(a b)"))
	if err != nil {
		t.Fatalf("ParseOne() unexpected error: %v", err)
	}
	if s.IsLeaf() || s.LeafCount() != 2 {
		t.Errorf("ParseOne() = %s", s)
	}
}

func TestParseErrorLine(t *testing.T) {
	_, err := ParseString("(module m\n  (pad 1\n")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should name the line of the innermost open list", err)
	}
}

func TestListAccessors(t *testing.T) {
	l := NewList(Symbol("at"), Symbol("1"), Symbol("2"))

	if l.Len() != 3 || l.Get(1) != Symbol("1") || l.Get(3) != nil {
		t.Errorf("Get/Len mismatch on %s", l)
	}
	if l.Head() != Symbol("at") {
		t.Errorf("Head() = %v", l.Head())
	}
	if tail := l.Tail(); tail == nil || tail.String() != "(1 2)" {
		t.Errorf("Tail() = %v", tail)
	}
	if NewList(Symbol("x")).Tail() != nil {
		t.Errorf("Tail() of single-element list should be nil")
	}
}
