package lexer

import "testing"

func TestNextTokenBasic(t *testing.T) {
	input := `let x:int = 1;
print(x);`

	tests := []struct {
		wantType TokenType
		wantLit  string
	}{
		{LET, "let"}, {IDENT, "x"}, {COLON, ":"}, {TYPE_INT, "int"},
		{ASSIGN, "="}, {INT, "1"}, {SEMICOLON, ";"},
		{PRINT, "print"}, {LPAREN, "("}, {IDENT, "x"}, {RPAREN, ")"}, {SEMICOLON, ";"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.wantType {
			t.Fatalf("token %d: type = %s, want %s", i, tok.Type, tt.wantType)
		}
		if tok.Literal != tt.wantLit {
			t.Fatalf("token %d: literal = %q, want %q", i, tok.Literal, tt.wantLit)
		}
	}
}

func TestNextTokenOperators(t *testing.T) {
	l := New(`+ - * / ! < > == != && ||`)
	want := []TokenType{PLUS, MINUS, STAR, SLASH, BANG, LT, GT, EQ, NEQ, AND, OR, EOF}
	for i, typ := range want {
		if tok := l.NextToken(); tok.Type != typ {
			t.Fatalf("token %d: type = %s, want %s", i, tok.Type, typ)
		}
	}
}

func TestNextTokenStringLiteralNotDecoded(t *testing.T) {
	l := New(`"hello\nworld"`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("type = %s, want STRING", tok.Type)
	}
	if tok.Literal != `hello\nworld` {
		t.Fatalf("literal = %q, want raw escape sequence preserved", tok.Literal)
	}
}

func TestNextTokenLineComment(t *testing.T) {
	l := New("let x:int = 1; // trailing comment\nprint(x);")
	var got []TokenType
	for {
		tok := l.NextToken()
		got = append(got, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	if got[len(got)-1] != EOF {
		t.Fatalf("expected stream to terminate with EOF")
	}
	want := []TokenType{LET, IDENT, COLON, TYPE_INT, ASSIGN, INT, SEMICOLON, PRINT, LPAREN, IDENT, RPAREN, SEMICOLON, EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %v (the comment should produce no tokens)", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: type = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNextTokenPositions(t *testing.T) {
	l := New("let x\n= 1;")
	tok := l.NextToken() // let
	if tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Fatalf("let pos = %v, want 1:1", tok.Pos)
	}
	l.NextToken() // x
	tok = l.NextToken() // =
	if tok.Pos.Line != 2 {
		t.Fatalf("= pos line = %d, want 2", tok.Pos.Line)
	}
}
