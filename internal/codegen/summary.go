package codegen

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Summary describes the artifacts a Generate call produced: how many
// global variables, interned string/float literals, and functions it
// emitted. The CLI's --verbose path reports this after codegen.
type Summary struct {
	Variables int
	Strings   int
	Floats    int
	Functions int
}

// Summary reports the counts collected by the GenerateInstructions call
// on g.
func (g *Generator) Summary() Summary {
	return Summary{
		Variables: len(g.varOrder),
		Strings:   len(g.stringOrder),
		Floats:    len(g.floatOrder),
		Functions: len(g.definedFunctions),
	}
}

// String renders the summary through a message.Printer rather than bare
// fmt.Sprintf, so counts pick up locale-appropriate grouping.
func (s Summary) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v variable(s), %v string literal(s), %v float literal(s), %v function(s)",
		number.Decimal(s.Variables), number.Decimal(s.Strings), number.Decimal(s.Floats), number.Decimal(s.Functions))
}
