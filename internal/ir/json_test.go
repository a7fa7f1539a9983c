package ir

import (
	"strings"
	"testing"
)

func TestDumpJSONRoundTripsInstructionFields(t *testing.T) {
	instrs := generate(t, `let x:int = 1; print(x);`)
	doc, err := DumpJSON(instrs)
	if err != nil {
		t.Fatalf("DumpJSON: %v", err)
	}

	for _, want := range []string{
		`"kind":"Assign"`,
		`"target":"x"`,
		`"value":"1"`,
		`"type":"int"`,
		`"kind":"Print"`,
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("expected JSON dump to contain %q, got:\n%s", want, doc)
		}
	}
}

func TestDumpJSONEncodesCallArgsAndParams(t *testing.T) {
	instrs := generate(t, `function sum(a:int,b:int):int{return a+b;} print(sum(1,2));`)
	doc, err := DumpJSON(instrs)
	if err != nil {
		t.Fatalf("DumpJSON: %v", err)
	}

	if !strings.Contains(doc, `"params":["a","b"]`) {
		t.Fatalf("expected encoded FunctionStart params, got:\n%s", doc)
	}
	if !strings.Contains(doc, `"args":`) {
		t.Fatalf("expected encoded Call args, got:\n%s", doc)
	}
}

func TestCountKindCountsMatchingInstructions(t *testing.T) {
	instrs := generate(t, `let x:int=0; while(x<3){ print(x); x=x+1; }`)
	doc, err := DumpJSON(instrs)
	if err != nil {
		t.Fatalf("DumpJSON: %v", err)
	}

	if got := CountKind(doc, "Label"); got != 2 {
		t.Fatalf("CountKind(Label) = %d, want 2", got)
	}
	if got := CountKind(doc, "Print"); got != 1 {
		t.Fatalf("CountKind(Print) = %d, want 1", got)
	}
	if got := CountKind(doc, "FunctionStart"); got != 0 {
		t.Fatalf("CountKind(FunctionStart) = %d, want 0", got)
	}
}
