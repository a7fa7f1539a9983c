package ir

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DumpJSON renders instrs as a JSON array, one object per instruction,
// built incrementally with sjson rather than a hand-rolled struct/json.Marshal
// pair — useful for the CLI's debug tooling and for external consumers that
// want the IR listing without parsing its textual form.
func DumpJSON(instrs []Instruction) (string, error) {
	doc := "[]"
	for i, in := range instrs {
		obj, err := instructionJSON(in)
		if err != nil {
			return "", err
		}
		doc, err = sjson.SetRaw(doc, strconv.Itoa(i), obj)
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}

func instructionJSON(in Instruction) (string, error) {
	obj := "{}"
	var err error
	set := func(key, value string) {
		if err != nil || value == "" {
			return
		}
		obj, err = sjson.Set(obj, key, value)
	}

	set("kind", in.Kind.String())
	set("target", in.Target)
	set("value", in.Value)
	set("type", in.Type)
	set("label", in.Label)
	set("left", in.Left)
	set("right", in.Right)
	set("operand", in.Operand)
	set("op", in.Op)
	set("name", in.Name)
	if err != nil {
		return "", err
	}

	if len(in.Args) > 0 {
		if obj, err = sjson.Set(obj, "args", in.Args); err != nil {
			return "", err
		}
	}
	if len(in.Params) > 0 {
		if obj, err = sjson.Set(obj, "params", in.Params); err != nil {
			return "", err
		}
	}
	return obj, nil
}

// CountKind queries a DumpJSON document for how many instructions of the
// given Kind (by its String() name, e.g. "Print") it contains.
func CountKind(doc, kind string) int {
	result := gjson.Get(doc, `#(kind=="`+kind+`")#`)
	return len(result.Array())
}
