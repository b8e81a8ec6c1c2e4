package main

import (
	"go/format"
	"strings"

	"github.com/pkg/errors"
)

const generatedHeader = "// Code generated by tdgen. DO NOT EDIT."

const modulePath = "github.com/tdkit/tdkit"

func (gc *tdgenContext) generateGoCode(scope *scope) error {
	gc.task("Generating Go code")

	if err := gc.generateCodec(scope); err != nil {
		return err
	}
	return gc.generateMessages(scope)
}

func (gc *tdgenContext) generateCodec(scope *scope) error {
	doc := gc.newRelativeDoc("zz_codec.go")

	doc.line(generatedHeader)
	doc.line("")
	doc.line("package tdapi")
	doc.line("")
	doc.line("import (")
	doc.line(`	"encoding/json"`)
	doc.line("")
	doc.line(`	"github.com/pkg/errors"`)
	doc.line(")")
	doc.line("")

	doc.line("// Classes")
	doc.line("const (")
	for _, e := range scope.entryList {
		if e.kind == entryKindClass {
			doc.line("Class%s = %q", e.typeName, e.typeName)
		}
	}
	doc.line(")")
	doc.line("")

	doc.line("// Types")
	doc.line("const (")
	for _, e := range scope.entryList {
		if e.kind != entryKindClass {
			doc.line("Type%s = %q", e.typeName, e.name)
		}
	}
	doc.line(")")
	doc.line("")

	doc.line("var constructors = map[string]func() Object{")
	for _, e := range scope.entryList {
		if e.kind != entryKindClass {
			doc.line("Type%s: func() Object { return new(%s) },", e.typeName, e.typeName)
		}
	}
	doc.line("}")
	doc.line("")

	doc.line("var functionResults = map[string]string{")
	for _, e := range scope.entryList {
		if e.kind == entryKindFunction {
			doc.line("Type%s: %q,", e.typeName, e.returns)
		}
	}
	doc.line("}")
	doc.line("")

	for _, e := range scope.entryList {
		if e.kind != entryKindClass {
			continue
		}
		c := e.typeName
		doc.line("// Unmarshal%s decodes a %s value. A null value decodes to nil.", c, c)
		doc.line("func Unmarshal%s(data []byte) (%s, error) {", c, c)
		doc.line("o, err := UnmarshalObject(data)")
		doc.line("if err != nil || o == nil {")
		doc.line("return nil, err")
		doc.line("}")
		doc.line("v, ok := o.(%s)", c)
		doc.line("if !ok {")
		doc.line("return nil, classMismatch(o, Class%s)", c)
		doc.line("}")
		doc.line("return v, nil")
		doc.line("}")
		doc.line("")
	}

	for _, e := range scope.entryList {
		if e.kind == entryKindClass {
			continue
		}
		g := e.typeName
		doc.line("//------------------------------")
		doc.line("// %s", g)
		doc.line("//------------------------------")
		doc.line("")
		doc.line("func (*%s) ObjectType() string { return Type%s }", g, g)
		if e.kind == entryKindFunction {
			doc.line("func (*%s) isFunction() {}", g)
		}
		if e.class != "" {
			doc.line("func (*%s) is%s() {}", g, e.class)
		}
		doc.line("")

		doc.line("func (o %s) MarshalJSON() ([]byte, error) {", g)
		doc.line("type stub %s", g)
		doc.line("return marshalTagged(Type%s, stub(o))", g)
		doc.line("}")
		doc.line("")

		genUnmarshal(doc, scope, e)

		if e.kind == entryKindFunction {
			genBuilders(doc, e)
		}
	}

	doc.commit()
	return writeGo(doc)
}

// genUnmarshal emits a custom UnmarshalJSON for objects holding class
// values, since encoding/json can't pick a concrete type for an interface.
func genUnmarshal(doc *document, scope *scope, e *entryInfo) {
	var classFields []*structField
	for _, sf := range e.structFields {
		if _, _, ok := scope.classField(sf); ok {
			classFields = append(classFields, sf)
		}
	}
	if len(classFields) == 0 {
		return
	}

	g := e.typeName
	doc.line("func (o *%s) UnmarshalJSON(data []byte) error {", g)
	doc.line("type stub %s", g)
	doc.line("var tmp struct {")
	doc.line("stub")
	for _, sf := range classFields {
		_, slice, _ := scope.classField(sf)
		rt := "json.RawMessage"
		if slice {
			rt = "[]json.RawMessage"
		}
		doc.line("%s %s `json:%q`", sf.goName, rt, sf.name)
	}
	doc.line("}")
	doc.line("if err := json.Unmarshal(data, &tmp); err != nil {")
	doc.line("return errors.WithStack(err)")
	doc.line("}")
	doc.line("*o = %s(tmp.stub)", g)
	doc.line("")
	doc.line("var err error")
	for _, sf := range classFields {
		class, slice, _ := scope.classField(sf)
		if slice {
			doc.line("if o.%s, err = unmarshalSlice(tmp.%s, Unmarshal%s); err != nil {", sf.goName, sf.goName, class)
		} else {
			doc.line("if o.%s, err = Unmarshal%s(tmp.%s); err != nil {", sf.goName, class, sf.goName)
		}
		doc.line("return errors.WithMessage(err, %q)", e.name+"."+sf.name)
		doc.line("}")
	}
	doc.line("return nil")
	doc.line("}")
	doc.line("")
}

func genBuilders(doc *document, e *entryInfo) {
	g := e.typeName
	req := e.requiredFields()

	var params []string
	for _, sf := range req {
		params = append(params, paramName(sf.goName)+" "+sf.goType)
	}

	doc.line("// New%s returns a %s with its required fields set.", g, e.name)
	doc.line("func New%s(%s) *%s {", g, strings.Join(params, ", "), g)
	if len(req) == 0 {
		doc.line("return &%s{}", g)
	} else {
		doc.line("return &%s{", g)
		for _, sf := range req {
			doc.line("%s: %s,", sf.goName, paramName(sf.goName))
		}
		doc.line("}")
	}
	doc.line("}")
	doc.line("")

	for _, sf := range e.structFields {
		doc.line("func (o *%s) With%s(v %s) *%s {", g, sf.goName, sf.goType, g)
		doc.line("o.%s = v", sf.goName)
		doc.line("return o")
		doc.line("}")
		doc.line("")
	}
}

func (gc *tdgenContext) generateMessages(scope *scope) error {
	doc := gc.newRelativeDoc("messages/zz_messages.go")

	doc.line(generatedHeader)
	doc.line("")
	doc.line("package messages")
	doc.line("")
	doc.line("import (")
	doc.line(`	"%s/tdapi"`, modulePath)
	doc.line(")")
	doc.line("")

	for _, category := range scope.categoryList {
		var entries []*entryInfo
		for _, e := range scope.categories[category].entries {
			if e.kind == entryKindFunction || e.kind == entryKindUpdate {
				entries = append(entries, e)
			}
		}
		if len(entries) == 0 {
			continue
		}

		doc.line("//==============================")
		doc.line("// %s", scope.categoryTitle(category))
		doc.line("//==============================")
		doc.line("")

		for _, e := range entries {
			g := e.typeName
			switch e.kind {
			case entryKindFunction:
				rt := "*tdapi." + e.returns
				decode := "concrete[tdapi." + e.returns + "](tdapi.Type" + e.returns + ")"
				if scope.isClass(e.returns) {
					rt = "tdapi." + e.returns
					decode = "tdapi.Unmarshal" + e.returns
				}
				doc.line("// %s (Function)", g)
				doc.line("var %s = &RequestDef[*tdapi.%s, %s]{", g, g, rt)
				doc.line("Type: tdapi.Type%s,", g)
				doc.line("Sync: %v,", e.sync)
				doc.line("decode: %s,", decode)
				doc.line("}")
			case entryKindUpdate:
				doc.line("// %s (Update)", g)
				doc.line("var %s = &UpdateDef[*tdapi.%s]{", g, g)
				doc.line("Type: tdapi.Type%s,", g)
				doc.line("decode: concrete[tdapi.%s](tdapi.Type%s),", g, g)
				doc.line("}")
			}
			doc.line("")
		}
	}

	doc.commit()
	return writeGo(doc)
}

// writeGo runs the document through gofmt, which also takes care of
// indentation and alignment.
func writeGo(doc *document) error {
	src, err := format.Source([]byte(doc.doc))
	if err != nil {
		return errors.Wrapf(err, "formatting %s", doc.name)
	}
	return doc.writeBytes(src)
}
