package main

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/tdapi/tdgen/spec"
)

func (gc *tdgenContext) generateSpec(scope *scope) error {
	gc.task("Generating JSON spec")

	doc := gc.newRelativeDoc("tdgen/spec/tdapi.json")

	s := buildSpec(scope)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return errors.WithStack(err)
	}

	return doc.writeBytes(buf.Bytes())
}

func buildSpec(scope *scope) *spec.Spec {
	s := &spec.Spec{
		Classes:   []*spec.ClassSpec{},
		Objects:   []*spec.StructSpec{},
		Functions: []*spec.StructSpec{},
		Updates:   []*spec.StructSpec{},
	}

	encodeStruct := func(entry *entryInfo) []*spec.FieldSpec {
		res := []*spec.FieldSpec{}
		for _, sf := range entry.structFields {
			res = append(res, &spec.FieldSpec{
				Name:     sf.name,
				Type:     sf.tdType,
				GoName:   sf.goName,
				GoType:   sf.goType,
				Doc:      joinDoc(sf.doc),
				Optional: sf.optional,
				Required: sf.required,
			})
		}
		return res
	}

	for _, entry := range scope.entryList {
		if entry.kind == entryKindClass {
			members := []string{}
			for _, m := range scope.members(entry.typeName) {
				members = append(members, m.name)
			}
			s.Classes = append(s.Classes, &spec.ClassSpec{
				Name:     entry.name,
				GoName:   entry.typeName,
				Category: entry.category,
				Doc:      joinDoc(entry.doc),
				Members:  members,
			})
			continue
		}

		ss := &spec.StructSpec{
			Name:     entry.name,
			GoName:   entry.typeName,
			Category: entry.category,
			Doc:      joinDoc(entry.doc),
			Fields:   encodeStruct(entry),
			Class:    entry.class,
		}
		switch entry.kind {
		case entryKindFunction:
			ss.Returns = entry.returns
			ss.Sync = entry.sync
			s.Functions = append(s.Functions, ss)
		case entryKindUpdate:
			s.Updates = append(s.Updates, ss)
		default:
			s.Objects = append(s.Objects, ss)
		}
	}

	return s
}
