package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/fatih/structtag"
	"github.com/pkg/errors"
)

type scope struct {
	categories     map[string]*categoryInfo
	categoryList   []string
	categoryTitles map[string]string
	entries        map[string]*entryInfo
	entryList      []*entryInfo
	gc             *tdgenContext
}

type categoryInfo struct {
	entries []*entryInfo
}

type entryKind int

const (
	entryKindClass entryKind = iota
	entryKindObject
	entryKindFunction
	entryKindUpdate
)

func (k entryKind) String() string {
	switch k {
	case entryKindClass:
		return "Class"
	case entryKindFunction:
		return "Function"
	case entryKindUpdate:
		return "Update"
	default:
		return "Object"
	}
}

type entryInfo struct {
	kind     entryKind
	typeSpec *ast.TypeSpec
	category string
	doc      []string

	// wire name, e.g. "getMe". Classes use their Go name.
	name     string
	typeName string

	class   string
	returns string
	sync    bool

	structFields []*structField
}

type structField struct {
	goName   string
	name     string
	goType   string
	typeNode ast.Expr
	doc      []string
	optional bool
	required bool
	asString bool

	// filled in by resolve
	tdType string
}

func newScope(gc *tdgenContext) *scope {
	return &scope{
		categories:     make(map[string]*categoryInfo),
		categoryTitles: make(map[string]string),
		entries:        make(map[string]*entryInfo),
		gc:             gc,
	}
}

func (s *scope) assimilate(file string) error {
	absoluteFilePath := filepath.Join(s.gc.Dir, file)
	s.gc.logf("Assimilating (%s)", file)

	var fset token.FileSet
	f, err := parser.ParseFile(&fset, absoluteFilePath, nil, parser.ParseComments)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", absoluteFilePath)
	}

	title := bannerTitle(f.Comments)

	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		ts := asType(gd)
		if ts == nil || !(isStruct(ts) || isInterface(ts)) {
			continue
		}

		tsName := ts.Name.Name
		e := &entryInfo{
			kind:     entryKindObject,
			typeSpec: ts,
			category: "Miscellaneous",
			name:     strings.ToLower(tsName[:1]) + tsName[1:],
			typeName: tsName,
		}
		if isInterface(ts) {
			e.kind = entryKindClass
			e.name = tsName
		}

		for _, line := range getCommentLines(gd.Doc) {
			tag, value := parseTag(line)
			switch tag {
			case "category":
				e.category = value
			case "class":
				e.class = value
				if value == "Update" {
					e.kind = entryKindUpdate
				}
			case "returns":
				e.kind = entryKindFunction
				e.returns = value
			case "sync":
				e.sync = true
			case "":
				e.doc = append(e.doc, line)
			default:
				return errors.Errorf("%s: unknown annotation @%s", fset.Position(gd.Pos()), tag)
			}
		}
		for len(e.doc) > 0 && e.doc[len(e.doc)-1] == "" {
			e.doc = e.doc[:len(e.doc)-1]
		}

		if e.kind == entryKindFunction && e.class != "" {
			return errors.Errorf("%s: %s can't both be a function and implement %s", fset.Position(gd.Pos()), tsName, e.class)
		}

		if isStruct(ts) {
			if err := s.assimilateFields(&fset, e); err != nil {
				return err
			}
		}

		s.addEntry(e)
		if title != "" {
			if _, ok := s.categoryTitles[e.category]; !ok {
				s.categoryTitles[e.category] = title
			}
		}
	}

	// required fields are whatever Validate marks validation.Required
	for _, decl := range f.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Name.Name != "Validate" || fd.Recv == nil || len(fd.Recv.List) != 1 {
			continue
		}
		recv := strings.TrimPrefix(typeToString(fd.Recv.List[0].Type), "*")
		e, ok := s.entries[recv]
		if !ok {
			continue
		}
		for _, name := range requiredFields(fd) {
			sf := e.field(name)
			if sf == nil {
				return errors.Errorf("%s: %s.Validate names unknown field %s", fset.Position(fd.Pos()), recv, name)
			}
			sf.required = true
		}
	}

	return nil
}

func (s *scope) assimilateFields(fset *token.FileSet, e *entryInfo) error {
	st := e.typeSpec.Type.(*ast.StructType)
	for _, sf := range st.Fields.List {
		if len(sf.Names) != 1 {
			return errors.Errorf("%s: %s must declare one field per line", fset.Position(sf.Pos()), e.typeName)
		}
		if sf.Tag == nil {
			return errors.Errorf("%s: %s.%s is untagged", fset.Position(sf.Pos()), e.typeName, sf.Names[0].Name)
		}

		tagValue := strings.Trim(sf.Tag.Value, "`")
		tags, err := structtag.Parse(tagValue)
		if err != nil {
			return errors.Errorf("%s: for tag (%s): %s", fset.Position(sf.Pos()), sf.Tag.Value, err.Error())
		}

		jsonTag, err := tags.Get("json")
		if err != nil {
			return errors.Errorf("%s: %s.%s is lacking a 'json' tag", fset.Position(sf.Pos()), e.typeName, sf.Names[0].Name)
		}

		var optional bool
		var doc []string
		for _, line := range getCommentLines(sf.Doc) {
			if strings.Contains(line, "@optional") {
				optional = true
				continue
			}
			doc = append(doc, line)
		}

		e.structFields = append(e.structFields, &structField{
			goName:   sf.Names[0].Name,
			name:     jsonTag.Name,
			goType:   typeToString(sf.Type),
			typeNode: sf.Type,
			doc:      doc,
			optional: optional,
			asString: jsonTag.HasOption("string"),
		})
	}
	return nil
}

func requiredFields(fd *ast.FuncDecl) []string {
	var res []string
	ast.Inspect(fd.Body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || !isSelector(call.Fun, "validation", "Field") || len(call.Args) < 2 {
			return true
		}
		ue, ok := call.Args[0].(*ast.UnaryExpr)
		if !ok || ue.Op != token.AND {
			return true
		}
		sel, ok := ue.X.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		for _, rule := range call.Args[1:] {
			if isSelector(rule, "validation", "Required") {
				res = append(res, sel.Sel.Name)
				break
			}
		}
		return false
	})
	return res
}

func isSelector(e ast.Expr, pkg string, name string) bool {
	sel, ok := e.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	id, ok := sel.X.(*ast.Ident)
	return ok && id.Name == pkg && sel.Sel.Name == name
}

// resolve checks cross references and computes wire types. It must run
// once every file has been assimilated.
func (s *scope) resolve() error {
	for _, e := range s.entryList {
		if e.class != "" {
			if c := s.entries[e.class]; c == nil || c.kind != entryKindClass {
				return errors.Errorf("%s implements unknown class %s", e.typeName, e.class)
			}
		}
		if e.kind == entryKindFunction && s.entries[e.returns] == nil {
			return errors.Errorf("%s returns unknown type %s", e.typeName, e.returns)
		}

		for _, sf := range e.structFields {
			td, err := s.tdType(sf.typeNode, sf.asString)
			if err != nil {
				return errors.WithMessage(err, fmt.Sprintf("%s.%s", e.typeName, sf.goName))
			}
			sf.tdType = td
		}
	}
	return nil
}

// tdType maps a Go field type to the type name the engine's schema uses.
func (s *scope) tdType(e ast.Expr, asString bool) (string, error) {
	switch node := e.(type) {
	case *ast.Ident:
		switch node.Name {
		case "int32", "string":
			return node.Name, nil
		case "int64":
			if asString {
				return "int64", nil
			}
			return "int53", nil
		case "float64":
			return "double", nil
		case "bool":
			return "Bool", nil
		}
		if c, ok := s.entries[node.Name]; ok && c.kind == entryKindClass {
			return c.name, nil
		}
	case *ast.StarExpr:
		if id, ok := node.X.(*ast.Ident); ok {
			if o, ok := s.entries[id.Name]; ok && o.kind != entryKindClass {
				return o.name, nil
			}
		}
	case *ast.ArrayType:
		if id, ok := node.Elt.(*ast.Ident); ok && id.Name == "byte" {
			return "bytes", nil
		}
		inner, err := s.tdType(node.Elt, asString)
		if err != nil {
			return "", err
		}
		return "vector<" + inner + ">", nil
	}
	return "", errors.Errorf("unsupported field type %s", typeToString(e))
}

func (s *scope) addEntry(e *entryInfo) {
	cat, ok := s.categories[e.category]
	if !ok {
		cat = &categoryInfo{}
		s.categoryList = append(s.categoryList, e.category)
		s.categories[e.category] = cat
	}

	cat.entries = append(cat.entries, e)
	s.entries[e.typeName] = e
	s.entryList = append(s.entryList, e)
}

func (s *scope) categoryTitle(category string) string {
	if title, ok := s.categoryTitles[category]; ok {
		return title
	}
	return category
}

func (s *scope) isClass(typeName string) bool {
	e, ok := s.entries[typeName]
	return ok && e.kind == entryKindClass
}

func (s *scope) members(class string) []*entryInfo {
	var res []*entryInfo
	for _, e := range s.entryList {
		if e.class == class {
			res = append(res, e)
		}
	}
	return res
}

func (e *entryInfo) field(goName string) *structField {
	for _, sf := range e.structFields {
		if sf.goName == goName {
			return sf
		}
	}
	return nil
}

func (e *entryInfo) requiredFields() []*structField {
	var res []*structField
	for _, sf := range e.structFields {
		if sf.required {
			res = append(res, sf)
		}
	}
	return res
}

// classField reports whether sf holds a class value, or a slice of them,
// which need custom decoding.
func (s *scope) classField(sf *structField) (class string, slice bool, ok bool) {
	t := sf.goType
	if strings.HasPrefix(t, "[]") {
		t = strings.TrimPrefix(t, "[]")
		slice = true
	}
	if s.isClass(t) {
		return t, slice, true
	}
	return "", false, false
}
