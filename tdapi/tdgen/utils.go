package main

import (
	"fmt"
	"go/ast"
	"regexp"
	"strings"
	"unicode"
)

func asType(gd *ast.GenDecl) *ast.TypeSpec {
	for _, spec := range gd.Specs {
		if ts, ok := spec.(*ast.TypeSpec); ok {
			return ts
		}
	}
	return nil
}

func isStruct(ts *ast.TypeSpec) bool {
	if ts == nil {
		return false
	}

	_, ok := ts.Type.(*ast.StructType)
	return ok
}

func isInterface(ts *ast.TypeSpec) bool {
	if ts == nil {
		return false
	}

	_, ok := ts.Type.(*ast.InterfaceType)
	return ok
}

func parseTag(line string) (tag string, value string) {
	if strings.HasPrefix(line, "@") {
		for i := 1; i < len(line); i++ {
			if line[i] == ' ' {
				tag = line[1:i]
				value = line[i+1:]
				return
			}
		}
		// no value, e.g. "@sync"
		tag = line[1:]
	}
	return
}

func typeToString(e ast.Expr) string {
	switch node := e.(type) {
	case *ast.Ident:
		return node.Name
	case *ast.StarExpr:
		return "*" + typeToString(node.X)
	case *ast.ArrayType:
		return "[]" + typeToString(node.Elt)
	case *ast.SelectorExpr:
		return typeToString(node.X) + "." + node.Sel.Name
	default:
		return fmt.Sprintf("%#v", node)
	}
}

func getCommentLines(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}

	var lines []string
	for _, el := range doc.List {
		line := strings.TrimSpace(strings.TrimPrefix(el.Text, "//"))
		lines = append(lines, line)
	}

	return lines
}

// lowerFirst turns a Go identifier back into its wire spelling:
// ChatID becomes chatID, URL becomes url.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}

	switch {
	case upper == len(runes):
		return strings.ToLower(s)
	case upper > 1 && unicode.IsLower(runes[upper]):
		// "HTMLText": keep the T with "ext"
		return strings.ToLower(string(runes[:upper-1])) + string(runes[upper-1:])
	default:
		return string(unicode.ToLower(runes[0])) + string(runes[1:])
	}
}

var paramKeywords = map[string]string{
	"type":    "typ",
	"func":    "fn",
	"range":   "rng",
	"default": "def",
}

func paramName(goName string) string {
	name := lowerFirst(goName)
	if kw, ok := paramKeywords[name]; ok {
		return kw
	}
	return name
}

var bannerRe = regexp.MustCompile(`^-{8,}$`)

// bannerTitle finds a section banner of the form
//
//	//------
//	// Title
//	//------
func bannerTitle(groups []*ast.CommentGroup) string {
	for _, g := range groups {
		lines := getCommentLines(g)
		if len(lines) == 3 && bannerRe.MatchString(lines[0]) && bannerRe.MatchString(lines[2]) {
			return lines[1]
		}
	}
	return ""
}

func joinDoc(lines []string) string {
	return strings.Join(lines, " ")
}
