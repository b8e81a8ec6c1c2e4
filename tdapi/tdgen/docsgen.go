package main

import (
	"fmt"
	"strings"

	"github.com/russross/blackfriday/v2"
)

func (gc *tdgenContext) generateDocs(scope *scope) error {
	gc.task("Generating docs")

	doc := gc.newRelativeDoc("../docs/README.md")

	doc.line("# tdkit API reference")
	doc.line("")
	doc.line("*Generated by tdgen. Do not edit by hand.*")
	doc.line("")

	for _, category := range scope.categoryList {
		doc.line("## %s", scope.categoryTitle(category))
		doc.line("")

		for _, entry := range scope.categories[category].entries {
			dumpEntry(doc, scope, entry)
		}
	}

	doc.commit()
	return doc.write()
}

// generateHTML renders the API reference as a standalone page at out.
func (gc *tdgenContext) generateHTML(scope *scope, out string) error {
	gc.task("Generating HTML docs")

	md := &document{gc: gc}
	for _, category := range scope.categoryList {
		md.line("## %s", scope.categoryTitle(category))
		md.line("")
		for _, entry := range scope.categories[category].entries {
			dumpEntry(md, scope, entry)
		}
	}
	md.commit()

	body := blackfriday.Run([]byte(md.doc), blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.AutoHeadingIDs))

	html := &document{gc: gc, name: out}
	html.line("<!DOCTYPE html>")
	html.line("<html>")
	html.line("<head><meta charset=%q><title>tdkit API reference</title></head>", "utf-8")
	html.line("<body>")
	html.line("<h1>tdkit API reference</h1>")
	html.line("%s", body)
	html.line("</body>")
	html.line("</html>")
	html.commit()
	return html.write()
}

func dumpEntry(doc *document, scope *scope, entry *entryInfo) {
	doc.line("### %s", entry.name)
	doc.line("")

	marker := fmt.Sprintf("*%s*", entry.kind)
	if entry.class != "" && entry.kind != entryKindUpdate {
		marker += fmt.Sprintf(" · implements `%s`", entry.class)
	}
	if entry.sync {
		marker += " · synchronous"
	}
	doc.line("%s", marker)
	doc.line("")
	doc.line("%s", joinDoc(entry.doc))
	doc.line("")

	if entry.kind == entryKindClass {
		var members []string
		for _, m := range scope.members(entry.typeName) {
			members = append(members, fmt.Sprintf("`%s`", m.name))
		}
		doc.line("Members: %s", strings.Join(members, ", "))
		doc.line("")
		return
	}

	if len(entry.structFields) > 0 {
		doc.line("| Name | Type | Description |")
		doc.line("|---|---|---|")
		for _, sf := range entry.structFields {
			desc := strings.ReplaceAll(joinDoc(sf.doc), "|", `\|`)
			if sf.optional {
				desc = "*(optional)* " + desc
			}
			doc.line("| `%s` | `%s` | %s |", sf.name, escapeAngles(sf.tdType), desc)
		}
		doc.line("")
	}

	if entry.kind == entryKindFunction {
		doc.line("Returns: `%s`", entry.returns)
		doc.line("")
	}
}

func escapeAngles(s string) string {
	return strings.NewReplacer("<", "&lt;", ">", "&gt;").Replace(s)
}
