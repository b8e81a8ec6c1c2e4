package schema

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/comm"
	"github.com/tdkit/tdkit/mansion"
	"github.com/tdkit/tdkit/tdapi/tdgen/spec"
)

var args = struct {
	name     *string
	category *string
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("schema", "Describe the API: categories, the entries in one, or a single entry")
	ctx.Register(cmd, do)

	args.name = cmd.Arg("name", "Wire name of an object, function, update or class, e.g. getChats").String()
	args.category = cmd.Flag("category", "List the entries of a category").Short('c').String()
}

func do(ctx *mansion.Context) {
	sp, err := spec.Load()
	ctx.Must(err)

	switch {
	case *args.name != "":
		entry, err := Describe(sp, *args.name)
		ctx.Must(err)
		comm.ResultOrPrint(entry, func() {
			printEntry(os.Stdout, entry)
		})
	case *args.category != "":
		names := sp.Category(*args.category)
		if len(names) == 0 {
			ctx.Must(errors.Errorf("no category named %q", *args.category))
		}
		comm.ResultOrPrint(names, func() {
			for _, name := range names {
				fmt.Println(name)
			}
		})
	default:
		counts := Categories(sp)
		comm.ResultOrPrint(counts, func() {
			var names []string
			for name := range counts {
				names = append(names, name)
			}
			sort.Strings(names)

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Category", "Entries"})
			for _, name := range names {
				table.Append([]string{name, fmt.Sprintf("%d", counts[name])})
			}
			table.Render()
		})
	}
}

// Categories counts the entries of every category.
func Categories(sp *spec.Spec) map[string]int {
	res := make(map[string]int)
	for _, cs := range sp.Classes {
		res[cs.Category]++
	}
	for _, list := range [][]*spec.StructSpec{sp.Objects, sp.Functions, sp.Updates} {
		for _, ss := range list {
			res[ss.Category]++
		}
	}
	return res
}

// Describe looks an entry up. Unknown names get the closest known ones
// as suggestions.
func Describe(sp *spec.Spec, name string) (*mansion.SchemaEntryResult, error) {
	ss, cs := sp.Lookup(name)
	switch {
	case cs != nil:
		return &mansion.SchemaEntryResult{
			Kind:     "class",
			Name:     cs.Name,
			Category: cs.Category,
			Doc:      cs.Doc,
			Members:  cs.Members,
		}, nil
	case ss != nil:
		res := &mansion.SchemaEntryResult{
			Kind:     kindOf(ss),
			Name:     ss.Name,
			Category: ss.Category,
			Doc:      ss.Doc,
			Class:    ss.Class,
			Returns:  ss.Returns,
			Sync:     ss.Sync,
			Fields:   ss.Fields,
		}
		return res, nil
	}

	err := errors.Errorf("no entry named %q", name)
	if suggestions := sp.Suggest(name, 3); len(suggestions) > 0 {
		err = errors.Errorf("%s, did you mean %s?", err, strings.Join(suggestions, ", "))
	}
	return nil, err
}

func kindOf(ss *spec.StructSpec) string {
	switch {
	case ss.Returns != "":
		return "function"
	case ss.Class == "Update":
		return "update"
	default:
		return "object"
	}
}

func printEntry(w io.Writer, entry *mansion.SchemaEntryResult) {
	fmt.Fprintf(w, "%s (%s, %s)\n", entry.Name, entry.Kind, entry.Category)
	if entry.Doc != "" {
		fmt.Fprintf(w, "\n%s\n", entry.Doc)
	}
	fmt.Fprintln(w)

	if entry.Class != "" && entry.Kind != "update" {
		fmt.Fprintf(w, "Implements: %s\n", entry.Class)
	}
	if entry.Returns != "" {
		returns := entry.Returns
		if entry.Sync {
			returns += " (can be executed synchronously)"
		}
		fmt.Fprintf(w, "Returns: %s\n", returns)
	}
	if len(entry.Members) > 0 {
		fmt.Fprintf(w, "Members: %s\n", strings.Join(entry.Members, ", "))
	}

	if len(entry.Fields) == 0 {
		return
	}

	fmt.Fprintln(w)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Type", "Flags"})
	for _, f := range entry.Fields {
		var flags []string
		if f.Required {
			flags = append(flags, "required")
		}
		if f.Optional {
			flags = append(flags, "optional")
		}
		table.Append([]string{f.Name, f.Type, strings.Join(flags, ", ")})
	}
	table.Render()
}
