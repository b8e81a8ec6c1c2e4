// Command tdgen reads the annotated types_*.go sources of package tdapi and
// generates everything derived from them: the codec, the messages registry,
// the JSON schema and the API reference.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// tdgenContext regroups global state for the tdgen tool
// along with a few utility methods
type tdgenContext struct {
	// Dir is the tdapi package directory
	Dir string

	// when set, documents are compared with what's on disk instead of written
	Check bool

	stale []string
	quiet bool
}

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		log.Printf("tdgen is a codec & documentation generator for tdapi")
		log.Printf("")
		log.Printf("Usage: tdgen (godocs|check [DIR]|html OUT)")
		log.Printf("  - godocs: generate directly in the tdapi sources")
		log.Printf("  - check: fail if generated files are out of date")
		log.Printf("  - html: render the API reference to a standalone page")
		os.Exit(1)
	}
	mode := os.Args[1]

	baseDir := "."
	if mode == "check" && len(os.Args) > 2 {
		baseDir = os.Args[2]
	}
	baseDir, err := filepath.Abs(baseDir)
	must(err)
	log.Printf("Base dir: (%s)", baseDir)

	_, err = os.Stat(baseDir)
	must(err)

	gc := &tdgenContext{
		Dir: baseDir,
	}

	switch mode {
	case "godocs":
		must(gc.generateAll())
	case "check":
		gc.Check = true
		must(gc.generateAll())
	case "html":
		if len(os.Args) < 3 {
			log.Printf("tdgen html: missing output path")
			os.Exit(1)
		}
		out, err := filepath.Abs(os.Args[2])
		must(err)

		scope := newScope(gc)
		must(scope.assimilateAll())
		must(gc.generateHTML(scope, out))
	default:
		log.Fatalf("Unknown mode (%s)", mode)
	}

	if len(gc.stale) > 0 {
		log.Fatalf("Out of date, run `go generate ./tdapi`:\n  %s", strings.Join(gc.stale, "\n  "))
	}
}

func (gc *tdgenContext) generateAll() error {
	gc.task("Assimilating sources")
	scope := newScope(gc)
	if err := scope.assimilateAll(); err != nil {
		return err
	}

	if err := gc.generateGoCode(scope); err != nil {
		return err
	}
	if err := gc.generateSpec(scope); err != nil {
		return err
	}
	if err := gc.generateDocs(scope); err != nil {
		return err
	}
	return nil
}

func (s *scope) assimilateAll() error {
	files, err := filepath.Glob(filepath.Join(s.gc.Dir, "types_*.go"))
	if err != nil {
		return errors.WithStack(err)
	}
	if len(files) == 0 {
		return errors.Errorf("no types_*.go files in %s", s.gc.Dir)
	}
	sort.Strings(files)

	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}
		if err := s.assimilate(filepath.Base(file)); err != nil {
			return err
		}
	}
	return s.resolve()
}

func (gc *tdgenContext) task(task string) {
	gc.logf("")
	gc.logf("=========================")
	gc.logf(">> %s", task)
	gc.logf("=========================")
}

func (gc *tdgenContext) logf(format string, args ...interface{}) {
	if gc.quiet {
		return
	}
	log.Printf(format, args...)
}

func (gc *tdgenContext) newRelativeDoc(relname string) *document {
	name := filepath.Join(gc.Dir, filepath.FromSlash(relname))
	return &document{
		gc:   gc,
		name: name,
	}
}

func must(err error) {
	if err != nil {
		log.Fatalf("%+v", err)
	}
}

type document struct {
	name string
	gc   *tdgenContext

	doc string
	buf string
}

func (d *document) line(msg string, args ...interface{}) {
	d.buf += fmt.Sprintf(msg, args...)
	d.buf += "\n"
}

func (d *document) commit() {
	d.doc = d.buf
	d.buf = ""
}

func (d *document) write() error {
	return d.writeBytes([]byte(d.doc))
}

func (d *document) writeBytes(bs []byte) error {
	dest := d.name
	if d.gc.Check {
		existing, err := os.ReadFile(dest)
		if err != nil || !bytes.Equal(existing, bs) {
			d.gc.stale = append(d.gc.stale, dest)
		}
		return nil
	}

	d.gc.logf("Writing (%s)...", dest)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.WriteFile(dest, bs, 0644))
}
