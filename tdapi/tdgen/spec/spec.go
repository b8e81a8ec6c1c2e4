// Package spec describes the tdapi schema as tdgen emits it, and embeds the
// generated tdapi.json so tools can inspect the API at runtime.
package spec

import (
	_ "embed"
	"encoding/json"
	"sort"
	"strings"

	"github.com/arbovm/levenshtein"
	"github.com/pkg/errors"
)

//go:embed tdapi.json
var schema []byte

type Spec struct {
	Classes   []*ClassSpec  `json:"classes"`
	Objects   []*StructSpec `json:"objects"`
	Functions []*StructSpec `json:"functions"`
	Updates   []*StructSpec `json:"updates"`
}

type ClassSpec struct {
	Name     string   `json:"name"`
	GoName   string   `json:"goName"`
	Category string   `json:"category"`
	Doc      string   `json:"doc"`
	Members  []string `json:"members"`
}

// StructSpec describes an object, a function or an update.
type StructSpec struct {
	Name     string       `json:"name"`
	GoName   string       `json:"goName"`
	Category string       `json:"category"`
	Doc      string       `json:"doc"`
	Fields   []*FieldSpec `json:"fields"`

	// Only set for objects and updates
	Class string `json:"class,omitempty"`

	// Only set for functions
	Returns string `json:"returns,omitempty"`
	Sync    bool   `json:"sync,omitempty"`
}

type FieldSpec struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	GoName   string `json:"goName"`
	GoType   string `json:"goType"`
	Doc      string `json:"doc"`
	Optional bool   `json:"optional,omitempty"`
	Required bool   `json:"required,omitempty"`
}

// Load decodes the embedded schema.
func Load() (*Spec, error) {
	var s Spec
	if err := json.Unmarshal(schema, &s); err != nil {
		return nil, errors.Wrap(err, "decoding embedded tdapi.json")
	}
	return &s, nil
}

// Lookup finds an entry by wire name, or a class by name. It returns nil
// for both if nothing matches.
func (s *Spec) Lookup(name string) (*StructSpec, *ClassSpec) {
	for _, list := range [][]*StructSpec{s.Functions, s.Updates, s.Objects} {
		for _, ss := range list {
			if ss.Name == name {
				return ss, nil
			}
		}
	}
	for _, cs := range s.Classes {
		if cs.Name == name {
			return nil, cs
		}
	}
	return nil, nil
}

// Category lists the names of every entry filed under category.
func (s *Spec) Category(category string) []string {
	var res []string
	for _, cs := range s.Classes {
		if cs.Category == category {
			res = append(res, cs.Name)
		}
	}
	for _, list := range [][]*StructSpec{s.Objects, s.Functions, s.Updates} {
		for _, ss := range list {
			if ss.Category == category {
				res = append(res, ss.Name)
			}
		}
	}
	return res
}

// Suggest returns up to n known names close to name, closest first.
func (s *Spec) Suggest(name string, n int) []string {
	type candidate struct {
		name     string
		distance int
	}

	lower := strings.ToLower(name)
	maxDistance := len(name)/3 + 1

	var candidates []candidate
	consider := func(known string) {
		d := levenshtein.Distance(lower, strings.ToLower(known))
		if d <= maxDistance {
			candidates = append(candidates, candidate{known, d})
		}
	}
	for _, cs := range s.Classes {
		consider(cs.Name)
	}
	for _, list := range [][]*StructSpec{s.Functions, s.Updates, s.Objects} {
		for _, ss := range list {
			consider(ss.Name)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].name < candidates[j].name
	})

	var res []string
	for i := 0; i < len(candidates) && i < n; i++ {
		res = append(res, candidates[i].name)
	}
	return res
}
