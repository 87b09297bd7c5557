// Package catalog lists the calculator models the suite offers and
// searches them by name and tag.
package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Model is one entry of the model catalog.
type Model struct {
	ID          string
	Name        string
	Description string
	Tags        []string
	Active      bool // inactive models are listed as coming soon
}

var models = []Model{
	{
		ID:          "scientific",
		Name:        "SC-30XII Standard",
		Description: "General Math, Algebra I/II, Geometry. Handles trig & logs.",
		Tags:        []string{"math", "school", "ti-30"},
		Active:      true,
	},
	{
		ID:          "graphing",
		Name:        "Quantum Plotter 84",
		Description: "Visualize functions, intercepts, and inequalities.",
		Tags:        []string{"graph", "calculus", "ti-84"},
	},
	{
		ID:          "programmer",
		Name:        "Bitwise Commander",
		Description: "Hex/Bin/Oct conversion and logic gates.",
		Tags:        []string{"cs", "binary", "hex"},
		Active:      true,
	},
	{
		ID:          "finance",
		Name:        "Ledger Pro",
		Description: "TVM Solver, amortization, and compound interest.",
		Tags:        []string{"business", "money", "stats"},
	},
}

// All returns every model in catalog order
func All() []Model {
	out := make([]Model, len(models))
	copy(out, models)
	return out
}

// Get returns the model with the given id
func Get(id string) (Model, bool) {
	for _, m := range models {
		if m.ID == id {
			return m, true
		}
	}
	return Model{}, false
}

// Status is the badge shown next to a model
func (m Model) Status() string {
	if m.Active {
		return "ready"
	}
	return "coming soon"
}

// FilterValue is what list filtering matches against: name and tags.
func (m Model) FilterValue() string {
	return m.Name + " " + strings.Join(m.Tags, " ")
}

// Search returns the models whose name contains query (case-insensitive) or
// that have a tag containing it, in catalog order, followed by fuzzy name
// matches ranked by score. An empty query returns everything.
func Search(query string) []Model {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return All()
	}

	var out []Model
	seen := make(map[string]bool, len(models))
	for _, m := range models {
		if matches(m, q) {
			out = append(out, m)
			seen[m.ID] = true
		}
	}

	for _, match := range fuzzy.FindFrom(q, source(models)) {
		m := models[match.Index]
		if !seen[m.ID] {
			out = append(out, m)
			seen[m.ID] = true
		}
	}
	return out
}

func matches(m Model, q string) bool {
	if strings.Contains(strings.ToLower(m.Name), q) {
		return true
	}
	for _, tag := range m.Tags {
		if strings.Contains(tag, q) {
			return true
		}
	}
	return false
}

// source adapts the model list to fuzzy.Source over lower-cased names.
type source []Model

func (s source) String(i int) string {
	return strings.ToLower(s[i].Name)
}

func (s source) Len() int {
	return len(s)
}
