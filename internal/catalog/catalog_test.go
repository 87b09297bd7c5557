package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(models []Model) []string {
	out := make([]string, 0, len(models))
	for _, m := range models {
		out = append(out, m.ID)
	}
	return out
}

func TestAll(t *testing.T) {
	all := All()
	assert.Equal(t, []string{"scientific", "graphing", "programmer", "finance"}, ids(all))

	all[0].Name = "changed"
	assert.Equal(t, "SC-30XII Standard", All()[0].Name)
}

func TestActive(t *testing.T) {
	for _, m := range All() {
		switch m.ID {
		case "scientific", "programmer":
			assert.True(t, m.Active, m.ID)
			assert.Equal(t, "ready", m.Status())
		default:
			assert.False(t, m.Active, m.ID)
			assert.Equal(t, "coming soon", m.Status())
		}
	}
}

func TestGet(t *testing.T) {
	m, ok := Get("programmer")
	require.True(t, ok)
	assert.Equal(t, "Bitwise Commander", m.Name)

	_, ok = Get("statistics")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty", "", []string{"scientific", "graphing", "programmer", "finance"}},
		{"name substring", "ledger", []string{"finance"}},
		{"name case", "BITWISE", []string{"programmer"}},
		{"tag", "hex", []string{"programmer"}},
		{"tag prefix", "ti-", []string{"scientific", "graphing"}},
		{"fuzzy name", "qplt", []string{"graphing"}},
		{"nothing", "zzzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(tt.query)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterValue(t *testing.T) {
	m, _ := Get("scientific")
	assert.Equal(t, "SC-30XII Standard math school ti-30", m.FilterValue())
}
