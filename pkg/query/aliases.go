package query

import (
	"sort"
	"strings"
	"sync"
)

// Alias rewrites the first occurrence of From in a parameter key to To.
type Alias struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// AliasTable is an ordered set of aliases shared by any number of builders.
// Define replaces the whole table; it never merges.
type AliasTable struct {
	mu      sync.RWMutex
	aliases []Alias
}

// NewAliasTable creates a table holding the given aliases in order.
func NewAliasTable(aliases ...Alias) *AliasTable {
	t := &AliasTable{}
	t.Define(aliases...)
	return t
}

// AliasesFromMap converts a map into aliases ordered by From, which gives a
// deterministic application order for callers that only hold a map.
func AliasesFromMap(m map[string]string) []Alias {
	aliases := make([]Alias, 0, len(m))
	for from, to := range m {
		aliases = append(aliases, Alias{From: from, To: to})
	}
	sort.Slice(aliases, func(i, j int) bool {
		return aliases[i].From < aliases[j].From
	})
	return aliases
}

// Define replaces the table contents with aliases.
func (t *AliasTable) Define(aliases ...Alias) {
	cp := make([]Alias, len(aliases))
	copy(cp, aliases)

	t.mu.Lock()
	t.aliases = cp
	t.mu.Unlock()
}

// Aliases returns a copy of the table in application order.
func (t *AliasTable) Aliases() []Alias {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cp := make([]Alias, len(t.aliases))
	copy(cp, t.aliases)
	return cp
}

// Len returns the number of aliases in the table.
func (t *AliasTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.aliases)
}

// Resolve applies every alias to key in table order. Each alias operates on
// the result of the previous one.
func (t *AliasTable) Resolve(key string) string {
	resolved, _ := t.resolve(key)
	return resolved
}

// resolve also reports which aliases matched, for observers.
func (t *AliasTable) resolve(key string) (string, []string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var applied []string
	for _, a := range t.aliases {
		if a.From == "" || !strings.Contains(key, a.From) {
			continue
		}
		key = strings.Replace(key, a.From, a.To, 1)
		applied = append(applied, a.From)
	}
	return key, applied
}
