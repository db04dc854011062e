package query

import (
	"reflect"
	"sync"
	"testing"
)

func TestAliasTable_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		aliases []Alias
		key     string
		want    string
	}{
		{
			name: "empty table",
			key:  "filter[name]",
			want: "filter[name]",
		},
		{
			name:    "prefix alias",
			aliases: []Alias{{From: "filter", To: "f"}},
			key:     "filter[name]",
			want:    "f[name]",
		},
		{
			name:    "first occurrence only",
			aliases: []Alias{{From: "name", To: "n"}},
			key:     "filter[name_name]",
			want:    "filter[n_name]",
		},
		{
			name:    "unanchored substring",
			aliases: []Alias{{From: "a", To: "x"}},
			key:     "page",
			want:    "pxge",
		},
		{
			name:    "chained in table order",
			aliases: []Alias{{From: "filter", To: "f"}, {From: "f[", To: "where["}},
			key:     "filter[name]",
			want:    "where[name]",
		},
		{
			name:    "no match",
			aliases: []Alias{{From: "include", To: "with"}},
			key:     "sort",
			want:    "sort",
		},
		{
			name:    "empty token is ignored",
			aliases: []Alias{{From: "", To: "x"}},
			key:     "sort",
			want:    "sort",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewAliasTable(tt.aliases...)
			if got := table.Resolve(tt.key); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestAliasTable_DefineReplaces(t *testing.T) {
	table := NewAliasTable(Alias{From: "filter", To: "f"}, Alias{From: "sort", To: "s"})
	table.Define(Alias{From: "include", To: "with"})

	want := []Alias{{From: "include", To: "with"}}
	if got := table.Aliases(); !reflect.DeepEqual(got, want) {
		t.Errorf("Aliases() = %v, want %v", got, want)
	}
	if got := table.Resolve("filter[name]"); got != "filter[name]" {
		t.Errorf("old alias still applied: %q", got)
	}
}

func TestAliasTable_DefineCopies(t *testing.T) {
	in := []Alias{{From: "filter", To: "f"}}
	table := NewAliasTable(in...)
	in[0].To = "changed"

	if got := table.Resolve("filter[x]"); got != "f[x]" {
		t.Errorf("Resolve() = %q, table aliased caller slice", got)
	}
}

func TestAliasTable_SharedAcrossBuilders(t *testing.T) {
	table := NewAliasTable()
	before := New("/users", WithAliases(table)).Filter("name", "john")

	table.Define(Alias{From: "filter", To: "f"})
	after := New("/users", WithAliases(table)).Filter("name", "john")

	if got := before.Build(); got != "/users?filter[name]=john" {
		t.Errorf("existing key renamed: %q", got)
	}
	if got := after.Build(); got != "/users?f[name]=john" {
		t.Errorf("new builder Build() = %q, want /users?f[name]=john", got)
	}

	// Future writes on the old builder see the new table.
	before.Filter("age", "30")
	if got := before.Build(); got != "/users?filter[name]=john&f[age]=30" {
		t.Errorf("old builder Build() = %q", got)
	}
}

func TestAliasTable_PageIsNotAliased(t *testing.T) {
	table := NewAliasTable(Alias{From: "a", To: "x"})
	got := New("/users", WithAliases(table)).Page(2).Build()
	if got != "/users?page=2" {
		t.Errorf("Build() = %q, want /users?page=2", got)
	}
}

func TestAliasesFromMap(t *testing.T) {
	got := AliasesFromMap(map[string]string{"sort": "s", "filter": "f", "include": "with"})
	want := []Alias{{From: "filter", To: "f"}, {From: "include", To: "with"}, {From: "sort", To: "s"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AliasesFromMap() = %v, want %v", got, want)
	}
}

func TestAliasTable_ConcurrentDefine(t *testing.T) {
	table := NewAliasTable()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				table.Define(Alias{From: "filter", To: "f"})
			} else {
				_ = table.Resolve("filter[name]")
			}
		}(i)
	}
	wg.Wait()

	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}
