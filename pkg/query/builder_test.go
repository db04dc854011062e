package query

import (
	"reflect"
	"testing"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Builder
		want  string
	}{
		{
			name:  "bare path",
			build: func() *Builder { return New("/users") },
			want:  "/users",
		},
		{
			name:  "filter",
			build: func() *Builder { return New("/users").Filter("name", "john") },
			want:  "/users?filter[name]=john",
		},
		{
			name: "multiple filters",
			build: func() *Builder {
				return New("/users").Filter("name", "john").Filter("age", "30")
			},
			want: "/users?filter[name]=john&filter[age]=30",
		},
		{
			name: "repeated filter accumulates",
			build: func() *Builder {
				return New("/users").Filter("name", "john").Filter("name", "jane")
			},
			want: "/users?filter[name]=john,jane",
		},
		{
			name:  "sort",
			build: func() *Builder { return New("/users").Sort("name") },
			want:  "/users?sort=name",
		},
		{
			name:  "multiple sorts",
			build: func() *Builder { return New("/users").Sort("name", "age") },
			want:  "/users?sort=name,age",
		},
		{
			name: "multiple sort calls",
			build: func() *Builder {
				return New("/users").Sort("name").Sort("age").Sort("id", "-sds")
			},
			want: "/users?sort=name,age,id,-sds",
		},
		{
			name:  "include",
			build: func() *Builder { return New("/users").Include("posts", "comments") },
			want:  "/users?include=posts,comments",
		},
		{
			name:  "append",
			build: func() *Builder { return New("/users").Append("posts", "comments") },
			want:  "/users?append=posts,comments",
		},
		{
			name:  "custom param with values",
			build: func() *Builder { return New("/users").Param("custom", "value", "value2") },
			want:  "/users?custom=value,value2",
		},
		{
			name: "two custom params",
			build: func() *Builder {
				return New("/users").Param("custom", "value").Param("custom2", "value2")
			},
			want: "/users?custom=value&custom2=value2",
		},
		{
			name: "fields",
			build: func() *Builder {
				return New("/users").Fields(
					ResourceFields{Resource: "users", Fields: []string{"name", "age"}},
					ResourceFields{Resource: "posts", Fields: []string{"title"}},
				)
			},
			want: "/users?fields[users]=name,age&fields[posts]=title",
		},
		{
			name:  "page",
			build: func() *Builder { return New("/users").Page(2) },
			want:  "/users?page=2",
		},
		{
			name:  "last page wins",
			build: func() *Builder { return New("/users").Page(1).Sort("id").Page(3) },
			want:  "/users?page=3&sort=id",
		},
		{
			name:  "limit overwrites",
			build: func() *Builder { return New("/users").Limit(10).Limit(25) },
			want:  "/users?limit=25",
		},
		{
			name: "keys keep first insertion order",
			build: func() *Builder {
				return New("/users").Sort("name").Include("posts").Sort("age")
			},
			want: "/users?sort=name,age&include=posts",
		},
		{
			name:  "values are not encoded",
			build: func() *Builder { return New("/users").Filter("email", "a b&c") },
			want:  "/users?filter[email]=a b&c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build().Build(); got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	q := New("/users").
		Filter("name", "john").
		Fields(ResourceFields{Resource: "users", Fields: []string{"id"}}).
		Sort("-created_at").
		Page(4)

	first := q.Build()
	for i := 0; i < 10; i++ {
		if got := q.Build(); got != first {
			t.Fatalf("Build() = %q on call %d, want %q", got, i, first)
		}
	}
}

func TestWhen(t *testing.T) {
	filterByName := func(q *Builder) { q.Filter("name", "john") }

	if got := New("/users").When(true, filterByName).Build(); got != "/users?filter[name]=john" {
		t.Errorf("When(true) Build() = %q", got)
	}
	if got := New("/users").When(false, filterByName).Build(); got != "/users" {
		t.Errorf("When(false) Build() = %q, want /users", got)
	}
}

func TestTap(t *testing.T) {
	var seen []string
	q := New("/users").Sort("name").Tap(func(q *Builder) {
		seen = q.Values("sort")
	})

	if !reflect.DeepEqual(seen, []string{"name"}) {
		t.Errorf("Tap saw %v, want [name]", seen)
	}
	if q.Build() != "/users?sort=name" {
		t.Errorf("Tap changed the builder: %q", q.Build())
	}
}

func TestScopes(t *testing.T) {
	active := func(q *Builder) *Builder { return q.Filter("status", "active") }
	newest := func(q *Builder) *Builder { return q.Sort("-created_at") }

	got := New("/users").Scopes(active, newest).Build()
	want := "/users?filter[status]=active&sort=-created_at"
	if got != want {
		t.Errorf("Scopes() Build() = %q, want %q", got, want)
	}
}

func TestForget(t *testing.T) {
	t.Run("single key", func(t *testing.T) {
		got := New("/users").Filter("name", "john").Forget("filter[name]").Build()
		if got != "/users" {
			t.Errorf("Build() = %q, want /users", got)
		}
	})

	t.Run("multiple keys", func(t *testing.T) {
		got := New("/users").
			Filter("name", "john").
			Append("posts").
			Sort("name").
			Forgets("filter[name]", "append", "sort").
			Build()
		if got != "/users" {
			t.Errorf("Build() = %q, want /users", got)
		}
	})

	t.Run("absent key is a no-op", func(t *testing.T) {
		got := New("/users").Sort("name").Forget("include").Build()
		if got != "/users?sort=name" {
			t.Errorf("Build() = %q", got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := New("/users").Sort("id").Include("posts").Forget("sort")
		twice := New("/users").Sort("id").Include("posts").Forget("sort").Forget("sort")
		if once.Build() != twice.Build() {
			t.Errorf("Forget twice = %q, once = %q", twice.Build(), once.Build())
		}
	})

	t.Run("falls back to aliased key", func(t *testing.T) {
		aliases := NewAliasTable(Alias{From: "filter", To: "f"})
		got := New("/users", WithAliases(aliases)).
			Filter("name", "john").
			Sort("id").
			Forget("filter[name]").
			Build()
		if got != "/users?sort=id" {
			t.Errorf("Build() = %q, want /users?sort=id", got)
		}
	})

	t.Run("literal key wins over alias", func(t *testing.T) {
		aliases := NewAliasTable(Alias{From: "sort", To: "s"})
		q := New("/users", WithAliases(aliases)).Sort("id")
		// "s" is stored literally, so no alias lookup happens.
		q.Forget("s")
		if q.Has("s") {
			t.Error("Has(s) = true after Forget(s)")
		}
	})
}

func TestForgetValue(t *testing.T) {
	t.Run("removes value", func(t *testing.T) {
		got := New("/users").Sort("name", "age").ForgetValue("sort", "name").Build()
		if got != "/users?sort=age" {
			t.Errorf("Build() = %q, want /users?sort=age", got)
		}
	})

	t.Run("removes every occurrence", func(t *testing.T) {
		got := New("/users").Sort("name", "age", "name").ForgetValue("sort", "name").Build()
		if got != "/users?sort=age" {
			t.Errorf("Build() = %q, want /users?sort=age", got)
		}
	})

	t.Run("missing value is a no-op", func(t *testing.T) {
		got := New("/users").Sort("name").ForgetValue("sort", "age").Build()
		if got != "/users?sort=name" {
			t.Errorf("Build() = %q", got)
		}
	})

	t.Run("empty list keeps the key", func(t *testing.T) {
		q := New("/users").Sort("name").ForgetValue("sort", "name")
		if !q.Has("sort") {
			t.Fatal("Has(sort) = false, want true")
		}
		if got := q.Build(); got != "/users?sort=" {
			t.Errorf("Build() = %q, want /users?sort=", got)
		}
	})

	t.Run("absent key is not created", func(t *testing.T) {
		q := New("/users").ForgetValue("sort", "name")
		if q.Has("sort") {
			t.Error("Has(sort) = true, want false")
		}
		if got := q.Build(); got != "/users" {
			t.Errorf("Build() = %q, want /users", got)
		}
	})

	t.Run("aliased key", func(t *testing.T) {
		aliases := NewAliasTable(Alias{From: "include", To: "with"})
		got := New("/users", WithAliases(aliases)).
			Include("posts", "comments").
			ForgetValue("include", "posts").
			Build()
		if got != "/users?with=comments" {
			t.Errorf("Build() = %q, want /users?with=comments", got)
		}
	})
}

func TestKeysAndValues(t *testing.T) {
	q := New("/users").Sort("name").Filter("id", "1").Page(2)

	wantKeys := []string{"sort", "filter[id]", "page"}
	if got := q.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("Keys() = %v, want %v", got, wantKeys)
	}

	values := q.Values("sort")
	values[0] = "mutated"
	if got := q.Values("sort"); got[0] != "name" {
		t.Errorf("Values() returned shared slice, got %v", got)
	}

	if q.Values("missing") != nil {
		t.Error("Values(missing) should be nil")
	}
	if q.Path() != "/users" {
		t.Errorf("Path() = %q", q.Path())
	}
}

func TestClone(t *testing.T) {
	base := New("/users").Filter("status", "active")
	clone := base.Clone().Sort("name")

	if got := base.Build(); got != "/users?filter[status]=active" {
		t.Errorf("base Build() = %q, clone leaked into base", got)
	}
	if got := clone.Build(); got != "/users?filter[status]=active&sort=name" {
		t.Errorf("clone Build() = %q", got)
	}
	if clone.Aliases() != base.Aliases() {
		t.Error("clone should share the alias table")
	}
}

func TestFieldsFromMap(t *testing.T) {
	fields := FieldsFromMap(map[string][]string{
		"users": {"name"},
		"posts": {"title", "body"},
	})

	got := New("/users").Fields(fields...).Build()
	want := "/users?fields[posts]=title,body&fields[users]=name"
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func TestString(t *testing.T) {
	q := New("/users").Include("posts")
	if q.String() != q.Build() {
		t.Errorf("String() = %q, Build() = %q", q.String(), q.Build())
	}
}
