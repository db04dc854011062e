package query

import (
	"sort"
	"strconv"
)

const (
	// KeyFilter is the prefix of filter keys, rendered as filter[field].
	KeyFilter = "filter"
	// KeyFields is the prefix of sparse fieldset keys, rendered as fields[resource].
	KeyFields = "fields"
	// KeySort holds sort fields; a leading "-" means descending by convention.
	KeySort = "sort"
	// KeyInclude holds related resources to include.
	KeyInclude = "include"
	// KeyAppend holds computed attributes to append.
	KeyAppend = "append"
	// KeyPage holds the page number.
	KeyPage = "page"
	// KeyLimit holds the page size.
	KeyLimit = "limit"
)

// Scope is a reusable group of mutations, applied with Builder.Scopes.
type Scope func(q *Builder) *Builder

// Observer is notified of builder activity. Implementations must be cheap;
// they run inline with every call.
type Observer interface {
	// ParamWritten is called after values are stored under key.
	ParamWritten(key string, values int)
	// AliasApplied is called for every alias that rewrote a key.
	AliasApplied(alias string)
	// Built is called after Build ("string") or BuildAsArray ("array").
	Built(mode string, fragments int)
}

// Option configures a Builder.
type Option func(*Builder)

// WithAliases makes the builder resolve keys through aliases.
func WithAliases(aliases *AliasTable) Option {
	return func(q *Builder) {
		if aliases != nil {
			q.aliases = aliases
		}
	}
}

// WithObserver attaches an observer to the builder.
func WithObserver(o Observer) Option {
	return func(q *Builder) {
		q.observer = o
	}
}

// Builder accumulates query parameters for a single path.
type Builder struct {
	path     string
	params   *params
	aliases  *AliasTable
	observer Observer
}

// New creates a builder for path. Without WithAliases the builder gets its
// own empty alias table.
func New(path string, opts ...Option) *Builder {
	q := &Builder{
		path:   path,
		params: newParams(),
	}
	for _, opt := range opts {
		opt(q)
	}
	if q.aliases == nil {
		q.aliases = NewAliasTable()
	}
	return q
}

// Path returns the base path.
func (q *Builder) Path() string {
	return q.path
}

// Aliases returns the alias table the builder resolves keys through.
func (q *Builder) Aliases() *AliasTable {
	return q.aliases
}

// Filter appends value to filter[key].
func (q *Builder) Filter(key, value string) *Builder {
	return q.write(KeyFilter+"["+key+"]", value)
}

// Sort appends values to the sort key.
func (q *Builder) Sort(values ...string) *Builder {
	return q.write(KeySort, values...)
}

// Include appends values to the include key.
func (q *Builder) Include(values ...string) *Builder {
	return q.write(KeyInclude, values...)
}

// Append appends values to the append key.
func (q *Builder) Append(values ...string) *Builder {
	return q.write(KeyAppend, values...)
}

// Param appends values to an arbitrary key.
func (q *Builder) Param(key string, values ...string) *Builder {
	return q.write(key, values...)
}

// ResourceFields is the sparse fieldset requested for one resource type.
type ResourceFields struct {
	Resource string
	Fields   []string
}

// FieldsFromMap converts a map into fieldsets ordered by resource name.
func FieldsFromMap(m map[string][]string) []ResourceFields {
	out := make([]ResourceFields, 0, len(m))
	for resource, fields := range m {
		out = append(out, ResourceFields{Resource: resource, Fields: fields})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Resource < out[j].Resource
	})
	return out
}

// Fields appends each fieldset to fields[resource], in the order given.
func (q *Builder) Fields(fields ...ResourceFields) *Builder {
	for _, f := range fields {
		q.write(KeyFields+"["+f.Resource+"]", f.Fields...)
	}
	return q
}

// Page sets the page number, replacing any previous value.
func (q *Builder) Page(n int) *Builder {
	return q.overwrite(KeyPage, n)
}

// Limit sets the page size, replacing any previous value.
func (q *Builder) Limit(n int) *Builder {
	return q.overwrite(KeyLimit, n)
}

// When calls fn with the builder if cond is true.
func (q *Builder) When(cond bool, fn func(q *Builder)) *Builder {
	if cond {
		fn(q)
	}
	return q
}

// Tap calls fn with the builder.
func (q *Builder) Tap(fn func(q *Builder)) *Builder {
	fn(q)
	return q
}

// Scopes applies each scope in order.
func (q *Builder) Scopes(scopes ...Scope) *Builder {
	for _, scope := range scopes {
		scope(q)
	}
	return q
}

// Forget removes key. If key is not stored literally, its aliased form is
// tried. Forgetting an absent key does nothing.
func (q *Builder) Forget(key string) *Builder {
	q.params.delete(q.lookupKey(key))
	return q
}

// ForgetValue removes every occurrence of value from key, with the same key
// lookup as Forget. The key remains even if no values are left.
func (q *Builder) ForgetValue(key, value string) *Builder {
	q.params.removeValue(q.lookupKey(key), value)
	return q
}

// Forgets calls Forget for each key in order.
func (q *Builder) Forgets(keys ...string) *Builder {
	for _, key := range keys {
		q.Forget(key)
	}
	return q
}

// Keys returns the stored keys in insertion order.
func (q *Builder) Keys() []string {
	keys := make([]string, len(q.params.keys))
	copy(keys, q.params.keys)
	return keys
}

// Values returns a copy of the values stored under key, which must be the
// stored (already aliased) key.
func (q *Builder) Values(key string) []string {
	v, ok := q.params.get(key)
	if !ok {
		return nil
	}
	cp := make([]string, len(v))
	copy(cp, v)
	return cp
}

// Has reports whether key is stored, even with an empty value list.
func (q *Builder) Has(key string) bool {
	return q.params.has(key)
}

// Clone returns an independent copy of the builder. The copy shares the alias
// table and observer.
func (q *Builder) Clone() *Builder {
	return &Builder{
		path:     q.path,
		params:   q.params.clone(),
		aliases:  q.aliases,
		observer: q.observer,
	}
}

// write resolves key through the alias table and appends values.
func (q *Builder) write(key string, values ...string) *Builder {
	key = q.resolveKey(key)
	q.params.add(key, values...)
	if q.observer != nil {
		q.observer.ParamWritten(key, len(values))
	}
	return q
}

// overwrite stores n under key as-is; pagination keys are not aliased.
func (q *Builder) overwrite(key string, n int) *Builder {
	q.params.set(key, strconv.Itoa(n))
	if q.observer != nil {
		q.observer.ParamWritten(key, 1)
	}
	return q
}

func (q *Builder) resolveKey(key string) string {
	resolved, applied := q.aliases.resolve(key)
	if q.observer != nil {
		for _, alias := range applied {
			q.observer.AliasApplied(alias)
		}
	}
	return resolved
}

// lookupKey returns key if stored, otherwise its aliased form.
func (q *Builder) lookupKey(key string) string {
	if q.params.has(key) {
		return key
	}
	return q.resolveKey(key)
}
