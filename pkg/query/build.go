package query

import "strings"

// BuildOptions controls BuildAsArray.
type BuildOptions struct {
	// IncludePath puts the base path first.
	IncludePath bool
	// IncludePagination keeps the page and limit keys, which are dropped by default.
	IncludePagination bool
	// Excludes lists stored keys to leave out.
	Excludes []string
}

func (o BuildOptions) excludes(key string) bool {
	for _, e := range o.Excludes {
		if e == key {
			return true
		}
	}
	return false
}

// BuildParam renders key as "key=v1,v2". It returns "" if key is not stored.
func (q *Builder) BuildParam(key string) string {
	values, ok := q.params.get(key)
	if !ok {
		return ""
	}
	return key + "=" + strings.Join(values, ",")
}

// Build renders the path followed by every stored key in insertion order.
// The "?" is present only when at least one key is stored.
func (q *Builder) Build() string {
	fragments := make([]string, 0, q.params.len())
	for _, key := range q.params.keys {
		if f := q.BuildParam(key); f != "" {
			fragments = append(fragments, f)
		}
	}
	if q.observer != nil {
		q.observer.Built("string", len(fragments))
	}

	if q.params.len() == 0 {
		return q.path
	}
	return q.path + "?" + strings.Join(fragments, "&")
}

// String implements fmt.Stringer.
func (q *Builder) String() string {
	return q.Build()
}

// BuildAsArray returns the rendered fragments instead of a joined string.
func (q *Builder) BuildAsArray(opts BuildOptions) []string {
	data := make([]string, 0, q.params.len()+1)
	if opts.IncludePath {
		data = append(data, q.path)
	}

	for _, key := range q.params.keys {
		if opts.excludes(key) {
			continue
		}
		if !opts.IncludePagination && (key == KeyPage || key == KeyLimit) {
			continue
		}
		data = append(data, q.BuildParam(key))
	}

	if q.observer != nil {
		q.observer.Built("array", len(data))
	}
	return data
}
