package query

// params is an insertion-ordered map from parameter key to its values.
type params struct {
	keys   []string
	values map[string][]string
}

func newParams() *params {
	return &params{values: make(map[string][]string)}
}

func (p *params) len() int {
	return len(p.keys)
}

func (p *params) has(key string) bool {
	_, ok := p.values[key]
	return ok
}

func (p *params) get(key string) ([]string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// add appends values to key, creating the entry on first use.
func (p *params) add(key string, values ...string) {
	existing, ok := p.values[key]
	if !ok {
		p.keys = append(p.keys, key)
		existing = make([]string, 0, len(values))
	}
	p.values[key] = append(existing, values...)
}

// set replaces the values of key. A new key goes to the end of the order; an
// existing key keeps its position.
func (p *params) set(key string, values ...string) {
	if !p.has(key) {
		p.keys = append(p.keys, key)
	}
	cp := make([]string, len(values))
	copy(cp, values)
	p.values[key] = cp
}

func (p *params) delete(key string) {
	if !p.has(key) {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// removeValue drops every occurrence of value from key. The entry stays even
// when its list becomes empty.
func (p *params) removeValue(key, value string) {
	existing, ok := p.values[key]
	if !ok {
		return
	}
	kept := make([]string, 0, len(existing))
	for _, v := range existing {
		if v != value {
			kept = append(kept, v)
		}
	}
	p.values[key] = kept
}

func (p *params) clone() *params {
	cp := &params{
		keys:   make([]string, len(p.keys)),
		values: make(map[string][]string, len(p.values)),
	}
	copy(cp.keys, p.keys)
	for k, v := range p.values {
		vals := make([]string, len(v))
		copy(vals, v)
		cp.values[k] = vals
	}
	return cp
}
