// Package query builds canonical query strings for collection-oriented HTTP
// APIs that follow the filter/sort/include/append/fields/page convention.
//
// # Builder
//
// A Builder owns a base path and an insertion-ordered parameter store. Every
// mutation returns the same Builder so calls can be chained:
//
//	q := query.New("/users").
//	    Filter("name", "john").
//	    Sort("name", "-age").
//	    Include("posts").
//	    Page(2)
//
//	q.Build() // "/users?filter[name]=john&sort=name,-age&include=posts&page=2"
//
// Values accumulate: calling Sort twice appends to the same key. Page and
// Limit are the exception and overwrite the previous value.
//
// # Aliases
//
// An AliasTable rewrites parameter keys when they are written. Each alias is
// an unanchored substring replacement applied to the first occurrence only,
// in table order:
//
//	aliases := query.NewAliasTable(query.Alias{From: "filter", To: "f"})
//	query.New("/users", query.WithAliases(aliases)).
//	    Filter("name", "john").
//	    Build() // "/users?f[name]=john"
//
// Builders that share a table see Define calls for future writes only; keys
// already stored are never renamed.
//
// # Serialization
//
// Build joins every stored key as "key=v1,v2" with "&" and prefixes the base
// path and "?". BuildAsArray returns the fragments instead, optionally with the
// path, pagination keys, or without caller-named keys. Values are not
// URL-encoded.
//
// # Concurrency
//
// A Builder must not be mutated from multiple goroutines. An AliasTable is
// safe for concurrent use.
package query
