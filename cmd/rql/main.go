// rql builds canonical query strings for JSON:API-style collection endpoints.
//
// Usage:
//
//	# Build a query string
//	rql build /users --filter name=john --sort name --sort -age
//
//	# Sparse fieldsets and pagination
//	rql build /users --fields users=name,age --page 2
//
//	# Fragments instead of a string, e.g. for cache keys
//	rql build /users --filter name=john --page 2 --array --include-path
//
//	# Apply aliases from a config file and rebuild when it changes
//	rql build /users --filter name=john --config rql.yaml --watch
//
//	# Show the configured alias table
//	rql aliases
package main

func main() {
	Execute()
}
