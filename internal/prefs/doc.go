// Package prefs holds the non-sql splitter stores: a per-user TOML file
// and a shared redis keyspace.
package prefs
