// Package index persists parsed workfile records in SQLite so shots
// and latest versions can be queried without walking the share.
//
// The Store manages the database connection, schema initialization,
// and upserts keyed by absolute path. Scan walks a project root,
// parses every candidate workfile, and feeds the store; files that do
// not follow the naming convention are counted and skipped, never
// partially indexed.
//
// The database is a rebuildable cache of what is on disk, not a
// long-term archive. Schema changes bump the version in schema.go;
// users delete the database to adopt the new schema.
package index
