// Package postgres provides PostgreSQL implementations of the store
// interfaces. All stores accept a store.DBTX so they run equally well
// on a connection pool or inside a transaction, and map driver errors
// onto the store error taxonomy.
package postgres
