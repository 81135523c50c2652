// Package replitkv is a [kv.Store] implementation that talks to a Replit
// Database over HTTP.
//
// A Replit Database is addressed by a single connection URL, usually supplied
// to a repl via the REPLIT_DB_URL environment variable. The URL must use the
// "https" scheme and have the host "kv.replit.com".
//
// Keys and values are percent-encoded before they are stored, so any string
// may be used as a key or value. Strings that are empty or consist only of
// whitespace are stored as the empty string.
package replitkv
