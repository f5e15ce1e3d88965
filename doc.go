// Clientgeo is a service which detects where HTTP clients come from.
//
// It does 2 things: finds out a real IP address of the client, looking
// through a list of headers set by proxies and load balancers, and
// translates an IP address into a subdivision (state, province or
// region) ISO code using a local MaxMind City database.
//
// Geodb
//
// A thin wrapper around MaxMind database reader which distinguishes
// missing entries from I/O failures.
//
// Locator
//
// Header heuristic, lookups with LRU cache and a lazy cell which opens
// a database once per process.
//
// Clientgeo
//
// A main package wires config, locator and HTTP API together. The
// resulting binary starts an HTTP server and refuses to start if the
// database cannot be opened.
package main
