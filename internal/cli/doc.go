// Package cli wires configuration, logging, metrics and the cache into the engine and hosts
// the command implementations used by cmd/taproom.
package cli
