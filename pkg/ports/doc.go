/*
Package ports defines the driven ports (interfaces) for the Taproom resolver.

These interfaces decouple the pure resolver pipeline from the catalog source and from optional
infrastructure such as the turn cache.

# Key Interfaces

  - Catalog: read-only menu lookup (find by predicate, list by tag).
  - TurnCache: optional memoization of turn outcomes keyed by a digest of the turn input.
  - Resolver: the stateless engine consumed by transports (HTTP, MCP, CLI runner).
*/
package ports
