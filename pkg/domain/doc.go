/*
Package domain contains the core domain models for the Taproom order-intent resolver.

Every value in this package is created fresh per turn and discarded once the outcome has been
rendered. The only state that crosses turns is the SessionContext the caller echoes back, so the
package is kept pure and free of I/O, persistence, or transport concerns.

# Key Entities

  - SessionContext: the caller-supplied selections from previous turns (table, snack flavours).
  - Clarification: a structured question the resolver asks instead of producing an order.
  - Resolution: the two-variant result of a single resolver (resolved value or clarification).
  - Proposal: priced order lines, summary, and total ready for checkout.
  - Outcome: what a full turn produces (proposal, clarification, or empty order).
*/
package domain
