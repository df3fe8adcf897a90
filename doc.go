/*
Package taproom is a deterministic, multi-turn order-intent resolver for a bar.

Given a free-text utterance and the session context the caller echoes back on every turn, the
engine extracts a table number, a Guinness order and crisp orders, and either prices the order
or asks one structured question. The engine keeps no conversation state: everything it needs
arrives with the turn.

# Concept

A turn runs through a fixed pipeline:

	table -> drink -> snacks -> assembly

The first stage that lacks information returns a Clarification and the later stages never run.
The caller answers by resubmitting the same utterance with an updated context (a table number,
or the complete list of crisp flavours, one per bag). When every slot is filled the turn
produces a Proposal: order lines, a total in pence and a readable summary. Utterances with
nothing recognisable end in an empty-order outcome.

# Usage

	eng, err := taproom.New()
	if err != nil {
		log.Fatal(err)
	}

	out, err := eng.Resolve(ctx, domain.Turn{Text: "two bags of crisps for table 4"})
	if err != nil {
		log.Fatal(err)
	}

	if out.Kind == domain.OutcomeClarification {
		// Ask the user, then resubmit with the answers.
		turn := domain.Turn{
			Text:    "two bags of crisps for table 4",
			Context: domain.SessionContext{}.WithSnacks(domain.Selections{"Ready Salted", "Cheese and Onion"}),
		}
		out, err = eng.Resolve(ctx, turn)
	}

# Surfaces

The same engine backs an HTTP API (pkg/adapters/http), an MCP server (pkg/adapters/mcp) and an
interactive terminal client (pkg/runner). See cmd/taproom.
*/
package taproom
