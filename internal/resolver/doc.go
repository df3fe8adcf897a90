// Package resolver extracts structured ordering intent from free-text utterances.
//
// Each resolver is a pure function of the utterance and the caller-supplied session context.
// Resolvers that can be blocked by missing information return a domain.Resolution so the
// pipeline can short-circuit on the first clarification.
package resolver
