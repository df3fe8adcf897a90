/*
Package session keeps the client side of a conversation.

The resolver is stateless: every turn carries the caller's accumulated context. A Conversation
is the bookkeeping a client needs to build those turns. It remembers the original prompt, the
answers given so far and the last outcome, and it turns user actions (pick a flavour, remove a
flavour, set the table, pay, start over) into the next turn to submit.
*/
package session
