/*
Package runner implements the interactive turn loop for the Taproom resolver.

It acts as the bridge between the stateless resolver and a person typing orders. The runner
keeps the client side of the conversation (see package session), turns each line of input into
the next turn, and presents outcomes through a pluggable IOHandler.

# Key Components

  - Runner: reads input, resolves turns and handles pay and reset.
  - IOHandler: decouples how outcomes are shown and input is read.
  - TextHandler: interactive terminal usage, rendered as markdown.
  - JSONHandler: one JSON object per line, for scripting and other processes.

# Usage

	r := runner.NewRunner(
		runner.WithResolver(engine),
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}

While a question is open the runner accepts answers: a table number, an option number or name,
"change N" to drop the Nth chosen flavour. A checkout accepts "pay" or "reset". Anything else is
taken as a new order utterance. "exit" and "quit" end the loop.
*/
package runner
