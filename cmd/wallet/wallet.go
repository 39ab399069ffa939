package wallet

import (
	"github.com/spf13/cobra"
	"github/chapool/agent-tipjar/internal/util/command"
)

// New groups the offline wallet tooling. Nothing here talks to the HTTP
// server; private keys are only ever printed to the local terminal.
func New() *cobra.Command {
	return command.NewSubcommandGroup("wallet",
		newGenerate(),
		newBalance(),
	)
}
