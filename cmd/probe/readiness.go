package probe

import "github.com/spf13/cobra"

func newReadiness() *cobra.Command {
	return newProbeCommand("readiness", "Checks that the running server reaches its RPC node (/-/healthy)", "/-/healthy")
}
