package probe

import "github.com/spf13/cobra"

func newLiveness() *cobra.Command {
	return newProbeCommand("liveness", "Checks that the running server is initialized (/-/ready)", "/-/ready")
}
