package wallet

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/agent-tipjar/internal/config"
	"github/chapool/agent-tipjar/internal/wallet/address"
	"github/chapool/agent-tipjar/internal/wallet/balance"
)

const (
	addressFlag = "address"
	rpcURLFlag  = "rpc-url"
)

func newBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Reads the token and native balance of a tip jar",
		Example: `  app wallet balance --address 0x11587D50fe524526450503d03E9d6c26F1d36F63
  app wallet balance --name "my-agent"`,
		RunE: runBalance,
	}

	cmd.Flags().String(addressFlag, "", "Address to read")
	cmd.Flags().StringP(nameFlag, "n", "", "Agent name whose wallet (without secret) to read")
	cmd.Flags().String(rpcURLFlag, "", "RPC endpoint (default BASE_RPC_URL)")
	cmd.MarkFlagsMutuallyExclusive(addressFlag, nameFlag)

	return cmd
}

func runBalance(cmd *cobra.Command, _ []string) error {
	cfg := config.DefaultServiceConfigFromEnv()

	if rpcURL, _ := cmd.Flags().GetString(rpcURLFlag); rpcURL != "" {
		cfg.Chain.RPCURL = rpcURL
	}

	addr, _ := cmd.Flags().GetString(addressFlag)
	if name, _ := cmd.Flags().GetString(nameFlag); name != "" {
		keys, err := address.Deterministic(name, "")
		if err != nil {
			return err
		}
		addr = keys.AddressHex()
		keys.Clear()
	}

	if addr == "" {
		return errors.Errorf("one of --%s or --%s is required", addressFlag, nameFlag)
	}

	svc, err := balance.Dial(cmd.Context(), cfg.Chain, cfg.Token)
	if err != nil {
		return err
	}
	defer svc.Close()

	snapshot, err := svc.ReadBalances(cmd.Context(), addr)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Address: %s\n", snapshot.Address.Hex())
	fmt.Fprintf(out, "Network: %s\n", snapshot.Network)
	printResult(out, cfg.Token.Symbol, snapshot.USDC)
	printResult(out, cfg.Chain.NativeSymbol, snapshot.ETH)

	return nil
}

func printResult(out io.Writer, symbol string, r balance.Result) {
	if r.Degraded() {
		fmt.Fprintf(out, "%-8s %s (read failed: %v)\n", symbol+":", r.Value, r.Err)
		return
	}

	fmt.Fprintf(out, "%-8s %s\n", symbol+":", r.Value)
}
