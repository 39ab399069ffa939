package wallet

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github/chapool/agent-tipjar/internal/config"
	"github/chapool/agent-tipjar/internal/wallet/address"
	"golang.org/x/term"
)

const (
	nameFlag         = "name"
	secretFlag       = "secret"
	promptSecretFlag = "prompt-secret"
	randomFlag       = "random"
	mnemonicFlag     = "mnemonic"

	envPrefix = "TIPJAR"
	separator = "=================================================="
)

func newGenerate() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Prints the wallet of an agent, including its private key",
		Long: `Derives the wallet the server hands out for an agent name and prints
its private key, so tips can be withdrawn with any EVM wallet.

The secret may also be supplied through TIPJAR_SECRET.
Runs fully offline.`,
		Example: `  app wallet generate --name "my-agent"
  app wallet generate --name "my-agent" --prompt-secret
  app wallet generate --random`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.StringP(nameFlag, "n", "", "Agent name")
	flags.StringP(secretFlag, "s", "", "Optional secret mixed into the derivation")
	flags.Bool(promptSecretFlag, false, "Read the secret from the terminal without echo")
	flags.Bool(randomFlag, false, "Generate a random wallet with a recovery phrase instead")
	flags.String(mnemonicFlag, "", "Recover the first account of a BIP39 recovery phrase instead")

	cmd.MarkFlagsMutuallyExclusive(nameFlag, randomFlag, mnemonicFlag)
	cmd.MarkFlagsMutuallyExclusive(secretFlag, promptSecretFlag)

	v.SetEnvPrefix(envPrefix)
	_ = v.BindPFlags(flags)
	_ = v.BindEnv(secretFlag)

	return cmd
}

func runGenerate(cmd *cobra.Command, v *viper.Viper) error {
	out := cmd.OutOrStdout()
	chain := config.DefaultServiceConfigFromEnv().Chain

	fmt.Fprintf(out, "\n🤖 Agent Tip Jar - Wallet Generator\n\n%s\n", separator)

	switch {
	case v.GetBool(randomFlag):
		keys, err := address.Random()
		if err != nil {
			return err
		}
		defer keys.Clear()

		fmt.Fprint(out, "\n📝 New Random Wallet Generated:\n\n")
		printKeys(out, &keys.KeyMaterial)
		fmt.Fprintf(out, "Mnemonic:    %s\n", keys.Mnemonic)
		fmt.Fprintf(out, "Path:        %s\n", keys.DerivationPath)

	case v.GetString(mnemonicFlag) != "":
		keys, err := address.FromMnemonic(v.GetString(mnemonicFlag), "", address.DefaultPath)
		if err != nil {
			return errors.Wrap(err, "failed to recover wallet")
		}
		defer keys.Clear()

		fmt.Fprint(out, "\n📝 Recovered Wallet:\n\n")
		printKeys(out, &keys.KeyMaterial)
		fmt.Fprintf(out, "Path:        %s\n", keys.DerivationPath)

	case v.GetString(nameFlag) != "":
		name, err := address.ValidateName(v.GetString(nameFlag))
		if err != nil {
			return err
		}

		secret := v.GetString(secretFlag)
		if v.GetBool(promptSecretFlag) {
			secret, err = promptSecret(cmd)
			if err != nil {
				return err
			}
		}

		keys, err := address.Deterministic(name, secret)
		if err != nil {
			return err
		}
		defer keys.Clear()

		fmt.Fprintf(out, "\n📝 Wallet for %q:\n\n", name)
		printKeys(out, keys)
		if secret != "" {
			fmt.Fprint(out, "\n🔐 Derived with a secret. The same secret is needed to derive it again.\n")
		}

	default:
		return errors.Errorf("one of --%s, --%s or --%s is required", nameFlag, randomFlag, mnemonicFlag)
	}

	fmt.Fprintf(out, "\n%s\n", separator)
	fmt.Fprint(out, "\n⚠️  IMPORTANT: Keep your private key safe!\n")
	fmt.Fprint(out, "    Never share it or commit it to version control.\n\n")
	fmt.Fprint(out, "💡 Tip: Import this wallet into MetaMask to withdraw tips.\n")
	fmt.Fprintf(out, "    Network: %s (Chain ID: %d)\n", chain.Name, chain.ChainID)
	if chain.PublicRPCURL != "" {
		fmt.Fprintf(out, "    RPC: %s\n", chain.PublicRPCURL)
	}
	fmt.Fprintln(out)

	return nil
}

func printKeys(out io.Writer, keys *address.KeyMaterial) {
	fmt.Fprintf(out, "Address:     %s\n", keys.AddressHex())
	fmt.Fprintf(out, "Private Key: %s\n", keys.PrivateKeyHex())
}

//nolint:forbidigo // Secret input requires direct terminal I/O
func promptSecret(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit into int
	if !term.IsTerminal(fd) {
		return "", errors.New("--prompt-secret requires an interactive terminal")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Enter secret (will not be displayed): ")
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", errors.Wrap(err, "failed to read secret from terminal")
	}

	return string(secret), nil
}
