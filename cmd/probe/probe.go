package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/agent-tipjar/internal/config"
	"github/chapool/agent-tipjar/internal/util/command"
)

const (
	verboseFlag string = "verbose"
	urlFlag     string = "url"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("probe",
		newLiveness(),
		newReadiness(),
	)
}

func newProbeCommand(use string, short string, path string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.DefaultServiceConfigFromEnv()

			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				return errors.Wrapf(err, "failed to parse flag %s", verboseFlag)
			}

			baseURL, err := cmd.Flags().GetString(urlFlag)
			if err != nil {
				return errors.Wrapf(err, "failed to parse flag %s", urlFlag)
			}
			if baseURL == "" {
				baseURL = localURL(cfg.Echo.ListenAddress)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Management.ProbeTimeout+time.Second)
			defer cancel()

			body, err := probe(ctx, strings.TrimSuffix(baseURL, "/")+path)
			if verbose {
				fmt.Fprintln(cmd.OutOrStdout(), body)
			}

			return err
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")
	cmd.Flags().String(urlFlag, "", "Base URL of the running server (default derived from SERVER_ECHO_LISTEN_ADDRESS)")

	return cmd
}

// localURL turns a listen address like ":8080" into a loopback URL.
func localURL(listenAddress string) string {
	if strings.HasPrefix(listenAddress, ":") {
		return "http://127.0.0.1" + listenAddress
	}

	return "http://" + listenAddress
}

func probe(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to create probe request")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "probe %s failed", url)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<10))
	if err != nil {
		return "", errors.Wrap(err, "failed to read probe response")
	}

	if res.StatusCode != http.StatusOK {
		return string(body), errors.Errorf("probe %s returned status %d", url, res.StatusCode)
	}

	return string(body), nil
}
