package tipjar_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/agent-tipjar/internal/api"
	"github/chapool/agent-tipjar/internal/api/httperrors"
	"github/chapool/agent-tipjar/internal/test"
	"github/chapool/agent-tipjar/internal/types"
)

func TestPostCreateWallet(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"agentName": "  Claude ",
		}

		res := test.PerformRequest(t, s, "POST", "/api/create-wallet", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.CreateWalletResponse
		test.ParseResponseBody(t, res, &response)

		require.NotNil(t, response.Address)
		require.NotNil(t, response.AgentName)
		assert.Equal(t, "0x11587D50fe524526450503d03E9d6c26F1d36F63", *response.Address)
		assert.Equal(t, "claude", *response.AgentName)
		assert.Equal(t, `To access the private key, run: app wallet generate --name "claude"`, response.Note)

		assert.InDelta(t, 1, testutil.ToFloat64(s.Metrics.WalletsDerived), 0)
	})
}

func TestPostCreateWalletWithSecret(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"agentName": "claude",
			"secret":    "s3cret",
		}

		res := test.PerformRequest(t, s, "POST", "/api/create-wallet", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.CreateWalletResponse
		test.ParseResponseBody(t, res, &response)
		assert.Equal(t, "0x610cdd7bBB55207E4e3997283c6f6e89D78e1Fc1", *response.Address)
	})
}

func TestPostCreateWalletDeterministic(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		var addresses []string
		for _, name := range []string{"my-agent", "MY-AGENT", " my-agent"} {
			res := test.PerformRequest(t, s, "POST", "/api/create-wallet", test.GenericPayload{"agentName": name}, nil)
			require.Equal(t, http.StatusOK, res.Result().StatusCode)

			var response types.CreateWalletResponse
			test.ParseResponseBody(t, res, &response)
			addresses = append(addresses, *response.Address)
		}

		for _, addr := range addresses {
			assert.Equal(t, "0x1De9B5d5AAf8Aa2fC863f847eCF074212c48D341", addr)
		}
	})
}

func TestPostCreateWalletNeverReturnsPrivateKey(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/create-wallet", test.GenericPayload{"agentName": "claude"}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		body := res.Body.String()
		assert.NotContains(t, strings.ToLower(body), "privatekey")
		assert.NotContains(t, strings.ToLower(body), "545ed38f55e9c98bdaa6de74685901fa217d14036ab2d41edad55180c97deb46")

		var response map[string]interface{}
		test.ParseResponseBody(t, res, &response)
		assert.ElementsMatch(t, []string{"address", "agentName", "note"}, keys(response))
	})
}

func TestPostCreateWalletInvalidName(t *testing.T) {
	tests := []struct {
		name    string
		payload interface{}
		want    *httperrors.HTTPError
	}{
		{"missing", test.GenericPayload{}, httperrors.ErrBadRequestAgentNameRequired},
		{"empty", test.GenericPayload{"agentName": ""}, httperrors.ErrBadRequestAgentNameRequired},
		{"whitespace", test.GenericPayload{"agentName": "   "}, httperrors.ErrBadRequestAgentNameRequired},
		{"too short", test.GenericPayload{"agentName": "a"}, httperrors.ErrBadRequestAgentNameTooShort},
		{"too short after trim", test.GenericPayload{"agentName": " a  "}, httperrors.ErrBadRequestAgentNameTooShort},
		{"too long", test.GenericPayload{"agentName": strings.Repeat("a", 51)}, httperrors.ErrBadRequestAgentNameTooLong},
		{"not a string", test.GenericPayload{"agentName": 42}, httperrors.ErrBadRequestInvalidBody},
		{"not json", "agentName=claude", httperrors.ErrBadRequestInvalidBody},
	}

	test.WithTestServer(t, func(s *api.Server) {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				res := test.PerformRequest(t, s, "POST", "/api/create-wallet", tt.payload, nil)
				test.RequireHTTPError(t, res, tt.want)
			})
		}

		assert.InDelta(t, 0, testutil.ToFloat64(s.Metrics.WalletsDerived), 0)
	})
}

func TestPostCreateWalletNameLengthBounds(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		for _, name := range []string{"ab", strings.Repeat("a", 50)} {
			res := test.PerformRequest(t, s, "POST", "/api/create-wallet", test.GenericPayload{"agentName": name}, nil)
			require.Equal(t, http.StatusOK, res.Result().StatusCode, "name %q", name)
		}
	})
}

func TestPostCreateWalletSecretTooLong(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"agentName": "claude",
			"secret":    strings.Repeat("x", 257),
		}

		res := test.PerformRequest(t, s, "POST", "/api/create-wallet", payload, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
	})
}

func TestPostCreateWalletMethodNotAllowed(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			res := test.PerformRequest(t, s, method, "/api/create-wallet", nil, nil)
			test.RequireHTTPError(t, res, httperrors.ErrMethodNotAllowed)
		}
	})
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}
