package common_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github/chapool/agent-tipjar/internal/api"
	"github/chapool/agent-tipjar/internal/test"
)

func TestGetHealthy(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/healthy", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		require.Equal(t, "Healthy.", res.Body.String())
	})
}

func TestGetHealthyWrongChain(t *testing.T) {
	test.WithTestServerAndNode(t, func(s *api.Server, node *test.FakeNode) {
		node.SetChainID(1)

		res := test.PerformRequest(t, s, "GET", "/-/healthy", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		require.Equal(t, "Unhealthy.", res.Body.String())
	})
}

func TestGetHealthyNodeDown(t *testing.T) {
	test.WithTestServerAndNode(t, func(s *api.Server, node *test.FakeNode) {
		node.Close()

		res := test.PerformRequest(t, s, "GET", "/-/healthy", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		require.Equal(t, "Unhealthy.", res.Body.String())
	})
}

func TestGetVersion(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/version", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		require.Contains(t, res.Body.String(), "agent-tipjar @ ")
	})
}
