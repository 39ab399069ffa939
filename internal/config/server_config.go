package config

import (
	"time"

	"github.com/rs/zerolog"
	"github/chapool/agent-tipjar/internal/util"
)

type EchoServer struct {
	Debug                     bool
	ListenAddress             string
	EnableCORSMiddleware      bool
	EnableLoggerMiddleware    bool
	EnableRecoverMiddleware   bool
	EnableRequestIDMiddleware bool
	EnableMetricsMiddleware   bool
	// RateLimit is the per-client request rate on /api/* in requests per
	// second. 0 disables rate limiting.
	RateLimit float64
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestHeader   bool
	LogRequestQuery    bool
	PrettyPrintConsole bool
}

type ManagementServer struct {
	// ProbeTimeout bounds the readiness probe's upstream RPC check.
	ProbeTimeout time.Duration
}

// Chain describes the EVM network the tip jar reads from and asks the
// signing agent to switch to.
type Chain struct {
	RPCURL       string
	ChainID      int64
	Name         string
	Network      string
	NativeName   string
	NativeSymbol string
	// NativeDecimals is the precision of the gas token (18 for ETH).
	NativeDecimals int32
	ExplorerURL    string
	PublicRPCURL   string
	RPCTimeout     time.Duration
}

// Token is the ERC-20 the tips are denominated in.
type Token struct {
	Address  string
	Symbol   string
	Decimals int32
}

type TipJar struct {
	// PublicURL is the externally visible base URL used in tip links and
	// the embed snippet. Empty means "derive from the request".
	PublicURL     string
	PresetAmounts []string
	// CLIName is the command shown in the create-wallet note.
	CLIName string
}

type Server struct {
	Echo       EchoServer
	Logger     LoggerServer
	Management ManagementServer
	Chain      Chain
	Token      Token
	TipJar     TipJar
}

const (
	baseMainnetChainID = 8453
	usdcDecimals       = 6
	etherDecimals      = 18
)

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultServiceConfigFromEnv()!
func DefaultServiceConfigFromEnv() Server {
	DotEnvTryLoad(util.GetEnv("TIPJAR_ENV_FILE", ".env.local"))

	return Server{
		Echo: EchoServer{
			Debug:                     util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
			ListenAddress:             util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
			EnableCORSMiddleware:      util.GetEnvAsBool("SERVER_ENABLE_CORS_MIDDLEWARE", true),
			EnableLoggerMiddleware:    util.GetEnvAsBool("SERVER_ENABLE_LOGGER_MIDDLEWARE", true),
			EnableRecoverMiddleware:   util.GetEnvAsBool("SERVER_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableRequestIDMiddleware: util.GetEnvAsBool("SERVER_ENABLE_REQUEST_ID_MIDDLEWARE", true),
			EnableMetricsMiddleware:   util.GetEnvAsBool("SERVER_ENABLE_METRICS_MIDDLEWARE", true),
			RateLimit:                 util.GetEnvAsFloat("SERVER_API_RATE_LIMIT", 0),
		},
		Logger: LoggerServer{
			Level:              util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_LEVEL", zerolog.DebugLevel.String())),
			RequestLevel:       util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String())),
			LogRequestHeader:   util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_HEADER", false),
			LogRequestQuery:    util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_QUERY", false),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Management: ManagementServer{
			ProbeTimeout: util.GetEnvAsDuration("SERVER_MANAGEMENT_PROBE_TIMEOUT", 3*time.Second),
		},
		Chain: Chain{
			RPCURL:         util.GetEnv("BASE_RPC_URL", "https://mainnet.base.org"),
			ChainID:        util.GetEnvAsInt64("CHAIN_ID", baseMainnetChainID),
			Name:           util.GetEnv("CHAIN_NAME", "Base"),
			Network:        util.GetEnv("CHAIN_NETWORK", "base"),
			NativeName:     util.GetEnv("CHAIN_NATIVE_NAME", "ETH"),
			NativeSymbol:   util.GetEnv("CHAIN_NATIVE_SYMBOL", "ETH"),
			NativeDecimals: etherDecimals,
			ExplorerURL:    util.GetEnv("CHAIN_EXPLORER_URL", "https://basescan.org"),
			PublicRPCURL:   util.GetEnv("CHAIN_PUBLIC_RPC_URL", "https://mainnet.base.org"),
			RPCTimeout:     util.GetEnvAsDuration("CHAIN_RPC_TIMEOUT", 5*time.Second),
		},
		Token: Token{
			Address:  util.GetEnv("TOKEN_ADDRESS", "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"),
			Symbol:   util.GetEnv("TOKEN_SYMBOL", "USDC"),
			Decimals: int32(util.GetEnvAsInt("TOKEN_DECIMALS", usdcDecimals)), //nolint:gosec // small config value
		},
		TipJar: TipJar{
			PublicURL:     util.GetEnv("TIPJAR_PUBLIC_URL", ""),
			PresetAmounts: util.GetEnvAsStringArr("TIPJAR_PRESET_AMOUNTS", []string{"1", "5", "10", "25"}),
			CLIName:       util.GetEnv("TIPJAR_CLI_NAME", "app wallet generate"),
		},
	}
}
