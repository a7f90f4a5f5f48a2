package config

import (
	"os"
	"strings"
)

// Env captures the runtime settings for safelendd.
type Env struct {
	RPCURL        string
	Network       string
	Owner         string
	DefaultAsset  string
	CatalogPath   string
	MetricsListen string
	Environment   string
}

const (
	envRPCURL        = "SAFELEND_RPC_URL"
	envNetwork       = "SAFELEND_NETWORK"
	envOwner         = "SAFELEND_OWNER"
	envDefaultAsset  = "SAFELEND_DEFAULT_ASSET"
	envCatalogPath   = "SAFELEND_CATALOG"
	envMetricsListen = "SAFELEND_METRICS_LISTEN"
	envEnvironment   = "SAFELEND_ENV"

	defaultNetwork       = "mainnet"
	defaultAssetID       = "DAI"
	defaultMetricsListen = "0.0.0.0:9478"
)

// LoadEnv constructs an Env from environment variables and defaults.
func LoadEnv() Env {
	return Env{
		RPCURL:        strings.TrimSpace(os.Getenv(envRPCURL)),
		Network:       stringFromEnv(envNetwork, defaultNetwork),
		Owner:         strings.TrimSpace(os.Getenv(envOwner)),
		DefaultAsset:  stringFromEnv(envDefaultAsset, defaultAssetID),
		CatalogPath:   strings.TrimSpace(os.Getenv(envCatalogPath)),
		MetricsListen: stringFromEnv(envMetricsListen, defaultMetricsListen),
		Environment:   strings.TrimSpace(os.Getenv(envEnvironment)),
	}
}

// Sanitized returns a copy safe for logging. RPC endpoints routinely embed
// provider keys in the path, so everything past the host is masked.
func (e Env) Sanitized() Env {
	clone := e
	clone.RPCURL = maskURL(clone.RPCURL)
	return clone
}

func stringFromEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func maskURL(raw string) string {
	if raw == "" {
		return ""
	}
	schemeEnd := strings.Index(raw, "://")
	rest := raw
	prefix := ""
	if schemeEnd >= 0 {
		prefix = raw[:schemeEnd+3]
		rest = raw[schemeEnd+3:]
	}
	if slash := strings.Index(rest, "/"); slash >= 0 {
		return prefix + rest[:slash] + "/***"
	}
	return prefix + rest
}
