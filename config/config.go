// Package config holds the per-network token catalog and the daemon's
// runtime settings.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"

	"safelend/lend"
)

//go:embed tokens.toml
var defaultCatalogTOML string

// TokenEntry is one catalog row as it appears in the TOML file.
type TokenEntry struct {
	Network    string `toml:"network"`
	ID         string `toml:"id"`
	Label      string `toml:"label"`
	Decimals   int    `toml:"decimals"`
	TokenAddr  string `toml:"token_addr"`
	CTokenAddr string `toml:"ctoken_addr"`
	Native     bool   `toml:"native"`
}

type catalogFile struct {
	Tokens []TokenEntry `toml:"tokens"`
}

// Catalog maps network identifiers to their ordered asset lists.
type Catalog struct {
	entries []TokenEntry
}

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() *Catalog {
	catalog, err := parseCatalog(defaultCatalogTOML)
	if err != nil {
		// The embedded catalog ships with the binary; failing to parse it is
		// unrecoverable.
		panic(err)
	}
	return catalog
}

// LoadCatalog reads a catalog file, falling back to the embedded defaults
// when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCatalog(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return parseCatalog(string(raw))
}

func parseCatalog(raw string) (*Catalog, error) {
	var file catalogFile
	if err := toml.Unmarshal([]byte(raw), &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for _, entry := range file.Tokens {
		if strings.TrimSpace(entry.ID) == "" {
			return nil, fmt.Errorf("catalog entry missing id for network %q", entry.Network)
		}
		if entry.Decimals < 0 {
			return nil, fmt.Errorf("catalog entry %s/%s: negative decimals", entry.Network, entry.ID)
		}
		if !common.IsHexAddress(entry.CTokenAddr) {
			return nil, fmt.Errorf("catalog entry %s/%s: invalid market address %q", entry.Network, entry.ID, entry.CTokenAddr)
		}
		if !entry.Native && !common.IsHexAddress(entry.TokenAddr) {
			return nil, fmt.Errorf("catalog entry %s/%s: invalid token address %q", entry.Network, entry.ID, entry.TokenAddr)
		}
	}
	return &Catalog{entries: file.Tokens}, nil
}

// TokenList returns the ordered assets available on a network. Unknown
// networks yield an empty list.
func (c *Catalog) TokenList(network string) []lend.Asset {
	if c == nil {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(network))
	var assets []lend.Asset
	for _, entry := range c.entries {
		if strings.ToLower(entry.Network) != normalized {
			continue
		}
		assets = append(assets, lend.Asset{
			ID:         entry.ID,
			Label:      entry.Label,
			Decimals:   entry.Decimals,
			TokenAddr:  common.HexToAddress(entry.TokenAddr),
			CTokenAddr: common.HexToAddress(entry.CTokenAddr),
			Native:     entry.Native,
		})
	}
	return assets
}

// Find returns the asset with the given id on a network.
func (c *Catalog) Find(network, id string) (lend.Asset, bool) {
	for _, asset := range c.TokenList(network) {
		if strings.EqualFold(asset.ID, id) {
			return asset, true
		}
	}
	return lend.Asset{}, false
}
