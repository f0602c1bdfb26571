// Package market generates the synthetic news feed, signal boards, and
// price data that back the dashboard widgets. Everything here is fake
// data shaped like the real thing; no external market feed is consulted.
package market

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed universe.yaml
var defaultUniverseYAML []byte

// Company is a ticker/name pair in the coverage universe
type Company struct {
	Ticker string `yaml:"ticker"`
	Name   string `yaml:"name"`
}

// WatchlistSeed is a default watchlist offered to new users
type WatchlistSeed struct {
	Name    string   `yaml:"name"`
	Tickers []string `yaml:"tickers"`
}

// OpsAlertSeed is a template for the operations alert feed
type OpsAlertSeed struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// MacroMetricSeed defines the sampling range for a macro snapshot row
type MacroMetricSeed struct {
	Asset string  `yaml:"asset"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

// Universe holds the static world the generators draw from: companies,
// news vocabulary, index and sector definitions, and alert templates.
type Universe struct {
	Companies         []Company         `yaml:"companies"`
	Categories        []string          `yaml:"categories"`
	Impacts           []string          `yaml:"impacts"`
	Sources           []string          `yaml:"sources"`
	Actions           []string          `yaml:"actions"`
	Indices           []string          `yaml:"indices"`
	Sectors           []string          `yaml:"sectors"`
	DefaultWatchlists []WatchlistSeed   `yaml:"default_watchlists"`
	RiskAlerts        []string          `yaml:"risk_alerts"`
	OpsAlerts         []OpsAlertSeed    `yaml:"ops_alerts"`
	MacroMetrics      []MacroMetricSeed `yaml:"macro_metrics"`
	PredictionFactors []string          `yaml:"prediction_factors"`
}

// DefaultUniverse loads the built-in coverage universe
func DefaultUniverse() (*Universe, error) {
	return parseUniverse(defaultUniverseYAML)
}

// LoadUniverse reads a coverage universe from a YAML file, allowing
// deployments to swap the built-in company set without a rebuild.
func LoadUniverse(path string) (*Universe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read universe file: %w", err)
	}
	return parseUniverse(data)
}

func parseUniverse(data []byte) (*Universe, error) {
	var u Universe
	if err := yaml.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("failed to parse universe: %w", err)
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return &u, nil
}

func (u *Universe) validate() error {
	if len(u.Companies) == 0 {
		return fmt.Errorf("universe has no companies")
	}
	if len(u.Categories) == 0 || len(u.Sources) == 0 || len(u.Actions) == 0 {
		return fmt.Errorf("universe is missing news vocabulary")
	}
	if len(u.Indices) == 0 || len(u.Sectors) == 0 {
		return fmt.Errorf("universe is missing index or sector definitions")
	}
	return nil
}

// Company looks up a company by ticker; ok is false when the ticker is
// outside the coverage universe.
func (u *Universe) Company(ticker string) (Company, bool) {
	for _, c := range u.Companies {
		if c.Ticker == ticker {
			return c, true
		}
	}
	return Company{}, false
}
