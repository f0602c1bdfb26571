package market

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"
)

var stances = []string{StanceBuy, StanceHold, StanceSell}
var directions = []string{"BUY", "HOLD", "SELL"}
var horizons = []string{"1d", "3d", "1w"}
var riskLevels = []string{"Low", "Medium", "High"}
var opsStatuses = []string{"Unresolved", "Investigating", "Resolved"}
var opsAssignees = []string{"Ops", "Risk", "PM Team"}

// Generator produces synthetic market data from a coverage universe.
// Safe for concurrent use; the shared rand source is mutex-guarded.
type Generator struct {
	universe *Universe

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a generator seeded from the current time
func NewGenerator(u *Universe) *Generator {
	return NewSeededGenerator(u, time.Now().UnixNano())
}

// NewSeededGenerator creates a generator with a fixed seed, used by tests
// that need reproducible output.
func NewSeededGenerator(u *Universe, seed int64) *Generator {
	return &Generator{
		universe: u,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Universe returns the coverage universe the generator draws from
func (g *Generator) Universe() *Universe {
	return g.universe
}

func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

func (g *Generator) between(min, max float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return min + g.rng.Float64()*(max-min)
}

func (g *Generator) intBetween(min, max int) int {
	return min + g.intn(max-min+1)
}

func (g *Generator) pick(items []string) string {
	return items[g.intn(len(items))]
}

// Headlines generates count synthetic articles timestamped within the
// last 30 minutes.
func (g *Generator) Headlines(count int) []Headline {
	now := time.Now().UTC()
	articles := make([]Headline, 0, count)
	for i := 0; i < count; i++ {
		company := g.universe.Companies[g.intn(len(g.universe.Companies))]
		stance := g.pick(stances)
		age := time.Duration(g.intBetween(5, 1800)) * time.Second
		articles = append(articles, Headline{
			Ticker:    company.Ticker,
			Title:     fmt.Sprintf("%s %s", company.Name, g.pick(g.universe.Actions)),
			Source:    g.pick(g.universe.Sources),
			Timestamp: now.Add(-age),
			Stance:    stance,
			Category:  g.pick(g.universe.Categories),
			Summary:   fmt.Sprintf("Analysts react to %s's update with %s bias.", company.Name, stance),
			Impact:    g.pick(g.universe.Impacts),
		})
	}
	return articles
}

// Signals generates one recommendation card per company plus the
// overall sentiment bands.
func (g *Generator) Signals() SignalBoard {
	cards := make([]SignalCard, 0, len(g.universe.Companies))
	for _, company := range g.universe.Companies {
		direction := g.pick(directions)
		cards = append(cards, SignalCard{
			Ticker:     company.Ticker,
			Company:    company.Name,
			Direction:  direction,
			Confidence: g.intBetween(55, 90),
			Signals:    g.intBetween(3, 10),
			Summary:    fmt.Sprintf("%s flow indicates %s bias over next 3d.", company.Name, strings.ToLower(direction)),
			Horizon:    g.pick(horizons),
			Risk:       g.pick(riskLevels),
		})
	}
	return SignalBoard{
		Cards: cards,
		Bands: []SentimentBand{
			{Label: "Positive", Percent: g.intBetween(30, 40)},
			{Label: "Negative", Percent: g.intBetween(20, 40)},
			{Label: "Neutral", Percent: g.intBetween(20, 30)},
		},
	}
}

// Indices generates a snapshot row for each configured market index
func (g *Generator) Indices() []IndexSnapshot {
	snapshots := make([]IndexSnapshot, 0, len(g.universe.Indices))
	for _, label := range g.universe.Indices {
		base := g.between(3000, 15000)
		change := g.between(-150, 200)
		snapshots = append(snapshots, IndexSnapshot{
			Index:         label,
			Value:         round2(base),
			Change:        round2(change),
			ChangePercent: round2(change / base * 100),
		})
	}
	return snapshots
}

// MacroSnapshot samples each configured macro metric within its range
func (g *Generator) MacroSnapshot() []MacroMetric {
	metrics := make([]MacroMetric, 0, len(g.universe.MacroMetrics))
	for _, seed := range g.universe.MacroMetrics {
		metrics = append(metrics, MacroMetric{
			Asset:         seed.Asset,
			Value:         round2(g.between(seed.Min, seed.Max)),
			ChangePercent: round2(g.between(-1, 1)),
		})
	}
	return metrics
}

// RiskAlerts generates one alert per configured risk description
func (g *Generator) RiskAlerts() []RiskAlert {
	alerts := make([]RiskAlert, 0, len(g.universe.RiskAlerts))
	for _, desc := range g.universe.RiskAlerts {
		first, _, _ := strings.Cut(desc, " ")
		alerts = append(alerts, RiskAlert{
			Title:       first + " Alert",
			Description: desc,
			Severity:    g.pick(riskLevels),
			TimeAgo:     fmt.Sprintf("%dm ago", g.intBetween(2, 45)),
		})
	}
	return alerts
}

// AlertFeed generates count operations alerts from the configured templates
func (g *Generator) AlertFeed(count int) []OpsAlert {
	alerts := make([]OpsAlert, 0, count)
	for i := 0; i < count; i++ {
		seed := g.universe.OpsAlerts[g.intn(len(g.universe.OpsAlerts))]
		alerts = append(alerts, OpsAlert{
			Title:    seed.Title,
			Body:     seed.Body,
			Status:   g.pick(opsStatuses),
			Assignee: g.pick(opsAssignees),
		})
	}
	return alerts
}

// SentimentSummary tallies a headline set by stance and reports the five
// most-covered tickers.
func SentimentSummaryOf(articles []Headline) SentimentSummary {
	var counts StanceCounts
	perTicker := map[string]int{}
	for _, a := range articles {
		switch a.Stance {
		case StanceBuy:
			counts.Buy++
		case StanceHold:
			counts.Hold++
		case StanceSell:
			counts.Sell++
		}
		perTicker[a.Ticker]++
	}

	top := make([]TickerCount, 0, len(perTicker))
	for ticker, count := range perTicker {
		top = append(top, TickerCount{Ticker: ticker, Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Ticker < top[j].Ticker
	})
	if len(top) > 5 {
		top = top[:5]
	}

	return SentimentSummary{Counts: counts, Top: top}
}

// TrendingTopics lists the distinct impact tags of a headline set
func TrendingTopics(articles []Headline) []string {
	seen := map[string]bool{}
	topics := []string{}
	for _, a := range articles {
		if !seen[a.Impact] {
			seen[a.Impact] = true
			topics = append(topics, a.Impact)
		}
	}
	sort.Strings(topics)
	return topics
}

// PortfolioSeries generates a daily random-walk portfolio curve starting
// at 100.0 and ending today.
func (g *Generator) PortfolioSeries(days int) []PortfolioPoint {
	base := 100.0
	series := make([]PortfolioPoint, 0, days)
	now := time.Now().UTC()
	for i := 0; i < days; i++ {
		base += g.between(-1.5, 2.2)
		date := now.AddDate(0, 0, -(days - i)).Format("2006-01-02")
		series = append(series, PortfolioPoint{Date: date, Value: round2(base)})
	}
	return series
}

// SectorExposure generates a weight and PnL row per configured sector
func (g *Generator) SectorExposure() []SectorExposure {
	exposures := make([]SectorExposure, 0, len(g.universe.Sectors))
	for _, sector := range g.universe.Sectors {
		exposures = append(exposures, SectorExposure{
			Sector: sector,
			Weight: round2(g.between(5, 35)),
			PnL:    round2(g.between(-3, 4)),
		})
	}
	return exposures
}

// CompanySnapshot generates a quote-style summary for a ticker
func (g *Generator) CompanySnapshot(ticker string) CompanySnapshot {
	return CompanySnapshot{
		Ticker:     ticker,
		Price:      round2(g.between(40, 400)),
		Change:     round2(g.between(-5, 5)),
		VolumeM:    round2(g.between(5, 80)),
		MarketCapB: round2(g.between(50, 800)),
		PERatio:    round1(g.between(10, 45)),
		Beta:       round2(g.between(0.7, 1.6)),
	}
}

// PriceSeries generates days steps of a daily random-walk price series
func (g *Generator) PriceSeries(ticker string, days int) []PricePoint {
	base := g.between(50, 300)
	series := make([]PricePoint, 0, days)
	for i := 0; i < days; i++ {
		base += g.between(-3, 3)
		series = append(series, PricePoint{Day: i, Price: round2(base)})
	}
	return series
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
