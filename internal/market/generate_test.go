package market

import (
	"testing"
	"time"
)

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	universe, err := DefaultUniverse()
	if err != nil {
		t.Fatalf("Failed to load universe: %v", err)
	}
	return NewSeededGenerator(universe, 42)
}

func TestGenerator_Headlines(t *testing.T) {
	g := testGenerator(t)

	articles := g.Headlines(50)
	if len(articles) != 50 {
		t.Fatalf("Expected 50 articles, got %d", len(articles))
	}

	now := time.Now().UTC()
	tickers := map[string]bool{}
	for _, c := range g.Universe().Companies {
		tickers[c.Ticker] = true
	}

	for _, a := range articles {
		if !tickers[a.Ticker] {
			t.Errorf("Unexpected ticker '%s'", a.Ticker)
		}
		if a.Stance != StanceBuy && a.Stance != StanceHold && a.Stance != StanceSell {
			t.Errorf("Unexpected stance '%s'", a.Stance)
		}
		if a.Title == "" || a.Source == "" || a.Summary == "" {
			t.Error("Expected title, source and summary to be populated")
		}

		age := now.Sub(a.Timestamp)
		if age < 0 || age > 31*time.Minute {
			t.Errorf("Expected timestamp within last 30 minutes, got age %v", age)
		}
	}
}

func TestGenerator_Signals(t *testing.T) {
	g := testGenerator(t)

	board := g.Signals()
	if len(board.Cards) != len(g.Universe().Companies) {
		t.Fatalf("Expected one card per company, got %d", len(board.Cards))
	}

	for _, card := range board.Cards {
		if card.Direction != "BUY" && card.Direction != "HOLD" && card.Direction != "SELL" {
			t.Errorf("Unexpected direction '%s'", card.Direction)
		}
		if card.Confidence < 55 || card.Confidence > 90 {
			t.Errorf("Confidence %d out of range [55,90]", card.Confidence)
		}
		if card.Signals < 3 || card.Signals > 10 {
			t.Errorf("Signal count %d out of range [3,10]", card.Signals)
		}
	}

	if len(board.Bands) != 3 {
		t.Errorf("Expected 3 sentiment bands, got %d", len(board.Bands))
	}
}

func TestGenerator_Indices(t *testing.T) {
	g := testGenerator(t)

	snapshots := g.Indices()
	if len(snapshots) != len(g.Universe().Indices) {
		t.Fatalf("Expected one snapshot per index, got %d", len(snapshots))
	}

	for _, snap := range snapshots {
		if snap.Value < 3000 || snap.Value > 15000 {
			t.Errorf("Index value %f out of range", snap.Value)
		}
		if snap.Change < -150 || snap.Change > 200 {
			t.Errorf("Index change %f out of range", snap.Change)
		}
	}
}

func TestGenerator_MacroSnapshot(t *testing.T) {
	g := testGenerator(t)

	metrics := g.MacroSnapshot()
	if len(metrics) != len(g.Universe().MacroMetrics) {
		t.Fatalf("Expected one metric per seed, got %d", len(metrics))
	}

	for i, m := range metrics {
		seed := g.Universe().MacroMetrics[i]
		if m.Value < seed.Min || m.Value > seed.Max {
			t.Errorf("Metric %s value %f outside [%f,%f]", m.Asset, m.Value, seed.Min, seed.Max)
		}
	}
}

func TestGenerator_AlertFeed(t *testing.T) {
	g := testGenerator(t)

	alerts := g.AlertFeed(10)
	if len(alerts) != 10 {
		t.Fatalf("Expected 10 alerts, got %d", len(alerts))
	}
	for _, a := range alerts {
		if a.Title == "" || a.Body == "" {
			t.Error("Expected alert title and body to be populated")
		}
	}
}

func TestSentimentSummaryOf(t *testing.T) {
	articles := []Headline{
		{Ticker: "AAPL", Stance: StanceBuy},
		{Ticker: "AAPL", Stance: StanceBuy},
		{Ticker: "AAPL", Stance: StanceSell},
		{Ticker: "MSFT", Stance: StanceHold},
		{Ticker: "NVDA", Stance: StanceBuy},
	}

	summary := SentimentSummaryOf(articles)
	if summary.Counts.Buy != 3 || summary.Counts.Hold != 1 || summary.Counts.Sell != 1 {
		t.Errorf("Unexpected counts: %+v", summary.Counts)
	}

	if len(summary.Top) != 3 {
		t.Fatalf("Expected 3 ticker counts, got %d", len(summary.Top))
	}
	if summary.Top[0].Ticker != "AAPL" || summary.Top[0].Count != 3 {
		t.Errorf("Expected AAPL on top with 3 mentions, got %+v", summary.Top[0])
	}
}

func TestSentimentSummaryOf_TopFive(t *testing.T) {
	articles := []Headline{}
	for _, ticker := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		articles = append(articles, Headline{Ticker: ticker, Stance: StanceHold})
	}

	summary := SentimentSummaryOf(articles)
	if len(summary.Top) != 5 {
		t.Errorf("Expected top list capped at 5, got %d", len(summary.Top))
	}
}

func TestTrendingTopics(t *testing.T) {
	articles := []Headline{
		{Impact: "Guidance"},
		{Impact: "Guidance"},
		{Impact: "Regulation"},
		{Impact: "AI"},
	}

	topics := TrendingTopics(articles)
	if len(topics) != 3 {
		t.Fatalf("Expected 3 distinct topics, got %d", len(topics))
	}
	// Output is sorted for stable rendering
	if topics[0] != "AI" || topics[1] != "Guidance" || topics[2] != "Regulation" {
		t.Errorf("Unexpected topic order: %v", topics)
	}
}

func TestGenerator_PortfolioSeries(t *testing.T) {
	g := testGenerator(t)

	series := g.PortfolioSeries(30)
	if len(series) != 30 {
		t.Fatalf("Expected 30 points, got %d", len(series))
	}

	for i := 1; i < len(series); i++ {
		if series[i].Date <= series[i-1].Date {
			t.Errorf("Expected ascending dates, got %s then %s", series[i-1].Date, series[i].Date)
		}
		step := series[i].Value - series[i-1].Value
		if step < -1.51 || step > 2.21 {
			t.Errorf("Walk step %f out of range", step)
		}
	}
}

func TestGenerator_SectorExposure(t *testing.T) {
	g := testGenerator(t)

	exposures := g.SectorExposure()
	if len(exposures) != len(g.Universe().Sectors) {
		t.Fatalf("Expected one row per sector, got %d", len(exposures))
	}
	for _, e := range exposures {
		if e.Weight < 5 || e.Weight > 35 {
			t.Errorf("Weight %f out of range [5,35]", e.Weight)
		}
	}
}

func TestGenerator_Reproducible(t *testing.T) {
	universe, err := DefaultUniverse()
	if err != nil {
		t.Fatalf("Failed to load universe: %v", err)
	}

	a := NewSeededGenerator(universe, 7).Indices()
	b := NewSeededGenerator(universe, 7).Indices()

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical output for same seed, got %+v vs %+v", a[i], b[i])
		}
	}
}
