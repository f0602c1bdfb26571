package market

// Prediction builds the prediction modal payload for a ticker: a
// fundamentals block, a generated outlook, the first three related
// articles, and a twenty-day price series.
func (g *Generator) PredictionFor(ticker string, articles []Headline) PredictionModal {
	snapshot := g.CompanySnapshot(ticker)
	changePercent := round2(snapshot.Change / snapshot.Price * 100)

	stock := StockData{
		CurrentPrice:     snapshot.Price,
		Change:           snapshot.Change,
		ChangePercent:    changePercent,
		Beta:             snapshot.Beta,
		RSI:              round2(g.between(20, 80)),
		Volatility:       round2(g.between(0.1, 0.3)),
		Volume:           int64(snapshot.VolumeM * 1_000_000),
		MarketCapB:       snapshot.MarketCapB,
		PERatio:          round1(g.between(10, 40)),
		FiftyTwoWeekHigh: round2(snapshot.Price * 1.1),
		FiftyTwoWeekLow:  round2(snapshot.Price * 0.9),
		Correlation:      round2(g.between(0.3, 0.9)),
		AverageVolume:    int64(g.intBetween(2_000_000, 5_000_000)),
	}

	direction := "bearish"
	if changePercent > 0 {
		direction = "bullish"
	}
	prediction := Prediction{
		Direction:   direction,
		Confidence:  g.intBetween(65, 90),
		TargetPrice: round2(stock.CurrentPrice * (1 + (changePercent/100)*2)),
		Timeframe:   "3 months",
		Factors:     g.universe.PredictionFactors,
	}

	related := relatedArticles(ticker, articles, 3)

	return PredictionModal{
		Ticker:          ticker,
		Stock:           stock,
		Prediction:      prediction,
		RelatedArticles: related,
		PriceSeries:     g.PriceSeries(ticker, 20),
	}
}

// relatedArticles returns up to limit articles mentioning the ticker,
// falling back to the head of the feed when coverage is thin.
func relatedArticles(ticker string, articles []Headline, limit int) []Headline {
	related := make([]Headline, 0, limit)
	for _, a := range articles {
		if a.Ticker == ticker {
			related = append(related, a)
			if len(related) == limit {
				return related
			}
		}
	}
	for _, a := range articles {
		if len(related) == limit {
			break
		}
		if a.Ticker != ticker {
			related = append(related, a)
		}
	}
	return related
}
