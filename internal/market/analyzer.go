package market

import "time"

// coveredSources is the figure shown on the overview card; the feed
// itself draws from the configured source list.
const coveredSources = 32

// Analyze rolls a headline set up into the dashboard header blocks:
// sentiment shares, direction predictions, and coverage overview.
// Stances map onto sentiment (buy positive, sell negative, hold neutral)
// and onto direction the same way.
func Analyze(articles []Headline, updatedAt time.Time) Analysis {
	total := len(articles)
	counts := StanceCounts{}
	for _, a := range articles {
		switch a.Stance {
		case StanceBuy:
			counts.Buy++
		case StanceSell:
			counts.Sell++
		default:
			counts.Hold++
		}
	}

	percentage := func(count int) int {
		if total == 0 {
			return 0
		}
		return int(float64(count)/float64(total)*100 + 0.5)
	}

	return Analysis{
		Sentiment: SentimentAnalysis{
			Positive: SentimentSlice{Count: counts.Buy, Percentage: percentage(counts.Buy), Color: "green", Label: "Positive"},
			Negative: SentimentSlice{Count: counts.Sell, Percentage: percentage(counts.Sell), Color: "red", Label: "Negative"},
			Neutral:  SentimentSlice{Count: counts.Hold, Percentage: percentage(counts.Hold), Color: "yellow", Label: "Neutral"},
			Total:    total,
		},
		Predictions: MarketPredictions{
			Bullish: PredictionSlice{Count: counts.Buy, Label: "Bullish", Emoji: "↗️", Color: "green"},
			Bearish: PredictionSlice{Count: counts.Sell, Label: "Bearish", Emoji: "↘️", Color: "red"},
			Neutral: PredictionSlice{Count: counts.Hold, Label: "Neutral", Emoji: "➡️", Color: "gray"},
		},
		Overview: MarketOverview{
			TotalArticles: total,
			Sources:       coveredSources,
			LastUpdated:   updatedAt,
		},
	}
}
