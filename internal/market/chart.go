package market

import (
	"time"
)

const (
	lineColorUp   = "#10b981"
	lineColorDown = "#ef4444"
)

// IntradayChart builds a seven-point hourly chart for a ticker starting
// at the 09:30 market open. Prices walk from the opening level toward
// the current price; the final point is pinned to it so the chart always
// agrees with the quote.
func (g *Generator) IntradayChart(ticker string) ChartData {
	snapshot := g.CompanySnapshot(ticker)
	current := snapshot.Price
	change := snapshot.Change
	base := current - change

	now := time.Now()
	marketOpen := time.Date(now.Year(), now.Month(), now.Day(), 9, 30, 0, 0, now.Location())

	points := make([]ChartPoint, 0, 7)
	for i := 0; i < 7; i++ {
		at := marketOpen.Add(time.Duration(i) * time.Hour)
		volatility := 0.01 + g.between(0, 0.02)
		trend := (change / base) * (float64(i) / 6)
		walk := g.between(-0.5, 0.5) * volatility * base
		price := base + trend*base + walk
		if i == 6 {
			price = current
		}
		points = append(points, ChartPoint{
			Time:   at.Format("03:04 PM"),
			Price:  round2(price),
			Volume: g.intBetween(500_000, 2_500_000),
		})
	}

	isPositive := change >= 0
	lineColor := lineColorUp
	if !isPositive {
		lineColor = lineColorDown
	}

	return ChartData{
		Ticker:        ticker,
		CurrentPrice:  current,
		Change:        change,
		ChangePercent: round2(change / current * 100),
		IsPositive:    isPositive,
		LineColor:     lineColor,
		Points:        points,
		Stats: ChartStats{
			DaysRangeLow:  round2(current * 0.98),
			DaysRangeHigh: round2(current * 1.02),
			Volume:        g.intBetween(1_000_000, 6_000_000),
			AvgVolume:     g.intBetween(2_000_000, 5_000_000),
			MarketCapB:    round1(current * 10),
		},
		CloseTime: now.Format("03:04:05 PM"),
		Exchange:  "NYSE - Nasdaq Real Time Price · USD",
	}
}
