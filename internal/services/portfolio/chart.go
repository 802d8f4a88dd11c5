package portfolio

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/stratahq/strata/internal/models"
)

// PerformanceChart renders the portfolio-vs-benchmark series as a PNG line
// chart. Two series: Portfolio (blue solid) and S&P 500 (gray dashed).
func (s *Service) PerformanceChart(ctx context.Context, holdings []models.Holding, timeframe string) ([]byte, error) {
	result, err := s.Performance(ctx, holdings, timeframe)
	if err != nil {
		return nil, err
	}
	return renderPerformanceChart(result.HistoricalData)
}

func renderPerformanceChart(points []models.PerformancePoint) ([]byte, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(points))
	}

	xValues := make([]time.Time, len(points))
	portfolioY := make([]float64, len(points))
	benchmarkY := make([]float64, len(points))

	for i, p := range points {
		t, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			return nil, fmt.Errorf("bad date %q in series: %w", p.Date, err)
		}
		xValues[i] = t
		portfolioY[i] = p.Portfolio
		benchmarkY[i] = p.SP500
	}

	portfolioSeries := chart.TimeSeries{
		Name: "Portfolio",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: portfolioY,
	}

	benchmarkSeries := chart.TimeSeries{
		Name: "S&P 500",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("9ca3af"), // gray-400
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: benchmarkY,
	}

	graph := chart.Chart{
		Title:  "Portfolio Performance",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 02")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			portfolioSeries,
			benchmarkSeries,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
