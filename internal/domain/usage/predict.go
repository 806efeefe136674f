package usage

import (
	"math"
	"time"

	"spoolmeter/internal/domain/entity"
)

// MaxPredictedDays bounds projections from near-flat slopes so the date stays representable.
const MaxPredictedDays = 1_000_000

// Line is fraction = Intercept + Slope*dayOffset.
type Line struct {
	Intercept float64
	Slope     float64
}

// XIntercept is the day offset at which the line reaches a zero fraction.
func (l Line) XIntercept() float64 {
	return -l.Intercept / l.Slope
}

// Fit computes the ordinary least-squares line through points.
// It reports false for fewer than two points, a zero x variance or a zero slope.
func Fit(points []entity.SessionPoint) (Line, bool) {
	n := len(points)
	if n < 2 {
		return Line{}, false
	}

	var sumX, sumY float64
	for _, p := range points {
		sumX += float64(p.DayOffset)
		sumY += p.RemainingFraction
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var sxy, sxx float64
	for _, p := range points {
		dx := float64(p.DayOffset) - meanX
		sxy += dx * (p.RemainingFraction - meanY)
		sxx += dx * dx
	}

	if sxx == 0 {
		return Line{}, false
	}

	slope := sxy / sxx
	if slope == 0 || !isFinite(slope) {
		return Line{}, false
	}

	return Line{Intercept: meanY - slope*meanX, Slope: slope}, true
}

// Predict pools the points of every session into one fit and anchors the
// projected run-out to the start of the most recent session.
func Predict(sessions []entity.UsageSession) entity.Prediction {
	points := make([]entity.SessionPoint, 0)
	for _, session := range sessions {
		points = append(points, session.Points...)
	}

	prediction := entity.Prediction{
		SessionCount: len(sessions),
		PointCount:   len(points),
	}

	line, ok := Fit(points)
	if !ok {
		return prediction
	}

	days := line.XIntercept()
	if !isFinite(days) {
		return prediction
	}
	days = math.Max(-MaxPredictedDays, math.Min(MaxPredictedDays, days))

	anchor := sessions[len(sessions)-1].StartTime

	prediction.Determinable = true
	prediction.Intercept = line.Intercept
	prediction.Slope = line.Slope
	prediction.PredictedDays = days
	prediction.RunOutDate = AddDays(anchor, days)

	return prediction
}

// AddDays adds a possibly fractional, possibly negative day count.
// Whole days use calendar arithmetic; the remainder is rounded to the millisecond.
func AddDays(t time.Time, days float64) time.Time {
	whole := math.Trunc(days)
	remainder := time.Duration((days - whole) * float64(day)).Round(time.Millisecond)

	return t.AddDate(0, 0, int(whole)).Add(remainder)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
