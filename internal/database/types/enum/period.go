package enum

import "time"

// AnalyticsPeriod represents the reporting window for owner analytics.
//
//go:generate go tool enumer -type=AnalyticsPeriod -trimprefix=AnalyticsPeriod -transform=lower
type AnalyticsPeriod int

const (
	AnalyticsPeriod7D AnalyticsPeriod = iota
	AnalyticsPeriod30D
	AnalyticsPeriod90D
)

// Days returns the number of days covered by the period.
func (i AnalyticsPeriod) Days() int {
	switch i {
	case AnalyticsPeriod7D:
		return 7
	case AnalyticsPeriod90D:
		return 90
	case AnalyticsPeriod30D:
		return 30
	default:
		return 30
	}
}

// WindowStart returns the inclusive lower bound of the period ending at now.
func (i AnalyticsPeriod) WindowStart(now time.Time) time.Time {
	return now.AddDate(0, 0, -i.Days())
}
