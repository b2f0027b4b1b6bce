package metrics

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the searched moves of one player label.
type Summary struct {
	Player       string
	Moves        int
	Searched     int
	Random       int
	Passes       int
	MeanNodes    float64
	StdDevNodes  float64
	MeanCutoffs  float64
	MeanDuration float64 // Seconds
}

// Summarize groups move metrics by label and computes node and time
// statistics over the moves that ran a search.
func Summarize(moves map[string][]MoveMetric) []Summary {
	labels := make([]string, 0, len(moves))
	for label := range moves {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	summaries := make([]Summary, 0, len(labels))
	for _, label := range labels {
		s := Summary{Player: label, Moves: len(moves[label])}
		var nodes, cutoffs, durations []float64
		for _, m := range moves[label] {
			switch {
			case m.Pass:
				s.Passes++
			case m.Random:
				s.Random++
			default:
				nodes = append(nodes, float64(m.Nodes))
				cutoffs = append(cutoffs, float64(m.Cutoffs))
				durations = append(durations, m.Duration.Seconds())
			}
		}
		s.Searched = len(nodes)
		if s.Searched > 0 {
			s.MeanNodes, s.StdDevNodes = stat.MeanStdDev(nodes, nil)
			s.MeanCutoffs = stat.Mean(cutoffs, nil)
			s.MeanDuration = stat.Mean(durations, nil)
		}
		summaries = append(summaries, s)
	}
	return summaries
}
