package lineage

import (
	"github.com/dataspect/data-platform-mgmt/pkg/types"
)

// Summarize derives aggregate counts for a lineage graph relative to its
// root node. It is pure, empty inputs yield zero counts and a low risk
// level. Edges referencing unknown node ids are counted as is.
func Summarize(nodes []types.LineageNode, edges []types.LineageEdge, rootID string) types.LineageSummary {
	summary := types.LineageSummary{
		TotalTables: len(nodes),
		NodesByType: map[string]int{},
		RiskLevel:   types.RiskLevelLow,
	}

	for _, e := range edges {
		if e.Target == rootID {
			summary.UpstreamCount++
		}
		if e.Source == rootID {
			summary.DownstreamCount++
		}
	}

	for _, n := range nodes {
		summary.NodesByType[n.Type]++

		if d := abs(n.Level); d > summary.MaxDepth {
			summary.MaxDepth = d
		}
	}

	switch {
	case summary.DownstreamCount > 10:
		summary.RiskLevel = types.RiskLevelHigh
	case summary.DownstreamCount > 5:
		summary.RiskLevel = types.RiskLevelMedium
	}

	return summary
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
