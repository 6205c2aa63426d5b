package lineage

import (
	"fmt"
	"testing"

	"github.com/dataspect/data-platform-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestSummarizeUpstreamChain(t *testing.T) {
	is := is.New(t)

	nodes := []types.LineageNode{
		{ID: "a", Type: types.NodeTypeTable, Level: 0},
		{ID: "b", Type: types.NodeTypeTable, Level: -2},
	}
	edges := []types.LineageEdge{
		{Source: "b", Target: "a", Type: "dependency"},
	}

	summary := Summarize(nodes, edges, "a")

	is.Equal(1, summary.UpstreamCount)
	is.Equal(0, summary.DownstreamCount)
	is.Equal(2, summary.TotalTables)
	is.Equal(2, summary.MaxDepth)
	is.Equal(types.RiskLevelLow, summary.RiskLevel)
}

func TestSummarizeEmptyGraph(t *testing.T) {
	is := is.New(t)

	summary := Summarize(nil, nil, "a")

	is.Equal(0, summary.UpstreamCount)
	is.Equal(0, summary.DownstreamCount)
	is.Equal(0, summary.TotalTables)
	is.Equal(0, summary.MaxDepth)
	is.Equal(types.RiskLevelLow, summary.RiskLevel)
}

func TestSummarizeRiskThresholds(t *testing.T) {
	is := is.New(t)

	fanOut := func(n int) []types.LineageEdge {
		edges := make([]types.LineageEdge, n)
		for i := range edges {
			edges[i] = types.LineageEdge{Source: "root", Target: fmt.Sprintf("t%d", i)}
		}
		return edges
	}

	is.Equal(types.RiskLevelLow, Summarize(nil, fanOut(5), "root").RiskLevel)
	is.Equal(types.RiskLevelMedium, Summarize(nil, fanOut(6), "root").RiskLevel)
	is.Equal(types.RiskLevelMedium, Summarize(nil, fanOut(10), "root").RiskLevel)
	is.Equal(types.RiskLevelHigh, Summarize(nil, fanOut(11), "root").RiskLevel)
}

func TestSummarizeCountsNodeTypes(t *testing.T) {
	is := is.New(t)

	nodes := []types.LineageNode{
		{ID: "a", Type: types.NodeTypeTable},
		{ID: "b", Type: types.NodeTypeTable},
		{ID: "c", Type: types.NodeTypeView},
		{ID: "d", Type: types.NodeTypeMaterializedView},
	}

	summary := Summarize(nodes, nil, "a")

	is.Equal(2, summary.NodesByType[types.NodeTypeTable])
	is.Equal(1, summary.NodesByType[types.NodeTypeView])
	is.Equal(1, summary.NodesByType[types.NodeTypeMaterializedView])
}
