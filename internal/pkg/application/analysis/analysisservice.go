package analysis

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dataspect/data-platform-mgmt/internal/pkg/application/lineage"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/warehouse"
	"github.com/dataspect/data-platform-mgmt/pkg/types"

	"go.opentelemetry.io/otel"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

var tracer = otel.Tracer("data-platform-mgmt/analysis")

const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

//go:generate moq -rm -out analysisservice_mock.go . AnalysisService
type AnalysisService interface {
	RootCause(ctx context.Context, projectID, datasetID, tableID string) (types.RootCauseReport, error)
}

type analysisSvc struct {
	lineage   lineage.LineageService
	warehouse warehouse.Client
}

func New(l lineage.LineageService, w warehouse.Client) AnalysisService {
	return &analysisSvc{
		lineage:   l,
		warehouse: w,
	}
}

// RootCause walks the upstream closure of a table and flags the tables most
// likely to have caused a data issue in it. Upstream tables are examined
// against fresh warehouse metadata and the last 24 hours of job failures.
func (svc analysisSvc) RootCause(ctx context.Context, projectID, datasetID, tableID string) (types.RootCauseReport, error) {
	var err error
	ctx, span := tracer.Start(ctx, "root-cause-analysis")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	graph, err := svc.lineage.GetLineage(ctx, projectID, datasetID, tableID, lineage.DirectionUpstream, lineage.MaxDepth)
	if err != nil {
		return types.RootCauseReport{}, err
	}

	nodes := make(map[string]types.LineageNode, len(graph.Nodes))
	for _, n := range graph.Nodes {
		nodes[n.ID] = n
	}

	now := time.Now().UTC()

	causes := []types.SuspectedCause{}

	visited := map[string]struct{}{graph.RootNode: {}}
	queue := []string{graph.RootNode}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, e := range graph.Edges {
			if e.Target != current {
				continue
			}
			if _, ok := visited[e.Source]; ok {
				continue
			}

			visited[e.Source] = struct{}{}
			queue = append(queue, e.Source)

			node, ok := nodes[e.Source]
			if !ok {
				continue
			}

			cause, suspicious := svc.examine(ctx, node, now)
			if suspicious {
				causes = append(causes, cause)
			}
		}
	}

	sort.SliceStable(causes, func(i, j int) bool {
		return severityRank(causes[i].Severity) < severityRank(causes[j].Severity)
	})

	return types.RootCauseReport{
		Table:            graph.RootNode,
		AnalyzedAt:       now,
		AnalyzedUpstream: len(visited) - 1,
		Causes:           causes,
		Recommendation:   recommendation(causes),
	}, nil
}

func (svc analysisSvc) examine(ctx context.Context, node types.LineageNode, now time.Time) (types.SuspectedCause, bool) {
	log := logging.GetFromContext(ctx)

	metadata, err := svc.warehouse.TableMetadata(ctx, node.ProjectID, node.DatasetID, node.TableName)
	if err != nil {
		log.Warn("could not fetch table metadata", "table_id", node.ID, "err", err.Error())
		return types.SuspectedCause{}, false
	}

	issues := []string{}
	severity := SeverityInfo

	freshness := types.ComputeFreshness(metadata.ModifiedAt, now)

	switch freshness {
	case types.FreshnessStale:
		issues = append(issues, "Data is stale (not updated in >72 hours)")
		severity = SeverityCritical
	case types.FreshnessRecent:
		issues = append(issues, "Data may be outdated (>24 hours old)")
		severity = SeverityWarning
	}

	if age := now.Sub(metadata.ModifiedAt); age < 24*time.Hour {
		issues = append(issues, fmt.Sprintf("Modified %d hours ago (potential breaking change)", int(age.Hours())))
		severity = SeverityCritical
	}

	if metadata.NumRows == 0 {
		issues = append(issues, "Table is empty (0 rows)")
		severity = SeverityCritical
	}

	failures, err := svc.warehouse.RecentFailures(ctx, node.ID, now.Add(-24*time.Hour))
	if err != nil {
		log.Warn("could not fetch job failures", "table_id", node.ID, "err", err.Error())
		failures = nil
	}
	if len(failures) > 0 {
		issues = append(issues, fmt.Sprintf("%d job failure(s) in last 24 hours", len(failures)))
		severity = SeverityCritical
	}

	if len(issues) == 0 {
		return types.SuspectedCause{}, false
	}

	return types.SuspectedCause{
		Table:        node.ID,
		Severity:     severity,
		Issues:       issues,
		LastModified: metadata.ModifiedAt,
		Freshness:    freshness,
		NumRows:      metadata.NumRows,
		JobFailures:  failures,
	}, true
}

func severityRank(severity string) int {
	switch severity {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

func recommendation(causes []types.SuspectedCause) string {
	if len(causes) == 0 {
		return "No obvious upstream issues detected. The problem may be in the transformation logic or external factors."
	}

	if causes[0].Severity == SeverityCritical {
		parts := strings.Split(causes[0].Table, ".")
		return fmt.Sprintf("Start by investigating '%s'. It has critical issues that are likely propagating downstream.", parts[len(parts)-1])
	}

	return "Check the flagged upstream tables. Issues may be cascading from multiple sources."
}
