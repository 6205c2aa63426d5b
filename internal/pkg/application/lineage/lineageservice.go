package lineage

import (
	"context"
	"fmt"
	"strings"

	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/cache"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/warehouse"
	"github.com/dataspect/data-platform-mgmt/pkg/types"

	"go.opentelemetry.io/otel"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

var tracer = otel.Tracer("data-platform-mgmt/lineage")

const (
	DirectionUpstream   = "upstream"
	DirectionDownstream = "downstream"
	DirectionBoth       = "both"
)

const (
	DefaultDepth = 3
	MaxDepth     = 5
)

var ErrInvalidDirection = fmt.Errorf("invalid direction")

//go:generate moq -rm -out lineageservice_mock.go . LineageService
type LineageService interface {
	GetLineage(ctx context.Context, projectID, datasetID, tableID, direction string, depth int) (types.LineageGraph, error)
	EdgeDetail(ctx context.Context, sourceTable, targetTable string) (types.EdgeDetail, error)
}

type lineageSvc struct {
	warehouse warehouse.Client
	cache     cache.Cache
}

func New(w warehouse.Client, c cache.Cache) LineageService {
	return &lineageSvc{
		warehouse: w,
		cache:     c,
	}
}

// GetLineage assembles the dependency graph around a table by walking the
// warehouse dependency edges breadth first, at most depth levels in each
// requested direction. Upstream nodes get negative levels, downstream nodes
// positive ones and the root level 0.
func (svc lineageSvc) GetLineage(ctx context.Context, projectID, datasetID, tableID, direction string, depth int) (types.LineageGraph, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-lineage")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	direction = strings.ToLower(direction)
	if direction == "" {
		direction = DirectionBoth
	}
	if direction != DirectionUpstream && direction != DirectionDownstream && direction != DirectionBoth {
		err = fmt.Errorf("%q: %w", direction, ErrInvalidDirection)
		return types.LineageGraph{}, err
	}

	if depth <= 0 {
		depth = DefaultDepth
	}
	if depth > MaxDepth {
		depth = MaxDepth
	}

	rootID := fmt.Sprintf("%s.%s.%s", projectID, datasetID, tableID)

	graph := types.LineageGraph{}

	key := cache.LineageKey(rootID, direction, depth)
	if svc.cache.Get(ctx, key, &graph) {
		return graph, nil
	}

	g := &grapher{
		client:  svc.warehouse,
		visited: map[string]struct{}{rootID: {}},
		seen:    map[string]struct{}{},
		nodes:   []types.LineageNode{nodeFromRef(warehouse.TableRef{ID: rootID}, 0)},
		edges:   []types.LineageEdge{},
	}

	if direction == DirectionUpstream || direction == DirectionBoth {
		err = g.walk(ctx, rootID, -1, depth)
		if err != nil {
			return types.LineageGraph{}, err
		}
	}
	if direction == DirectionDownstream || direction == DirectionBoth {
		err = g.walk(ctx, rootID, 1, depth)
		if err != nil {
			return types.LineageGraph{}, err
		}
	}

	summary := Summarize(g.nodes, g.edges, rootID)

	graph = types.LineageGraph{
		Nodes:    g.nodes,
		Edges:    g.edges,
		RootNode: rootID,
		Summary:  &summary,
	}

	svc.cache.Set(ctx, key, graph, cache.LineageTTL)

	return graph, nil
}

// EdgeDetail looks up the jobs that moved data from one table to another.
func (svc lineageSvc) EdgeDetail(ctx context.Context, sourceTable, targetTable string) (types.EdgeDetail, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-edge-detail")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	jobs, err := svc.warehouse.JobsBetween(ctx, sourceTable, targetTable)
	if err != nil {
		return types.EdgeDetail{}, err
	}

	return types.EdgeDetail{
		SourceTable: sourceTable,
		TargetTable: targetTable,
		Jobs:        jobs,
		JobCount:    len(jobs),
	}, nil
}

type grapher struct {
	client  warehouse.Client
	visited map[string]struct{}
	seen    map[string]struct{}
	nodes   []types.LineageNode
	edges   []types.LineageEdge
}

// walk expands the graph level by level away from the root. sign is -1 for
// upstream and +1 for downstream. Edges between already visited nodes are
// still recorded, so diamonds keep all their edges.
func (g *grapher) walk(ctx context.Context, rootID string, sign, maxDepth int) error {
	frontier := []string{rootID}

	for level := 1; level <= maxDepth && len(frontier) > 0; level++ {
		next := make([]string, 0, len(frontier))

		for _, id := range frontier {
			deps, err := g.client.TableDependencies(ctx, id)
			if err != nil {
				return err
			}

			refs := deps.Downstream
			if sign < 0 {
				refs = deps.Upstream
			}

			for _, ref := range refs {
				g.addEdge(id, ref.ID, sign)

				if _, ok := g.visited[ref.ID]; ok {
					continue
				}

				g.visited[ref.ID] = struct{}{}
				g.nodes = append(g.nodes, nodeFromRef(ref, sign*level))
				next = append(next, ref.ID)
			}
		}

		frontier = next
	}

	return nil
}

// addEdge records a dependency edge in data flow order, the table data
// flows out of is the source.
func (g *grapher) addEdge(from, to string, sign int) {
	source, target := from, to
	if sign < 0 {
		source, target = to, from
	}

	k := source + "->" + target
	if _, ok := g.seen[k]; ok {
		return
	}

	g.seen[k] = struct{}{}
	g.edges = append(g.edges, types.LineageEdge{Source: source, Target: target, Type: "dependency"})
}

func nodeFromRef(ref warehouse.TableRef, level int) types.LineageNode {
	node := types.LineageNode{
		ID:    ref.ID,
		Label: ref.ID,
		Type:  ref.Type,
		Level: level,
	}

	if node.Type == "" {
		node.Type = types.NodeTypeTable
	}

	if parts := strings.Split(ref.ID, "."); len(parts) == 3 {
		node.ProjectID = parts[0]
		node.DatasetID = parts[1]
		node.TableName = parts[2]
		node.Label = parts[2]
	}

	return node
}
