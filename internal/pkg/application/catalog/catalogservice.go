package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/cache"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/warehouse"
	"github.com/dataspect/data-platform-mgmt/pkg/types"

	"go.opentelemetry.io/otel"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

var tracer = otel.Tracer("data-platform-mgmt/catalog")

//go:generate moq -rm -out catalogservice_mock.go . CatalogService
type CatalogService interface {
	Assets(ctx context.Context) (types.AssetCatalog, error)
	Schema(ctx context.Context) (types.SchemaTree, error)
}

type catalogSvc struct {
	warehouse warehouse.Client
	cache     cache.Cache
}

func New(w warehouse.Client, c cache.Cache) CatalogService {
	return &catalogSvc{
		warehouse: w,
		cache:     c,
	}
}

// Assets lists every dataset with its tables and freshness buckets.
// Datasets whose table listing fails are skipped, not fatal.
func (svc catalogSvc) Assets(ctx context.Context) (types.AssetCatalog, error) {
	var err error
	ctx, span := tracer.Start(ctx, "list-assets")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	catalog := types.AssetCatalog{}

	key := cache.AssetsKey("all")
	if svc.cache.Get(ctx, key, &catalog) {
		return catalog, nil
	}

	datasets, err := svc.warehouse.Datasets(ctx)
	if err != nil {
		return types.AssetCatalog{}, err
	}

	now := time.Now().UTC()

	for _, ds := range datasets {
		assets, err := svc.warehouse.Tables(ctx, ds.ID)
		if err != nil {
			log.Warn("could not list tables", "dataset_id", ds.ID, "err", err.Error())
			continue
		}

		if len(assets) == 0 {
			continue
		}

		for i := range assets {
			assets[i].Freshness = types.ComputeFreshness(assets[i].ModifiedAt, now)
		}

		catalog.Datasets = append(catalog.Datasets, types.DatasetAssets{
			Dataset: ds,
			Assets:  assets,
		})
		catalog.AssetCount += len(assets)
	}

	catalog.DatasetCount = len(catalog.Datasets)
	catalog.FetchedAt = now

	svc.cache.Set(ctx, key, catalog, cache.AssetsTTL)

	return catalog, nil
}

// Schema lists datasets, tables and their columns, with a guessed primary
// key per table.
func (svc catalogSvc) Schema(ctx context.Context) (types.SchemaTree, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-schema")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	tree := types.SchemaTree{}

	key := cache.SchemaKey("all_datasets")
	if svc.cache.Get(ctx, key, &tree) {
		return tree, nil
	}

	datasets, err := svc.warehouse.Datasets(ctx)
	if err != nil {
		return types.SchemaTree{}, err
	}

	for _, ds := range datasets {
		assets, err := svc.warehouse.Tables(ctx, ds.ID)
		if err != nil {
			log.Warn("could not list tables", "dataset_id", ds.ID, "err", err.Error())
			continue
		}

		tables := make([]types.TableSchema, 0, len(assets))

		for _, asset := range assets {
			metadata, err := svc.warehouse.TableMetadata(ctx, asset.ProjectID, asset.DatasetID, asset.TableID)
			if err != nil {
				log.Warn("could not get table metadata", "table_id", asset.TableID, "err", err.Error())
				continue
			}

			tables = append(tables, types.TableSchema{
				TableID:    metadata.TableID,
				Type:       metadata.Type,
				Columns:    metadata.Columns,
				PrimaryKey: guessPrimaryKey(metadata.Columns),
			})
		}

		if len(tables) == 0 {
			continue
		}

		tree.Datasets = append(tree.Datasets, types.DatasetSchema{
			DatasetID: ds.ID,
			ProjectID: ds.ProjectID,
			Tables:    tables,
		})
	}

	tree.FetchedAt = time.Now().UTC()

	svc.cache.Set(ctx, key, tree, cache.SchemaTTL)

	return tree, nil
}

// guessPrimaryKey picks the first column whose name contains "id" or ends
// in "_key". There is no declared key metadata in the warehouse, this is a
// heuristic for display purposes only.
func guessPrimaryKey(columns []types.ColumnSchema) string {
	for _, col := range columns {
		name := strings.ToLower(col.Name)
		if strings.Contains(name, "id") || strings.HasSuffix(name, "_key") {
			return col.Name
		}
	}
	return ""
}
