package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/cache"
	"github.com/dataspect/data-platform-mgmt/internal/pkg/infrastructure/warehouse"
	"github.com/dataspect/data-platform-mgmt/pkg/types"
	"github.com/matryer/is"
)

func TestAssetsBucketsFreshness(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	now := time.Now().UTC()

	w := &warehouse.ClientMock{
		DatasetsFunc: func(ctx context.Context) ([]types.Dataset, error) {
			return []types.Dataset{{ID: "analytics", ProjectID: "demo"}}, nil
		},
		TablesFunc: func(ctx context.Context, datasetID string) ([]types.AssetMetadata, error) {
			return []types.AssetMetadata{
				{ProjectID: "demo", DatasetID: "analytics", TableID: "orders", ModifiedAt: now.Add(-1 * time.Hour)},
				{ProjectID: "demo", DatasetID: "analytics", TableID: "users", ModifiedAt: now.Add(-48 * time.Hour)},
				{ProjectID: "demo", DatasetID: "analytics", TableID: "legacy", ModifiedAt: now.Add(-200 * time.Hour)},
			}, nil
		},
	}

	svc := New(w, cache.NewInMemory())

	catalog, err := svc.Assets(ctx)

	is.NoErr(err)
	is.Equal(1, catalog.DatasetCount)
	is.Equal(3, catalog.AssetCount)
	is.True(!catalog.FetchedAt.IsZero())

	assets := catalog.Datasets[0].Assets
	is.Equal(types.FreshnessFresh, assets[0].Freshness)
	is.Equal(types.FreshnessRecent, assets[1].Freshness)
	is.Equal(types.FreshnessStale, assets[2].Freshness)
}

func TestAssetsSkipsFailingDatasets(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	w := &warehouse.ClientMock{
		DatasetsFunc: func(ctx context.Context) ([]types.Dataset, error) {
			return []types.Dataset{
				{ID: "analytics", ProjectID: "demo"},
				{ID: "restricted", ProjectID: "demo"},
			}, nil
		},
		TablesFunc: func(ctx context.Context, datasetID string) ([]types.AssetMetadata, error) {
			if datasetID == "restricted" {
				return nil, fmt.Errorf("access denied")
			}
			return []types.AssetMetadata{
				{ProjectID: "demo", DatasetID: "analytics", TableID: "orders"},
			}, nil
		},
	}

	svc := New(w, cache.NewInMemory())

	catalog, err := svc.Assets(ctx)

	is.NoErr(err)
	is.Equal(1, catalog.DatasetCount)
	is.Equal("analytics", catalog.Datasets[0].Dataset.ID)
}

func TestAssetsAreCached(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	w := &warehouse.ClientMock{
		DatasetsFunc: func(ctx context.Context) ([]types.Dataset, error) {
			return []types.Dataset{{ID: "analytics", ProjectID: "demo"}}, nil
		},
		TablesFunc: func(ctx context.Context, datasetID string) ([]types.AssetMetadata, error) {
			return []types.AssetMetadata{
				{ProjectID: "demo", DatasetID: "analytics", TableID: "orders"},
			}, nil
		},
	}

	svc := New(w, cache.NewInMemory())

	_, err := svc.Assets(ctx)
	is.NoErr(err)

	_, err = svc.Assets(ctx)
	is.NoErr(err)

	is.Equal(1, len(w.DatasetsCalls()))
}

func TestSchemaGuessesPrimaryKeys(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	columnsByTable := map[string][]types.ColumnSchema{
		"orders": {
			{Name: "amount", Type: "NUMERIC"},
			{Name: "customer_id", Type: "STRING"},
		},
		"dim_customer": {
			{Name: "name", Type: "STRING"},
			{Name: "surrogate_key", Type: "STRING"},
		},
		"notes": {
			{Name: "body", Type: "STRING"},
		},
	}

	w := &warehouse.ClientMock{
		DatasetsFunc: func(ctx context.Context) ([]types.Dataset, error) {
			return []types.Dataset{{ID: "analytics", ProjectID: "demo"}}, nil
		},
		TablesFunc: func(ctx context.Context, datasetID string) ([]types.AssetMetadata, error) {
			return []types.AssetMetadata{
				{ProjectID: "demo", DatasetID: "analytics", TableID: "orders"},
				{ProjectID: "demo", DatasetID: "analytics", TableID: "dim_customer"},
				{ProjectID: "demo", DatasetID: "analytics", TableID: "notes"},
			}, nil
		},
		TableMetadataFunc: func(ctx context.Context, projectID, datasetID, tableID string) (types.AssetMetadata, error) {
			return types.AssetMetadata{
				ProjectID: projectID,
				DatasetID: datasetID,
				TableID:   tableID,
				Type:      types.NodeTypeTable,
				Columns:   columnsByTable[tableID],
			}, nil
		},
	}

	svc := New(w, cache.NewInMemory())

	tree, err := svc.Schema(ctx)

	is.NoErr(err)
	is.Equal(1, len(tree.Datasets))

	tables := tree.Datasets[0].Tables
	is.Equal(3, len(tables))
	is.Equal("customer_id", tables[0].PrimaryKey)
	is.Equal("surrogate_key", tables[1].PrimaryKey)
	is.Equal("", tables[2].PrimaryKey)
}

func TestSchemaIsCached(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	w := &warehouse.ClientMock{
		DatasetsFunc: func(ctx context.Context) ([]types.Dataset, error) {
			return []types.Dataset{{ID: "analytics", ProjectID: "demo"}}, nil
		},
		TablesFunc: func(ctx context.Context, datasetID string) ([]types.AssetMetadata, error) {
			return []types.AssetMetadata{
				{ProjectID: "demo", DatasetID: "analytics", TableID: "orders"},
			}, nil
		},
		TableMetadataFunc: func(ctx context.Context, projectID, datasetID, tableID string) (types.AssetMetadata, error) {
			return types.AssetMetadata{TableID: tableID, Columns: []types.ColumnSchema{{Name: "order_id", Type: "STRING"}}}, nil
		},
	}

	svc := New(w, cache.NewInMemory())

	_, err := svc.Schema(ctx)
	is.NoErr(err)

	_, err = svc.Schema(ctx)
	is.NoErr(err)

	is.Equal(1, len(w.TableMetadataCalls()))
}

func TestGuessPrimaryKeyPrefersFirstMatch(t *testing.T) {
	is := is.New(t)

	pk := guessPrimaryKey([]types.ColumnSchema{
		{Name: "order_identifier"},
		{Name: "user_id"},
	})

	is.Equal("order_identifier", pk)
}
