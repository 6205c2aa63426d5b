package warehouse

import (
	"context"
	"testing"
	"time"

	test "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
)

func TestQueryPostsToGateway(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/v1/query"),
			expects.RequestMethod("POST"),
			expects.RequestHeaderContains("Content-Type", "application/json"),
			expects.RequestBodyContaining(`"maxRows":100`, `SELECT count(*) FROM demo.orders`),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(`{"schema":[{"name":"count","type":"INTEGER"}],"rows":[{"count":42}],"totalRows":1,"executionTimeMs":17}`)),
		),
	)
	defer mockedService.Close()

	c := New(mockedService.URL(), "")

	result, err := c.Query(context.Background(), "SELECT count(*) FROM demo.orders", 100)
	is.NoErr(err)
	is.Equal(int64(1), result.TotalRows)
	is.Equal("count", result.Schema[0].Name)
}

func TestTableDependencies(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/v1/tables/demo.analytics.orders/dependencies"),
			expects.RequestMethod("GET"),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(`{"upstream":[{"id":"demo.raw.orders_raw"}],"downstream":[{"id":"demo.marts.orders_daily","type":"view"}]}`)),
		),
	)
	defer mockedService.Close()

	c := New(mockedService.URL(), "")

	deps, err := c.TableDependencies(context.Background(), "demo.analytics.orders")
	is.NoErr(err)
	is.Equal(1, len(deps.Upstream))
	is.Equal("demo.raw.orders_raw", deps.Upstream[0].ID)
	is.Equal("view", deps.Downstream[0].Type)
}

func TestBearerTokenIsSent(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/v1/datasets"),
			expects.RequestHeaderContains("Authorization", "Bearer sometoken"),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(`[{"id":"analytics","projectId":"demo"}]`)),
		),
	)
	defer mockedService.Close()

	c := New(mockedService.URL(), "sometoken")

	datasets, err := c.Datasets(context.Background())
	is.NoErr(err)
	is.Equal(1, len(datasets))
	is.Equal("analytics", datasets[0].ID)
}

func TestRecentFailures(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/v1/jobs/failures"),
		),
		test.Returns(
			response.ContentType("application/json"),
			response.Code(200),
			response.Body([]byte(`[{"jobId":"job-1","creationTime":"2026-01-02T03:04:05Z","errorReason":"invalidQuery"}]`)),
		),
	)
	defer mockedService.Close()

	c := New(mockedService.URL(), "")

	failures, err := c.RecentFailures(context.Background(), "demo.analytics.orders", time.Now().Add(-24*time.Hour))
	is.NoErr(err)
	is.Equal(1, len(failures))
	is.Equal("invalidQuery", failures[0].ErrorReason)
}

func TestGatewayErrorIsReturned(t *testing.T) {
	is := is.New(t)

	mockedService := test.NewMockServiceThat(
		test.Expects(is,
			expects.RequestPath("/v1/datasets"),
		),
		test.Returns(
			response.Code(500),
		),
	)
	defer mockedService.Close()

	c := New(mockedService.URL(), "")

	_, err := c.Datasets(context.Background())
	is.True(err != nil)
}
