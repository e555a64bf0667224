package report

import (
	"context"
	"strconv"
	"time"

	"github.com/elchead/knapsack-solver/pkg/knapsack"
	"github.com/elchead/knapsack-solver/pkg/solver"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/pkg/errors"
)

const solutionMeasurement = "knapsack_solution"

// PointWriter is the part of the InfluxDB blocking write API used here.
type PointWriter interface {
	WritePoint(ctx context.Context, point ...*write.Point) error
}

type InfluxReporter struct {
	client influxdb2.Client
	writer PointWriter
	Now    func() time.Time
}

func NewInfluxReporter(serviceUrl, token, org, bucket string) *InfluxReporter {
	client := influxdb2.NewClientWithOptions(serviceUrl, token, influxdb2.DefaultOptions())
	return &InfluxReporter{client: client, writer: client.WriteAPIBlocking(org, bucket), Now: time.Now}
}

func NewInfluxReporterWithWriter(w PointWriter) *InfluxReporter {
	return &InfluxReporter{writer: w, Now: time.Now}
}

func (r *InfluxReporter) Report(ctx context.Context, k knapsack.Knapsack, sol solver.Solution) error {
	p := SolutionPoint(k, sol, r.Now())
	return errors.Wrapf(r.writer.WritePoint(ctx, p), "write solution of knapsack %d to influx", sol.KnapsackID)
}

func (r *InfluxReporter) Close() {
	if r.client != nil {
		r.client.Close()
	}
}

func SolutionPoint(k knapsack.Knapsack, sol solver.Solution, ts time.Time) *write.Point {
	tags := map[string]string{
		"knapsack": strconv.Itoa(sol.KnapsackID),
		"strategy": sol.Strategy.String(),
		"valid":    strconv.FormatBool(solver.Validate(sol, k)),
	}
	fields := map[string]interface{}{
		"price":      int64(sol.Price),
		"weight":     int64(sol.Weight),
		"elapsed_ms": sol.Elapsed,
		"items":      int64(len(sol.Items(k))),
	}
	return influxdb2.NewPoint(solutionMeasurement, tags, fields, ts)
}
