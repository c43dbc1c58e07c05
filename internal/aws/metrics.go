package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metric names published by the API.
const (
	MetricGenerationSucceeded = "GenerationSucceeded"
	MetricGenerationFailed    = "GenerationFailed"
)

// MetricsPublisher wraps a CloudWatch client and a metric namespace.
// Publishing is best-effort: callers are expected to log and ignore errors.
type MetricsPublisher struct {
	CloudWatch CloudWatchAPI
	Namespace  string
	nowFunc    func() time.Time
}

// NewMetricsPublisher returns a MetricsPublisher bound to a namespace.
func NewMetricsPublisher(cwClient CloudWatchAPI, namespace string) *MetricsPublisher {
	return &MetricsPublisher{
		CloudWatch: cwClient,
		Namespace:  namespace,
		nowFunc:    time.Now,
	}
}

// Count publishes a single count datum for the given metric name.
func (p *MetricsPublisher) Count(ctx context.Context, metricName string) error {
	now := p.nowFunc()
	input := &cloudwatch.PutMetricDataInput{
		Namespace: &p.Namespace,
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: awsString(metricName),
				Unit:       cwtypes.StandardUnitCount,
				Value:      awsFloat64(1),
				Timestamp:  &now,
			},
		},
	}

	_, err := p.CloudWatch.PutMetricData(ctx, input)
	if err != nil {
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}

// helpers
func awsString(s string) *string    { return &s }
func awsFloat64(f float64) *float64 { return &f }
