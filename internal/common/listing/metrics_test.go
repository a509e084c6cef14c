package listing

import (
	"testing"

	io_prometheus_client "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	RecordRequest(200)
	RecordRequest(200)

	counter, err := RequestsTotal.GetMetricWithLabelValues("200")
	if err != nil {
		t.Fatalf("failed to get counter: %v", err)
	}

	metric := &io_prometheus_client.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}

	if got := metric.GetCounter().GetValue(); got < 2 {
		t.Errorf("RequestsTotal{status=200} = %v, want >= 2", got)
	}
}

func TestRecordError(t *testing.T) {
	RecordError("validation")

	counter, err := ErrorsTotal.GetMetricWithLabelValues("validation")
	if err != nil {
		t.Fatalf("failed to get counter: %v", err)
	}

	metric := &io_prometheus_client.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}

	if got := metric.GetCounter().GetValue(); got < 1 {
		t.Errorf("ErrorsTotal{type=validation} = %v, want >= 1", got)
	}
}

func TestRecordDuration(t *testing.T) {
	// Histogram observations must not panic for any operation label.
	RecordDuration("handler", 0.042)
	RecordDuration("repository", 1.5)
}
