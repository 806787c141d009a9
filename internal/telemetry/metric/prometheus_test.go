package metric

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r.registry == nil {
		t.Fatal("registry field is nil")
	}
	if r.OperationsTotal == nil || r.BytesProcessed == nil || r.OperationDuration == nil || r.ErrorsTotal == nil {
		t.Error("NewRegistry() left a metric nil")
	}
	if r.Gatherer() == nil {
		t.Error("Gatherer() returned nil")
	}
}

func TestRegistry_Observe(t *testing.T) {
	r := NewRegistry()

	r.Observe("caesar", OpEncrypt, 5, time.Millisecond)
	r.Observe("caesar", OpEncrypt, 7, time.Millisecond)
	r.Observe("xor", OpDecrypt, 3, time.Microsecond)

	if got := testutil.ToFloat64(r.OperationsTotal.WithLabelValues("caesar", OpEncrypt)); got != 2 {
		t.Errorf("operations_total{caesar,encrypt} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.BytesProcessed.WithLabelValues("caesar", OpEncrypt)); got != 12 {
		t.Errorf("bytes_processed_total{caesar,encrypt} = %v, want 12", got)
	}
	if got := testutil.CollectAndCount(r.OperationDuration); got != 2 {
		t.Errorf("operation_duration_seconds series = %d, want 2", got)
	}
}

func TestRegistry_RecordError(t *testing.T) {
	r := NewRegistry()

	r.RecordError("CK-ARG-1001")
	r.RecordError("CK-ARG-1001")
	r.RecordError("")

	if got := testutil.ToFloat64(r.ErrorsTotal.WithLabelValues("CK-ARG-1001")); got != 2 {
		t.Errorf("errors_total{CK-ARG-1001} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.ErrorsTotal.WithLabelValues("unknown")); got != 1 {
		t.Errorf("errors_total{unknown} = %v, want 1", got)
	}
}

func TestRegistry_WriteText(t *testing.T) {
	r := NewRegistry()
	r.Observe("atbash", OpEncrypt, 4, time.Millisecond)

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`cipherkit_operations_total{cipher="atbash",op="encrypt"} 1`,
		`cipherkit_bytes_processed_total{cipher="atbash",op="encrypt"} 4`,
		`cipherkit_operation_duration_seconds_count{cipher="atbash",op="encrypt"} 1`,
		`# TYPE cipherkit_build_info gauge`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteText() output missing %q\n%s", want, out)
		}
	}
}

func TestCollector(t *testing.T) {
	if got := testutil.CollectAndCount(NewCollector()); got != 1 {
		t.Errorf("CollectAndCount() = %d, want 1", got)
	}
}
