package observability

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/cairo1-compile/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics()

	m.Observe("compile", time.Now(), nil)
	m.Observe("merge", time.Now(), fmt.Errorf("%w: bad", domain.ErrSchemaMismatch))
	m.Observe("merge", time.Now(), errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("compile", domain.CategoryOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("merge", domain.CategorySchema)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("merge", domain.CategoryOther)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestMetrics_OutputBytes(t *testing.T) {
	m := NewMetrics()
	m.AddOutputBytes("merge", 120)
	m.AddOutputBytes("merge", 30)

	assert.Equal(t, 150.0, testutil.ToFloat64(m.outputBytes.WithLabelValues("merge")))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.Observe("compile", time.Now(), nil)
	m.AddOutputBytes("compile", 42)

	path := filepath.Join(t.TempDir(), "cairo1.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `cairo1_compile_operations_total{command="compile",outcome="ok"} 1`)
	assert.Contains(t, string(data), `cairo1_compile_output_bytes_total{command="compile"} 42`)
}

func TestMetrics_Gatherer(t *testing.T) {
	m := NewMetrics()
	m.Observe("merge", time.Now(), nil)
	m.AddOutputBytes("merge", 7)

	count, err := testutil.GatherAndCount(m.Gatherer(),
		"cairo1_compile_operations_total",
		"cairo1_compile_duration_seconds",
		"cairo1_compile_output_bytes_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
