package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestEngineMetrics_Counters(t *testing.T) {
	// Отдельный регистр: тест не конфликтует с дефолтным
	reg := prometheus.NewRegistry()
	em := NewEngineMetrics(reg)

	em.SetLoadedChunks(5)
	em.ChunkGenerated()
	em.ChunkGenerated()
	em.ChunkEvicted()
	em.MeshBuilt(2*time.Millisecond, 128)
	em.RaycastDone(true)
	em.RaycastDone(false)

	assert.Equal(t, 5.0, testutil.ToFloat64(em.loadedChunks))
	assert.Equal(t, 2.0, testutil.ToFloat64(em.chunksGen))
	assert.Equal(t, 1.0, testutil.ToFloat64(em.chunksEvicted))
	assert.Equal(t, 1.0, testutil.ToFloat64(em.raycasts.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(em.raycasts.WithLabelValues("miss")))
}

func TestEngineMetrics_NilSafe(t *testing.T) {
	// nil-получатель — все методы записи молча ничего не делают
	var em *EngineMetrics
	em.SetLoadedChunks(1)
	em.ChunkGenerated()
	em.ChunkEvicted()
	em.MeshBuilt(time.Millisecond, 1)
	em.RaycastDone(true)
}
