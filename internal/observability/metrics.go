// Package observability содержит Prometheus-метрики движка и HTTP-эндпоинт
// для их отдачи.
package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// EngineMetrics — метрики мира и генератора сеток.
// Создаётся один раз на процесс; nil-получатель безопасен, все методы
// записи становятся no-op — тесты работают без регистра Prometheus.
type EngineMetrics struct {
	loadedChunks  prometheus.Gauge
	chunksGen     prometheus.Counter
	chunksEvicted prometheus.Counter
	meshDuration  prometheus.Histogram
	meshVertices  prometheus.Histogram
	raycasts      *prometheus.CounterVec
}

// NewEngineMetrics создаёт метрики и регистрирует их в указанном регистре.
// Если reg == nil, используется дефолтный регистр.
func NewEngineMetrics(reg prometheus.Registerer) *EngineMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	em := &EngineMetrics{
		loadedChunks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "engine",
			Name:      "loaded_chunks",
			Help:      "Текущее количество загруженных чанков.",
		}),
		chunksGen: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "engine",
			Name:      "chunks_generated_total",
			Help:      "Общее число сгенерированных чанков.",
		}),
		chunksEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "engine",
			Name:      "chunks_evicted_total",
			Help:      "Общее число выгруженных чанков.",
		}),
		meshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "engine",
			Name:      "mesh_build_duration_seconds",
			Help:      "Длительность построения сетки чанка.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
		meshVertices: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "engine",
			Name:      "mesh_vertices",
			Help:      "Количество вершин в построенной сетке чанка.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		}),
		raycasts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "engine",
			Name:      "raycasts_total",
			Help:      "Общее число запросов выбора блока лучом.",
		}, []string{"result"}),
	}

	reg.MustRegister(em.loadedChunks, em.chunksGen, em.chunksEvicted,
		em.meshDuration, em.meshVertices, em.raycasts)
	return em
}

// SetLoadedChunks обновляет gauge загруженных чанков
func (em *EngineMetrics) SetLoadedChunks(n int) {
	if em == nil {
		return
	}
	em.loadedChunks.Set(float64(n))
}

// ChunkGenerated фиксирует генерацию чанка
func (em *EngineMetrics) ChunkGenerated() {
	if em == nil {
		return
	}
	em.chunksGen.Inc()
}

// ChunkEvicted фиксирует выгрузку чанка
func (em *EngineMetrics) ChunkEvicted() {
	if em == nil {
		return
	}
	em.chunksEvicted.Inc()
}

// MeshBuilt фиксирует построение сетки: длительность и размер
func (em *EngineMetrics) MeshBuilt(duration time.Duration, vertices int) {
	if em == nil {
		return
	}
	em.meshDuration.Observe(duration.Seconds())
	em.meshVertices.Observe(float64(vertices))
}

// RaycastDone фиксирует запрос выбора блока лучом
func (em *EngineMetrics) RaycastDone(hit bool) {
	if em == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	em.raycasts.WithLabelValues(result).Inc()
}

// ServeMetrics запускает HTTP-сервер с эндпоинтом /metrics на указанном
// порту. Блокирует вызывающую горутину.
func ServeMetrics(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
