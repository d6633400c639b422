package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/voxel-engine/internal/config"
	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/observability"
	"github.com/annel0/voxel-engine/internal/render"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitLogger(); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseLogger()

	logging.LogInfo("🌍 Запуск воксельного движка...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.LogError("❌ Ошибка загрузки конфигурации: %v", err)
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{} // конфиг не задан — использовать дефолты
	}

	seed := cfg.World.GetSeed()
	radius := cfg.World.GetRetentionRadius()
	metricsPort := cfg.Metrics.GetMetricsPort()

	logging.LogInfo("📡 Конфигурация: seed=%d, radius=%d чанков, metrics=:%d",
		seed, radius, metricsPort)

	// === ИНИЦИАЛИЗАЦИЯ КОМПОНЕНТОВ ===

	// Метрики Prometheus
	metrics := observability.NewEngineMetrics(nil)
	go func() {
		if err := observability.ServeMetrics(metricsPort); err != nil {
			logging.LogError("Ошибка HTTP-сервера метрик: %v", err)
		}
	}()

	// Менеджер мира с генератором рельефа
	generator := world.NewWorldGenerator(seed)
	uploader := render.NewMemoryUploader()
	manager := world.NewManager(generator, uploader, radius)
	manager.SetMetrics(metrics)

	if cfg.Render.Wireframe {
		manager.ToggleMode()
	}

	// Начальная позиция наблюдателя над рельефом
	viewpoint := vec.Vec3Float{X: 0, Y: 150, Z: 0}
	manager.SetViewpoint(viewpoint)
	logging.LogInfo("✅ Мир загружен: %d чанков, режим %s",
		manager.ChunkCount(), manager.Mode())

	// Демонстрационный выбор блока под наблюдателем
	raycastDist := cfg.World.GetRaycastDistance()
	if target, ok := manager.RaycastTarget(viewpoint, vec.Vec3Float{Y: -1}, 64); ok {
		logging.LogInfo("🎯 Блок под наблюдателем: %v, грань %v",
			target.Global(), target.Face)
	}

	// === ОСНОВНОЙ ЦИКЛ ===
	// Наблюдатель медленно движется вдоль X: загрузка и выгрузка чанков
	// работают непрерывно, как при полёте камеры.
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	lastReport := time.Now()
	for {
		select {
		case <-ticker.C:
			viewpoint.X += 0.5
			manager.SetViewpoint(viewpoint)

			// Взгляд вперёд и вниз, как у летящей камеры
			lookDir := vec.Vec3Float{X: 1, Y: -1}.Normalized()
			target, hit := manager.RaycastTarget(viewpoint, lookDir, raycastDist)

			if time.Since(lastReport) >= 10*time.Second {
				frame := manager.DrawList()
				logging.LogInfo("Чанков: %d, draw calls: %d (%d индексов, режим %s), позиция X=%.0f",
					manager.ChunkCount(), len(frame.Calls), frame.TotalIndices(),
					frame.Mode, viewpoint.X)
				if hit {
					logging.LogDebug("Выбран блок %v, грань %v", target.Global(), target.Face)
				}
				lastReport = time.Now()
			}
		case sig := <-sigCh:
			logging.LogInfo("📡 Получен сигнал %v, завершение работы...", sig)
			logging.LogInfo("👋 Движок остановлен")
			return
		}
	}
}
