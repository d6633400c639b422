// Package world содержит менеджер чанков: удержание окрестности
// наблюдателя, генерацию и выгрузку чанков, перестройку их сеток и
// запросы к блокам по глобальным координатам.
package world

import (
	"fmt"
	"sync"
	"time"

	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/mesh"
	"github.com/annel0/voxel-engine/internal/observability"
	"github.com/annel0/voxel-engine/internal/physics"
	"github.com/annel0/voxel-engine/internal/render"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/annel0/voxel-engine/internal/world/chunk"
)

// Manager управляет множеством загруженных чанков и их геометрией
type Manager struct {
	mu       sync.RWMutex
	chunks   map[vec.Vec3]*Chunk
	radius   int // Радиус удержания в чанках
	center   vec.Vec3
	hasView  bool // SetViewpoint вызывался хотя бы раз
	mode     render.Mode
	builder  *mesh.Builder
	uploader render.Uploader

	generator ChunkGenerator
	metrics   *observability.EngineMetrics
}

// NewManager создаёт менеджер мира.
// generator порождает блочные данные, uploader принимает готовые сетки,
// radius задаёт радиус удержания чанков вокруг наблюдателя.
func NewManager(generator ChunkGenerator, uploader render.Uploader, radius int) *Manager {
	return &Manager{
		chunks:    make(map[vec.Vec3]*Chunk),
		radius:    radius,
		builder:   mesh.NewBuilder(),
		uploader:  uploader,
		generator: generator,
	}
}

// SetMetrics подключает Prometheus-метрики. nil допустим.
func (m *Manager) SetMetrics(em *observability.EngineMetrics) {
	m.metrics = em
}

// SetViewpoint сообщает менеджеру позицию наблюдателя в мировых
// координатах. Загружает недостающие чанки в радиусе удержания,
// выгружает ушедшие за радиус и перестраивает затронутые сетки.
// Вызывается раз в кадр; повторный вызов с той же позицией дёшев.
func (m *Manager) SetViewpoint(pos vec.Vec3Float) {
	center := chunk.WorldToChunkCoords(pos)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.hasView && center == m.center && len(m.chunks) > 0 {
		return
	}
	m.center = center
	m.hasView = true

	m.retainAround(center)
}

// retainAround приводит множество загруженных чанков к сферической
// окрестности центра. Вызывается под мьютексом записи.
func (m *Manager) retainAround(center vec.Vec3) {
	half := m.radius / 2
	keep := make(map[vec.Vec3]struct{})
	var created []*Chunk

	for x := -half - 1; x < half+1; x++ {
		for y := -half - 1; y < half+1; y++ {
			for z := -half - 1; z < half+1; z++ {
				d := vec.Vec3{X: x, Y: y, Z: z}
				if d.LengthSq() >= m.radius*m.radius {
					continue
				}
				coords := center.Add(d)
				keep[coords] = struct{}{}

				if _, loaded := m.chunks[coords]; loaded {
					continue
				}
				data := m.generator.GenerateChunk(coords)
				if data == nil {
					// Генератор отказался: координаты не считаются загруженными
					continue
				}
				c := NewChunk(coords, data)
				m.chunks[coords] = c
				created = append(created, c)
				m.metrics.ChunkGenerated()
				logging.LogChunkGenerated(coords.X, coords.Y, coords.Z)
			}
		}
	}

	// Выгружаем чанки за пределами окрестности
	for coords, c := range m.chunks {
		if _, ok := keep[coords]; ok {
			continue
		}
		m.uploader.Release(c.Mesh)
		delete(m.chunks, coords)
		m.metrics.ChunkEvicted()
	}

	// Перестраиваем сетки новых чанков и их загруженных соседей: у соседа
	// могли открыться или закрыться граничные грани.
	dirty := make(map[vec.Vec3]struct{})
	for _, c := range created {
		dirty[c.Coords] = struct{}{}
		for _, dir := range block.AllFaces() {
			n := c.Coords.Add(dir.Normal())
			if _, loaded := m.chunks[n]; loaded {
				dirty[n] = struct{}{}
			}
		}
	}
	for coords := range dirty {
		if c, ok := m.chunks[coords]; ok {
			m.remesh(c)
		}
	}

	m.metrics.SetLoadedChunks(len(m.chunks))
}

// remesh перестраивает сетку чанка и загружает её. Вызывается под
// мьютексом записи: данные соседей на время построения стабильны.
func (m *Manager) remesh(c *Chunk) {
	var neighbors mesh.Neighbors
	for _, dir := range block.AllFaces() {
		if n, ok := m.chunks[c.Coords.Add(dir.Normal())]; ok {
			neighbors[dir] = n.Data
		}
	}

	start := time.Now()
	vertices, indices := m.builder.Build(c.Data, neighbors)
	m.metrics.MeshBuilt(time.Since(start), len(vertices))

	c.Mesh = m.uploader.Upload(c.Mesh, vertices, indices)
	c.VertexCount = len(vertices)
	c.IndexCount = len(indices)
	logging.LogChunkMeshed(c.Coords.X, c.Coords.Y, c.Coords.Z, len(vertices), len(indices))
}

// GetChunk возвращает загруженный чанк по координатам.
// Второе значение false — чанк не загружен.
func (m *Manager) GetChunk(coords vec.Vec3) (*Chunk, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.chunks[coords]
	return c, ok
}

// ChunkCount возвращает количество загруженных чанков
func (m *Manager) ChunkCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.chunks)
}

// GetBlock возвращает блок по глобальным блочным координатам.
// Второе значение false — чанк с этим блоком не загружен.
func (m *Manager) GetBlock(global vec.Vec3) (block.Block, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.getBlock(global)
}

func (m *Manager) getBlock(global vec.Vec3) (block.Block, bool) {
	c, ok := m.chunks[chunk.GlobalToChunkCoords(global)]
	if !ok {
		return block.Block{}, false
	}
	b, ok := c.Data.Get(chunk.GlobalToLocal(global))
	return b, ok
}

// BlockAt возвращает блок по глобальным координатам в заведомо
// загруженной области. Незагруженный чанк — нарушение предусловия
// вызывающего кода, а не штатная ситуация.
func (m *Manager) BlockAt(global vec.Vec3) block.Block {
	b, ok := m.GetBlock(global)
	if !ok {
		panic(fmt.Sprintf("world: запрос блока %v в незагруженном чанке", global))
	}
	return b
}

// SolidAt возвращает true, если по глобальным координатам находится
// твёрдый блок. Незагруженная область считается пустой.
func (m *Manager) SolidAt(global vec.Vec3) bool {
	b, ok := m.GetBlock(global)
	return ok && b.IsSolid()
}

// SetBlock устанавливает блок по глобальным координатам и перестраивает
// сетку чанка, а для блока на границе — и сетки затронутых соседей.
// Паникует, если чанк не загружен: правка приходит от выбора блока
// лучом, а луч не попадает в незагруженные чанки.
func (m *Manager) SetBlock(global vec.Vec3, b block.Block) {
	m.mu.Lock()
	defer m.mu.Unlock()

	coords := chunk.GlobalToChunkCoords(global)
	c, ok := m.chunks[coords]
	if !ok {
		panic(fmt.Sprintf("world: правка блока %v в незагруженном чанке %v", global, coords))
	}

	local := chunk.GlobalToLocal(global)
	c.Data.Set(local, b)
	logging.LogBlockEdit(global.X, global.Y, global.Z, uint16(b.ID))

	m.remesh(c)
	for _, dir := range boundaryFaces(local) {
		if n, loaded := m.chunks[coords.Add(dir.Normal())]; loaded {
			m.remesh(n)
		}
	}
}

// boundaryFaces возвращает направления, по которым локальная позиция
// прилегает к границе чанка
func boundaryFaces(local vec.Vec3) []block.FaceDirection {
	var faces []block.FaceDirection
	if local.X == 0 {
		faces = append(faces, block.FaceNX)
	}
	if local.X == chunk.SizeX-1 {
		faces = append(faces, block.FacePX)
	}
	if local.Y == 0 {
		faces = append(faces, block.FaceNY)
	}
	if local.Y == chunk.SizeY-1 {
		faces = append(faces, block.FacePY)
	}
	if local.Z == 0 {
		faces = append(faces, block.FaceNZ)
	}
	if local.Z == chunk.SizeZ-1 {
		faces = append(faces, block.FacePZ)
	}
	return faces
}

// RaycastTarget пускает луч из origin в направлении dir и возвращает
// первый твёрдый блок в пределах maxDist. dir должен быть нормализован.
// Второе значение false — луч ничего не задел.
func (m *Manager) RaycastTarget(origin, dir vec.Vec3Float, maxDist float64) (BlockTarget, bool) {
	hit, ok := physics.Raycast(origin, dir, maxDist, m.SolidAt)
	m.metrics.RaycastDone(ok)
	if !ok {
		return BlockTarget{}, false
	}
	return NewBlockTarget(hit.Block, hit.Face), true
}

// DrawList собирает команды отрисовки кадра: по одной на каждый чанк с
// непустой сеткой, с общим для кадра режимом отрисовки
func (m *Manager) DrawList() render.FrameDrawList {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := render.FrameDrawList{Mode: m.mode}
	for _, c := range m.chunks {
		if c.IndexCount == 0 {
			continue
		}
		list.Calls = append(list.Calls, render.DrawCall{
			Mesh:       c.Mesh,
			IndexCount: c.IndexCount,
		})
	}
	return list
}

// Mode возвращает текущий режим отрисовки
func (m *Manager) Mode() render.Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode
}

// ToggleMode переключает режим отрисовки между обычным и каркасным
func (m *Manager) ToggleMode() render.Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = m.mode.Toggle()
	return m.mode
}
