package world

import (
	"github.com/annel0/voxel-engine/internal/render"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/chunk"
)

// Chunk — загруженный чанк мира: блоки и состояние его геометрии.
// Данными владеет менеджер мира; генератор сетки получает соседние
// данные только на чтение.
type Chunk struct {
	Coords vec.Vec3    // Координаты чанка в чанковом пространстве
	Data   *chunk.Data // Блочное хранилище

	Mesh        render.Handle // Дескриптор загруженной геометрии (0 — нет)
	VertexCount int           // Размер последней построенной сетки
	IndexCount  int
}

// NewChunk создаёт чанк с готовыми данными
func NewChunk(coords vec.Vec3, data *chunk.Data) *Chunk {
	return &Chunk{
		Coords: coords,
		Data:   data,
	}
}

// Origin возвращает глобальные блочные координаты начала чанка
func (c *Chunk) Origin() vec.Vec3 {
	return chunk.ChunkOrigin(c.Coords)
}
