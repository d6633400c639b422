package world

import (
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/annel0/voxel-engine/internal/world/chunk"
)

// BlockTarget — блок, выбранный лучом: чанк, локальная позиция внутри
// него и грань, через которую луч вошёл.
type BlockTarget struct {
	Chunk vec.Vec3            // Координаты чанка
	Local vec.Vec3            // Локальные координаты блока в чанке
	Face  block.FaceDirection // Грань со стороны наблюдателя
}

// NewBlockTarget строит цель из глобальных блочных координат
func NewBlockTarget(global vec.Vec3, face block.FaceDirection) BlockTarget {
	return BlockTarget{
		Chunk: chunk.GlobalToChunkCoords(global),
		Local: chunk.GlobalToLocal(global),
		Face:  face,
	}
}

// Global возвращает глобальные блочные координаты цели
func (t BlockTarget) Global() vec.Vec3 {
	return chunk.ChunkOrigin(t.Chunk).Add(t.Local)
}

// Adjacent возвращает глобальные координаты ячейки перед выбранной
// гранью — туда ставится новый блок.
func (t BlockTarget) Adjacent() vec.Vec3 {
	return t.Global().Add(t.Face.Normal())
}
