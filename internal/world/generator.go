package world

import (
	"github.com/annel0/voxel-engine/internal/util"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/annel0/voxel-engine/internal/world/chunk"
)

// ChunkGenerator порождает блочные данные чанка по его координатам.
// nil означает «для этих координат чанка нет» — менеджер пропускает
// такие координаты и не считает их загруженными.
type ChunkGenerator interface {
	GenerateChunk(coords vec.Vec3) *chunk.Data
}

// WorldGenerator — генератор рельефа на шуме Перлина: два слоя шума
// дают карту высот, по высоте выбираются слои породы.
type WorldGenerator struct {
	seed   int64
	hills  *util.NoiseSource // Пологий рельеф
	ridges *util.NoiseSource // Горные хребты, низкая частота
}

// NewWorldGenerator создаёт генератор мира с указанным сидом
func NewWorldGenerator(seed int64) *WorldGenerator {
	return &WorldGenerator{
		seed:   seed,
		hills:  util.NewNoiseSource(seed),
		ridges: util.NewNoiseSource(seed + 1),
	}
}

// heightAt возвращает высоту рельефа для глобальной колонки (x, z)
func (wg *WorldGenerator) heightAt(x, z int) int {
	h := signed(wg.hills.Noise2D(float64(x)*0.001, float64(z)*0.001)) * 64.0
	h2 := signed(wg.ridges.Noise2D(float64(x)*0.0005, float64(z)*0.0005)) * 128.0
	return int(h + h2)
}

// signed переводит шум из [0, 1] обратно в [-1, 1]
func signed(v float64) float64 {
	return v*2.0 - 1.0
}

// surfaceBlock выбирает блок для высоты y в колонке с вершиной height.
// Верхние пять блоков — почвенный слой: снег выше снеговой линии,
// трава или заснеженная трава на самой вершине, земля под ней.
// Всё остальное — камень.
func surfaceBlock(y, height int) block.Block {
	if y <= height-5 {
		return block.Block{ID: block.StoneBlockID}
	}
	if y > 85 {
		return block.Block{ID: block.SnowBlockID}
	}
	if y == height {
		if y > 64 {
			return block.Block{ID: block.SnowGrassBlockID}
		}
		return block.Block{ID: block.GrassBlockID}
	}
	return block.Block{ID: block.DirtBlockID}
}

// GenerateChunk заполняет данные чанка рельефом.
// Детерминирован: одинаковые сид и координаты дают одинаковый чанк.
func (wg *WorldGenerator) GenerateChunk(coords vec.Vec3) *chunk.Data {
	data := chunk.NewData()
	origin := chunk.ChunkOrigin(coords)

	for z := 0; z < chunk.SizeZ; z++ {
		for x := 0; x < chunk.SizeX; x++ {
			height := wg.heightAt(origin.X+x, origin.Z+z)
			for y := 0; y < chunk.SizeY; y++ {
				worldY := origin.Y + y
				if worldY > height {
					break // выше рельефа только воздух
				}
				data.Set(vec.Vec3{X: x, Y: y, Z: z}, surfaceBlock(worldY, height))
			}
		}
	}

	return data
}
