package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/annel0/voxel-engine/internal/world/chunk"
)

func TestWorldGenerator_Deterministic(t *testing.T) {
	a := NewWorldGenerator(42).GenerateChunk(vec.Vec3{X: 1, Y: 0, Z: -2})
	b := NewWorldGenerator(42).GenerateChunk(vec.Vec3{X: 1, Y: 0, Z: -2})
	require.NotNil(t, a)
	require.NotNil(t, b)

	for y := 0; y < chunk.SizeY; y++ {
		for z := 0; z < chunk.SizeZ; z++ {
			for x := 0; x < chunk.SizeX; x++ {
				pos := vec.Vec3{X: x, Y: y, Z: z}
				ba, _ := a.Get(pos)
				bb, _ := b.Get(pos)
				if ba != bb {
					t.Fatalf("Генерация недетерминирована в %v: %v != %v", pos, ba, bb)
				}
			}
		}
	}
}

func TestWorldGenerator_ColumnsAreSolidBelowSurface(t *testing.T) {
	// В колонке нет воздушных карманов: над поверхностью воздух,
	// под ней сплошная порода
	data := NewWorldGenerator(7).GenerateChunk(vec.Vec3{Y: -2})
	require.NotNil(t, data)

	for z := 0; z < chunk.SizeZ; z++ {
		for x := 0; x < chunk.SizeX; x++ {
			seenSolid := false
			for y := chunk.SizeY - 1; y >= 0; y-- {
				b, _ := data.Get(vec.Vec3{X: x, Y: y, Z: z})
				if b.ID != block.AirBlockID {
					seenSolid = true
				} else if seenSolid {
					t.Fatalf("Воздушный карман в колонке (%d,%d) на высоте %d", x, z, y)
				}
			}
		}
	}
}

func TestSurfaceBlock(t *testing.T) {
	// Слои породы по высоте
	assert.Equal(t, block.StoneBlockID, surfaceBlock(10, 40).ID, "Глубина — камень")
	assert.Equal(t, block.DirtBlockID, surfaceBlock(38, 40).ID, "Почвенный слой — земля")
	assert.Equal(t, block.GrassBlockID, surfaceBlock(40, 40).ID, "Низкая вершина — трава")
	assert.Equal(t, block.SnowGrassBlockID, surfaceBlock(70, 70).ID, "Высокая вершина — снежная трава")
	assert.Equal(t, block.SnowBlockID, surfaceBlock(90, 92).ID, "Выше снеговой линии — снег")
}
