package mesh

import (
	"fmt"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
	"github.com/annel0/voxel-engine/internal/world/chunk"
)

// TextureLookup возвращает индекс текстуры для блока и грани
type TextureLookup func(id block.BlockID, dir block.FaceDirection) uint32

// Builder строит сетку чанка.
// CornerOrder задаёт соответствие углов грани слотам затенения в вершине:
// детерминированная таблица, одинаковая для всех граней.
type Builder struct {
	CornerOrder [4]int
	Textures    TextureLookup
}

// NewBuilder создаёт генератор сетки с таблицами по умолчанию
func NewBuilder() *Builder {
	return &Builder{
		CornerOrder: [4]int{0, 1, 2, 3},
		Textures:    block.TextureFor,
	}
}

// Neighbors — ссылки на данные шести смежных по граням чанков,
// индекс совпадает с block.FaceDirection. nil — чанк не загружен.
type Neighbors [block.FaceCount]*chunk.Data

// Build обходит блоки чанка в фиксированном порядке (y, затем z, затем x)
// и возвращает плоские буферы вершин и индексов: 4 вершины и 6 индексов на
// каждую видимую грань, без дедупликации. Для одинаковых входных данных
// результат идентичен.
//
// Данные соседей используются только на чтение; сам чанк во время
// построения не изменяется.
func (b *Builder) Build(data *chunk.Data, neighbors Neighbors) ([]BlockVertex, []uint32) {
	var vertices []BlockVertex
	var indices []uint32

	for y := 0; y < chunk.SizeY; y++ {
		for z := 0; z < chunk.SizeZ; z++ {
			for x := 0; x < chunk.SizeX; x++ {
				pos := vec.Vec3{X: x, Y: y, Z: z}
				blk, _ := data.Get(pos)
				if blk.ID == block.AirBlockID {
					continue // воздух не рендерится
				}

				for _, dir := range block.AllFaces() {
					if !faceVisible(data, neighbors, pos, dir) {
						continue
					}

					start := uint32(len(vertices))
					tex := b.Textures(blk.ID, dir)

					// Затенение четырёх углов грани
					var ao [4]uint8
					face := cubeFaces[dir]
					for slot, vi := range face {
						occ := cornerOcclusion(data, neighbors, pos, dir, cubeVertices[vi])
						ao[b.CornerOrder[slot]] = occ
					}

					for slot, vi := range face {
						v := cubeVertices[vi]
						vertices = append(vertices, NewBlockVertex(
							v[0]+float64(x),
							v[1]+float64(y),
							v[2]+float64(z),
							uint8(slot), ao, tex,
						))
					}

					for _, k := range faceFan {
						indices = append(indices, start+k)
					}
				}
			}
		}
	}

	return vertices, indices
}

// faceVisible решает, нужно ли эмитировать грань блока pos в направлении dir.
// Соседняя ячейка внутри чанка: грань видима, если ячейка нетвёрдая.
// Ячейка за границей: твёрдость проверяется в соседнем чанке на его ближней
// грани; отсутствующий сосед прячет грань целиком — незагруженную область
// нельзя считать пустой.
func faceVisible(data *chunk.Data, neighbors Neighbors, pos vec.Vec3, dir block.FaceDirection) bool {
	n := pos.Add(dir.Normal())
	if _, ok := chunk.CoordsToOffset(n); ok {
		return !data.SolidAt(n)
	}

	nb := neighbors[dir]
	if nb == nil {
		return false
	}

	mapped := dir.ClampAxis(pos, chunk.SizeX-1, 0)
	blk, ok := nb.Get(mapped)
	if !ok {
		// После проекции на грань соседа координата обязана быть валидной;
		// сюда можно попасть только из-за ошибки в самой проекции.
		panic(fmt.Sprintf("mesh: неразрешимое смещение %v в соседнем чанке %v", mapped, dir))
	}
	return !blk.IsSolid()
}

// probeSolid проверяет твёрдость ячейки, которая может лежать вне чанка.
// В отличие от faceVisible допускает диагональные смещения: ячейка,
// вышедшая за границу ровно по одной оси, разрешается через соседа по этой
// грани; по двум и более осям (диагональные чанки недоступны) и при
// отсутствующем соседе считается нетвёрдой.
func probeSolid(data *chunk.Data, neighbors Neighbors, pos vec.Vec3) bool {
	if _, ok := chunk.CoordsToOffset(pos); ok {
		return data.SolidAt(pos)
	}

	var dir block.FaceDirection
	outside := 0
	switch {
	case pos.X < 0:
		dir = block.FaceNX
		outside++
	case pos.X >= chunk.SizeX:
		dir = block.FacePX
		outside++
	}
	switch {
	case pos.Y < 0:
		dir = block.FaceNY
		outside++
	case pos.Y >= chunk.SizeY:
		dir = block.FacePY
		outside++
	}
	switch {
	case pos.Z < 0:
		dir = block.FaceNZ
		outside++
	case pos.Z >= chunk.SizeZ:
		dir = block.FacePZ
		outside++
	}
	if outside != 1 {
		return false
	}

	nb := neighbors[dir]
	if nb == nil {
		return false
	}

	mapped := pos.Sub(dir.Normal().Mul(chunk.SizeX))
	blk, ok := nb.Get(mapped)
	return ok && blk.IsSolid()
}

// cornerOcclusion вычисляет уровень затенения угла грани (0..3).
// Для угла берутся три вспомогательные ячейки в слое за гранью: две рёберные
// в плоскости грани и диагональная. Обе рёберные твёрдые — максимум (3)
// независимо от диагонали, иначе 3 минус количество твёрдых ячеек.
func cornerOcclusion(data *chunk.Data, neighbors Neighbors, pos vec.Vec3, dir block.FaceDirection, corner [3]float64) uint8 {
	normal := dir.Normal()
	base := pos.Add(normal)

	// Смещения по двум осям в плоскости грани, знак — из координат вершины
	var offsets [2]vec.Vec3
	count := 0
	if normal.X == 0 {
		offsets[count] = vec.Vec3{X: sign(corner[0])}
		count++
	}
	if normal.Y == 0 {
		offsets[count] = vec.Vec3{Y: sign(corner[1])}
		count++
	}
	if normal.Z == 0 {
		offsets[count] = vec.Vec3{Z: sign(corner[2])}
		count++
	}

	edge1 := probeSolid(data, neighbors, base.Add(offsets[0]))
	edge2 := probeSolid(data, neighbors, base.Add(offsets[1]))
	if edge1 && edge2 {
		return 3
	}

	occluders := 0
	if edge1 {
		occluders++
	}
	if edge2 {
		occluders++
	}
	if probeSolid(data, neighbors, base.Add(offsets[0]).Add(offsets[1])) {
		occluders++
	}
	return uint8(3 - occluders)
}

func sign(f float64) int {
	if f < 0 {
		return -1
	}
	return 1
}
