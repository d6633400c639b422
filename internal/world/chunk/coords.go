package chunk

import (
	"math"

	"github.com/annel0/voxel-engine/internal/vec"
)

// Все преобразования используют деление и остаток «к минус бесконечности»
// (floor), а не усечение: для отрицательных координат мировая позиция
// x = -1.0 лежит в чанке -1 с локальной координатой 31, а не в чанке 0.

// FloorDiv возвращает частное от деления a на b, округлённое вниз
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod возвращает остаток от деления a на b в диапазоне [0, b)
func FloorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// WorldToChunkCoords преобразует мировую позицию в координаты чанка
func WorldToChunkCoords(world vec.Vec3Float) vec.Vec3 {
	return vec.Vec3{
		X: FloorDiv(int(math.Round(world.X)), SizeX),
		Y: FloorDiv(int(math.Round(world.Y)), SizeY),
		Z: FloorDiv(int(math.Round(world.Z)), SizeZ),
	}
}

// WorldToLocal преобразует мировую позицию в локальные координаты блока
// внутри чанка
func WorldToLocal(world vec.Vec3Float) vec.Vec3 {
	return vec.Vec3{
		X: FloorMod(int(math.Round(world.X)), SizeX),
		Y: FloorMod(int(math.Round(world.Y)), SizeY),
		Z: FloorMod(int(math.Round(world.Z)), SizeZ),
	}
}

// GlobalToChunkCoords преобразует глобальные блочные координаты
// в координаты чанка
func GlobalToChunkCoords(global vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: FloorDiv(global.X, SizeX),
		Y: FloorDiv(global.Y, SizeY),
		Z: FloorDiv(global.Z, SizeZ),
	}
}

// GlobalToLocal преобразует глобальные блочные координаты в локальные
// внутри чанка
func GlobalToLocal(global vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: FloorMod(global.X, SizeX),
		Y: FloorMod(global.Y, SizeY),
		Z: FloorMod(global.Z, SizeZ),
	}
}

// ChunkOrigin возвращает глобальные блочные координаты начала чанка
func ChunkOrigin(coords vec.Vec3) vec.Vec3 {
	return vec.Vec3{X: coords.X * SizeX, Y: coords.Y * SizeY, Z: coords.Z * SizeZ}
}
