package block

import "github.com/annel0/voxel-engine/internal/vec"

// FaceDirection представляет одну из шести граней блока.
// Порядок значений фиксирован: он же используется как индекс в массиве
// соседних чанков и в упакованных данных вершины.
type FaceDirection int

const (
	FacePX FaceDirection = iota // +X
	FaceNX                      // -X
	FacePY                      // +Y (верх)
	FaceNY                      // -Y (низ)
	FacePZ                      // +Z
	FaceNZ                      // -Z

	// FaceCount — количество граней блока
	FaceCount = 6
)

// AllFaces возвращает все шесть направлений в фиксированном порядке
func AllFaces() [FaceCount]FaceDirection {
	return [FaceCount]FaceDirection{FacePX, FaceNX, FacePY, FaceNY, FacePZ, FaceNZ}
}

// Normal возвращает единичную нормаль грани
func (d FaceDirection) Normal() vec.Vec3 {
	switch d {
	case FacePX:
		return vec.Vec3{X: 1}
	case FaceNX:
		return vec.Vec3{X: -1}
	case FacePY:
		return vec.Vec3{Y: 1}
	case FaceNY:
		return vec.Vec3{Y: -1}
	case FacePZ:
		return vec.Vec3{Z: 1}
	default:
		return vec.Vec3{Z: -1}
	}
}

// ClampAxis заменяет координату по оси нормали: на neg для отрицательных
// направлений и на pos для положительных, остальные оси не трогает.
// Используется для проекции локальной координаты на ближнюю грань
// соседнего чанка.
func (d FaceDirection) ClampAxis(p vec.Vec3, neg, pos int) vec.Vec3 {
	switch d {
	case FacePX:
		return vec.Vec3{X: pos, Y: p.Y, Z: p.Z}
	case FaceNX:
		return vec.Vec3{X: neg, Y: p.Y, Z: p.Z}
	case FacePY:
		return vec.Vec3{X: p.X, Y: pos, Z: p.Z}
	case FaceNY:
		return vec.Vec3{X: p.X, Y: neg, Z: p.Z}
	case FacePZ:
		return vec.Vec3{X: p.X, Y: p.Y, Z: pos}
	default:
		return vec.Vec3{X: p.X, Y: p.Y, Z: neg}
	}
}

// Opposite возвращает противоположную грань
func (d FaceDirection) Opposite() FaceDirection {
	switch d {
	case FacePX:
		return FaceNX
	case FaceNX:
		return FacePX
	case FacePY:
		return FaceNY
	case FaceNY:
		return FacePY
	case FacePZ:
		return FaceNZ
	default:
		return FacePZ
	}
}

// String возвращает строковое представление грани
func (d FaceDirection) String() string {
	switch d {
	case FacePX:
		return "+X"
	case FaceNX:
		return "-X"
	case FacePY:
		return "+Y"
	case FaceNY:
		return "-Y"
	case FacePZ:
		return "+Z"
	case FaceNZ:
		return "-Z"
	default:
		return "?"
	}
}
