// Package physics содержит геометрические запросы к блочному миру.
// Твёрдость блоков передаётся функцией-замыканием: пакет не знает ни о
// чанках, ни о менеджере мира.
package physics

import (
	"fmt"
	"math"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// DefaultRayStep — шаг марширования луча в блоках
const DefaultRayStep = 0.1

// RayHit — результат попадания луча в твёрдый блок
type RayHit struct {
	Block vec.Vec3            // Глобальные координаты блока
	Face  block.FaceDirection // Грань, через которую луч вошёл в блок
}

// Raycast марширует луч из origin в направлении dir с фиксированным шагом
// и возвращает первый твёрдый блок в пределах maxDist. solid сообщает
// твёрдость блока по глобальным координатам; незагруженные области
// считаются пустыми — луч проходит сквозь них.
//
// dir должен быть нормализован. Вторым значением возвращается false,
// если луч не встретил твёрдого блока.
func Raycast(origin, dir vec.Vec3Float, maxDist float64, solid func(vec.Vec3) bool) (RayHit, bool) {
	prev := origin
	for t := 0.0; t <= maxDist; t += DefaultRayStep {
		sample := origin.Add(dir.Mul(t))
		blk := sample.Round()
		if solid(blk) {
			return RayHit{Block: blk, Face: entryFace(prev, dir, blk)}, true
		}
		prev = sample
	}
	return RayHit{}, false
}

// entryFace определяет грань блока, через которую вошёл луч: slab-тест
// по точке последней выборки перед попаданием. Ось с наибольшим
// расстоянием входа доминирует, знак направления луча по этой оси даёт
// грань (нормаль грани смотрит навстречу лучу).
func entryFace(prev, dir vec.Vec3Float, blk vec.Vec3) block.FaceDirection {
	ro := prev.Sub(blk.ToFloat())

	tx := slabEntry(ro.X, dir.X)
	ty := slabEntry(ro.Y, dir.Y)
	tz := slabEntry(ro.Z, dir.Z)

	t := tx
	axis := 0
	if ty > t {
		t = ty
		axis = 1
	}
	if tz > t {
		t = tz
		axis = 2
	}

	if math.IsNaN(t) || math.IsInf(t, 0) {
		panic(fmt.Sprintf("physics: вырожденный slab-тест луча: t=(%v,%v,%v) dir=%v", tx, ty, tz, dir))
	}

	switch axis {
	case 0:
		if dir.X > 0 {
			return block.FaceNX
		}
		return block.FacePX
	case 1:
		if dir.Y > 0 {
			return block.FaceNY
		}
		return block.FacePY
	default:
		if dir.Z > 0 {
			return block.FaceNZ
		}
		return block.FacePZ
	}
}

// slabEntry возвращает расстояние входа луча в слой [-0.5, 0.5] по одной
// оси. Нулевая компонента направления даёт -Inf: ось параллельна слою и
// не может доминировать, иначе 0*Inf порождает NaN.
func slabEntry(ro, d float64) float64 {
	if d == 0 {
		return math.Inf(-1)
	}
	inv := 1.0 / d
	return -ro*inv - 0.5*math.Abs(inv)
}
