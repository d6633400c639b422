package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

func TestRaycast_StraightDown(t *testing.T) {
	// Наблюдатель над рельефом смотрит вертикально вниз:
	// попадание в верхнюю грань блока на уровне поверхности
	terrain := func(p vec.Vec3) bool { return p.Y <= 128 }

	origin := vec.Vec3Float{X: 16.0, Y: 150.0, Z: 16.0}
	dir := vec.Vec3Float{Y: -1.0}

	hit, ok := Raycast(origin, dir, 32.0, terrain)
	require.True(t, ok, "Луч должен достичь поверхности")
	assert.Equal(t, vec.Vec3{X: 16, Y: 128, Z: 16}, hit.Block, "Попадание в верхний блок рельефа")
	assert.Equal(t, block.FacePY, hit.Face, "Вертикальный луч входит через верхнюю грань")
}

func TestRaycast_AxisAligned(t *testing.T) {
	// Осевой луч: нулевые компоненты направления не должны ломать
	// определение грани
	wall := func(p vec.Vec3) bool { return p.X >= 10 }

	hit, ok := Raycast(vec.Vec3Float{}, vec.Vec3Float{X: 1}, 16.0, wall)
	require.True(t, ok)
	assert.Equal(t, vec.Vec3{X: 10}, hit.Block)
	assert.Equal(t, block.FaceNX, hit.Face, "Луч вдоль +X входит через грань -X")
}

func TestRaycast_Diagonal(t *testing.T) {
	// Диагональный луч в одиночный блок
	target := vec.Vec3{X: 5, Y: 5, Z: 5}
	solid := func(p vec.Vec3) bool { return p == target }

	origin := vec.Vec3Float{X: 5.0, Y: 10.0, Z: 4.0}
	dir := vec.Vec3Float{Y: -5.0, Z: 1.0}.Normalized()

	hit, ok := Raycast(origin, dir, 16.0, solid)
	require.True(t, ok, "Луч должен задеть блок")
	assert.Equal(t, target, hit.Block)
	assert.Equal(t, block.FacePY, hit.Face, "Крутой луч сверху входит через верхнюю грань")
}

func TestRaycast_Miss(t *testing.T) {
	nothing := func(p vec.Vec3) bool { return false }

	_, ok := Raycast(vec.Vec3Float{}, vec.Vec3Float{X: 1}, 16.0, nothing)
	assert.False(t, ok, "В пустом мире попаданий нет")
}

func TestRaycast_MaxDistance(t *testing.T) {
	// Стена за пределами дальности не достигается
	wall := func(p vec.Vec3) bool { return p.X >= 10 }

	_, ok := Raycast(vec.Vec3Float{}, vec.Vec3Float{X: 1}, 5.0, wall)
	assert.False(t, ok, "Дальность луча ограничена maxDist")
}

func TestRaycast_OriginInsideSolid(t *testing.T) {
	// Луч, начатый внутри твёрдого блока, сообщает о нём немедленно
	everything := func(p vec.Vec3) bool { return true }

	hit, ok := Raycast(vec.Vec3Float{X: 3.0, Y: 4.0, Z: 5.0}, vec.Vec3Float{X: 1}, 16.0, everything)
	require.True(t, ok)
	assert.Equal(t, vec.Vec3{X: 3, Y: 4, Z: 5}, hit.Block)
}
