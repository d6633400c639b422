// Package render определяет узкий интерфейс загрузки геометрии на GPU
// и режимы отрисовки. Сам графический бэкенд (окно, шейдеры, пайплайны)
// живёт за этим интерфейсом и в движок не входит.
package render

import "github.com/annel0/voxel-engine/internal/mesh"

// Handle — непрозрачный идентификатор загруженной геометрии чанка.
// Нулевое значение означает «геометрия не загружена».
type Handle uint64

// Uploader принимает готовые буферы сетки чанка и управляет их
// временем жизни на стороне GPU
type Uploader interface {
	// Upload загружает буферы вершин и индексов. prev — предыдущий
	// дескриптор геометрии этого чанка (0, если её ещё не было);
	// реализация может переиспользовать его или выделить новый.
	Upload(prev Handle, vertices []mesh.BlockVertex, indices []uint32) Handle

	// Release освобождает геометрию. Нулевой дескриптор игнорируется.
	Release(h Handle)
}

// Mode — режим отрисовки мира
type Mode int

const (
	// ModeNormal — обычная заливка треугольников
	ModeNormal Mode = iota
	// ModeWireframe — каркасный режим для отладки сетки
	ModeWireframe
)

// String возвращает строковое представление режима отрисовки
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeWireframe:
		return "wireframe"
	default:
		return "unknown"
	}
}

// Toggle переключает режим между обычным и каркасным
func (m Mode) Toggle() Mode {
	if m == ModeNormal {
		return ModeWireframe
	}
	return ModeNormal
}
