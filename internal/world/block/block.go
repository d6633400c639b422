package block

// BlockID представляет идентификатор типа блока
type BlockID uint16

// Константы ID блоков
const (
	AirBlockID       BlockID = iota // 0 — всегда воздух, не рендерится
	StoneBlockID                    // 1
	GrassBlockID                    // 2
	DirtBlockID                     // 3
	SnowBlockID                     // 4
	SnowGrassBlockID                // 5

	// endBlockID — маркер конца перечисления; всё, что >= endBlockID,
	// считается неизвестным id.
	endBlockID
)

// Block представляет содержимое одной ячейки воксельной сетки.
// Копируемый value-тип: id типа блока и зарезервированное состояние.
type Block struct {
	ID    BlockID // Идентификатор типа блока
	State uint16  // Зарезервировано под варианты блока, ядром не интерпретируется
}

// Air возвращает пустой блок (id 0)
func Air() Block {
	return Block{}
}

// FromID проверяет, что id лежит в диапазоне известных блоков.
// Заменяет небезопасное приведение числа к перечислению: неизвестные id
// не являются ошибкой, вызывающий код обязан обработать false.
func FromID(id BlockID) (BlockID, bool) {
	if id >= endBlockID {
		return 0, false
	}
	return id, true
}

// IsValidBlockID проверяет, является ли id допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, ok := FromID(id)
	return ok
}

// IsSolid возвращает true, если блок непрозрачен и закрывает соседние грани.
// Неизвестный id трактуется как твёрдый: повреждённые или будущие id не
// должны оставлять визуальных дыр в мире.
func (b Block) IsSolid() bool {
	id, ok := FromID(b.ID)
	if !ok {
		return true
	}
	switch id {
	case AirBlockID:
		return false
	default:
		return true
	}
}
