// Package chunk содержит плотное блочное хранилище чанка и преобразования
// координат между мировым, чанковым и локальным пространствами.
package chunk

import (
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// Размеры чанка в блоках. Степени двойки: локальные координаты
// извлекаются сдвигом и маской.
const (
	SizeX = 32
	SizeY = 32
	SizeZ = 32

	// BlockCount — общее количество блоков в чанке
	BlockCount = SizeX * SizeY * SizeZ
)

// Data — плотный массив блоков одного чанка.
// Владение эксклюзивное: данными владеет ровно один Chunk, генератор сетки
// получает соседние Data только на чтение.
type Data struct {
	blocks [BlockCount]block.Block
}

// NewData создаёт пустой чанк (все блоки — воздух)
func NewData() *Data {
	return &Data{}
}

// CoordsToOffset преобразует локальные координаты в смещение в массиве.
// Возвращает false, если любая ось вне диапазона [0, size): на границах
// чанка это обычная ситуация и означает «спросите соседний чанк».
func CoordsToOffset(local vec.Vec3) (int, bool) {
	if local.X < 0 || local.Y < 0 || local.Z < 0 {
		return 0, false
	}
	if local.X >= SizeX || local.Y >= SizeY || local.Z >= SizeZ {
		return 0, false
	}
	return local.Y*SizeZ*SizeX + local.Z*SizeX + local.X, true
}

// Get возвращает блок по локальным координатам.
// Второе значение false означает координату вне чанка.
func (d *Data) Get(local vec.Vec3) (block.Block, bool) {
	offset, ok := CoordsToOffset(local)
	if !ok {
		return block.Block{}, false
	}
	return d.blocks[offset], true
}

// Set устанавливает блок по локальным координатам.
// Координаты вне чанка молча игнорируются: обходы граней намеренно
// зондируют соседние ячейки, это не ошибка.
func (d *Data) Set(local vec.Vec3, b block.Block) {
	offset, ok := CoordsToOffset(local)
	if !ok {
		return
	}
	d.blocks[offset] = b
}

// SolidAt возвращает true, если по локальным координатам находится
// твёрдый блок. Координаты вне чанка считаются нетвёрдыми.
func (d *Data) SolidAt(local vec.Vec3) bool {
	b, ok := d.Get(local)
	return ok && b.IsSolid()
}

// Fill заполняет весь чанк одним блоком
func (d *Data) Fill(b block.Block) {
	for i := range d.blocks {
		d.blocks[i] = b
	}
}
