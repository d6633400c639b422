package mesh

// BlockVertex — упакованная вершина блока, два 32-битных слова:
//
//	data0: uv:2 | z:10 | y:10 | x:10
//	data1: tex:24 | ao3:2 | ao2:2 | ao1:2 | ao0:2
//
// Позиции локальны чанку и хранятся удвоенными (вершины куба лежат на
// полуцелых координатах), поэтому 10-битного знакового поля хватает на
// диапазон чанка. Раскладка обязана разворачиваться обратно без потерь.
type BlockVertex struct {
	Data0 uint32
	Data1 uint32
}

// i32ToI10 упаковывает целое в 10 бит: знаковый бит и 9 бит значения.
// Для рабочего диапазона (-64..63 после удвоения) совпадает с 10-битным
// дополнительным кодом.
func i32ToI10(i int32) uint32 {
	u := uint32(i)
	return ((u >> 31) << 9) | (u & 0x1FF)
}

// i10ToI32 разворачивает 10-битное знаковое поле обратно в целое
func i10ToI32(v uint32) int32 {
	if v&0x200 != 0 {
		return int32(v) - 1024
	}
	return int32(v)
}

// NewBlockVertex упаковывает вершину: локальная позиция, индекс UV-угла,
// четыре значения затенения углов и индекс текстуры
func NewBlockVertex(x, y, z float64, uv uint8, ao [4]uint8, tex uint32) BlockVertex {
	return BlockVertex{
		Data0: (uint32(uv&0b11) << 30) |
			(i32ToI10(int32(x*2.0)) << 0) |
			(i32ToI10(int32(y*2.0)) << 10) |
			(i32ToI10(int32(z*2.0)) << 20),
		Data1: (tex << 8) |
			(uint32(ao[0]&0b11) << 0) |
			(uint32(ao[1]&0b11) << 2) |
			(uint32(ao[2]&0b11) << 4) |
			(uint32(ao[3]&0b11) << 6),
	}
}

// Position разворачивает локальную позицию вершины
func (v BlockVertex) Position() (x, y, z float64) {
	x = float64(i10ToI32((v.Data0>>0)&0x3FF)) / 2.0
	y = float64(i10ToI32((v.Data0>>10)&0x3FF)) / 2.0
	z = float64(i10ToI32((v.Data0>>20)&0x3FF)) / 2.0
	return
}

// UV возвращает индекс UV-угла (0..3)
func (v BlockVertex) UV() uint8 {
	return uint8((v.Data0 >> 30) & 0b11)
}

// AO возвращает четыре упакованных значения затенения углов
func (v BlockVertex) AO() [4]uint8 {
	return [4]uint8{
		uint8((v.Data1 >> 0) & 0b11),
		uint8((v.Data1 >> 2) & 0b11),
		uint8((v.Data1 >> 4) & 0b11),
		uint8((v.Data1 >> 6) & 0b11),
	}
}

// Texture возвращает индекс текстуры грани
func (v BlockVertex) Texture() uint32 {
	return v.Data1 >> 8
}
