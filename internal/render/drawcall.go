package render

// DrawCall — одна единица отрисовки кадра: геометрия чанка и её размер.
// Список собирается менеджером мира заново каждый кадр и потребляется
// графическим бэкендом; режим отрисовки общий для всего списка.
type DrawCall struct {
	Mesh       Handle
	IndexCount int
}

// FrameDrawList — команды отрисовки одного кадра
type FrameDrawList struct {
	Mode  Mode
	Calls []DrawCall
}

// TotalIndices возвращает суммарное количество индексов кадра
func (f FrameDrawList) TotalIndices() int {
	total := 0
	for _, c := range f.Calls {
		total += c.IndexCount
	}
	return total
}
