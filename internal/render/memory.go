package render

import "github.com/annel0/voxel-engine/internal/mesh"

// Buffers — копия загруженных буферов одного дескриптора
type Buffers struct {
	Vertices []mesh.BlockVertex
	Indices  []uint32
}

// MemoryUploader хранит загруженную геометрию в памяти процесса.
// Используется как бэкенд по умолчанию без GPU и как точка наблюдения
// в тестах: по дескриптору можно прочитать, что именно было загружено.
type MemoryUploader struct {
	next    Handle
	buffers map[Handle]*Buffers
}

// NewMemoryUploader создаёт пустой загрузчик
func NewMemoryUploader() *MemoryUploader {
	return &MemoryUploader{
		next:    1,
		buffers: make(map[Handle]*Buffers),
	}
}

// Upload сохраняет буферы. Если prev существует и размеры совпадают,
// данные перезаписываются на месте и дескриптор сохраняется; иначе
// prev освобождается и выделяется новый — так же ведёт себя замена
// GPU-буфера при изменении размера.
func (m *MemoryUploader) Upload(prev Handle, vertices []mesh.BlockVertex, indices []uint32) Handle {
	if buf, ok := m.buffers[prev]; ok {
		if len(buf.Vertices) == len(vertices) && len(buf.Indices) == len(indices) {
			copy(buf.Vertices, vertices)
			copy(buf.Indices, indices)
			return prev
		}
		delete(m.buffers, prev)
	}

	h := m.next
	m.next++
	m.buffers[h] = &Buffers{
		Vertices: append([]mesh.BlockVertex(nil), vertices...),
		Indices:  append([]uint32(nil), indices...),
	}
	return h
}

// Release освобождает геометрию по дескриптору
func (m *MemoryUploader) Release(h Handle) {
	delete(m.buffers, h)
}

// Get возвращает буферы по дескриптору.
// Второе значение false — дескриптор не существует.
func (m *MemoryUploader) Get(h Handle) (*Buffers, bool) {
	buf, ok := m.buffers[h]
	return buf, ok
}

// Count возвращает количество живых дескрипторов
func (m *MemoryUploader) Count() int {
	return len(m.buffers)
}

// TotalIndices возвращает суммарное количество индексов во всех буферах
func (m *MemoryUploader) TotalIndices() int {
	total := 0
	for _, buf := range m.buffers {
		total += len(buf.Indices)
	}
	return total
}
