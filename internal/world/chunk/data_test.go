package chunk

import (
	"testing"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

func TestDataGetSetBlock(t *testing.T) {
	data := NewData()

	// Новый чанк заполнен воздухом
	pos := vec.Vec3{X: 3, Y: 4, Z: 5}
	b, ok := data.Get(pos)
	if !ok {
		t.Fatalf("Координата %v внутри чанка, ожидался блок", pos)
	}
	if b.ID != block.AirBlockID {
		t.Errorf("Ожидался пустой блок (AirBlockID), получен %d", b.ID)
	}

	// Устанавливаем и проверяем блок
	data.Set(pos, block.Block{ID: block.StoneBlockID})
	b, _ = data.Get(pos)
	if b.ID != block.StoneBlockID {
		t.Errorf("Ожидался StoneBlockID, получен %d", b.ID)
	}
}

func TestDataOutOfRange(t *testing.T) {
	data := NewData()

	outside := []vec.Vec3{
		{X: -1, Y: 0, Z: 0},
		{X: 0, Y: -1, Z: 0},
		{X: 0, Y: 0, Z: -1},
		{X: SizeX, Y: 0, Z: 0},
		{X: 0, Y: SizeY, Z: 0},
		{X: 0, Y: 0, Z: SizeZ},
	}

	for _, pos := range outside {
		if _, ok := data.Get(pos); ok {
			t.Errorf("Координата %v вне чанка, Get должен вернуть false", pos)
		}
		if data.SolidAt(pos) {
			t.Errorf("Координата %v вне чанка не должна быть твёрдой", pos)
		}
		// Set вне диапазона — no-op, не паника
		data.Set(pos, block.Block{ID: block.StoneBlockID})
	}

	// Проверяем, что no-op Set ничего не задел
	for y := 0; y < SizeY; y++ {
		for z := 0; z < SizeZ; z++ {
			for x := 0; x < SizeX; x++ {
				b, _ := data.Get(vec.Vec3{X: x, Y: y, Z: z})
				if b.ID != block.AirBlockID {
					t.Fatalf("Блок (%d,%d,%d) изменился после Set вне диапазона", x, y, z)
				}
			}
		}
	}
}

func TestCoordsToOffsetUnique(t *testing.T) {
	// Каждая координата отображается в своё смещение
	seen := make(map[int]vec.Vec3, BlockCount)
	for y := 0; y < SizeY; y++ {
		for z := 0; z < SizeZ; z++ {
			for x := 0; x < SizeX; x++ {
				pos := vec.Vec3{X: x, Y: y, Z: z}
				offset, ok := CoordsToOffset(pos)
				if !ok {
					t.Fatalf("Координата %v внутри чанка, ожидалось смещение", pos)
				}
				if prev, dup := seen[offset]; dup {
					t.Fatalf("Смещение %d занято координатами %v и %v", offset, prev, pos)
				}
				seen[offset] = pos
			}
		}
	}
	if len(seen) != BlockCount {
		t.Errorf("Ожидалось %d смещений, получено %d", BlockCount, len(seen))
	}
}

func TestDataFill(t *testing.T) {
	data := NewData()
	data.Fill(block.Block{ID: block.DirtBlockID})

	b, _ := data.Get(vec.Vec3{X: 31, Y: 31, Z: 31})
	if b.ID != block.DirtBlockID {
		t.Errorf("Ожидался DirtBlockID после Fill, получен %d", b.ID)
	}
}
