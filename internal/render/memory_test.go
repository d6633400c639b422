package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-engine/internal/mesh"
)

func verts(n int) []mesh.BlockVertex {
	out := make([]mesh.BlockVertex, n)
	for i := range out {
		out[i] = mesh.BlockVertex{Data0: uint32(i), Data1: uint32(i * 2)}
	}
	return out
}

func TestMemoryUploader_UploadAndGet(t *testing.T) {
	u := NewMemoryUploader()

	h := u.Upload(0, verts(4), []uint32{0, 1, 2, 2, 3, 0})
	require.NotZero(t, h, "Загрузка должна вернуть ненулевой дескриптор")

	buf, ok := u.Get(h)
	require.True(t, ok)
	assert.Len(t, buf.Vertices, 4)
	assert.Len(t, buf.Indices, 6)
	assert.Equal(t, 1, u.Count())
}

func TestMemoryUploader_OverwriteInPlace(t *testing.T) {
	// При совпадении размеров дескриптор сохраняется, данные заменяются
	u := NewMemoryUploader()
	h := u.Upload(0, verts(4), []uint32{0, 1, 2, 2, 3, 0})

	updated := verts(4)
	updated[0].Data0 = 999
	h2 := u.Upload(h, updated, []uint32{0, 1, 2, 2, 3, 0})

	assert.Equal(t, h, h2, "Буфер того же размера перезаписывается на месте")
	buf, _ := u.Get(h2)
	assert.Equal(t, uint32(999), buf.Vertices[0].Data0)
	assert.Equal(t, 1, u.Count())
}

func TestMemoryUploader_ReplaceOnResize(t *testing.T) {
	// Изменение размера выделяет новый дескриптор и освобождает старый
	u := NewMemoryUploader()
	h := u.Upload(0, verts(4), []uint32{0, 1, 2, 2, 3, 0})

	h2 := u.Upload(h, verts(8), []uint32{0, 1, 2, 2, 3, 0, 4, 5, 6, 6, 7, 4})
	assert.NotEqual(t, h, h2, "Буфер другого размера получает новый дескриптор")

	_, ok := u.Get(h)
	assert.False(t, ok, "Старый дескриптор освобождён")
	assert.Equal(t, 1, u.Count())
}

func TestMemoryUploader_Release(t *testing.T) {
	u := NewMemoryUploader()
	h := u.Upload(0, verts(4), []uint32{0, 1, 2})

	u.Release(h)
	_, ok := u.Get(h)
	assert.False(t, ok)
	assert.Equal(t, 0, u.Count())

	// Нулевой и повторный Release безопасны
	u.Release(0)
	u.Release(h)
}

func TestMode_Toggle(t *testing.T) {
	assert.Equal(t, ModeWireframe, ModeNormal.Toggle())
	assert.Equal(t, ModeNormal, ModeWireframe.Toggle())
	assert.Equal(t, "wireframe", ModeWireframe.String())
}
