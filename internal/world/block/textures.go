package block

// FaceTextures хранит индексы текстур для шести граней блока
type FaceTextures struct {
	Top    uint32
	Bottom uint32
	Left   uint32
	Right  uint32
	Front  uint32
	Back   uint32
}

// SameTexture возвращает набор, в котором все грани используют одну текстуру
func SameTexture(t uint32) FaceTextures {
	return FaceTextures{Top: t, Bottom: t, Left: t, Right: t, Front: t, Back: t}
}

// CylinderTexture возвращает набор с отдельными текстурами верха и низа
// и общей текстурой боковых граней
func CylinderTexture(top, bottom, side uint32) FaceTextures {
	return FaceTextures{Top: top, Bottom: bottom, Left: side, Right: side, Front: side, Back: side}
}

// InDirection возвращает индекс текстуры для указанной грани
func (ft FaceTextures) InDirection(dir FaceDirection) uint32 {
	switch dir {
	case FacePX:
		return ft.Right
	case FaceNX:
		return ft.Left
	case FacePY:
		return ft.Top
	case FaceNY:
		return ft.Bottom
	case FacePZ:
		return ft.Front
	default:
		return ft.Back
	}
}

var textureRegistry = make(map[BlockID]FaceTextures)

// RegisterTextures добавляет набор текстур блока в регистр
func RegisterTextures(id BlockID, textures FaceTextures) {
	textureRegistry[id] = textures
}

// TextureFor возвращает индекс текстуры для блока и грани.
// Для незарегистрированного id возвращает индекс 0 — это определённый
// фолбэк, а не ошибка.
func TextureFor(id BlockID, dir FaceDirection) uint32 {
	textures, ok := textureRegistry[id]
	if !ok {
		return 0
	}
	return textures.InDirection(dir)
}

// Раскладка текстурного атласа по умолчанию:
// 0 — трава (верх), 1 — земля, 2 — камень, 3 — снег, 4 — бок травы,
// 5 — бок снежной травы.
func init() {
	RegisterTextures(StoneBlockID, SameTexture(2))
	RegisterTextures(DirtBlockID, SameTexture(1))
	RegisterTextures(GrassBlockID, CylinderTexture(0, 1, 4))
	RegisterTextures(SnowBlockID, SameTexture(3))
	RegisterTextures(SnowGrassBlockID, CylinderTexture(3, 1, 5))
}
