// Package mesh строит треугольную сетку чанка: отсечение скрытых граней по
// собственным и соседним чанкам, расчёт затенения углов (ambient occlusion)
// и упаковка вершин в компактный GPU-формат.
package mesh

import "github.com/annel0/voxel-engine/internal/world/block"

// cubeVertices — вершины единичного куба с центром в начале координат.
// Нумерация фиксирована, на неё ссылаются таблицы граней.
var cubeVertices = [8][3]float64{
	//   X     Y     Z
	{0.5, 0.5, 0.5},    // 0
	{0.5, 0.5, -0.5},   // 1
	{-0.5, 0.5, -0.5},  // 2
	{-0.5, 0.5, 0.5},   // 3
	{0.5, -0.5, 0.5},   // 4
	{0.5, -0.5, -0.5},  // 5
	{-0.5, -0.5, -0.5}, // 6
	{-0.5, -0.5, 0.5},  // 7
}

// cubeFaces — четвёрки индексов вершин куба для каждой грани.
// Порядок обхода согласован с отсечением задних граней (back-face culling);
// индекс массива совпадает со значением block.FaceDirection.
var cubeFaces = [block.FaceCount][4]int{
	{5, 4, 0, 1}, // +X
	{7, 6, 2, 3}, // -X
	{3, 2, 1, 0}, // +Y
	{4, 5, 6, 7}, // -Y
	{4, 7, 3, 0}, // +Z
	{6, 5, 1, 2}, // -Z
}

// faceFan — индексы двух треугольников грани относительно её четырёх вершин
var faceFan = [6]uint32{0, 1, 2, 2, 3, 0}
