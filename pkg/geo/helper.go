package geo

import (
	"container/list"

	"github.com/lintang-b-s/triroute/pkg/datastructure"
)

// CollinearTolerance drops only points that lie on the segment between their neighbours.
const CollinearTolerance = 1e-9

// https://cartography-playground.gitlab.io/playgrounds/douglas-peucker-algorithm/

// RamerDouglasPeucker simplifies a route geometry, keeping every point farther
// than threshold from the segment spanned by its kept neighbours.
func RamerDouglasPeucker(coords []datastructure.Coordinate, threshold float64) []datastructure.Coordinate {
	size := len(coords)
	if size < 3 {
		return coords
	}

	kepts := make([]bool, size)
	kepts[0] = true
	kepts[size-1] = true

	stack := list.New()
	stack.PushBack([2]int{0, size - 1})

	for stack.Len() > 0 {
		pair := stack.Remove(stack.Back()).([2]int)
		left, right := pair[0], pair[1]
		var maxDist float64
		farthestIndex := left

		for i := left + 1; i < right; i++ {
			dist := PointLinePerpendicularDistance(coords[left], coords[right], coords[i])
			if dist > maxDist {
				maxDist = dist
				farthestIndex = i
			}
		}

		if maxDist > threshold {
			kepts[farthestIndex] = true
			stack.PushBack([2]int{left, farthestIndex})
			stack.PushBack([2]int{farthestIndex, right})
		}
	}

	simplified := make([]datastructure.Coordinate, 0, size)
	for i, necessary := range kepts {
		if necessary {
			simplified = append(simplified, coords[i])
		}
	}
	return simplified
}

// PointLinePerpendicularDistance is the distance of p to the segment a-b.
func PointLinePerpendicularDistance(a, b, p datastructure.Coordinate) float64 {
	pa, pb, pp := toR2(a), toR2(b), toR2(p)
	ab := pb.Sub(pa)
	norm2 := ab.Dot(ab)
	if norm2 == 0 {
		return pp.Sub(pa).Norm()
	}
	t := pp.Sub(pa).Dot(ab) / norm2
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	proj := pa.Add(ab.Mul(t))
	return pp.Sub(proj).Norm()
}
