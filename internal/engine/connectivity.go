package engine

import (
	"github.com/piwi3910/RoomCraft/internal/geometry"
	"github.com/piwi3910/RoomCraft/internal/model"
	"github.com/zyedidia/generic/mapset"
)

// doorCorners returns the world-space corner set of a door.
func doorCorners(room *model.Room, door *model.Structure) mapset.Set[geometry.Point2D] {
	corners := mapset.New[geometry.Point2D]()
	for _, p := range door.Polygon {
		corners.Put(p.Add(room.Origin))
	}
	return corners
}

func sameSet(a, b mapset.Set[geometry.Point2D]) bool {
	if a.Size() != b.Size() {
		return false
	}
	same := true
	a.Each(func(p geometry.Point2D) {
		if !b.Has(p) {
			same = false
		}
	})
	return same
}

// SetConnectedRooms links every pair of rooms that see the same door from
// both sides, i.e. each has a door whose world-space corners form the same
// point set. Calling it again adds nothing new.
func SetConnectedRooms(rooms []*model.Room) {
	corners := make(map[*model.Structure]mapset.Set[geometry.Point2D])
	for _, r := range rooms {
		for _, d := range r.Doors {
			corners[d] = doorCorners(r, d)
		}
	}
	for i, a := range rooms {
		for _, b := range rooms[i+1:] {
			if sharesDoor(a, b, corners) {
				model.Connect(a, b)
			}
		}
	}
}

func sharesDoor(a, b *model.Room, corners map[*model.Structure]mapset.Set[geometry.Point2D]) bool {
	for _, da := range a.Doors {
		for _, db := range b.Doors {
			if sameSet(corners[da], corners[db]) {
				return true
			}
		}
	}
	return false
}
