package catalog

import "encoding/json"

// DefaultFurniture returns the stock furniture catalog written by init.
// Sizes are in schema cells.
func DefaultFurniture() FurnitureFile {
	item := func(src string, w, h float64, tall bool) ItemSpec {
		return ItemSpec{Src: src, Width: num(w), Height: num(h), IsTall: tall}
	}
	return FurnitureFile{
		DoorKey:      {Src: "door.png"},
		WindowKey:    {Src: "window.png"},
		"bed":        item("bed.png", 2, 3, false),
		"wardrobe":   item("wardrobe.png", 2, 1, true),
		"desk":       item("desk.png", 2, 1, false),
		"sofa":       item("sofa.png", 3, 1, false),
		"tv":         item("tv.png", 2, 1, true),
		"table":      item("table.png", 2, 2, false),
		"fridge":     item("fridge.png", 1, 1, true),
		"stove":      item("stove.png", 1, 1, false),
		"sink":       item("sink.png", 1, 1, false),
		"toilet":     item("toilet.png", 1, 1, false),
		"bathtub":    item("bathtub.png", 2, 1, false),
		"shoe_rack":  item("shoe_rack.png", 1, 1, false),
		"coat_stand": item("coat_stand.png", 1, 1, true),
	}
}

// DefaultRooms returns the stock room preferences written by init.
func DefaultRooms() RoomsFile {
	pref := func(likeness float64, limit Limit) Preference {
		return Preference{Likeness: num(likeness), Limit: limit}
	}
	return RoomsFile{
		"bedroom": {
			"bed":      pref(5, LimitOf(1)),
			"wardrobe": pref(3, LimitOf(2)),
			"desk":     pref(2, LimitOf(1)),
		},
		"livingroom": {
			"sofa":  pref(5, LimitOf(2)),
			"tv":    pref(3, LimitOf(1)),
			"table": pref(2, LimitOf(1)),
		},
		"kitchen": {
			"fridge": pref(4, LimitOf(1)),
			"stove":  pref(4, LimitOf(1)),
			"sink":   pref(3, LimitOf(2)),
			"table":  pref(1, LimitOf(1)),
		},
		"bathroom": {
			"toilet":  pref(5, LimitOf(1)),
			"sink":    pref(3, LimitOf(1)),
			"bathtub": pref(2, LimitOf(1)),
		},
		"hall": {
			"shoe_rack":  pref(3, LimitOf(2)),
			"coat_stand": pref(2, Unlimited),
		},
	}
}

// Default builds the catalog from the stock documents.
func Default() *Catalog {
	c, err := New(DefaultFurniture(), DefaultRooms())
	if err != nil {
		panic(err)
	}
	return c
}

func num(v float64) json.Number {
	b, _ := json.Marshal(v)
	return json.Number(b)
}
