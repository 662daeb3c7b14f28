// Package catalog loads the furniture and room catalogs and draws weighted
// furniture choices for a room.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/piwi3910/RoomCraft/internal/model"
)

// ErrConfiguration marks a malformed or inconsistent catalog.
var ErrConfiguration = errors.New("catalog: invalid configuration")

// Reserved furniture entries that only carry an asset.
const (
	DoorKey   = "door"
	WindowKey = "window"
)

// ItemSpec is one furniture.json entry.
type ItemSpec struct {
	Src    string      `json:"src"`
	Width  json.Number `json:"width,omitempty"`
	Height json.Number `json:"height,omitempty"`
	IsTall bool        `json:"is_tall,omitempty"`
}

// Limit caps how many items of one type a room may hold. The zero value and
// the JSON string "none" mean unlimited.
type Limit struct {
	Max     int
	Bounded bool
}

// Unlimited is the limit that never runs out.
var Unlimited = Limit{}

// LimitOf returns a bounded limit.
func LimitOf(n int) Limit { return Limit{Max: n, Bounded: true} }

// MarshalJSON writes "none" or the natural number.
func (l Limit) MarshalJSON() ([]byte, error) {
	if !l.Bounded {
		return []byte(`"none"`), nil
	}
	return []byte(strconv.Itoa(l.Max)), nil
}

// UnmarshalJSON accepts "none", a natural number or a numeric string.
func (l *Limit) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*l = Unlimited
		return nil
	}
	if unq, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unq)
	}
	if strings.EqualFold(raw, "none") {
		*l = Unlimited
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fmt.Errorf("%w: limit should be a natural number or 'none', got %s", ErrConfiguration, string(data))
	}
	*l = LimitOf(n)
	return nil
}

// Preference is one rooms.json entry for a furniture type.
type Preference struct {
	Likeness json.Number `json:"likeness"`
	Limit    Limit       `json:"limit"`
}

// FurnitureFile is the decoded furniture.json document.
type FurnitureFile map[string]ItemSpec

// RoomsFile is the decoded rooms.json document.
type RoomsFile map[string]map[string]Preference

// Entry is a validated furniture choice for one room type.
type Entry struct {
	Type     string
	Asset    string
	Width    float64 // in cells
	Height   float64 // in cells
	Tall     bool
	Likeness float64
	Limit    Limit
}

// Catalog is the validated furniture and room configuration.
type Catalog struct {
	DoorAsset   string
	WindowAsset string
	rooms       map[model.RoomType][]Entry
}

// Entries returns the entries configured for a room type, sorted by type.
func (c *Catalog) Entries(rt model.RoomType) []Entry {
	return c.rooms[rt]
}

// Load reads and validates both catalog files.
func Load(furniturePath, roomsPath string) (*Catalog, error) {
	furniture, err := os.ReadFile(furniturePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read furniture catalog: %w", err)
	}
	rooms, err := os.ReadFile(roomsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read room catalog: %w", err)
	}
	return Parse(furniture, rooms)
}

// Parse decodes and validates both catalog documents.
func Parse(furnitureJSON, roomsJSON []byte) (*Catalog, error) {
	var furniture FurnitureFile
	if err := json.Unmarshal(furnitureJSON, &furniture); err != nil {
		return nil, configErr("invalid furniture json: %v", err)
	}
	var rooms RoomsFile
	if err := json.Unmarshal(roomsJSON, &rooms); err != nil {
		return nil, configErr("invalid room json: %v", err)
	}
	return New(furniture, rooms)
}

// New validates decoded documents and builds the catalog.
func New(furniture FurnitureFile, rooms RoomsFile) (*Catalog, error) {
	c := &Catalog{
		DoorAsset:   furniture[DoorKey].Src,
		WindowAsset: furniture[WindowKey].Src,
		rooms:       make(map[model.RoomType][]Entry),
	}
	for roomName, prefs := range rooms {
		rt, err := model.ParseRoomType(roomName)
		if err != nil {
			return nil, configErr("%v", err)
		}
		entries := make([]Entry, 0, len(prefs))
		for kind, pref := range prefs {
			entry, err := buildEntry(kind, furniture, pref)
			if err != nil {
				return nil, fmt.Errorf("room %s: %w", roomName, err)
			}
			entries = append(entries, entry)
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Type < entries[j].Type })
		c.rooms[rt] = entries
	}
	return c, nil
}

func buildEntry(kind string, furniture FurnitureFile, pref Preference) (Entry, error) {
	spec, ok := furniture[kind]
	if !ok {
		return Entry{}, configErr("unknown furniture type %q", kind)
	}
	if pref.Likeness == "" {
		return Entry{}, configErr("furniture %q has no likeness", kind)
	}
	likeness, err := pref.Likeness.Float64()
	if err != nil || likeness < 0 {
		return Entry{}, configErr("likeness of %q should be a non-negative number", kind)
	}
	width, werr := spec.Width.Float64()
	height, herr := spec.Height.Float64()
	if werr != nil || herr != nil || width <= 0 || height <= 0 {
		return Entry{}, configErr("width and height of %q must be positive numbers", kind)
	}
	return Entry{
		Type:     kind,
		Asset:    spec.Src,
		Width:    width,
		Height:   height,
		Tall:     spec.IsTall,
		Likeness: likeness,
		Limit:    pref.Limit,
	}, nil
}

func configErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
