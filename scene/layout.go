package scene

// GroundHeight is the number of rows the ground strip occupies.
const GroundHeight = 8

// doorOffset is the column of the door within the house art.
const doorOffset = 18

// chimney position within the house art, where the smoke curls are drawn
const (
	chimneyOffsetX = 10
	chimneyOffsetY = 3
)

// Layout is the derived scene geometry for one terminal size. It holds no
// state of its own; recompute it whenever the size may have changed.
type Layout struct {
	Width, Height int

	HorizonY   int // first ground row
	HouseX     int
	HouseY     int
	PathCenter int

	// smoke spawn point, anchored to the chimney
	ChimneyX int
	ChimneyY int
}

// NewLayout computes the geometry for a terminal size. All offsets use
// saturating arithmetic so extreme shrink clips the scene instead of
// producing negative coordinates.
func NewLayout(width, height int) Layout {
	horizonY := sub(height, GroundHeight)
	houseX := sub(width/2, houseWidth()/2)
	houseY := sub(horizonY, houseHeight())

	return Layout{
		Width:      width,
		Height:     height,
		HorizonY:   horizonY,
		HouseX:     houseX,
		HouseY:     houseY,
		PathCenter: houseX + doorOffset,
		ChimneyX:   houseX + chimneyOffsetX,
		ChimneyY:   houseY + chimneyOffsetY,
	}
}

// sub is a saturating subtraction clamped at zero.
func sub(a, b int) int {
	if a <= b {
		return 0
	}
	return a - b
}
