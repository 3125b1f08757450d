package model

// SizeClass is the wrapper tag that decides how many columns an item spans
type SizeClass string

const (
	// SizeClassNormal spans a single column
	SizeClassNormal SizeClass = ""

	// SizeClassDoubleWide spans two columns
	SizeClassDoubleWide SizeClass = "masonry-double-wide"

	// SizeClassTripleWide spans three columns
	SizeClassTripleWide SizeClass = "masonry-triple-wide"

	// SizeClassQuadrupleWide spans four columns
	SizeClassQuadrupleWide SizeClass = "masonry-quadruple-wide"
)

// DraggedMarker is the tag added to a wrapper while its item is being dragged
const DraggedMarker = "masonry-dnd-dragged"

// String returns the string representation of SizeClass
func (sc SizeClass) String() string {
	return string(sc)
}

// Span returns the number of columns the size class occupies.
// Unknown tags are treated as single column.
func (sc SizeClass) Span() int {
	switch sc {
	case SizeClassDoubleWide, "double-wide", "wide":
		return 2
	case SizeClassTripleWide, "triple-wide":
		return 3
	case SizeClassQuadrupleWide, "quadruple-wide":
		return 4
	default:
		return 1
	}
}

// IsWide returns true if the size class spans more than one column
func (sc SizeClass) IsWide() bool {
	return sc.Span() > 1
}

// SizeClassOptions returns the size classes selectable in the UI
func SizeClassOptions() []SizeClass {
	return []SizeClass{SizeClassNormal, SizeClassDoubleWide, SizeClassTripleWide, SizeClassQuadrupleWide}
}
