package rich

// Style is the character style of a run.
type Style int

const (
	Normal Style = iota
	Bold
	Italic
	Underline
)

var styleNames = [...]string{
	Normal:    "normal",
	Bold:      "bold",
	Italic:    "italic",
	Underline: "underline",
}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "unknown"
	}
	return styleNames[s]
}

// Alignment is the horizontal alignment of a paragraph. Inherit defers
// to the stylesheet.
type Alignment int

const (
	Inherit Alignment = iota
	Left
	Right
	Center
)

var alignNames = [...]string{
	Inherit: "inherit",
	Left:    "left",
	Right:   "right",
	Center:  "center",
}

func (a Alignment) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return "unknown"
	}
	return alignNames[a]
}

// ParseAlignment is the inverse of Alignment.String. It also accepts
// "centre".
func ParseAlignment(s string) (Alignment, bool) {
	switch s {
	case "inherit", "":
		return Inherit, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	case "center", "centre":
		return Center, true
	}
	return Inherit, false
}

// Resolve returns a unless it is Inherit, in which case it returns def.
func (a Alignment) Resolve(def Alignment) Alignment {
	if a == Inherit {
		return def
	}
	return a
}
