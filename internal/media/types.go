package media

type Type string

const (
	// TypeSplash fills the whole 72x40 panel.
	TypeSplash Type = "splash"
	TypeIcon   Type = "icon"
)

func (t Type) Size() (w int16, h int16) {
	switch t {
	case TypeSplash:
		return 72, 40
	case TypeIcon:
		return 16, 16
	default:
		return 0, 0
	}
}
