package navigation

// View is one of the three screens of the app. List is both the initial
// view and the one every back action returns to.
type View int

const (
	List View = iota
	Detail
	Form
)

// Tag is the history entry tag for v.
func (v View) Tag() string {
	switch v {
	case Detail:
		return "detail"
	case Form:
		return "form"
	default:
		return "list"
	}
}

func (v View) String() string {
	return v.Tag()
}

// ParseView resolves a history tag. Unknown tags report false.
func ParseView(tag string) (View, bool) {
	switch tag {
	case "list":
		return List, true
	case "detail":
		return Detail, true
	case "form":
		return Form, true
	default:
		return List, false
	}
}
