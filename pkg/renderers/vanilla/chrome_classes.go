package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassTitle        ChromeClass = "listgen-title"
	ClassTable        ChromeClass = "table table-striped"
	ClassHead         ChromeClass = "sticky-top"
	ClassActions      ChromeClass = "listgen-actions"
	ClassAdminActions ChromeClass = "listgen-admin-actions"
	ClassAdd          ChromeClass = "listgen-add"
	ClassContainer    ChromeClass = "container"
)

// Classes holds the CSS classes emitted by the list templates. Empty fields
// fall back to the defaults when passed through WithClasses.
type Classes struct {
	Title        string `json:"title"`
	Table        string `json:"table"`
	Head         string `json:"head"`
	Actions      string `json:"actions"`
	AdminActions string `json:"admin_actions"`
	Add          string `json:"add"`
	AddIcon      string `json:"add_icon"`
	Container    string `json:"container"`
}

// DefaultClasses returns the stock class set (Bootstrap friendly).
func DefaultClasses() Classes {
	return Classes{
		Title:        string(ClassTitle),
		Table:        string(ClassTable),
		Head:         string(ClassHead),
		Actions:      string(ClassActions),
		AdminActions: string(ClassAdminActions),
		Add:          string(ClassAdd),
		AddIcon:      "bi bi-plus-circle",
		Container:    string(ClassContainer),
	}
}

func (c Classes) withDefaults() Classes {
	defaults := DefaultClasses()
	pick := func(value, fallback string) string {
		if cleaned := cleanClassList(value); cleaned != "" {
			return cleaned
		}
		return fallback
	}
	return Classes{
		Title:        pick(c.Title, defaults.Title),
		Table:        pick(c.Table, defaults.Table),
		Head:         pick(c.Head, defaults.Head),
		Actions:      pick(c.Actions, defaults.Actions),
		AdminActions: pick(c.AdminActions, defaults.AdminActions),
		Add:          pick(c.Add, defaults.Add),
		AddIcon:      pick(c.AddIcon, defaults.AddIcon),
		Container:    pick(c.Container, defaults.Container),
	}
}
