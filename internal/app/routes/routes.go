package routes

import (
	"context"
	"strconv"
	"strings"

	"github.com/yigit/hostel/internal/app/controllers"
)

// ExitChoice ends the menu loop
const ExitChoice = 12

// Banner is printed above the menu on every iteration
const Banner = "-------Welcome to Hostel Management system of the YBAnnex-------"

// HandlerFunc runs one menu entry
type HandlerFunc func(ctx context.Context) error

// Route binds a menu number to its handler
type Route struct {
	Choice  int
	Label   string
	Handler HandlerFunc
}

// Menu is the ordered list of menu entries
type Menu struct {
	routes []Route
	byKey  map[int]Route
}

// SetupMenu configures all menu entries
func SetupMenu(c *controllers.Controllers) *Menu {
	m := &Menu{byKey: make(map[int]Route)}

	m.handle(1, "Add Student", c.Student.AddStudent)
	m.handle(2, "Display All Students", c.Student.DisplayAll)
	m.handle(3, "Search Student", c.Student.Search)
	m.handle(4, "Modify Student Details", c.Student.Modify)
	m.handle(5, "Remove Student", c.Student.Remove)
	m.handle(6, "Allocate Room", c.Room.Allocate)
	m.handle(7, "Remove Student from Room", c.Room.Deallocate)
	m.handle(8, "Mark Attendance", c.Attendance.Mark)
	m.handle(9, "Display Students by Department", c.Student.DisplayByDepartment)
	m.handle(10, "Display Student Room and Attendance", c.Room.Report)
	m.handle(11, "Delete All Data", c.Data.DeleteAll)
	m.handle(ExitChoice, "Exit", nil)

	return m
}

func (m *Menu) handle(choice int, label string, h HandlerFunc) {
	r := Route{Choice: choice, Label: label, Handler: h}
	m.routes = append(m.routes, r)
	m.byKey[choice] = r
}

// Routes returns the entries in display order
func (m *Menu) Routes() []Route {
	return m.routes
}

// Lines renders the menu entries as "N. Label"
func (m *Menu) Lines() []string {
	lines := make([]string, 0, len(m.routes))
	for _, r := range m.routes {
		lines = append(lines, strconv.Itoa(r.Choice)+". "+r.Label)
	}
	return lines
}

// Lookup resolves a raw menu answer. numeric is false when the answer is not a number.
func (m *Menu) Lookup(answer string) (route Route, numeric bool, found bool) {
	choice, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return Route{}, false, false
	}
	route, found = m.byKey[choice]
	return route, true, found
}
