package hrms

// View is a named page of the dashboard reachable by a stable path.
type View struct {
	Name  string     `json:"name"`
	Label string     `json:"label"`
	Path  string     `json:"path"`
	Needs Capability `json:"needs,omitempty"` // empty = public
}

var (
	ViewLogin       = View{Name: "login", Label: "Login", Path: "/login"}
	ViewDashboard   = View{Name: "dashboard", Label: "Dashboard", Path: "/", Needs: CapViewDashboard}
	ViewEmployees   = View{Name: "employees", Label: "Employees", Path: "/employees", Needs: CapViewEmployees}
	ViewLeaves      = View{Name: "leaves", Label: "Leave Management", Path: "/leaves", Needs: CapViewLeaves}
	ViewDepartments = View{Name: "departments", Label: "Departments", Path: "/departments", Needs: CapViewDepartments}
	ViewReports     = View{Name: "reports", Label: "Reports", Path: "/reports", Needs: CapViewReports}
	ViewPayroll     = View{Name: "payroll", Label: "Payroll", Path: "/payroll", Needs: CapViewPayroll}
	ViewSettings    = View{Name: "settings", Label: "Settings", Path: "/settings", Needs: CapViewSettings}
	ViewNotFound    = View{Name: "not-found", Label: "Not Found"}
)

// routes is the routing table in sidebar order.
var routes = []View{
	ViewLogin,
	ViewDashboard,
	ViewEmployees,
	ViewLeaves,
	ViewDepartments,
	ViewReports,
	ViewPayroll,
	ViewSettings,
}

// ResolveView maps a path to its view. Unknown paths resolve to ViewNotFound
// carrying the requested path.
func ResolveView(path string) View {
	for _, v := range routes {
		if v.Path == path {
			return v
		}
	}
	nf := ViewNotFound
	nf.Path = path
	return nf
}

// NavigationFor returns the sidebar entries the role may open.
func NavigationFor(role Role) []View {
	out := []View{}
	for _, v := range routes {
		if v.Needs == "" {
			continue
		}
		if role.Can(v.Needs) {
			out = append(out, v)
		}
	}
	return out
}
