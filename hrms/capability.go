package hrms

// =============================================================================
// CAPABILITIES - What a role unlocks
// =============================================================================

// Capability is one permitted view or action. Handlers ask Role.Can once per
// route instead of comparing roles inline.
type Capability string

const (
	CapViewDashboard     Capability = "dashboard.view"
	CapViewEmployees     Capability = "employees.view"
	CapManageEmployees   Capability = "employees.manage"
	CapExportEmployees   Capability = "employees.export"
	CapViewLeaves        Capability = "leaves.view"
	CapApplyLeave        Capability = "leaves.apply"
	CapReviewLeave       Capability = "leaves.review"
	CapViewDepartments   Capability = "departments.view"
	CapManageDepartments Capability = "departments.manage"
	CapViewReports       Capability = "reports.view"
	CapViewPayroll       Capability = "payroll.view"
	CapViewSettings      Capability = "settings.view"
	CapAdminister        Capability = "system.administer"
)

var roleCapabilities = map[Role][]Capability{
	RoleAdmin: {
		CapViewDashboard,
		CapViewEmployees,
		CapManageEmployees,
		CapExportEmployees,
		CapViewLeaves,
		CapApplyLeave,
		CapReviewLeave,
		CapViewDepartments,
		CapManageDepartments,
		CapViewReports,
		CapViewPayroll,
		CapViewSettings,
		CapAdminister,
	},
	RoleHR: {
		CapViewDashboard,
		CapViewEmployees,
		CapManageEmployees,
		CapExportEmployees,
		CapViewLeaves,
		CapApplyLeave,
		CapReviewLeave,
		CapViewDepartments,
		CapManageDepartments,
		CapViewReports,
		CapViewPayroll,
		CapViewSettings,
	},
	RoleManager: {
		CapViewDashboard,
		CapViewEmployees,
		CapExportEmployees,
		CapViewLeaves,
		CapApplyLeave,
		CapReviewLeave,
		CapViewReports,
		CapViewSettings,
	},
	RoleEmployee: {
		CapViewDashboard,
		CapViewLeaves,
		CapApplyLeave,
		CapViewSettings,
	},
}

// Capabilities returns a copy of the role's capability set. Unknown roles get none.
func (r Role) Capabilities() []Capability {
	return append([]Capability(nil), roleCapabilities[r]...)
}

// Can reports whether the role holds c.
func (r Role) Can(c Capability) bool {
	for _, have := range roleCapabilities[r] {
		if have == c {
			return true
		}
	}
	return false
}
