package domain

// Assignment links an employee to a project with a time allocation. The pair
// (EmployeeID, ProjectID) is the composite key; an employee may hold
// assignments on many projects and allocation is per pairing, not capped
// across projects.
type Assignment struct {
	EmployeeID        int64 `json:"employeeID"`
	ProjectID         int64 `json:"projectID"`
	AllocationPercent int   `json:"allocationPercent"` // 1..100
	AuditFields
}
