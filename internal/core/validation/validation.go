// Package validation holds the pure field-level invariant checks run before
// every create or update reaches the persistence layer. A failed check means
// no store mutation is issued.
package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wfms/workforce_mgmt_app/internal/apperrors"
	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
)

// ValidateDepartment checks the field-level invariants of a department.
func ValidateDepartment(d domain.Department) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: department name is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(d.Location) == "" {
		return fmt.Errorf("%w: department location is required", apperrors.ErrValidation)
	}
	if d.AnnualBudget.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: department annual budget must be positive", apperrors.ErrValidation)
	}
	return nil
}

// ValidateEmployee checks the field-level invariants of an employee.
func ValidateEmployee(e domain.Employee) error {
	if strings.TrimSpace(e.FullName) == "" {
		return fmt.Errorf("%w: employee name is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: employee title is required", apperrors.ErrValidation)
	}
	if e.HireDate.IsZero() {
		return fmt.Errorf("%w: employee hire date is required", apperrors.ErrValidation)
	}
	if e.Salary.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: employee salary must be positive", apperrors.ErrValidation)
	}
	return nil
}

// ValidateProject checks the field-level invariants of a project.
func ValidateProject(p domain.Project) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: project name is required", apperrors.ErrValidation)
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return fmt.Errorf("%w: project start and end dates are required", apperrors.ErrValidation)
	}
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("%w: project end date must not precede start date", apperrors.ErrValidation)
	}
	if p.Budget.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: project budget must be positive", apperrors.ErrValidation)
	}
	return nil
}

// ValidateClient checks the field-level invariants of a client.
func ValidateClient(c domain.Client) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: client name is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(c.Industry) == "" {
		return fmt.Errorf("%w: client industry is required", apperrors.ErrValidation)
	}
	if !c.HasValidContact() {
		return fmt.Errorf("%w: client contact email must contain '@'", apperrors.ErrValidation)
	}
	return nil
}

// ValidateAllocation checks that an assignment allocation is within 1..100.
func ValidateAllocation(allocationPercent int) error {
	if allocationPercent < 1 || allocationPercent > 100 {
		return fmt.Errorf("%w: time allocation must be between 1 and 100", apperrors.ErrValidation)
	}
	return nil
}
