package validation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wfms/workforce_mgmt_app/internal/apperrors"
	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
	"github.com/wfms/workforce_mgmt_app/internal/core/validation"
)

func validDepartment() domain.Department {
	return domain.Department{
		Name:         "Engineering",
		Location:     "Berlin",
		AnnualBudget: decimal.NewFromInt(500000),
	}
}

func TestValidateDepartment(t *testing.T) {
	assert.NoError(t, validation.ValidateDepartment(validDepartment()))

	d := validDepartment()
	d.Name = "   "
	assert.ErrorIs(t, validation.ValidateDepartment(d), apperrors.ErrValidation)

	d = validDepartment()
	d.AnnualBudget = decimal.Zero
	assert.ErrorIs(t, validation.ValidateDepartment(d), apperrors.ErrValidation)

	d = validDepartment()
	d.AnnualBudget = decimal.NewFromInt(-1)
	assert.ErrorIs(t, validation.ValidateDepartment(d), apperrors.ErrValidation)
}

func validEmployee() domain.Employee {
	return domain.Employee{
		FullName:     "Ada Lovelace",
		Title:        "Senior Engineer",
		HireDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Salary:       decimal.NewFromInt(120000),
		DepartmentID: 1,
	}
}

func TestValidateEmployee(t *testing.T) {
	assert.NoError(t, validation.ValidateEmployee(validEmployee()))

	e := validEmployee()
	e.Salary = decimal.Zero
	assert.ErrorIs(t, validation.ValidateEmployee(e), apperrors.ErrValidation)

	e = validEmployee()
	e.HireDate = time.Time{}
	assert.ErrorIs(t, validation.ValidateEmployee(e), apperrors.ErrValidation)
}

func validProject() domain.Project {
	return domain.Project{
		Name:      "Platform Rewrite",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		Budget:    decimal.NewFromInt(250000),
		Status:    "Active",
	}
}

func TestValidateProject(t *testing.T) {
	assert.NoError(t, validation.ValidateProject(validProject()))

	p := validProject()
	p.EndDate = p.StartDate.AddDate(0, 0, -1)
	assert.ErrorIs(t, validation.ValidateProject(p), apperrors.ErrValidation)

	// A one-day project is legal.
	p = validProject()
	p.EndDate = p.StartDate
	assert.NoError(t, validation.ValidateProject(p))

	p = validProject()
	p.Budget = decimal.Zero
	assert.ErrorIs(t, validation.ValidateProject(p), apperrors.ErrValidation)
}

func TestValidateClient(t *testing.T) {
	c := domain.Client{Name: "Acme Corp", Industry: "Manufacturing", ContactEmail: "ops@acme.example"}
	assert.NoError(t, validation.ValidateClient(c))

	c.ContactEmail = "missing-at-sign"
	assert.ErrorIs(t, validation.ValidateClient(c), apperrors.ErrValidation)

	c.ContactEmail = ""
	assert.ErrorIs(t, validation.ValidateClient(c), apperrors.ErrValidation)
}

func TestValidateAllocation(t *testing.T) {
	assert.NoError(t, validation.ValidateAllocation(1))
	assert.NoError(t, validation.ValidateAllocation(100))
	assert.ErrorIs(t, validation.ValidateAllocation(0), apperrors.ErrValidation)
	assert.ErrorIs(t, validation.ValidateAllocation(101), apperrors.ErrValidation)
}
