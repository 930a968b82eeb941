// Package costing holds the staffing-cost arithmetic shared by the staffing
// service. All monetary math runs on decimal values; intermediate results keep
// full division precision and only the final project total is rounded.
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/wfms/workforce_mgmt_app/internal/core/domain"
)

var twelveHundred = decimal.NewFromInt(1200)

// SumAllocationsByEmployee groups assignment rows by employee, summing the
// allocation percent per employee. An employee appearing in several rows for
// the same project is treated as one combined allocation.
func SumAllocationsByEmployee(assignments []domain.Assignment) map[int64]int {
	allocations := make(map[int64]int, len(assignments))
	for _, a := range assignments {
		allocations[a.EmployeeID] += a.AllocationPercent
	}
	return allocations
}

// EmployeeProjectCost computes the staffing cost one employee contributes to
// a project: annual salary x duration months x allocation percent / 1200,
// in a single division so no per-row rounding error accumulates.
func EmployeeProjectCost(annualSalary decimal.Decimal, durationMonths int64, allocationPercent int) decimal.Decimal {
	return annualSalary.
		Mul(decimal.NewFromInt(durationMonths)).
		Mul(decimal.NewFromInt(int64(allocationPercent))).
		Div(twelveHundred)
}
