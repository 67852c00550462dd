package output

// DefaultAssumptions lists the salary-structure assumptions rendered in
// detailed outputs.
var DefaultAssumptions = []string{
	"Basic pay: 50% of gross annual salary",
	"HRA received: 50% of basic in metro cities, 40% elsewhere",
	"Provident fund: 12% of basic from employee and employer when PF is part of CTC",
	"Section 80C (old regime): employee PF capped at Rs. 150,000",
	"Section 80D (old regime): flat Rs. 50,000 regardless of premium paid",
	"Standard deduction: Rs. 50,000 (old) / Rs. 75,000 (new)",
	"FY 2025-26 slabs and surcharge bands; marginal relief not modeled",
}
