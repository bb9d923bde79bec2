package request

type CreditSimulationRequest struct {
	MonthlySalary     float64 `json:"monthly_salary" validate:"required,gt=0"`
	Age               int     `json:"age" validate:"required,gte=18,lt=65"`
	ContributionYears int     `json:"contribution_years" validate:"omitempty,min=0,max=50"`
	SubaccountBalance float64 `json:"subaccount_balance" validate:"omitempty,gte=0"`
}
