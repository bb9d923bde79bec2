package response

type CreditSimulationResponse struct {
	MaxCredit          float64 `json:"max_credit"`
	SubaccountBalance  float64 `json:"subaccount_balance"`
	TotalPurchasePower float64 `json:"total_purchase_power"`
	TermYears          int     `json:"term_years"`
	AnnualRate         float64 `json:"annual_rate"`
	MonthlyPayment     float64 `json:"monthly_payment"`
}
