package usecase

import (
	"fmt"
	"math"

	"realty-platform/internal/dto/request"
	"realty-platform/internal/dto/response"
	"realty-platform/pkg/utils"

	"go.uber.org/zap"
)

const (
	creditRetirementAge  = 65
	creditDefaultTerm    = 30
	creditPaymentPortion = 0.25
)

// rateTiers maps monthly salary bands to the INFONAVIT nominal annual rate.
// Lower salaries pay the subsidized floor, higher salaries the full rate.
var rateTiers = []struct {
	maxSalary float64
	rate      float64
}{
	{8000, 0.0191},
	{12000, 0.0350},
	{18000, 0.0550},
	{25000, 0.0750},
	{35000, 0.0900},
	{math.MaxFloat64, 0.1045},
}

type CreditService interface {
	Simulate(req *request.CreditSimulationRequest) (*response.CreditSimulationResponse, error)
}

type creditService struct {
	log *zap.Logger
}

func NewCreditService(log *zap.Logger) CreditService {
	return &creditService{
		log: log,
	}
}

// Simulate is a pure computation; nothing is persisted. The same input
// always produces the same output.
func (s *creditService) Simulate(req *request.CreditSimulationRequest) (*response.CreditSimulationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Credit simulation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	annualRate := annualRateFor(req.MonthlySalary)
	termYears := suggestedTerm(req.Age)

	// Payment capacity is the salary share INFONAVIT withholds, nudged up
	// for long contribution histories.
	capacity := req.MonthlySalary * creditPaymentPortion
	if req.ContributionYears >= 10 {
		capacity *= 1.10
	} else if req.ContributionYears >= 5 {
		capacity *= 1.05
	}

	monthlyRate := annualRate / 12
	months := float64(termYears * 12)

	// Present value of the capacity annuity over the term.
	maxCredit := capacity * (1 - math.Pow(1+monthlyRate, -months)) / monthlyRate

	resp := &response.CreditSimulationResponse{
		MaxCredit:          round2(maxCredit),
		SubaccountBalance:  round2(req.SubaccountBalance),
		TotalPurchasePower: round2(maxCredit + req.SubaccountBalance),
		TermYears:          termYears,
		AnnualRate:         annualRate,
		MonthlyPayment:     round2(capacity),
	}

	s.log.Info("Credit simulated",
		zap.Float64("monthly_salary", req.MonthlySalary),
		zap.Int("age", req.Age),
		zap.Int("term_years", termYears),
		zap.Float64("annual_rate", annualRate))

	return resp, nil
}

func annualRateFor(monthlySalary float64) float64 {
	for _, tier := range rateTiers {
		if monthlySalary <= tier.maxSalary {
			return tier.rate
		}
	}
	return rateTiers[len(rateTiers)-1].rate
}

// suggestedTerm caps the term so the loan ends by retirement age. Age is
// validated to be under retirement, so the result is always at least a year.
func suggestedTerm(age int) int {
	term := creditDefaultTerm
	if age+term > creditRetirementAge {
		term = creditRetirementAge - age
	}
	return term
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
