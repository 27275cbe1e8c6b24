package admin

import "kindkart/internal/domain"

// ImpactReport aggregates platform-wide donation outcomes.
type ImpactReport struct {
	TotalDonations       int `json:"totalDonations"`
	CollectedDonations   int `json:"collectedDonations"`
	PendingDonations     int `json:"pendingDonations"`
	CollectionRate       int `json:"collectionRate"`
	TotalMeals           int `json:"totalMeals"`
	CollectedMeals       int `json:"collectedMeals"`
	AvgMealsPerDonation  int `json:"avgMealsPerDonation"`
	FoodWastePreventedKg int `json:"foodWastePreventedKg"`
	TotalNGOs            int `json:"totalNGOs"`
	TotalDonors          int `json:"totalDonors"`

	MonthlyDonations int `json:"monthlyDonations"`
	MonthlyCollected int `json:"monthlyCollected"`
	MonthlyMeals     int `json:"monthlyMeals"`
}

type RiskLevel string

const (
	RiskHigh   RiskLevel = "HIGH"
	RiskMedium RiskLevel = "MEDIUM"
	RiskLow    RiskLevel = "LOW"
)

// RiskUser is a donor whose posting pattern crossed the reporting threshold.
type RiskUser struct {
	DonorID        string    `json:"donorId"`
	Name           string    `json:"name,omitempty"`
	Email          string    `json:"email,omitempty"`
	TotalDonations int       `json:"totalDonations"`
	AbandonedCount int       `json:"abandonedCount"`
	RiskScore      int       `json:"riskScore"`
	RiskLevel      RiskLevel `json:"riskLevel"`
	Reasons        []string  `json:"reasons"`
}

type SuspiciousDonation struct {
	Donation  domain.Donation `json:"donation"`
	Abandoned bool            `json:"abandoned"`
	HoursOld  int             `json:"hoursOld"`
}

type FraudReport struct {
	HighRiskUsers       int                  `json:"highRiskUsers"`
	MediumRiskUsers     int                  `json:"mediumRiskUsers"`
	TotalUsers          int                  `json:"totalUsers"`
	RiskUsers           []RiskUser           `json:"riskUsers"`
	SuspiciousDonations []SuspiciousDonation `json:"suspiciousDonations"`
}
