package admin

import (
	"context"
	"math"
	"sort"
	"strconv"
	"time"

	"kindkart/internal/domain"
	"kindkart/internal/repository"
)

const (
	// a pending donation older than this is considered abandoned
	abandonedAfter = 24 * time.Hour

	// estimated weight of a rescued meal, used for the waste-prevented figure
	kgPerMeal = 0.35

	suspiciousQuantity = 500

	monthlyWindow = 30 * 24 * time.Hour
)

type Service struct {
	donations DonationReader
	users     UserReader
}

func NewService(donations DonationReader, users UserReader) *Service {
	return &Service{donations: donations, users: users}
}

func (s *Service) ImpactReport(ctx context.Context) (*ImpactReport, error) {
	donations, err := s.donations.List(ctx, repository.DonationFilter{})
	if err != nil {
		return nil, err
	}
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return buildImpactReport(donations, users, time.Now()), nil
}

func (s *Service) FraudReport(ctx context.Context) (*FraudReport, error) {
	donations, err := s.donations.List(ctx, repository.DonationFilter{})
	if err != nil {
		return nil, err
	}
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return buildFraudReport(donations, users, time.Now()), nil
}

func buildImpactReport(donations []domain.Donation, users []domain.User, now time.Time) *ImpactReport {
	r := &ImpactReport{TotalDonations: len(donations)}

	monthStart := now.Add(-monthlyWindow)

	for _, d := range donations {
		meals := parseLeadingInt(d.Quantity)
		r.TotalMeals += meals

		switch d.Status {
		case domain.DonationCollected:
			r.CollectedDonations++
			r.CollectedMeals += meals
		case domain.DonationPending:
			r.PendingDonations++
		}

		if d.CreatedAt.After(monthStart) {
			r.MonthlyDonations++
			r.MonthlyMeals += meals
			if d.Status == domain.DonationCollected {
				r.MonthlyCollected++
			}
		}
	}

	if r.TotalDonations > 0 {
		r.CollectionRate = int(math.Round(float64(r.CollectedDonations) / float64(r.TotalDonations) * 100))
		r.AvgMealsPerDonation = int(math.Round(float64(r.TotalMeals) / float64(r.TotalDonations)))
	}
	r.FoodWastePreventedKg = int(math.Round(float64(r.CollectedMeals) * kgPerMeal))

	for _, u := range users {
		switch u.Role {
		case domain.RoleNGO:
			r.TotalNGOs++
		case domain.RoleDonor:
			r.TotalDonors++
		}
	}

	return r
}

func buildFraudReport(donations []domain.Donation, users []domain.User, now time.Time) *FraudReport {
	type donorStats struct {
		total     int
		abandoned int
	}
	byDonor := map[string]*donorStats{}

	report := &FraudReport{
		TotalUsers:          len(users),
		RiskUsers:           []RiskUser{},
		SuspiciousDonations: []SuspiciousDonation{},
	}

	for _, d := range donations {
		st := byDonor[d.DonorID]
		if st == nil {
			st = &donorStats{}
			byDonor[d.DonorID] = st
		}
		st.total++

		age := now.Sub(d.CreatedAt)
		abandoned := d.Status == domain.DonationPending && age > abandonedAfter
		if abandoned {
			st.abandoned++
		}

		if abandoned || (parseLeadingInt(d.Quantity) > suspiciousQuantity && d.Location == "") {
			report.SuspiciousDonations = append(report.SuspiciousDonations, SuspiciousDonation{
				Donation:  d,
				Abandoned: abandoned,
				HoursOld:  int(math.Round(age.Hours())),
			})
		}
	}

	usersByID := map[string]domain.User{}
	for _, u := range users {
		usersByID[u.ID] = u
	}

	for donorID, st := range byDonor {
		score := 0
		var reasons []string

		if st.abandoned > 2 {
			score += 40
			reasons = append(reasons, strconv.Itoa(st.abandoned)+" abandoned donations")
		}
		if st.total > 10 && float64(st.abandoned)/float64(st.total) > 0.3 {
			score += 30
			reasons = append(reasons, "High abandonment rate (>30%)")
		}

		if score < 40 {
			continue
		}

		ru := RiskUser{
			DonorID:        donorID,
			TotalDonations: st.total,
			AbandonedCount: st.abandoned,
			RiskScore:      score,
			RiskLevel:      riskLevel(score),
			Reasons:        reasons,
		}
		if u, ok := usersByID[donorID]; ok {
			ru.Name = u.Name
			ru.Email = u.Email
		}
		report.RiskUsers = append(report.RiskUsers, ru)
	}

	sort.Slice(report.RiskUsers, func(i, j int) bool {
		return report.RiskUsers[i].RiskScore > report.RiskUsers[j].RiskScore
	})

	for _, ru := range report.RiskUsers {
		switch ru.RiskLevel {
		case RiskHigh:
			report.HighRiskUsers++
		case RiskMedium:
			report.MediumRiskUsers++
		}
	}

	return report
}

func riskLevel(score int) RiskLevel {
	switch {
	case score >= 70:
		return RiskHigh
	case score >= 40:
		return RiskMedium
	}
	return RiskLow
}

// parseLeadingInt reads the leading digits of a free-text quantity
// ("20 portions" -> 20), returning 0 when the text has no numeric prefix.
func parseLeadingInt(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0
	}
	return n
}
