package donation

import (
	"context"
	"errors"
	"log"
	"strings"

	"kindkart/internal/domain"
	"kindkart/internal/repository"

	"gorm.io/gorm"
)

// Mode selects the transition policy. Strict enforces the forward-only
// pending -> accepted -> collected order and the "ngo attached iff not
// pending" invariant; permissive applies any valid status value, matching
// the behavior the SPA was originally written against.
type Mode string

const (
	ModeStrict     Mode = "strict"
	ModePermissive Mode = "permissive"
)

type Service struct {
	donations DonationRepository
	users     UserRepository
	notifs    NotificationSender
	mode      Mode
}

func NewService(donations DonationRepository, users UserRepository, notifs NotificationSender, mode Mode) *Service {
	if mode == "" {
		mode = ModeStrict
	}
	return &Service{
		donations: donations,
		users:     users,
		notifs:    notifs,
		mode:      mode,
	}
}

// Create validates the required fields and inserts a new pending donation.
// No notification fires on creation.
func (s *Service) Create(ctx context.Context, req CreateDonationRequest) (*domain.Donation, error) {
	donorID := strings.TrimSpace(req.DonorID)
	foodName := strings.TrimSpace(req.FoodName)
	quantity := strings.TrimSpace(req.Quantity)
	location := strings.TrimSpace(req.Location)

	if donorID == "" || foodName == "" || quantity == "" || location == "" {
		return nil, ErrValidation
	}

	d := &domain.Donation{
		DonorID:    donorID,
		FoodName:   foodName,
		Quantity:   quantity,
		Location:   location,
		ImageURL:   req.ImageURL,
		ExpiryTime: req.ExpiryTime,
		Status:     domain.DonationPending,
	}

	if err := s.donations.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]DonationView, error) {
	rows, err := s.donations.List(ctx, repository.DonationFilter{
		DonorID: f.DonorID,
		NgoID:   f.NgoID,
		Status:  f.Status,
	})
	if err != nil {
		return nil, err
	}

	// donor/ngo references repeat heavily across a listing; resolve each
	// user once
	cache := map[string]*domain.User{}
	out := make([]DonationView, 0, len(rows))
	for i := range rows {
		d := &rows[i]
		donor := s.resolveUser(ctx, cache, d.DonorID)
		ngo := s.resolveUser(ctx, cache, d.NgoID)
		out = append(out, *newView(d, donor, ngo))
	}
	return out, nil
}

// Get returns a single donation with its donor populated.
func (s *Service) Get(ctx context.Context, id string) (*DonationView, error) {
	d, err := s.donations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	donor := s.resolveUser(ctx, nil, d.DonorID)
	return newView(d, donor, nil), nil
}

// Transition applies a partial {status?, ngoId?} patch to an existing
// donation, persists it as a single update, and emits a donor notification
// when the status field actually changed. A failed emit is logged and does
// not fail the transition.
func (s *Service) Transition(ctx context.Context, id string, req UpdateDonationRequest) (*DonationView, error) {
	existing, err := s.donations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]any{}

	newStatus := existing.Status
	if req.Status != nil && *req.Status != "" {
		st := domain.DonationStatus(*req.Status)
		if !st.Valid() {
			return nil, ErrInvalidStatus
		}
		if s.mode == ModeStrict && st.Rank() <= existing.Status.Rank() {
			return nil, ErrInvalidTransition
		}
		newStatus = st
		updates["status"] = string(st)
	}

	newNgoID := existing.NgoID
	if req.NgoID != nil && *req.NgoID != "" {
		newNgoID = *req.NgoID
		updates["ngo_id"] = newNgoID
	}

	if s.mode == ModeStrict {
		if err := s.checkResultingState(ctx, newStatus, newNgoID, existing.NgoID); err != nil {
			return nil, err
		}
	}

	if len(updates) > 0 {
		if err := s.donations.UpdateFields(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	updated, err := s.donations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Emission is keyed on an observed status change, not on "an update
	// happened": an ngoId-only patch stays silent.
	if updated.Status != existing.Status {
		if donor := s.resolveUser(ctx, nil, updated.DonorID); donor != nil {
			if err := s.notifs.NotifyStatusChanged(ctx, donor.ID, updated.ID, updated.FoodName, updated.Status); err != nil {
				log.Printf("failed to create notification for donation %s: %v", updated.ID, err)
			}
		}
	}

	donor := s.resolveUser(ctx, nil, updated.DonorID)
	ngo := s.resolveUser(ctx, nil, updated.NgoID)
	return newView(updated, donor, ngo), nil
}

// checkResultingState enforces the strict-mode invariant: an NGO is attached
// if and only if the donation has left pending, and the attached user really
// has the ngo role.
func (s *Service) checkResultingState(ctx context.Context, status domain.DonationStatus, ngoID, previousNgoID string) error {
	if status == domain.DonationPending {
		if ngoID != "" {
			return ErrValidation
		}
		return nil
	}

	if ngoID == "" {
		return ErrNGORequired
	}
	if ngoID == previousNgoID {
		// already vetted when it was first attached
		return nil
	}

	u, err := s.users.GetByID(ctx, ngoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrValidation
		}
		return err
	}
	if u.Role != domain.RoleNGO {
		return ErrValidation
	}
	return nil
}

// resolveUser looks up a referenced user, returning nil for blank or dangling
// references so views degrade the same way a mongoose populate would.
func (s *Service) resolveUser(ctx context.Context, cache map[string]*domain.User, id string) *domain.User {
	if id == "" {
		return nil
	}
	if cache != nil {
		if u, ok := cache[id]; ok {
			return u
		}
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		u = nil
	}
	if cache != nil {
		cache[id] = u
	}
	return u
}
