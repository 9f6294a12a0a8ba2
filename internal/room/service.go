package room

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name     string
	Type     Type
	Capacity int
	Features []Feature
	Location string
}

type UpdateRequest struct {
	Name     *string
	Type     *Type
	Capacity *int
	Features *[]Feature
	Location *string
}

// Service defines the resource registry operations.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	ListActive(ctx context.Context) ([]*Room, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Room, error)
	Deactivate(ctx context.Context, id string) (*Room, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(req.Location) == "" {
		return nil, ErrEmptyLocation
	}
	if req.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	if req.Type == "" {
		req.Type = TypeClassroom
	}
	if !validType(req.Type) {
		return nil, ErrInvalidType
	}
	for _, f := range req.Features {
		if !validFeature(f) {
			return nil, ErrInvalidFeature
		}
	}

	rm := &Room{
		Name:     strings.TrimSpace(req.Name),
		Type:     req.Type,
		Capacity: req.Capacity,
		Features: req.Features,
		Location: strings.TrimSpace(req.Location),
		IsActive: true,
	}

	// Duplicate names are caught by the unique index and surfaced as
	// ErrNameTaken by the repository.
	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListActive(ctx context.Context) ([]*Room, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		rm.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		if !validType(*req.Type) {
			return nil, ErrInvalidType
		}
		rm.Type = *req.Type
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, ErrInvalidCapacity
		}
		rm.Capacity = *req.Capacity
	}
	if req.Features != nil {
		for _, f := range *req.Features {
			if !validFeature(f) {
				return nil, ErrInvalidFeature
			}
		}
		rm.Features = *req.Features
	}
	if req.Location != nil {
		if strings.TrimSpace(*req.Location) == "" {
			return nil, ErrEmptyLocation
		}
		rm.Location = strings.TrimSpace(*req.Location)
	}

	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) Deactivate(ctx context.Context, id string) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Deactivation only blocks future bookings; existing bookings keep
	// their history and are never touched here.
	rm.IsActive = false

	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func validType(t Type) bool {
	for _, v := range ValidTypes {
		if t == v {
			return true
		}
	}
	return false
}

func validFeature(f Feature) bool {
	for _, v := range ValidFeatures {
		if f == v {
			return true
		}
	}
	return false
}
