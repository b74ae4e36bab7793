package trips

import (
	"context"
	"time"

	"travelhub/apperrors"
	"travelhub/middleware"
	"travelhub/models"
	"travelhub/mq"
	"travelhub/utils"
)

// Service owns trip lifecycle rules; handlers stay thin.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, ownerID string, req CreateTripRequest) (models.Trip, error) {
	if err := req.validate(); err != nil {
		return models.Trip{}, err
	}

	travelMode := req.TravelMode
	if travelMode == "" {
		travelMode = "car"
	}

	now := time.Now().UTC()
	trip := models.Trip{
		TripID:            utils.GetUUID(),
		UserID:            ownerID,
		Name:              req.Name,
		StartLocation:     req.StartLocation,
		Destination:       req.Destination,
		Stops:             req.Stops,
		TravelMode:        travelMode,
		EstimatedTime:     req.EstimatedTime,
		EstimatedDistance: req.EstimatedDistance,
		IsPlanned:         false,
		MapLocations:      req.MapLocations,
		Status:            "draft",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if trip.Stops == nil {
		trip.Stops = []models.Stop{}
	}
	if trip.MapLocations == nil {
		trip.MapLocations = []models.MapLocation{}
	}

	if err := s.store.Create(ctx, trip); err != nil {
		return models.Trip{}, err
	}
	mq.Emit(ctx, mq.Event{EntityType: "trip", EntityID: trip.TripID, Method: "POST", UserID: ownerID})
	return trip, nil
}

// List returns the owner's trips, newest first. An out-of-enum status
// filter is dropped rather than rejected, matching the original
// product behaviour.
func (s *Service) List(ctx context.Context, ownerID string, filter ListFilter) ([]models.Trip, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Status != "" && !models.TripStatuses[filter.Status] {
		filter.Status = ""
	}
	return s.store.List(ctx, ownerID, filter)
}

// Get distinguishes absent (NotFound) from foreign (Forbidden); the
// store lookup is never scoped by owner.
func (s *Service) Get(ctx context.Context, ownerID, tripID string) (models.Trip, error) {
	trip, err := s.store.Get(ctx, tripID)
	if err != nil {
		return models.Trip{}, err
	}
	if !middleware.Owns(ownerID, trip.UserID) {
		return models.Trip{}, apperrors.ErrForbidden
	}
	return trip, nil
}

func (s *Service) Update(ctx context.Context, ownerID, tripID string, req UpdateTripRequest) (models.Trip, error) {
	if err := req.validate(); err != nil {
		return models.Trip{}, err
	}

	trip, err := s.Get(ctx, ownerID, tripID)
	if err != nil {
		return models.Trip{}, err
	}

	if req.Name != nil {
		trip.Name = *req.Name
	}
	if req.StartLocation != nil {
		trip.StartLocation = *req.StartLocation
	}
	if req.Destination != nil {
		trip.Destination = *req.Destination
	}
	if req.Stops != nil {
		trip.Stops = *req.Stops
	}
	if req.TravelMode != nil {
		trip.TravelMode = *req.TravelMode
	}
	if req.EstimatedTime != nil {
		trip.EstimatedTime = *req.EstimatedTime
	}
	if req.EstimatedDistance != nil {
		trip.EstimatedDistance = *req.EstimatedDistance
	}
	if req.IsPlanned != nil {
		trip.IsPlanned = *req.IsPlanned
	}
	if req.MapLocations != nil {
		trip.MapLocations = *req.MapLocations
	}
	if req.Status != nil {
		trip.Status = *req.Status
	}
	trip.UpdatedAt = time.Now().UTC()

	if err := s.store.Replace(ctx, trip); err != nil {
		return models.Trip{}, err
	}
	return trip, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, tripID string) error {
	if _, err := s.Get(ctx, ownerID, tripID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, tripID); err != nil {
		return err
	}
	mq.Emit(ctx, mq.Event{EntityType: "trip", EntityID: tripID, Method: "DELETE", UserID: ownerID})
	return nil
}

// Duplicate clones the route data into a fresh draft.
func (s *Service) Duplicate(ctx context.Context, ownerID, tripID string) (models.Trip, error) {
	source, err := s.Get(ctx, ownerID, tripID)
	if err != nil {
		return models.Trip{}, err
	}

	now := time.Now().UTC()
	copyTrip := source
	copyTrip.TripID = utils.GetUUID()
	copyTrip.Name = source.Name + " (Copy)"
	copyTrip.IsPlanned = false
	copyTrip.Status = "draft"
	copyTrip.CreatedAt = now
	copyTrip.UpdatedAt = now
	copyTrip.Stops = append([]models.Stop{}, source.Stops...)
	copyTrip.MapLocations = append([]models.MapLocation{}, source.MapLocations...)

	if err := s.store.Create(ctx, copyTrip); err != nil {
		return models.Trip{}, err
	}
	return copyTrip, nil
}

func (s *Service) SetStatus(ctx context.Context, ownerID, tripID, status string) (models.Trip, error) {
	if !models.TripStatuses[status] {
		ve := apperrors.NewValidationError()
		ve.Add("status", "must be one of: draft, planned, completed, cancelled")
		return models.Trip{}, ve
	}

	trip, err := s.Get(ctx, ownerID, tripID)
	if err != nil {
		return models.Trip{}, err
	}

	trip.Status = status
	trip.UpdatedAt = time.Now().UTC()
	if err := s.store.Replace(ctx, trip); err != nil {
		return models.Trip{}, err
	}
	return trip, nil
}
