package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/attendance"
	"github.com/fieldhr/hrms-backend-go/internal/domain/geofence"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/clock"
)

type ServiceImpl struct {
	attendance.Repository
	geofences geofence.Provider
	clock     clock.Clock
}

func NewService(repo attendance.Repository, geofences geofence.Provider, clk clock.Clock) attendance.Service {
	return &ServiceImpl{
		Repository: repo,
		geofences:  geofences,
		clock:      clk,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// evaluation is the outcome of running a coordinate pair against the active
// geofence.
type evaluation struct {
	outOfOffice    bool
	reasonRequired bool
	distanceMeters int
}

// evaluateGeofence computes the distance from the given point to the office
// center and whether it falls outside the allowed radius. The rounded
// distance is what gets persisted; it is a snapshot taken at the moment of
// the action.
func (s *ServiceImpl) evaluateGeofence(ctx context.Context, lat, lon float64) (evaluation, error) {
	cfg, err := s.geofences.Active(ctx)
	if err != nil {
		return evaluation{}, fmt.Errorf("failed to get active geofence: %w", err)
	}

	ev := evaluation{
		reasonRequired: cfg.ReasonRequired,
		distanceMeters: int(math.Round(cfg.DistanceFrom(lat, lon))),
	}
	if cfg.Enabled {
		ev.outOfOffice = !cfg.Contains(lat, lon)
	}
	return ev, nil
}

// CheckIn implements attendance.Service.
func (s *ServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	now := s.clock.Now()
	today := now.Truncate(24 * time.Hour)

	existing, err := s.Repository.FindTodayRecord(ctx, req.UserID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}
	if existing != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
	}

	record := attendance.Record{
		UserID:       req.UserID,
		Date:         today,
		CheckIn:      &now,
		Status:       attendance.StatusPresent,
		LocationName: req.LocationName,
		Reason:       req.Reason,
	}

	// Geofencing is opt-in per request: a check-in without coordinates is
	// accepted unconditionally as present.
	if req.HasCoordinates() {
		ev, err := s.evaluateGeofence(ctx, *req.Latitude, *req.Longitude)
		if err != nil {
			return attendance.RecordResponse{}, err
		}

		if ev.outOfOffice && ev.reasonRequired && req.Reason == nil {
			return attendance.RecordResponse{}, &attendance.ReasonRequiredError{DistanceMeters: ev.distanceMeters}
		}

		record.Latitude = req.Latitude
		record.Longitude = req.Longitude
		record.IsOutOfOffice = ev.outOfOffice
		record.DistanceFromOffice = &ev.distanceMeters
		if ev.outOfOffice {
			record.Status = attendance.StatusOutOfOffice
		}
	}

	created, err := s.Repository.Create(ctx, record)
	if err != nil {
		// The unique index on (user_id, date) is the authoritative duplicate
		// signal; the pre-check above only narrows the race window.
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapRecordToResponse(created), nil
}

// CheckOut implements attendance.Service.
func (s *ServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	now := s.clock.Now()
	today := now.Truncate(24 * time.Hour)

	record, err := s.Repository.FindTodayRecord(ctx, req.UserID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}
	if record == nil || record.CheckIn == nil {
		return attendance.RecordResponse{}, attendance.ErrNoCheckInFound
	}
	if record.CheckOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	record.CheckOut = &now
	record.CheckOutReason = req.Reason
	if req.LocationName != nil {
		record.LocationName = req.LocationName
	}

	if req.HasCoordinates() {
		ev, err := s.evaluateGeofence(ctx, *req.Latitude, *req.Longitude)
		if err != nil {
			return attendance.RecordResponse{}, err
		}

		if ev.outOfOffice && ev.reasonRequired && req.Reason == nil {
			return attendance.RecordResponse{}, &attendance.ReasonRequiredError{DistanceMeters: ev.distanceMeters}
		}

		record.CheckOutLatitude = req.Latitude
		record.CheckOutLongitude = req.Longitude
		record.IsOutOfOfficeCheckOut = ev.outOfOffice
		record.CheckOutDistanceFromOffice = &ev.distanceMeters
	}

	if err := s.Repository.Update(ctx, *record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapRecordToResponse(*record), nil
}

// GetStatus implements attendance.Service.
func (s *ServiceImpl) GetStatus(ctx context.Context, userID string) (attendance.StatusResponse, error) {
	today := s.clock.Now().Truncate(24 * time.Hour)

	record, err := s.Repository.FindTodayRecord(ctx, userID, today)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}

	if record == nil {
		return attendance.StatusResponse{TodayStatus: attendance.TodayNotCheckedIn}, nil
	}

	resp := attendance.StatusResponse{
		IsCheckedIn:  record.CheckIn != nil && record.CheckOut == nil,
		CheckInTime:  timePtrToString(record.CheckIn),
		CheckOutTime: timePtrToString(record.CheckOut),
	}

	switch {
	case record.CheckOut != nil:
		resp.TodayStatus = attendance.TodayCheckedOut
	case record.CheckIn != nil:
		resp.TodayStatus = record.Status
	default:
		// Record exists without a check-in, e.g. marked absent overnight.
		resp.TodayStatus = record.Status
	}

	return resp, nil
}

// GetMyRecords implements attendance.Service.
func (s *ServiceImpl) GetMyRecords(ctx context.Context, userID string, filter attendance.Filter) (attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	records, total, err := s.Repository.ListForUser(ctx, userID, filter)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return buildListResponse(records, total, filter), nil
}

// List implements attendance.Service.
func (s *ServiceImpl) List(ctx context.Context, filter attendance.Filter) (attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	records, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return buildListResponse(records, total, filter), nil
}

// Update implements attendance.Service.
func (s *ServiceImpl) Update(ctx context.Context, req attendance.UpdateRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	record, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if req.CheckInTime != nil {
		checkIn, err := time.Parse(time.RFC3339, *req.CheckInTime)
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("invalid check_in_time: %w", err)
		}
		record.CheckIn = &checkIn
	}

	if req.CheckOutTime != nil {
		checkOut, err := time.Parse(time.RFC3339, *req.CheckOutTime)
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("invalid check_out_time: %w", err)
		}
		if record.CheckIn == nil {
			return attendance.RecordResponse{}, attendance.ErrNoCheckInFound
		}
		record.CheckOut = &checkOut
	}

	if req.Status != nil {
		record.Status = *req.Status
	}
	if req.Reason != nil {
		record.Reason = req.Reason
	}

	if err := s.Repository.Update(ctx, record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	updated, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get updated attendance record: %w", err)
	}

	return mapRecordToResponse(updated), nil
}

func buildListResponse(records []attendance.Record, total int64, filter attendance.Filter) attendance.ListResponse {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapRecordToResponse(record))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Records:    responses,
	}
}

// mapRecordToResponse converts a Record entity to RecordResponse.
func mapRecordToResponse(record attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:                         record.ID,
		UserID:                     record.UserID,
		UserName:                   record.UserName,
		Date:                       record.Date.Format("2006-01-02"),
		CheckInTime:                timePtrToString(record.CheckIn),
		CheckOutTime:               timePtrToString(record.CheckOut),
		Status:                     record.Status,
		LocationName:               record.LocationName,
		Latitude:                   record.Latitude,
		Longitude:                  record.Longitude,
		Reason:                     record.Reason,
		CheckOutLatitude:           record.CheckOutLatitude,
		CheckOutLongitude:          record.CheckOutLongitude,
		CheckOutReason:             record.CheckOutReason,
		IsOutOfOffice:              record.IsOutOfOffice,
		IsOutOfOfficeCheckOut:      record.IsOutOfOfficeCheckOut,
		DistanceFromOffice:         record.DistanceFromOffice,
		CheckOutDistanceFromOffice: record.CheckOutDistanceFromOffice,
		CreatedAt:                  record.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:                  record.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
