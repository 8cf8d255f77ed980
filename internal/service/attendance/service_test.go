package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/attendance"
	"github.com/fieldhr/hrms-backend-go/internal/domain/geofence"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testOfficeLat = 25.6146835780726
	testOfficeLon = 85.1126174983296

	// ~0.0045 degrees of latitude is ~500m on the test sphere
	farLat = testOfficeLat + 0.0045
)

var testNow = time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

// fakeAttendanceRepo is an in-memory attendance.Repository keyed on
// (userID, date). It enforces the same uniqueness the real store does.
type fakeAttendanceRepo struct {
	records map[string]*attendance.Record
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Record)}
}

func recordKey(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) FindTodayRecord(ctx context.Context, userID string, date time.Time) (*attendance.Record, error) {
	rec, ok := f.records[recordKey(userID, date)]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	key := recordKey(record.UserID, record.Date)
	if _, ok := f.records[key]; ok {
		return attendance.Record{}, attendance.ErrAlreadyCheckedIn
	}
	record.ID = uuid.NewString()
	record.CreatedAt = record.Date
	record.UpdatedAt = record.Date
	f.records[key] = &record
	return record, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, record attendance.Record) error {
	for key, existing := range f.records {
		if existing.ID == record.ID {
			f.records[key] = &record
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return *rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		out = append(out, *rec)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) ListForUser(ctx context.Context, userID string, filter attendance.Filter) ([]attendance.Record, int64, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) MarkAbsentees(ctx context.Context, date time.Time) (int64, error) {
	return 0, nil
}

func newTestService(repo attendance.Repository) attendance.Service {
	geofences := geofence.NewStaticProvider(geofence.Config{
		Name:            "Head Office",
		CenterLatitude:  testOfficeLat,
		CenterLongitude: testOfficeLon,
		RadiusMeters:    50,
		Enabled:         true,
		ReasonRequired:  true,
	})
	return NewService(repo, geofences, clock.Fixed{T: testNow})
}

func ptr[T any](v T) *T { return &v }

func TestCheckInInsideGeofence(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		UserID:    "user-1",
		Latitude:  ptr(testOfficeLat),
		Longitude: ptr(testOfficeLon),
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.False(t, resp.IsOutOfOffice)
	require.NotNil(t, resp.DistanceFromOffice)
	assert.Equal(t, 0, *resp.DistanceFromOffice)
	require.NotNil(t, resp.CheckInTime)
	assert.Equal(t, "2025-06-10 09:30:00", *resp.CheckInTime)
	assert.Equal(t, "2025-06-10", resp.Date)
}

func TestCheckInWithoutCoordinatesSkipsGeofence(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{UserID: "user-1"})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.False(t, resp.IsOutOfOffice)
	assert.Nil(t, resp.DistanceFromOffice)
	assert.Nil(t, resp.Latitude)
}

func TestCheckInOutsideGeofenceWithoutReason(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		UserID:    "user-1",
		Latitude:  ptr(farLat),
		Longitude: ptr(testOfficeLon),
	})

	var reasonErr *attendance.ReasonRequiredError
	require.ErrorAs(t, err, &reasonErr)
	assert.InDelta(t, 500, reasonErr.DistanceMeters, 5)
	assert.Contains(t, reasonErr.Error(), "outside the office geofence")
}

func TestCheckInOutsideGeofenceWithReason(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		UserID:    "user-1",
		Latitude:  ptr(farLat),
		Longitude: ptr(testOfficeLon),
		Reason:    ptr("client site visit"),
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusOutOfOffice, resp.Status)
	assert.True(t, resp.IsOutOfOffice)
	require.NotNil(t, resp.DistanceFromOffice)
	assert.Greater(t, *resp.DistanceFromOffice, 50)
	require.NotNil(t, resp.Reason)
	assert.Equal(t, "client site visit", *resp.Reason)
}

func TestCheckInWhitespaceReasonRejectedOutsideGeofence(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())

	// A whitespace-only reason collapses to absent during validation.
	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		UserID:    "user-1",
		Latitude:  ptr(farLat),
		Longitude: ptr(testOfficeLon),
		Reason:    ptr("   "),
	})

	var reasonErr *attendance.ReasonRequiredError
	require.ErrorAs(t, err, &reasonErr)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{UserID: "user-1"})
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), attendance.CheckInRequest{UserID: "user-1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInDuplicateSignaledByStore(t *testing.T) {
	// Even when the pre-check misses (concurrent check-in), the store's
	// uniqueness violation surfaces as ErrAlreadyCheckedIn.
	repo := newFakeAttendanceRepo()
	svc := newTestService(&racingRepo{fakeAttendanceRepo: repo})

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{UserID: "user-1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

// racingRepo simulates a concurrent writer: the read sees no record but the
// insert collides.
type racingRepo struct {
	*fakeAttendanceRepo
}

func (r *racingRepo) FindTodayRecord(ctx context.Context, userID string, date time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (r *racingRepo) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrAlreadyCheckedIn
}

func TestCheckInValidation(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())

	cases := []struct {
		name string
		req  attendance.CheckInRequest
	}{
		{"missing user", attendance.CheckInRequest{}},
		{"latitude without longitude", attendance.CheckInRequest{UserID: "u", Latitude: ptr(1.0)}},
		{"latitude out of range", attendance.CheckInRequest{UserID: "u", Latitude: ptr(91.0), Longitude: ptr(0.0)}},
		{"longitude out of range", attendance.CheckInRequest{UserID: "u", Latitude: ptr(0.0), Longitude: ptr(181.0)}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.CheckIn(context.Background(), c.req)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
		})
	}
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())

	_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{UserID: "user-1"})
	assert.ErrorIs(t, err, attendance.ErrNoCheckInFound)
}

func TestCheckOutTwice(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{UserID: "user-1"})
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), attendance.CheckOutRequest{UserID: "user-1"})
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), attendance.CheckOutRequest{UserID: "user-1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOutOutsideGeofence(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		UserID:    "user-1",
		Latitude:  ptr(testOfficeLat),
		Longitude: ptr(testOfficeLon),
	})
	require.NoError(t, err)

	// Without a reason the out-of-fence checkout is refused.
	_, err = svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		UserID:    "user-1",
		Latitude:  ptr(farLat),
		Longitude: ptr(testOfficeLon),
	})
	var reasonErr *attendance.ReasonRequiredError
	require.ErrorAs(t, err, &reasonErr)

	// With one it succeeds and the checkout snapshot is recorded separately
	// from the check-in snapshot.
	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		UserID:    "user-1",
		Latitude:  ptr(farLat),
		Longitude: ptr(testOfficeLon),
		Reason:    ptr("left early for a site survey"),
	})
	require.NoError(t, err)

	assert.True(t, resp.IsOutOfOfficeCheckOut)
	assert.False(t, resp.IsOutOfOffice)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	require.NotNil(t, resp.CheckOutDistanceFromOffice)
	assert.Greater(t, *resp.CheckOutDistanceFromOffice, 50)
	require.NotNil(t, resp.DistanceFromOffice)
	assert.Equal(t, 0, *resp.DistanceFromOffice)
}

func TestGetStatusProgression(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())
	ctx := context.Background()

	status, err := svc.GetStatus(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, status.IsCheckedIn)
	assert.Equal(t, attendance.TodayNotCheckedIn, status.TodayStatus)
	assert.Nil(t, status.CheckInTime)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "user-1"})
	require.NoError(t, err)

	status, err = svc.GetStatus(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, status.IsCheckedIn)
	assert.Equal(t, attendance.StatusPresent, status.TodayStatus)
	require.NotNil(t, status.CheckInTime)
	assert.Nil(t, status.CheckOutTime)

	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{UserID: "user-1"})
	require.NoError(t, err)

	status, err = svc.GetStatus(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, status.IsCheckedIn)
	assert.Equal(t, attendance.TodayCheckedOut, status.TodayStatus)
	require.NotNil(t, status.CheckOutTime)
}

func TestGetStatusForAbsentRecord(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)

	today := testNow.Truncate(24 * time.Hour)
	_, err := repo.Create(context.Background(), attendance.Record{
		UserID: "user-1",
		Date:   today,
		Status: attendance.StatusAbsent,
	})
	require.NoError(t, err)

	status, err := svc.GetStatus(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, status.IsCheckedIn)
	assert.Equal(t, attendance.StatusAbsent, status.TodayStatus)
}

func TestGetMyRecordsPagination(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "user-1"})
	require.NoError(t, err)

	list, err := svc.GetMyRecords(ctx, "user-1", attendance.Filter{})
	require.NoError(t, err)

	assert.Equal(t, int64(1), list.TotalCount)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 20, list.Limit)
	assert.Equal(t, 1, list.TotalPages)
	require.Len(t, list.Records, 1)
	assert.Equal(t, "user-1", list.Records[0].UserID)
}

func TestUpdateCorrectsStatus(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "user-1"})
	require.NoError(t, err)

	resp, err := svc.Update(ctx, attendance.UpdateRequest{
		ID:     created.ID,
		Status: ptr(attendance.StatusLate),
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.Status)
}

func TestUpdateCheckOutRequiresCheckIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo)

	created, err := repo.Create(context.Background(), attendance.Record{
		UserID: "user-1",
		Date:   testNow.Truncate(24 * time.Hour),
		Status: attendance.StatusAbsent,
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), attendance.UpdateRequest{
		ID:           created.ID,
		CheckOutTime: ptr(testNow.Format(time.RFC3339)),
	})
	assert.ErrorIs(t, err, attendance.ErrNoCheckInFound)
}

func TestUpdateUnknownRecord(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo())

	_, err := svc.Update(context.Background(), attendance.UpdateRequest{ID: uuid.NewString()})
	assert.True(t, errors.Is(err, attendance.ErrRecordNotFound))
}

func TestGeofenceDisabledNeverOutOfOffice(t *testing.T) {
	geofences := geofence.NewStaticProvider(geofence.Config{
		CenterLatitude:  testOfficeLat,
		CenterLongitude: testOfficeLon,
		RadiusMeters:    50,
		Enabled:         false,
	})
	svc := NewService(newFakeAttendanceRepo(), geofences, clock.Fixed{T: testNow})

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		UserID:    "user-1",
		Latitude:  ptr(farLat),
		Longitude: ptr(testOfficeLon),
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.False(t, resp.IsOutOfOffice)
	// The distance snapshot is still captured.
	require.NotNil(t, resp.DistanceFromOffice)
	assert.Greater(t, *resp.DistanceFromOffice, 50)
}

func TestGeofenceReasonNotRequiredAllowsOutOfOffice(t *testing.T) {
	geofences := geofence.NewStaticProvider(geofence.Config{
		CenterLatitude:  testOfficeLat,
		CenterLongitude: testOfficeLon,
		RadiusMeters:    50,
		Enabled:         true,
		ReasonRequired:  false,
	})
	repo := newFakeAttendanceRepo()
	svc := NewService(repo, geofences, clock.Fixed{T: testNow})
	ctx := context.Background()

	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{
		UserID:    "user-1",
		Latitude:  ptr(farLat),
		Longitude: ptr(testOfficeLon),
	})
	require.NoError(t, err)

	// Still flagged out of office, just not refused.
	assert.Equal(t, attendance.StatusOutOfOffice, resp.Status)
	assert.True(t, resp.IsOutOfOffice)
	assert.Nil(t, resp.Reason)
	require.NotNil(t, resp.DistanceFromOffice)
	assert.InDelta(t, 500, *resp.DistanceFromOffice, 5)

	resp, err = svc.CheckOut(ctx, attendance.CheckOutRequest{
		UserID:    "user-1",
		Latitude:  ptr(farLat),
		Longitude: ptr(testOfficeLon),
	})
	require.NoError(t, err)

	assert.True(t, resp.IsOutOfOfficeCheckOut)
	assert.Nil(t, resp.CheckOutReason)
	require.NotNil(t, resp.CheckOutDistanceFromOffice)
	assert.InDelta(t, 500, *resp.CheckOutDistanceFromOffice, 5)
}
