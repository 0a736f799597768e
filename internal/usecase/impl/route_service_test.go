package impl

import (
	"context"
	"testing"
	"time"

	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/matching"
	"ecodeli/internal/domain/repository"
	"ecodeli/internal/domain/service"
	mockRepo "ecodeli/internal/mocks/repository"
	mockSvc "ecodeli/internal/mocks/service"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routeFixture struct {
	service          *routeService
	delivererRepo    *mockRepo.MockDelivererRepository
	applicationRepo  *mockRepo.MockApplicationRepository
	announcementRepo *mockRepo.MockAnnouncementRepository
	routeRepo        *mockRepo.MockRouteRepository
	publisher        *mockSvc.MockEventPublisher
}

func createTestRouteService(t *testing.T) *routeFixture {
	t.Helper()

	fx := &routeFixture{
		delivererRepo:    mockRepo.NewMockDelivererRepository(t),
		applicationRepo:  mockRepo.NewMockApplicationRepository(t),
		announcementRepo: mockRepo.NewMockAnnouncementRepository(t),
		routeRepo:        mockRepo.NewMockRouteRepository(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}

	svc := NewRouteService(fx.delivererRepo, fx.applicationRepo, fx.announcementRepo, fx.routeRepo, fx.publisher, testConfig(), discardLogger())
	fx.service = svc.(*routeService)
	fx.service.now = func() time.Time { return fixedNow }

	return fx
}

func matchedAnnouncement(km float64, pickupAt time.Time) *entity.Announcement {
	a := publishedAnnouncement(paris, km, 20)
	a.Status = entity.AnnouncementStatusMatched
	a.PickupWindow = entity.TimeWindow{Start: pickupAt}

	return a
}

func acceptedOn(delivererID uuid.UUID, announcements ...*entity.Announcement) []*entity.Application {
	apps := make([]*entity.Application, 0, len(announcements))
	for _, a := range announcements {
		apps = append(apps, &entity.Application{
			ID:             uuid.New(),
			AnnouncementID: a.ID,
			DelivererID:    delivererID,
			Status:         entity.ApplicationStatusAccepted,
		})
	}

	return apps
}

func TestRouteService_PlanRoute_Success(t *testing.T) {
	fx := createTestRouteService(t)
	ctx := context.Background()

	deliverer := approvedDeliverer(paris)
	today := matchedAnnouncement(6, fixedNow.Add(2*time.Hour))
	today.PickupWindow.End = fixedNow.Add(4 * time.Hour)
	today.DeliveryWindow = entity.TimeWindow{End: fixedNow.Add(8 * time.Hour)}
	flexible := matchedAnnouncement(1, time.Time{})
	tomorrow := matchedAnnouncement(2, fixedNow.Add(24*time.Hour))
	completed := matchedAnnouncement(4, fixedNow)
	completed.Status = entity.AnnouncementStatusCompleted

	all := []*entity.Announcement{today, flexible, tomorrow, completed}
	ids := []uuid.UUID{today.ID, flexible.ID, tomorrow.ID, completed.ID}

	fx.delivererRepo.EXPECT().FindByID(ctx, deliverer.ID).Return(deliverer, nil)
	fx.applicationRepo.EXPECT().FindAcceptedByDeliverer(ctx, deliverer.ID).Return(acceptedOn(deliverer.ID, all...), nil)
	fx.announcementRepo.EXPECT().FindByIDs(ctx, ids).Return(all, nil)
	fx.routeRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(r *entity.Route) bool {
			return r.DelivererID == deliverer.ID && r.PlanningDate.Equal(entity.PlanningDay(fixedNow)) && len(r.Stops) == 4
		})).
		RunAndReturn(func(_ context.Context, r *entity.Route) error {
			r.ID = uuid.New()

			return nil
		})
	fx.publisher.EXPECT().PublishMatchEvent(ctx, eventOfType(service.MatchEventRoutePlanned)).Return(nil)

	planned, err := fx.service.PlanRoute(ctx, deliverer.ID, &usecase.PlanRouteInput{DepartAt: fixedNow})
	require.NoError(t, err)

	route := planned.Route
	assert.Empty(t, planned.Violations)
	assert.Equal(t, *deliverer.Location, route.Start)
	require.Len(t, route.Stops, 4)

	// The flexible announcement is closest, so its pickup comes first.
	assert.Equal(t, flexible.ID, route.Stops[0].AnnouncementID)
	assert.Equal(t, entity.StopKindPickup, route.Stops[0].Kind)

	seenPickup := map[uuid.UUID]bool{}
	for _, s := range route.Stops {
		if s.Kind == entity.StopKindPickup {
			seenPickup[s.AnnouncementID] = true
			if s.AnnouncementID == today.ID {
				require.NotNil(t, s.Deadline)
				assert.Equal(t, today.PickupWindow.End, *s.Deadline)
			}
			continue
		}
		assert.True(t, seenPickup[s.AnnouncementID], "drop-off before its pickup")
		if s.AnnouncementID == today.ID {
			require.NotNil(t, s.Deadline)
			assert.Equal(t, today.DeliveryWindow.End, *s.Deadline)
		}
	}
	assert.Greater(t, route.TotalDistanceKm, 0.0)
}

func TestRouteService_PlanRoute_NothingToDo(t *testing.T) {
	fx := createTestRouteService(t)
	ctx := context.Background()

	deliverer := approvedDeliverer(paris)
	start := entity.NewLocation(48.86, 2.34)
	date := time.Date(2026, 3, 5, 17, 30, 0, 0, time.UTC)

	fx.delivererRepo.EXPECT().FindByID(ctx, deliverer.ID).Return(deliverer, nil)
	fx.applicationRepo.EXPECT().FindAcceptedByDeliverer(ctx, deliverer.ID).Return(nil, nil)
	fx.routeRepo.EXPECT().Save(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(nil)

	planned, err := fx.service.PlanRoute(ctx, deliverer.ID, &usecase.PlanRouteInput{Date: date, Start: &start})
	require.NoError(t, err)

	assert.Empty(t, planned.Route.Stops)
	assert.Equal(t, start, planned.Route.Start)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), planned.Route.PlanningDate)
}

func TestRouteService_PlanRoute_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown position", func(t *testing.T) {
		fx := createTestRouteService(t)
		d := approvedDeliverer(paris)
		d.Location = nil
		fx.delivererRepo.EXPECT().FindByID(ctx, d.ID).Return(d, nil)

		_, err := fx.service.PlanRoute(ctx, d.ID, &usecase.PlanRouteInput{})
		assert.ErrorIs(t, err, domainerrors.ErrDelivererLocationUnknown)
	})

	t.Run("unknown deliverer", func(t *testing.T) {
		fx := createTestRouteService(t)
		id := uuid.New()
		fx.delivererRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrDelivererNotFound)

		_, err := fx.service.PlanRoute(ctx, id, &usecase.PlanRouteInput{})
		assert.ErrorIs(t, err, domainerrors.ErrDelivererNotFound)
	})

	t.Run("malformed start", func(t *testing.T) {
		fx := createTestRouteService(t)
		d := approvedDeliverer(paris)
		bad := entity.NewLocation(100, 0)
		fx.delivererRepo.EXPECT().FindByID(ctx, d.ID).Return(d, nil)
		fx.applicationRepo.EXPECT().FindAcceptedByDeliverer(ctx, d.ID).Return(nil, nil)

		_, err := fx.service.PlanRoute(ctx, d.ID, &usecase.PlanRouteInput{Start: &bad})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})
}

func TestRouteService_GetRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		fx := createTestRouteService(t)
		id := uuid.New()
		want := &entity.Route{ID: uuid.New(), DelivererID: id}
		fx.routeRepo.EXPECT().FindByDelivererAndDate(ctx, id, entity.PlanningDay(fixedNow)).Return(want, nil)

		got, err := fx.service.GetRoute(ctx, id, time.Time{})
		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestRouteService(t)
		id := uuid.New()
		day := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
		fx.routeRepo.EXPECT().FindByDelivererAndDate(ctx, id, entity.PlanningDay(day)).Return(nil, repository.ErrRouteNotFound)

		_, err := fx.service.GetRoute(ctx, id, day)
		assert.ErrorIs(t, err, domainerrors.ErrRouteNotFound)
	})
}

func TestToAppError(t *testing.T) {
	_, err := matching.ComposeRoute(nil, entity.NewLocation(95, 0), matching.RouteOptions{})
	require.Error(t, err)

	mapped := toAppError(err, "compose")
	require.ErrorIs(t, mapped, domainerrors.ErrInvalidInput)
	assert.Contains(t, mapped.Error(), "95")

	assert.Same(t, domainerrors.ErrForbidden, toAppError(domainerrors.ErrForbidden, "ignored"))
}
