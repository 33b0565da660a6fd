package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
	"github.com/Ismail-Lafhiel/-evento/internal/service/ports/mocks"
)

func newLocationService(t *testing.T) (*LocationService, *mocks.MockLocationRepo) {
	t.Helper()
	repo := mocks.NewMockLocationRepo(t)
	return NewLocationService(repo, newTestLogger(t)), repo
}

func TestLocationService_Create_Success(t *testing.T) {
	svc, repo := newLocationService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, l *domain.Location) {
			assert.Equal(t, "Rua Augusta 1", l.Address)
			assert.NotEmpty(t, l.ID)
		}).
		Return(nil)

	location, err := svc.Create(context.Background(), domain.CreateLocationInput{
		Address: "  Rua Augusta 1  ",
		City:    "Lisbon",
		Country: "Portugal",
	})

	require.NoError(t, err)
	assert.Equal(t, "Lisbon", location.City)
}

func TestLocationService_Create_MissingFields(t *testing.T) {
	svc, _ := newLocationService(t)

	_, err := svc.Create(context.Background(), domain.CreateLocationInput{City: "Lisbon"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLocationService_Update_BlankFieldRejected(t *testing.T) {
	svc, _ := newLocationService(t)

	blank := "   "
	_, err := svc.Update(context.Background(), testLocationID, domain.UpdateLocationInput{City: &blank})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLocationService_Update_EmptyInputReturnsCurrent(t *testing.T) {
	svc, repo := newLocationService(t)

	repo.EXPECT().GetByID(mock.Anything, testLocationID).
		Return(&domain.Location{ID: testLocationID, City: "Lisbon"}, nil)

	location, err := svc.Update(context.Background(), testLocationID, domain.UpdateLocationInput{})

	require.NoError(t, err)
	assert.Equal(t, "Lisbon", location.City)
}

func TestLocationService_Delete_InUse(t *testing.T) {
	svc, repo := newLocationService(t)

	repo.EXPECT().Delete(mock.Anything, testLocationID).
		Return(fmt.Errorf("%w: location is referenced by an event", domain.ErrValidation))

	err := svc.Delete(context.Background(), testLocationID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLocationService_Get_MalformedID(t *testing.T) {
	svc, _ := newLocationService(t)

	_, err := svc.Get(context.Background(), "bad")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
