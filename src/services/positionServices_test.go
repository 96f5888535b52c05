package services

import (
	"context"
	"testing"

	"github.com/CollegeSite/College-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var portrait = []byte{0xff, 0xd8, 0xff}

func TestAddPositionHolder_SingleSeatRoles(t *testing.T) {
	svc := NewPositionService(newFakePositionStore(), newFakeMediaStore())

	first, err := svc.AddPositionHolder(context.Background(), "A. Sharma", models.PositionPresident, portrait)
	require.NoError(t, err)
	assert.Equal(t, models.PositionPresident, first.Position)
	assert.NotEmpty(t, first.ImageURL)

	_, err = svc.AddPositionHolder(context.Background(), "B. Das", models.PositionPresident, portrait)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestAddPositionHolder_UnionAdvisorSeatsTwo(t *testing.T) {
	svc := NewPositionService(newFakePositionStore(), newFakeMediaStore())

	_, err := svc.AddPositionHolder(context.Background(), "First Advisor", models.PositionUnionAdvisor, portrait)
	require.NoError(t, err)

	_, err = svc.AddPositionHolder(context.Background(), "Second Advisor", models.PositionUnionAdvisor, portrait)
	require.NoError(t, err)

	_, err = svc.AddPositionHolder(context.Background(), "Third Advisor", models.PositionUnionAdvisor, portrait)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestAddPositionHolder_FullRoleCostsNoUpload(t *testing.T) {
	media := newFakeMediaStore()
	svc := NewPositionService(newFakePositionStore(), media)

	_, err := svc.AddPositionHolder(context.Background(), "Treasurer One", models.PositionTreasurer, portrait)
	require.NoError(t, err)
	uploadsBefore := media.uploads

	_, err = svc.AddPositionHolder(context.Background(), "Treasurer Two", models.PositionTreasurer, portrait)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, uploadsBefore, media.uploads)
}

func TestAddPositionHolder_UnknownPosition(t *testing.T) {
	svc := NewPositionService(newFakePositionStore(), newFakeMediaStore())
	_, err := svc.AddPositionHolder(context.Background(), "X", models.Position("Chancellor"), portrait)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddPositionHolder_RequiresNameAndImage(t *testing.T) {
	svc := NewPositionService(newFakePositionStore(), newFakeMediaStore())

	_, err := svc.AddPositionHolder(context.Background(), "", models.PositionSecretary, portrait)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddPositionHolder(context.Background(), "C. Roy", models.PositionSecretary, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeletePositionHolder_DestroysPortrait(t *testing.T) {
	store := newFakePositionStore()
	media := newFakeMediaStore()
	svc := NewPositionService(store, media)

	holder, err := svc.AddPositionHolder(context.Background(), "D. Sen", models.PositionSecretary, portrait)
	require.NoError(t, err)

	require.NoError(t, svc.DeletePositionHolder(context.Background(), holder.Id))

	require.Len(t, media.destroyed, 1)
	assert.Equal(t, PublicIDFromURL(holder.ImageURL, PositionFolder), media.destroyed[0])

	remaining, _ := svc.GetAllPositionHolders(context.Background())
	assert.Empty(t, remaining)
}

func TestDeletePositionHolder_NotFound(t *testing.T) {
	svc := NewPositionService(newFakePositionStore(), newFakeMediaStore())
	err := svc.DeletePositionHolder(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
