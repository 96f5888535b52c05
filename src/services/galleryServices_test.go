package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blobs(n int) [][]byte {
	files := make([][]byte, n)
	for i := range files {
		files[i] = []byte{0x89, 0x50, 0x4e, 0x47, byte(i)}
	}
	return files
}

func TestAddImages_CreatesGalleryOnFirstUpload(t *testing.T) {
	store := newFakeGalleryStore()
	media := newFakeMediaStore()
	svc := NewGalleryService(store, media)

	result, err := svc.AddImages(context.Background(), "Fest2024", blobs(3))
	require.NoError(t, err)

	assert.Equal(t, "Fest2024", result.EventName)
	assert.Equal(t, 3, result.TotalImages)
	assert.Len(t, result.UploadedImages, 3)
	assert.NotZero(t, result.EventID)

	stored, err := store.FindByEventName(context.Background(), "Fest2024")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, stored.ImageURLs, 3)
}

func TestAddImages_RejectsEmptyInput(t *testing.T) {
	svc := NewGalleryService(newFakeGalleryStore(), newFakeMediaStore())

	_, err := svc.AddImages(context.Background(), "Fest2024", nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddImages(context.Background(), "", blobs(1))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddImages_PreCheckRejectsWithoutUploading(t *testing.T) {
	store := newFakeGalleryStore()
	media := newFakeMediaStore()
	svc := NewGalleryService(store, media)

	_, err := svc.AddImages(context.Background(), "Fest2024", blobs(8))
	require.NoError(t, err)
	uploadsBefore := media.uploads

	_, err = svc.AddImages(context.Background(), "Fest2024", blobs(1))
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	// a full gallery must cost nothing remotely
	assert.Equal(t, uploadsBefore, media.uploads)

	stored, _ := store.FindByEventName(context.Background(), "Fest2024")
	assert.Len(t, stored.ImageURLs, 8)
}

func TestAddImages_PostCheckRejectsAndCleansUp(t *testing.T) {
	store := newFakeGalleryStore()
	media := newFakeMediaStore()
	svc := NewGalleryService(store, media)

	_, err := svc.AddImages(context.Background(), "Fest2024", blobs(3))
	require.NoError(t, err)

	// 3 existing + 6 new passes the pre-check but not the post-check
	_, err = svc.AddImages(context.Background(), "Fest2024", blobs(6))
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	stored, _ := store.FindByEventName(context.Background(), "Fest2024")
	assert.Len(t, stored.ImageURLs, 3, "stored gallery must be unchanged")
	// the six images uploaded before the rejection are destroyed again
	assert.Len(t, media.destroyed, 6)
}

func TestAddImages_CapNeverExceededAcrossCalls(t *testing.T) {
	store := newFakeGalleryStore()
	svc := NewGalleryService(store, newFakeMediaStore())

	for _, n := range []int{2, 3, 3, 1, 2} {
		_, _ = svc.AddImages(context.Background(), "Sports Day", blobs(n))
		stored, _ := store.FindByEventName(context.Background(), "Sports Day")
		require.NotNil(t, stored)
		assert.LessOrEqual(t, len(stored.ImageURLs), 8)
	}

	stored, _ := store.FindByEventName(context.Background(), "Sports Day")
	assert.Len(t, stored.ImageURLs, 8)
}

func TestAddImages_UploadFailureReportsProgress(t *testing.T) {
	store := newFakeGalleryStore()
	media := newFakeMediaStore()
	media.failAfter = 2 // third upload fails
	svc := NewGalleryService(store, media)

	_, err := svc.AddImages(context.Background(), "Fest2024", blobs(4))

	var uploadErr *MediaUploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, 2, uploadErr.Uploaded)

	// nothing persisted on a failed batch
	stored, _ := store.FindByEventName(context.Background(), "Fest2024")
	assert.Nil(t, stored)
}

func TestDeleteGallery_DestroysEveryImageBeforeDocument(t *testing.T) {
	store := newFakeGalleryStore()
	media := newFakeMediaStore()
	svc := NewGalleryService(store, media)

	result, err := svc.AddImages(context.Background(), "Farewell", blobs(5))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGallery(context.Background(), result.EventID))

	assert.Len(t, media.destroyed, 5, "one destroy per stored URL")
	stored, _ := store.FindByID(context.Background(), result.EventID)
	assert.Nil(t, stored)
}

func TestDeleteGallery_NotFound(t *testing.T) {
	svc := NewGalleryService(newFakeGalleryStore(), newFakeMediaStore())
	err := svc.DeleteGallery(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteGallery_ProceedsWhenDestroyFails(t *testing.T) {
	store := newFakeGalleryStore()
	media := newFakeMediaStore()
	svc := NewGalleryService(store, media)

	result, err := svc.AddImages(context.Background(), "Farewell", blobs(2))
	require.NoError(t, err)

	media.destroyErr = errors.New("remote outage")
	require.NoError(t, svc.DeleteGallery(context.Background(), result.EventID))

	stored, _ := store.FindByID(context.Background(), result.EventID)
	assert.Nil(t, stored, "document is removed even when destroys fail")
}

func TestDeleteSingleImage_RemovesURLAndReturnsRemaining(t *testing.T) {
	store := newFakeGalleryStore()
	media := newFakeMediaStore()
	svc := NewGalleryService(store, media)

	result, err := svc.AddImages(context.Background(), "Fest2024", blobs(3))
	require.NoError(t, err)
	target := result.UploadedImages[1]

	remaining, err := svc.DeleteSingleImage(context.Background(), "Fest2024", target)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)

	stored, _ := store.FindByEventName(context.Background(), "Fest2024")
	assert.NotContains(t, []string(stored.ImageURLs), target)
	require.Len(t, media.destroyed, 1)
	assert.Equal(t, PublicIDFromURL(target, GalleryFolder), media.destroyed[0])
}

func TestDeleteSingleImage_UnknownURLLeavesGalleryUntouched(t *testing.T) {
	store := newFakeGalleryStore()
	media := newFakeMediaStore()
	svc := NewGalleryService(store, media)

	_, err := svc.AddImages(context.Background(), "Fest2024", blobs(3))
	require.NoError(t, err)

	_, err = svc.DeleteSingleImage(context.Background(), "Fest2024", "https://example.com/nope.png")
	assert.ErrorIs(t, err, ErrNotFound)

	stored, _ := store.FindByEventName(context.Background(), "Fest2024")
	assert.Len(t, stored.ImageURLs, 3)
	assert.Empty(t, media.destroyed)
}

func TestDeleteSingleImage_UnknownEvent(t *testing.T) {
	svc := NewGalleryService(newFakeGalleryStore(), newFakeMediaStore())
	_, err := svc.DeleteSingleImage(context.Background(), "Nope", "https://example.com/a.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPublicIDFromURL(t *testing.T) {
	assert.Equal(t, "events/abc123",
		PublicIDFromURL("https://res.cloudinary.com/demo/image/upload/v1/events/abc123.png", "events"))
	assert.Equal(t, "abc123",
		PublicIDFromURL("https://res.cloudinary.com/demo/image/upload/abc123.jpg", ""))
	assert.Equal(t, "position-holders/head_shot",
		PublicIDFromURL("https://cdn.example.com/x/head_shot.jpeg", "position-holders"))
}
