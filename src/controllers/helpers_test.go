package controllers_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/CollegeSite/College-Backend/src/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(router *gin.Engine, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// multipartBody builds an upload form with the eventName field and one
// "images" part per given file.
func multipartBody(t *testing.T, eventName string, files ...[]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("eventName", eventName))
	for _, data := range files {
		part, err := writer.CreateFormFile("images", "photo.png")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

// Store and media fakes shared across controller tests. They mirror the
// repository contracts: lookups return nil, nil when nothing matches.

type stubMediaStore struct {
	uploads int
}

func (s *stubMediaStore) Upload(_ context.Context, _ []byte, folder string) (string, string, error) {
	s.uploads++
	publicID := folder + "/stub_" + string(rune('a'+s.uploads-1))
	return "https://res.cloudinary.com/demo/" + publicID + ".png", publicID, nil
}

func (s *stubMediaStore) Destroy(_ context.Context, _ string) error {
	return nil
}

type stubGalleryStore struct {
	galleries map[int]*models.EventGalleryModel
	nextID    int
}

func newStubGalleryStore() *stubGalleryStore {
	return &stubGalleryStore{galleries: make(map[int]*models.EventGalleryModel), nextID: 1}
}

func (s *stubGalleryStore) FindByEventName(_ context.Context, eventName string) (*models.EventGalleryModel, error) {
	for _, g := range s.galleries {
		if g.EventName == eventName {
			copied := *g
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *stubGalleryStore) FindByID(_ context.Context, id int) (*models.EventGalleryModel, error) {
	g, ok := s.galleries[id]
	if !ok {
		return nil, nil
	}
	copied := *g
	return &copied, nil
}

func (s *stubGalleryStore) FindAll(_ context.Context) ([]models.EventGalleryModel, error) {
	var all []models.EventGalleryModel
	for _, g := range s.galleries {
		all = append(all, *g)
	}
	return all, nil
}

func (s *stubGalleryStore) Create(_ context.Context, gallery *models.EventGalleryModel) error {
	gallery.Id = s.nextID
	s.nextID++
	copied := *gallery
	s.galleries[gallery.Id] = &copied
	return nil
}

func (s *stubGalleryStore) Save(_ context.Context, gallery *models.EventGalleryModel) error {
	copied := *gallery
	s.galleries[gallery.Id] = &copied
	return nil
}

func (s *stubGalleryStore) Delete(_ context.Context, id int) error {
	delete(s.galleries, id)
	return nil
}

type stubUserStore struct {
	users map[string]*models.UserModel
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[string]*models.UserModel)}
}

func (s *stubUserStore) FindByEmail(_ context.Context, email string) (*models.UserModel, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (s *stubUserStore) Save(_ context.Context, user *models.UserModel) error {
	copied := *user
	s.users[user.Email] = &copied
	return nil
}

type stubMailer struct {
	sent    []string
	sendErr error
}

func (s *stubMailer) SendVerificationCode(_, code string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, code)
	return nil
}
