package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/CollegeSite/College-Backend/src/models"
)

// In-memory collaborators for service tests. Each fake records enough of the
// interaction to assert on ordering and call counts.

type fakeMediaStore struct {
	uploads    int
	destroyed  []string
	failAfter  int // fail the (failAfter+1)-th upload; -1 disables
	destroyErr error
}

func newFakeMediaStore() *fakeMediaStore {
	return &fakeMediaStore{failAfter: -1}
}

func (f *fakeMediaStore) Upload(_ context.Context, _ []byte, folder string) (string, string, error) {
	if f.failAfter >= 0 && f.uploads >= f.failAfter {
		return "", "", fmt.Errorf("simulated upload outage")
	}
	f.uploads++
	publicID := fmt.Sprintf("%s/img_%d", folder, f.uploads)
	url := fmt.Sprintf("https://res.cloudinary.com/demo/image/upload/v1/%s.png", publicID)
	return url, publicID, nil
}

func (f *fakeMediaStore) Destroy(_ context.Context, publicID string) error {
	if f.destroyErr != nil {
		return f.destroyErr
	}
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

type fakeGalleryStore struct {
	galleries map[int]*models.EventGalleryModel
	nextID    int
}

func newFakeGalleryStore() *fakeGalleryStore {
	return &fakeGalleryStore{galleries: make(map[int]*models.EventGalleryModel), nextID: 1}
}

func (f *fakeGalleryStore) FindByEventName(_ context.Context, eventName string) (*models.EventGalleryModel, error) {
	for _, g := range f.galleries {
		if g.EventName == eventName {
			copied := *g
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeGalleryStore) FindByID(_ context.Context, id int) (*models.EventGalleryModel, error) {
	g, ok := f.galleries[id]
	if !ok {
		return nil, nil
	}
	copied := *g
	return &copied, nil
}

func (f *fakeGalleryStore) FindAll(_ context.Context) ([]models.EventGalleryModel, error) {
	var all []models.EventGalleryModel
	for _, g := range f.galleries {
		all = append(all, *g)
	}
	return all, nil
}

func (f *fakeGalleryStore) Create(_ context.Context, gallery *models.EventGalleryModel) error {
	gallery.Id = f.nextID
	f.nextID++
	copied := *gallery
	f.galleries[gallery.Id] = &copied
	return nil
}

func (f *fakeGalleryStore) Save(_ context.Context, gallery *models.EventGalleryModel) error {
	copied := *gallery
	f.galleries[gallery.Id] = &copied
	return nil
}

func (f *fakeGalleryStore) Delete(_ context.Context, id int) error {
	delete(f.galleries, id)
	return nil
}

type fakeUserStore struct {
	users map[string]*models.UserModel
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.UserModel)}
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.UserModel, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) Save(_ context.Context, user *models.UserModel) error {
	copied := *user
	f.users[user.Email] = &copied
	return nil
}

type fakeMailer struct {
	sent    []string // codes, in dispatch order
	sendErr error
}

func (f *fakeMailer) SendVerificationCode(_, code string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, code)
	return nil
}

type fakePositionStore struct {
	holders map[int]*models.PositionHolderModel
	nextID  int
}

func newFakePositionStore() *fakePositionStore {
	return &fakePositionStore{holders: make(map[int]*models.PositionHolderModel), nextID: 1}
}

func (f *fakePositionStore) FindAll(_ context.Context) ([]models.PositionHolderModel, error) {
	var all []models.PositionHolderModel
	for _, h := range f.holders {
		all = append(all, *h)
	}
	return all, nil
}

func (f *fakePositionStore) FindByID(_ context.Context, id int) (*models.PositionHolderModel, error) {
	h, ok := f.holders[id]
	if !ok {
		return nil, nil
	}
	copied := *h
	return &copied, nil
}

func (f *fakePositionStore) CountByPosition(_ context.Context, position models.Position) (int, error) {
	count := 0
	for _, h := range f.holders {
		if h.Position == position {
			count++
		}
	}
	return count, nil
}

func (f *fakePositionStore) Create(_ context.Context, holder *models.PositionHolderModel) error {
	holder.Id = f.nextID
	f.nextID++
	copied := *holder
	f.holders[holder.Id] = &copied
	return nil
}

func (f *fakePositionStore) Delete(_ context.Context, id int) error {
	delete(f.holders, id)
	return nil
}

type fakeMagazineStore struct {
	magazines map[int]*models.MagazineModel
	nextID    int
}

func newFakeMagazineStore() *fakeMagazineStore {
	return &fakeMagazineStore{magazines: make(map[int]*models.MagazineModel), nextID: 1}
}

func (f *fakeMagazineStore) FindAll(_ context.Context) ([]models.MagazineModel, error) {
	var all []models.MagazineModel
	for _, m := range f.magazines {
		all = append(all, *m)
	}
	return all, nil
}

func (f *fakeMagazineStore) FindByNameAndLink(_ context.Context, name, link string) (*models.MagazineModel, error) {
	for _, m := range f.magazines {
		if m.MagazineName == name && m.MagazineLink == link {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeMagazineStore) Create(_ context.Context, magazine *models.MagazineModel) error {
	for _, m := range f.magazines {
		if m.MagazineName == magazine.MagazineName && m.MagazineLink == magazine.MagazineLink {
			return ErrDuplicate
		}
	}
	magazine.Id = f.nextID
	f.nextID++
	copied := *magazine
	f.magazines[magazine.Id] = &copied
	return nil
}

func (f *fakeMagazineStore) DeleteByName(_ context.Context, name string) (bool, error) {
	for id, m := range f.magazines {
		if m.MagazineName == name {
			delete(f.magazines, id)
			return true, nil
		}
	}
	return false, nil
}

type fakeProfessorStore struct {
	professors map[int]*models.ProfessorModel
	nextID     int
}

func newFakeProfessorStore() *fakeProfessorStore {
	return &fakeProfessorStore{professors: make(map[int]*models.ProfessorModel), nextID: 1}
}

func (f *fakeProfessorStore) FindAll(_ context.Context) ([]models.ProfessorModel, error) {
	var all []models.ProfessorModel
	for _, p := range f.professors {
		all = append(all, *p)
	}
	return all, nil
}

func (f *fakeProfessorStore) FindByID(_ context.Context, id int) (*models.ProfessorModel, error) {
	p, ok := f.professors[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProfessorStore) Create(_ context.Context, professor *models.ProfessorModel) error {
	professor.Id = f.nextID
	f.nextID++
	copied := *professor
	f.professors[professor.Id] = &copied
	return nil
}

func (f *fakeProfessorStore) Save(_ context.Context, professor *models.ProfessorModel) error {
	copied := *professor
	f.professors[professor.Id] = &copied
	return nil
}

func (f *fakeProfessorStore) Delete(_ context.Context, id int) error {
	delete(f.professors, id)
	return nil
}

type fakeNoticeStore struct {
	notices map[int]*models.NoticeModel
	nextID  int
}

func newFakeNoticeStore() *fakeNoticeStore {
	return &fakeNoticeStore{notices: make(map[int]*models.NoticeModel), nextID: 1}
}

func (f *fakeNoticeStore) FindAllNewestFirst(_ context.Context) ([]models.NoticeModel, error) {
	var all []models.NoticeModel
	for _, n := range f.notices {
		all = append(all, *n)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all, nil
}

func (f *fakeNoticeStore) FindByID(_ context.Context, id int) (*models.NoticeModel, error) {
	n, ok := f.notices[id]
	if !ok {
		return nil, nil
	}
	copied := *n
	return &copied, nil
}

func (f *fakeNoticeStore) Create(_ context.Context, notice *models.NoticeModel) error {
	notice.Id = f.nextID
	notice.CreatedAt = time.Now().Add(time.Duration(f.nextID) * time.Second)
	f.nextID++
	copied := *notice
	f.notices[notice.Id] = &copied
	return nil
}

func (f *fakeNoticeStore) Save(_ context.Context, notice *models.NoticeModel) error {
	copied := *notice
	f.notices[notice.Id] = &copied
	return nil
}

func (f *fakeNoticeStore) Delete(_ context.Context, id int) error {
	delete(f.notices, id)
	return nil
}
