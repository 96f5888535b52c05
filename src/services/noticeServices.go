package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/CollegeSite/College-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
)

type NoticeStore interface {
	FindAllNewestFirst(ctx context.Context) ([]models.NoticeModel, error)
	FindByID(ctx context.Context, id int) (*models.NoticeModel, error)
	Create(ctx context.Context, notice *models.NoticeModel) error
	Save(ctx context.Context, notice *models.NoticeModel) error
	Delete(ctx context.Context, id int) error
}

type NoticeService struct {
	store NoticeStore
}

func NewNoticeService(store NoticeStore) *NoticeService {
	return &NoticeService{store: store}
}

func (s *NoticeService) CreateNotice(ctx context.Context, subject, body string, links []string) (*models.NoticeModel, error) {
	if subject == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrValidation)
	}
	notice := &models.NoticeModel{
		Subject: subject,
		Body:    body,
		Links:   datatypes.NewJSONSlice(links),
	}
	if err := s.store.Create(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (s *NoticeService) UpdateNotice(ctx context.Context, id int, subject, body string, links []string) (*models.NoticeModel, error) {
	notice, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notice == nil {
		return nil, fmt.Errorf("%w: notice not found", ErrNotFound)
	}
	notice.Subject = subject
	notice.Body = body
	notice.Links = datatypes.NewJSONSlice(links)
	if err := s.store.Save(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (s *NoticeService) DeleteNotice(ctx context.Context, id int) error {
	notice, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if notice == nil {
		return fmt.Errorf("%w: notice not found", ErrNotFound)
	}
	return s.store.Delete(ctx, id)
}

func (s *NoticeService) GetAllNotices(ctx context.Context) ([]models.NoticeModel, error) {
	return s.store.FindAllNewestFirst(ctx)
}

// ExportNotices renders the notice board, newest first, as an XLSX workbook
// for offline archiving.
func (s *NoticeService) ExportNotices(ctx context.Context) (*excelize.File, error) {
	notices, err := s.store.FindAllNewestFirst(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Notices"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Subject", "Body", "Links", "Created At"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, notice := range notices {
		values := []interface{}{
			notice.Subject,
			notice.Body,
			strings.Join(notice.Links, "\n"),
			notice.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
