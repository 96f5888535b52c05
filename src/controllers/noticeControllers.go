package controllers

import (
	"net/http"
	"strconv"

	"github.com/CollegeSite/College-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type NoticeController struct {
	service *services.NoticeService
}

func NewNoticeController(service *services.NoticeService) *NoticeController {
	return &NoticeController{service: service}
}

type noticeRequest struct {
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	Links   []string `json:"links"`
}

// CreateNotice handles POST requests adding a notice to the board.
func (nc *NoticeController) CreateNotice(ctx *gin.Context) {
	var req noticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notice, err := nc.service.CreateNotice(ctx.Request.Context(), req.Subject, req.Body, req.Links)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Notice created successfully", "notice": notice})
}

// UpdateNotice handles PUT requests replacing a notice's content.
func (nc *NoticeController) UpdateNotice(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req noticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notice, err := nc.service.UpdateNotice(ctx.Request.Context(), id, req.Subject, req.Body, req.Links)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Notice updated successfully", "notice": notice})
}

// DeleteNotice handles DELETE requests removing a notice.
func (nc *NoticeController) DeleteNotice(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := nc.service.DeleteNotice(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Notice deleted successfully"})
}

// GetAllNotices handles GET requests listing notices newest-first.
func (nc *NoticeController) GetAllNotices(ctx *gin.Context) {
	notices, err := nc.service.GetAllNotices(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"notices": notices})
}

// ExportNotices handles GET requests downloading the board as an XLSX file.
func (nc *NoticeController) ExportNotices(ctx *gin.Context) {
	f, err := nc.service.ExportNotices(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Header("Content-Disposition", `attachment; filename="notices.xlsx"`)
	if err := f.Write(ctx.Writer); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Could not write workbook"})
	}
}
