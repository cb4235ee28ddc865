package salarycalc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-tutorcenter/internal/middleware"
	"go-tutorcenter/internal/shared/apperror"
	"go-tutorcenter/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	idempotencyTTL = 24 * time.Hour
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func getActorID(c *gin.Context) string {
	actorID := c.GetString("user_id")
	if actorID == "" {
		actorID = c.GetString("user_id_validated")
	}
	return actorID
}

func (h *Handler) Generate(c *gin.Context) {
	if h.rdb != nil {
		if lk := c.GetString(middleware.IdempotencyLockKey); lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	companyID := c.GetString("company_id")
	actorID := getActorID(c)
	teacherID := c.Param("teacherId")

	var req GenerateCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), companyID, actorID, teacherID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if h.rdb != nil {
		if ck := c.GetString(middleware.IdempotencyCacheKey); ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, idempotencyTTL).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")

	var filter ListCalculationsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GetAll(ctx, companyID, c.Param("teacherId"), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	page, pageSize := response.PageParams(c)
	start, end := response.PageBounds(len(resp), page, pageSize)
	meta := response.NewPaginationMeta(int64(len(resp)), page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(
		c.Request.Context(),
		c.GetString("company_id"),
		c.Param("teacherId"),
		c.Param("calcId"),
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAuditLogs(c *gin.Context) {
	resp, err := h.service.GetAuditLogs(
		c.Request.Context(),
		c.GetString("company_id"),
		c.Param("teacherId"),
		c.Param("calcId"),
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	var req ApproveCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Approve(
		c.Request.Context(),
		c.GetString("company_id"),
		getActorID(c),
		c.Param("teacherId"),
		c.Param("calcId"),
		req,
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reopen(c *gin.Context) {
	var req ReopenCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Reopen(
		c.Request.Context(),
		c.GetString("company_id"),
		getActorID(c),
		c.Param("teacherId"),
		c.Param("calcId"),
		req,
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Recalculate(c *gin.Context) {
	resp, err := h.service.Recalculate(
		c.Request.Context(),
		c.GetString("company_id"),
		getActorID(c),
		c.Param("teacherId"),
		c.Param("calcId"),
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateBaseSalary(c *gin.Context) {
	var req UpdateBaseSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateBaseSalary(
		c.Request.Context(),
		c.GetString("company_id"),
		getActorID(c),
		c.Param("teacherId"),
		c.Param("calcId"),
		req,
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AddAdjustment(c *gin.Context) {
	var req AddAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AddAdjustment(
		c.Request.Context(),
		c.GetString("company_id"),
		getActorID(c),
		c.Param("teacherId"),
		c.Param("calcId"),
		req,
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) RemoveAdjustment(c *gin.Context) {
	resp, err := h.service.RemoveAdjustment(
		c.Request.Context(),
		c.GetString("company_id"),
		getActorID(c),
		c.Param("teacherId"),
		c.Param("calcId"),
		c.Param("adjId"),
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadStatement(c *gin.Context) {
	statement, err := h.service.GetStatement(
		c.Request.Context(),
		c.GetString("company_id"),
		c.Param("teacherId"),
		c.Param("calcId"),
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Attachment(c, contentTypePDF, statement.Filename, statement.Data)
}

func (h *Handler) Export(c *gin.Context) {
	var filter ExportCalculationsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	data, err := h.service.Export(c.Request.Context(), c.GetString("company_id"), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	filename := fmt.Sprintf("salary-calculations-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	response.Attachment(c, contentTypeXLSX, filename, data)
}
