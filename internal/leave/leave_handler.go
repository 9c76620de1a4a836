package leave

import (
	"net/http"
	"strings"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConfirmHeader lets API clients answer the delete prompt without a query
// parameter.
const ConfirmHeader = "X-Confirm"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.logger.Warn("http leave bind failed", zap.String("path", c.FullPath()), zap.Error(err))
	mapped := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", mapped.Message, mapped.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var q response.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, meta := response.Paginate(resp, q)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	var uri LeaveURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// Delete only removes the record when the caller confirmed, via
// ?confirm=true or the X-Confirm header. An unconfirmed delete is not an
// error; it reports deleted=false like a declined dialog.
func (h *Handler) Delete(c *gin.Context) {
	var uri LeaveURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.writeBindError(c, err)
		return
	}
	var q DeleteLeaveQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeBindError(c, err)
		return
	}

	confirmed := q.Confirm || headerConfirms(c.GetHeader(ConfirmHeader))
	deleted, err := h.service.Delete(c.Request.Context(), uri.ID, Answer(confirmed))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, DeleteLeaveResponse{ID: uri.ID, Deleted: deleted}, nil)
}

func (h *Handler) Duration(c *gin.Context) {
	var req DurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	response.Success(c, http.StatusOK, h.service.ComputeDuration(c.Request.Context(), req), nil)
}

func headerConfirms(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}
