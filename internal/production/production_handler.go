package production

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/authz"
	productionerrors "github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/production/errors"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/shared/apperror"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/shared/response"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// NewHandlerWithRedis additionally completes the idempotency protocol:
// successful create responses are cached under the middleware-provided key.
func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) List(c *gin.Context) {
	f := Filter{
		LineNo: c.Query("lineNo"),
		Shift:  c.Query("shift"),
	}

	if dateStr := c.Query("date"); dateStr != "" {
		day, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			writeServiceError(c, productionerrors.ErrInvalidDate)
			return
		}
		f.Date = &day
	}

	resp, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	principal := authz.PrincipalFromContext(c)
	resp, err := h.service.Create(c.Request.Context(), principal, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.finishIdempotency(c, resp)
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	principal := authz.PrincipalFromContext(c)
	resp, err := h.service.Update(c.Request.Context(), principal, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Production record deleted"})
}

func (h *Handler) finishIdempotency(c *gin.Context, resp RecordResponse) {
	if h.rdb == nil {
		return
	}

	cacheKey := c.GetString("idempotency_cache_key")
	lockKey := c.GetString("idempotency_lock_key")
	if cacheKey == "" {
		return
	}

	if payload, err := json.Marshal(resp); err == nil {
		_ = h.rdb.Set(c.Request.Context(), cacheKey, payload, 24*time.Hour).Err()
	}
	if lockKey != "" {
		_ = h.rdb.Del(c.Request.Context(), lockKey).Err()
	}
}
