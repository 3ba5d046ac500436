package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fleetwatch-service/internal/domain/repository"
	"fleetwatch-service/internal/usecase"
	"fleetwatch-service/pkg/logger"
	"fleetwatch-service/pkg/metrics"
)

// Handler serves the dashboard REST API
type Handler struct {
	store     repository.Storage
	dashboard *usecase.DashboardService
	auth      *usecase.AuthService
	metrics   *metrics.Metrics
	logger    logger.Logger
	cookie    CookieConfig
}

// CookieConfig describes the session cookie
type CookieConfig struct {
	Name   string
	MaxAge int // seconds
	Secure bool
}

// NewHandler creates a new API handler
func NewHandler(
	store repository.Storage,
	auth *usecase.AuthService,
	m *metrics.Metrics,
	logger logger.Logger,
	cookie CookieConfig,
) *Handler {
	return &Handler{
		store:     store,
		dashboard: usecase.NewDashboardService(store),
		auth:      auth,
		metrics:   m,
		logger:    logger,
		cookie:    cookie,
	}
}

// resource names an entity in routes, messages and metric labels
type resource struct {
	one  string
	many string
}

func (r resource) title() string {
	return strings.ToUpper(r.one[:1]) + r.one[1:]
}

var (
	agencies       = resource{"agency", "agencies"}
	corporates     = resource{"corporate", "corporates"}
	parks          = resource{"park", "parks"}
	vehicles       = resource{"vehicle", "vehicles"}
	drivers        = resource{"driver", "drivers"}
	manifests      = resource{"manifest", "manifests"}
	passengers     = resource{"passenger", "passengers"}
	parcels        = resource{"parcel", "parcels"}
	trafficReports = resource{"traffic report", "traffic reports"}
	securityAlerts = resource{"security alert", "security alerts"}
	violations     = resource{"violation", "violations"}
)

// storageFailure maps a storage error onto a response. Not found and
// duplicate keys are expected outcomes and are not logged as errors.
func (h *Handler) storageFailure(c *gin.Context, op string, res resource, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": res.title() + " not found"})
	case errors.Is(err, repository.ErrDuplicateKey):
		c.JSON(http.StatusConflict, gin.H{"message": res.title() + " already exists", "error": err.Error()})
	case errors.Is(err, repository.ErrBackendUnavailable):
		h.recordStorageError(op, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Storage unavailable"})
	default:
		h.recordStorageError(op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error " + op})
	}
}

func (h *Handler) recordStorageError(op string, err error) {
	h.logger.Error("Storage operation failed", "operation", op, "error", err)
	h.metrics.StorageErrors.WithLabelValues(strings.ReplaceAll(op, " ", "_")).Inc()
}

// parseID reads the :id parameter. Anything that is not a positive integer
// cannot name a record, so the caller answers 404.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseLimit reads ?limit=. Missing, unparseable or zero means the default.
func parseLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit == 0 {
		return repository.DefaultRecentLimit
	}
	return limit
}

func notFound(c *gin.Context, res resource) {
	c.JSON(http.StatusNotFound, gin.H{"message": res.title() + " not found"})
}

// Generic route handlers shared by every entity

func getByID[T any](h *Handler, res resource, get func(context.Context, int64) (*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			notFound(c, res)
			return
		}
		rec, err := get(c.Request.Context(), id)
		if err != nil {
			h.storageFailure(c, "fetching "+res.one, res, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

func getByKey[T any](h *Handler, res resource, param string, get func(context.Context, string) (*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := get(c.Request.Context(), c.Param(param))
		if err != nil {
			h.storageFailure(c, "fetching "+res.one, res, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

func listAll[T any](h *Handler, res resource, list func(context.Context) ([]*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		recs, err := list(c.Request.Context())
		if err != nil {
			h.storageFailure(c, "fetching "+res.many, res, err)
			return
		}
		c.JSON(http.StatusOK, recs)
	}
}

// listByParent lists the records referencing the :id of the parent resource
func listByParent[T any](h *Handler, parent, res resource, list func(context.Context, int64) ([]*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			notFound(c, parent)
			return
		}
		recs, err := list(c.Request.Context(), id)
		if err != nil {
			h.storageFailure(c, "fetching "+res.many, res, err)
			return
		}
		c.JSON(http.StatusOK, recs)
	}
}

func listRecent[T any](h *Handler, res resource, list func(context.Context, int) ([]*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		recs, err := list(c.Request.Context(), parseLimit(c))
		if err != nil {
			h.storageFailure(c, "fetching recent "+res.many, res, err)
			return
		}
		c.JSON(http.StatusOK, recs)
	}
}

func create[R, T any](h *Handler, res resource, build func(R) *T, save func(context.Context, *T) (*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req R
		if err := c.ShouldBindJSON(&req); err != nil {
			invalidBody(c, res, err)
			return
		}
		rec, err := save(c.Request.Context(), build(req))
		if err != nil {
			h.storageFailure(c, "creating "+res.one, res, err)
			return
		}
		c.JSON(http.StatusCreated, rec)
	}
}

func update[P, T any](h *Handler, res resource, apply func(context.Context, int64, P) (*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			notFound(c, res)
			return
		}
		// an empty body is an empty patch
		var patch P
		if err := c.ShouldBindJSON(&patch); err != nil && !errors.Is(err, io.EOF) {
			invalidBody(c, res, err)
			return
		}
		rec, err := apply(c.Request.Context(), id, patch)
		if err != nil {
			h.storageFailure(c, "updating "+res.one, res, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}
