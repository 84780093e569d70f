package production_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/authz"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/domain"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/production"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/realtime"
)

// productionEnv wires the handler stack once; routerFor returns a router
// that authenticates every request as the given principal against the same
// shared store.
type productionEnv struct {
	service production.Service
	policy  authz.Policy
	handler *production.Handler
}

func newProductionEnv(t *testing.T) *productionEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	policy, err := authz.NewPolicy()
	require.NoError(t, err)

	service := production.NewService(production.NewMemoryRepository(), policy, realtime.NewNoopPublisher())
	return &productionEnv{
		service: service,
		policy:  policy,
		handler: production.NewHandler(service),
	}
}

// routerFor mirrors the production route table with the token check replaced
// by a stub that injects the principal directly.
func (e *productionEnv) routerFor(principal domain.Principal) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", principal.ID)
		c.Set("email", principal.Email)
		c.Set("role", principal.Role)
	})

	records := r.Group("/production")
	records.GET("", authz.Authorize(e.policy, authz.ResourceRecord, authz.ActionRead), e.handler.List)
	records.GET("/:id", authz.Authorize(e.policy, authz.ResourceRecord, authz.ActionRead), e.handler.Get)
	records.POST("", authz.Authorize(e.policy, authz.ResourceRecord, authz.ActionCreate), e.handler.Create)
	records.PUT("/:id", authz.Authorize(e.policy, authz.ResourceRecord, authz.ActionUpdate), e.handler.Update)
	records.DELETE("/:id", authz.Authorize(e.policy, authz.ResourceRecord, authz.ActionDelete), e.handler.Delete)
	return r
}

func doJSON(router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	var body []byte
	if payload != nil {
		body, _ = json.Marshal(payload)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_Create(t *testing.T) {
	env := newProductionEnv(t)
	creator := operator(uuid.NewString())
	router := env.routerFor(creator)

	t.Run("Created With Derived Fields", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/production", gin.H{
			"lineNo":           "BE-01",
			"modelName":        "X100",
			"planQty":          100,
			"actualQty":        95,
			"standardManpower": 5,
			"actualManpower":   6,
			"shiftName":        "A",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		data := res["data"].(map[string]any)
		assert.Equal(t, float64(-5), data["variance"])
		assert.Equal(t, float64(1), data["manpowerVariance"])
		assert.Equal(t, creator.ID, data["recordedBy"].(map[string]any)["id"])
	})

	t.Run("Zero Quantities Are Valid", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/production", gin.H{
			"lineNo":    "BE-01",
			"modelName": "X100",
			"planQty":   0,
			"actualQty": 0,
		})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Missing Quantity Rejected", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/production", gin.H{
			"lineNo":    "BE-01",
			"modelName": "X100",
			"planQty":   100,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "VALIDATION_ERROR", res["error"].(map[string]any)["code"])
	})

	t.Run("Negative Quantity Rejected", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/production", gin.H{
			"lineNo":    "BE-01",
			"modelName": "X100",
			"planQty":   10,
			"actualQty": -1,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown Shift Rejected", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/production", gin.H{
			"lineNo":    "BE-01",
			"modelName": "X100",
			"planQty":   10,
			"actualQty": 10,
			"shiftName": "D",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_RoleGates(t *testing.T) {
	env := newProductionEnv(t)
	creator := operator(uuid.NewString())

	created, err := env.service.Create(context.Background(), creator, production.CreateRecordRequest{
		LineNo:    "BE-01",
		ModelName: "X100",
		PlanQty:   i64(10),
		ActualQty: i64(10),
	})
	require.NoError(t, err)

	t.Run("Operator Cannot Delete", func(t *testing.T) {
		w := doJSON(env.routerFor(creator), http.MethodDelete, "/production/"+created.ID, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "FORBIDDEN", res["error"].(map[string]any)["code"])
	})

	t.Run("Non Creator Update Forbidden", func(t *testing.T) {
		other := operator(uuid.NewString())
		w := doJSON(env.routerFor(other), http.MethodPut, "/production/"+created.ID, gin.H{"actualQty": 1})

		assert.Equal(t, http.StatusForbidden, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "FORBIDDEN", res["error"].(map[string]any)["code"])
	})

	t.Run("Manager Can Delete Records Of Others", func(t *testing.T) {
		manager := domain.Principal{ID: uuid.NewString(), Role: domain.RoleManager}
		w := doJSON(env.routerFor(manager), http.MethodDelete, "/production/"+created.ID, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(env.routerFor(creator), http.MethodGet, "/production/"+created.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_List(t *testing.T) {
	env := newProductionEnv(t)
	creator := operator(uuid.NewString())
	router := env.routerFor(creator)

	for _, day := range []string{"2026-08-20", "2026-08-21"} {
		_, err := env.service.Create(context.Background(), creator, production.CreateRecordRequest{
			LineNo:    "BE-01",
			ModelName: "X100",
			PlanQty:   i64(10),
			ActualQty: i64(10),
			Date:      sptr(day),
		})
		require.NoError(t, err)
	}

	t.Run("Filtered By Date", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/production?date=2026-08-21", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Len(t, res["data"].([]any), 1)
	})

	t.Run("Malformed Date Rejected", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/production?date=21-08-2026", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown Record Is 404", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/production/"+uuid.NewString(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
