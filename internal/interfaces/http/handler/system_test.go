package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping() error { return p.err }

func setupSystemRouter(db Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	api := engine.Group("/api/v1")
	NewSystemHandler(db).RegisterRoutes(api)
	return engine
}

func TestSystemHandler_Ping(t *testing.T) {
	engine := setupSystemRouter(&stubPinger{})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/system/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "pong", response.Data.Message)
}

func TestSystemHandler_GetSystemInfo(t *testing.T) {
	engine := setupSystemRouter(&stubPinger{})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/system/info", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Name      string `json:"name"`
			GoVersion string `json:"go_version"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Transfers Backend API", response.Data.Name)
	assert.NotEmpty(t, response.Data.GoVersion)
}

func TestSystemHandler_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		engine := setupSystemRouter(&stubPinger{})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/system/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Data struct {
				Status   string `json:"status"`
				Database string `json:"database"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "ok", response.Data.Status)
		assert.Equal(t, "ok", response.Data.Database)
	})

	t.Run("database unreachable", func(t *testing.T) {
		engine := setupSystemRouter(&stubPinger{err: errors.New("connection refused")})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/system/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response struct {
			Data struct {
				Status   string `json:"status"`
				Database string `json:"database"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "degraded", response.Data.Status)
		assert.Equal(t, "unreachable", response.Data.Database)
	})
}
