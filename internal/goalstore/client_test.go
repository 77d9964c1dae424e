package goalstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/skillstack/internal/goal"
)

func TestClient_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/goals/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"skill_name":"React Basics","resource_type":"course","platform":"Udemy","progress_status":"started","hours_spent":2,"notes":"","difficulty_rating":2,"created_at":"2026-03-01T10:00:00Z","updated_at":"2026-03-01T10:00:00Z"},
			{"id":2,"skill_name":"Go","resource_type":"book","platform":"Other","progress_status":"completed","hours_spent":10,"notes":"done","difficulty_rating":4,"created_at":"2026-03-02T10:00:00Z","updated_at":"2026-03-03T10:00:00Z"}
		]`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	goals, err := client.List(context.Background())

	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "React Basics", goals[0].SkillName)
	assert.Equal(t, goal.StatusCompleted, goals[1].ProgressStatus)
	assert.Equal(t, 10.0, goals[1].HoursSpent)
}

func TestClient_List_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).List(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_Create(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/goals/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req goal.CreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Python Basics", req.SkillName)

		created := goal.Goal{
			ID: 42, SkillName: req.SkillName, ResourceType: req.ResourceType,
			Platform: req.Platform, ProgressStatus: req.ProgressStatus,
			HoursSpent: req.HoursSpent, DifficultyRating: req.DifficultyRating,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(created)
	}))
	defer srv.Close()

	req := goal.NewCreateRequest()
	req.SkillName = "Python Basics"
	req.Platform = "Coursera"

	created, err := New(srv.URL).Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "Python Basics", created.SkillName)
}

func TestClient_Create_ValidationFailureNeverSent(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	req := goal.NewCreateRequest() // missing skill name and platform
	_, err := New(srv.URL).Create(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, 0, requests, "invalid requests must not reach the wire")
}

func TestClient_Update(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/goals/7", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		// Only the populated field is on the wire.
		assert.Equal(t, map[string]any{"progress_status": "completed"}, payload)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"skill_name":"Go","progress_status":"completed"}`))
	}))
	defer srv.Close()

	status := goal.StatusCompleted
	updated, err := New(srv.URL).Update(context.Background(), 7, goal.UpdateRequest{ProgressStatus: &status})

	require.NoError(t, err)
	assert.Equal(t, goal.StatusCompleted, updated.ProgressStatus)
}

func TestClient_Delete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/goals/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	assert.NoError(t, New(srv.URL).Delete(context.Background(), 3))
}

func TestClient_Delete_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := New(srv.URL).Delete(context.Background(), 999)

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestClient_Dashboard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dashboard", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total_goals": 3, "completed_goals": 2, "in_progress_goals": 0,
			"total_hours": 12.5, "completion_rate": 66.7,
			"category_breakdown": [{"name":"course","count":2},{"name":"book","count":1}]
		}`))
	}))
	defer srv.Close()

	summary, err := New(srv.URL).Dashboard(context.Background())

	require.NoError(t, err)
	require.NotNil(t, summary.TotalGoals)
	assert.Equal(t, 3, *summary.TotalGoals)
	assert.Equal(t, 2, summary.CompletedGoals)
	assert.Len(t, summary.CategoryBreakdown, 2)
}

func TestClient_Dashboard_MissingTotalGoals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"not implemented"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Dashboard(context.Background())

	assert.ErrorIs(t, err, ErrDashboardUnavailable)
}

func TestClient_Dashboard_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Dashboard(context.Background())

	assert.ErrorIs(t, err, ErrDashboardUnavailable)
}

func TestClient_Networkfailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := New(srv.URL).List(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}
