package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GenerateMealPlan(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		content := "```json\n" + fullPlanJSON(t) + "\n```"
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	client := NewClient("sk-test", srv.URL, "gpt-4", 10*time.Second)

	plan, err := client.GenerateMealPlan(context.Background(), fixedPreferences())
	require.NoError(t, err)
	assert.Len(t, plan.WeeklyPlan, 7)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4", gotReq.Model)
	assert.InDelta(t, 0.7, gotReq.Temperature, 0.0001)
	assert.Equal(t, 2000, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, systemPrompt, gotReq.Messages[0].Content)
	assert.Contains(t, gotReq.Messages[1].Content, "Daily Targets")
}

func TestClient_GenerateMealPlan_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient("sk-test", srv.URL, "gpt-4", 10*time.Second)

	plan, err := client.GenerateMealPlan(context.Background(), fixedPreferences())
	assert.Nil(t, plan)
	assert.ErrorContains(t, err, "unexpected status 429")
}

func TestClient_GenerateMealPlan_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "Sorry, I cannot help with that."}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient("sk-test", srv.URL, "gpt-4", 10*time.Second)

	plan, err := client.GenerateMealPlan(context.Background(), fixedPreferences())
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrMalformedPlan)
}

func TestClient_GenerateMealPlan_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient("sk-test", srv.URL, "gpt-4", 20*time.Millisecond)

	ctx := context.Background()
	plan, err := client.GenerateMealPlan(ctx, fixedPreferences())
	assert.Nil(t, plan)
	assert.Error(t, err)
}
