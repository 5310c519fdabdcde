package deepseek

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-planner/internal/config"
)

func testConfig(endpoint string) *config.LLMConfig {
	return &config.LLMConfig{
		Endpoint:       endpoint,
		Model:          "deepseek-chat",
		MaxTokens:      2000,
		Temperature:    0.7,
		RequestTimeout: 5 * time.Second,
	}
}

func TestClient_GeneratePlan(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		var gotAuth string
		var gotReq chatRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &gotReq))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]string{"content": "# 北京人文景观旅游规划"}},
				},
			})
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		plan, err := client.GeneratePlan(context.Background(), "北京", "人文景观", "故宫博物院", "sk-test")

		require.NoError(t, err)
		assert.Equal(t, "# 北京人文景观旅游规划", plan)
		assert.Equal(t, "Bearer sk-test", gotAuth)
		assert.Equal(t, "deepseek-chat", gotReq.Model)
		assert.Equal(t, 2000, gotReq.MaxTokens)
		assert.Equal(t, 0.7, gotReq.Temperature)
		require.Len(t, gotReq.Messages, 2)
		assert.Equal(t, "system", gotReq.Messages[0].Role)
		assert.Equal(t, "user", gotReq.Messages[1].Role)
		assert.Contains(t, gotReq.Messages[1].Content, "北京")
		assert.Contains(t, gotReq.Messages[1].Content, "故宫博物院")
	})

	t.Run("empty credential", func(t *testing.T) {
		client := NewClient(testConfig("http://127.0.0.1:0"), logger)

		plan, err := client.GeneratePlan(context.Background(), "北京", "人文景观", "故宫博物院", "")

		assert.Empty(t, plan)
		assert.Error(t, err)
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid api key"}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		plan, err := client.GeneratePlan(context.Background(), "北京", "人文景观", "故宫博物院", "sk-bad")

		assert.Empty(t, plan)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 401")
	})

	t.Run("malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		plan, err := client.GeneratePlan(context.Background(), "北京", "人文景观", "故宫博物院", "sk-test")

		assert.Empty(t, plan)
		assert.Error(t, err)
	})

	t.Run("no choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		plan, err := client.GeneratePlan(context.Background(), "北京", "人文景观", "故宫博物院", "sk-test")

		assert.Empty(t, plan)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no choices")
	})

	t.Run("empty content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[{"message":{"content":""}}]}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL), logger)

		plan, err := client.GeneratePlan(context.Background(), "北京", "人文景观", "故宫博物院", "sk-test")

		assert.Empty(t, plan)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty content")
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		client := NewClient(testConfig("http://127.0.0.1:1"), logger)

		plan, err := client.GeneratePlan(context.Background(), "北京", "人文景观", "故宫博物院", "sk-test")

		assert.Empty(t, plan)
		assert.Error(t, err)
	})
}
