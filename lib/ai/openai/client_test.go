package openaiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jd-generator/lib/ai"

	"github.com/stretchr/testify/require"
)

func TestOpenAIClient(t *testing.T) {
	t.Run(`chat completion`, func(t *testing.T) {
		var body map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "chatcmpl-1",
				"object": "chat.completion",
				"created": 1,
				"model": "deepseek-r1:1.5b",
				"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "Job text"}}]
			}`))
		}))
		defer srv.Close()

		client, err := NewClient(srv.URL, "ollama", "deepseek-r1:1.5b")
		require.NoError(t, err)
		answer, err := client.Chat(context.TODO(), []ai.Message{
			{Role: ai.RoleSystem, Content: "sys"},
			{Role: ai.RoleUser, Content: "prompt"},
		})
		require.NoError(t, err)
		require.Equal(t, "Job text", answer)
		require.Equal(t, "deepseek-r1:1.5b", body["model"])
		messages, ok := body["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 2)
	})

	t.Run(`server error`, func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client, err := NewClient(srv.URL, "ollama", "m")
		require.NoError(t, err)
		_, err = client.Chat(context.TODO(), []ai.Message{{Role: ai.RoleUser, Content: "prompt"}})
		require.Error(t, err)
	})

	t.Run(`config check`, func(t *testing.T) {
		_, err := NewClient("", "k", "m")
		require.Error(t, err)
		_, err = NewClient("http://localhost", "k", " ")
		require.Error(t, err)
	})
}
