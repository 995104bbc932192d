package chat_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/application/chat"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/infrastructure/insurai"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/config"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/logger"
)

func newChatUseCase(t *testing.T, backend http.Handler) *chat.UseCase {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	api := insurai.New(config.APIConfig{BaseURL: srv.URL + "/api", TimeoutSeconds: 5}, log)
	return chat.New(api, log)
}

func TestSend_RelaysReply(t *testing.T) {
	var gotBody string
	uc := newChatUseCase(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chatbot/message", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte("Your claim is under review."))
	}))

	reply := uc.Send(context.Background(), "Where is my claim?")
	assert.Equal(t, "Your claim is under review.", reply)
	assert.JSONEq(t, `{"message":"Where is my claim?"}`, gotBody)
}

func TestSend_JSONWrappedReply(t *testing.T) {
	uc := newChatUseCase(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`"Hello there"`))
	}))

	assert.Equal(t, "Hello there", uc.Send(context.Background(), "hi"))
}

func TestSend_DegradesToFallback(t *testing.T) {
	uc := newChatUseCase(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	assert.Equal(t, chat.FallbackReply, uc.Send(context.Background(), "hi"))
}

func TestSend_EmptyMessageNeverReachesBackend(t *testing.T) {
	uc := newChatUseCase(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("the backend must not see empty messages")
	}))

	assert.Equal(t, chat.FallbackReply, uc.Send(context.Background(), "   "))
}
