package trigger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/httpclient"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	if err := logger.Initialize(logger.Config{
		Level:       "error",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

func TestNotifier_DeliversPayload(t *testing.T) {
	var gotContentType string
	var gotPayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewNotifier(httpclient.NewStandardClient())
	err := notifier.call(context.Background(), server.URL, "slot.booked", map[string]interface{}{
		"slotId":   "slot-1",
		"menteeId": "mentee-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "slot-1", gotPayload["slotId"])
	assert.Equal(t, "mentee-1", gotPayload["menteeId"])
}

func TestNotifier_RetriesTransientFailure(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewNotifier(httpclient.NewStandardClient())
	err := notifier.call(context.Background(), server.URL, "invite.created", map[string]interface{}{
		"email": "x@example.com",
	})

	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestNotifier_BlankURLIsNoOp(t *testing.T) {
	notifier := NewNotifier(httpclient.NewStandardClient())

	// Must not panic or spawn work
	notifier.CallAsync("", "slot.booked", map[string]interface{}{"slotId": "slot-1"})
}
