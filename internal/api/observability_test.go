package api

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogObserver_WritesKeyValueLine(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(&buf)

	obs.OnCallComplete(CallEvent{
		Path:       "/api/v1/users",
		RequestID:  "req-1",
		StatusCode: 200,
		LatencyMs:  12,
		Success:    true,
	})
	obs.OnCallComplete(CallEvent{
		Path:      "/api/v1/mean_time_weekday/3",
		RequestID: "req-2",
		Success:   false,
		ErrorCode: "TIMEOUT",
	})

	out := buf.String()
	assert.Contains(t, out, "api_call path=/api/v1/users request_id=req-1 http=200 latency_ms=12 status=ok")
	assert.Contains(t, out, "path=/api/v1/mean_time_weekday/3 request_id=req-2")
	assert.Contains(t, out, "status=err:TIMEOUT")
}
