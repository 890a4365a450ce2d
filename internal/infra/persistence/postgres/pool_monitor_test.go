package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogPoolWait(t *testing.T) {
	tests := []struct {
		name     string
		prev     sql.DBStats
		cur      sql.DBStats
		expected string
	}{
		{
			name:     "no new waits",
			prev:     sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			cur:      sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			expected: "",
		},
		{
			name:     "short waits stay at debug",
			prev:     sql.DBStats{WaitCount: 1},
			cur:      sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond},
			expected: "level=DEBUG",
		},
		{
			name:     "long waits warn",
			prev:     sql.DBStats{},
			cur:      sql.DBStats{WaitCount: 2, WaitDuration: 200 * time.Millisecond},
			expected: "level=WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			logPoolWait(context.Background(), logger, tt.prev, tt.cur)

			if tt.expected == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.expected)
			assert.Contains(t, buf.String(), "waitCountDelta=")
		})
	}
}
