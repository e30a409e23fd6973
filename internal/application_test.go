package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

func TestRunApp(t *testing.T) {
	t.Run("Plays a game until the input ends", func(t *testing.T) {
		// Given: a config that skips the name prompt
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		conf := &config.Config{LogLevel: "info", Players: config.Players{Player1Name: "Alice"}}

		var out bytes.Buffer

		// When: X wins on the left column
		err := RunApp(context.Background(), logger, conf, strings.NewReader("1\n2\n4\n5\n7\n"), &out)

		// Then: the app exits cleanly after announcing the winner
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Alice (X) wins!")
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		// Given: a canceled context and an input that never ends
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		conf := &config.Config{LogLevel: "info"}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		// When: running the app
		err := RunApp(ctx, logger, conf, reader, io.Discard)

		// Then: it returns without waiting for input
		require.NoError(t, err)
	})
}
