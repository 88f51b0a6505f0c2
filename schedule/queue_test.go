package schedule

import (
	"testing"

	"github.com/hmmm42/lancetgo/window"
	"github.com/stretchr/testify/assert"
)

func TestNewInWindowQueueIsPreloadedAndClosed(t *testing.T) {
	ws := windowsN(4)
	q := NewInWindowQueue(ws)

	var drained []window.Window
	for w := range q {
		drained = append(drained, w)
	}
	assert.Len(t, drained, 4)
	assert.Equal(t, ws, drained)

	// draining a closed, empty channel never blocks.
	w, ok := <-q
	assert.False(t, ok)
	assert.Equal(t, window.Window{}, w)
}

func TestNewOutResultQueueNeverBlocksAWorkerSend(t *testing.T) {
	q := NewOutResultQueue(3)
	for i := 0; i < 3; i++ {
		q <- CompletionRecord{WindowIdx: i}
	}
	close(q)

	count := 0
	for range q {
		count++
	}
	assert.Equal(t, 3, count)
}
