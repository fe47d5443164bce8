package app

import (
	"context"
	"testing"
	"time"

	"github.com/jbeshir/article-board/internal/command"
	"github.com/jbeshir/article-board/internal/datasources/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSessionReaper_Run(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())

	deleter := mocks.NewMockExpiredSessionDeleter(t)
	deleter.EXPECT().
		DeleteExpiredSessions(mock.Anything, mock.Anything).
		Run(func(context.Context, time.Time) { cancel() }).
		Return(2, nil).
		Once()

	reaper := &SessionReaper{
		Reaper:   command.NewReapExpiredSessions(deleter),
		Interval: time.Millisecond,
	}

	done := make(chan error, 1)
	go func() {
		done <- reaper.Run(ctx)
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("reaper did not stop after cancellation")
	}
}
