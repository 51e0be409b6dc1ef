package notify

import (
	"bytes"
	"fmt"
	"log"
	"testing"
	"time"

	"route-comparison-service/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardKeepsNewestFirst(t *testing.T) {
	b := NewBoard(3)
	for i := 0; i < 5; i++ {
		b.Notify(ports.Notice{Kind: ports.NoticeInfo, Message: fmt.Sprintf("m%d", i)})
	}

	recent := b.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "m4", recent[0].Message)
	assert.Equal(t, "m2", recent[2].Message)

	b.Clear()
	assert.Empty(t, b.Recent())
}

func TestBoardStampsMissingTime(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	b := NewBoard(0)
	b.now = func() time.Time { return fixed }

	b.Notify(ports.Notice{Kind: ports.NoticeNetwork, Message: "down"})
	assert.Equal(t, fixed, b.Recent()[0].At)
	assert.Equal(t, DefaultBoardSize, b.size)
}

func TestMultiFansOut(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	b := NewBoard(5)
	m := Multi{LogNotifier{}, nil, b}
	m.Notify(ports.Notice{Kind: ports.NoticeValidation, Message: "start must be selected"})

	assert.Len(t, b.Recent(), 1)
	assert.Contains(t, buf.String(), `notice kind=validation msg="start must be selected"`)
}
