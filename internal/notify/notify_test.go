package notify

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierCollectsNotices(t *testing.T) {
	logger := zerolog.Nop()
	n := NewNotifier(10, &logger)

	n.Success("Chef added successfully!")
	n.Error("Failed to fetch events")

	notices := n.Recent()
	require.Len(t, notices, 2)
	assert.Equal(t, LevelSuccess, notices[0].Level)
	assert.Equal(t, "Chef added successfully!", notices[0].Message)
	assert.Equal(t, LevelError, notices[1].Level)
}

func TestNotifierCapacity(t *testing.T) {
	logger := zerolog.Nop()
	n := NewNotifier(3, &logger)

	for i := 0; i < 5; i++ {
		n.Success(fmt.Sprintf("message %d", i))
	}

	notices := n.Recent()
	require.Len(t, notices, 3)
	assert.Equal(t, "message 2", notices[0].Message)
	assert.Equal(t, "message 4", notices[2].Message)
}
