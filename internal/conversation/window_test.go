package conversation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csiboto/kyle/internal/llm"
	"github.com/csiboto/kyle/internal/types"
)

func makeWindow(n int) []llm.Message {
	window := make([]llm.Message, 0, n)
	for i := 0; i < n; i++ {
		role := llm.RoleUser
		if i%2 == 1 {
			role = llm.RoleAssistant
		}
		window = append(window, llm.Message{Role: role, Content: fmt.Sprintf("turn %d", i)})
	}
	return window
}

func TestBuildThread_ClipsToWindow(t *testing.T) {
	thread, err := BuildThread(makeWindow(12), "new message")
	require.NoError(t, err)

	// 10 retained prior turns plus the new one
	require.Len(t, thread, 11)
	assert.Equal(t, "turn 2", thread[0].Content)
	assert.Equal(t, "turn 11", thread[9].Content)
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "new message"}, thread[10])
}

func TestBuildThread_PreservesOrder(t *testing.T) {
	window := makeWindow(4)
	thread, err := BuildThread(window, "next")
	require.NoError(t, err)

	require.Len(t, thread, 5)
	for i, turn := range window {
		assert.Equal(t, turn, thread[i])
	}
}

func TestBuildThread_EmptyMessage(t *testing.T) {
	_, err := BuildThread(makeWindow(2), "   \n\t ")

	var validationErr *types.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "message", validationErr.Field)
}

func TestBuildThread_EmptyWindow(t *testing.T) {
	thread, err := BuildThread(nil, "hello")
	require.NoError(t, err)
	require.Len(t, thread, 1)
	assert.Equal(t, llm.RoleUser, thread[0].Role)
}

func TestClip_CopiesSlice(t *testing.T) {
	window := makeWindow(3)
	clipped := Clip(window)

	clipped[0].Content = "mutated"
	assert.Equal(t, "turn 0", window[0].Content)
}

func TestClip_UnderLimit(t *testing.T) {
	assert.Len(t, Clip(makeWindow(7)), 7)
	assert.Len(t, Clip(makeWindow(10)), 10)
	assert.Len(t, Clip(makeWindow(25)), MaxWindow)
}
