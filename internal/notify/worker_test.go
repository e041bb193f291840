package notify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorker_Handle_MalformedMessageIsDropped(t *testing.T) {
	w := NewWorker(nil, nil, nopLogger{})

	// A nil error acks the message; returning an error would nack-drop a
	// payload that can never parse.
	require.NoError(t, w.handle([]byte("{not json")))
}
