package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSinkFunc_NilSafe(t *testing.T) {
	var f SinkFunc
	f.Notify(context.Background(), Notice{Kind: KindInfo, Message: "ignored"})
}

func TestHelpers_EmitToSink(t *testing.T) {
	var got []Notice
	sink := SinkFunc(func(_ context.Context, n Notice) { got = append(got, n) })

	ctx := context.Background()
	Success(ctx, sink, "saved")
	Error(ctx, sink, "rejected")
	Info(ctx, sink, "pending verification")

	assert.Equal(t, []Notice{
		{Kind: KindSuccess, Message: "saved"},
		{Kind: KindError, Message: "rejected"},
		{Kind: KindInfo, Message: "pending verification"},
	}, got)
}

func TestHelpers_NilSinkIsNoop(t *testing.T) {
	Success(context.Background(), nil, "nobody listening")
}
