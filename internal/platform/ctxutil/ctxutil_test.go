package ctxutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestDataRoundTrip(t *testing.T) {
	ctx := WithRequestData(context.Background(), &RequestData{UserID: "u1"})
	assert.Equal(t, "u1", UserID(ctx))
	assert.Equal(t, "", UserID(context.Background()))
}

func TestTraceDataMissing(t *testing.T) {
	assert.Nil(t, GetTraceData(context.Background()))
	ctx := WithTraceData(context.Background(), &TraceData{TraceID: "t", RequestID: "r"})
	assert.Equal(t, "r", GetTraceData(ctx).RequestID)
}
