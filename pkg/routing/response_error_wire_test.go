package routing

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-dep2p-routing/pkg/lib/wire"
)

// TestResponseError_WireRoundTrip 测试线上往返
func TestResponseError_WireRoundTrip(t *testing.T) {
	for _, before := range []*ResponseError{
		NewNoData(),
		NewInvalidRequest(),
		NewFailedToStoreData([]byte("payload")),
		NewFailedToStoreData(nil),
	} {
		data, err := wire.Marshal(before)
		require.NoError(t, err)

		after := new(ResponseError)
		require.NoError(t, wire.Unmarshal(data, after))
		assert.True(t, before.Equal(after), "%v != %v", before, after)
	}
}

func encodeRaw(t *testing.T, kind string, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc := wire.NewEncoder(&buf)
	require.NoError(t, enc.WriteTag(wire.TagResponseError))
	require.NoError(t, enc.WriteString(kind))
	require.NoError(t, enc.WriteBool(data != nil))
	if data != nil {
		require.NoError(t, enc.WriteBytes(data))
	}
	return buf.Bytes()
}

// TestResponseError_WireMalformed 测试畸形记录
func TestResponseError_WireMalformed(t *testing.T) {
	err := wire.Unmarshal(encodeRaw(t, "Teapot", nil), new(ResponseError))
	assert.ErrorIs(t, err, wire.ErrInvalidValue)
	assert.True(t, wire.IsCodecError(err))

	err = wire.Unmarshal(encodeRaw(t, "FailedToStoreData", nil), new(ResponseError))
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	// 非存储失败携带的数据被忽略
	out := new(ResponseError)
	require.NoError(t, wire.Unmarshal(encodeRaw(t, "NoData", []byte{1}), out))
	assert.True(t, out.Equal(NewNoData()))
}

// TestResponseError_EncodeInvalidKind 测试零值不能编码
func TestResponseError_EncodeInvalidKind(t *testing.T) {
	_, err := wire.Marshal(new(ResponseError))
	assert.ErrorIs(t, err, wire.ErrInvalidValue)
}

// TestResponseErrorKind 测试注册描述
func TestResponseErrorKind(t *testing.T) {
	reg := wire.NewRegistry()
	require.NoError(t, reg.RegisterAll(ResponseErrorKind()))

	data, err := wire.Marshal(NewFailedToStoreData([]byte{4, 5}))
	require.NoError(t, err)
	rec, err := reg.DecodeAny(wire.NewDecoder(bytes.NewReader(data)))
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 5}, rec.(*ResponseError).Data())
}
