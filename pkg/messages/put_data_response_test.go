package messages

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-dep2p-routing/pkg/lib/wire"
	"github.com/dep2p/go-dep2p-routing/pkg/routing"
	"github.com/dep2p/go-dep2p-routing/pkg/types"
)

// ============================================================================
//                              往返测试
// ============================================================================

// TestPutDataResponse_RoundTrip 测试成功与失败两种结果的往返
func TestPutDataResponse_RoundTrip(t *testing.T) {
	name := types.GenerateRandomName()
	tests := []struct {
		name string
		msg  *PutDataResponse
	}{
		{"成功", NewPutDataResponse(name, []byte("stored chunk"))},
		{"空载荷", NewPutDataResponse(name, nil)},
		{"无数据", NewPutDataFailure(name, routing.NewNoData())},
		{"无效请求", NewPutDataFailure(name, routing.NewInvalidRequest())},
		{"存储失败", NewPutDataFailure(name, routing.NewFailedToStoreData([]byte{0xde, 0xad}))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := wire.Marshal(tt.msg)
			require.NoError(t, err)

			got := new(PutDataResponse)
			require.NoError(t, wire.Unmarshal(data, got))
			assert.True(t, tt.msg.Equal(got), "%v != %v", tt.msg, got)
			assert.Equal(t, name, got.Name)
		})
	}
}

// TestPutDataResponse_FailureCarriesRejectedData 测试被拒绝的数据可在接收端检查
func TestPutDataResponse_FailureCarriesRejectedData(t *testing.T) {
	msg := NewPutDataFailure(types.HashName([]byte("x")), routing.NewFailedToStoreData([]byte("x")))
	data, err := wire.Marshal(msg)
	require.NoError(t, err)

	got := new(PutDataResponse)
	require.NoError(t, wire.Unmarshal(data, got))
	require.False(t, got.Data.IsOk())

	_, err = got.Data.Unpack()
	assert.True(t, errors.Is(err, routing.ErrFailedToStoreData))
	assert.Equal(t, []byte("x"), got.Data.Err.Data())
}

// TestPutDataResponse_PlaceholderDiscarded 测试失败时载荷占位被丢弃
func TestPutDataResponse_PlaceholderDiscarded(t *testing.T) {
	name := types.GenerateRandomName()

	// 手工构造：载荷槽位非空，同时携带错误
	var buf bytes.Buffer
	enc := wire.NewEncoder(&buf)
	require.NoError(t, enc.WriteTag(wire.TagPutDataResponse))
	require.NoError(t, wire.Encode(enc, &name))
	require.NoError(t, enc.WriteBytes([]byte("leftover")))
	require.NoError(t, enc.WriteBool(true))
	require.NoError(t, wire.Encode(enc, routing.NewNoData()))

	got := new(PutDataResponse)
	require.NoError(t, wire.Unmarshal(buf.Bytes(), got))
	assert.False(t, got.Data.IsOk())
	assert.Nil(t, got.Data.Payload)
	assert.True(t, got.Data.Err.Equal(routing.NewNoData()))

	// 编码时失败结果的载荷不会写出
	withPayload := &PutDataResponse{Name: name, Data: Result{Payload: []byte("ignored"), Err: routing.NewNoData()}}
	a, err := wire.Marshal(withPayload)
	require.NoError(t, err)
	b, err := wire.Marshal(NewPutDataFailure(name, routing.NewNoData()))
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

// TestPutDataResponse_Malformed 测试畸形输入
func TestPutDataResponse_Malformed(t *testing.T) {
	data, err := wire.Marshal(NewPutDataFailure(types.GenerateRandomName(), routing.NewInvalidRequest()))
	require.NoError(t, err)

	for i := 0; i < len(data); i++ {
		err := wire.Unmarshal(data[:i], new(PutDataResponse))
		require.Error(t, err, "prefix %d", i)
		assert.True(t, wire.IsCodecError(err), "prefix %d: %v", i, err)
	}

	// 内嵌 Name 长度错误
	var buf bytes.Buffer
	enc := wire.NewEncoder(&buf)
	require.NoError(t, enc.WriteTag(wire.TagPutDataResponse))
	require.NoError(t, enc.WriteTag(wire.TagName))
	require.NoError(t, enc.WriteBytes(make([]byte, 32)))
	err = wire.Unmarshal(buf.Bytes(), new(PutDataResponse))
	var sme *wire.SizeMismatchError
	require.ErrorAs(t, err, &sme)
	assert.Equal(t, types.NameLen, sme.Expected)
	assert.Equal(t, 32, sme.Actual)

	// 边界提升为序列化错误
	assert.Equal(t, routing.KindSerialization, routing.From(err).Kind())
}

// ============================================================================
//                              注册表
// ============================================================================

// TestRegisterCore 测试核心记录注册与分派
func TestRegisterCore(t *testing.T) {
	reg := wire.NewRegistry()
	require.NoError(t, RegisterCore(reg))
	assert.Equal(t, []wire.Tag{wire.TagName, wire.TagPutDataResponse, wire.TagResponseError}, reg.Tags())

	// 再次注册全部冲突
	err := RegisterCore(reg)
	assert.ErrorIs(t, err, wire.ErrTagInUse)

	name := types.GenerateRandomName()
	var stream bytes.Buffer
	enc := wire.NewEncoder(&stream)
	records := []wire.Record{
		&name,
		routing.NewFailedToStoreData([]byte{1}),
		NewPutDataResponse(name, []byte{2}),
	}
	for _, rec := range records {
		require.NoError(t, wire.Encode(enc, rec))
	}

	dec := wire.NewDecoder(&stream)
	got0, err := reg.DecodeAny(dec)
	require.NoError(t, err)
	assert.Equal(t, name, *got0.(*types.Name))

	got1, err := reg.DecodeAny(dec)
	require.NoError(t, err)
	assert.True(t, got1.(*routing.ResponseError).Equal(routing.NewFailedToStoreData([]byte{1})))

	got2, err := reg.DecodeAny(dec)
	require.NoError(t, err)
	assert.True(t, got2.(*PutDataResponse).Equal(NewPutDataResponse(name, []byte{2})))
}

// TestResult 测试 Result 辅助方法
func TestResult(t *testing.T) {
	ok := Ok([]byte{1})
	assert.True(t, ok.IsOk())
	p, err := ok.Unpack()
	assert.NoError(t, err)
	assert.Equal(t, []byte{1}, p)

	fail := Fail(routing.NewNoData())
	assert.False(t, fail.IsOk())
	p, err = fail.Unpack()
	assert.Nil(t, p)
	assert.ErrorIs(t, err, routing.ErrNoData)

	assert.False(t, ok.Equal(fail))
	assert.True(t, Ok(nil).Equal(Ok([]byte{})))
	assert.False(t, Fail(routing.NewNoData()).Equal(Fail(routing.NewInvalidRequest())))
}
