package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-dep2p-routing/pkg/routing"
	"github.com/dep2p/go-dep2p-routing/pkg/types"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

// TestRun_Usage 测试参数错误
func TestRun_Usage(t *testing.T) {
	_, err := runCmd(t, "")
	assert.ErrorIs(t, err, errUsage)

	_, err = runCmd(t, "", "frobnicate")
	assert.ErrorIs(t, err, errUsage)

	out, err := runCmd(t, "", "-version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

// TestRun_Gen 测试生成标识符
func TestRun_Gen(t *testing.T) {
	out, err := runCmd(t, "", "gen", "-n", "3")
	require.NoError(t, err)

	lines := strings.Fields(out)
	require.Len(t, lines, 3)
	for _, l := range lines {
		n, err := types.ParseName(l)
		require.NoError(t, err)
		assert.True(t, n.IsValid())
	}

	_, err = runCmd(t, "", "gen", "-n", "0")
	assert.Error(t, err)
}

// TestRun_Hash 测试内容标识符
func TestRun_Hash(t *testing.T) {
	want := types.HashName([]byte("hello")).String()

	out, err := runCmd(t, "hello", "hash", "-")
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimSpace(out))

	path := filepath.Join(t.TempDir(), "chunk")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))
	out, err = runCmd(t, "", "hash", path)
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimSpace(out))
}

// TestRun_Closer 测试距离比较
func TestRun_Closer(t *testing.T) {
	var a, b, target [types.NameLen]byte
	target[0] = 0x0f
	a[0] = 0x0e
	b[0] = 0xf0

	out, err := runCmd(t, "", "closer",
		types.NewName(a).String(), types.NewName(b).String(), types.NewName(target).String())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "true", lines[0])
	assert.Equal(t, "cpl(a,target)=7 cpl(b,target)=0", lines[1])

	_, err = runCmd(t, "", "closer", "x", "y")
	assert.Error(t, err)
}

// TestRun_EncodeDecode 测试编码后再解码
func TestRun_EncodeDecode(t *testing.T) {
	name := types.GenerateRandomName().String()

	hexName, err := runCmd(t, "", "encode-name", name)
	require.NoError(t, err)
	out, err := runCmd(t, "", "decode", strings.TrimSpace(hexName))
	require.NoError(t, err)
	assert.Equal(t, "name: "+name+"\n", out)

	hexOK, err := runCmd(t, "", "put-response", name, "chunk")
	require.NoError(t, err)
	out, err = runCmd(t, "", "decode", strings.TrimSpace(hexOK))
	require.NoError(t, err)
	assert.Contains(t, out, "put-data-response")
	assert.Contains(t, out, `ok payload="chunk"`)

	hexFail, err := runCmd(t, "", "put-response", "-error", "failed-to-store", name, "chunk")
	require.NoError(t, err)
	out, err = runCmd(t, "", "decode", strings.TrimSpace(hexFail))
	require.NoError(t, err)
	assert.Contains(t, out, "response error: failed to store data (5 bytes)")

	_, err = runCmd(t, "", "put-response", "-error", "teapot", name)
	assert.Error(t, err)
}

// TestRun_DecodeMalformed 测试畸形记录提升为序列化错误
func TestRun_DecodeMalformed(t *testing.T) {
	_, err := runCmd(t, "", "decode", "01")
	require.Error(t, err)
	assert.True(t, routing.IsKind(err, routing.KindSerialization))

	_, err = runCmd(t, "", "decode", "zz")
	assert.Error(t, err)
}

// TestRun_Config 测试配置文件
func TestRun_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"wire":{"max_field_size":8}}`), 0o600))

	name := types.GenerateRandomName().String()
	hexName, err := runCmd(t, "", "encode-name", name)
	require.NoError(t, err)

	// 64 字节字段超过 8 字节上限
	_, err = runCmd(t, "", "-config", path, "decode", strings.TrimSpace(hexName))
	require.Error(t, err)
	assert.True(t, routing.IsKind(err, routing.KindSerialization))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"log":{"level":"loud"}}`), 0o600))
	_, err = runCmd(t, "", "-config", bad, "gen")
	assert.Error(t, err)
}
