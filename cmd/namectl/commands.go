package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dep2p/go-dep2p-routing/internal/codec"
	"github.com/dep2p/go-dep2p-routing/pkg/lib/wire"
	"github.com/dep2p/go-dep2p-routing/pkg/messages"
	"github.com/dep2p/go-dep2p-routing/pkg/routing"
	"github.com/dep2p/go-dep2p-routing/pkg/types"
)

// command 子命令
type command struct {
	summary string
	run     func(e *env, args []string) error
}

var commandOrder = []string{"gen", "hash", "closer", "encode-name", "put-response", "decode"}

var commands = map[string]command{
	"gen":          {"生成随机标识符", runGen},
	"hash":         {"计算文件（- 为标准输入）的内容标识符", runHash},
	"closer":       {"比较 a 是否比 b 更接近 target", runCloser},
	"encode-name":  {"输出 Name 记录的十六进制编码", runEncodeName},
	"put-response": {"输出 PutDataResponse 记录的十六进制编码", runPutResponse},
	"decode":       {"解码十六进制记录", runDecode},
}

func newFlagSet(e *env, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func runGen(e *env, args []string) error {
	fs := newFlagSet(e, "gen")
	n := fs.Int("n", 1, "生成数量")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *n <= 0 {
		return fmt.Errorf("gen: -n must be positive, got %d", *n)
	}
	for i := 0; i < *n; i++ {
		fmt.Fprintln(e.stdout, types.GenerateRandomName())
	}
	return nil
}

func runHash(e *env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("hash: expected <file|->")
	}
	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(e.stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("hash: %w", err)
	}
	fmt.Fprintln(e.stdout, types.HashName(data))
	return nil
}

func runCloser(e *env, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("closer: expected <a> <b> <target>")
	}
	names := make([]types.Name, 3)
	for i, s := range args {
		n, err := types.ParseName(s)
		if err != nil {
			return fmt.Errorf("closer: argument %d: %w", i+1, err)
		}
		names[i] = n
	}
	a, b, target := names[0], names[1], names[2]
	fmt.Fprintln(e.stdout, types.CloserToTarget(a, b, target))
	fmt.Fprintf(e.stdout, "cpl(a,target)=%d cpl(b,target)=%d\n",
		types.CommonPrefixLen(a, target), types.CommonPrefixLen(b, target))
	return nil
}

func runEncodeName(e *env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("encode-name: expected <name>")
	}
	name, err := types.ParseName(args[0])
	if err != nil {
		return fmt.Errorf("encode-name: %w", err)
	}
	return withCodec(e.cfg, func(c *codec.Codec) error {
		return printRecord(e, c, &name)
	})
}

// responseErrors put-response -error 可选值
var responseErrors = map[string]func(payload []byte) *routing.ResponseError{
	"no-data":         func([]byte) *routing.ResponseError { return routing.NewNoData() },
	"invalid-request": func([]byte) *routing.ResponseError { return routing.NewInvalidRequest() },
	"failed-to-store": routing.NewFailedToStoreData,
}

func runPutResponse(e *env, args []string) error {
	fs := newFlagSet(e, "put-response")
	errKind := fs.String("error", "", "失败种类 (no-data/invalid-request/failed-to-store)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	rest := fs.Args()
	if len(rest) < 1 || len(rest) > 2 {
		return fmt.Errorf("put-response: expected <name> [payload]")
	}
	name, err := types.ParseName(rest[0])
	if err != nil {
		return fmt.Errorf("put-response: %w", err)
	}
	var payload []byte
	if len(rest) == 2 {
		payload = []byte(rest[1])
	}

	msg := messages.NewPutDataResponse(name, payload)
	if *errKind != "" {
		mk, ok := responseErrors[*errKind]
		if !ok {
			return fmt.Errorf("put-response: unknown error kind %q", *errKind)
		}
		msg = messages.NewPutDataFailure(name, mk(payload))
	}
	return withCodec(e.cfg, func(c *codec.Codec) error {
		return printRecord(e, c, msg)
	})
}

func runDecode(e *env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("decode: expected <hex>")
	}
	data, err := hex.DecodeString(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return withCodec(e.cfg, func(c *codec.Codec) error {
		rec, err := c.Decode(data)
		if err != nil {
			return routing.From(err)
		}
		kind, _ := c.Registry().Lookup(rec.WireTag())
		fmt.Fprintf(e.stdout, "%s: %s\n", kind, describe(rec))
		return nil
	})
}

func printRecord(e *env, c *codec.Codec, rec wire.Record) error {
	data, err := c.Encode(rec)
	if err != nil {
		return routing.From(err)
	}
	fmt.Fprintln(e.stdout, hex.EncodeToString(data))
	return nil
}

func describe(rec wire.Record) string {
	switch r := rec.(type) {
	case *types.Name:
		return r.String()
	case *routing.ResponseError:
		return r.Error()
	case *messages.PutDataResponse:
		if r.Data.IsOk() {
			return fmt.Sprintf("name=%s ok payload=%q", r.Name, r.Data.Payload)
		}
		return fmt.Sprintf("name=%s %s", r.Name, r.Data.Err)
	default:
		return fmt.Sprintf("%v", rec)
	}
}
