package wire

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/multierr"

	"github.com/dep2p/go-dep2p-routing/pkg/lib/log"
)

var logger = log.Logger("wire/registry")

// Factory 创建一个空记录用于解码
type Factory func() Record

// Kind 记录类型描述
//
// 协作方通过 Kind 向 Registry 声明自己分配的标签。
type Kind struct {
	Tag     Tag
	Name    string
	Factory Factory
}

type registryEntry struct {
	name    string
	factory Factory
}

// Registry 记录类型注册表
//
// 负责标签分配（拒绝重复使用）和按标签分派解码。并发安全。
type Registry struct {
	mu      sync.RWMutex
	entries map[Tag]registryEntry
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Tag]registryEntry)}
}

// Register 注册记录类型
//
// 标签为零、工厂为 nil、标签已被占用，或工厂创建的记录标签与 tag 不一致时返回错误。
func (r *Registry) Register(tag Tag, name string, factory Factory) error {
	if tag == 0 {
		return ErrZeroTag
	}
	if factory == nil {
		return fmt.Errorf("%w: %s", ErrNilFactory, name)
	}
	if got := factory().WireTag(); got != tag {
		return &TagMismatchError{Expected: tag, Actual: got}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[tag]; ok {
		logger.Debug("标签冲突", "tag", tag, "existing", existing.name, "name", name)
		return fmt.Errorf("%w: %s held by %q", ErrTagInUse, tag, existing.name)
	}
	r.entries[tag] = registryEntry{name: name, factory: factory}
	logger.Debug("注册记录类型", "tag", tag, "name", name)
	return nil
}

// RegisterAll 批量注册，返回所有失败的合并错误
//
// 单个失败不影响其他类型的注册。
func (r *Registry) RegisterAll(kinds ...Kind) error {
	var errs error
	for _, k := range kinds {
		if err := r.Register(k.Tag, k.Name, k.Factory); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("register %q: %w", k.Name, err))
		}
	}
	return errs
}

// Lookup 返回标签对应的记录类型名称
func (r *Registry) Lookup(tag Tag) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[tag]
	return e.name, ok
}

// Tags 返回已注册的标签（升序）
func (r *Registry) Tags() []Tag {
	r.mu.RLock()
	tags := make([]Tag, 0, len(r.entries))
	for t := range r.entries {
		tags = append(tags, t)
	}
	r.mu.RUnlock()
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// New 按标签创建空记录
func (r *Registry) New(tag Tag) (Record, error) {
	r.mu.RLock()
	e, ok := r.entries[tag]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}
	return e.factory(), nil
}

// DecodeAny 读取下一条记录，按标签分派到已注册的类型
//
// 流在记录之前干净结束时返回 io.EOF；未注册的标签返回包装 ErrUnknownTag 的 *DecodeError。
func (r *Registry) DecodeAny(dec *Decoder) (Record, error) {
	tag, err := dec.ReadTag()
	if err != nil {
		return nil, err
	}
	rec, err := r.New(tag)
	if err != nil {
		logger.Debug("未知记录标签", "tag", tag)
		return nil, decodeErr("tag", err)
	}
	if err := rec.DecodeFields(dec); err != nil {
		return nil, err
	}
	return rec, nil
}
