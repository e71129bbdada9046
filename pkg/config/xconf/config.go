package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 配置格式
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Config 已加载的配置。
// 基础读取操作通过 Client() 返回的 koanf 实例完成。
type Config interface {
	// Client 返回当前的 koanf 快照。Reload 之后旧快照仍可读，但不再更新。
	Client() *koanf.Koanf

	// Unmarshal 将 path 下的配置反序列化到 target，path 为空时取整个配置。
	Unmarshal(path string, target any) error

	// Reload 重新读取配置文件。解析失败时保留旧配置。
	Reload() error

	// Path 返回配置文件路径，从字节创建时为空。
	Path() string

	// Format 返回配置格式
	Format() Format
}

type config struct {
	current atomic.Pointer[koanf.Koanf]
	reload  sync.Mutex
	path    string
	format  Format
	opts    *options
}

// New 从文件加载配置，格式由扩展名决定。空文件得到空配置。
func New(path string, opts ...Option) (Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	c := &config{path: path, format: format, opts: applyOptions(opts)}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	k, err := c.build(data)
	if err != nil {
		return nil, err
	}
	c.current.Store(k)
	return c, nil
}

// NewFromBytes 从内存数据加载配置，需显式指定格式。
func NewFromBytes(data []byte, format Format, opts ...Option) (Config, error) {
	if !format.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	c := &config{format: format, opts: applyOptions(opts)}
	k, err := c.build(data)
	if err != nil {
		return nil, err
	}
	c.current.Store(k)
	return c, nil
}

// FormatOf 根据文件扩展名返回配置格式。
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}

func (f Format) valid() bool {
	return f == FormatYAML || f == FormatJSON
}

func (f Format) parser() koanf.Parser {
	if f == FormatJSON {
		return json.Parser()
	}
	return yaml.Parser()
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (c *config) build(data []byte) (*koanf.Koanf, error) {
	k := koanf.New(c.opts.delim)
	for key, v := range c.opts.defaults {
		if err := k.Set(key, v); err != nil {
			return nil, fmt.Errorf("%w: default %q: %w", ErrParseFailed, key, err)
		}
	}
	if len(data) == 0 {
		return k, nil
	}
	if err := k.Load(rawbytes.Provider(data), c.format.parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return k, nil
}

func (c *config) Client() *koanf.Koanf {
	return c.current.Load()
}

func (c *config) Unmarshal(path string, target any) error {
	err := c.current.Load().UnmarshalWithConf(path, target, koanf.UnmarshalConf{Tag: c.opts.tag})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return nil
}

func (c *config) Reload() error {
	if c.path == "" {
		return ErrReloadUnsupported
	}
	c.reload.Lock()
	defer c.reload.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	k, err := c.build(data)
	if err != nil {
		return err
	}
	c.current.Store(k)
	return nil
}

func (c *config) Path() string   { return c.path }
func (c *config) Format() Format { return c.format }
