package catalog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"

	"github.com/DiD92/wwyd/framework/wwyd"
)

var ErrHandNotFound = errors.New("hand not found")

// HandDefinition 题库中的一种手牌
type HandDefinition struct {
	Name         string         `mapstructure:"name" json:"name"`
	Kanji        string         `mapstructure:"kanji" json:"kanji,omitempty"`
	Description  string         `mapstructure:"description" json:"description,omitempty"`
	Restrictions RestrictionDoc `mapstructure:"restrictions" json:"restrictions"`
}

// Catalog 按名字索引的手牌定义
type Catalog struct {
	hands  []HandDefinition
	byName map[string]int
}

// Load 读取题库文件，格式由扩展名决定（通常是 .toml）
func Load(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return decode(v)
}

// Parse 从 reader 读取题库，format 为 viper 支持的类型，如 "toml"
func Parse(r io.Reader, format string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Catalog, error) {
	var hands []HandDefinition
	if err := v.UnmarshalKey("hand", &hands); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{byName: make(map[string]int, len(hands))}
	for _, h := range hands {
		if h.Name == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", len(c.hands))
		}
		key := strings.ToLower(h.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("duplicate hand %q in catalog", h.Name)
		}
		r, err := h.Restrictions.Resolve()
		if err != nil {
			return nil, fmt.Errorf("hand %q: %w", h.Name, err)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("hand %q: %w", h.Name, err)
		}
		c.byName[key] = len(c.hands)
		c.hands = append(c.hands, h)
	}
	return c, nil
}

// Get 名字不区分大小写
func (c *Catalog) Get(name string) (HandDefinition, bool) {
	i, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return HandDefinition{}, false
	}
	return c.hands[i], true
}

// Restrictions 取出并展开某个手牌的限制条件
func (c *Catalog) Restrictions(name string) (wwyd.Restrictions, error) {
	h, ok := c.Get(name)
	if !ok {
		return wwyd.Restrictions{}, fmt.Errorf("%w: %q", ErrHandNotFound, name)
	}
	return h.Restrictions.Resolve()
}

// List 按文件中的顺序返回
func (c *Catalog) List() []HandDefinition {
	out := make([]HandDefinition, len(c.hands))
	copy(out, c.hands)
	return out
}
