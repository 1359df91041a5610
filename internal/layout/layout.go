package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

var (
	// ErrUnknownBlockType 不支持的积木类型
	ErrUnknownBlockType = errors.New("unknown block type")
	// ErrInvalidReorder 重排序列不是现有积木的完整排列
	ErrInvalidReorder = errors.New("reorder ids are not a permutation of existing blocks")
	// ErrUnknownFont 字体不在可用字体列表内
	ErrUnknownFont = errors.New("font not in the available palette")
)

// Layout 页面布局（积木集合、主题与可选自定义样式）
type Layout struct {
	Blocks      []Block `json:"blocks"`
	Theme       Theme   `json:"theme"`
	CustomStyle string  `json:"customStyle"`
}

// Empty 返回新清单的初始布局：没有积木，主题取默认值
func Empty() Layout {
	return Layout{
		Blocks: []Block{},
		Theme:  DefaultTheme(),
	}
}

// Default 返回编辑器的起始模板布局，种子数据与演示页面使用
func Default() Layout {
	return Layout{
		Blocks: []Block{
			NewBlock(BlockTypeHero, 1),
			NewBlock(BlockTypeMessage, 2),
			NewBlock(BlockTypeCountdown, 3),
			NewBlock(BlockTypeGifts, 4),
			NewBlock(BlockTypeMessages, 5),
			NewBlock(BlockTypeEventInfo, 6),
		},
		Theme: DefaultTheme(),
	}
}

// Decode 从持久化 JSON 还原布局，空输入回落到初始布局
func Decode(blocksRaw, themeRaw []byte) (Layout, error) {
	result := Empty()
	if len(blocksRaw) > 0 && string(blocksRaw) != "null" {
		var blocks []Block
		if err := json.Unmarshal(blocksRaw, &blocks); err != nil {
			return Layout{}, fmt.Errorf("decode blocks failed: %w", err)
		}
		result.Blocks = blocks
	}
	if len(themeRaw) > 0 && string(themeRaw) != "null" {
		var theme Theme
		if err := json.Unmarshal(themeRaw, &theme); err != nil {
			return Layout{}, fmt.Errorf("decode theme failed: %w", err)
		}
		result.Theme = DefaultTheme().Merge(theme)
	}
	return result, nil
}

// EncodeBlocks 序列化积木列表
func (l *Layout) EncodeBlocks() ([]byte, error) {
	return json.Marshal(l.Blocks)
}

// EncodeTheme 序列化主题
func (l *Layout) EncodeTheme() ([]byte, error) {
	return json.Marshal(l.Theme)
}

// SortedBlocks 按 order 升序返回积木副本（order 相同按原顺序稳定排列）
func (l *Layout) SortedBlocks() []Block {
	blocks := make([]Block, len(l.Blocks))
	copy(blocks, l.Blocks)
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Order < blocks[j].Order
	})
	return blocks
}

// FindBlock 按 ID 查找积木
func (l *Layout) FindBlock(id string) (*Block, bool) {
	for i := range l.Blocks {
		if l.Blocks[i].ID == id {
			return &l.Blocks[i], true
		}
	}
	return nil, false
}

// AddBlock 追加一块新积木并返回它。新积木 order 取当前数量加一，
// 配置为空，展示默认值在渲染时补齐。同类型积木允许重复。
// 类型必须来自固定的积木面板，未知类型返回 ErrUnknownBlockType。
func (l *Layout) AddBlock(blockType string) (Block, error) {
	if !IsKnownBlockType(blockType) {
		return Block{}, fmt.Errorf("%w: %s", ErrUnknownBlockType, blockType)
	}
	block := Block{
		ID:      uuid.NewString(),
		Type:    blockType,
		Order:   len(l.Blocks) + 1,
		Enabled: true,
		Config:  map[string]interface{}{},
	}
	l.Blocks = append(l.Blocks, block)
	return block, nil
}

// RemoveBlock 删除指定积木，不存在时静默忽略
func (l *Layout) RemoveBlock(id string) bool {
	for i := range l.Blocks {
		if l.Blocks[i].ID == id {
			l.Blocks = append(l.Blocks[:i], l.Blocks[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateBlockConfig 合并更新积木配置，不存在时静默忽略
func (l *Layout) UpdateBlockConfig(id string, patch map[string]interface{}) bool {
	block, ok := l.FindBlock(id)
	if !ok {
		return false
	}
	block.MergeConfig(patch)
	return true
}

// SetBlockEnabled 开关积木可见性，不存在时静默忽略
func (l *Layout) SetBlockEnabled(id string, enabled bool) bool {
	block, ok := l.FindBlock(id)
	if !ok {
		return false
	}
	block.Enabled = enabled
	return true
}

// Reorder 按给定 ID 序列重排积木并重编为连续 order（1..N）。
// 序列必须恰好覆盖现有全部积木，否则返回 ErrInvalidReorder。
func (l *Layout) Reorder(ids []string) error {
	if len(ids) != len(l.Blocks) {
		return ErrInvalidReorder
	}
	position := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, dup := position[id]; dup {
			return ErrInvalidReorder
		}
		position[id] = i + 1
	}
	for i := range l.Blocks {
		if _, ok := position[l.Blocks[i].ID]; !ok {
			return ErrInvalidReorder
		}
	}
	for i := range l.Blocks {
		l.Blocks[i].Order = position[l.Blocks[i].ID]
	}
	sort.SliceStable(l.Blocks, func(i, j int) bool {
		return l.Blocks[i].Order < l.Blocks[j].Order
	})
	return nil
}
