package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lumie-registry/internal/layout"
	"github.com/lumie-registry/internal/models"
	"github.com/lumie-registry/internal/repository"
)

// LayoutService 页面布局读写与积木操作
type LayoutService struct {
	layouts *repository.GormPageLayoutRepository
}

// NewLayoutService 创建布局服务
func NewLayoutService(layouts *repository.GormPageLayoutRepository) *LayoutService {
	return &LayoutService{layouts: layouts}
}

// GetLayout 读取清单布局；首次访问时落库一份初始布局（无积木，默认主题）
func (s *LayoutService) GetLayout(giftListID uint) (layout.Layout, error) {
	record, err := s.layouts.FindByGiftListID(giftListID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.createEmpty(giftListID)
		}
		return layout.Layout{}, err
	}
	l, err := layout.Decode(record.Blocks, record.Theme)
	if err != nil {
		return layout.Layout{}, err
	}
	l.CustomStyle = record.CustomStyle
	return l, nil
}

// SaveLayout 整份覆盖保存布局（后写覆盖先写）。
// 每块积木必须是受支持的类型；缺失 ID 的积木会补发新 ID。
func (s *LayoutService) SaveLayout(giftListID uint, l layout.Layout) (layout.Layout, error) {
	for i := range l.Blocks {
		if !layout.IsKnownBlockType(l.Blocks[i].Type) {
			return layout.Layout{}, fmt.Errorf("%w: %s", layout.ErrUnknownBlockType, l.Blocks[i].Type)
		}
		if l.Blocks[i].ID == "" {
			l.Blocks[i].ID = uuid.NewString()
		}
		if l.Blocks[i].Config == nil {
			l.Blocks[i].Config = map[string]interface{}{}
		}
	}
	l.Theme = layout.DefaultTheme().Merge(l.Theme)
	if err := l.Theme.Validate(); err != nil {
		return layout.Layout{}, err
	}
	if err := s.persist(giftListID, l); err != nil {
		return layout.Layout{}, err
	}
	return l, nil
}

// AddBlock 追加积木并返回完整布局
func (s *LayoutService) AddBlock(giftListID uint, blockType string) (layout.Layout, layout.Block, error) {
	l, err := s.GetLayout(giftListID)
	if err != nil {
		return layout.Layout{}, layout.Block{}, err
	}
	block, err := l.AddBlock(blockType)
	if err != nil {
		return layout.Layout{}, layout.Block{}, err
	}
	if err := s.persist(giftListID, l); err != nil {
		return layout.Layout{}, layout.Block{}, err
	}
	return l, block, nil
}

// RemoveBlock 删除积木，ID 不存在时不报错
func (s *LayoutService) RemoveBlock(giftListID uint, blockID string) (layout.Layout, error) {
	return s.mutate(giftListID, func(l *layout.Layout) error {
		l.RemoveBlock(blockID)
		return nil
	})
}

// UpdateBlockConfig 合并更新积木配置，ID 不存在时不报错
func (s *LayoutService) UpdateBlockConfig(giftListID uint, blockID string, patch map[string]interface{}) (layout.Layout, error) {
	return s.mutate(giftListID, func(l *layout.Layout) error {
		l.UpdateBlockConfig(blockID, patch)
		return nil
	})
}

// SetBlockEnabled 开关积木可见性，ID 不存在时不报错
func (s *LayoutService) SetBlockEnabled(giftListID uint, blockID string, enabled bool) (layout.Layout, error) {
	return s.mutate(giftListID, func(l *layout.Layout) error {
		l.SetBlockEnabled(blockID, enabled)
		return nil
	})
}

// ReorderBlocks 按 ID 序列重排积木并重编连续 order
func (s *LayoutService) ReorderBlocks(giftListID uint, ids []string) (layout.Layout, error) {
	return s.mutate(giftListID, func(l *layout.Layout) error {
		return l.Reorder(ids)
	})
}

// UpdateTheme 合并更新主题，合并结果须通过主题校验
func (s *LayoutService) UpdateTheme(giftListID uint, patch layout.Theme) (layout.Layout, error) {
	return s.mutate(giftListID, func(l *layout.Layout) error {
		merged := l.Theme.Merge(patch)
		if err := merged.Validate(); err != nil {
			return err
		}
		l.Theme = merged
		return nil
	})
}

func (s *LayoutService) mutate(giftListID uint, apply func(*layout.Layout) error) (layout.Layout, error) {
	l, err := s.GetLayout(giftListID)
	if err != nil {
		return layout.Layout{}, err
	}
	if err := apply(&l); err != nil {
		return layout.Layout{}, err
	}
	if err := s.persist(giftListID, l); err != nil {
		return layout.Layout{}, err
	}
	return l, nil
}

func (s *LayoutService) createEmpty(giftListID uint) (layout.Layout, error) {
	l := layout.Empty()
	if err := s.persist(giftListID, l); err != nil {
		return layout.Layout{}, err
	}
	return l, nil
}

func (s *LayoutService) persist(giftListID uint, l layout.Layout) error {
	blocksRaw, err := l.EncodeBlocks()
	if err != nil {
		return err
	}
	themeRaw, err := l.EncodeTheme()
	if err != nil {
		return err
	}

	record, err := s.layouts.FindByGiftListID(giftListID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		record = &models.PageLayout{GiftListID: giftListID}
	}
	record.Blocks = models.JSONRaw(blocksRaw)
	record.Theme = models.JSONRaw(themeRaw)
	record.CustomStyle = l.CustomStyle
	if record.ID == 0 {
		return s.layouts.Create(record)
	}
	return s.layouts.Save(record)
}
