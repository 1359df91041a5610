package layout

import "github.com/google/uuid"

// 页面积木类型
const (
	BlockTypeHero      = "hero"
	BlockTypeMessage   = "message"
	BlockTypeCountdown = "countdown"
	BlockTypeGifts     = "gifts"
	BlockTypeMessages  = "messages"
	BlockTypeGallery   = "gallery"
	BlockTypeEventInfo = "event-info"
)

var knownBlockTypes = map[string]bool{
	BlockTypeHero:      true,
	BlockTypeMessage:   true,
	BlockTypeCountdown: true,
	BlockTypeGifts:     true,
	BlockTypeMessages:  true,
	BlockTypeGallery:   true,
	BlockTypeEventInfo: true,
}

// IsKnownBlockType 判断积木类型是否受支持
func IsKnownBlockType(blockType string) bool {
	return knownBlockTypes[blockType]
}

// Block 页面积木（order 仅作排序键，不保证连续）
type Block struct {
	ID      string                 `json:"id"`
	Type    string                 `json:"type"`
	Order   int                    `json:"order"`
	Enabled bool                   `json:"enabled"`
	Config  map[string]interface{} `json:"config"`
}

// NewBlock 按类型创建带默认配置的积木
func NewBlock(blockType string, order int) Block {
	return Block{
		ID:      uuid.NewString(),
		Type:    blockType,
		Order:   order,
		Enabled: true,
		Config:  DefaultBlockConfig(blockType),
	}
}

// DefaultBlockConfig 返回各类型积木的默认配置
func DefaultBlockConfig(blockType string) map[string]interface{} {
	switch blockType {
	case BlockTypeHero:
		return map[string]interface{}{
			"title":    "Meu Evento Especial",
			"subtitle": "",
			"imageUrl": "",
		}
	case BlockTypeMessage:
		return map[string]interface{}{
			"title": "Nossa História",
			"body":  "",
		}
	case BlockTypeCountdown:
		return map[string]interface{}{
			"title":      "Contagem Regressiva",
			"targetDate": "",
		}
	case BlockTypeGifts:
		return map[string]interface{}{
			"title": "Escolha um Presente",
		}
	case BlockTypeMessages:
		return map[string]interface{}{
			"title":        "Recados Especiais",
			"showPublicly": true,
		}
	case BlockTypeGallery:
		return map[string]interface{}{
			"title":  "Galeria de Fotos",
			"images": []interface{}{},
		}
	case BlockTypeEventInfo:
		return map[string]interface{}{
			"title":    "Informações do Evento",
			"date":     "",
			"location": "",
			"details":  "",
		}
	}
	return map[string]interface{}{}
}

// MergeConfig 浅合并配置（仅覆盖传入的键）
func (b *Block) MergeConfig(patch map[string]interface{}) {
	if b.Config == nil {
		b.Config = map[string]interface{}{}
	}
	for key, value := range patch {
		b.Config[key] = value
	}
}
