package constants

// 费用承担模式
const (
	// FeeModePassToGuest 平台费转嫁给客人（客人支付 base + fee）
	FeeModePassToGuest = "PASS_TO_GUEST"
	// FeeModeAbsorb 主人承担平台费（客人支付 base，主人到账 base - fee）
	FeeModeAbsorb = "ABSORB"
)

// DefaultFeePercent 默认平台费率（百分比），结账报价与后台预估共用同一来源
const DefaultFeePercent = "7.99"

// 订单状态
const (
	OrderStatusPending    = "PENDING"
	OrderStatusPaid       = "PAID"
	OrderStatusAuthorized = "AUTHORIZED"
	OrderStatusCanceled   = "CANCELED"
	OrderStatusFailed     = "FAILED"
	OrderStatusRefunded   = "REFUNDED"
)

// 礼物清单限制
const (
	// MaxGiftsPerList 每个清单最多持有的启用礼物数量
	MaxGiftsPerList = 100
	// DuplicateNameSuffix 复制礼物时追加的名称后缀
	DuplicateNameSuffix = " (cópia)"
)

// 公开页渲染限制
const (
	// PublicGiftPreviewLimit 礼物块内联展示的最大礼物数
	PublicGiftPreviewLimit = 6
	// PublicMessagePreviewLimit 留言块内联展示的最大留言数
	PublicMessagePreviewLimit = 4
)

// 队列相关
const (
	// QueueDefault 默认队列名称
	QueueDefault = "default"
	// TaskOrderTimeoutCancel 待支付订单超时取消任务
	TaskOrderTimeoutCancel = "order:timeout_cancel"
)

// 验证码场景
const (
	CaptchaSceneLogin    = "login"
	CaptchaSceneRegister = "register"
)
