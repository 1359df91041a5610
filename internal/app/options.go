package app

// 运行模式：all 同时承载 HTTP 与任务执行；api / worker 各跑一半
const (
	ModeAll    = "all"
	ModeAPI    = "api"
	ModeWorker = "worker"
)

// Options 应用启动参数
type Options struct {
	ConfigPath string
	Mode       string
}

// Normalize 填补缺省值
func (o *Options) Normalize() {
	switch o.Mode {
	case ModeAll, ModeAPI, ModeWorker:
	default:
		o.Mode = ModeAll
	}
}
