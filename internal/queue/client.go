package queue

import (
	"time"

	"github.com/hibiken/asynq"

	"github.com/lumie-registry/internal/config"
	"github.com/lumie-registry/internal/constants"
	"github.com/lumie-registry/internal/logger"
)

// Client 异步任务入队客户端
type Client struct {
	client *asynq.Client
}

// BuildRedisOpt 从配置生成 asynq 的 Redis 连接参数
func BuildRedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// NewClient 创建入队客户端
func NewClient(cfg config.RedisConfig) *Client {
	return &Client{client: asynq.NewClient(BuildRedisOpt(cfg))}
}

// EnqueueOrderTimeoutCancel 在 delay 之后触发订单超时取消
func (c *Client) EnqueueOrderTimeoutCancel(orderNo string, delay time.Duration) error {
	task, err := NewOrderTimeoutCancelTask(orderNo)
	if err != nil {
		return err
	}
	info, err := c.client.Enqueue(task,
		asynq.Queue(constants.QueueDefault),
		asynq.ProcessIn(delay),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return err
	}
	logger.Debugw("enqueued order timeout cancel", "order_no", orderNo, "task_id", info.ID, "delay", delay)
	return nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	return c.client.Close()
}
