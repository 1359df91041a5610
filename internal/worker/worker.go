package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/lumie-registry/internal/config"
	"github.com/lumie-registry/internal/constants"
	"github.com/lumie-registry/internal/logger"
	"github.com/lumie-registry/internal/queue"
	"github.com/lumie-registry/internal/service"
)

// Worker 异步任务执行器
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// New 创建任务执行器并注册处理函数
func New(redisCfg config.RedisConfig, queueCfg config.QueueConfig, orders *service.OrderService) *Worker {
	concurrency := queueCfg.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}
	server := asynq.NewServer(queue.BuildRedisOpt(redisCfg), asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			constants.QueueDefault: 1,
		},
		Logger: logger.S(),
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(constants.TaskOrderTimeoutCancel, newOrderTimeoutCancelHandler(orders))

	return &Worker{server: server, mux: mux}
}

// Start 启动执行器（非阻塞）
func (w *Worker) Start() error {
	return w.server.Start(w.mux)
}

// Shutdown 等待在途任务结束后停止
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func newOrderTimeoutCancelHandler(orders *service.OrderService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload queue.OrderTimeoutCancelPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("decode order timeout payload failed: %v: %w", err, asynq.SkipRetry)
		}
		canceled, err := orders.CancelExpiredOrder(payload.OrderNo)
		if err != nil {
			return err
		}
		if canceled {
			logger.Infow("canceled unpaid order after timeout", "order_no", payload.OrderNo)
		}
		return nil
	}
}
