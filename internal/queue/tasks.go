package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"github.com/lumie-registry/internal/constants"
)

// OrderTimeoutCancelPayload 订单超时取消任务负载
type OrderTimeoutCancelPayload struct {
	OrderNo string `json:"order_no"`
}

// NewOrderTimeoutCancelTask 构造订单超时取消任务
func NewOrderTimeoutCancelTask(orderNo string) (*asynq.Task, error) {
	payload, err := json.Marshal(OrderTimeoutCancelPayload{OrderNo: orderNo})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskOrderTimeoutCancel, payload), nil
}
