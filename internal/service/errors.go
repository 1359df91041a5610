package service

import "errors"

// 服务层哨兵错误，由 HTTP 层映射为响应码
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrSlugTaken          = errors.New("slug already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidCaptcha     = errors.New("invalid captcha")
	ErrWeakPassword       = errors.New("password does not meet the policy")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrListNotFound    = errors.New("gift list not found")
	ErrGiftNotFound    = errors.New("gift not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrMessageNotFound = errors.New("message not found")

	ErrInvalidArgument     = errors.New("invalid argument")
	ErrInvalidQuantity     = errors.New("quantity must be a positive integer")
	ErrInvalidFeeMode      = errors.New("unknown fee mode")
	ErrInvalidPrice        = errors.New("price must be positive")
	ErrGiftInactive        = errors.New("gift is not available for purchase")
	ErrGiftCapacityReached = errors.New("gift list reached its capacity")
	ErrInsufficientStock   = errors.New("not enough quantity available")
	ErrGiftHasPaidOrders   = errors.New("gift has confirmed orders")
	ErrOrderTransition     = errors.New("order status transition not allowed")
	ErrWebhookSignature    = errors.New("webhook signature mismatch")
)
