package response

// 业务响应码（HTTP 状态恒为 200，以 status_code 区分结果）
const (
	CodeOK           = 0
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeConflict     = 409
	CodeRateLimited  = 429
	CodeServerError  = 500
)
