package response

// AppError 带业务码的错误，供 handler 与中间件传递
type AppError struct {
	Code int
	Msg  string
	Err  error
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap 支持 errors.Is / errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError 创建业务错误
func NewAppError(code int, msg string, err error) *AppError {
	return &AppError{Code: code, Msg: msg, Err: err}
}
