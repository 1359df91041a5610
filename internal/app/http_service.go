package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lumie-registry/internal/logger"
	"github.com/lumie-registry/internal/provider"
	"github.com/lumie-registry/internal/router"
)

// HTTPService HTTP 服务生命周期
type HTTPService struct {
	server *http.Server
}

// NewHTTPService 装配路由并创建 HTTP 服务
func NewHTTPService(container *provider.Container) *HTTPService {
	engine := router.New(router.Options{
		Config:    container.Config,
		Cache:     container.Cache,
		Auth:      container.AuthService,
		Public:    container.PublicHandler,
		Dashboard: container.DashboardHandler,
	})
	return &HTTPService{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", container.Config.Server.Port),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start 启动监听（非阻塞）
func (s *HTTPService) Start() {
	go func() {
		logger.Infow("http server listening", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("http server stopped unexpectedly", "error", err)
		}
	}()
}

// Shutdown 优雅停机
func (s *HTTPService) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
