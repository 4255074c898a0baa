package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "personal-assistant/internal/assistant/delivery/http"
	assistantRepo "personal-assistant/internal/assistant/repository/sqlite"
	assistantUC "personal-assistant/internal/assistant/usecase"
	"personal-assistant/internal/suggest"
)

// setupAssistantDomain initializes the assistant domain and registers its
// routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h)
func (srv *HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	repo := assistantRepo.New(srv.db, srv.l)

	// 2. UseCase
	suggester := suggest.New(srv.l, repo, srv.dates, srv.suggestCfg, nil)
	uc := assistantUC.New(srv.l, srv.processor, repo, suggester, srv.calendar, srv.dates, srv.cacheSize, srv.timezone, nil)

	// 3. HTTP Handler
	h := assistantHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/assistant/*
	assistantHTTP.RegisterRoutes(api.Group("/assistant"), h)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
