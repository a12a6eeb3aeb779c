// GET    /                     # описание сервиса
// GET    /health               # проверка (публичный)
// POST   /api/auth/login       # вход администратора (публичный)
// POST   /api/auth/register    # регистрация (только при ALLOW_REGISTRATION)
// GET    /api/members          # список (auth)
// GET    /api/members/{id}     # запись (auth)
// POST   /api/members          # создать (auth)
// PUT    /api/members/{id}     # обновить (auth)
// DELETE /api/members/{id}     # удалить (auth)
// GET    /api/schema           # активная схема (публичный)
// GET    /api/schema/history   # версии (auth)
// POST   /api/schema           # новая версия (auth)
// POST   /api/sync             # пакет с мобильного клиента (публичный)

package api

import (
	"churchdata/internal/app/server/api/http/apierror"
	authAPI "churchdata/internal/app/server/api/http/auth"
	healthAPI "churchdata/internal/app/server/api/http/health"
	memberAPI "churchdata/internal/app/server/api/http/member"
	"churchdata/internal/app/server/api/http/middleware"
	authMW "churchdata/internal/app/server/api/http/middleware/auth"
	"churchdata/internal/app/server/api/http/middleware/logger"
	schemaAPI "churchdata/internal/app/server/api/http/schema"
	syncAPI "churchdata/internal/app/server/api/http/sync"
	"churchdata/internal/app/server/config"
	"churchdata/internal/domain/admin"
	"churchdata/internal/domain/member"
	"churchdata/internal/domain/schema"
	"churchdata/internal/domain/session"
	"churchdata/internal/domain/sync"
	"churchdata/internal/infrastructure/storage"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

const (
	Title   = healthAPI.ServiceName
	Version = healthAPI.ServiceVersion
)

// Deps зависимости HTTP слоя. SchemaCache может быть nil.
type Deps struct {
	Config      *config.Config
	Storage     *storage.Storage
	SchemaCache schema.Cache
	Session     session.Servicer
	Log         *slog.Logger
}

type Handlers struct {
	Health *healthAPI.Handler
	Auth   *authAPI.Handler
	Member *memberAPI.Handler
	Schema *schemaAPI.Handler
	Sync   *syncAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(deps Deps) *chi.Mux {
	apierror.Install()

	mux := chi.NewMux()
	mux.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)
	mux.Use(chimw.RequestSize(deps.Config.Server.MaxBodyBytes))
	mux.NotFound(apierror.NotFound)
	mux.MethodNotAllowed(apierror.MethodNotAllowed)

	API := humachi.New(mux, HumaConfig())

	h := handlers(API, deps)
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.Member.SetupRoutes(API)
	h.Schema.SetupRoutes(API)
	h.Sync.SetupRoutes(API)

	return mux
}

// HumaConfig конфигурация OpenAPI. Ссылки $schema в ответы не добавляются.
func HumaConfig() huma.Config {
	cfg := huma.DefaultConfig(Title, Version)
	cfg.CreateHooks = nil
	cfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}
	return cfg
}

func handlers(api huma.API, deps Deps) *Handlers {
	log := deps.Log
	cfg := deps.Config

	loggerMW := logger.New(log)
	auth := authMW.New(api, deps.Session, log)
	middlewares := middleware.NewSet(auth.Middleware(), loggerMW.Middleware(), middleware.Recover(api, log))

	adminService := admin.NewService(deps.Storage.Admins, admin.NewCredentialsValidator(), log)
	memberService := member.NewService(deps.Storage.Members, log)
	schemaService := schema.NewService(deps.Storage.Schemas, deps.SchemaCache, log)
	syncService := sync.NewService(deps.Storage.Members, log)

	return &Handlers{
		Health: healthAPI.NewHandler(deps.Storage, log, middlewares.Public()),
		Auth:   authAPI.NewHandler(adminService, deps.Session, cfg.Auth.AllowRegistration, log, middlewares.Public()),
		Member: memberAPI.NewHandler(memberService, log, middlewares.Protected(), cfg.Server.MaxBodyBytes),
		Schema: schemaAPI.NewHandler(schemaService, log, middlewares.Public(), middlewares.Protected()),
		Sync:   syncAPI.NewHandler(syncService, log, middlewares.Public(), cfg.Server.MaxBodyBytes),
	}
}
