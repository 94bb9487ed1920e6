package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/campman/internal/metrics"
	"github.com/hitoshi/campman/internal/middleware"
)

// HealthChecker はヘルスチェックで使用するストア疎通確認のインターフェース。
// インメモリストアの場合はnilでよい。
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	MetricsRecorder   middleware.HTTPMetricsRecorder
	MetricsGatherer   prometheus.Gatherer
	HealthChecker     HealthChecker
	Logger            *slog.Logger

	// サービス
	UserService         UserServiceInterface
	CampaignService     CampaignServiceInterface
	DonationService     DonationServiceInterface
	ExpenseService      ExpenseServiceInterface
	OutreachService     OutreachServiceInterface
	MessageService      MessageServiceInterface
	NotificationService NotificationServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	CORS → SecurityHeaders → Recovery → Caller → Logging → Metrics → RateLimit(General)
//
// 書き込みルートには書き込み専用レート制限を追加で適用する。
// /health と /metrics はレート制限の外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewCallerMiddleware())
	if deps.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	}
	if deps.MetricsRecorder != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.MetricsRecorder))
	}

	userHandler := NewUserHandler(deps.UserService)
	campaignHandler := NewCampaignHandler(deps.CampaignService)
	donationHandler := NewDonationHandler(deps.DonationService)
	expenseHandler := NewExpenseHandler(deps.ExpenseService)
	outreachHandler := NewOutreachHandler(deps.OutreachService)
	messageHandler := NewMessageHandler(deps.MessageService)
	notificationHandler := NewNotificationHandler(deps.NotificationService)

	// --- 運用エンドポイント（レート制限の外） ---

	r.Get("/health", newHealthHandler(deps.HealthChecker))

	if deps.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.MetricsGatherer))
	}

	// --- APIルート ---

	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.GeneralMiddleware())

		write := deps.RateLimiter.WriteMiddleware()

		// ユーザー管理
		r.Route("/api/users", func(r chi.Router) {
			r.With(write).Post("/", userHandler.Create)
			r.Get("/", userHandler.List)
			r.Get("/by-username/{username}", userHandler.GetByUsername)
			r.Get("/by-role/{role}", userHandler.GetByRole)
		})

		// キャンペーン管理とキャンペーン配下の一覧
		r.Route("/api/campaigns", func(r chi.Router) {
			r.With(write).Post("/", campaignHandler.Create)
			r.Get("/", campaignHandler.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", campaignHandler.GetByID)
				r.With(write).Put("/", campaignHandler.Update)

				r.Get("/donations", donationHandler.ListByCampaign)
				r.Get("/expenses", expenseHandler.ListByCampaign)
				r.Get("/outreach", outreachHandler.ListByCampaign)
				r.Get("/messages", messageHandler.ListByCampaign)
				r.Get("/notifications", notificationHandler.ListByCampaign)
			})
		})

		// 寄付
		r.Route("/api/donations", func(r chi.Router) {
			r.With(write).Post("/", donationHandler.Create)
			r.Get("/{id}", donationHandler.GetByID)
		})

		// 経費
		r.With(write).Post("/api/expenses", expenseHandler.Create)

		// 有権者働きかけ活動
		r.With(write).Post("/api/outreach", outreachHandler.Create)

		// セキュアメッセージ
		r.With(write).Post("/api/messages", messageHandler.Create)
	})

	return r
}

// newHealthHandler はヘルスチェックのハンドラーを返す。
// checkerが設定されている場合はストアへの疎通を確認する。
func newHealthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker != nil {
			if err := checker.PingContext(r.Context()); err != nil {
				slog.Error("health check failed", slog.String("error", err.Error()))
				http.Error(w, "unhealthy", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}
