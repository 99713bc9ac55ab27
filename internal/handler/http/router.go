package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/presensi-app/presensi-backend-go/internal/handler/http/middleware"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/clock"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	clk clock.Clock,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	userHandler UserHandler,
	leaveHandler LeaveHandler,
	noticeHandler NoticeHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presensi"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Get("/server-time", ServerTime(clk))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Get("/today", attendanceHandler.Today)
				r.Get("/history", attendanceHandler.History)
				r.Get("/summary/weekly", reportHandler.MyWeekly)
				r.Get("/summary/monthly", reportHandler.MyMonthly)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/recompute", attendanceHandler.Recompute)
				})
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", userHandler.GetProfile)
				r.Put("/", userHandler.UpdateProfile)
				r.Put("/password", userHandler.ChangePassword)
				r.Post("/photo", userHandler.UploadPhoto)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/my", leaveHandler.ListMy)
				r.Post("/{id}/attachment", leaveHandler.Attach)
				r.Post("/{id}/cancel", leaveHandler.Cancel)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", leaveHandler.List)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/notices", func(r chi.Router) {
				r.Get("/", noticeHandler.List)
				r.Get("/{id}", noticeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", noticeHandler.Create)
					r.Put("/{id}", noticeHandler.Update)
					r.Delete("/{id}", noticeHandler.Delete)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", userHandler.List)
					r.Post("/", userHandler.Create)
					r.Get("/{id}", userHandler.Get)
					r.Put("/{id}/role", userHandler.UpdateRole)
					r.Post("/{id}/deactivate", userHandler.Deactivate)
					r.Post("/{id}/reactivate", userHandler.Reactivate)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/today", reportHandler.Today)
					r.Get("/weekly", reportHandler.Weekly)
					r.Get("/monthly", reportHandler.Monthly)
					r.Get("/weekly/status", reportHandler.WeeklyStatusCounts)
					r.Get("/monthly/status", reportHandler.MonthlyStatusCounts)
					r.Get("/users/{id}/weekly", reportHandler.UserWeekly)
					r.Get("/users/{id}/monthly", reportHandler.UserMonthly)
				})
			})
		})
	})
	return r
}
