package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/presensi-app/presensi-backend-go/internal/config"
	appHTTP "github.com/presensi-app/presensi-backend-go/internal/handler/http"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/clock"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/cron"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/database"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/jwt"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/storage"
	"github.com/presensi-app/presensi-backend-go/internal/repository/postgresql"
	attendanceService "github.com/presensi-app/presensi-backend-go/internal/service/attendance"
	authService "github.com/presensi-app/presensi-backend-go/internal/service/auth"
	"github.com/presensi-app/presensi-backend-go/internal/service/file"
	leaveService "github.com/presensi-app/presensi-backend-go/internal/service/leave"
	noticeService "github.com/presensi-app/presensi-backend-go/internal/service/notice"
	reportService "github.com/presensi-app/presensi-backend-go/internal/service/report"
	userService "github.com/presensi-app/presensi-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	clk := clock.NewSystem(cfg.App.Timezone)

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	noticeRepo := postgresql.NewNoticeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}
	fileSvc := file.NewFileService(fileStorage)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, clk)
	userSvc := userService.NewUserService(userRepo, fileSvc)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, userRepo, fileSvc)
	noticeSvc := noticeService.NewNoticeService(noticeRepo, clk)
	reportSvc := reportService.NewReportService(attendanceRepo, userRepo, clk)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	noticeHandler := appHTTP.NewNoticeHandler(noticeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		jwtService,
		clk,
		authHandler,
		attendanceHandler,
		userHandler,
		leaveHandler,
		noticeHandler,
		reportHandler,
	)

	scheduler := cron.NewScheduler(clk)
	cron.NewAttendanceJobs(attendanceSvc, clk).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
