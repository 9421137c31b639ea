package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadp "clubdocs-backend/internal/adapter/http"
	"clubdocs-backend/internal/adapter/middleware"
	"clubdocs-backend/internal/adapter/repository/mysql"
	"clubdocs-backend/internal/adapter/storage/disk"
	"clubdocs-backend/internal/config"
	"clubdocs-backend/internal/infrastructure/cache"
	"clubdocs-backend/internal/infrastructure/db"
	approvaluc "clubdocs-backend/internal/usecase/approval"
	commentuc "clubdocs-backend/internal/usecase/comment"
	documentuc "clubdocs-backend/internal/usecase/document"
	signinguc "clubdocs-backend/internal/usecase/signing"
	uploaduc "clubdocs-backend/internal/usecase/upload"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	store, err := disk.NewStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("object store: %v", err)
	}

	// repositories
	docRepo := mysql.NewDocumentRepository(gdb)
	sigRepo := mysql.NewSignatoryRepository(gdb)
	commentRepo := mysql.NewCommentRepository(gdb)
	activityRepo := mysql.NewActivityRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	// usecases
	docUC := documentuc.NewUsecase(docRepo, sigRepo, unit)
	signUC := signinguc.NewUsecase(unit)
	apprUC := approvaluc.NewUsecase(unit)
	commUC := commentuc.NewUsecase(docRepo, commentRepo, activityRepo, unit)
	upUC := uploaduc.NewUsecase(store)

	// handlers
	h := httpadp.NewHandler()
	docH := httpadp.NewDocumentHandler(docUC)
	signH := httpadp.NewSigningHandler(signUC)
	apprH := httpadp.NewApprovalHandler(apprUC)
	commH := httpadp.NewCommentHandler(commUC)
	upH := httpadp.NewUploadHandler(upUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// open surface
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.Static("/uploads", cfg.UploadDir)

	// authenticated surface
	session := middleware.SessionMiddleware(rdb, userRepo, time.Duration(cfg.SessionTTLSecs)*time.Second)
	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	api := e.Group("", session, idemp)
	api.POST("/uploads", upH.UploadFile)
	api.DELETE("/uploads", upH.RemoveUpload)

	api.POST("/documents", docH.CreateDocument)
	api.GET("/documents", docH.ListDocuments)
	api.GET("/documents/:document_id", docH.GetDocument)
	api.PATCH("/documents/:document_id/signatories/:signatory_id", signH.ToggleSignature)
	api.POST("/documents/:document_id/approval", apprH.DecideApproval)
	api.POST("/documents/:document_id/comments", commH.AddComment)
	api.GET("/documents/:document_id/comments", commH.ListComments)
	api.GET("/documents/:document_id/activity", commH.ListActivity)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
