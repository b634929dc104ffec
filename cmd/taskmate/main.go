package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskmate/internal/auth"
	"taskmate/internal/bot"
	"taskmate/internal/config"
	"taskmate/internal/repository"
	"taskmate/internal/service"
	"taskmate/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	accountRepo := repository.NewAccountRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)

	avatarStore, err := storage.NewAvatarStore(cfg.MediaDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("avatar store: %v", err)
	}

	authSvc := auth.NewService(accountRepo, profileRepo, sessionRepo)
	checklistSvc := service.NewChecklistService(checklistRepo)
	taskSvc := service.NewTaskService(taskRepo, checklistRepo)
	commentSvc := service.NewCommentService(commentRepo, profileRepo)
	profileSvc := service.NewProfileService(profileRepo, avatarStore)
	inviteSvc := service.NewInviteService(invitationRepo, checklistRepo)
	digestSvc := service.NewDigestService(checklistRepo, taskRepo)

	telegramBot, err := bot.New(cfg.TelegramToken, authSvc, checklistSvc, taskSvc, commentSvc, profileSvc, inviteSvc, digestSvc, sessionRepo, &cfg)
	if err != nil {
		log.Fatalf("bot: %v", err)
	}

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleInterval(cfg.SweepInterval, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := telegramBot.SweepInvitations(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("sweep: %v", err)
		}
	}); err != nil {
		log.Fatalf("schedule sweep: %v", err)
	}
	if _, err := scheduler.ScheduleDaily(cfg.DigestTime, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := telegramBot.SendDailyDigests(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("digest: %v", err)
		}
	}); err != nil {
		log.Fatalf("schedule digest: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Println("Taskmate bot started.")
	if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
