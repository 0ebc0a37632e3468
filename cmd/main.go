package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mayank7tyagi/FitJourney-App/config"
	"github.com/mayank7tyagi/FitJourney-App/routes"
	"github.com/mayank7tyagi/FitJourney-App/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		logrus.Fatalf("open database: %v", err)
	}

	ctx := context.Background()

	var uploader *utils.S3Uploader
	if cfg.S3Bucket != "" {
		uploader, err = utils.NewS3Uploader(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.CloudfrontURL)
		if err != nil {
			logrus.Fatalf("init S3 uploader: %v", err)
		}
	} else {
		logrus.Warn("S3_BUCKET not set, avatar uploads disabled")
	}

	var mailer *utils.Mailer
	if cfg.SESEmail != "" {
		mailer, err = utils.NewMailer(ctx, cfg.AWSRegion, cfg.SESEmail)
		if err != nil {
			logrus.Fatalf("init SES mailer: %v", err)
		}
	} else {
		logrus.Warn("SES_EMAIL not set, password reset mails disabled")
	}

	r := routes.SetupRouter(cfg, db, uploader, mailer)

	logrus.Infof("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
