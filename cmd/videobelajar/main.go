package main

import (
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"videobelajar/internal/config"
	"videobelajar/internal/http/server"
	applog "videobelajar/internal/log"
	"videobelajar/internal/repos"
)

//	@title			Course Management API
//	@version		1.0.0
//	@description	API untuk manajemen course video belajar
//	@contact.name	API Support
//	@contact.email	support@videobelajar.com
//	@host			localhost:3000
//	@BasePath		/
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal(err)
	}

	opts, err := dbOptions(cfg)
	if err != nil {
		log.Fatal(err)
	}
	db, err := repos.OpenDB(opts)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	app := server.New(cfg, db)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("[server] shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("[server] shutdown: %v", err)
		}
	}()

	log.Printf("[server] listening on :%s, docs at http://%s/api-docs", cfg.Port, cfg.DocsHost)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("[server] %v", err)
	}
}

func dbOptions(cfg config.Config) (repos.Options, error) {
	dsn := cfg.DBDSN
	switch {
	case dsn != "":
	case cfg.DBDriver == repos.DriverMySQL:
		var err error
		dsn, err = repos.MySQLDSN(repos.MySQLParams{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			Database: cfg.DBName,
			Timezone: cfg.DBTimezone,
		})
		if err != nil {
			return repos.Options{}, err
		}
	default:
		dsn = "videobelajar.db" // sqlite file in project root
	}
	return repos.Options{
		Driver:          cfg.DBDriver,
		DSN:             dsn,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		Bootstrap:       cfg.DBBootstrap,
		SeedDemo:        cfg.DBSeedDemo,
	}, nil
}
