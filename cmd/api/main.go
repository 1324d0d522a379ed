package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/talent-commerce-api/infrastructure/database/postgres"
	"github.com/vfg2006/talent-commerce-api/infrastructure/docstore"
	"github.com/vfg2006/talent-commerce-api/infrastructure/repository"
	"github.com/vfg2006/talent-commerce-api/internal/api"
	"github.com/vfg2006/talent-commerce-api/internal/config"
	"github.com/vfg2006/talent-commerce-api/internal/scheduler"
	"github.com/vfg2006/talent-commerce-api/internal/usecases/authenticating"
	"github.com/vfg2006/talent-commerce-api/internal/usecases/cataloging"
	"github.com/vfg2006/talent-commerce-api/internal/usecases/dashboarding"
	"github.com/vfg2006/talent-commerce-api/internal/usecases/recording"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	store, err := docstore.NewPostgresStore(ctx, pgConn, cfg.Database.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o armazenamento de documentos")
	}
	defer store.Close()

	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	catalogService := cataloging.NewService(store)
	recordService := recording.NewService(store)

	// Inicializa a visão reativa do painel: assina todas as coleções e
	// mantém o snapshot em memória
	view := dashboarding.NewView(store)
	if err := view.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar a visão do painel")
	}
	defer view.Close()

	// Inicializa o agendador de consolidação diária
	dailySummaryService := scheduler.NewDailySummaryService(store, cfg)
	if err := dailySummaryService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de consolidação diária")
	} else {
		logrus.Info("Agendador de consolidação diária iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		view,
		catalogService,
		recordService,
		authenticator,
		dailySummaryService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
