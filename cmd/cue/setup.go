package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/cuebot/internal/config"
	"github.com/sandevgo/cuebot/internal/core"
	"github.com/sandevgo/cuebot/internal/providers/llm"
	"github.com/sandevgo/cuebot/internal/providers/recognition"
	"github.com/sandevgo/cuebot/internal/providers/stt"
	"github.com/sandevgo/cuebot/internal/service/session"
	"github.com/sandevgo/cuebot/internal/storage/sqlite"
	"github.com/sandevgo/cuebot/internal/transport/httpapi"
	"github.com/sandevgo/cuebot/internal/transport/mcpsrv"
	"github.com/sandevgo/cuebot/pkg/log"
	"github.com/sandevgo/cuebot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	analysisCfg := config.NewAnalysisConfig(ctx)
	reasonerCfg := config.NewReasonerConfig(ctx)
	sttCfg := config.NewSTTConfig(ctx)
	recognitionCfg := config.NewRecognitionConfig(ctx)

	// 2. Storage (transcript archive)
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))
	archive := sqlite.NewTranscript(db)

	// 3. Reasoning provider
	reasoner, err := llm.NewReasoner(ctx, reasonerCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize reasoning provider")
	}

	// 4. Recognition collaborator
	var recognizer core.Recognizer
	if recognitionCfg.Enabled {
		recognizer = recognition.NewClient(recognitionCfg)
	}

	// 5. Analysis session
	sess := session.New(session.Config{
		TickInterval:           analysisCfg.TickInterval,
		CoalesceDelay:          analysisCfg.CoalesceDelay,
		MinCallInterval:        analysisCfg.MinCallInterval,
		CallTimeout:            analysisCfg.CallTimeout,
		MaxSuggestions:         analysisCfg.MaxSuggestions,
		CacheTTL:               analysisCfg.CacheTTL,
		CacheCapacity:          analysisCfg.CacheCapacity,
		FingerprintSegments:    analysisCfg.FingerprintSegments,
		FingerprintSuggestions: analysisCfg.FingerprintSuggestions,
		PromptTokenBudget:      analysisCfg.PromptTokenBudget,
		Keyword:                recognitionCfg.Keyword,
	}, reasoner, recognizer, archive)
	services = append(services, sess)

	// 6. Segment stream
	stream := stt.NewClient(sttCfg, sess)
	services = append(services, stream)

	// 7. Consumer surfaces
	if appCfg.EnableHTTP {
		services = append(services, httpapi.NewServer(appCfg.HTTPAddr, sess))
	}
	if appCfg.EnableMCP {
		services = append(services, mcpsrv.NewServer(sess))
	}

	return services
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
