package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/audit"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/config"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/conversation"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/database"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/directory"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/disclaimer"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/jobs"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/legal"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/model"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/privacy"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/repository"
	"github.com/PoojasPatel013/Multilingual-Mandi-sub000/internal/session"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	setLogLevel(cfg.LogLevel)

	enc, err := buildEncryptionManager(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize encryption")
	}

	repo, cleanup, err := buildBlobRepository(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize session storage")
	}
	defer cleanup()

	trail := audit.NewTrail()
	store, err := session.NewStore(repo, enc, trail, session.Config{
		Timeout:         cfg.SessionTimeout(),
		CleanupInterval: cfg.CleanupInterval(),
		TempDir:         cfg.TempDir,
		OverwritePasses: cfg.OverwritePasses,
		DefaultLanguage: cfg.DefaultLanguage,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize session store")
	}

	disclaimers := disclaimer.NewService(trail, cfg.ReminderTurnInterval)
	engine := conversation.NewEngine(store, legal.NewEngine(), directory.New(), disclaimers, cfg.MaxReferrals)

	cleanupJob := jobs.NewCleanupJob(store, cfg.CleanupInterval())
	cleanupJob.Start()
	defer cleanupJob.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info().Msg("shutting down")
		cancel()
	}()

	if err := runConversation(ctx, engine, store); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("conversation failed")
	}

	log.Info().Msg("stopped")
}

// runConversation drives a single interactive session over stdin/stdout.
func runConversation(ctx context.Context, engine *conversation.Engine, store *session.Store) error {
	sessionID, err := store.Create(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := engine.EndSession(context.Background(), sessionID); err != nil {
			log.Warn().Err(err).Msg("failed to end session")
		}
	}()

	fmt.Println("Legal aid assistant ready. Type your question, or 'goodbye' to finish.")

	scanner := bufio.NewScanner(os.Stdin)
	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		fmt.Print("> ")
		var input string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case input, ok = <-lines:
			if !ok {
				return scanner.Err()
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		resp, err := engine.ProcessTurn(ctx, sessionID, input)
		if err != nil {
			return err
		}
		printResponse(resp)

		sess, err := store.Get(ctx, sessionID)
		if err != nil {
			return err
		}
		convCtx := &model.ConversationContext{
			Session:            sess,
			LastUserInput:      input,
			ConversationLength: len(sess.History),
		}
		if engine.ShouldEnd(convCtx) {
			summary, err := engine.Summarize(ctx, sessionID)
			if err != nil {
				return err
			}
			printSummary(summary)
			return nil
		}
	}
}

func printResponse(resp *model.SystemResponse) {
	fmt.Println()
	fmt.Println(resp.Text)
	if len(resp.FollowUpQuestions) > 0 {
		fmt.Println()
		for _, q := range resp.FollowUpQuestions {
			fmt.Printf("  ? %s\n", q)
		}
	}
	fmt.Println()
}

func printSummary(summary *model.ConversationSummary) {
	fmt.Println()
	fmt.Println("Conversation summary:")
	fmt.Printf("  Duration: %.1f minutes\n", summary.DurationMinutes)
	for _, issue := range summary.IssuesDiscussed {
		fmt.Printf("  Issue discussed: %s\n", issue)
	}
	for _, step := range summary.NextSteps {
		fmt.Printf("  Next step: %s\n", step)
	}
	fmt.Println("Goodbye.")
}

func buildEncryptionManager(cfg *config.Config) (*privacy.Manager, error) {
	if cfg.EncryptionPassphrase != "" {
		return privacy.NewManagerFromPassphrase(cfg.EncryptionPassphrase)
	}
	// Ephemeral key: sessions do not survive a restart, which is the safest
	// default for a privacy-first deployment.
	return privacy.NewManager()
}

func buildBlobRepository(cfg *config.Config) (repository.BlobRepository, func(), error) {
	noop := func() {}

	switch cfg.SessionStore {
	case config.StorePostgres:
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.DBPingTimeout)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			db.Close()
			return nil, noop, err
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, noop, err
		}
		log.Info().Msg("database connected")
		return repository.NewPostgresBlobRepository(db.DB), func() { db.Close() }, nil

	case config.StoreRedis:
		repo, err := repository.NewRedisBlobRepository(cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Msg("redis connected")
		return repo, noop, nil

	default:
		return repository.NewMemoryBlobRepository(), noop, nil
	}
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
