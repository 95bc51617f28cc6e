package service

import (
	"errors"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"command-reset/internal/config"
	"command-reset/internal/credentials"
	"command-reset/internal/discord/command"
	"command-reset/pkg/prompt"
)

const (
	GuildPrompt = "\nEnter Guild ID to clear (or press Enter to finish): "

	loggerName = "reset-service"
)

type Service struct {
	cfg    *config.Config
	logger *zap.Logger
	prompt prompt.ClientIFace

	resolver  credentials.ResolverIFace
	cmdClient command.ClientIFace
}

func New(cfg *config.Config, p prompt.ClientIFace) *Service {
	return &Service{
		cfg:    cfg,
		logger: cfg.Logger.Named(loggerName),
		prompt: p,

		resolver:  credentials.New(cfg, p),
		cmdClient: command.New(cfg),
	}
}

// Run clears global commands once, then the commands of each guild the
// operator enters. Failed clears are reported but do not fail the run.
func (s *Service) Run() error {
	s.prompt.Info("--- LeagueOfGains Command Cleaner ---")

	creds, err := s.resolver.Resolve()
	if err != nil {
		return err
	}
	if err := creds.Validate(); err != nil {
		s.logger.Warn("aborting before any request", zap.Error(err))
		s.prompt.Fail("Missing credentials.")
		return nil
	}

	if err := s.cmdClient.Connect(creds); err != nil {
		return err
	}

	var failures error

	s.prompt.Info("\n--- Phase 1: Global Commands ---")
	failures = multierr.Append(failures, s.clear(command.Global))

	s.prompt.Info("\n--- Phase 2: Guild/Server Commands ---")
	s.prompt.Info("Test servers often use Guild Commands because they update instantly.")
	s.prompt.Info("To fix 'stuck' commands in a specific server, enter its ID below.")
	for {
		guildID, err := s.prompt.Ask(GuildPrompt)
		if err != nil && !errors.Is(err, io.EOF) {
			return multierr.Append(failures, err)
		}
		if guildID == "" {
			break
		}

		if !credentials.IsSnowflake(guildID) {
			s.prompt.Warn("Invalid ID. Please enter numeric digits only.")
			continue
		}
		failures = multierr.Append(failures, s.clear(command.Guild(guildID)))
	}

	if failures != nil {
		s.logger.Warn(
			"some command sets were not cleared",
			zap.Int("failed", len(multierr.Errors(failures))),
			zap.Error(failures),
		)
	}

	s.prompt.Info("\nDone.")
	return nil
}

func (s *Service) clear(target command.Target) error {
	s.prompt.Info("Sending request to clear %s commands...", target)

	outcome := s.cmdClient.Clear(target)
	if outcome.OK {
		s.prompt.Success("SUCCESS! %s commands have been cleared.", target)
		if target.IsGlobal() {
			s.prompt.Info("   %s", command.GlobalPropagationNote)
		}
		return nil
	}

	if outcome.StatusCode == 0 {
		s.prompt.Fail("Exception occurred: %s", outcome.Err)
	} else {
		s.prompt.Fail("Failed to clear %s commands. Status: %d", target, outcome.StatusCode)
		s.prompt.Info("   Response: %s", outcome.Body)
	}
	return outcome.Failure()
}
