package credentials

import (
	"encoding/base64"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	"command-reset/internal/config"
	customError "command-reset/pkg/errors"
	"command-reset/pkg/prompt"
)

const (
	FieldBotToken      = "bot_token"
	FieldApplicationID = "application_id"

	TokenPrompt         = "Enter your Bot Token: "
	ApplicationIDPrompt = "Please enter your Discord Application ID (Client ID): "

	loggerName = "credentials"
)

// Ensure Resolver implements ResolverIFace
var _ ResolverIFace = (*Resolver)(nil)

type ResolverIFace interface {
	Resolve() (Credentials, error)
}

type RecordLoader interface {
	LoadRecord() (config.Record, error)
}

type Credentials struct {
	Token         string
	ApplicationID string
}

type Resolver struct {
	logger *zap.Logger
	loader RecordLoader
	prompt prompt.ClientIFace
}

func New(cfg *config.Config, p prompt.ClientIFace) *Resolver {
	return &Resolver{
		logger: cfg.Logger.Named(loggerName),
		loader: cfg,
		prompt: p,
	}
}

// Validate fails when either credential is empty.
func (c Credentials) Validate() error {
	if c.Token == "" || c.ApplicationID == "" {
		return customError.MissingCredentialsErr{Fields: map[string]string{
			FieldBotToken:      c.Token,
			FieldApplicationID: c.ApplicationID,
		}}
	}
	return nil
}

// Resolve returns whatever credentials the config, the token and the operator
// provide. The result may be incomplete; callers check it with Validate.
func (r *Resolver) Resolve() (Credentials, error) {
	var creds Credentials

	record, err := r.loader.LoadRecord()
	if err != nil {
		r.logger.Warn("could not load config, continuing without it", zap.Error(err))
		r.prompt.Warn("Error: %s", err)
	}

	// Token
	if token, ok := record.Token(); ok {
		r.logger.Info("loaded bot token from config")
		r.prompt.Info("Loaded Bot Token from config.")
		creds.Token = token
	} else {
		r.prompt.Info("Config file missing or has placeholder token.")
		if creds.Token, err = r.ask(r.prompt.AskSecret, TokenPrompt); err != nil {
			return creds, err
		}
	}

	// Application ID
	if appID, ok := record.AppID(); ok {
		r.logger.Info("loaded application id from config")
		r.prompt.Info("Loaded Application ID from config.")
		creds.ApplicationID = appID
	} else if appID, ok := ApplicationIDFromToken(creds.Token); ok {
		r.logger.Info("detected application id from token", zap.String("applicationId", appID))
		r.prompt.Info("Detected Application ID from token: %s", appID)
		creds.ApplicationID = appID
	} else if creds.ApplicationID, err = r.ask(r.prompt.Ask, ApplicationIDPrompt); err != nil {
		return creds, err
	}

	return creds, nil
}

// ApplicationIDFromToken decodes the application ID carried in the first
// segment of a bot token. ok is false unless the segment decodes to digits.
func ApplicationIDFromToken(token string) (string, bool) {
	idPart, _, _ := strings.Cut(token, ".")
	if rem := len(idPart) % 4; rem != 0 {
		idPart += strings.Repeat("=", 4-rem)
	}

	decoded, err := base64.StdEncoding.DecodeString(idPart)
	if err != nil {
		return "", false
	}

	id := string(decoded)
	if !IsSnowflake(id) {
		return "", false
	}
	return id, true
}

// IsSnowflake reports whether id is a non-empty run of ASCII digits.
func IsSnowflake(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

// ask treats end of input as an empty answer.
func (r *Resolver) ask(askFn func(string) (string, error), msg string) (string, error) {
	answer, err := askFn(msg)
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	return answer, err
}
