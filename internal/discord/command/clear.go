package command

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"command-reset/internal/config"
	"command-reset/internal/credentials"
	"command-reset/pkg/discord"
)

const (
	GlobalPropagationNote = "(Global updates may take up to 1 hour to propagate)"

	loggerName = "cmd-clear"

	requestTimeout = 10 * time.Second
)

// An empty list replaces every registered command with nothing
var emptyCommandSet = []*discordgo.ApplicationCommand{}

// Ensure Client implements ClientIFace
var _ ClientIFace = (*Client)(nil)

type ClientIFace interface {
	Connect(creds credentials.Credentials) error
	Clear(target Target) Outcome
}

// Outcome is the result of one clear call. StatusCode is 0 when no response
// was received.
type Outcome struct {
	Target     Target
	OK         bool
	StatusCode int
	Body       []byte
	Err        error
}

type Client struct {
	logger *zap.Logger

	baseURL    string
	apiVersion string
	appId      string

	recorder       *statusRecorder
	discordSession discord.SessionIFace
}

func New(cfg *config.Config) *Client {
	return &Client{
		logger:     cfg.Logger.Named(loggerName),
		baseURL:    cfg.APIBaseURL,
		apiVersion: cfg.APIVersion,
		recorder:   newStatusRecorder(http.DefaultTransport),
	}
}

func (c *Client) Connect(creds credentials.Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}

	discordSession, err := discordgo.New(fmt.Sprintf(discord.BotTokenFormat, creds.Token))
	if err != nil {
		return err
	}

	// One attempt per target
	discordSession.ShouldRetryOnRateLimit = false
	discordSession.MaxRestRetries = 0
	discordSession.Client = &http.Client{
		Timeout:   requestTimeout,
		Transport: c.recorder,
	}

	c.appId = creds.ApplicationID
	c.discordSession = discordSession
	return nil
}

func (c *Client) Clear(target Target) Outcome {
	endpoint := c.Endpoint(target)
	c.logger.Info("clearing commands", zap.Stringer("target", target), zap.String("endpoint", endpoint))

	c.recorder.reset()
	body, err := c.discordSession.RequestWithBucketID(http.MethodPut, endpoint, emptyCommandSet, endpoint)

	outcome := Outcome{
		Target:     target,
		StatusCode: c.recorder.status,
		Body:       body,
		Err:        err,
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) {
		outcome.Body = restErr.ResponseBody
		if restErr.Response != nil {
			outcome.StatusCode = restErr.Response.StatusCode
		}
	}

	if err == nil && outcome.StatusCode != 0 && !IsSuccessStatus(outcome.StatusCode) {
		outcome.Err = fmt.Errorf("unexpected status: [%d]", outcome.StatusCode)
	}
	outcome.OK = outcome.Err == nil

	if outcome.OK {
		c.logger.Info("commands cleared", zap.Stringer("target", target), zap.Int("status", outcome.StatusCode))
	} else {
		c.logger.Error(
			"could not clear commands",
			zap.Stringer("target", target),
			zap.Int("status", outcome.StatusCode),
			zap.ByteString("body", outcome.Body),
			zap.Error(outcome.Err),
		)
	}
	return outcome
}

func (c *Client) Endpoint(target Target) string {
	if target.IsGlobal() {
		return discord.GlobalCommandsEndpoint(c.baseURL, c.apiVersion, c.appId)
	}
	return discord.GuildCommandsEndpoint(c.baseURL, c.apiVersion, c.appId, target.GuildID)
}

// Failure describes a failed outcome, or is nil on success.
func (o Outcome) Failure() error {
	if o.OK {
		return nil
	}
	if o.StatusCode == 0 {
		return fmt.Errorf("failed to clear %s commands: %w", o.Target, o.Err)
	}
	return fmt.Errorf("failed to clear %s commands: status [%d]: %w", o.Target, o.StatusCode, o.Err)
}

func IsSuccessStatus(code int) bool {
	switch code {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return true
	}
	return false
}

// statusRecorder keeps the status code of the last response it carried.
type statusRecorder struct {
	transport http.RoundTripper
	status    int
}

func newStatusRecorder(transport http.RoundTripper) *statusRecorder {
	return &statusRecorder{transport: transport}
}

func (s *statusRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	rsp, err := s.transport.RoundTrip(req)
	if rsp != nil {
		s.status = rsp.StatusCode
	}
	return rsp, err
}

func (s *statusRecorder) reset() {
	s.status = 0
}
