package config_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"command-reset/internal/config"
	"command-reset/pkg/aws/s3"
)

func Test_New(t *testing.T) {
	cfg := config.New()

	require.NotNil(t, cfg)
	assert.NotNil(t, cfg.Logger)
	assert.Equal(t, config.DefaultConfigPath, cfg.ConfigPath)
	assert.Equal(t, config.DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, "10", cfg.APIVersion)
}

func Test_Load(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := config.NewTestConfig(t, "")

		require.NoError(t, cfg.Load())
		assert.Equal(t, config.DefaultConfigPath, cfg.ConfigPath)
		assert.Equal(t, config.DefaultAPIBaseURL, cfg.APIBaseURL)
	})

	t.Run("Env overrides", func(t *testing.T) {
		t.Setenv(config.EnvConfigPath, "s3://bucket/reset.cfg")
		t.Setenv(config.EnvAPIBaseURL, "http://127.0.0.1:9000")
		cfg := config.NewTestConfig(t, "")

		require.NoError(t, cfg.Load())
		assert.Equal(t, "s3://bucket/reset.cfg", cfg.ConfigPath)
		assert.Equal(t, "http://127.0.0.1:9000", cfg.APIBaseURL)
		assert.Equal(t, config.APIVersion, cfg.APIVersion)
	})
}

func Test_LoadRecord(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		env        map[string]string
		expRecord  config.Record
		expErr     string
		expNotFile bool
	}{
		{
			name:       "Happy path",
			configPath: "testdata/config.json",
			expRecord: config.Record{
				BotToken:      config.MockBotToken,
				ApplicationID: config.MockApplicationID,
			},
		},
		{
			name:       "Happy path - File values win over env",
			configPath: "testdata/config.json",
			env:        map[string]string{config.EnvBotToken: "envtoken", config.EnvApplicationID: "111"},
			expRecord: config.Record{
				BotToken:      config.MockBotToken,
				ApplicationID: config.MockApplicationID,
			},
		},
		{
			name:       "Happy path - Env fills placeholders",
			configPath: "testdata/placeholder.json",
			env:        map[string]string{config.EnvBotToken: "envtoken", config.EnvApplicationID: "111"},
			expRecord: config.Record{
				BotToken:      "envtoken",
				ApplicationID: "111",
			},
		},
		{
			name:       "Happy path - Token only",
			configPath: "testdata/tokenonly.json",
			expRecord:  config.Record{BotToken: config.MockBotToken},
		},
		{
			name:       "Happy path - Env fills missing application ID",
			configPath: "testdata/tokenonly.json",
			env:        map[string]string{config.EnvApplicationID: "111"},
			expRecord: config.Record{
				BotToken:      config.MockBotToken,
				ApplicationID: "111",
			},
		},
		{
			name:       "Happy path - Placeholders kept without env",
			configPath: "testdata/placeholder.json",
			expRecord: config.Record{
				BotToken:      config.PlaceholderBotToken,
				ApplicationID: config.PlaceholderApplicationID,
			},
		},
		{
			name:       "Sad path - Missing file",
			configPath: "testdata/missing.json",
			expErr:     "could not find testdata/missing.json",
			expNotFile: true,
		},
		{
			name:       "Sad path - Missing file still reads env",
			configPath: "testdata/missing.json",
			env:        map[string]string{config.EnvBotToken: "envtoken"},
			expRecord:  config.Record{BotToken: "envtoken"},
			expErr:     "could not find testdata/missing.json",
			expNotFile: true,
		},
		{
			name:       "Sad path - Malformed file",
			configPath: "testdata/malformed.json",
			expErr:     "could not parse testdata/malformed.json",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvBotToken, "")
			t.Setenv(config.EnvApplicationID, "")
			for key, val := range tt.env {
				t.Setenv(key, val)
			}
			cfg := config.NewTestConfig(t, tt.configPath)

			record, err := cfg.LoadRecord()

			assert.Equal(t, tt.expRecord, record)
			if tt.expErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expErr)
				assert.Equal(t, tt.expNotFile, errors.Is(err, fs.ErrNotExist))
			}
		})
	}
}

func Test_LoadRecord_S3(t *testing.T) {
	mockErr := errors.New("mock error")
	tests := []struct {
		name       string
		data       []byte
		connectErr error
		getErr     error
		expRecord  config.Record
		expErr     error
	}{
		{
			name: "Happy path",
			data: []byte(`{"bot_token":"s3token","application_id":"222"}`),
			expRecord: config.Record{
				BotToken:      "s3token",
				ApplicationID: "222",
			},
		},
		{
			name:       "Sad path - Connect error",
			connectErr: mockErr,
			expErr:     mockErr,
		},
		{
			name:   "Sad path - Get error",
			getErr: mockErr,
			expErr: mockErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvBotToken, "")
			t.Setenv(config.EnvApplicationID, "")

			mockS3 := new(s3.MockClient)
			mockS3.On(s3.ConnectMethod).Return(tt.connectErr)
			mockS3.On(s3.GetMethod, "bucket", "bots/reset.cfg").Return(tt.data, tt.getErr)
			cfg := config.NewTestConfig(t, "s3://bucket/bots/reset.cfg").WithS3Client(mockS3)

			record, err := cfg.LoadRecord()

			assert.Equal(t, tt.expRecord, record)
			if tt.expErr == nil {
				require.NoError(t, err)
				mockS3.AssertCalled(t, s3.GetMethod, "bucket", "bots/reset.cfg")
			} else {
				require.ErrorIs(t, err, tt.expErr)
			}
		})
	}
}

func Test_Record_Placeholders(t *testing.T) {
	tests := []struct {
		name     string
		record   config.Record
		expToken string
		expTokOk bool
		expAppID string
		expAppOk bool
	}{
		{
			name:     "Configured values",
			record:   config.Record{BotToken: "token", ApplicationID: "123"},
			expToken: "token",
			expTokOk: true,
			expAppID: "123",
			expAppOk: true,
		},
		{
			name:   "Placeholder values",
			record: config.Record{BotToken: config.PlaceholderBotToken, ApplicationID: config.PlaceholderApplicationID},
		},
		{
			name: "Empty record",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, tokOk := tt.record.Token()
			appID, appOk := tt.record.AppID()

			assert.Equal(t, tt.expToken, token)
			assert.Equal(t, tt.expTokOk, tokOk)
			assert.Equal(t, tt.expAppID, appID)
			assert.Equal(t, tt.expAppOk, appOk)
		})
	}
}
