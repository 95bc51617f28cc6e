package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
)

const (
	SessionRequestWithBucketIDMethod = "RequestWithBucketID"
)

// Ensure MockDiscordSession implements SessionIFace
var _ SessionIFace = (*MockDiscordSession)(nil)

type MockDiscordSession struct {
	mock.Mock
}

func (m *MockDiscordSession) RequestWithBucketID(method string, urlStr string, data interface{}, bucketID string, options ...discordgo.RequestOption) ([]byte, error) {
	args := m.Called(method, urlStr, data, bucketID)
	if body := args.Get(0); body != nil {
		return body.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}
