package s3

import (
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

const (
	Delimiter = "/"
	URIScheme = "s3://"
)

// Ensure Client implements ClientIFace
var _ ClientIFace = (*Client)(nil)

type ClientIFace interface {
	Connect() error
	Get(bucket string, key string) ([]byte, error)
}

type Client struct {
	cfg      *aws.Config
	s3Client s3iface.S3API
	session  *session.Session
}

func New() *Client {
	cfg := aws.NewConfig()
	return &Client{
		cfg: cfg,
	}
}

func (c *Client) Connect() error {
	awsSession, err := session.NewSession(c.cfg)
	if err != nil {
		return err
	}
	c.session = awsSession
	c.s3Client = s3.New(c.session, c.cfg)
	return nil
}

func (c *Client) Get(bucket string, key string) ([]byte, error) {
	out, err := c.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

// ParseURI splits an "s3://bucket/key" location into its bucket and key.
func ParseURI(uri string) (bucket string, key string, ok bool) {
	if !strings.HasPrefix(uri, URIScheme) {
		return "", "", false
	}

	bucket, key, _ = strings.Cut(strings.TrimPrefix(uri, URIScheme), Delimiter)
	if bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}
