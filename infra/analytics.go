package infra

import (
	"github.com/segmentio/analytics-go/v3"
)

// NewSegmentClient returns a segment client. Without a write key events are dropped.
func NewSegmentClient(writeKey string) analytics.Client {
	if writeKey == "" {
		return discardSegmentClient{}
	}
	return analytics.New(writeKey)
}

type discardSegmentClient struct{}

func (discardSegmentClient) Enqueue(analytics.Message) error { return nil }
func (discardSegmentClient) Close() error                    { return nil }
