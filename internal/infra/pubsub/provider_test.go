package pubsub

import (
	"context"
	"testing"

	"masjidcast/config"
	"masjidcast/internal/domain/constants"
	"masjidcast/internal/domain/service"
	mockService "masjidcast/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPublisher(t *testing.T) {
	queue := mockService.NewMockJobQueue(t)

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		queue   service.JobQueue
		want    any
		wantErr string
	}{
		{name: "nil config uses queue", cfg: nil, queue: queue, want: &queuePublisher{}},
		{name: "queue", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderQueue}, queue: queue, want: &queuePublisher{}},
		{name: "queue without client", cfg: &config.PubSubConfig{}, wantErr: "job queue"},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}, want: &localHTTPPublisher{}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "localEndpoint"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topicId"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: `"kafka"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := buildPublisher(context.Background(), tt.cfg, tt.queue, discardLogger())
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, publisher)
		})
	}
}

func TestEncodeEvent(t *testing.T) {
	encoded, err := encodeEvent(&service.BroadcastEvent{
		BroadcastID: "b-1",
		MasjidID:    "m-1",
		PrayerName:  "maghrib",
		EventType:   "start",
	})
	require.NoError(t, err)

	assert.Equal(t, "b-1", encoded.orderingKey)
	assert.Equal(t, map[string]string{
		"broadcast_id": "b-1",
		"masjid_id":    "m-1",
		"prayer_name":  "maghrib",
		"event_type":   "start",
	}, encoded.attributes)
	assert.JSONEq(t, `{"broadcast_id":"b-1","masjid_id":"m-1","prayer_name":"maghrib","event_type":"start"}`, string(encoded.data))

	_, err = encodeEvent(nil)
	assert.Error(t, err)
}
