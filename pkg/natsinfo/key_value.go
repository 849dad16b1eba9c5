package natsinfo

import (
	"time"

	nats "github.com/nats-io/nats.go"
)

var (
	LIST_COUNT_BUCKET_NAME      = "list-counts"
	LIST_COUNT_KEY_VALUE_CONFIG = nats.KeyValueConfig{
		Bucket: LIST_COUNT_BUCKET_NAME,
		TTL:    time.Minute * 2,
	}
)
