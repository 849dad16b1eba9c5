package hashutils

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"
)

func generateHash(data string) string {
	hash := sha256.New()
	hash.Write([]byte(data))
	return fmt.Sprintf("%x", hash.Sum(nil))
}

func GetCacheKey(kind string, startDate, endDate time.Time, filters []string) string {
	key := fmt.Sprintf("%s.%s.%s.%s", kind, startDate, endDate, strings.Join(filters, "."))
	return generateHash(key)
}
