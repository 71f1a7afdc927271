package common

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

const (
	ENABLED  = "enabled"
	DISABLED = "disabled"
)

var (
	snowflakeNode *snowflake.Node
	snowflakeOnce sync.Once
)

// UUIDint64 returns a snowflake-based unique int64 id.
func UUIDint64() int64 {
	snowflakeOnce.Do(func() {
		node, err := snowflake.NewNode(rand.New(rand.NewSource(time.Now().UnixNano())).Int63n(1023))
		if err != nil {
			node, _ = snowflake.NewNode(1)
		}
		snowflakeNode = node
	})
	return snowflakeNode.Generate().Int64()
}

// Sha256HashWithSalt hashes src with the given salt appended.
func Sha256HashWithSalt(src string, salt string) string {
	h := sha256.New()
	h.Write([]byte(src + salt))
	return hex.EncodeToString(h.Sum(nil))
}

// GetSecretSalt reads the password salt from the environment,
// falling back to a fixed development salt.
func GetSecretSalt() string {
	salt := os.Getenv("ARECAMART_SECRET_SALT")
	if salt == "" {
		salt = "arecamart-dev-salt"
	}
	return salt
}
