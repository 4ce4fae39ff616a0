package selector

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"io"
	"log"
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var monotonicPool = sync.Pool{
	New: func() interface{} {
		var seed int64
		err := binary.Read(cryptorand.Reader, binary.BigEndian, &seed)
		if err != nil {
			log.Fatalf("crypto/rand error: %s", err)
		}

		rand := mathrand.New(mathrand.NewSource(seed))
		inc := uint64(rand.Int63())

		return ulid.Monotonic(rand, inc)
	},
}

// makeULID returns a new proposal ID for t
func makeULID(t time.Time) (ulid.ULID, error) {
	mono := monotonicPool.Get().(io.Reader)
	defer monotonicPool.Put(mono)

	return ulid.New(ulid.Timestamp(t), mono)
}
