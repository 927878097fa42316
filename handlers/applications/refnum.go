package applications

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateReferenceNumber produces an application reference of the form
// NYL-<year>-<6 zero-padded digits>. The draw itself is not unique; the
// database enforces uniqueness and the caller redraws on a duplicate.
func GenerateReferenceNumber() string {
	return fmt.Sprintf("NYL-%d-%06d", time.Now().Year(), rand.Intn(999999)+1)
}
