package pkg

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"
)

// DateLayout is the calendar date format used in query params and stored dates.
const DateLayout = "2006-01-02"

const connectionCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateConnectionCode returns a random upper-case code a member can hand to a gym owner.
// Ambiguous characters (0/O, 1/I) are left out.
func GenerateConnectionCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("code length must be positive")
	}

	max := big.NewInt(int64(len(connectionCodeAlphabet)))
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(connectionCodeAlphabet[n.Int64()])
	}

	return sb.String(), nil
}

// ParseDate parses a YYYY-MM-DD value as a UTC calendar day.
// An empty string yields nil without error.
func ParseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date [%s], expected YYYY-MM-DD", value)
	}
	return &d, nil
}

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if (isDir && stat.IsDir()) || (!isDir && !stat.IsDir()) {
		return true, nil
	}
	if isDir {
		return false, fmt.Errorf("%s is not a directory", path)
	}
	return false, fmt.Errorf("%s is a directory", path)
}
