package util

import (
	"os"
	"strconv"
	"strings"
)

//TimeFormat stores a correctly formatted timestamp
const TimeFormat string = "2006-01-02-T15:04:05-0700"

// Exists returns true if file or directory exists
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return true, err
}

// IsDir returns true if argument is a directory
func IsDir(path string) bool {
	file, err := os.Stat(path)
	if err != nil {
		return false
	}
	return file.IsDir()
}

//Max returns the larger of two integers
func Max(a int, b int) int {
	if a > b {
		return a
	}
	return b
}

//JoinUint32 formats a list of unsigned integers separated by sep
func JoinUint32(values []uint32, sep string) string {
	strs := make([]string, len(values))
	for i, value := range values {
		strs[i] = strconv.FormatUint(uint64(value), 10)
	}
	return strings.Join(strs, sep)
}

//JoinInts formats a list of integers separated by sep
func JoinInts(values []int, sep string) string {
	strs := make([]string, len(values))
	for i, value := range values {
		strs[i] = strconv.Itoa(value)
	}
	return strings.Join(strs, sep)
}
