package helpers

import (
	"math/rand"
	"time"
)

const letterBytes = "abcdefghijklmnopqrstuvwxyz"

func randomLetters(n int) string {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[src.Intn(len(letterBytes))]
	}
	return string(b)
}

func GenerateAgentCode() string {
	return "a" + randomLetters(3)
}

func GenerateStaffCode() string {
	return "s" + randomLetters(3)
}

func GenerateCustomerCode() string {
	return "c" + randomLetters(5)
}

func GenerateTripCode() string {
	return "t" + time.Now().Format("060102") + randomLetters(3)
}
