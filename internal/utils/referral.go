package utils

import (
	"math/rand"
	"strings"
)

const referralAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ReferralCodeLength is the length of generated referral codes
const ReferralCodeLength = 8

// GenerateReferralCode returns an opaque lowercase base-36 token used as the
// join value between a referrer and its subordinates. Codes are not
// cryptographically random and uniqueness is not enforced at generation.
func GenerateReferralCode() string {
	var b strings.Builder
	b.Grow(ReferralCodeLength)
	for i := 0; i < ReferralCodeLength; i++ {
		b.WriteByte(referralAlphabet[rand.Intn(len(referralAlphabet))])
	}
	return b.String()
}

// GenerateOTP returns a numeric one-time code of the given number of digits.
// The first digit is never zero so the code keeps its printed length.
func GenerateOTP(length int) string {
	if length < 4 {
		length = 4
	}
	var b strings.Builder
	b.Grow(length)
	b.WriteByte(byte('1' + rand.Intn(9)))
	for i := 1; i < length; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}
