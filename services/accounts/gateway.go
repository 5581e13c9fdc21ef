package accounts

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/calldeck/calldeck/services/accounts MailGW

// MailGW delivers account mail through an external channel. Delivery is
// out-of-band; a publish failure does not roll back the triggering change.
type MailGW interface {
	SendPasswordResetOTP(email, otp string) error
}
