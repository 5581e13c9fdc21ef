package usecase

import (
	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/services/accounts"
)

type AccountUC struct {
	accountRepo accounts.AccountRepo
	mailGW      accounts.MailGW
	cfg         *models.Config
}

// NewAccountUC creates a new account usecase instance
func NewAccountUC(
	accountRepo accounts.AccountRepo,
	mailGW accounts.MailGW,
	cfg *models.Config,
) *AccountUC {
	return &AccountUC{
		accountRepo: accountRepo,
		mailGW:      mailGW,
		cfg:         cfg,
	}
}
