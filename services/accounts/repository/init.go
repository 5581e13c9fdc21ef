package repository

import (
	"github.com/calldeck/calldeck/internal/pkg/database"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names owned by the accounts service
const (
	usersCollection          = "users"
	usedPasswordsCollection  = "used_passwords"
	passwordResetsCollection = "password_resets"
	managerMembersCollection = "manager_members"
)

// AccountRepo is the MongoDB identity store
type AccountRepo struct {
	users          *mongo.Collection
	usedPasswords  *mongo.Collection
	passwordResets *mongo.Collection
	managerMembers *mongo.Collection
}

// NewAccountRepo creates a new account repository instance
func NewAccountRepo(db *database.MongoClient) *AccountRepo {
	return &AccountRepo{
		users:          db.Collection(usersCollection),
		usedPasswords:  db.Collection(usedPasswordsCollection),
		passwordResets: db.Collection(passwordResetsCollection),
		managerMembers: db.Collection(managerMembersCollection),
	}
}
