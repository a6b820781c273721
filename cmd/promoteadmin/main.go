// Command promoteadmin grants the admin role to an existing account, looked
// up by email. There is no in-app path to mint the first admin.
package main

import (
	"flag"

	"github.com/sud2610/set-u-free-sub000/config"
	"github.com/sud2610/set-u-free-sub000/database"
	userRepoPkg "github.com/sud2610/set-u-free-sub000/database/repository/user"
	"github.com/sud2610/set-u-free-sub000/models"
	"github.com/sud2610/set-u-free-sub000/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func main() {
	email := flag.String("email", "", "email of the account to promote")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()

	if *email == "" {
		logger.Fatal("The -email flag is required")
	}

	database.InitDB()
	repo := userRepoPkg.NewMongoUserRepo()

	u, err := repo.GetByEmail(*email)
	if err != nil {
		logger.Fatal("Failed to look up account", zap.String("email", *email), zap.Error(err))
	}
	if u.Role == models.RoleAdmin {
		logger.Info("Account is already an admin", zap.String("email", *email))
		return
	}

	if err := repo.UpdateFields(u.ID, bson.M{"role": models.RoleAdmin}); err != nil {
		logger.Fatal("Failed to promote account", zap.String("email", *email), zap.Error(err))
	}
	logger.Info("Promoted account to admin", zap.String("email", *email), zap.String("id", u.ID))
}
