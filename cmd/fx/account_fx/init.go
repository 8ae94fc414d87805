package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voyager/internal/repositories"
	"voyager/internal/services"
	"voyager/pkg/memcache"
)

var Module = fx.Provide(provideUserRepo, provideRevokedTokens, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideRevokedTokens() memcache.RevokedTokenStore {
	return memcache.NewRevokedTokens()
}

func provideAccountService(userRepo repositories.UserRepository, revoked memcache.RevokedTokenStore) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, revoked)
}
