package redis_client

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/travigo/stationboard/pkg/util"
)

// Client stays nil until Connect succeeds.
var Client *redis.Client

const defaultConnectionPassword = ""
const defaultDatabase = 0

// Connect opens the client named by STATIONBOARD_REDIS_ADDRESS. When no
// address is set it returns an error only if redis is required.
func Connect(required bool) error {
	env := util.GetEnvironmentVariables()

	address := env[util.EnvironmentPrefix+"REDIS_ADDRESS"]
	if address == "" {
		if required {
			return util.MissingEnvironmentKey(util.EnvironmentPrefix + "REDIS_ADDRESS")
		}

		log.Debug().Msg("Redis not configured")
		return nil
	}

	password := defaultConnectionPassword
	if env[util.EnvironmentPrefix+"REDIS_PASSWORD"] != "" {
		password = env[util.EnvironmentPrefix+"REDIS_PASSWORD"]
	}

	database, err := util.GetEnvironmentInt(env, util.EnvironmentPrefix+"REDIS_DATABASE", defaultDatabase)
	if err != nil {
		return err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return err
	}

	Client = client
	log.Info().Str("address", address).Int("database", database).Msg("Connected to redis")

	return nil
}
