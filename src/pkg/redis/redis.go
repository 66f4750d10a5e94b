package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient redis.UniversalClient

func InitConnection() {
	if AppConfigData.UseCluster {
		redisClient = newClusterClient()
	} else {
		redisClient = newSingleClient()
	}

	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		fmt.Println("REDIS ERROR:", err.Error())
		panic("cannot connect to Redis")
	}
}

func newSingleClient() redis.UniversalClient {
	return redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%v", RedisConfigData.Host, RedisConfigData.Port),
		Password:     RedisConfigData.Password,
		DB:           RedisConfigData.DB,
		TLSConfig:    tlsConfig(RedisConfigData.EnableTLS),
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MaxRetries:   2,
	})
}

func newClusterClient() redis.UniversalClient {
	return redis.NewClusterClient(&redis.ClusterOptions{
		Addrs:        RedisClusterConfigData.Hosts,
		Username:     RedisClusterConfigData.Username,
		Password:     RedisClusterConfigData.Password,
		TLSConfig:    tlsConfig(RedisClusterConfigData.EnableTLS),
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

func tlsConfig(enabled bool) *tls.Config {
	if !enabled {
		return nil
	}
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
}

func GetClient() redis.UniversalClient {
	return redisClient
}
