// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type PointChangedEvent struct {
	Category   string    `json:"category"`
	PointID    string    `json:"point_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	category := flag.String("category", "barrier", "Point category: barrier, facilitator or poi")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие
	event := PointChangedEvent{
		Category:   *category,
		PointID:    uuid.NewString(),
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:points:changed",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:points:changed\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Category: %s\n", event.Category)
	fmt.Printf("   Point ID: %s\n", event.PointID)
}
