package handlers

import (
	"context"
	"encoding/json"
	"log"
	"strconv"

	"Ecommerce/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// The catalog lives in a redis sorted set keyed by product id, so the
// paginated listing and the count never hit MySQL on the hot path.
const productsCacheKey = "products"

func cacheProduct(ctx context.Context, rdb *redis.Client, product *models.Product) error {
	productJSON, err := json.Marshal(product)
	if err != nil {
		return err
	}

	return rdb.ZAdd(ctx, productsCacheKey, redis.Z{
		Score:  float64(product.ID),
		Member: productJSON,
	}).Err()
}

func uncacheProduct(ctx context.Context, rdb *redis.Client, productID uint) error {
	score := strconv.Itoa(int(productID))
	return rdb.ZRemRangeByScore(ctx, productsCacheKey, score, score).Err()
}

// refreshProductCache reloads the whole catalog from the database into redis.
func refreshProductCache(ctx context.Context, rdb *redis.Client, db *gorm.DB) error {
	var products []models.Product
	err := db.Omit("photo").Find(&products).Error
	if err != nil {
		return err
	}

	rdb.Del(ctx, productsCacheKey)

	for i := range products {
		if err := cacheProduct(ctx, rdb, &products[i]); err != nil {
			log.Printf("unable to cache product %d: %v", products[i].ID, err)
		}
	}

	return nil
}

// cachedProductPage reads one page, newest first, seeding the cache from the
// database when it is empty or unreachable.
func cachedProductPage(ctx context.Context, rdb *redis.Client, db *gorm.DB, offset, limit int) ([]models.Product, error) {
	start := int64(offset)
	stop := int64(offset + limit - 1)

	members, err := rdb.ZRevRange(ctx, productsCacheKey, start, stop).Result()
	if err != nil || rdb.ZCard(ctx, productsCacheKey).Val() == 0 {
		if err := refreshProductCache(ctx, rdb, db); err != nil {
			return nil, err
		}
		members, err = rdb.ZRevRange(ctx, productsCacheKey, start, stop).Result()
		if err != nil {
			return nil, err
		}
	}

	products := make([]models.Product, 0, len(members))
	for _, member := range members {
		var product models.Product
		if err := json.Unmarshal([]byte(member), &product); err != nil {
			log.Printf("unable to decode cached product: %v", err)
			continue
		}
		products = append(products, product)
	}

	return products, nil
}
