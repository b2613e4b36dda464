package catalog

import (
	"encoding/json"
	"log"
	"time"

	"pawmart/models"
	"pawmart/rdx"
)

const (
	cacheKeyAll     = "products:all"
	cacheKeyNew     = "products:new"
	cacheKeyPopular = "products:popular"

	cacheTTL = time.Minute
)

func cachedList(key string) ([]models.Product, bool) {
	if rdx.Conn == nil {
		return nil, false
	}
	raw, err := rdx.RdxGet(key)
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, false
	}
	return products, true
}

func cacheList(key string, products []models.Product) {
	if rdx.Conn == nil {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := rdx.SetWithExpiry(key, string(raw), cacheTTL); err != nil {
		log.Printf("product cache set failed for %s: %v", key, err)
	}
}

func invalidateListCaches() {
	if rdx.Conn == nil {
		return
	}
	for _, key := range []string{cacheKeyAll, cacheKeyNew, cacheKeyPopular} {
		if _, err := rdx.RdxDel(key); err != nil {
			log.Printf("product cache invalidation failed for %s: %v", key, err)
		}
	}
}
