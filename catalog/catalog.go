package catalog

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"pawmart/db"
	"pawmart/models"
	"pawmart/mq"
	"pawmart/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// AddProduct creates a catalog entry with the next id from the counter
// sequence.
func AddProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Name     string  `json:"name"`
		Image    string  `json:"image"`
		Category string  `json:"category"`
		NewPrice float64 `json:"new_price"`
		OldPrice float64 `json:"old_price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Product name is required")
		return
	}

	id, err := db.NextSequence(ctx, "productid")
	if err != nil {
		log.Println("AddProduct sequence error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to assign product id")
		return
	}

	product := models.Product{
		ID:        id,
		Name:      input.Name,
		Image:     input.Image,
		Category:  input.Category,
		NewPrice:  input.NewPrice,
		OldPrice:  input.OldPrice,
		Available: true,
		Date:      time.Now(),
	}

	if _, err := db.ProductCollection.InsertOne(ctx, product); err != nil {
		log.Println("AddProduct InsertOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save product")
		return
	}

	invalidateListCaches()
	mq.Emit("product-added", models.Index{EntityType: "product", EntityId: strconv.FormatInt(id, 10)})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "name": product.Name})
}

// RemoveProduct deletes by catalog id. Deleting an absent id is fine.
func RemoveProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if _, err := db.ProductCollection.DeleteOne(ctx, bson.M{"id": input.ID}); err != nil {
		log.Println("RemoveProduct DeleteOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove product")
		return
	}

	invalidateListCaches()
	mq.Emit("product-removed", models.Index{EntityType: "product", EntityId: strconv.FormatInt(input.ID, 10)})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "name": input.Name})
}

func fetchAllProducts(ctx context.Context) ([]models.Product, error) {
	cursor, err := db.ProductCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// GetAllProducts returns the full catalog in storage order.
func GetAllProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	serveProductList(w, r, cacheKeyAll, func(products []models.Product) []models.Product {
		return products
	})
}

// GetNewCollections returns the trailing window used by the home page.
func GetNewCollections(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	serveProductList(w, r, cacheKeyNew, NewestWindow)
}

// GetPopularProducts returns the leading window used by the home page.
func GetPopularProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	serveProductList(w, r, cacheKeyPopular, PopularWindow)
}

func serveProductList(w http.ResponseWriter, r *http.Request, cacheKey string, view func([]models.Product) []models.Product) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if cached, ok := cachedList(cacheKey); ok {
		utils.RespondWithJSON(w, http.StatusOK, cached)
		return
	}

	products, err := fetchAllProducts(ctx)
	if err != nil {
		log.Println("product list fetch error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve products")
		return
	}

	result := view(products)
	cacheList(cacheKey, result)
	utils.RespondWithJSON(w, http.StatusOK, result)
}
