package orders

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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateOrder persists a finalized order. Line items arrive from the
// checkout flow after payment verification, so the payment status is
// recorded as completed. Prices in the payload are stored as-is: the
// snapshot must survive later catalog edits.
func CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Address        models.Address        `json:"address"`
		Products       []models.OrderItem    `json:"products"`
		TotalAmount    float64               `json:"totalAmount"`
		PaymentDetails models.PaymentDetails `json:"paymentDetails"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order payload")
		return
	}
	if len(input.Products) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Order has no products")
		return
	}

	orderID, err := db.NextSequence(ctx, "orderid")
	if err != nil {
		log.Println("CreateOrder sequence error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to assign order id")
		return
	}

	order := models.Order{
		OrderID:        orderID,
		Address:        input.Address,
		Products:       input.Products,
		TotalAmount:    input.TotalAmount,
		PaymentStatus:  models.PaymentCompleted,
		OrderStatus:    models.OrderPending,
		PaymentDetails: input.PaymentDetails,
		CreatedAt:      time.Now(),
	}

	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		log.Println("CreateOrder InsertOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating order")
		return
	}

	mq.Emit("order-created", models.Index{EntityType: "order", EntityId: strconv.FormatInt(orderID, 10)})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "order": order})
}

// GetAllOrders returns every order in storage order, for the admin panel.
func GetAllOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.OrderCollection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("GetAllOrders Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		log.Println("GetAllOrders cursor.All error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// UpdateOrderStatus moves an order through its lifecycle.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orderID, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !models.ValidOrderStatus(input.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown order status")
		return
	}

	var order models.Order
	err = db.OrderCollection.FindOneAndUpdate(
		ctx,
		bson.M{"orderId": orderID},
		bson.M{"$set": bson.M{"orderStatus": input.Status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	} else if err != nil {
		log.Println("UpdateOrderStatus error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	mq.Emit("order-status-updated", models.Index{EntityType: "order", EntityId: strconv.FormatInt(orderID, 10)})

	utils.RespondWithJSON(w, http.StatusOK, order)
}
