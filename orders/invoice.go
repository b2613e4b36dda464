package orders

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"pawmart/db"
	"pawmart/models"
	"pawmart/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var invoiceSecret []byte

// Init sets the secret used to sign invoice QR payloads.
func Init(secret []byte) {
	invoiceSecret = secret
}

// invoiceQRPayload signs orderId|paymentId so a scanned invoice can be
// checked against tampering.
func invoiceQRPayload(orderID int64, paymentID string) string {
	data := fmt.Sprintf("%d|%s", orderID, paymentID)
	h := hmac.New(sha256.New, invoiceSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// PrintInvoice renders a PDF invoice for an order, with a signed QR
// reference in the corner.
func PrintInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orderID, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var order models.Order
	err = db.OrderCollection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	qrPNG, err := qrcode.Encode(invoiceQRPayload(order.OrderID, order.PaymentDetails.RazorpayPaymentID), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Order Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Order #%d", order.OrderID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Customer: %s", order.Address.Name))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Placed: %s", order.CreatedAt.Format(time.RFC1123)))
	pdf.Ln(12)

	for _, item := range order.Products {
		pdf.Cell(0, 8, fmt.Sprintf("%s  x%d  @ %.2f", item.Name, item.Quantity, item.NewPrice))
		pdf.Ln(7)
	}
	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %.2f", order.TotalAmount))

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 20, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%d.pdf", order.OrderID))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
