package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"travelhub/apperrors"
	"travelhub/db"
	"travelhub/middleware"
	"travelhub/models"
	"travelhub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type createRequest struct {
	Kind      string  `json:"kind" validate:"required,oneof=flight hotel car"`
	Reference string  `json:"reference" validate:"required"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Date      string  `json:"date" validate:"required"`
	Guests    int     `json:"guests" validate:"min=0"`
	Price     float64 `json:"price" validate:"min=0"`
}

// POST /api/bookings
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondError(w, err)
		return
	}

	booking := models.Booking{
		BookingID: utils.GetUUID(),
		UserID:    middleware.GetUserID(r),
		Kind:      req.Kind,
		Reference: req.Reference,
		From:      req.From,
		To:        req.To,
		Date:      req.Date,
		Guests:    req.Guests,
		Price:     req.Price,
		Status:    "pending",
		CreatedAt: time.Now().UTC(),
	}

	if _, err := db.BookingsCollection.InsertOne(ctx, booking); err != nil {
		utils.RespondError(w, apperrors.ErrUnavailable)
		return
	}
	utils.RespondSuccess(w, http.StatusCreated, booking)
}

// GET /api/bookings
func ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"userid": middleware.GetUserID(r)}
	if kind := r.URL.Query().Get("kind"); models.BookingKinds[kind] {
		filter["kind"] = kind
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	list, err := utils.FindAndDecode[models.Booking](ctx, db.BookingsCollection, filter, opts)
	if err != nil {
		utils.RespondError(w, apperrors.ErrUnavailable)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, list)
}

// GET /api/bookings/:id
func GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	booking, err := fetchOwned(ctx, middleware.GetUserID(r), ps.ByName("id"))
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, booking)
}

// DELETE /api/bookings/:id
func DeleteBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	booking, err := fetchOwned(ctx, middleware.GetUserID(r), ps.ByName("id"))
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	if _, err := db.BookingsCollection.DeleteOne(ctx, bson.M{"bookingid": booking.BookingID}); err != nil {
		utils.RespondError(w, apperrors.ErrUnavailable)
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Booking deleted")
}

// PATCH /api/bookings/:id/status
func SetBookingStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !models.BookingStatuses[body.Status] {
		ve := apperrors.NewValidationError()
		ve.Add("status", "must be one of: pending, confirmed, cancelled")
		utils.RespondError(w, ve)
		return
	}

	booking, err := fetchOwned(ctx, middleware.GetUserID(r), ps.ByName("id"))
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	_, err = db.BookingsCollection.UpdateOne(ctx,
		bson.M{"bookingid": booking.BookingID},
		bson.M{"$set": bson.M{"status": body.Status}},
	)
	if err != nil {
		utils.RespondError(w, apperrors.ErrUnavailable)
		return
	}
	booking.Status = body.Status
	utils.RespondSuccess(w, http.StatusOK, booking)
}

// fetchOwned loads a booking and applies the ownership guard; a
// found-but-foreign booking is Forbidden, not NotFound.
func fetchOwned(ctx context.Context, actorID, bookingID string) (models.Booking, error) {
	var booking models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingid": bookingID}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Booking{}, apperrors.ErrNotFound
	}
	if err != nil {
		return models.Booking{}, apperrors.ErrUnavailable
	}
	if !middleware.Owns(actorID, booking.UserID) {
		return models.Booking{}, apperrors.ErrForbidden
	}
	return booking, nil
}
